package ui

import (
	"context"
	"errors"
	"fmt"

	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/netclean/netprofile-cleaner/common"
	"github.com/netclean/netprofile-cleaner/netprofile"
)

// EntryList shows the entries of one registry location as a list of
// check boxes with its own Refresh, Select All and Delete buttons.
type EntryList struct {
	mainWindow *MainWindow
	location   netprofile.Location
	checklist  *netprofile.Checklist
	box        *gtk.Box
	listBox    *gtk.ListBox
	checks     []*gtk.CheckButton
	countLabel *gtk.Label
	deleteBtn  *gtk.Button
	loadErr    error
}

// NewEntryList creates the pane for loc.
func NewEntryList(mainWindow *MainWindow, loc netprofile.Location) *EntryList {
	el := &EntryList{
		mainWindow: mainWindow,
		location:   loc,
		checklist:  netprofile.NewChecklist(nil),
		box:        gtk.NewBox(gtk.OrientationVertical, 6),
		listBox:    gtk.NewListBox(),
	}
	el.box.AddCSSClass("entry-pane")
	el.box.SetHExpand(true)

	header := gtk.NewBox(gtk.OrientationHorizontal, 6)
	title := gtk.NewLabel(fmt.Sprintf("Networks in the %s key", loc))
	title.AddCSSClass("heading")
	title.SetXAlign(0)
	title.SetHExpand(true)
	title.SetTooltipText(`HKLM\` + loc.Path())
	header.Append(title)

	el.countLabel = gtk.NewLabel("")
	el.countLabel.AddCSSClass("dim-label")
	header.Append(el.countLabel)
	el.box.Append(header)

	el.listBox.AddCSSClass("boxed-list")
	el.listBox.SetSelectionMode(gtk.SelectionNone)

	scrolled := gtk.NewScrolledWindow()
	scrolled.SetVExpand(true)
	scrolled.SetChild(el.listBox)
	el.box.Append(scrolled)

	el.box.Append(el.createButtonBar())

	return el
}

func (el *EntryList) createButtonBar() *gtk.Box {
	buttonBox := gtk.NewBox(gtk.OrientationHorizontal, 6)
	buttonBox.SetMarginBottom(6)

	refreshBtn := gtk.NewButtonWithLabel("Refresh")
	refreshBtn.ConnectClicked(func() {
		if err := el.Load(); err != nil {
			el.mainWindow.showRegistryError(err)
			return
		}
		el.mainWindow.SetStatus(fmt.Sprintf("%s reloaded", el.location))
	})
	buttonBox.Append(refreshBtn)

	selectAllBtn := gtk.NewButtonWithLabel("Select All")
	selectAllBtn.ConnectClicked(el.ToggleAll)
	buttonBox.Append(selectAllBtn)

	el.deleteBtn = gtk.NewButtonWithLabel(fmt.Sprintf("Delete selected %s", el.location))
	el.deleteBtn.AddCSSClass("destructive-action")
	el.deleteBtn.SetHExpand(true)
	el.deleteBtn.SetHAlign(gtk.AlignEnd)
	el.deleteBtn.ConnectClicked(el.DeleteChecked)
	buttonBox.Append(el.deleteBtn)

	return buttonBox
}

// GetWidget returns the pane widget to be added to a container.
func (el *EntryList) GetWidget() gtk.Widgetter {
	return el.box
}

// Len returns the number of listed entries.
func (el *EntryList) Len() int {
	return el.checklist.Len()
}

// Failed reports whether the last Load could not read the location.
func (el *EntryList) Failed() bool {
	return el.loadErr != nil
}

// Load reads the location from the registry and rebuilds the rows.
// All check marks are cleared.
func (el *EntryList) Load() error {
	for el.listBox.FirstChild() != nil {
		el.listBox.Remove(el.listBox.FirstChild())
	}
	el.checks = nil

	entries, err := el.mainWindow.app.manager.List(el.location)
	el.loadErr = err
	if err != nil {
		common.LogError("Listing %s failed: %v", el.location, err)
		el.checklist = netprofile.NewChecklist(nil)
		el.updateCount()
		el.showPlaceholder("dialog-error-symbolic", "Cannot read this key")
		return err
	}

	el.checklist = netprofile.NewChecklist(entries)
	el.updateCount()

	if len(entries) == 0 {
		el.showPlaceholder("emblem-ok-symbolic", "No entries")
		return nil
	}

	for i, entry := range entries {
		el.addRow(i, entry)
	}
	return nil
}

func (el *EntryList) addRow(index int, entry netprofile.Entry) {
	row := gtk.NewListBoxRow()
	row.SetSelectable(false)
	row.AddCSSClass("entry-row")

	check := gtk.NewCheckButtonWithLabel(entry.Description)
	check.SetTooltipText(entry.Key)
	check.SetMarginTop(6)
	check.SetMarginBottom(6)
	check.SetMarginStart(12)
	check.SetMarginEnd(12)
	check.ConnectToggled(func() {
		el.checklist.SetChecked(index, check.Active())
		el.updateCount()
	})

	row.SetChild(check)
	el.listBox.Append(row)
	el.checks = append(el.checks, check)
}

// showPlaceholder shows a single centered row with an icon and text.
func (el *EntryList) showPlaceholder(iconName, text string) {
	centerBox := gtk.NewBox(gtk.OrientationVertical, 12)
	centerBox.SetHAlign(gtk.AlignCenter)
	centerBox.SetVAlign(gtk.AlignCenter)
	centerBox.SetMarginTop(48)
	centerBox.SetMarginBottom(48)

	icon := gtk.NewImage()
	icon.SetFromIconName(iconName)
	icon.SetPixelSize(48)
	icon.AddCSSClass("dim-label")
	centerBox.Append(icon)

	label := gtk.NewLabel(text)
	label.AddCSSClass("dim-label")
	centerBox.Append(label)

	row := gtk.NewListBoxRow()
	row.SetChild(centerBox)
	row.SetSelectable(false)
	row.SetActivatable(false)
	el.listBox.Append(row)
}

// ToggleAll checks every entry, or clears them all when every entry is
// already checked.
func (el *EntryList) ToggleAll() {
	el.checklist.ToggleAll()
	for i, check := range el.checks {
		// SetActive fires the toggled handler with the same value.
		check.SetActive(el.checklist.IsChecked(i))
	}
	el.updateCount()
}

func (el *EntryList) updateCount() {
	el.countLabel.SetText(fmt.Sprintf("%d / %d", el.checklist.CheckedCount(), el.checklist.Len()))
}

// DeleteChecked deletes the checked entries after confirmation.
func (el *EntryList) DeleteChecked() {
	entries := el.checklist.Checked()
	if len(entries) == 0 {
		el.mainWindow.showWarning("Nothing selected", "Select the entries to delete first")
		return
	}

	question := fmt.Sprintf("Delete %d registry entries? This cannot be undone!", len(entries))
	if !el.mainWindow.app.config.ConfirmDelete {
		el.delete(entries)
		return
	}
	el.mainWindow.showConfirm("Confirm deletion", question, "Delete", func() {
		el.delete(entries)
	})
}

// delete removes entries synchronously on the GTK main loop.
func (el *EntryList) delete(entries []netprofile.Entry) {
	el.mainWindow.SetStatus(fmt.Sprintf("Deleting %d entries from %s...", len(entries), el.location))
	result, err := el.mainWindow.app.manager.Delete(context.Background(), el.location, entries)
	el.onDeleted(result, err)
}

func (el *EntryList) onDeleted(result *netprofile.DeleteResult, err error) {
	mw := el.mainWindow
	if err != nil {
		common.LogError("Deleting from %s failed: %v", el.location, err)
		if errors.Is(err, common.ErrElevationRequired) {
			mw.showError("Administrator rights required",
				"Administrator rights are required. Run the program as administrator.")
		} else {
			mw.showError("Deletion failed", err.Error())
		}
		mw.SetStatus("Deletion failed")
		return
	}

	// Only this pane is reloaded; check marks in the other one survive.
	if err := el.Load(); err != nil {
		mw.showRegistryError(err)
	}
	if mw.app.tray != nil {
		mw.app.tray.Update()
	}

	title, message := deletionMessage(result)
	if result.HasFailures() {
		mw.showWarning(title, message)
	} else {
		mw.showInfo("Deletion complete", message)
	}
	mw.app.notify(title, message)
	mw.SetStatus(fmt.Sprintf("Deleted %d of %d entries from %s",
		len(result.Deleted), len(result.Deleted)+len(result.Failed), el.location))
}
