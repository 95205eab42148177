package ui

import (
	"context"
	"errors"
	"fmt"

	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/netclean/netprofile-cleaner/common"
	"github.com/netclean/netprofile-cleaner/history"
)

// HistoryDialog lists deleted entries and restores them on request.
type HistoryDialog struct {
	window     *gtk.Window
	mainWindow *MainWindow
	listBox    *gtk.ListBox
}

// NewHistoryDialog creates the history dialog.
func NewHistoryDialog(mainWindow *MainWindow) *HistoryDialog {
	hd := &HistoryDialog{mainWindow: mainWindow}
	hd.build()
	return hd
}

func (hd *HistoryDialog) build() {
	hd.window = gtk.NewWindow()
	hd.window.SetTitle("Deletion History")
	hd.window.SetTransientFor(&hd.mainWindow.window.Window)
	hd.window.SetModal(true)
	hd.window.SetDefaultSize(600, 460)

	rootBox := gtk.NewBox(gtk.OrientationVertical, 12)
	rootBox.SetMarginTop(common.DialogMargin)
	rootBox.SetMarginBottom(16)
	rootBox.SetMarginStart(common.DialogMargin)
	rootBox.SetMarginEnd(common.DialogMargin)

	hint := gtk.NewLabel("Entries deleted with history enabled can be written back to the registry.")
	hint.SetXAlign(0)
	hint.SetWrap(true)
	hint.AddCSSClass("dim-label")
	rootBox.Append(hint)

	hd.listBox = gtk.NewListBox()
	hd.listBox.AddCSSClass("boxed-list")
	hd.listBox.SetSelectionMode(gtk.SelectionNone)

	scrolled := gtk.NewScrolledWindow()
	scrolled.SetVExpand(true)
	scrolled.SetPolicy(gtk.PolicyNever, gtk.PolicyAutomatic)
	scrolled.SetChild(hd.listBox)
	rootBox.Append(scrolled)

	closeBtn := gtk.NewButtonWithLabel("Close")
	closeBtn.SetHAlign(gtk.AlignEnd)
	closeBtn.ConnectClicked(func() {
		hd.window.Close()
	})
	rootBox.Append(closeBtn)

	hd.window.SetChild(rootBox)
	hd.load()
}

func (hd *HistoryDialog) load() {
	for hd.listBox.FirstChild() != nil {
		hd.listBox.Remove(hd.listBox.FirstChild())
	}

	records, err := hd.mainWindow.app.history.List(context.Background())
	if err != nil {
		common.LogError("Reading history failed: %v", err)
		hd.mainWindow.showError("History error", err.Error())
		return
	}

	if len(records) == 0 {
		label := gtk.NewLabel("No deletions recorded")
		label.AddCSSClass("dim-label")
		label.SetMarginTop(48)
		label.SetMarginBottom(48)
		row := gtk.NewListBoxRow()
		row.SetChild(label)
		row.SetActivatable(false)
		hd.listBox.Append(row)
		return
	}

	for i := range records {
		hd.addRow(&records[i])
	}
}

func (hd *HistoryDialog) addRow(rec *history.Record) {
	row := gtk.NewListBoxRow()
	row.SetSelectable(false)

	box := gtk.NewBox(gtk.OrientationHorizontal, 12)
	box.SetMarginTop(8)
	box.SetMarginBottom(8)
	box.SetMarginStart(12)
	box.SetMarginEnd(12)

	textBox := gtk.NewBox(gtk.OrientationVertical, 2)
	textBox.SetHExpand(true)

	title := gtk.NewLabel(rec.Description)
	title.SetXAlign(0)
	title.AddCSSClass("settings-title")
	textBox.Append(title)

	detail := gtk.NewLabel(fmt.Sprintf("%s  %s  %s",
		rec.Location, common.ShortKey(rec.Key, 24), rec.DeletedAt.Local().Format("2006-01-02 15:04")))
	detail.SetXAlign(0)
	detail.AddCSSClass("dim-label")
	detail.AddCSSClass("caption")
	detail.SetTooltipText(rec.Key)
	textBox.Append(detail)

	box.Append(textBox)

	switch {
	case rec.RestoredAt != nil:
		status := gtk.NewLabel("Restored")
		status.AddCSSClass("dim-label")
		box.Append(status)
	case !rec.Restorable():
		status := gtk.NewLabel("No backup")
		status.AddCSSClass("dim-label")
		box.Append(status)
	default:
		restoreBtn := gtk.NewButtonWithLabel("Restore")
		restoreBtn.SetVAlign(gtk.AlignCenter)
		id := rec.ID
		restoreBtn.ConnectClicked(func() {
			hd.restore(id)
		})
		box.Append(restoreBtn)
	}

	row.SetChild(box)
	hd.listBox.Append(row)
}

func (hd *HistoryDialog) restore(id string) {
	mw := hd.mainWindow
	rec, err := mw.app.history.Restore(context.Background(), id, mw.app.manager)
	if err != nil {
		common.LogError("Restoring %s failed: %v", id, err)
		msg := err.Error()
		if errors.Is(err, common.ErrElevationRequired) {
			msg = "Administrator rights are required. Run the program as administrator."
		}
		mw.showError("Restore failed", msg)
		return
	}

	hd.load()
	mw.RefreshAll()
	mw.SetStatus(fmt.Sprintf("Restored %s", rec.Description))
}

// Show displays the history dialog.
func (hd *HistoryDialog) Show() {
	hd.window.Show()
}
