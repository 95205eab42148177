package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/glib/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/netclean/netprofile-cleaner/common"
	"github.com/netclean/netprofile-cleaner/netprofile"
)

// MainWindow represents the main application window.
type MainWindow struct {
	app         *Application
	window      *gtk.ApplicationWindow
	headerBar   *gtk.HeaderBar
	lists       map[netprofile.Location]*EntryList
	statusBar   *gtk.Box
	statusLabel *gtk.Label
}

// NewMainWindow creates a new main window.
func NewMainWindow(app *Application) *MainWindow {
	mw := &MainWindow{
		app:   app,
		lists: make(map[netprofile.Location]*EntryList),
	}

	mw.window = gtk.NewApplicationWindow(app.app)
	mw.window.SetTitle(fmt.Sprintf("%s - %s", common.AppName, app.version))
	mw.window.SetDefaultSize(common.DefaultWindowWidth, common.DefaultWindowHeight)
	mw.window.SetSizeRequest(common.MinWindowWidth, common.MinWindowHeight)
	mw.window.SetIconName(common.ConfigDirName)

	// With the tray enabled, closing hides the window and the tray keeps running.
	mw.window.SetHideOnClose(app.config.ShowTray)

	mw.createLayout()

	return mw
}

// createLayout creates the window layout.
func (mw *MainWindow) createLayout() {
	mw.headerBar = gtk.NewHeaderBar()

	refreshButton := gtk.NewButton()
	refreshButton.SetIconName("view-refresh-symbolic")
	refreshButton.SetTooltipText("Refresh both lists (F5)")
	refreshButton.ConnectClicked(mw.RefreshAll)
	mw.headerBar.PackStart(refreshButton)

	menuButton := gtk.NewMenuButton()
	menuButton.SetIconName("open-menu-symbolic")
	menuButton.SetTooltipText("Menu")
	mw.headerBar.PackEnd(menuButton)

	menu := mw.createMenu()
	menuButton.SetMenuModel(menu)

	mw.window.SetTitlebar(mw.headerBar)

	mainBox := gtk.NewBox(gtk.OrientationVertical, 0)

	panes := gtk.NewBox(gtk.OrientationHorizontal, 12)
	panes.SetHomogeneous(true)
	panes.SetVExpand(true)
	panes.SetMarginTop(12)
	panes.SetMarginStart(12)
	panes.SetMarginEnd(12)

	for _, loc := range netprofile.Locations() {
		list := NewEntryList(mw, loc)
		mw.lists[loc] = list
		panes.Append(list.GetWidget())
	}
	mainBox.Append(panes)

	mw.createStatusBar()
	mainBox.Append(mw.statusBar)

	mw.window.SetChild(mainBox)
}

// createMenu creates the application menu.
func (mw *MainWindow) createMenu() *gio.Menu {
	menu := gio.NewMenu()

	dataSection := gio.NewMenu()
	dataSection.Append("Export List...", "app.export")
	dataSection.Append("Deletion History...", "app.history")
	menu.AppendSection("", &dataSection.MenuModel)

	settingsSection := gio.NewMenu()
	settingsSection.Append("Preferences", "app.preferences")
	menu.AppendSection("", &settingsSection.MenuModel)

	appSection := gio.NewMenu()
	appSection.Append("About", "app.about")
	appSection.Append("Quit", "app.quit")
	menu.AppendSection("", &appSection.MenuModel)

	mw.setupActions()

	return menu
}

// setupActions configures menu actions.
func (mw *MainWindow) setupActions() {
	mw.addAction("preferences", []string{"<Control>comma"}, mw.onPreferences)
	mw.addAction("about", nil, mw.onAbout)
	mw.addAction("quit", []string{"<Control>q"}, mw.app.Quit)
	mw.addAction("refresh", []string{"F5"}, mw.RefreshAll)
	mw.addAction("export", []string{"<Control>e"}, mw.onExport)
	mw.addAction("history", []string{"<Control>h"}, mw.onHistory)
}

func (mw *MainWindow) addAction(name string, accels []string, handler func()) {
	action := gio.NewSimpleAction(name, nil)
	action.ConnectActivate(func(_ *glib.Variant) {
		handler()
	})
	mw.app.app.AddAction(action)
	if len(accels) > 0 {
		mw.app.app.SetAccelsForAction("app."+name, accels)
	}
}

// createStatusBar creates the status bar.
func (mw *MainWindow) createStatusBar() {
	mw.statusBar = gtk.NewBox(gtk.OrientationHorizontal, 12)
	mw.statusBar.AddCSSClass("status-bar")
	mw.statusBar.SetMarginTop(6)
	mw.statusBar.SetMarginBottom(6)
	mw.statusBar.SetMarginStart(12)
	mw.statusBar.SetMarginEnd(12)

	mw.statusLabel = gtk.NewLabel("Ready")
	mw.statusLabel.SetXAlign(0)
	mw.statusLabel.SetHExpand(true)
	mw.statusBar.Append(mw.statusLabel)

	statusIcon := gtk.NewImage()
	statusIcon.SetFromIconName("network-wireless-symbolic")
	statusIcon.SetPixelSize(16)
	mw.statusBar.Append(statusIcon)
}

// Show displays the window and loads both lists.
func (mw *MainWindow) Show() {
	mw.window.Show()
	mw.RefreshAll()
}

// SetStatus updates the status text.
func (mw *MainWindow) SetStatus(text string) {
	if mw.statusLabel != nil {
		mw.statusLabel.SetText(text)
	}
}

// RefreshAll reloads both lists from the registry. The first read error,
// if any, is shown once.
func (mw *MainWindow) RefreshAll() {
	var firstErr error
	for _, loc := range netprofile.Locations() {
		if err := mw.lists[loc].Load(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	mw.SetStatus(mw.countsText())
	if mw.app.tray != nil {
		mw.app.tray.Update()
	}
	if firstErr != nil {
		mw.showRegistryError(firstErr)
	}
}

func (mw *MainWindow) showRegistryError(err error) {
	mw.showError("Registry error", fmt.Sprintf("Cannot access the registry: %v", err))
}

// Counts returns the number of listed entries per location.
func (mw *MainWindow) Counts() map[netprofile.Location]int {
	counts := make(map[netprofile.Location]int, len(mw.lists))
	for loc, list := range mw.lists {
		counts[loc] = list.Len()
	}
	return counts
}

// HasErrors reports whether any location failed to load.
func (mw *MainWindow) HasErrors() bool {
	for _, list := range mw.lists {
		if list.Failed() {
			return true
		}
	}
	return false
}

func (mw *MainWindow) countsText() string {
	counts := mw.Counts()
	parts := make([]string, 0, len(counts))
	for _, loc := range netprofile.Locations() {
		parts = append(parts, fmt.Sprintf("%s: %d", loc, counts[loc]))
	}
	return strings.Join(parts, "    ")
}

// Event handlers

func (mw *MainWindow) onPreferences() {
	prefsDialog := NewPreferencesDialog(mw)
	prefsDialog.Show()
}

func (mw *MainWindow) onHistory() {
	if mw.app.history == nil {
		mw.showError("History unavailable", "The deletion history database could not be opened.")
		return
	}
	NewHistoryDialog(mw).Show()
}

func (mw *MainWindow) onAbout() {
	about := gtk.NewAboutDialog()
	about.SetTransientFor(&mw.window.Window)
	about.SetModal(true)

	about.SetProgramName(common.AppName)
	about.SetLogoIconName(common.ConfigDirName)
	about.SetVersion(fmt.Sprintf("%s (%s)", mw.app.version, common.ReleaseDate))
	about.SetComments("Removes stale network profiles and signatures from the Windows registry.\n\n" +
		"Profiles: HKLM\\" + common.ProfilesKeyPath + "\n" +
		"Signatures: HKLM\\" + common.SignaturesKeyPath)
	about.SetCopyright("© 2025 Network Profile Cleaner contributors")
	about.SetLicense("MIT License")

	about.Show()
}

// onExport writes both lists to a YAML file chosen by the user.
func (mw *MainWindow) onExport() {
	dialog := gtk.NewFileChooserNative(
		"Export Network List",
		&mw.window.Window,
		gtk.FileChooserActionSave,
		"Export",
		"Cancel",
	)

	dialog.SetCurrentName(fmt.Sprintf("network-profiles-%s.yaml", time.Now().Format("20060102")))

	filter := gtk.NewFileFilter()
	filter.SetName("YAML Files (*.yaml)")
	filter.AddPattern("*.yaml")
	filter.AddPattern("*.yml")
	dialog.AddFilter(filter)

	dialog.ConnectResponse(func(response int) {
		if response != int(gtk.ResponseAccept) {
			return
		}
		file := dialog.File()
		if file == nil {
			return
		}
		filePath := file.Path()
		if !hasYAMLExtension(filePath) {
			filePath += ".yaml"
		}

		report, err := mw.app.manager.ExportFile(filePath)
		if err != nil {
			common.LogError("Export failed: %v", err)
			mw.showError("Export Failed", fmt.Sprintf("Failed to export the list: %v", err))
			return
		}

		total := 0
		for _, lr := range report.Locations {
			total += len(lr.Entries)
		}
		mw.showInfo("Export Complete",
			fmt.Sprintf("Exported %d entries to:\n%s", total, filePath))
		mw.SetStatus(fmt.Sprintf("Exported %d entries", total))
	})

	dialog.Show()
}

// hasYAMLExtension checks if a file path has a YAML extension.
func hasYAMLExtension(path string) bool {
	lower := strings.ToLower(path)
	return strings.HasSuffix(lower, ".yaml") || strings.HasSuffix(lower, ".yml")
}
