package ui

import (
	"os"
	"path/filepath"

	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/netclean/netprofile-cleaner/common"
	"github.com/netclean/netprofile-cleaner/config"
	"github.com/netclean/netprofile-cleaner/history"
	"github.com/netclean/netprofile-cleaner/netprofile"
)

// Application represents the main application
type Application struct {
	app      *gtk.Application
	window   *MainWindow
	manager  *netprofile.Manager
	history  *history.Store
	config   *config.Config
	version  string
	tray     *TrayIndicator
	notifier common.Notifier
}

// NewApplication creates a new application. hist may be nil when the
// history database is unavailable; deletions are then not recorded.
func NewApplication(appID, version string, manager *netprofile.Manager, hist *history.Store, cfg *config.Config) *Application {
	app := gtk.NewApplication(appID, gio.ApplicationFlagsNone)

	application := &Application{
		app:      app,
		manager:  manager,
		history:  hist,
		config:   cfg,
		version:  version,
		notifier: NewNotifier(),
	}
	application.applyRecorder()

	app.ConnectActivate(application.onActivate)

	return application
}

// Run runs the application
func (a *Application) Run(args []string) int {
	return a.app.Run(args)
}

// onActivate is called when the application is activated
func (a *Application) onActivate() {
	if a.window != nil {
		a.showWindow()
		return
	}

	a.ApplyTheme(a.config.Theme)
	a.setupAppIcon()
	LoadStyles()

	a.window = NewMainWindow(a)
	a.window.Show()

	if a.config.ShowTray {
		a.tray = NewTrayIndicator(a)
		go a.tray.Run()
		a.tray.Update()
	}
}

// setupAppIcon sets up the application icon
func (a *Application) setupAppIcon() {
	display := gdk.DisplayGetDefault()
	if display == nil {
		return
	}

	iconTheme := gtk.IconThemeGetForDisplay(display)
	if iconTheme == nil {
		return
	}

	// GTK4 looks for theme subdirectories (like "hicolor") inside these paths
	if execPath, err := os.Executable(); err == nil {
		iconTheme.AddSearchPath(filepath.Join(filepath.Dir(execPath), "assets", "icons"))
	}
	if cwd, err := os.Getwd(); err == nil {
		iconTheme.AddSearchPath(filepath.Join(cwd, "assets", "icons"))
	}

	gtk.WindowSetDefaultIconName(common.ConfigDirName)
}

// applyRecorder wires the history store into the manager according to
// the backup_before_delete setting.
func (a *Application) applyRecorder() {
	if a.history != nil && a.config.BackupBeforeDelete {
		a.manager.SetRecorder(a.history)
	} else {
		a.manager.SetRecorder(nil)
	}
}

// ApplyTheme applies the specified theme to the application.
// Supported values: "auto" (system default), "light", "dark"
func (a *Application) ApplyTheme(theme string) {
	settings := gtk.SettingsGetDefault()
	if settings == nil {
		return
	}

	switch theme {
	case common.ThemeLight:
		settings.SetObjectProperty("gtk-application-prefer-dark-theme", false)
	case common.ThemeDark:
		settings.SetObjectProperty("gtk-application-prefer-dark-theme", true)
	default:
		// Follow the system color scheme.
	}
}

// notify shows a desktop notification when enabled in the settings.
func (a *Application) notify(title, message string) {
	if !a.config.ShowNotifications || a.notifier == nil {
		return
	}
	if err := a.notifier.Notify(title, message); err != nil {
		common.LogWarn("Error showing notification: %v", err)
	}
}

// showWindow shows the main window
func (a *Application) showWindow() {
	if a.window != nil {
		a.window.window.Present()
	}
}

// Quit closes the application
func (a *Application) Quit() {
	if a.tray != nil {
		a.tray.Stop()
	}
	a.app.Quit()
}
