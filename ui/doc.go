// Package ui provides the graphical user interface for Network Profile Cleaner.
//
// This package implements the GTK4-based user interface including:
//
//   - Main window with the Profiles and Signatures lists side by side
//   - Confirmation, warning and result dialogs
//   - Deletion history with restore
//   - Preferences dialog
//   - Optional system tray indicator and desktop notifications
//
// # Architecture
//
// The UI is built on GTK4 using the gotk4 bindings. Key components:
//
//   - Application: GTK application lifecycle and shared services
//   - MainWindow: menu, both entry lists, button bar and status bar
//   - EntryList: one checkable list bound to a netprofile.Checklist
//   - TrayIndicator: tray icon with entry counts
//
// # Thread Safety
//
// GTK operations must execute on the main thread. The tray indicator runs
// in its own goroutine and schedules UI work with glib.IdleAdd().
//
// # File Organization
//
//   - app.go: Application lifecycle
//   - main_window.go: Main window layout, menu and actions
//   - entry_list.go: Checkable entry list for one registry location
//   - dialogs.go: Message and confirmation dialogs
//   - history_dialog.go: Deletion history and restore
//   - preferences.go: Settings dialog
//   - tray.go, icons.go: System tray indicator
//   - styles.go: CSS styling
//   - notifications*.go: Desktop notifications
package ui
