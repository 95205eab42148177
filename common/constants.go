// Package common provides shared constants, types, and utilities
// used across the Network Profile Cleaner application.
package common

// Application metadata.
const (
	// AppID is the unique identifier for the application.
	AppID = "com.netclean.netprofile-cleaner"
	// AppName is the display name of the application.
	AppName = "Network Profile Cleaner"
	// ConfigDirName is the name of the configuration directory.
	ConfigDirName = "netprofile-cleaner"
	// Version is the release shown in the title bar and About dialog;
	// builds may override main.appVersion through ldflags.
	Version = "1.3"
	// ReleaseDate is the date of Version.
	ReleaseDate = "2025-03-24"
)

// File names used by the application.
const (
	ConfigFileName  = "config.yaml"
	HistoryFileName = "history.db"
	LogFileName     = "netprofile-cleaner.log"
)

// Registry locations scanned by the cleaner. Both live under HKEY_LOCAL_MACHINE.
const (
	ProfilesKeyPath   = `SOFTWARE\Microsoft\Windows NT\CurrentVersion\NetworkList\Profiles`
	SignaturesKeyPath = `SOFTWARE\Microsoft\Windows NT\CurrentVersion\NetworkList\Signatures\Unmanaged`
	// DescriptionValue is the string value shown for each network entry.
	DescriptionValue = "Description"
)

// ElevatedFlag marks a process that was re-launched through UAC.
const ElevatedFlag = "--elevated"

// UI constants.
const (
	// DefaultWindowWidth is the default main window width.
	DefaultWindowWidth = 800
	// DefaultWindowHeight is the default main window height.
	DefaultWindowHeight = 600
	// MinWindowWidth is the minimum window width.
	MinWindowWidth = 800
	// MinWindowHeight is the minimum window height.
	MinWindowHeight = 600
	// DialogMargin is the standard margin for dialog content.
	DialogMargin = 24
	// TrayIconSize is the size of the system tray icon.
	TrayIconSize = 22
)

// DefaultHistoryLimit is the number of deletion records kept on disk.
const DefaultHistoryLimit = 200

// Theme values.
const (
	ThemeAuto  = "auto"
	ThemeLight = "light"
	ThemeDark  = "dark"
)
