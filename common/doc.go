// Package common provides shared constants, types, utilities, and interfaces
// used throughout Network Profile Cleaner.
//
// This package serves as the foundation for cross-cutting concerns:
//
//   - Constants: registry paths, file names, and UI dimensions
//   - Errors: sentinel errors for consistent error handling across packages
//   - Interfaces: abstractions for logging and notifications
//   - Logger: leveled logging to stdout and a rotated log file
//   - Utils: config/data directory helpers and small string helpers
//
// # Usage
//
//	common.LogInfo("Deleting %d entries from %s", n, location)
//
//	if errors.Is(err, common.ErrElevationRequired) {
//	    // Ask the user to run as administrator
//	}
package common
