// Package netprofile lists and deletes the network profile entries Windows
// keeps in the registry.
//
// Two locations are managed, both under HKEY_LOCAL_MACHINE:
//
//   - Profiles: NetworkList\Profiles, one subkey per remembered network
//   - Signatures: NetworkList\Signatures\Unmanaged, one subkey per signature
//
// Each subkey carries a Description string value, which is what users
// recognize ("Network 2", "Ethernet 3", a Wi-Fi SSID).
//
// # Architecture
//
//   - Store / Key: the registry abstraction. The Windows build talks to the
//     real registry through golang.org/x/sys/windows/registry; other builds
//     return common.ErrUnsupportedPlatform.
//   - Manager: lists entries, deletes checked entries (optionally recording a
//     value snapshot first) and restores recorded entries.
//   - Checklist: the per-location list model shared by the GUI and the TUI.
//
// # Delete Flow
//
//  1. The user checks entries in a Checklist
//  2. The front end calls Manager.Delete with Checklist.Checked()
//  3. Manager opens the location for write, snapshots and deletes each key
//  4. The DeleteResult is shown to the user and the list is reloaded
//
// Registry handles are opened and closed within each Manager call.
package netprofile
