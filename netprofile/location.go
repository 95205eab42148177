package netprofile

import (
	"fmt"
	"strings"

	"github.com/netclean/netprofile-cleaner/common"
)

// Location identifies one of the two registry keys holding network entries.
type Location int

const (
	Profiles Location = iota
	Signatures
)

// Locations returns every location in display order.
func Locations() []Location {
	return []Location{Profiles, Signatures}
}

// String returns the display name of the location.
func (l Location) String() string {
	switch l {
	case Profiles:
		return "Profiles"
	case Signatures:
		return "Signatures"
	default:
		return "Unknown"
	}
}

// Path returns the registry path of the location relative to HKEY_LOCAL_MACHINE.
func (l Location) Path() string {
	switch l {
	case Profiles:
		return common.ProfilesKeyPath
	case Signatures:
		return common.SignaturesKeyPath
	default:
		return ""
	}
}

// MarshalYAML writes the location by name.
func (l Location) MarshalYAML() (interface{}, error) {
	return strings.ToLower(l.String()), nil
}

// ParseLocation parses "profiles" or "signatures", ignoring case.
func ParseLocation(s string) (Location, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "profiles", "profile":
		return Profiles, nil
	case "signatures", "signature":
		return Signatures, nil
	default:
		return 0, fmt.Errorf("%w: %q", common.ErrUnknownLocation, s)
	}
}
