//go:build !windows

package elevate

import (
	"os"

	"github.com/netclean/netprofile-cleaner/common"
)

// IsElevated reports whether the process runs as root.
func IsElevated() bool {
	return os.Geteuid() == 0
}

// Relaunch is not available outside Windows.
func Relaunch(args []string) error {
	return common.ErrUnsupportedPlatform
}
