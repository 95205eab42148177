//go:build windows

package elevate

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sys/windows"

	"github.com/netclean/netprofile-cleaner/common"
)

// IsElevated reports whether the process token is elevated.
func IsElevated() bool {
	return windows.GetCurrentProcessToken().IsElevated()
}

// Relaunch starts the current executable again with the "runas" verb and
// the given arguments plus the elevation marker. The caller should exit
// after a successful call.
func Relaunch(args []string) error {
	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("locating executable: %w", err)
	}

	spec := relaunchSpec(exe, args)

	verb, _ := windows.UTF16PtrFromString(spec.Verb)
	file, err := windows.UTF16PtrFromString(spec.File)
	if err != nil {
		return err
	}
	params, err := windows.UTF16PtrFromString(spec.Args)
	if err != nil {
		return err
	}
	var dir *uint16
	if spec.Dir != "" {
		if dir, err = windows.UTF16PtrFromString(spec.Dir); err != nil {
			return err
		}
	}

	if err := windows.ShellExecute(0, verb, file, params, dir, windows.SW_NORMAL); err != nil {
		return fmt.Errorf("%w: %v", common.ErrElevationRequired, err)
	}
	common.LogInfo("Relaunched %s elevated", filepath.Base(exe))
	return nil
}
