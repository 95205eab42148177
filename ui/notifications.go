package ui

import (
	"github.com/netclean/netprofile-cleaner/common"
	"github.com/netclean/netprofile-cleaner/netprofile"
)

// deletionMessage builds the notification body for a finished deletion.
func deletionMessage(result *netprofile.DeleteResult) (title, message string) {
	if result.HasFailures() {
		return "Deletion finished with errors", result.Summary()
	}
	return common.AppName, result.Summary()
}

var _ common.Notifier = (*desktopNotifier)(nil)
