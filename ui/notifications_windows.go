//go:build windows

package ui

import (
	"github.com/go-toast/toast"

	"github.com/netclean/netprofile-cleaner/common"
)

// desktopNotifier shows Windows toast notifications.
type desktopNotifier struct {
	appID string
}

// NewNotifier returns the platform notifier.
func NewNotifier() common.Notifier {
	return &desktopNotifier{appID: common.AppName}
}

// Notify pushes a toast notification.
func (n *desktopNotifier) Notify(title, message string) error {
	t := toast.Notification{
		AppID:   n.appID,
		Title:   title,
		Message: message,
	}
	return t.Push()
}
