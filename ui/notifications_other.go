//go:build !windows

package ui

import (
	"os/exec"

	"github.com/godbus/dbus/v5"

	"github.com/netclean/netprofile-cleaner/common"
)

const (
	notifyService   = "org.freedesktop.Notifications"
	notifyPath      = "/org/freedesktop/Notifications"
	notifyMethod    = notifyService + ".Notify"
	notifyTimeoutMs = 5000
)

// desktopNotifier sends freedesktop notifications over the session bus,
// falling back to notify-send.
type desktopNotifier struct {
	appName string
	icon    string
}

// NewNotifier returns the platform notifier.
func NewNotifier() common.Notifier {
	return &desktopNotifier{appName: common.AppName, icon: "network-wireless"}
}

// Notify shows a notification with the given title and message.
func (n *desktopNotifier) Notify(title, message string) error {
	err := n.notifyDBus(title, message)
	if err == nil {
		return nil
	}
	common.LogDebug("D-Bus notification failed, trying notify-send: %v", err)

	cmd := exec.Command("notify-send",
		"--app-name="+n.appName,
		"--icon="+n.icon,
		"--urgency=low",
		title,
		message,
	)
	return cmd.Run()
}

func (n *desktopNotifier) notifyDBus(title, message string) error {
	conn, err := dbus.SessionBus()
	if err != nil {
		return err
	}

	obj := conn.Object(notifyService, dbus.ObjectPath(notifyPath))
	call := obj.Call(notifyMethod, 0,
		n.appName,
		uint32(0),
		n.icon,
		title,
		message,
		[]string{},
		map[string]dbus.Variant{"urgency": dbus.MakeVariant(byte(0))},
		int32(notifyTimeoutMs),
	)
	return call.Err
}
