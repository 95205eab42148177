package ui

import (
	"fmt"
	"sync"

	"fyne.io/systray"
	"github.com/diamondburned/gotk4/pkg/glib/v2"

	"github.com/netclean/netprofile-cleaner/common"
	"github.com/netclean/netprofile-cleaner/netprofile"
)

// Pre-generated icons for performance.
var (
	iconNormal = GenerateTrayIcon()
	iconError  = GenerateErrorIcon()
)

// TrayIndicator shows entry counts in the system tray and gives quick
// access to the main window.
type TrayIndicator struct {
	app        *Application
	mu         sync.Mutex
	ready      bool
	countItems map[netprofile.Location]*systray.MenuItem
	pending    *trayState
}

type trayState struct {
	counts  map[netprofile.Location]int
	failing bool
}

// NewTrayIndicator creates a new system tray indicator.
func NewTrayIndicator(app *Application) *TrayIndicator {
	return &TrayIndicator{
		app:        app,
		countItems: make(map[netprofile.Location]*systray.MenuItem),
	}
}

// Run starts the system tray indicator.
// This should be called from a goroutine as it blocks.
func (t *TrayIndicator) Run() {
	systray.Run(t.onReady, t.onExit)
}

// onReady is called when the systray is ready.
func (t *TrayIndicator) onReady() {
	systray.SetIcon(iconNormal)
	systray.SetTitle(common.AppName)
	systray.SetTooltip(common.AppName)

	t.mu.Lock()
	for _, loc := range netprofile.Locations() {
		item := systray.AddMenuItem(fmt.Sprintf("%s: -", loc), fmt.Sprintf("Entries in the %s key", loc))
		item.Disable()
		t.countItems[loc] = item
	}
	t.mu.Unlock()

	systray.AddSeparator()

	showItem := systray.AddMenuItem("Open "+common.AppName, "Show main window")
	go func() {
		for range showItem.ClickedCh {
			glib.IdleAdd(t.app.showWindow)
		}
	}()

	refreshItem := systray.AddMenuItem("Refresh", "Reload both lists")
	go func() {
		for range refreshItem.ClickedCh {
			glib.IdleAdd(func() {
				if t.app.window != nil {
					t.app.window.RefreshAll()
				}
			})
		}
	}()

	systray.AddSeparator()

	quitItem := systray.AddMenuItem("Quit", "Close "+common.AppName)
	go func() {
		for range quitItem.ClickedCh {
			glib.IdleAdd(t.app.Quit)
		}
	}()

	t.mu.Lock()
	t.ready = true
	pending := t.pending
	t.pending = nil
	t.mu.Unlock()

	if pending != nil {
		t.apply(pending)
	}
}

// onExit is called when the systray is about to exit.
func (t *TrayIndicator) onExit() {
	common.LogInfo("Tray indicator cleanup completed")
}

// Update copies the current counts of the main window into the tray.
// Must be called on the GTK main thread.
func (t *TrayIndicator) Update() {
	if t.app.window == nil {
		return
	}
	state := &trayState{
		counts:  t.app.window.Counts(),
		failing: t.app.window.HasErrors(),
	}

	t.mu.Lock()
	if !t.ready {
		t.pending = state
		t.mu.Unlock()
		return
	}
	t.mu.Unlock()

	t.apply(state)
}

func (t *TrayIndicator) apply(state *trayState) {
	t.mu.Lock()
	defer t.mu.Unlock()

	total := 0
	for loc, item := range t.countItems {
		n := state.counts[loc]
		total += n
		item.SetTitle(fmt.Sprintf("%s: %d", loc, n))
	}

	if state.failing {
		systray.SetIcon(iconError)
		systray.SetTooltip(common.AppName + " - cannot read the registry")
		return
	}
	systray.SetIcon(iconNormal)
	systray.SetTooltip(fmt.Sprintf("%s - %d entries", common.AppName, total))
}

// Stop removes the tray icon.
func (t *TrayIndicator) Stop() {
	systray.Quit()
}
