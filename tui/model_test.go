package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/netclean/netprofile-cleaner/netprofile"
	"github.com/netclean/netprofile-cleaner/netprofile/regtest"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newLoadedModel(t *testing.T) (Model, *regtest.Store) {
	t.Helper()

	store := regtest.NewStore()
	store.Add(netprofile.Profiles, "{A}", "Network")
	store.Add(netprofile.Profiles, "{B}", "Network 2")
	store.Add(netprofile.Profiles, "{C}", "Ethernet 3")
	store.Add(netprofile.Signatures, "0101", "Network 2")

	m := New(netprofile.NewManager(store))
	for _, loc := range netprofile.Locations() {
		m = send(t, m, m.loadCmd(loc)())
	}
	return m, store
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	updated, _ := m.Update(msg)
	next, ok := updated.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", updated)
	}
	return next
}

func TestModel_LoadsBothLists(t *testing.T) {
	m, _ := newLoadedModel(t)

	if m.panes[0].list.Len() != 3 {
		t.Errorf("Profiles pane has %d entries, want 3", m.panes[0].list.Len())
	}
	if m.panes[1].list.Len() != 1 {
		t.Errorf("Signatures pane has %d entries, want 1", m.panes[1].list.Len())
	}

	view := m.View()
	for _, want := range []string{"Networks in the Profiles key", "Networks in the Signatures key", "[ ] Ethernet 3"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestModel_NavigateAndToggle(t *testing.T) {
	m, _ := newLoadedModel(t)

	m = send(t, m, runes("j"))
	m = send(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if !m.panes[0].list.IsChecked(1) {
		t.Fatal("space should check the entry under the cursor")
	}

	m = send(t, m, runes("k"))
	m = send(t, m, runes("k"))
	if m.panes[0].cursor != 0 {
		t.Errorf("cursor = %d, want 0", m.panes[0].cursor)
	}

	for i := 0; i < 5; i++ {
		m = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	if m.panes[0].cursor != 2 {
		t.Errorf("cursor should stop at the last entry, got %d", m.panes[0].cursor)
	}
}

func TestModel_TabSwitchesPane(t *testing.T) {
	m, _ := newLoadedModel(t)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.focus != 1 {
		t.Fatalf("focus = %d, want 1", m.focus)
	}
	m = send(t, m, runes("a"))
	if !m.panes[1].list.AllChecked() {
		t.Error("select all should apply to the focused pane")
	}
	if m.panes[0].list.CheckedCount() != 0 {
		t.Error("select all should not touch the other pane")
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.focus != 0 {
		t.Errorf("focus should wrap to 0, got %d", m.focus)
	}
}

func TestModel_SelectAllToggles(t *testing.T) {
	m, _ := newLoadedModel(t)

	m = send(t, m, runes("a"))
	if !m.panes[0].list.AllChecked() {
		t.Fatal("first select all should check everything")
	}
	m = send(t, m, runes("a"))
	if m.panes[0].list.CheckedCount() != 0 {
		t.Error("second select all should uncheck everything")
	}
}

func TestModel_DeleteWithoutSelection(t *testing.T) {
	m, _ := newLoadedModel(t)

	m = send(t, m, runes("d"))
	if m.confirming {
		t.Error("delete with nothing checked should not ask for confirmation")
	}
	if m.status != "Select the entries to delete first" {
		t.Errorf("status = %q", m.status)
	}
}

func TestModel_DeleteConfirmed(t *testing.T) {
	m, store := newLoadedModel(t)

	m = send(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m = send(t, m, runes("d"))
	if !m.confirming {
		t.Fatal("delete should ask for confirmation")
	}
	if !strings.Contains(m.status, "Delete 1 registry entries?") {
		t.Errorf("status = %q", m.status)
	}

	updated, cmd := m.Update(runes("y"))
	m = updated.(Model)
	if cmd == nil {
		t.Fatal("confirming should return a delete command")
	}
	m = send(t, m, cmd())

	if store.Has(netprofile.Profiles, "{A}") {
		t.Error("checked entry should be deleted")
	}
	if !strings.Contains(m.status, "Deleted: Network") {
		t.Errorf("status = %q, want summary", m.status)
	}
}

func TestModel_DeleteReloadsOnlyThatPane(t *testing.T) {
	m, _ := newLoadedModel(t)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = send(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = send(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m = send(t, m, runes("d"))

	updated, cmd := m.Update(runes("y"))
	m = updated.(Model)
	updated, reload := m.Update(cmd())
	m = updated.(Model)
	if reload == nil {
		t.Fatal("a finished delete should reload its pane")
	}
	loaded, ok := reload().(loadedMsg)
	if !ok || loaded.loc != netprofile.Profiles {
		t.Fatalf("reload = %#v, want a Profiles load", loaded)
	}
	m = send(t, m, loaded)

	if m.panes[0].list.Len() != 2 {
		t.Errorf("Profiles pane has %d entries, want 2", m.panes[0].list.Len())
	}
	if !m.panes[1].list.IsChecked(0) {
		t.Error("check marks in the Signatures pane should survive a Profiles delete")
	}
}

func TestModel_DeleteCancelled(t *testing.T) {
	m, store := newLoadedModel(t)

	m = send(t, m, runes("a"))
	m = send(t, m, runes("d"))
	m = send(t, m, runes("n"))

	if m.confirming {
		t.Error("n should leave confirmation mode")
	}
	if !store.Has(netprofile.Profiles, "{A}") {
		t.Error("nothing should be deleted after cancelling")
	}
}

func TestModel_DeleteNeedsElevation(t *testing.T) {
	m, store := newLoadedModel(t)
	store.FailOpen(netprofile.AccessWrite, errors.New("Access is denied."))

	m = send(t, m, runes("a"))
	m = send(t, m, runes("d"))
	updated, cmd := m.Update(runes("y"))
	m = send(t, updated.(Model), cmd())

	if !strings.Contains(m.status, "Administrator rights are required") {
		t.Errorf("status = %q", m.status)
	}
}

func TestModel_RegistryReadError(t *testing.T) {
	store := regtest.NewStore()
	m := New(netprofile.NewManager(store))

	m = send(t, m, m.loadCmd(netprofile.Profiles)())
	if m.panes[0].err == nil {
		t.Fatal("missing root should set the pane error")
	}
	if !strings.Contains(m.status, "Cannot access the registry") {
		t.Errorf("status = %q", m.status)
	}
}

func TestModel_Quit(t *testing.T) {
	m, _ := newLoadedModel(t)

	_, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}
