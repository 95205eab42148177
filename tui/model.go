// Package tui is the terminal front end: both locations side by side as
// checklists, with the same refresh, select-all and delete actions as the
// desktop window.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/netclean/netprofile-cleaner/common"
	"github.com/netclean/netprofile-cleaner/netprofile"
)

type loadedMsg struct {
	loc     netprofile.Location
	entries []netprofile.Entry
	err     error
}

type deletedMsg struct {
	loc    netprofile.Location
	result *netprofile.DeleteResult
	err    error
}

type pane struct {
	loc    netprofile.Location
	list   *netprofile.Checklist
	cursor int
	err    error
}

// Model is the bubbletea model of the terminal interface.
type Model struct {
	manager *netprofile.Manager
	panes   []*pane
	focus   int

	confirming bool
	status     string

	keys   keyMap
	help   help.Model
	width  int
	height int
}

// New creates the model. Both lists load when the program starts.
func New(manager *netprofile.Manager) Model {
	m := Model{
		manager: manager,
		keys:    newKeyMap(),
		help:    help.New(),
	}
	for _, loc := range netprofile.Locations() {
		m.panes = append(m.panes, &pane{loc: loc, list: netprofile.NewChecklist(nil)})
	}
	return m
}

// Run starts the terminal interface and blocks until the user quits.
func Run(manager *netprofile.Manager) error {
	_, err := tea.NewProgram(New(manager), tea.WithAltScreen()).Run()
	return err
}

func (m Model) Init() tea.Cmd {
	cmds := make([]tea.Cmd, len(m.panes))
	for i, p := range m.panes {
		cmds[i] = m.loadCmd(p.loc)
	}
	return tea.Batch(cmds...)
}

func (m Model) loadCmd(loc netprofile.Location) tea.Cmd {
	manager := m.manager
	return func() tea.Msg {
		entries, err := manager.List(loc)
		return loadedMsg{loc: loc, entries: entries, err: err}
	}
}

func (m Model) deleteCmd(loc netprofile.Location, entries []netprofile.Entry) tea.Cmd {
	manager := m.manager
	return func() tea.Msg {
		result, err := manager.Delete(context.Background(), loc, entries)
		return deletedMsg{loc: loc, result: result, err: err}
	}
}

func (m Model) pane(loc netprofile.Location) *pane {
	for _, p := range m.panes {
		if p.loc == loc {
			return p
		}
	}
	return nil
}

func (m Model) focused() *pane {
	return m.panes[m.focus]
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case loadedMsg:
		p := m.pane(msg.loc)
		if p == nil {
			return m, nil
		}
		p.err = msg.err
		p.list = netprofile.NewChecklist(msg.entries)
		if p.cursor >= p.list.Len() {
			p.cursor = max(p.list.Len()-1, 0)
		}
		if msg.err != nil {
			common.LogError("Failed to read %s: %v", msg.loc, msg.err)
			m.status = fmt.Sprintf("Cannot access the registry: %v", msg.err)
		}
		return m, nil

	case deletedMsg:
		switch {
		case errors.Is(msg.err, common.ErrElevationRequired):
			m.status = "Administrator rights are required. Run the program as administrator."
		case msg.err != nil:
			m.status = msg.err.Error()
		default:
			m.status = strings.ReplaceAll(msg.result.Summary(), "\n", " | ")
		}
		return m, m.loadCmd(msg.loc)

	case tea.KeyMsg:
		if m.confirming {
			return m.updateConfirm(msg)
		}
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.confirm):
		m.confirming = false
		p := m.focused()
		m.status = fmt.Sprintf("Deleting %d entries from %s…", p.list.CheckedCount(), p.loc)
		return m, m.deleteCmd(p.loc, p.list.Checked())
	case key.Matches(msg, m.keys.cancel), key.Matches(msg, m.keys.quit):
		m.confirming = false
		m.status = "Cancelled."
	}
	return m, nil
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	p := m.focused()

	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.switchPan):
		m.focus = (m.focus + 1) % len(m.panes)
	case key.Matches(msg, m.keys.up):
		if p.cursor > 0 {
			p.cursor--
		}
	case key.Matches(msg, m.keys.down):
		if p.cursor < p.list.Len()-1 {
			p.cursor++
		}
	case key.Matches(msg, m.keys.toggle):
		p.list.Toggle(p.cursor)
	case key.Matches(msg, m.keys.toggleAll):
		p.list.ToggleAll()
	case key.Matches(msg, m.keys.refresh):
		m.status = ""
		cmds := make([]tea.Cmd, len(m.panes))
		for i, pp := range m.panes {
			cmds[i] = m.loadCmd(pp.loc)
		}
		return m, tea.Batch(cmds...)
	case key.Matches(msg, m.keys.del):
		if p.list.CheckedCount() == 0 {
			m.status = "Select the entries to delete first"
			return m, nil
		}
		m.confirming = true
		m.status = fmt.Sprintf("Delete %d registry entries? This cannot be undone! (y/n)", p.list.CheckedCount())
	}
	return m, nil
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#595959"))
	focusTitle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#c7565b"))
	cursorStyle   = lipgloss.NewStyle().Reverse(true)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#c7565b"))
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#598ec4"))
	paneStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	focusedBorder = lipgloss.Color("#c7565b")
)

func (m Model) View() string {
	width := m.width/len(m.panes) - 2
	if width < 30 {
		width = 38
	}

	views := make([]string, len(m.panes))
	for i, p := range m.panes {
		views[i] = m.paneView(p, i == m.focus, width)
	}

	var b strings.Builder
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, views...))
	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) paneView(p *pane, focused bool, width int) string {
	title := titleStyle
	style := paneStyle.Width(width)
	if focused {
		title = focusTitle
		style = style.BorderForeground(focusedBorder)
	}

	lines := []string{title.Render(fmt.Sprintf("Networks in the %s key", p.loc))}
	switch {
	case p.err != nil:
		lines = append(lines, errorStyle.Render("Cannot access the registry"))
	case p.list.Len() == 0:
		lines = append(lines, "(empty)")
	}
	for i := 0; i < p.list.Len(); i++ {
		box := "[ ]"
		if p.list.IsChecked(i) {
			box = "[x]"
		}
		line := fmt.Sprintf("%s %s", box, p.list.Entry(i).Description)
		if focused && i == p.cursor {
			line = cursorStyle.Render(line)
		}
		lines = append(lines, line)
	}
	lines = append(lines, "", fmt.Sprintf("%d of %d checked", p.list.CheckedCount(), p.list.Len()))
	return style.Render(strings.Join(lines, "\n"))
}
