package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"marketvet.ai/cli/internal/core/result"
)

// browseFindings opens the interactive findings viewer for a finished
// run. The flat report is still printed afterwards so automation always
// sees the full output.
func browseFindings(log *result.Log) error {
	model := newBrowserModel(log)

	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("findings browser failed: %w", err)
	}
	return nil
}

// browserModel holds the state for the Bubble Tea findings browser.
type browserModel struct {
	log     *result.Log
	entries []result.Entry
	visible []result.Entry
	filter  result.Status // "" means all
	cursor  int

	windowWidth  int
	windowHeight int

	titleStyle  lipgloss.Style
	passStyle   lipgloss.Style
	failStyle   lipgloss.Style
	warnStyle   lipgloss.Style
	cursorStyle lipgloss.Style
	helpStyle   lipgloss.Style
}

func newBrowserModel(log *result.Log) browserModel {
	m := browserModel{
		log:         log,
		entries:     log.Entries(),
		titleStyle:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86")),
		passStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
		failStyle:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
		warnStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
		cursorStyle: lipgloss.NewStyle().Background(lipgloss.Color("240")),
		helpStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
	m.applyFilter("")
	return m
}

func (m *browserModel) applyFilter(filter result.Status) {
	m.filter = filter
	m.visible = m.visible[:0]
	for _, e := range m.entries {
		if filter == "" || e.Status == filter {
			m.visible = append(m.visible, e)
		}
	}
	if m.cursor >= len(m.visible) {
		m.cursor = 0
	}
}

// Init implements tea.Model.
func (m browserModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.windowWidth = msg.Width
		m.windowHeight = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.visible)-1 {
				m.cursor++
			}
		case "a":
			m.applyFilter("")
		case "p":
			m.applyFilter(result.StatusPass)
		case "f":
			m.applyFilter(result.StatusFail)
		case "w":
			m.applyFilter(result.StatusWarn)
		}
	}

	return m, nil
}

// View implements tea.Model.
func (m browserModel) View() string {
	header := m.renderHeader()
	list := m.renderList()
	footer := m.helpStyle.Render("↑/↓ move · p/f/w/a filter · q quit")

	return lipgloss.JoinVertical(lipgloss.Left, header, list, footer)
}

func (m browserModel) renderHeader() string {
	title := m.titleStyle.Render("Marketvet Findings")
	info := fmt.Sprintf("run %s | %d passed, %d failed, %d warning(s)",
		m.log.RunID(), m.log.Passed(), m.log.Failed(), m.log.Warned())
	filter := "all"
	if m.filter != "" {
		filter = string(m.filter)
	}
	return fmt.Sprintf("%s  %s  [showing: %s]\n", title, info, filter)
}

func (m browserModel) renderList() string {
	if len(m.visible) == 0 {
		return m.helpStyle.Render("\n  No findings for this filter.\n")
	}

	// Leave room for header, footer and detail pane.
	maxRows := m.windowHeight - 8
	if maxRows < 1 {
		maxRows = len(m.visible)
	}
	start := 0
	if m.cursor >= maxRows {
		start = m.cursor - maxRows + 1
	}
	end := start + maxRows
	if end > len(m.visible) {
		end = len(m.visible)
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		e := m.visible[i]
		row := fmt.Sprintf("  %s %s", m.statusCell(e.Status), e.Label)
		if i == m.cursor {
			row = m.cursorStyle.Render(row)
		}
		b.WriteString(row)
		b.WriteString("\n")
	}

	if detail := m.visible[m.cursor].Detail; detail != "" {
		b.WriteString("\n")
		b.WriteString(m.helpStyle.Render(truncate(detail, 3*separatorWidth)))
		b.WriteString("\n")
	}

	return b.String()
}

func (m browserModel) statusCell(s result.Status) string {
	cell := fmt.Sprintf("%-4s", s)
	switch s {
	case result.StatusPass:
		return m.passStyle.Render(cell)
	case result.StatusFail:
		return m.failStyle.Render(cell)
	case result.StatusWarn:
		return m.warnStyle.Render(cell)
	}
	return cell
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "…"
}
