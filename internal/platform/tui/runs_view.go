package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/storage"
)

// shortIDLen is how much of a run ID the table shows. Any unique prefix is
// accepted by storage.Store.Run.
const shortIDLen = 8

// RunsKeyMap defines the key bindings for the run browser.
type RunsKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k RunsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k RunsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Select, k.Quit}}
}

// DefaultRunsKeyMap returns default key bindings.
func DefaultRunsKeyMap() RunsKeyMap {
	return RunsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "replay"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// RunsModel is a table of stored runs. Selecting a row ends the program
// and reports the run's ID through Selected.
type RunsModel struct {
	runs     []storage.Run
	table    table.Model
	help     help.Model
	keys     RunsKeyMap
	height   int
	selected string
	quitting bool
}

// NewRunsModel creates a run browser over runs, newest first.
func NewRunsModel(runs []storage.Run, height int) RunsModel {
	m := RunsModel{
		runs:   runs,
		help:   help.New(),
		keys:   DefaultRunsKeyMap(),
		height: height,
	}
	m.table = m.createTable()
	return m
}

func (m *RunsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "ID", Width: shortIDLen},
		{Title: "Score", Width: 6},
		{Title: "Ticks", Width: 7},
		{Title: "Grid", Width: 7},
		{Title: "End", Width: 15},
		{Title: "Date", Width: 12},
	}

	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		rows[i] = table.Row{
			shortID(r.ID),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Ticks),
			fmt.Sprintf("%dx%d", r.GridW, r.GridH),
			r.EndReason,
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(max(m.height-6, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Init initializes the run browser.
func (m RunsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the run browser.
func (m RunsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Select):
			if len(m.runs) > 0 {
				m.selected = m.runs[m.table.Cursor()].ID
			}
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.height = msg.Height
		m.help.Width = msg.Width
		cursor := m.table.Cursor()
		m.table = m.createTable()
		m.table.SetCursor(cursor)
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the run browser.
func (m RunsModel) View() string {
	if m.quitting || m.selected != "" {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(fmt.Sprintf("RECENT RUNS (%d)", len(m.runs))))
	b.WriteString("\n\n")

	if len(m.runs) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 2)
		b.WriteString(emptyStyle.Render("No runs recorded yet."))
	} else {
		tableStyle := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
		b.WriteString(tableStyle.Render(m.table.View()))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Selected returns the ID of the chosen run, or "" if none was chosen.
func (m RunsModel) Selected() string {
	return m.selected
}

func shortID(id string) string {
	if len(id) > shortIDLen {
		return id[:shortIDLen]
	}
	return id
}

// BrowseRuns shows the run browser and returns the selected run ID.
func BrowseRuns(runs []storage.Run, height int) (string, error) {
	p := tea.NewProgram(NewRunsModel(runs, height), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	m, ok := finalModel.(RunsModel)
	if !ok {
		return "", nil
	}
	return m.Selected(), nil
}
