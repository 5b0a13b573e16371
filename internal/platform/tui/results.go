package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-gobblet/internal/storage"
)

// Results layout constants
const (
	minWidthForSidebar = 80 // Minimum width to show the tally sidebar
	sidebarWidth       = 24 // Width of the tally sidebar
	maxMatches         = 100
)

// ResultsSource is the read side of match storage. *storage.Store implements it.
type ResultsSource interface {
	RecentMatches(gameID string, limit int) ([]storage.MatchEntry, error)
	WinTally(gameID string) ([]storage.Tally, error)
}

// ResultsKeyMap defines the key bindings for the results screen.
type ResultsKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Details key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ResultsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Details, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ResultsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Details, k.Quit}}
}

// DefaultResultsKeyMap returns default key bindings.
func DefaultResultsKeyMap() ResultsKeyMap {
	return ResultsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Details: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "show moves"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ResultsModel is the Bubble Tea model for the match results screen.
type ResultsModel struct {
	gameID      string
	title       string
	matches     []storage.MatchEntry
	tally       []storage.Tally
	loadErr     error
	table       table.Model
	help        help.Model
	keys        ResultsKeyMap
	width       int
	height      int
	showMoves   bool
	quitting    bool
	showSidebar bool
}

// NewResultsModel creates a results model and loads matches for gameID.
func NewResultsModel(src ResultsSource, gameID, title string, width, height int) ResultsModel {
	m := ResultsModel{
		gameID:      gameID,
		title:       title,
		keys:        DefaultResultsKeyMap(),
		help:        help.New(),
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	m.table = m.createTable()
	m.load(src)
	return m
}

// createTable creates a new table with appropriate columns.
func (m *ResultsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Winner", Width: 12},
		{Title: "Moves", Width: 6},
		{Title: "Lines", Width: 22},
		{Title: "Date", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)),
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

// load reads matches and the tally from src.
func (m *ResultsModel) load(src ResultsSource) {
	if src == nil {
		m.updateTableRows()
		return
	}

	m.matches, m.loadErr = src.RecentMatches(m.gameID, maxMatches)
	if m.loadErr == nil {
		m.tally, m.loadErr = src.WinTally(m.gameID)
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current matches.
func (m *ResultsModel) updateTableRows() {
	rows := make([]table.Row, len(m.matches))
	for i, e := range m.matches {
		rows[i] = table.Row{
			fmt.Sprintf("%d", e.ID),
			e.Winner,
			fmt.Sprintf("%d", e.HalfMoves),
			strings.Join(e.Lines, ", "),
			e.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the results model.
func (m ResultsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the results screen.
func (m ResultsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Details):
			m.showMoves = !m.showMoves
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the results screen.
func (m ResultsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(centerText("RESULTS - "+m.title, m.width)))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	main := boxStyle.Render(m.renderTableContent())
	if m.showSidebar {
		sidebar := boxStyle.Width(sidebarWidth).Render(m.renderTally())
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, sidebar, "  ", main))
	} else {
		b.WriteString(m.renderTally())
		b.WriteString("\n")
		b.WriteString(main)
	}

	if m.showMoves {
		b.WriteString("\n")
		b.WriteString(m.renderMoves())
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTally lists wins per player.
func (m ResultsModel) renderTally() string {
	var b strings.Builder
	b.WriteString("Wins\n")
	b.WriteString(strings.Repeat("-", sidebarWidth-4))
	b.WriteString("\n")
	if len(m.tally) == 0 {
		b.WriteString("none yet")
		return b.String()
	}
	for _, t := range m.tally {
		fmt.Fprintf(&b, "%-14s %3d\n", t.Winner, t.Wins)
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderTableContent renders the table or an empty message.
func (m ResultsModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	if m.loadErr != nil {
		return emptyStyle.Render("Could not load results:\n" + m.loadErr.Error())
	}
	if len(m.matches) == 0 {
		return emptyStyle.Render("No matches recorded yet.\nFinish a match to see it here!")
	}
	return m.table.View()
}

// renderMoves shows the transcript of the selected match.
func (m ResultsModel) renderMoves() string {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.matches) {
		return ""
	}
	e := m.matches[i]
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")).
		Width(max(m.width-4, 20)).
		Render(fmt.Sprintf("Match %d: %s", e.ID, strings.Join(e.Transcript, ", ")))
}

// centerText pads text so it appears centered in width columns.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// RunResults runs the results screen until the user quits.
func RunResults(src ResultsSource, gameID, title string, width, height int) error {
	model := NewResultsModel(src, gameID, title, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
