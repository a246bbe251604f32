package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ormakov/hexpop/internal/storage"
)

// maxScores is how many entries the scoreboard loads.
const maxScores = 100

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the scoreboard screen.
type ScoreboardModel struct {
	store    *storage.Store
	scores   []storage.ScoreEntry
	stats    *storage.Stats
	table    table.Model
	help     help.Model
	keys     ScoreboardKeyMap
	width    int
	height   int
	quitting bool
}

// NewScoreboardModel creates a new scoreboard model.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}

	m.table = m.createTable()
	m.loadScores()

	return m
}

// createTable creates a new table with appropriate columns.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 10},
		{Title: "Bubbles", Width: 9},
		{Title: "Level", Width: 7},
		{Title: "Date", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(m.height-8), // Leave room for header, help, and margins
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

// loadScores loads scores and aggregate stats from the store.
func (m *ScoreboardModel) loadScores() {
	if m.store == nil {
		m.scores = nil
		m.stats = nil
		m.updateTableRows()
		return
	}

	scores, err := m.store.TopScores(maxScores)
	if err != nil {
		m.scores = nil
	} else {
		m.scores = scores
	}
	if stats, err := m.store.GetStats(); err == nil {
		m.stats = stats
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current scores.
func (m *ScoreboardModel) updateTableRows() {
	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", s.Score),
			fmt.Sprintf("%d", s.BubblesPopped),
			fmt.Sprintf("%d", s.Level),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	content := titleStyle.Render("HEX POP - HIGH SCORES") + "\n\n"
	content += tableStyle.Render(m.renderTableContent())

	if m.stats != nil && m.stats.RunsCount > 0 {
		statsStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
		content += "\n" + statsStyle.Render(fmt.Sprintf(
			"%d runs, %d bubbles popped all time, avg score %.0f",
			m.stats.RunsCount, m.stats.TotalBubbles, m.stats.AvgScore,
		))
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	content += "\n" + helpStyle.Render(m.help.View(m.keys))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// renderTableContent renders the table or an empty message.
func (m ScoreboardModel) renderTableContent() string {
	if len(m.scores) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No scores recorded yet.\nPlay a game to set a high score!")
	}

	return m.table.View()
}

// RunScoreboard runs the scoreboard screen.
func RunScoreboard(store *storage.Store, width, height int) error {
	model := NewScoreboardModel(store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
