package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-lander/internal/registry"
	"github.com/vovakirdan/tui-lander/internal/storage"
)

const (
	minWidthForSidebar = 80
	sidebarWidth       = 26
	maxScores          = 100
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextMode key.Binding
	PrevMode key.Binding
	Mine     key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextMode, k.PrevMode, k.Mine, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextMode, k.PrevMode},
		{k.Mine, k.Back, k.Quit},
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
		NextMode: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next mode"),
		),
		PrevMode: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev mode"),
		),
		Mine: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "my landings"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel lists the best runs of each mode.
type ScoreboardModel struct {
	modes      []registry.GameInfo
	mode       int
	store      *storage.Store
	captain    string
	mineOnly   bool // show only the captain's runs
	scores     []storage.ScoreEntry
	stats      *storage.GameStats
	table      table.Model
	help       help.Model
	keys       ScoreboardKeyMap
	width      int
	height     int
	quitting   bool
	goingBack  bool
	standalone bool
}

// NewScoreboardModel creates a scoreboard. The captain's runs are marked
// and can be filtered; an empty captain disables the filter.
func NewScoreboardModel(store *storage.Store, captain string, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		modes:      registry.List(),
		store:      store,
		captain:    captain,
		help:       help.New(),
		keys:       DefaultScoreboardKeyMap(),
		width:      width,
		height:     height,
		standalone: true,
	}
	m.keys.Mine.SetEnabled(captain != "")
	m.table = m.createTable()
	m.load()
	return m
}

func (m *ScoreboardModel) sidebar() bool {
	return m.width >= minWidthForSidebar
}

func (m *ScoreboardModel) createTable() table.Model {
	captainWidth := 14
	if free := m.width - 4 - 36; m.sidebar() {
		captainWidth = max(captainWidth, min(free-sidebarWidth-3, 24))
	} else {
		captainWidth = max(captainWidth, min(free, 24))
	}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Captain", Width: captainWidth},
			{Title: "Landings", Width: 10},
			{Title: "Date", Width: 14},
		}),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-10)),
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

// load fetches the scores and stats of the current mode.
func (m *ScoreboardModel) load() {
	m.scores, m.stats = nil, nil
	if m.store != nil && len(m.modes) > 0 {
		id := m.modes[m.mode].ID
		if scores, err := m.store.TopScores(id, maxScores); err == nil {
			m.scores = scores
		}
		if stats, err := m.store.GetGameStats(id); err == nil {
			m.stats = stats
		}
	}
	m.fillTable()
}

// fillTable rebuilds the rows. Ranks stay global when filtering.
func (m *ScoreboardModel) fillTable() {
	rows := make([]table.Row, 0, len(m.scores))
	for i, s := range m.scores {
		mine := m.captain != "" && s.Captain == m.captain
		if m.mineOnly && !mine {
			continue
		}
		name := captainName(s.Captain)
		if mine {
			name = "* " + name
		}
		rows = append(rows, table.Row{
			fmt.Sprintf("#%d", i+1),
			name,
			fmt.Sprintf("%d", s.Score),
			s.CreatedAt.Format("Jan 02 15:04"),
		})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m *ScoreboardModel) step(delta int) {
	if len(m.modes) == 0 {
		return
	}
	m.mode = (m.mode + delta + len(m.modes)) % len(m.modes)
	m.load()
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
			return m, leave(m.standalone)

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, leave(m.standalone)

		case key.Matches(msg, m.keys.NextMode):
			m.step(1)
			return m, nil

		case key.Matches(msg, m.keys.PrevMode):
			m.step(-1)
			return m, nil

		case key.Matches(msg, m.keys.Mine):
			m.mineOnly = !m.mineOnly
			m.fillTable()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.fillTable()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	var b strings.Builder
	title := "HIGH SCORES"
	if len(m.modes) > 0 {
		title += " - " + m.modes[m.mode].Title
	}
	if m.mineOnly {
		title += " (" + m.captain + ")"
	}
	b.WriteString("\n")
	b.WriteString(centerText(title, m.width, titleStyle))
	b.WriteString("\n\n")

	scores := boxStyle.Render(m.tableView())
	if m.sidebar() {
		side := boxStyle.Width(sidebarWidth).Render(m.sidebarView())
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, side, "  ", scores))
	} else {
		if len(m.modes) > 0 {
			b.WriteString(centerText("< "+m.modes[m.mode].Title+" >", m.width, dimStyle))
			b.WriteString("\n\n")
		}
		b.WriteString(centerText(scores, m.width, lipgloss.NewStyle()))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// sidebarView lists the modes and the stats of the selected one.
func (m ScoreboardModel) sidebarView() string {
	var b strings.Builder
	b.WriteString("Modes\n")
	b.WriteString(strings.Repeat("-", sidebarWidth-4))
	b.WriteString("\n")

	for i, g := range m.modes {
		prefix, style := "  ", lipgloss.NewStyle()
		if i == m.mode {
			prefix, style = "> ", style.Bold(true).Foreground(lipgloss.Color("229"))
		}
		name := g.Title
		if limit := sidebarWidth - 6; len(name) > limit {
			name = name[:limit-1] + "."
		}
		b.WriteString(style.Render(prefix + name))
		b.WriteString("\n")
	}

	if m.stats != nil && m.stats.GamesCount > 0 {
		b.WriteString("\n")
		fmt.Fprintf(&b, "Runs      %d\n", m.stats.GamesCount)
		fmt.Fprintf(&b, "Landings  %d\n", m.stats.TotalScore)
		fmt.Fprintf(&b, "Best      %d\n", m.stats.HighScore)
		fmt.Fprintf(&b, "Average   %.1f\n", m.stats.AvgScore)
		fmt.Fprintf(&b, "Last      %s", m.stats.LastPlayed.Format("Jan 02"))
	}
	return b.String()
}

func (m ScoreboardModel) tableView() string {
	if len(m.table.Rows()) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		if m.mineOnly {
			return emptyStyle.Render("No landings by " + m.captain + " yet.")
		}
		return emptyStyle.Render("No landings recorded yet.\nTouch down to set a high score!")
	}
	return m.table.View()
}

// captainName shows scores saved without a captain as anonymous.
func captainName(name string) string {
	if name == "" {
		return "anonymous"
	}
	return name
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, captain string, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, captain, width, height), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
