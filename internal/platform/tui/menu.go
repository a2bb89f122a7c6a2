package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-lander/internal/core"
	"github.com/vovakirdan/tui-lander/internal/registry"
	"github.com/vovakirdan/tui-lander/internal/storage"
)

// MenuItem represents a selectable game mode in the menu.
type MenuItem struct {
	GameID string
	Title  string
}

// MenuModel is the Bubble Tea model for the mode picker menu.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	width          int
	height         int
	store          *storage.Store
	captain        string
	coins          int
	pending        string // name of the product waiting for the next run
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	standalone     bool
	quitting       bool
	selected       *MenuItem // Set when user selects a game
	openScoreboard bool      // True if user pressed Tab for scoreboard
	openShop       bool      // True if user pressed S for the shop
}

// NewMenuModel creates a new menu model for captain.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig, captain string) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games))
	for _, g := range games {
		items = append(items, MenuItem{GameID: g.ID, Title: g.Title})
	}

	m := MenuModel{
		items:      items,
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
		store:      store,
		captain:    captain,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		standalone: true,
	}
	m.refresh()
	return m
}

// refresh reloads the wallet and the pending product.
func (m *MenuModel) refresh() {
	if m.store == nil || m.captain == "" {
		return
	}
	if coins, err := m.store.Balance(m.captain); err == nil {
		m.coins = coins
	}
	m.pending = ""
	if p, err := m.store.Pending(m.captain); err == nil && p != nil {
		m.pending = p.Name
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, leave(m.standalone)

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, leave(m.standalone)
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, leave(m.standalone)

	case MenuActionShop:
		if m.store != nil && m.captain != "" {
			m.openShop = true
			return m, leave(m.standalone)
		}
	}

	return m, nil
}

// leave ends a screen. A standalone program quits; an embedded screen
// hands control back to its session.
func leave(standalone bool) tea.Cmd {
	if standalone {
		return tea.Quit
	}
	return nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	b.WriteString("\n")
	b.WriteString(centerText("  M O O N   L A N D E R  ", m.width, titleStyle))
	b.WriteString("\n\n")

	if m.captain != "" {
		header := fmt.Sprintf("Captain %s  |  %d coins", m.captain, m.coins)
		if m.pending != "" {
			header += "  |  next run: " + m.pending
		}
		b.WriteString(centerText(header, m.width, dimStyle))
		b.WriteString("\n\n")
	}

	b.WriteString(centerText("Select a mode", m.width, lipgloss.NewStyle()))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.cursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}
		b.WriteString(centerText(cursor+item.Title, m.width, style))
		b.WriteString("\n")
	}

	// Footer with controls
	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Play  |  S: Shop  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(controls, m.width, dimStyle))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// WantsShop returns true if user requested the shop.
func (m MenuModel) WantsShop() bool {
	return m.openShop
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width and applies style.
func centerText(text string, width int, style lipgloss.Style) string {
	w := lipgloss.Width(text)
	if w >= width {
		return style.Render(text)
	}
	return strings.Repeat(" ", (width-w)/2) + style.Render(text)
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID          string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	WantsShop       bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig, captain string) (MenuResult, error) {
	model := NewMenuModel(store, cfg, captain)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{
		Config: m.Config(),
	}

	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.WantsShop():
		result.WantsShop = true
	case m.IsQuitting():
		result.Quit = true
	case m.Selected() != nil:
		result.GameID = m.Selected().GameID
	default:
		result.Quit = true
	}

	return result, nil
}
