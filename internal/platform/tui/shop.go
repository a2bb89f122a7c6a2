package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-lander/internal/storage"
)

// ShopKeyMap defines the key bindings for the shop.
type ShopKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Buy  key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ShopKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Buy, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ShopKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Buy},
		{k.Back, k.Quit},
	}
}

// DefaultShopKeyMap returns default key bindings.
func DefaultShopKeyMap() ShopKeyMap {
	return ShopKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "down"),
		),
		Buy: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "buy"),
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

// ShopModel is the Bubble Tea model for the shop screen.
type ShopModel struct {
	store      *storage.Store
	captain    string
	products   []storage.Product
	coins      int
	pending    string
	status     string
	failed     bool // status reports an error
	table      table.Model
	help       help.Model
	keys       ShopKeyMap
	width      int
	height     int
	standalone bool
	quitting   bool
	goingBack  bool
}

// NewShopModel creates a shop for captain.
func NewShopModel(store *storage.Store, captain string, width, height int) ShopModel {
	m := ShopModel{
		store:      store,
		captain:    captain,
		help:       help.New(),
		keys:       DefaultShopKeyMap(),
		width:      width,
		height:     height,
		standalone: true,
	}
	m.table = m.createTable()
	m.load()
	return m
}

func (m *ShopModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Product", Width: 12},
		{Title: "Price", Width: 10},
		{Title: "Description", Width: max(20, min(m.width-34, 32))},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(3, min(m.height-10, 8))),
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

// load refreshes the products, the wallet and the pending product.
func (m *ShopModel) load() {
	if m.store == nil {
		return
	}
	products, err := m.store.Products()
	if err != nil {
		m.setStatus(err.Error(), true)
		return
	}
	m.products = products

	rows := make([]table.Row, len(products))
	for i, p := range products {
		rows[i] = table.Row{p.Name, fmt.Sprintf("%d %s", p.Price, p.Currency), p.Description}
	}
	m.table.SetRows(rows)

	if coins, err := m.store.Balance(m.captain); err == nil {
		m.coins = coins
	}
	m.pending = ""
	if p, err := m.store.Pending(m.captain); err == nil && p != nil {
		m.pending = p.Name
	}
}

func (m *ShopModel) setStatus(text string, failed bool) {
	m.status = text
	m.failed = failed
}

// buy purchases the highlighted product.
func (m *ShopModel) buy() {
	i := m.table.Cursor()
	if m.store == nil || i < 0 || i >= len(m.products) {
		return
	}
	p := m.products[i]

	coins, err := m.store.Buy(m.captain, p.Name)
	switch {
	case errors.Is(err, storage.ErrInsufficientFunds):
		m.setStatus(fmt.Sprintf("Not enough coins for %s", p.Name), true)
	case err != nil:
		m.setStatus(err.Error(), true)
	case p.Effect == storage.EffectCoins:
		m.setStatus(fmt.Sprintf("Added %d coins", storage.CoinPack), false)
	default:
		m.setStatus(fmt.Sprintf("%s is ready for your next run", p.Name), false)
	}
	if err == nil {
		m.coins = coins
	}
	cursor := m.table.Cursor()
	m.load()
	m.table.SetCursor(cursor)
}

// Init initializes the shop model.
func (m ShopModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the shop.
func (m ShopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

		case key.Matches(msg, m.keys.Buy):
			m.buy()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		cursor := m.table.Cursor()
		m.table = m.createTable()
		m.load()
		m.table.SetCursor(cursor)
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the shop.
func (m ShopModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	b.WriteString("\n")
	b.WriteString(centerText("SHOP", m.width, titleStyle))
	b.WriteString("\n\n")

	wallet := fmt.Sprintf("Captain %s  |  %d coins", m.captain, m.coins)
	if m.pending != "" {
		wallet += "  |  next run: " + m.pending
	}
	b.WriteString(centerText(wallet, m.width, dimStyle))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(centerText(tableStyle.Render(m.table.View()), m.width, lipgloss.NewStyle()))
	b.WriteString("\n")

	if m.status != "" {
		statusStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
		if m.failed {
			statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
		}
		b.WriteString(centerText(m.status, m.width, statusStyle))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ShopModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ShopModel) IsQuitting() bool {
	return m.quitting
}

// RunShop runs the shop screen for captain.
// Returns true if user wants to go back to menu, false if quitting.
func RunShop(store *storage.Store, captain string, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewShopModel(store, captain, width, height), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ShopModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
