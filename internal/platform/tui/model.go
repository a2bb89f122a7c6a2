package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-lander/internal/core"
	"github.com/vovakirdan/tui-lander/internal/engine/clock"
	"github.com/vovakirdan/tui-lander/internal/registry"
	"github.com/vovakirdan/tui-lander/internal/storage"
)

// Options configure a game session.
type Options struct {
	Captain string        // owner of saved scores and consumables
	Release time.Duration // key release window, DefaultRelease if zero
	Logger  *log.Logger
}

func (o Options) logger() *log.Logger {
	if o.Logger == nil {
		return log.New(io.Discard)
	}
	return o.Logger
}

// loadoutSetter is implemented by games that honour shop consumables.
type loadoutSetter interface {
	SetLoadout(core.Loadout)
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	opts       Options
	keys       *KeyMapper
	tracker    *KeyTracker
	inputFrame core.InputFrame
	clock      *clock.Clock
	frameAt    *time.Time // time of the tick being handled, read by clock
	ticking    bool       // the clock has seen its first tick
	gameState  core.GameState
	standalone bool // quit the program when the game ends
	quitting   bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	frameAt := new(time.Time)
	return Model{
		game:       game,
		clock:      clock.NewWithSource(func() time.Time { return *frameAt }),
		frameAt:    frameAt,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		opts:       opts,
		keys:       NewKeyMapper(),
		tracker:    NewKeyTracker(opts.Release),
		standalone: true,
	}
}

// embedded returns a copy of m that hands control back to its parent
// instead of quitting the program.
func (m Model) embedded() Model {
	m.standalone = false
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	applyLoadout(m.game, m.store, m.opts.Captain, m.opts.logger())
	m.game.Reset(m.config)
	// Note: gameState will be set on first tick (value receiver limitation)

	// Start the tick loop
	return tickCmd(m.config.TickRate)
}

// applyLoadout consumes the captain's pending product and hands it to the
// game for this session.
func applyLoadout(game registry.Game, store *storage.Store, captain string, logger *log.Logger) {
	g, ok := game.(loadoutSetter)
	if !ok || store == nil || captain == "" {
		return
	}
	l, err := store.Consume(captain)
	if err != nil {
		logger.Warn("cannot consume pending product", "captain", captain, "err", err)
		return
	}
	g.SetLoadout(l)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey queues the occurrences produced by a key press.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	k, quit := m.keys.MapKey(msg)
	if quit {
		m.inputFrame.Push(core.QuitOccurrence())
		return m, nil
	}
	for _, occ := range m.tracker.Press(k, time.Now()) {
		m.inputFrame.Push(occ)
	}
	return m, nil
}

// handleResize processes window resize events. The world keeps its size;
// only the view is rescaled.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick runs one simulation step with the time elapsed since the
// previous tick. The clock reads the tick's own timestamp, so the first
// frame sees no elapsed time.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	*m.frameAt = now
	if !m.ticking {
		m.ticking = true
		m.clock.Reset()
	}
	elapsed := m.clock.Tick()

	for _, occ := range m.tracker.Expire(now) {
		m.inputFrame.Push(occ)
	}
	m.inputFrame.Elapsed = elapsed

	result := m.game.Step(m.inputFrame)
	m.inputFrame.Clear()

	if m.gameState.GameOver && !result.State.GameOver {
		m.scoreSaved = false // restarted
	}
	m.gameState = result.State
	m.saveScore()

	if m.gameState.Quit {
		m.quitting = true
		m.close()
		if m.standalone {
			return m, tea.Quit
		}
		return m, nil
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScore stores the score once per game over.
func (m *Model) saveScore() {
	if !m.gameState.GameOver || m.scoreSaved || m.gameState.Score <= 0 {
		return
	}
	m.scoreSaved = true
	if m.store == nil {
		return
	}
	if _, err := m.store.SaveScore(m.game.ID(), m.opts.Captain, m.gameState.Score); err != nil {
		m.opts.logger().Error("cannot save score", "game", m.game.ID(), "err", err)
		return
	}
	m.opts.logger().Info("score saved", "game", m.game.ID(), "captain", m.opts.Captain, "score", m.gameState.Score)
}

func (m Model) close() {
	if c, ok := m.game.(io.Closer); ok {
		if err := c.Close(); err != nil {
			m.opts.logger().Warn("cannot close game", "err", err)
		}
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	// Render current state
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".lander", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	// Save screenshot
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// Done reports whether the game ended.
func (m Model) Done() bool {
	return m.quitting
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	// Convert screen to string
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if m, ok := final.(Model); ok && !m.quitting {
		m.close()
	}
	return err
}
