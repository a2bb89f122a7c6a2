package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-lander/internal/core"
	"github.com/vovakirdan/tui-lander/internal/storage"
)

// fakeGame records what the model hands it.
type fakeGame struct {
	frames  []core.InputFrame
	state   core.GameState
	loadout core.Loadout
	resets  int
	closed  bool
}

func (g *fakeGame) ID() string { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }
func (g *fakeGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *fakeGame) Render(*core.Screen) {}
func (g *fakeGame) State() core.GameState { return g.state }
func (g *fakeGame) SetLoadout(l core.Loadout) { g.loadout = l }
func (g *fakeGame) Close() error {
	g.closed = true
	return nil
}
func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	in.Occurrences = append([]core.Occurrence(nil), in.Occurrences...)
	g.frames = append(g.frames, in)
	return core.StepResult{State: g.state}
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "lander.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func TestModelTicks(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, nil, core.DefaultConfig(), Options{Release: 100 * time.Millisecond})

	t0 := time.Now()
	m, _ = update(t, m, TickMsg(t0))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m, _ = update(t, m, TickMsg(t0.Add(33*time.Millisecond)))
	m, _ = update(t, m, TickMsg(t0.Add(time.Second)))

	if len(g.frames) != 3 {
		t.Fatalf("got %d steps, want 3", len(g.frames))
	}
	if g.frames[0].Elapsed != 0 {
		t.Errorf("first frame elapsed = %d, want 0", g.frames[0].Elapsed)
	}
	if g.frames[1].Elapsed != 33 {
		t.Errorf("second frame elapsed = %d, want 33", g.frames[1].Elapsed)
	}
	if g.frames[2].Elapsed != 967 {
		t.Errorf("third frame elapsed = %d, want the raw 967", g.frames[2].Elapsed)
	}
	if m.clock.Last() != 967 {
		t.Errorf("clock last = %d, want 967", m.clock.Last())
	}
	if !g.frames[1].Has(core.OccurKeyDown, core.KeyUp) {
		t.Errorf("second frame = %+v, want the key down", g.frames[1].Occurrences)
	}
	if !g.frames[2].Has(core.OccurKeyUp, core.KeyUp) {
		t.Errorf("third frame = %+v, want the synthesized key up", g.frames[2].Occurrences)
	}
}

func TestModelQuit(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, nil, core.DefaultConfig(), Options{})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	g.state.Quit = true
	m, cmd := update(t, m, TickMsg(time.Now()))

	if !g.frames[0].Has(core.OccurQuit, core.KeyNone) {
		t.Error("quit key should reach the game as a quit occurrence")
	}
	if !m.Done() || cmd == nil {
		t.Error("model should quit once the game asks to")
	}
	if !g.closed {
		t.Error("game should be closed")
	}

	embedded := NewModel(&fakeGame{state: core.GameState{Quit: true}}, nil, core.DefaultConfig(), Options{}).embedded()
	embedded, cmd = update(t, embedded, TickMsg(time.Now()))
	if !embedded.Done() || cmd != nil {
		t.Error("embedded model should hand back control without a command")
	}
}

func TestModelSavesScoreOnce(t *testing.T) {
	store := openStore(t)
	g := &fakeGame{}
	m := NewModel(g, store, core.DefaultConfig(), Options{Captain: "neil"})

	g.state = core.GameState{Score: 3, GameOver: true}
	for range 5 {
		m, _ = update(t, m, TickMsg(time.Now()))
	}

	// Restart, then a second game over.
	g.state = core.GameState{}
	m, _ = update(t, m, TickMsg(time.Now()))
	g.state = core.GameState{Score: 2, GameOver: true}
	m, _ = update(t, m, TickMsg(time.Now()))

	scores, err := store.TopScores("fake", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(scores) != 2 {
		t.Fatalf("saved %d scores, want 2", len(scores))
	}
	if scores[0].Score != 3 || scores[0].Captain != "neil" {
		t.Errorf("top score = %+v", scores[0])
	}
}

func TestModelSkipsZeroScore(t *testing.T) {
	store := openStore(t)
	g := &fakeGame{state: core.GameState{GameOver: true}}
	m := NewModel(g, store, core.DefaultConfig(), Options{Captain: "neil"})
	update(t, m, TickMsg(time.Now()))

	scores, err := store.TopScores("fake", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(scores) != 0 {
		t.Errorf("saved %d scores, want none", len(scores))
	}
}

func TestModelConsumesLoadout(t *testing.T) {
	store := openStore(t)
	if _, err := store.EnsureAccount("neil"); err != nil {
		t.Fatal(err)
	}
	if _, err := store.Buy("neil", "Shield"); err != nil {
		t.Fatal(err)
	}

	g := &fakeGame{}
	m := NewModel(g, store, core.DefaultConfig(), Options{Captain: "neil"})
	m.Init()

	if !g.loadout.Shield {
		t.Error("shield should be handed to the game")
	}
	if g.resets != 1 {
		t.Errorf("resets = %d, want 1", g.resets)
	}
	if p, err := store.Pending("neil"); err != nil || p != nil {
		t.Errorf("pending = %v, %v; want consumed", p, err)
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.SetColored(0, 0, 'A', core.ColorRed)
	s.SetColored(1, 0, 'B', core.ColorDarkGray)
	out := RenderScreen(s)
	for _, want := range []string{"A", "B"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered screen misses %q", want)
		}
	}
}
