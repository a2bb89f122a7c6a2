// Package lander implements the moon lander: fly a thrust-and-gravity
// ship onto the landing pad before the fuel runs out, dodging the alien
// saucer, its bombs and falling asteroids.
//
// The game runs on the engine packages. Input arrives as raw occurrences
// queued into an event group, every body moves along a motion path, and
// each Step resolves collisions in a fixed order before updating the score
// and the fuel state.
package lander

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-lander/internal/config"
	"github.com/vovakirdan/tui-lander/internal/core"
	"github.com/vovakirdan/tui-lander/internal/engine/clock"
	"github.com/vovakirdan/tui-lander/internal/engine/event"
	"github.com/vovakirdan/tui-lander/internal/engine/path"
	"github.com/vovakirdan/tui-lander/internal/registry"
)

// Game implements the moon lander.
type Game struct {
	id    string
	title string
	mode  string // terrain mode forced by this variant, empty to use the config

	runtime    core.RuntimeConfig
	cfg        config.LanderConfig
	cfgPath    string
	difficulty *config.DifficultyManager
	rng        *rand.Rand
	log        *log.Logger
	loadout    core.Loadout
	watcher    *config.Watcher

	queue   *event.Queue
	events  *event.Group // controls and timers of the run
	modal   *event.Group // game-over prompt
	respawn *event.Event

	ship     *Ship
	fuel     *Tank
	terrain  *Terrain
	alien    *Alien
	gift     *Gift
	asteroid *Faller
	msg      *message

	score     int
	landings  int
	elapsed   int // ms of unpaused play
	fuelState fuelState
	visited   bool // the pad of this approach already scored

	gameOver bool
	ready    bool // the game-over prompt accepts keys
	paused   bool
	quit     bool
}

var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	watchConfig      bool
	logger           = log.New(io.Discard)
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = "" // Use config default
	}
}

// SetWatch enables reloading the config file while a game runs.
func SetWatch(enabled bool) {
	watchConfig = enabled
}

// SetLogger sets the logger used by games created afterwards. Nil
// discards all output.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// New creates a lander game. mode forces a terrain mode; empty leaves the
// choice to the config.
func New(id, title, mode string) *Game {
	return &Game{id: id, title: title, mode: mode, log: logger}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// SetLoadout sets the consumables for the runs of this game. Call it
// before Reset.
func (g *Game) SetLoadout(l core.Loadout) {
	g.loadout = l
}

// Loadout returns the active consumables.
func (g *Game) Loadout() core.Loadout {
	return g.loadout
}

// Reset loads the config and starts a new run.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.log = logger

	cfg, used, err := config.LoadLanderFrom(configPath)
	if err != nil {
		g.log.Error("cannot load config, using defaults", "err", err)
		cfg = config.DefaultLanderConfig()
		used = ""
	}
	config.ApplyLanderPreset(&cfg, difficultyPreset)
	if g.mode != "" {
		cfg.Terrain.Mode = g.mode
	}
	g.cfg = cfg
	g.cfgPath = used
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.watch()

	g.teardown()
	if err := g.start(); err != nil {
		g.log.Error("cannot start run", "err", err)
		g.quit = true
	}
}

// watch starts the config watcher when reloading is enabled and the
// config came from a file.
func (g *Game) watch() {
	if !watchConfig || g.cfgPath == "" {
		g.stopWatch()
		return
	}
	if g.watcher != nil {
		return
	}
	w, err := config.NewWatcher(g.cfgPath, difficultyPreset)
	if err != nil {
		g.log.Warn("cannot watch config", "path", g.cfgPath, "err", err)
		return
	}
	g.watcher = w
	g.log.Debug("watching config", "path", w.Path())
}

func (g *Game) stopWatch() {
	if g.watcher == nil {
		return
	}
	if err := g.watcher.Close(); err != nil {
		g.log.Warn("cannot stop config watcher", "err", err)
	}
	g.watcher = nil
}

// Close releases the config watcher.
func (g *Game) Close() error {
	g.stopWatch()
	return nil
}

// start builds a fresh run: tank, ship, alien, controls and the first
// approach. Score and landings start from zero.
func (g *Game) start() error {
	w, h := g.cfg.World.Width, g.cfg.World.Height

	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.queue = event.NewQueue()
	g.events = event.NewGroup()
	g.modal = nil
	g.respawn = nil
	g.msg = nil
	g.gift = nil
	g.asteroid = nil

	g.score = 0
	g.landings = 0
	g.elapsed = 0
	g.fuelState = fuelOK
	g.gameOver = false
	g.ready = false
	g.paused = false
	g.quit = false

	seconds := g.cfg.Fuel.Seconds
	if g.loadout.FuelPack {
		seconds = g.cfg.Fuel.PackSeconds
	}
	g.fuel = NewTank(g.cfg.Fuel, seconds)

	ship, err := newShip(g.cfg.Lander, g.fuel)
	if err != nil {
		return fmt.Errorf("lander: build ship: %w", err)
	}
	g.ship = ship
	alien, err := newAlien(g.cfg.Alien, w, h, g.rng, g.events)
	if err != nil {
		return fmt.Errorf("lander: build alien: %w", err)
	}
	g.alien = alien

	if err := g.bindControls(); err != nil {
		return err
	}

	g.approach()
	g.log.Info("run started", "game", g.id, "terrain", g.terrain.Mode, "seed", g.runtime.Seed,
		"shield", g.loadout.Shield, "fuel_pack", g.loadout.FuelPack)
	return nil
}

// approach sets up the next landing: new terrain, the alien back in
// hiding, no gift, gravity for the current level and a fresh ship. Fuel
// and score carry over.
func (g *Game) approach() {
	g.terrain = generateTerrain(g.rng, g.cfg.Terrain, g.cfg.World.Width, g.cfg.World.Height)
	g.visited = false
	g.gift = nil
	g.hush()
	g.hideAlien()
	g.ship.path.SetGravity(core.V(0, g.difficulty.Gravity(g.cfg.Lander.Gravity, g.landings, g.elapsed)))
	g.spawnShip()
}

// Step advances the game by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.reload()
	g.queue.Push(in.Occurrences...)
	ticks := clock.Cap(in.Elapsed)

	if g.gameOver {
		g.check(g.modal, ticks)
		return core.StepResult{State: g.State()}
	}
	if g.paused {
		g.check(g.events, 0)
		return core.StepResult{State: g.State()}
	}

	g.check(g.events, ticks)
	if g.paused || g.quit || g.gameOver {
		return core.StepResult{State: g.State()}
	}

	g.elapsed += ticks
	g.frame(ticks)
	return core.StepResult{State: g.State()}
}

// frame moves every body and resolves the consequences.
func (g *Game) frame(ticks int) {
	if err := g.ship.move(ticks, g.cfg.Fuel.IdleDivisor); err != nil {
		g.log.Warn("ship move failed", "err", err)
	}
	if err := g.moveHazards(ticks); err != nil {
		g.log.Warn("hazard move failed", "err", err)
	}
	g.terrain.Planet.Drift(ticks)
	g.offScreen()
	g.collide()
	g.spawnHazards()
	g.updateFuel()
}

// reload applies a config delivered by the watcher. The world size and
// the fuel tank keep their values until the next run.
func (g *Game) reload() {
	if g.watcher == nil {
		return
	}
	select {
	case err, ok := <-g.watcher.Errors:
		if ok {
			g.log.Warn("config reload failed", "err", err)
		}
	default:
	}
	select {
	case cfg, ok := <-g.watcher.Configs:
		if ok {
			g.apply(cfg)
		}
	default:
	}
}

func (g *Game) apply(cfg config.LanderConfig) {
	cfg.World = g.cfg.World
	if g.mode != "" {
		cfg.Terrain.Mode = g.mode
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	g.ship.cfg = cfg.Lander
	g.ship.path.SetGravity(core.V(0, g.difficulty.Gravity(cfg.Lander.Gravity, g.landings, g.elapsed)))
	if err := g.ship.path.Restrict(path.MaxSpeed(cfg.Lander.MaxSpeed)); err != nil {
		g.log.Warn("cannot apply max speed", "err", err)
	}
	g.alien.cfg = cfg.Alien
	g.log.Info("config reloaded", "path", g.watcher.Path())
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
		Quit:     g.quit,
	}
}

// Register the game modes with the registry
func init() {
	registry.Register("lander", func() registry.Game {
		return New("lander", "Moon Lander", "")
	})
	registry.Register("lander_rugged", func() registry.Game {
		return New("lander_rugged", "Moon Lander: Highlands", ModeRugged)
	})
	registry.Register("lander_flat", func() registry.Game {
		return New("lander_flat", "Moon Lander: Plains", ModeFlat)
	})
}
