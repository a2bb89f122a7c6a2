package lander

import (
	"fmt"

	"github.com/vovakirdan/tui-lander/internal/core"
	"github.com/vovakirdan/tui-lander/internal/engine/event"
)

// Key bindings.
var (
	engineKeys    = []core.Key{core.KeyUp, core.KeyW, core.KeySpace}
	leftFlapKeys  = []core.Key{core.KeyLeft, core.KeyA}
	rightFlapKeys = []core.Key{core.KeyRight, core.KeyD}
)

// bindControls registers the in-flight events of a run.
func (g *Game) bindControls() error {
	src := event.WithSource(g.queue)

	engine, err := event.NewKey(event.KeyHandlers{
		OnPress:   func(*core.Occurrence, event.Args) { g.ship.startEngine() },
		OnRelease: func(*core.Occurrence, event.Args) { g.ship.stopEngine() },
		OnHold:    func(*core.Occurrence, event.Args) { g.ship.flicker() },
	}, event.WithKeys(engineKeys...), src)
	if err != nil {
		return fmt.Errorf("lander: engine controls: %w", err)
	}

	left, err := event.NewKey(event.KeyHandlers{
		OnPress:   func(*core.Occurrence, event.Args) { g.ship.flapLeft() },
		OnRelease: func(*core.Occurrence, event.Args) { g.ship.flapLeftStop() },
	}, event.WithKeys(leftFlapKeys...), src)
	if err != nil {
		return fmt.Errorf("lander: flap controls: %w", err)
	}

	right, err := event.NewKey(event.KeyHandlers{
		OnPress:   func(*core.Occurrence, event.Args) { g.ship.flapRight() },
		OnRelease: func(*core.Occurrence, event.Args) { g.ship.flapRightStop() },
	}, event.WithKeys(rightFlapKeys...), src)
	if err != nil {
		return fmt.Errorf("lander: flap controls: %w", err)
	}

	g.events.Add(
		engine, left, right,
		event.NewKeyUp(g.onContinue, event.WithKeys(core.KeyEnter), src),
		event.NewKeyDown(g.onPause, event.WithKeys(core.KeyP), src),
		event.NewKeyUp(g.onQuit, event.WithKeys(core.KeyEscape), src),
		event.NewQuit(g.onQuit, src),
	)
	return nil
}

// onContinue starts the next approach once the ship is parked.
func (g *Game) onContinue(*core.Occurrence, event.Args) {
	if !g.ship.Landed() {
		return
	}
	g.log.Debug("next approach", "score", g.score)
	g.approach()
}

func (g *Game) onPause(*core.Occurrence, event.Args) {
	g.paused = !g.paused
}

func (g *Game) onQuit(*core.Occurrence, event.Args) {
	g.quit = true
}

// over ends the run and swaps the controls for the game-over prompt. The
// prompt owns a private group and only accepts keys after a short delay,
// so a key still held from the flight does not restart right away.
func (g *Game) over() {
	if g.gameOver {
		return
	}
	g.gameOver = true
	g.ready = false
	g.ship.stopEngine()
	g.log.Info("game over", "score", g.score, "landings", g.landings, "elapsed_ms", g.elapsed)

	src := event.WithSource(g.queue)
	restart := event.NewKeyUp(func(*core.Occurrence, event.Args) { g.restart() },
		event.WithKeys(core.KeyEnter), src)
	leave := event.NewKeyUp(g.onQuit, event.WithKeys(core.KeyEscape), src)
	restart.Disable()
	leave.Disable()

	prompt := event.NewTimeout(g.cfg.Input.GameOverMS, 1, func(*core.Occurrence, event.Args) {
		g.ready = true
		restart.Enable()
		leave.Enable()
	})
	g.modal = event.NewGroup(restart, leave, event.NewQuit(g.onQuit, src), prompt)
}

// restart tears down every event of the finished run and starts over.
func (g *Game) restart() {
	g.log.Info("restart")
	g.teardown()
	if err := g.start(); err != nil {
		g.log.Error("cannot restart", "err", err)
		g.quit = true
	}
}

// teardown kills the events of the current run.
func (g *Game) teardown() {
	if g.events != nil {
		g.events.Kill()
	}
	if g.modal != nil {
		g.modal.Kill()
		g.modal = nil
	}
}

// check runs one frame of group, logging dispatch failures.
func (g *Game) check(group *event.Group, ticks int) {
	if group == nil {
		return
	}
	if err := group.Check(g.queue, ticks); err != nil {
		g.log.Warn("event dispatch failed", "err", err)
	}
}
