package lander

import (
	"math/rand"

	"github.com/vovakirdan/tui-lander/internal/config"
	"github.com/vovakirdan/tui-lander/internal/core"
	"github.com/vovakirdan/tui-lander/internal/engine/event"
	"github.com/vovakirdan/tui-lander/internal/engine/path"
	"github.com/vovakirdan/tui-lander/internal/engine/sprite"
)

// hiddenAt is where the alien waits while off duty.
var hiddenAt = core.V(-90, -90)

// Alien is the visiting saucer. It hides for a while, cruises in from a
// random side, then speeds away and drops a gift on the way out. On the
// way out it steers for the top right corner.
type Alien struct {
	*sprite.Sprite
	path *path.Complex
	cfg  config.AlienConfig
	rng  *rand.Rand
	w, h int // world size

	group *event.Group
	timer *event.Event

	hidden      bool
	approaching bool
	dropped     bool // the gift of this visit was released
	pending     bool // a released gift not yet picked up by the game
}

func newAlien(cfg config.AlienConfig, w, h int, rng *rand.Rand, group *event.Group) (*Alien, error) {
	p, err := path.NewComplex(hiddenAt)
	if err != nil {
		return nil, err
	}
	return &Alien{
		Sprite: sprite.New(p, cfg.Width, cfg.Height),
		path:   p,
		cfg:    cfg,
		rng:    rng,
		w:      w,
		h:      h,
		group:  group,
		hidden: true,
	}, nil
}

// schedule replaces the pending visit timer.
func (a *Alien) schedule(ms int, cb func()) {
	if a.timer != nil {
		a.timer.Kill()
	}
	a.timer = event.NewTimeout(ms, 1, func(*core.Occurrence, event.Args) { cb() })
	a.group.Add(a.timer)
}

// hide takes the alien off duty for a whole number of seconds drawn from
// [minMS, maxMS).
func (a *Alien) hide(minMS, maxMS int) {
	a.hidden = true
	a.approaching = false
	a.dropped = false
	a.path.SetVelocity(core.Vec{})
	a.path.SetAcceleration(core.Vec{})
	a.path.TurnStraight()
	a.SetPosition(hiddenAt)
	a.Pause()
	if !a.cfg.Enabled {
		return
	}
	a.schedule(seconds(a.rng, minMS, maxMS), a.enter)
}

// enter puts the alien on screen, entering from side 0 (left), 1 (top,
// left half), 2 (top, right half) or 3 (right).
func (a *Alien) enter() {
	w, h := a.w, a.h
	var pos, vel core.Vec
	switch a.rng.Intn(4) {
	case 0:
		pos = core.V(-10, float64(intn(a.rng, h/4)))
		vel = core.V(float64(20+a.rng.Intn(230)), float64(a.rng.Intn(39)-19))
	case 1:
		pos = core.V(float64(intn(a.rng, w/2)), -10)
		vel = core.V(float64(60+a.rng.Intn(190)), float64(1+a.rng.Intn(29)))
	case 2:
		pos = core.V(float64(w/2+intn(a.rng, w-w/2)), -10)
		vel = core.V(-float64(60+a.rng.Intn(190)), float64(1+a.rng.Intn(29)))
	default:
		pos = core.V(float64(w+5), float64(intn(a.rng, h/4)))
		vel = core.V(-float64(20+a.rng.Intn(230)), float64(a.rng.Intn(39)-19))
	}

	a.hidden = false
	a.approaching = false
	a.SetPosition(pos)
	a.path.SetVelocity(vel)
	a.path.SetAcceleration(core.Vec{})
	a.path.TurnStraight()
	a.Unpause()
	a.schedule(seconds(a.rng, a.cfg.ShowMinMS, a.cfg.ShowMaxMS), a.approach)
}

// approach sends the alien away. The first approach of a visit releases
// its gift.
func (a *Alien) approach() {
	if a.hidden || a.approaching {
		return
	}
	a.approaching = true
	a.path.SetAcceleration(core.V(a.cfg.Approach, -a.cfg.Approach))
	if !a.dropped {
		a.dropped = true
		a.pending = true
	}
}

// takeDrop reports and clears a released gift.
func (a *Alien) takeDrop() bool {
	d := a.pending
	a.pending = false
	return d
}

func (a *Alien) move(ticks int) error {
	if a.hidden {
		return nil
	}
	err := a.Move(ticks)
	if a.approaching {
		a.path.TurnTowards(a.exit())
	}
	return err
}

// exit is the point the alien steers for when leaving: just past the top
// right corner of the world.
func (a *Alien) exit() core.Vec {
	slack := float64(a.cfg.ResetSlack)
	return core.V(float64(a.w)+slack, -slack)
}

// gone reports whether a visible alien has left the world far enough to
// be sent back into hiding.
func (a *Alien) gone() bool {
	if a.hidden {
		return false
	}
	fw, fh := float64(a.w), float64(a.h)
	if !a.OnScreen(fw, fh, float64(a.cfg.ResetSlack)) {
		return true
	}
	return a.dropped && !a.OnScreen(fw, fh, float64(a.cfg.DroppedSlack))
}

// Hidden reports whether the alien is off duty.
func (a *Alien) Hidden() bool { return a.hidden }

// seconds draws a whole number of seconds from [minMS, maxMS) and returns
// it in milliseconds.
func seconds(rng *rand.Rand, minMS, maxMS int) int {
	lo := max(1, minMS/1000)
	hi := max(lo+1, maxMS/1000)
	return (lo + rng.Intn(hi-lo)) * 1000
}
