package lander

import (
	"github.com/vovakirdan/tui-lander/internal/core"
	"github.com/vovakirdan/tui-lander/internal/engine/path"
	"github.com/vovakirdan/tui-lander/internal/engine/sprite"
)

// Faller is a body dropping under hazard gravity: the alien's gift or an
// asteroid.
type Faller struct {
	*sprite.Sprite
	path *path.Acceleration
}

func newFaller(pos, vel core.Vec, gravity float64, size int) *Faller {
	p := path.NewAcceleration(pos, vel, core.Vec{}, core.V(0, gravity))
	return &Faller{Sprite: sprite.New(p, size, size), path: p}
}

// gone reports whether the body fell below bottom + below.
func (f *Faller) gone(bottom, below int) bool {
	return f.Position().Y > float64(bottom+below)
}

// Gift is what the alien drops: a bomb or a fuel refill.
type Gift struct {
	*Faller
	Bomb bool
}

func (g *Game) dropGift(at core.Vec) {
	bomb := g.rng.Float64() < g.cfg.Alien.BombChance
	g.gift = &Gift{
		Faller: newFaller(at, core.Vec{}, g.cfg.Hazards.Gravity, g.cfg.Hazards.Size),
		Bomb:   bomb,
	}
	g.log.Debug("gift dropped", "bomb", bomb, "x", int(at.X))
}

func (g *Game) dropAsteroid() {
	w := g.cfg.World.Width
	lo := g.cfg.Hazards.AsteroidMinX
	x := lo + intn(g.rng, w-g.cfg.Hazards.AsteroidMarginX-lo)
	speed := g.difficulty.AsteroidSpeed(g.landings, g.elapsed)
	vel := core.V(g.cfg.Hazards.AsteroidVX, g.cfg.Hazards.AsteroidVY).Scale(speed)
	pos := core.V(float64(x), float64(g.cfg.Hazards.AsteroidY))
	g.asteroid = newFaller(pos, vel, g.cfg.Hazards.Gravity, g.cfg.Hazards.Size)
}

// moveHazards advances the alien and whatever is falling, retiring bodies
// that left the world.
func (g *Game) moveHazards(ticks int) error {
	h, below := g.cfg.World.Height, g.cfg.Hazards.GoneBelow

	if err := g.alien.move(ticks); err != nil {
		return err
	}
	if g.alien.gone() {
		g.hideAlien()
	}

	if g.gift != nil {
		if err := g.gift.Move(ticks); err != nil {
			return err
		}
		if g.gift.gone(h, below) {
			g.gift = nil
		}
	}
	if g.asteroid != nil {
		if err := g.asteroid.Move(ticks); err != nil {
			return err
		}
		if g.asteroid.gone(h, below) {
			g.asteroid = nil
		}
	}
	return nil
}

// spawnHazards releases the alien's gift and keeps one asteroid falling.
func (g *Game) spawnHazards() {
	if g.alien.takeDrop() && g.gift == nil {
		g.dropGift(g.alien.Position())
	}
	if g.cfg.Hazards.Asteroids && g.asteroid == nil {
		g.dropAsteroid()
	}
}

func (g *Game) hideAlien() {
	lo, hi := g.difficulty.HideWindow(g.cfg.Alien.HideMinMS, g.cfg.Alien.HideMaxMS, g.landings, g.elapsed)
	g.alien.hide(lo, hi)
}
