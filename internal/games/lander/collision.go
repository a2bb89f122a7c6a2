package lander

import (
	"math"

	"github.com/vovakirdan/tui-lander/internal/core"
	"github.com/vovakirdan/tui-lander/internal/engine/event"
)

// fuelState debounces the end of a run on an empty tank: the ship gets one
// last crash before the game is over.
type fuelState int

const (
	fuelOK fuelState = iota
	fuelEmpty
	fuelCrashed // crashed with an empty tank
)

// collide resolves the ship against the world in a fixed order: pad,
// terrain, alien, asteroid, gift. A parked ship or one waiting to respawn
// touches nothing.
func (g *Game) collide() {
	s := g.ship
	if s.Landed() || s.Path.Paused() {
		g.collideAsteroid(false)
		return
	}

	if s.Collide(g.terrain.Airport) {
		g.touchdown()
		return
	}

	if s.CollideAny(g.terrain.Segments) >= 0 {
		g.crash("terrain")
	}

	if !g.alien.Hidden() && s.CollideSprite(g.alien.Sprite) {
		g.crash("alien")
		g.alien.approach()
	}

	g.collideAsteroid(true)

	if g.gift != nil && !s.Crashed() && s.CollideSprite(g.gift.Sprite) {
		g.pickUp(g.gift)
		g.gift = nil
	}
}

// touchdown decides between a landing and a crash on the pad. Only the
// numeric facing counts as upright.
func (g *Game) touchdown() {
	s := g.ship
	aligned := math.Abs(s.center().X-g.terrain.Anchor.X) <= float64(g.cfg.Landing.Band)
	if !s.Crashed() && aligned && s.vertical(g.cfg.Landing.VerticalEpsilon) {
		s.land(float64(g.terrain.Airport.Y))
		if !g.visited {
			g.visited = true
			g.landings++
			g.score += g.cfg.Landing.Points
			g.log.Info("landed", "score", g.score, "fuel", g.fuel.Left())
			g.congratulate()
		}
		return
	}
	if g.crash("missed the pad") {
		g.score = max(0, g.score-g.cfg.Landing.Points)
	}
}

// collideAsteroid retires an asteroid that hit the ship or the ground.
func (g *Game) collideAsteroid(ship bool) {
	if g.asteroid == nil {
		return
	}
	if ship && g.ship.CollideSprite(g.asteroid.Sprite) {
		g.crash("asteroid")
		g.asteroid = nil
		return
	}
	if g.asteroid.CollideAny(g.terrain.Rects()) >= 0 {
		g.asteroid = nil
	}
}

// pickUp applies a gift to a flying ship.
func (g *Game) pickUp(gift *Gift) {
	if !gift.Bomb {
		g.fuel.Refuel()
		g.log.Debug("refuelled")
		g.say(g.cfg.Alien.ShieldMessage, core.ColorBrightCyan, msgRefuel)
		return
	}
	if g.loadout.Shield {
		g.log.Debug("bomb absorbed by shield")
		g.say(g.cfg.Alien.ShieldMessage, core.ColorBrightCyan, msgShield)
		return
	}
	g.crash("bomb")
}

// crash wrecks the ship. It reports whether this was a new crash.
func (g *Game) crash(cause string) bool {
	if !g.ship.crash(g.cfg.Fuel.CrashPenaltyMS) {
		return false
	}
	g.log.Info("crashed", "cause", cause, "fuel", g.fuel.Left())
	return true
}

// offScreen brings back a ship that left the world. A wreck is brought
// back after a delay.
func (g *Game) offScreen() {
	w, h := float64(g.cfg.World.Width), float64(g.cfg.World.Height)
	if g.respawn != nil || g.ship.OnScreen(w, h, float64(g.cfg.Lander.RespawnSlack)) {
		return
	}
	if !g.ship.Crashed() {
		g.spawnShip()
		return
	}

	g.ship.Pause()
	g.respawn = event.NewTimeout(g.cfg.Lander.RespawnDelayMS, 1, func(*core.Occurrence, event.Args) {
		g.respawn = nil
		g.spawnShip()
	})
	g.events.Add(g.respawn)
}

// spawnShip puts a fresh ship at a spawn point and lets it fly.
func (g *Game) spawnShip() {
	if g.respawn != nil {
		g.respawn.Kill()
		g.respawn = nil
	}
	g.ship.reset(core.V(float64(g.spawnX()), float64(g.cfg.Lander.SpawnY)))
	g.ship.Unpause()
}

// spawnX draws a spawn column from [SpawnMinX, W-SpawnMarginX) that is not
// within the approach corridor (pad.X-ExcludeLeft, pad.X+ExcludeRight).
func (g *Game) spawnX() int {
	lo := g.cfg.Lander.SpawnMinX
	hi := g.cfg.World.Width - g.cfg.Lander.SpawnMarginX
	pad := g.terrain.Airport.X
	a, b := pad-g.cfg.Landing.ExcludeLeft, pad+g.cfg.Landing.ExcludeRight

	left := max(0, min(hi, a+1)-lo)
	from := max(lo, b)
	right := max(0, hi-from)
	if left+right == 0 {
		return lo + intn(g.rng, hi-lo)
	}

	n := g.rng.Intn(left + right)
	if n < left {
		return lo + n
	}
	return from + n - left
}

// updateFuel ends the run once the tank is empty: right away when parked,
// otherwise after one more crash and respawn.
func (g *Game) updateFuel() {
	if !g.fuel.Empty() {
		g.fuelState = fuelOK
		return
	}

	s := g.ship
	switch {
	case s.Landed():
		g.over()
	case s.Crashed():
		g.fuelState = fuelCrashed
	case g.fuelState == fuelCrashed:
		g.over()
	default:
		if g.fuelState == fuelOK {
			g.log.Info("fuel empty")
		}
		g.fuelState = fuelEmpty
	}
}
