package lander

import (
	"math/rand"

	"github.com/vovakirdan/tui-lander/internal/config"
	"github.com/vovakirdan/tui-lander/internal/core"
	"github.com/vovakirdan/tui-lander/internal/engine/path"
)

// Terrain modes.
const (
	ModeRandom = "random"
	ModeRugged = "rugged"
	ModeFlat   = "flat"
)

// Flat terrain keeps its pad away from the edges.
const (
	flatAirportMinX   = 50
	flatAirportMargin = 200
)

// planetWidth is the widest planet drawing in world pixels.
const planetWidth = 40

// Planet is the backdrop body drawn behind the terrain. It drifts left a
// fixed distance every frame and comes back in on the right.
type Planet struct {
	Pos    core.Vec
	Saturn bool
	drift  *path.Velocity
	w      int // world width
}

// Drift moves the planet by one frame, wrapping it around the world.
func (p *Planet) Drift(ticks int) {
	if p.drift == nil {
		return
	}
	pos, _ := p.drift.Next(ticks)
	if pos.X < -planetWidth {
		pos.X = float64(p.w)
		p.drift.SetPosition(pos)
	}
	p.Pos = pos
}

// Terrain is the ground of one approach: a row of segment boxes with a
// single gap taken by the airport, plus decorative stars and a planet.
type Terrain struct {
	Mode     string
	Segments []core.Rect
	Airport  core.Rect // pad; extends to the bottom of the world
	Anchor   core.Vec  // middle of the pad surface
	Stars    []core.Vec
	Planet   Planet
}

// generateTerrain builds a terrain of the given mode. Random mode picks
// rugged a little more often than flat.
func generateTerrain(rng *rand.Rand, cfg config.TerrainConfig, w, h int) *Terrain {
	mode := cfg.Mode
	if mode == ModeRandom || mode == "" {
		if rng.Intn(19)+1 <= 10 {
			mode = ModeRugged
		} else {
			mode = ModeFlat
		}
	}

	t := &Terrain{Mode: mode}
	if mode == ModeFlat {
		t.flat(rng, cfg, w, h)
	} else {
		t.rugged(rng, cfg, w, h)
	}
	t.Anchor = core.V(float64(t.Airport.X)+float64(t.Airport.W)/2, float64(t.Airport.Y))
	t.scatter(rng, cfg, w, h)
	return t
}

func (t *Terrain) rugged(rng *rand.Rand, cfg config.TerrainConfig, w, h int) {
	floor := h - cfg.RuggedFloor
	ceiling := h / 3

	y := h - cfg.RuggedDepthMax + intn(rng, cfg.RuggedDepthMax-cfg.RuggedDepthMin)
	p := cfg.AirportMinPos + intn(rng, w-cfg.AirportWidth-cfg.SegmentWidth-cfg.AirportMinPos)

	placed := false
	for x := 0; x < w; {
		if !placed && x > p {
			t.Airport = core.NewRect(x, y, min(cfg.AirportWidth, w-x), h-y)
			x += cfg.AirportWidth
			placed = true
			continue
		}
		if cfg.Jitter > 0 {
			y += rng.Intn(2*cfg.Jitter) - cfg.Jitter
		}
		y = core.Clamp(y, ceiling, floor)
		t.Segments = append(t.Segments, core.NewRect(x, y, min(cfg.SegmentWidth, w-x), h-y))
		x += cfg.SegmentWidth
	}
}

func (t *Terrain) flat(rng *rand.Rand, cfg config.TerrainConfig, w, h int) {
	y := h - cfg.FlatHeight
	ax := flatAirportMinX + intn(rng, w-flatAirportMargin-flatAirportMinX)
	ax = core.Clamp(ax, 0, max(0, w-cfg.AirportWidth))

	t.Airport = core.NewRect(ax, y, min(cfg.AirportWidth, w-ax), cfg.FlatHeight)
	if ax > 0 {
		t.Segments = append(t.Segments, core.NewRect(0, y, ax, cfg.FlatHeight))
	}
	if right := t.Airport.Right(); right < w {
		t.Segments = append(t.Segments, core.NewRect(right, y, w-right, cfg.FlatHeight))
	}
}

// scatter places the stars and the planet in the sky above the ground.
func (t *Terrain) scatter(rng *rand.Rand, cfg config.TerrainConfig, w, h int) {
	sky := max(1, h*2/3)

	n := cfg.MinStars + intn(rng, cfg.MaxStars-cfg.MinStars)
	t.Stars = make([]core.Vec, 0, n)
	for range n {
		t.Stars = append(t.Stars, core.V(float64(rng.Intn(max(1, w))), float64(rng.Intn(sky))))
	}

	pos := core.V(float64(intn(rng, w*3/4)), float64(intn(rng, h/3)))
	t.Planet = Planet{
		Pos:    pos,
		Saturn: rng.Intn(20)+1 > 10,
		drift:  path.NewVelocity(pos, core.V(-cfg.PlanetDrift, 0)),
		w:      w,
	}
}

// Rects returns every solid box: the segments and the airport.
func (t *Terrain) Rects() []core.Rect {
	out := make([]core.Rect, 0, len(t.Segments)+1)
	out = append(out, t.Segments...)
	return append(out, t.Airport)
}

// intn is rng.Intn that treats an empty range as zero.
func intn(rng *rand.Rand, n int) int {
	if n <= 0 {
		return 0
	}
	return rng.Intn(n)
}
