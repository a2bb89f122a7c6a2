package lander

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/vovakirdan/tui-lander/internal/config"
	"github.com/vovakirdan/tui-lander/internal/core"
)

// checkTiling verifies the boxes cover [0, w) left to right without gaps
// or overlaps and all reach the bottom of the world.
func checkTiling(t *testing.T, tr *Terrain, w, h int) {
	t.Helper()
	rects := tr.Rects()
	slices.SortFunc(rects, func(a, b core.Rect) int { return a.X - b.X })

	x := 0
	for _, r := range rects {
		if r.X != x {
			t.Fatalf("box at x=%d, want %d", r.X, x)
		}
		if r.W <= 0 {
			t.Fatalf("empty box at x=%d", r.X)
		}
		if r.Bottom() != h {
			t.Fatalf("box at x=%d ends at %d, want %d", r.X, r.Bottom(), h)
		}
		x = r.Right()
	}
	if x != w {
		t.Fatalf("boxes end at %d, want %d", x, w)
	}
}

func TestRuggedTerrain(t *testing.T) {
	cfg := config.DefaultLanderConfig().Terrain
	cfg.Mode = ModeRugged
	w, h := 800, 600

	for seed := int64(1); seed <= 50; seed++ {
		tr := generateTerrain(rand.New(rand.NewSource(seed)), cfg, w, h)
		if tr.Mode != ModeRugged {
			t.Fatalf("seed %d: mode %s", seed, tr.Mode)
		}
		checkTiling(t, tr, w, h)

		if tr.Airport.W != cfg.AirportWidth {
			t.Errorf("seed %d: pad width %d, want %d", seed, tr.Airport.W, cfg.AirportWidth)
		}
		if tr.Airport.X <= cfg.AirportMinPos {
			t.Errorf("seed %d: pad at %d, want past %d", seed, tr.Airport.X, cfg.AirportMinPos)
		}

		for k, seg := range tr.Segments {
			if seg.Y > h-cfg.RuggedFloor || seg.Y < h/3 {
				t.Errorf("seed %d: segment %d top %d out of [%d, %d]", seed, k, seg.Y, h/3, h-cfg.RuggedFloor)
			}
			if bound := h - cfg.RuggedDepthMax - cfg.Jitter*(k+1); seg.Y < bound {
				t.Errorf("seed %d: segment %d top %d above %d", seed, k, seg.Y, bound)
			}
		}

		wantAnchor := core.V(float64(tr.Airport.X)+float64(tr.Airport.W)/2, float64(tr.Airport.Y))
		if tr.Anchor != wantAnchor {
			t.Errorf("seed %d: anchor %+v, want %+v", seed, tr.Anchor, wantAnchor)
		}
	}
}

func TestFlatTerrain(t *testing.T) {
	cfg := config.DefaultLanderConfig().Terrain
	cfg.Mode = ModeFlat
	w, h := 800, 600

	for seed := int64(1); seed <= 50; seed++ {
		tr := generateTerrain(rand.New(rand.NewSource(seed)), cfg, w, h)
		checkTiling(t, tr, w, h)

		if x := tr.Airport.X; x < flatAirportMinX || x >= w-flatAirportMargin {
			t.Errorf("seed %d: pad at %d, want in [%d, %d)", seed, x, flatAirportMinX, w-flatAirportMargin)
		}
		for _, r := range tr.Rects() {
			if r.Y != h-cfg.FlatHeight {
				t.Errorf("seed %d: box top %d, want %d", seed, r.Y, h-cfg.FlatHeight)
			}
		}
	}
}

func TestRandomTerrainPicksBoth(t *testing.T) {
	cfg := config.DefaultLanderConfig().Terrain
	rng := rand.New(rand.NewSource(3))

	seen := map[string]int{}
	for range 200 {
		seen[generateTerrain(rng, cfg, 800, 600).Mode]++
	}
	if seen[ModeRugged] == 0 || seen[ModeFlat] == 0 {
		t.Errorf("modes seen: %v", seen)
	}
}

func TestSky(t *testing.T) {
	cfg := config.DefaultLanderConfig().Terrain
	w, h := 800, 600

	for seed := int64(1); seed <= 20; seed++ {
		tr := generateTerrain(rand.New(rand.NewSource(seed)), cfg, w, h)
		if n := len(tr.Stars); n < cfg.MinStars || n >= cfg.MaxStars {
			t.Errorf("seed %d: %d stars, want [%d, %d)", seed, n, cfg.MinStars, cfg.MaxStars)
		}
		for _, s := range tr.Stars {
			if s.X < 0 || s.X >= float64(w) || s.Y < 0 || s.Y >= float64(h*2/3) {
				t.Errorf("seed %d: star at %+v outside the sky", seed, s)
			}
		}
	}
}

func TestPlanetDrift(t *testing.T) {
	cfg := config.DefaultLanderConfig().Terrain
	cfg.PlanetDrift = 2
	tr := generateTerrain(rand.New(rand.NewSource(5)), cfg, 800, 600)
	start := tr.Planet.Pos

	for range 3 {
		tr.Planet.Drift(10)
	}
	if want := start.Add(core.V(-6, 0)); tr.Planet.Pos != want {
		t.Errorf("planet at %+v, want %+v", tr.Planet.Pos, want)
	}

	// Leaving on the left brings it back on the right.
	tr.Planet.drift.SetPosition(core.V(-planetWidth, start.Y))
	tr.Planet.Drift(10)
	if tr.Planet.Pos != core.V(800, start.Y) {
		t.Errorf("wrapped planet at %+v, want (800, %v)", tr.Planet.Pos, start.Y)
	}
	tr.Planet.Drift(10)
	if tr.Planet.Pos != core.V(798, start.Y) {
		t.Errorf("planet after wrap at %+v, want (798, %v)", tr.Planet.Pos, start.Y)
	}
}

func TestIntn(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	tests := []struct {
		n    int
		want int
	}{
		{0, 0},
		{-5, 0},
		{1, 0},
	}
	for _, tt := range tests {
		if got := intn(rng, tt.n); got != tt.want {
			t.Errorf("intn(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}
