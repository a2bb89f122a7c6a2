package lander

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-lander/internal/core"
	"github.com/vovakirdan/tui-lander/internal/engine/sprite"
)

// Minimum terminal size for a playable view.
const (
	MinCols = 40
	MinRows = 12
)

// Visual characters for rendering
const (
	GroundChar  = '█'
	SurfaceChar = '▓'
	PadChar     = '═'
	FlameChar   = '*'
	WreckChar   = '✶'
	GiftChar    = '◆'
	RockChar    = '@'
	StarChar    = '.'
	AlienText   = "<@>"
	gaugeCells  = 10
)

// shipArrows are the ship glyphs for the eight compass octants, starting
// at facing right and turning counter-clockwise.
var shipArrows = []rune{'→', '↗', '↑', '↖', '←', '↙', '↓', '↘'}

// view maps world pixels onto the cells below the HUD row.
type view struct {
	sx, sy float64
}

func newView(dst *core.Screen, w, h int) view {
	return view{
		sx: float64(dst.Width()) / float64(w),
		sy: float64(dst.Height()-1) / float64(h),
	}
}

func (v view) cell(p core.Vec) (int, int) {
	return int(math.Floor(p.X * v.sx)), 1 + int(math.Floor(p.Y*v.sy))
}

func (v view) rect(r core.Rect) core.Rect {
	x0, y0 := v.cell(core.V(float64(r.X), float64(r.Y)))
	x1, y1 := v.cell(core.V(float64(r.Right()), float64(r.Bottom())))
	return core.NewRect(x0, y0, max(1, x1-x0), max(1, y1-y0))
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < MinCols || dst.Height() < MinRows {
		dst.DrawTextCentered(dst.Height()/2, "Window too small", core.ColorRed)
		return
	}

	v := newView(dst, g.cfg.World.Width, g.cfg.World.Height)
	g.drawSky(dst, v)
	g.drawTerrain(dst, v)
	g.drawHazards(dst, v)
	g.drawShip(dst, v)
	g.drawHUD(dst)

	switch {
	case g.gameOver:
		lines := []string{"GAME OVER", fmt.Sprintf("Score: %d", g.score)}
		if g.ready {
			lines = append(lines, "Enter: play again   Esc: quit")
		}
		drawBanner(dst, core.ColorBrightRed, lines...)
	case g.paused:
		drawBanner(dst, core.ColorBrightYellow, msgPaused, "Press P to resume")
	case g.msg != nil:
		drawBanner(dst, g.msg.color, g.msg.lines...)
	}
}

func (g *Game) drawSky(dst *core.Screen, v view) {
	for _, s := range g.terrain.Stars {
		x, y := v.cell(s)
		dst.SetColored(x, y, StarChar, core.ColorGray)
	}
	x, y := v.cell(g.terrain.Planet.Pos)
	if g.terrain.Planet.Saturn {
		dst.DrawTextColored(x, y, "-()-", core.ColorYellow)
	} else {
		dst.DrawTextColored(x, y, "()", core.ColorCyan)
	}
}

func (g *Game) drawTerrain(dst *core.Screen, v view) {
	for _, seg := range g.terrain.Segments {
		r := v.rect(seg)
		dst.DrawRect(r, GroundChar, core.ColorDarkGray)
		dst.DrawHLine(r.X, r.Y, r.W, SurfaceChar, core.ColorGray)
	}
	pad := v.rect(g.terrain.Airport)
	dst.DrawRect(pad, GroundChar, core.ColorDarkGray)
	dst.DrawHLine(pad.X, pad.Y, pad.W, PadChar, core.ColorBrightGreen)
}

func (g *Game) drawHazards(dst *core.Screen, v view) {
	if !g.alien.Hidden() {
		x, y := v.cell(center(g.alien.Sprite))
		dst.DrawTextColored(x-len(AlienText)/2, y, AlienText, core.ColorBrightMagenta)
	}
	if g.gift != nil {
		x, y := v.cell(center(g.gift.Sprite))
		dst.SetColored(x, y, GiftChar, core.ColorBrightYellow)
	}
	if g.asteroid != nil {
		x, y := v.cell(center(g.asteroid.Sprite))
		dst.SetColored(x, y, RockChar, core.ColorOrange)
	}
}

func (g *Game) drawShip(dst *core.Screen, v view) {
	s := g.ship
	if s.Path.Paused() && s.Crashed() {
		return // waiting to respawn
	}
	x, y := v.cell(s.center())

	if s.Crashed() {
		dst.SetColored(x, y, WreckChar, core.ColorBrightRed)
		return
	}

	color := core.ColorBrightWhite
	if g.loadout.BlueShip {
		color = core.ColorBrightBlue
	}
	r := s.Angle()
	dst.SetColored(x, y, shipArrows[octant(r)], color)

	if s.Flame() {
		fx := x - int(math.Round(math.Cos(r)))
		fy := y + int(math.Round(math.Sin(r)))
		dst.SetColored(fx, fy, FlameChar, core.ColorOrange)
	}
}

// drawHUD draws the status line: score, fuel gauge, level and consumables.
func (g *Game) drawHUD(dst *core.Screen) {
	x := 1
	text := fmt.Sprintf("Score: %d", g.score)
	dst.DrawTextColored(x, 0, text, core.ColorBrightWhite)
	x += len(text) + 3

	filled := int(math.Round(g.fuel.Fraction() * gaugeCells))
	gauge := "Fuel [" + strings.Repeat("█", filled) + strings.Repeat(" ", gaugeCells-filled) + "]"
	gaugeColor := core.ColorBrightGreen
	if g.fuel.Low() {
		gaugeColor = core.ColorBrightRed
	}
	dst.DrawTextColored(x, 0, gauge, gaugeColor)
	x += gaugeCells + 9

	level := g.difficulty.Level(g.landings, g.elapsed)
	text = fmt.Sprintf("Level %d", 1+int(level*9))
	dst.DrawTextColored(x, 0, text, core.ColorCyan)
	x += len(text) + 3

	if g.loadout.Shield {
		dst.DrawTextColored(x, 0, "[Shield]", core.ColorBrightCyan)
	}
}

// drawBanner draws lines in a box in the middle of the screen.
func drawBanner(dst *core.Screen, c core.Color, lines ...string) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	boxW, boxH := width+4, len(lines)+2
	x, y, err := sprite.Place(dst.Width(), dst.Height(), boxW, boxH)
	if err != nil {
		return
	}

	box := core.NewRect(x, y, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, c)
	for i, l := range lines {
		lx := x + (boxW-len([]rune(l)))/2
		dst.DrawTextColored(lx, y+1+i, l, c)
	}
}

// octant returns the index of the compass octant nearest to angle r.
func octant(r float64) int {
	n := int(math.Round(r/(math.Pi/4))) % 8
	if n < 0 {
		n += 8
	}
	return n
}

func center(s *sprite.Sprite) core.Vec {
	p := s.Position()
	return core.V(p.X+float64(s.W)/2, p.Y+float64(s.H)/2)
}
