package lander

import (
	"github.com/vovakirdan/tui-lander/internal/core"
	"github.com/vovakirdan/tui-lander/internal/engine/event"
)

// congratulations are shown after a first touchdown on a pad.
var congratulations = []string{
	"The Eagle has landed!",
	"Touchdown, captain!",
	"Smooth as moon dust",
	"Textbook approach",
	"Houston, we have a landing",
	"Not a scratch on her",
}

// Banner texts.
const (
	msgContinue = "Press Enter to continue"
	msgShield   = "Shield absorbed the bomb"
	msgRefuel   = "Fuel refilled"
	msgPaused   = "PAUSED"
)

// message is a banner drawn in the middle of the world. A banner with a
// timer disappears when the timer fires; one without stays until replaced.
type message struct {
	lines []string
	color core.Color
	timer *event.Event
}

// say shows lines for ms milliseconds, or until replaced when ms is 0.
func (g *Game) say(ms int, c core.Color, lines ...string) {
	g.hush()
	m := &message{lines: lines, color: c}
	if ms > 0 {
		m.timer = event.NewTimeout(ms, 1, func(*core.Occurrence, event.Args) {
			if g.msg == m {
				g.msg = nil
			}
		})
		g.events.Add(m.timer)
	}
	g.msg = m
}

// hush removes the current banner.
func (g *Game) hush() {
	if g.msg != nil && g.msg.timer != nil {
		g.msg.timer.Kill()
	}
	g.msg = nil
}

func (g *Game) congratulate() {
	text := congratulations[g.rng.Intn(len(congratulations))]
	g.say(0, core.ColorBrightGreen, text, msgContinue)
}
