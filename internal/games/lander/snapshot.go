package lander

// ShipStateType is the flight state of the lander.
type ShipStateType string

const (
	StateFlying   ShipStateType = "flying"
	StateLanded   ShipStateType = "landed"
	StateCrashed  ShipStateType = "crashed"
	StateGameOver ShipStateType = "game_over"
)

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Elapsed  int
	Score    int
	Landings int
	State    ShipStateType
	ShipX    float64
	ShipY    float64
	Angle    float64
	Fuel     int
	Terrain  string
	AirportX int
	AlienX   float64
	AlienY   float64
	Gift     bool
	Asteroid bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StateFlying
	switch {
	case g.gameOver:
		state = StateGameOver
	case g.ship.Crashed():
		state = StateCrashed
	case g.ship.Landed():
		state = StateLanded
	}

	pos := g.ship.Position()
	alien := g.alien.Position()
	return Snapshot{
		Elapsed:  g.elapsed,
		Score:    g.score,
		Landings: g.landings,
		State:    state,
		ShipX:    pos.X,
		ShipY:    pos.Y,
		Angle:    g.ship.Angle(),
		Fuel:     g.fuel.Left(),
		Terrain:  g.terrain.Mode,
		AirportX: g.terrain.Airport.X,
		AlienX:   alien.X,
		AlienY:   alien.Y,
		Gift:     g.gift != nil,
		Asteroid: g.asteroid != nil,
	}
}
