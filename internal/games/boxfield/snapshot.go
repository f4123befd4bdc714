package boxfield

import "github.com/dkotenko/boxfield/internal/core"

// Snapshot captures the observable simulation state for testing.
type Snapshot struct {
	Tick      uint64
	Steps     int
	X, Y      float64
	Paused    bool
	Obstacles []core.Rect
}

// Snapshot returns the current simulation state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:   g.tick,
		Steps:  g.steps,
		Paused: g.paused,
	}
	if g.player != nil {
		s.X = g.player.Pos.X
		s.Y = g.player.Pos.Y
	}
	s.Obstacles = append(s.Obstacles, g.field.Obstacles()...)
	return s
}
