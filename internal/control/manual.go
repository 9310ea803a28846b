package control

import "github.com/san-kum/lander/internal/sim"

// Manual passes a manually set key set to the game and reports keys that
// were dropped since the previous frame as released.
type Manual struct {
	keys sim.Keys
	prev sim.Keys
}

func NewManual() *Manual {
	return &Manual{}
}

// SetKeys replaces the held keys for the following frames.
func (m *Manual) SetKeys(keys sim.Keys) {
	m.keys = keys
}

func (m *Manual) Compute(f sim.Frame) sim.Input {
	in := sim.Transition(m.prev, m.keys)
	m.prev = m.keys
	return in
}
