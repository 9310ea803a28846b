package control

import "github.com/san-kum/lander/internal/sim"

type None struct{}

func NewNone() *None {
	return &None{}
}

func (n *None) Compute(f sim.Frame) sim.Input {
	return sim.Input{}
}
