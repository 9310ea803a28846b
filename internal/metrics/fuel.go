package metrics

import "github.com/san-kum/lander/internal/sim"

// FuelBurn reports how much fuel was spent since the flight began.
type FuelBurn struct {
	name    string
	initial float64
	current float64
}

func NewFuelBurn(initial float64) *FuelBurn {
	return &FuelBurn{
		name:    "fuel_burned",
		initial: initial,
		current: initial,
	}
}

func (b *FuelBurn) Name() string { return b.name }

func (b *FuelBurn) Observe(f sim.Frame, in sim.Input) {
	b.current = f.Fuel
}

func (b *FuelBurn) Value() float64 {
	return b.initial - b.current
}

func (b *FuelBurn) Reset() {
	b.current = b.initial
}
