package control

import (
	"math"

	"github.com/san-kum/lander/internal/sim"
)

const (
	DefaultKp       = 0.02
	DefaultKi       = 0.0
	DefaultKd       = 0.5
	DefaultCruise   = 1.0
	DefaultDeadband = 0.05
)

// Autopilot steers toward the middle of the platform. Until the rocket is
// within half a platform width of that point it holds altitude; once over
// the platform it descends at Cruise units per frame.
//
// The rocket's position is its velocity, so the vertical loop regulates the
// carried vertical acceleration: zero holds altitude, Cruise descends. Up
// thrust can only hold altitude when gravity is weaker than the movement
// force, and the horizontal reach per frame grows with weight, so landings
// need a playfield like the "lunar" preset.
type Autopilot struct {
	Horizontal *PID
	Vertical   *PID
	Deadband   float64
	Cruise     float64
	prev       sim.Keys
}

func NewAutopilot(kp, ki, kd, cruise float64) *Autopilot {
	return &Autopilot{
		Horizontal: NewPID(kp, ki, kd, 0),
		Vertical:   NewPID(1, 0, 0, 0),
		Deadband:   DefaultDeadband,
		Cruise:     cruise,
	}
}

func (a *Autopilot) Compute(f sim.Frame) sim.Input {
	if f.State != sim.Playing {
		in := sim.Transition(a.prev, 0)
		a.prev = 0
		return in
	}

	t := float64(f.Index)
	target := f.Platform.X + f.Platform.W/2 - f.Rocket.W/2
	a.Horizontal.Target = target

	var held sim.Keys
	switch u := a.Horizontal.Compute(f.Rocket.X, t); {
	case u > a.Deadband:
		held |= sim.KeyRight
	case u < -a.Deadband:
		held |= sim.KeyLeft
	}

	a.Vertical.Target = 0
	if math.Abs(f.Rocket.X-target) <= f.Platform.W/2 {
		a.Vertical.Target = a.Cruise
	}
	if f.Flying && a.Vertical.Compute(f.Acceleration.Y, t) < 0 {
		held |= sim.KeyUp
	}

	in := sim.Transition(a.prev, held)
	a.prev = held
	return in
}

func (a *Autopilot) Reset() {
	a.Horizontal.Reset()
	a.Vertical.Reset()
	a.prev = 0
}
