package metrics

import "github.com/san-kum/lander/internal/sim"

// ControlEffort is the fraction of frames in which any key was held.
type ControlEffort struct {
	name    string
	active  int
	samples int
}

func NewControlEffort() *ControlEffort {
	return &ControlEffort{
		name: "control_effort",
	}
}

func (c *ControlEffort) Name() string {
	return c.name
}

func (c *ControlEffort) Observe(f sim.Frame, in sim.Input) {
	if in.Held != 0 {
		c.active++
	}
	c.samples++
}

func (c *ControlEffort) Value() float64 {
	if c.samples == 0 {
		return 0
	}
	return float64(c.active) / float64(c.samples)
}

func (c *ControlEffort) Reset() {
	c.active = 0
	c.samples = 0
}
