package metrics

import (
	"math"

	"github.com/san-kum/lander/internal/sim"
)

const historyCapacity = 600

// Telemetry keeps a bounded history of altitude above the floor and fuel.
// Its value is the largest downward move seen in a single frame. It can
// also be attached to a game directly as an observer.
type Telemetry struct {
	name     string
	floor    float64
	capacity int
	altitude []float64
	fuel     []float64
	lastY    float64
	seen     bool
	peak     float64
}

func NewTelemetry(floor float64) *Telemetry {
	return &Telemetry{
		name:     "peak_descent",
		floor:    floor,
		capacity: historyCapacity,
		altitude: make([]float64, 0, historyCapacity),
		fuel:     make([]float64, 0, historyCapacity),
	}
}

func (t *Telemetry) Name() string { return t.name }

func (t *Telemetry) OnStep(f sim.Frame, in sim.Input) { t.Observe(f, in) }

func (t *Telemetry) Observe(f sim.Frame, in sim.Input) {
	t.altitude = push(t.altitude, t.floor-f.Rocket.Bottom(), t.capacity)
	t.fuel = push(t.fuel, f.Fuel, t.capacity)

	if t.seen {
		t.peak = math.Max(t.peak, f.Rocket.Y-t.lastY)
	}
	t.lastY = f.Rocket.Y
	t.seen = true
}

func (t *Telemetry) Value() float64 {
	return t.peak
}

func (t *Telemetry) Reset() {
	t.altitude = t.altitude[:0]
	t.fuel = t.fuel[:0]
	t.seen = false
	t.peak = 0
}

func (t *Telemetry) Altitude() []float64 { return t.altitude }
func (t *Telemetry) Fuel() []float64     { return t.fuel }

func push(hist []float64, v float64, capacity int) []float64 {
	hist = append(hist, v)
	if len(hist) > capacity {
		hist = hist[1:]
	}
	return hist
}
