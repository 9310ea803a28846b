package metrics

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"

	"github.com/san-kum/lander/internal/sim"
)

const minSpectrumSamples = 8

// SteeringPeriod is the dominant period, in frames, of the rocket's
// horizontal offset from the platform center. A pilot that keeps
// overshooting the platform shows up as a short period; a steady approach
// reports 0.
type SteeringPeriod struct {
	name   string
	offset []float64
}

func NewSteeringPeriod() *SteeringPeriod {
	return &SteeringPeriod{
		name:   "steering_period",
		offset: make([]float64, 0, historyCapacity),
	}
}

func (s *SteeringPeriod) Name() string { return s.name }

func (s *SteeringPeriod) Observe(f sim.Frame, in sim.Input) {
	center := f.Platform.X + f.Platform.W/2
	s.offset = append(s.offset, f.Rocket.X+f.Rocket.W/2-center)
}

func (s *SteeringPeriod) Value() float64 {
	n := len(s.offset)
	if n < minSpectrumSamples {
		return 0
	}

	mean := 0.0
	for _, v := range s.offset {
		mean += v
	}
	mean /= float64(n)

	// Hann window
	buf := make([]float64, n)
	for i, v := range s.offset {
		w := 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n-1)))
		buf[i] = (v - mean) * w
	}
	spectrum := fft.FFTReal(buf)

	peak, bin := 1e-9, 0
	for k := 1; k <= n/2; k++ {
		if mag := cmplx.Abs(spectrum[k]); mag > peak {
			peak, bin = mag, k
		}
	}
	if bin == 0 {
		return 0
	}
	return float64(n) / float64(bin)
}

func (s *SteeringPeriod) Reset() {
	s.offset = s.offset[:0]
}
