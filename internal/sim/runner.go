package sim

import (
	"context"
	"fmt"
)

// Runner flies a game headless, asking its pilot for input every frame.
type Runner struct {
	pilot   Pilot
	metrics []Metric
}

func NewRunner(pilot Pilot) *Runner {
	return &Runner{
		pilot:   pilot,
		metrics: make([]Metric, 0),
	}
}

func (r *Runner) AddMetric(m Metric) { r.metrics = append(r.metrics, m) }

func (r *Runner) Run(ctx context.Context, g *Game, cfg Config) (*Result, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	for _, m := range r.metrics {
		m.Reset()
	}

	result := &Result{Metrics: make(map[string]float64)}

	for i := 0; i < cfg.MaxFrames && g.State() == Playing; i++ {
		select {
		case <-ctx.Done():
			r.finish(g, result)
			return result, ctx.Err()
		default:
		}

		in := r.pilot.Compute(g.Frame())
		g.Step(in)

		f := g.Frame()
		for _, m := range r.metrics {
			m.Observe(f, in)
		}
	}

	r.finish(g, result)
	return result, nil
}

func (r *Runner) finish(g *Game, result *Result) {
	result.Frames = g.Frames()
	result.Outcome = g.Outcome()
	result.Final = g.Frame()
	for _, m := range r.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
}

func validateConfig(cfg Config) error {
	if cfg.MaxFrames <= 0 {
		return fmt.Errorf("max frames must be positive, got %d", cfg.MaxFrames)
	}
	return nil
}
