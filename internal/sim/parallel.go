package sim

import (
	"context"
	"sync"
)

// Flight builds one independent game together with its pilot and metrics.
type Flight func() (*Game, Pilot, []Metric)

// Ensemble flies several games at once. Each game is built and stepped
// inside its own goroutine and shares nothing with the others.
type Ensemble struct {
	flights []Flight
}

func NewEnsemble(flights ...Flight) *Ensemble {
	return &Ensemble{flights: flights}
}

func (e *Ensemble) Run(ctx context.Context, cfg Config) ([]*Result, error) {
	results := make([]*Result, len(e.flights))
	errs := make([]error, len(e.flights))

	var wg sync.WaitGroup
	for i, build := range e.flights {
		wg.Add(1)
		go func(idx int, build Flight) {
			defer wg.Done()

			g, pilot, metrics := build()
			r := NewRunner(pilot)
			for _, m := range metrics {
				r.AddMetric(m)
			}

			results[idx], errs[idx] = r.Run(ctx, g, cfg)
		}(i, build)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}
