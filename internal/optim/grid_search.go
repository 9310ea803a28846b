package optim

import (
	"context"
	"errors"
	"math"

	"github.com/san-kum/lander/internal/sim"
)

// ErrNoCandidate is returned when no parameter combination could be scored.
var ErrNoCandidate = errors.New("no candidate produced a finite score")

// Build constructs a fresh game and pilot for one parameter combination.
type Build func(params map[string]float64) (*sim.Game, sim.Pilot, error)

// Score rates a finished flight. Lower is better; +Inf rejects it.
type Score func(*sim.Result) float64

type GridSearch struct {
	paramNames []string
	ranges     [][]float64
}

func NewGridSearch(params []string, ranges [][]float64) *GridSearch {
	return &GridSearch{paramNames: params, ranges: ranges}
}

// Search flies every combination of the grid and returns the best scoring
// parameters. Combinations whose build fails are skipped.
func (g *GridSearch) Search(ctx context.Context, build Build, score Score, cfg sim.Config) (map[string]float64, float64, error) {
	best := math.Inf(1)
	var bestParams map[string]float64

	err := g.searchRecursive(ctx, 0, make(map[string]float64), build, score, cfg, &best, &bestParams)
	if err != nil {
		return nil, 0, err
	}
	if bestParams == nil {
		return nil, best, ErrNoCandidate
	}
	return bestParams, best, nil
}

func (g *GridSearch) searchRecursive(
	ctx context.Context,
	depth int,
	current map[string]float64,
	build Build,
	score Score,
	cfg sim.Config,
	best *float64,
	bestParams *map[string]float64,
) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if depth == len(g.paramNames) {
		game, pilot, err := build(current)
		if err != nil {
			return nil
		}

		result, err := sim.NewRunner(pilot).Run(ctx, game, cfg)
		if err != nil {
			return err
		}

		val := score(result)
		if val < *best {
			*best = val
			*bestParams = make(map[string]float64)
			for k, v := range current {
				(*bestParams)[k] = v
			}
		}
		return nil
	}

	paramName := g.paramNames[depth]
	for _, val := range g.ranges[depth] {
		newParams := make(map[string]float64)
		for k, v := range current {
			newParams[k] = v
		}
		newParams[paramName] = val

		if err := g.searchRecursive(ctx, depth+1, newParams, build, score, cfg, best, bestParams); err != nil {
			return err
		}
	}
	return nil
}

// FuelToLand scores landed flights by fuel used and rejects every other
// outcome.
func FuelToLand(initialFuel float64) Score {
	return func(r *sim.Result) float64 {
		if r.Outcome != sim.Landed {
			return math.Inf(1)
		}
		return initialFuel - r.Final.Fuel
	}
}
