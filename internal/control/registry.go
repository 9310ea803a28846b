package control

import (
	"fmt"
	"sort"

	"github.com/san-kum/lander/internal/sim"
)

var pilots = map[string]func(params map[string]float64) sim.Pilot{
	"none": func(map[string]float64) sim.Pilot { return NewNone() },
	"autopilot": func(params map[string]float64) sim.Pilot {
		return NewAutopilot(
			param(params, "kp", DefaultKp),
			param(params, "ki", DefaultKi),
			param(params, "kd", DefaultKd),
			param(params, "cruise", DefaultCruise),
		)
	},
}

// New builds the named pilot. Missing params fall back to defaults.
func New(name string, params map[string]float64) (sim.Pilot, error) {
	fn, ok := pilots[name]
	if !ok {
		return nil, fmt.Errorf("unknown pilot: %s (available: %v)", name, Names())
	}
	return fn(params), nil
}

func Names() []string {
	names := make([]string, 0, len(pilots))
	for name := range pilots {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func param(params map[string]float64, key string, def float64) float64 {
	if v, ok := params[key]; ok {
		return v
	}
	return def
}
