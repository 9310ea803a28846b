package config

import "sort"

var Presets = map[string]func() *Config{
	"classic": DefaultConfig,
	"moon": func() *Config {
		cfg := DefaultConfig()
		cfg.Gravity = 0.001
		cfg.Fuel = 50
		return cfg
	},
	"heavy": func() *Config {
		cfg := DefaultConfig()
		cfg.Weight = 3000
		cfg.Fuel = 1
		cfg.Gravity = 0.001
		return cfg
	},
	// Gravity below the movement force lets up thrust hold altitude, and the
	// weight gives the side thrusters enough reach to get over the platform.
	"lunar": func() *Config {
		cfg := DefaultConfig()
		cfg.Weight = 400
		cfg.Gravity = 0.0005
		return cfg
	},
	"tall": func() *Config {
		cfg := DefaultConfig()
		cfg.Playfield.Height = 1600
		cfg.Playfield.LandingY = 1450
		cfg.Playfield.PlatformY = 1190
		return cfg
	},
}

func GetPreset(name string) *Config {
	fn, ok := Presets[name]
	if !ok {
		return nil
	}
	return fn()
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
