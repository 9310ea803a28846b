package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/lander/internal/dynamo"
	"github.com/san-kum/lander/internal/physics"
)

const (
	DefaultWeight  = 1.0
	DefaultFuel    = 1000.0
	DefaultGravity = 0.05
	DefaultPilot   = "autopilot"
)

type Config struct {
	Weight    float64         `yaml:"weight"`
	Fuel      float64         `yaml:"fuel"`
	Gravity   float64         `yaml:"gravity"`
	Pilot     string          `yaml:"pilot"`
	Start     StartConfig     `yaml:"start"`
	Playfield PlayfieldConfig `yaml:"playfield"`
}

// StartConfig places the rocket before the first frame only. Each step
// writes the rocket's velocity into its position and the velocity starts at
// zero, so after one frame the rocket is back near the origin whatever the
// start was.
type StartConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type PlayfieldConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	PlatformX     float64 `yaml:"platform_x"`
	PlatformY     float64 `yaml:"platform_y"`
	PlatformW     float64 `yaml:"platform_w"`
	PlatformH     float64 `yaml:"platform_h"`
	LandingY      float64 `yaml:"landing_y"`
	MovementForce float64 `yaml:"movement_force"`
	FuelRate      float64 `yaml:"fuel_rate"`
}

func DefaultConfig() *Config {
	pf := physics.DefaultConfig()
	return &Config{
		Weight:  DefaultWeight,
		Fuel:    DefaultFuel,
		Gravity: DefaultGravity,
		Pilot:   DefaultPilot,
		Playfield: PlayfieldConfig{
			Width:         pf.WindowWidth,
			Height:        pf.WindowHeight,
			PlatformX:     pf.PlatformX,
			PlatformY:     pf.PlatformY,
			PlatformW:     pf.PlatformW,
			PlatformH:     pf.PlatformH,
			LandingY:      pf.LandingY,
			MovementForce: pf.MovementForce,
			FuelRate:      pf.FuelRate,
		},
	}
}

func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := cfg.Merge(path); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Merge overlays the yaml file at path onto c. Keys absent from the file
// keep their current values.
func (c *Config) Merge(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, c)
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Physics() physics.Config {
	return physics.Config{
		WindowWidth:   c.Playfield.Width,
		WindowHeight:  c.Playfield.Height,
		PlatformX:     c.Playfield.PlatformX,
		PlatformY:     c.Playfield.PlatformY,
		PlatformW:     c.Playfield.PlatformW,
		PlatformH:     c.Playfield.PlatformH,
		LandingY:      c.Playfield.LandingY,
		MovementForce: c.Playfield.MovementForce,
		FuelRate:      c.Playfield.FuelRate,
	}
}

// GravityVector is the vertical gravity; the horizontal part is always zero.
func (c *Config) GravityVector() dynamo.Vector2 {
	return dynamo.NewVector2(0, c.Gravity)
}

func (c *Config) Validate() error {
	for _, p := range []struct {
		name  string
		value float64
	}{{"weight", c.Weight}, {"fuel", c.Fuel}, {"gravity", c.Gravity}} {
		if math.IsNaN(p.value) || math.IsInf(p.value, 0) {
			return &dynamo.ParamError{Name: p.name, Value: fmt.Sprint(p.value), Wrapped: dynamo.ErrInvalidParam}
		}
	}
	if err := c.Physics().Validate(); err != nil {
		return fmt.Errorf("playfield: %w", err)
	}
	return nil
}

// ParseStartup reads weight, fuel and gravity from positional arguments in
// that order and applies them to c. The error names the first argument that
// failed.
func (c *Config) ParseStartup(args []string) error {
	targets := []struct {
		name string
		dst  *float64
	}{{"weight", &c.Weight}, {"fuel", &c.Fuel}, {"gravity", &c.Gravity}}

	if len(args) > len(targets) {
		return fmt.Errorf("expected at most %d arguments, got %d", len(targets), len(args))
	}

	values := make([]float64, len(args))
	for i, arg := range args {
		v, err := parseFloat(targets[i].name, arg)
		if err != nil {
			return err
		}
		values[i] = v
	}
	if len(args) > 0 && len(args) < len(targets) {
		return &dynamo.ParamError{Name: targets[len(args)].name, Value: "", Wrapped: dynamo.ErrMissingParam}
	}

	for i, v := range values {
		*targets[i].dst = v
	}
	return nil
}

func parseFloat(name, s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			err = numErr.Err
		}
		return 0, &dynamo.ParamError{Name: name, Value: s, Wrapped: fmt.Errorf("%w: %v", dynamo.ErrInvalidParam, err)}
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &dynamo.ParamError{Name: name, Value: s, Wrapped: dynamo.ErrInvalidParam}
	}
	return v, nil
}
