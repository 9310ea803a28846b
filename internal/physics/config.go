package physics

import "fmt"

const (
	DefaultWindowWidth   = 750.0
	DefaultWindowHeight  = 800.0
	DefaultPlatformX     = 160.0
	DefaultPlatformY     = 390.0
	DefaultPlatformW     = 100.0
	DefaultPlatformH     = 30.0
	DefaultLandingY      = 650.0
	DefaultMovementForce = 0.0009
	DefaultFuelRate      = 0.01

	RocketWidth  = 60.0
	RocketHeight = 150.0
)

// Config carries the playfield constants. WindowHeight doubles as the floor
// for ground collision and terminal placement.
type Config struct {
	WindowWidth   float64
	WindowHeight  float64
	PlatformX     float64
	PlatformY     float64
	PlatformW     float64
	PlatformH     float64
	LandingY      float64
	MovementForce float64
	FuelRate      float64
}

func DefaultConfig() Config {
	return Config{
		WindowWidth:   DefaultWindowWidth,
		WindowHeight:  DefaultWindowHeight,
		PlatformX:     DefaultPlatformX,
		PlatformY:     DefaultPlatformY,
		PlatformW:     DefaultPlatformW,
		PlatformH:     DefaultPlatformH,
		LandingY:      DefaultLandingY,
		MovementForce: DefaultMovementForce,
		FuelRate:      DefaultFuelRate,
	}
}

func (c Config) Validate() error {
	if c.WindowWidth <= 0 {
		return fmt.Errorf("window width must be positive, got %f", c.WindowWidth)
	}
	if c.WindowHeight <= RocketHeight {
		return fmt.Errorf("window height must exceed rocket height %.0f, got %f", RocketHeight, c.WindowHeight)
	}
	if c.PlatformW <= 0 || c.PlatformH <= 0 {
		return fmt.Errorf("platform size must be positive, got %fx%f", c.PlatformW, c.PlatformH)
	}
	if c.MovementForce <= 0 {
		return fmt.Errorf("movement force must be positive, got %f", c.MovementForce)
	}
	if c.FuelRate < 0 {
		return fmt.Errorf("fuel rate must not be negative, got %f", c.FuelRate)
	}
	return nil
}

// NewPlatform builds the platform described by the config.
func (c Config) NewPlatform() Platform {
	return NewPlatform(c.PlatformX, c.PlatformY, c.PlatformW, c.PlatformH)
}
