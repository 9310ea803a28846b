package sim

import (
	"fmt"

	"github.com/san-kum/lander/internal/dynamo"
)

type State int

const (
	Playing State = iota
	GameOver
)

func (s State) String() string {
	switch s {
	case Playing:
		return "playing"
	case GameOver:
		return "game over"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Outcome records why a game ended.
type Outcome int

const (
	None Outcome = iota
	Landed
	Crashed
	OutOfFuel
)

func (o Outcome) String() string {
	switch o {
	case None:
		return "none"
	case Landed:
		return "landed"
	case Crashed:
		return "crashed"
	case OutOfFuel:
		return "out of fuel"
	}
	return fmt.Sprintf("outcome(%d)", int(o))
}

// Frame is what the game exposes after a step.
type Frame struct {
	Index        int
	Rocket       dynamo.Rect
	Platform     dynamo.Rect
	Fuel         float64
	Velocity     dynamo.Vector2
	Acceleration dynamo.Vector2
	Flying       bool
	State        State
	Outcome      Outcome
}

func (f Frame) FuelText() string {
	return fmt.Sprintf("fuel: %.2f", f.Fuel)
}

// Pilot decides the key snapshot for the next frame.
type Pilot interface {
	Compute(f Frame) Input
}

type Observer interface {
	OnStep(f Frame, in Input)
}

type Metric interface {
	Name() string
	Observe(f Frame, in Input)
	Value() float64
	Reset()
}

type Config struct {
	MaxFrames int
}

func DefaultConfig() Config {
	return Config{MaxFrames: 100000}
}

type Result struct {
	Frames  int
	Outcome Outcome
	Final   Frame
	Metrics map[string]float64
}
