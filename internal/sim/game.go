package sim

import (
	"log/slog"

	"github.com/san-kum/lander/internal/dynamo"
	"github.com/san-kum/lander/internal/physics"
)

type Game struct {
	rocket    *physics.Rocket
	platform  physics.Platform
	gravity   dynamo.Vector2
	state     State
	outcome   Outcome
	frames    int
	observers []Observer
	log       *slog.Logger
}

type Option func(*Game)

func WithLogger(l *slog.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.log = l
		}
	}
}

func WithObserver(o Observer) Option {
	return func(g *Game) { g.AddObserver(o) }
}

func NewGame(rocket *physics.Rocket, platform physics.Platform, gravity dynamo.Vector2, opts ...Option) *Game {
	g := &Game{
		rocket:    rocket,
		platform:  platform,
		gravity:   gravity,
		state:     Playing,
		observers: make([]Observer, 0),
		log:       slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Game) AddObserver(o Observer) { g.observers = append(g.observers, o) }

func (g *Game) State() State               { return g.state }
func (g *Game) Outcome() Outcome           { return g.outcome }
func (g *Game) Gravity() dynamo.Vector2    { return g.gravity }
func (g *Game) Rocket() *physics.Rocket    { return g.rocket }
func (g *Game) Platform() physics.Platform { return g.platform }
func (g *Game) Frames() int                { return g.frames }

// Step advances one frame. It does nothing once the game is over.
func (g *Game) Step(in Input) {
	switch g.state {
	case Playing:
		g.advance()
		if g.state == GameOver {
			g.logOutcome()
		}
		g.steer(in)
		g.frames++

		f := g.Frame()
		for _, obs := range g.observers {
			obs.OnStep(f, in)
		}
	case GameOver:
	}
}

func (g *Game) advance() {
	r := g.rocket

	if r.Flying {
		r.ApplyForce(g.gravity)
		r.BurnPassive(g.gravity)
		r.Fly()
		if r.HitGround(r.Config().WindowHeight) {
			g.log.Debug("rocket touched the ground", "frame", g.frames, "x", r.Shape.X, "y", r.Shape.Y)
		}
	} else if r.OnPlatform(g.platform) {
		g.end(Landed, g.platform.Shape.H)
	} else {
		g.end(Crashed, 0)
	}

	// Runs after the flight branch, so the frame that empties the tank
	// still integrates once before the rocket drops.
	if !r.HasFuel() && !r.OnPlatform(g.platform) {
		g.end(OutOfFuel, 0)
	}
}

func (g *Game) end(outcome Outcome, platformHeight float64) {
	g.gravity = dynamo.Vector2{}
	g.rocket.Fall(platformHeight)
	g.state = GameOver
	g.outcome = outcome
}

// logOutcome runs once per game, after the fuel check may have replaced
// the outcome of the same frame.
func (g *Game) logOutcome() {
	g.log.Info("game over",
		"outcome", g.outcome.String(),
		"frame", g.frames,
		"fuel", g.rocket.Fuel,
		"x", g.rocket.Shape.X,
		"y", g.rocket.Shape.Y,
	)
}

func (g *Game) steer(in Input) {
	r := g.rocket

	if in.Released.Any(Thrust) {
		r.Moving = false
	}

	if in.Held.Has(KeyUp) {
		r.Moving = true
		r.Up()
	}
	if in.Held.Has(KeyLeft) {
		r.Moving = true
		r.Left()
	}
	if in.Held.Has(KeyRight) {
		r.Moving = true
		r.Right()
	}
	if in.Held.Has(KeyDown) {
		r.Moving = true
		r.Down()
	}
}

// Frame snapshots the current renderable state.
func (g *Game) Frame() Frame {
	r := g.rocket
	return Frame{
		Index:        g.frames,
		Rocket:       r.Shape,
		Platform:     g.platform.Shape,
		Fuel:         r.Fuel,
		Velocity:     r.Velocity,
		Acceleration: r.Acceleration,
		Flying:       r.Flying,
		State:        g.state,
		Outcome:      g.outcome,
	}
}
