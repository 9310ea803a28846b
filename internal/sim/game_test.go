package sim

import (
	"bytes"
	"log/slog"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/lander/internal/dynamo"
	"github.com/san-kum/lander/internal/physics"
)

func newGame(cfg physics.Config, weight, fuel, gravity float64) *Game {
	rocket := physics.NewRocket(cfg, 0, 0, weight, fuel)
	return NewGame(rocket, cfg.NewPlatform(), dynamo.NewVector2(0, gravity))
}

func stepUntilOver(g *Game, in Input, maxFrames int) {
	for i := 0; i < maxFrames && g.State() == Playing; i++ {
		g.Step(in)
	}
}

type recorder struct {
	frames []Frame
	inputs []Input
}

func (r *recorder) OnStep(f Frame, in Input) {
	r.frames = append(r.frames, f)
	r.inputs = append(r.inputs, in)
}

var _ = Describe("Game", func() {
	var cfg physics.Config

	BeforeEach(func() {
		cfg = physics.DefaultConfig()
	})

	It("starts playing with the rocket flying", func() {
		g := newGame(cfg, 1, 1000, 0.05)
		Expect(g.State()).To(Equal(Playing))
		Expect(g.Outcome()).To(Equal(None))
		Expect(g.Rocket().Flying).To(BeTrue())
		Expect(g.Frames()).To(BeZero())
	})

	It("applies gravity and its passive fuel cost while flying", func() {
		g := newGame(cfg, 2, 100, 0.05)
		g.Step(Input{})

		r := g.Rocket()
		Expect(r.Velocity.Y).To(BeNumerically("~", 0.1, 1e-12))
		Expect(r.Shape.Y).To(BeNumerically("~", 0.1, 1e-12))
		Expect(r.Fuel).To(BeNumerically("~", 100-0.05*2*0.01, 1e-12))
		Expect(g.Frames()).To(Equal(1))
	})

	Describe("scenario A: landing on the platform", func() {
		It("ends the game landed with gravity cleared", func() {
			g := newGame(cfg, 1, 1000, 0.05)
			g.Rocket().Velocity.X = 200

			stepUntilOver(g, Input{Held: KeyUp}, 1000)

			Expect(g.State()).To(Equal(GameOver))
			Expect(g.Outcome()).To(Equal(Landed))
			Expect(g.Gravity()).To(Equal(dynamo.Vector2{}))
			Expect(g.Rocket().Shape.X).To(Equal(200.0))
			Expect(g.Rocket().Shape.Y).To(Equal(cfg.WindowHeight - physics.RocketHeight - cfg.PlatformH))
			Expect(g.Rocket().Flying).To(BeFalse())
			Expect(g.Frames()).To(Equal(164))
		})
	})

	Describe("scenario B: crashing beside the platform", func() {
		DescribeTable("rests on the floor",
			func(drift float64) {
				g := newGame(cfg, 1, 1000, 0.05)
				g.Rocket().Velocity.X = drift

				stepUntilOver(g, Input{Held: KeyUp}, 1000)

				Expect(g.State()).To(Equal(GameOver))
				Expect(g.Outcome()).To(Equal(Crashed))
				Expect(g.Gravity()).To(Equal(dynamo.Vector2{}))
				Expect(g.Rocket().Shape.Y).To(Equal(cfg.WindowHeight - physics.RocketHeight))
			},
			Entry("far right", 500.0),
			Entry("far left", -300.0),
			Entry("never drifted", 0.0),
		)
	})

	Describe("scenario C: running out of fuel", func() {
		It("drops the rocket on the frame the tank empties", func() {
			cfg.WindowHeight = 100000
			g := newGame(cfg, 3000, 1.0, 0.001)

			stepUntilOver(g, Input{}, 33)
			Expect(g.State()).To(Equal(Playing))
			Expect(g.Rocket().HasFuel()).To(BeTrue())

			g.Step(Input{})

			Expect(g.State()).To(Equal(GameOver))
			Expect(g.Outcome()).To(Equal(OutOfFuel))
			Expect(g.Frames()).To(Equal(34))
			Expect(g.Rocket().Fuel).To(BeNumerically("<=", 0))
			Expect(g.Gravity()).To(Equal(dynamo.Vector2{}))
			Expect(g.Rocket().Shape.Y).To(Equal(cfg.WindowHeight - physics.RocketHeight))
			// The emptying frame was still integrated.
			Expect(g.Rocket().Velocity.Y).To(BeNumerically("~", 1785, 1e-6))
		})

		It("is ended by the ground first on the default playfield", func() {
			g := newGame(cfg, 3000, 1.0, 0.001)

			stepUntilOver(g, Input{}, 100)

			Expect(g.State()).To(Equal(GameOver))
			Expect(g.Outcome()).To(Equal(Crashed))
			Expect(g.Frames()).To(Equal(22))
			Expect(g.Gravity()).To(Equal(dynamo.Vector2{}))
		})
	})

	It("lets an empty tank override a landing once the rocket drops below the zone", func() {
		g := newGame(cfg, 1, 1000, 0.05)
		r := g.Rocket()
		r.Flying = false
		r.Shape.X, r.Shape.Y = 200, 650
		r.Fuel = -1

		g.Step(Input{})

		Expect(g.Outcome()).To(Equal(OutOfFuel))
		Expect(r.Shape.Y).To(Equal(cfg.WindowHeight - physics.RocketHeight))
	})

	It("logs a single game over line when an empty tank replaces a crash", func() {
		var buf bytes.Buffer
		rocket := physics.NewRocket(cfg, 0, 0, 1, 0)
		g := NewGame(rocket, cfg.NewPlatform(), dynamo.NewVector2(0, 0.05),
			WithLogger(slog.New(slog.NewJSONHandler(&buf, nil))))
		rocket.Flying = false
		rocket.Shape.Y = cfg.WindowHeight - physics.RocketHeight

		g.Step(Input{})

		Expect(g.Outcome()).To(Equal(OutOfFuel))
		Expect(strings.Count(buf.String(), `"msg":"game over"`)).To(Equal(1))
		Expect(buf.String()).To(ContainSubstring(`"outcome":"out of fuel"`))
		Expect(buf.String()).NotTo(ContainSubstring(`"outcome":"crashed"`))
	})

	It("freezes once the game is over", func() {
		g := newGame(cfg, 1, 1000, 0.05)
		stepUntilOver(g, Input{}, 1000)
		Expect(g.State()).To(Equal(GameOver))

		before := g.Frame()
		accel := g.Rocket().Acceleration
		for i := 0; i < 10; i++ {
			g.Step(Input{Held: KeyUp | KeyLeft | KeyRight | KeyDown})
		}

		Expect(g.Frame()).To(Equal(before))
		Expect(g.Rocket().Acceleration).To(Equal(accel))
	})

	Describe("input", func() {
		var g *Game

		BeforeEach(func() {
			g = newGame(cfg, 1, 1000, 0)
		})

		It("applies every held key in the same frame", func() {
			g.Step(Input{Held: KeyUp | KeyRight})

			r := g.Rocket()
			Expect(r.Moving).To(BeTrue())
			Expect(r.Acceleration.X).To(BeNumerically("~", cfg.MovementForce, 1e-12))
			Expect(r.Acceleration.Y).To(BeNumerically("~", -cfg.MovementForce, 1e-12))
			Expect(r.Fuel).To(BeNumerically("~", 1000-2*cfg.MovementForce*cfg.FuelRate, 1e-12))
		})

		It("stops moving when a thrust key is released", func() {
			g.Step(Input{Held: KeyLeft})
			Expect(g.Rocket().Moving).To(BeTrue())

			g.Step(Transition(KeyLeft, 0))
			Expect(g.Rocket().Moving).To(BeFalse())
		})

		It("keeps moving when only down is released", func() {
			g.Step(Input{Held: KeyDown | KeyUp})
			g.Step(Input{Held: KeyUp, Released: KeyDown})
			Expect(g.Rocket().Moving).To(BeTrue())
		})

		It("nets out the down force for a unit weight", func() {
			g.Step(Input{Held: KeyDown})
			Expect(g.Rocket().Acceleration.Y).To(BeNumerically("~", 0, 1e-12))
			Expect(g.Rocket().Fuel).To(Equal(1000.0))
		})
	})

	Describe("frames", func() {
		It("exposes rocket, platform and fuel", func() {
			g := newGame(cfg, 1, 12.345, 0)
			f := g.Frame()

			Expect(f.Rocket).To(Equal(dynamo.NewRect(0, 0, 60, 150)))
			Expect(f.Platform).To(Equal(dynamo.NewRect(160, 390, 100, 30)))
			Expect(f.FuelText()).To(Equal("fuel: 12.35"))
			Expect(f.State).To(Equal(Playing))
		})

		It("notifies observers after every playing step", func() {
			rec := &recorder{}
			g := newGame(cfg, 1, 1000, 0.05)
			g.AddObserver(rec)

			g.Step(Input{Held: KeyUp})
			g.Step(Input{})

			Expect(rec.frames).To(HaveLen(2))
			Expect(rec.frames[0].Index).To(Equal(1))
			Expect(rec.inputs[0].Held).To(Equal(KeyUp))
			Expect(rec.frames[1].Index).To(Equal(2))
		})
	})
})

var _ = Describe("Keys", func() {
	It("formats held keys", func() {
		Expect(Keys(0).String()).To(Equal("none"))
		Expect((KeyUp | KeyRight).String()).To(Equal("up+right"))
	})

	It("derives releases from the previous snapshot", func() {
		in := Transition(KeyUp|KeyLeft, KeyLeft|KeyDown)
		Expect(in.Held).To(Equal(KeyLeft | KeyDown))
		Expect(in.Released).To(Equal(KeyUp))
	})

	It("tests membership", func() {
		k := KeyUp | KeyDown
		Expect(k.Has(KeyUp)).To(BeTrue())
		Expect(k.Has(KeyUp | KeyLeft)).To(BeFalse())
		Expect(k.Any(Thrust)).To(BeTrue())
		Expect(KeyDown.Any(Thrust)).To(BeFalse())
	})
})
