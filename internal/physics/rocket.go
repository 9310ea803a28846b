package physics

import (
	"github.com/san-kum/lander/internal/dynamo"
)

type Rocket struct {
	Shape        dynamo.Rect
	Velocity     dynamo.Vector2
	Acceleration dynamo.Vector2
	Weight       float64
	Fuel         float64
	Moving       bool
	Flying       bool

	upForce    dynamo.Vector2
	leftForce  dynamo.Vector2
	rightForce dynamo.Vector2
	cfg        Config
}

func NewRocket(cfg Config, x, y, weight, fuel float64) *Rocket {
	f := cfg.MovementForce
	return &Rocket{
		Shape:      dynamo.NewRect(x, y, RocketWidth, RocketHeight),
		Weight:     weight,
		Fuel:       fuel,
		Flying:     true,
		upForce:    dynamo.NewVector2(0, -f),
		leftForce:  dynamo.NewVector2(-f, 0),
		rightForce: dynamo.NewVector2(f, 0),
		cfg:        cfg,
	}
}

// ApplyForce accumulates force scaled by weight into the acceleration.
func (r *Rocket) ApplyForce(force dynamo.Vector2) {
	r.Acceleration = r.Acceleration.Add(force.Scale(r.Weight))
}

// Fly integrates one frame. Position is set to velocity, not advanced by it,
// and only the horizontal acceleration is cleared afterwards.
func (r *Rocket) Fly() {
	r.Velocity = r.Velocity.Add(r.Acceleration)

	r.Shape.X = r.Velocity.X
	r.Shape.Y = r.Velocity.Y

	r.Acceleration.X = 0
}

// HitGround rests the rocket on the floor once its bottom edge reaches
// windowHeight.
func (r *Rocket) HitGround(windowHeight float64) bool {
	if r.Shape.Bottom() < windowHeight {
		return false
	}
	r.Velocity.Y = 0
	r.Shape.Y = windowHeight - r.Shape.H
	r.Flying = false
	return true
}

func (r *Rocket) Up() {
	r.ApplyForce(r.upForce)
	r.Fuel += r.upForce.Y * r.Weight * r.cfg.FuelRate
}

// Down pushes down through the force accumulator and then takes the bare
// movement force back off the vertical acceleration.
func (r *Rocket) Down() {
	r.ApplyForce(dynamo.NewVector2(0, r.cfg.MovementForce))
	r.Acceleration.Y -= r.cfg.MovementForce
}

func (r *Rocket) Left() {
	r.ApplyForce(r.leftForce)
	r.Fuel += r.leftForce.X * r.Weight * r.cfg.FuelRate
}

func (r *Rocket) Right() {
	r.ApplyForce(r.rightForce)
	r.Fuel -= r.rightForce.X * r.Weight * r.cfg.FuelRate
}

// BurnPassive charges the fuel cost of holding against gravity for a frame.
func (r *Rocket) BurnPassive(gravity dynamo.Vector2) {
	r.Fuel -= gravity.Y * r.Weight * r.cfg.FuelRate
}

// OnPlatform is the landing zone check. The horizontal band starts one
// platform width left of the platform and ends where the rocket's right
// edge passes the platform's far edge plus another platform width. It is a
// zone test, not rectangle overlap.
func (r *Rocket) OnPlatform(p Platform) bool {
	ps := p.Shape
	return r.Shape.X >= ps.X-ps.W &&
		r.Shape.X+r.Shape.W <= ps.X+ps.W+ps.W &&
		r.Shape.Y >= r.cfg.LandingY
}

func (r *Rocket) HasFuel() bool {
	return r.Fuel > 0
}

// Fall places the rocket at rest platformHeight above the floor.
func (r *Rocket) Fall(platformHeight float64) {
	r.Shape.Y = r.cfg.WindowHeight - r.Shape.H - platformHeight
	r.Flying = false
}

func (r *Rocket) Config() Config {
	return r.cfg
}
