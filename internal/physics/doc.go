// Package physics holds the lander's body dynamics.
//
//   - [Rocket]: the flying body; accumulates forces, integrates one step per
//     frame and burns fuel for every thrust
//   - [Platform]: the static landing target
//   - [Config]: playfield constants shared by both
//
// # Integration
//
// [Rocket.Fly] adds acceleration to velocity and then writes velocity into
// the rocket's position. Only the x component of acceleration is cleared
// after a step; the y component keeps accumulating across frames:
//
//	r := physics.NewRocket(physics.DefaultConfig(), 0, 0, 1, 1000)
//	r.ApplyForce(dynamo.NewVector2(0, 0.05))
//	r.Fly()
//	r.HitGround(800)
package physics
