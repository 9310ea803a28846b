// Package sim runs the landing game.
//
// A [Game] owns the rocket, the platform, the gravity vector and the game
// state. Each call to [Game.Step] advances one frame from an [Input]
// snapshot of held and just-released keys; the game never polls a device.
// Once the state reaches [GameOver] further steps are no-ops.
//
// [Runner] drives a game headless from a [Pilot] and collects [Metric]
// values; [Ensemble] runs independent games in parallel, one goroutine per
// game.
package sim
