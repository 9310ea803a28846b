// Package dynamo provides the value types shared by the lander simulation.
//
//   - [Vector2]: 2D float vector for position, velocity, acceleration and force
//   - [Rect]: axis-aligned rectangle, top-left origin, y grows downward
//
// # Example
//
//	gravity := dynamo.NewVector2(0, 0.05)
//	box := dynamo.NewRect(0, 0, 60, 150)
//	_ = box.Bottom() // 150
//
// # Thread Safety
//
// Both types are plain values and are safe to copy between goroutines.
// Nothing in this package holds shared state.
package dynamo
