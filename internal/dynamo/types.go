package dynamo

import (
	"fmt"
	"math"
)

type Vector2 struct {
	X float64
	Y float64
}

func NewVector2(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

func (v Vector2) Add(other Vector2) Vector2 {
	return Vector2{X: v.X + other.X, Y: v.Y + other.Y}
}

func (v Vector2) Scale(factor float64) Vector2 {
	return Vector2{X: v.X * factor, Y: v.Y * factor}
}

func (v Vector2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

func (v Vector2) IsValid() bool {
	return isFinite(v.X) && isFinite(v.Y)
}

func (v Vector2) String() string {
	return fmt.Sprintf("(%.3f, %.3f)", v.X, v.Y)
}

// Rect is positioned by its top-left corner.
type Rect struct {
	X, Y float64
	W, H float64
}

func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

func (r Rect) Position() Vector2 {
	return Vector2{X: r.X, Y: r.Y}
}

// Valid reports whether the rectangle has a finite position and a
// strictly positive finite size.
func (r Rect) Valid() bool {
	if !isFinite(r.X) || !isFinite(r.Y) || !isFinite(r.W) || !isFinite(r.H) {
		return false
	}
	return r.W > 0 && r.H > 0
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
