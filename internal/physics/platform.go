package physics

import "github.com/san-kum/lander/internal/dynamo"

// Platform is the landing target. It never moves.
type Platform struct {
	Shape dynamo.Rect
}

func NewPlatform(x, y, w, h float64) Platform {
	return Platform{Shape: dynamo.NewRect(x, y, w, h)}
}
