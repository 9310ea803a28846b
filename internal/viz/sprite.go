package viz

import (
	"math"

	"github.com/san-kum/lander/internal/dynamo"
)

// Sprite is a drawable rectangle. Its size is fixed when it is built; the
// position is supplied on every draw.
type Sprite struct {
	Entity string
	W, H   float64
	Filled bool
}

// NewSprite builds a sprite from an entity's bounding box. It fails when
// the box is not a finite rectangle of positive size.
func NewSprite(entity string, shape dynamo.Rect, filled bool) (*Sprite, error) {
	if !shape.Valid() {
		return nil, &dynamo.ShapeError{Entity: entity, Rect: shape}
	}
	return &Sprite{Entity: entity, W: shape.W, H: shape.H, Filled: filled}, nil
}

// Viewport maps playfield coordinates to canvas sub-pixels.
type Viewport struct {
	ScaleX, ScaleY float64
}

func NewViewport(c *Canvas, fieldW, fieldH float64) Viewport {
	w, h := c.PixelSize()
	return Viewport{ScaleX: float64(w) / fieldW, ScaleY: float64(h) / fieldH}
}

func (v Viewport) project(x, y float64) (int, int) {
	return int(math.Floor(x * v.ScaleX)), int(math.Floor(y * v.ScaleY))
}

// Draw renders the sprite with its top-left corner at pos.
func (s *Sprite) Draw(c *Canvas, v Viewport, pos dynamo.Vector2) {
	x0, y0 := v.project(pos.X, pos.Y)
	x1, y1 := v.project(pos.X+s.W, pos.Y+s.H)
	if x1 == x0 {
		x1++
	}
	if y1 == y0 {
		y1++
	}
	if s.Filled {
		c.FillRect(x0, y0, x1, y1)
		return
	}
	c.StrokeRect(x0, y0, x1, y1)
}
