package boxfield

import "github.com/dkotenko/boxfield/internal/core"

// Sprite is the drawable capability: it knows how to paint itself into a
// screen rectangle. Shape knowledge lives here, not in the entity, so the
// render pass dispatches on the sprite rather than on entity identity.
type Sprite interface {
	Draw(dst *core.Screen, r core.Rect)
}

// BoxSprite draws a filled rectangle with a distinct one-cell border,
// the terminal equivalent of a canvas fillStyle/strokeStyle pair.
type BoxSprite struct {
	Fill        rune
	Stroke      rune
	FillColor   core.Color
	StrokeColor core.Color
}

// Draw paints the interior first, then the border on top. Rectangles
// thinner than three cells end up all border.
func (s BoxSprite) Draw(dst *core.Screen, r core.Rect) {
	dst.FillRect(r, s.Fill, s.FillColor)
	dst.StrokeRect(r, s.Stroke, s.StrokeColor)
}

// BlockSprite draws a solid single-color block. Used for obstacles.
type BlockSprite struct {
	Fill  rune
	Color core.Color
}

// Draw fills the rectangle with the block rune.
func (s BlockSprite) Draw(dst *core.Screen, r core.Rect) {
	dst.FillRect(r, s.Fill, s.Color)
}
