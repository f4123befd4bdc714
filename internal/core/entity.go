package core

import "fmt"

// Bounds is the rectangular world an entity moves in. The origin is (0,0);
// the world spans [0, W) x [0, H) in world units.
type Bounds struct {
	W, H float64
}

// Valid reports whether the bounds describe a usable world.
func (b Bounds) Valid() bool {
	return b.W > 0 && b.H > 0
}

// Entity is a movable rectangle whose position is kept inside a fixed
// world boundary. It owns a Position and a size; it is mutated only through
// Move, and after every Move the invariant
//
//	0 <= Pos.X <= bounds.W - W  and  0 <= Pos.Y <= bounds.H - H
//
// holds for any finite displacement.
type Entity struct {
	Pos    Position
	W, H   float64
	bounds Bounds
}

// NewEntity creates an entity of the given size at pos, clamped into bounds.
// It rejects configurations for which the clamp ceiling would be negative:
// non-positive sizes or bounds, or an entity larger than its world.
func NewEntity(pos Position, w, h float64, bounds Bounds) (*Entity, error) {
	if !bounds.Valid() {
		return nil, fmt.Errorf("core: invalid world bounds %gx%g", bounds.W, bounds.H)
	}
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("core: invalid entity size %gx%g", w, h)
	}
	if w > bounds.W || h > bounds.H {
		return nil, fmt.Errorf("core: entity %gx%g does not fit world %gx%g", w, h, bounds.W, bounds.H)
	}

	e := &Entity{Pos: pos, W: w, H: h, bounds: bounds}
	e.clamp()
	return e, nil
}

// Move displaces the entity by delta and saturates the result at the world
// edges. Out-of-range displacements are not an error; the clamp is silent
// and total.
func (e *Entity) Move(delta Vec) {
	e.Pos.Move(delta)
	e.clamp()
}

// Bounds returns the world boundary the entity is clamped to.
func (e *Entity) Bounds() Bounds {
	return e.bounds
}

func (e *Entity) clamp() {
	e.Pos.X = ClampF(e.Pos.X, 0, e.bounds.W-e.W)
	e.Pos.Y = ClampF(e.Pos.Y, 0, e.bounds.H-e.H)
}

// Rect returns the entity's footprint in screen cells.
func (e *Entity) Rect() Rect {
	return NewRect(int(e.Pos.X), int(e.Pos.Y), int(e.W), int(e.H))
}
