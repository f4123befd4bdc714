package core

// Vec is a 2D displacement or position in world units.
// World units map 1:1 to screen cells; fractional values are truncated
// only at render time.
type Vec struct {
	X, Y float64
}

// Add returns the component-wise sum of the given vectors, starting from
// the zero vector. Add() returns the zero vector; Add(v) returns v.
func Add(vs ...Vec) Vec {
	var sum Vec
	for _, v := range vs {
		sum.X += v.X
		sum.Y += v.Y
	}
	return sum
}

// Plus adds the sum of the given vectors to the receiver in place.
// Applying Plus(a) then Plus(b) is equivalent to Plus(a, b).
func (v *Vec) Plus(vs ...Vec) {
	for _, o := range vs {
		v.X += o.X
		v.Y += o.Y
	}
}

// Position is a Vec used to denote an entity's location. It adds semantic
// move operations; there is no independent lifecycle, a Position is created
// with its entity and mutated in place by movement.
type Position struct {
	Vec
}

// NewPosition creates a position at the given world coordinates.
func NewPosition(x, y float64) Position {
	return Position{Vec: Vec{X: x, Y: y}}
}

// Move displaces the position by delta.
func (p *Position) Move(delta Vec) {
	p.Plus(delta)
}

// MoveLeft moves the position d units in -X. The magnitude is not sign
// checked: a negative d moves right.
func (p *Position) MoveLeft(d float64) {
	p.Move(Vec{X: -d})
}

// MoveRight moves the position d units in +X.
func (p *Position) MoveRight(d float64) {
	p.Move(Vec{X: d})
}

// MoveUp moves the position d units in -Y (screen coordinates grow downward).
func (p *Position) MoveUp(d float64) {
	p.Move(Vec{Y: -d})
}

// MoveDown moves the position d units in +Y.
func (p *Position) MoveDown(d float64) {
	p.Move(Vec{Y: d})
}
