package boxfield

import "github.com/dkotenko/boxfield/internal/core"

// Controller maps discrete directional actions to bounded-entity
// displacement. It is stateless between events: no buffered input, no
// key-repeat suppression beyond what the input source provides.
type Controller struct {
	entity *core.Entity
	step   float64
}

// NewController binds an entity to a fixed step size. The step is
// validated at config load, not here.
func NewController(entity *core.Entity, step float64) *Controller {
	return &Controller{entity: entity, step: step}
}

// Step returns the controller's step size in world units.
func (c *Controller) Step() float64 {
	return c.step
}

// Handle applies one directional action to the controlled entity and
// reports whether it moved the entity. Non-directional actions are a
// no-op, not an error.
func (c *Controller) Handle(a core.Action) bool {
	if !a.Directional() {
		return false
	}
	switch a {
	case core.ActionLeft:
		c.entity.Move(core.Vec{X: -c.step})
	case core.ActionRight:
		c.entity.Move(core.Vec{X: c.step})
	case core.ActionUp:
		c.entity.Move(core.Vec{Y: -c.step})
	case core.ActionDown:
		c.entity.Move(core.Vec{Y: c.step})
	}
	return true
}

// Apply handles every directional action present in the frame and returns
// the number of steps taken. Within a frame the order is fixed
// (left, right, up, down); frames themselves arrive strictly in order.
func (c *Controller) Apply(in core.InputFrame) int {
	steps := 0
	for _, a := range []core.Action{core.ActionLeft, core.ActionRight, core.ActionUp, core.ActionDown} {
		if in.Has(a) && c.Handle(a) {
			steps++
		}
	}
	return steps
}
