package boxfield

import (
	"testing"

	"github.com/dkotenko/boxfield/internal/core"
)

func newTestEntity(t *testing.T, x, y float64) *core.Entity {
	t.Helper()
	e, err := core.NewEntity(core.NewPosition(x, y), 20, 20, core.Bounds{W: 400, H: 400})
	if err != nil {
		t.Fatalf("NewEntity() failed: %v", err)
	}
	return e
}

func TestControllerHandle(t *testing.T) {
	tests := []struct {
		name   string
		action core.Action
		moved  bool
		x, y   float64
	}{
		{"left", core.ActionLeft, true, 80, 120},
		{"right", core.ActionRight, true, 120, 120},
		{"up", core.ActionUp, true, 100, 100},
		{"down", core.ActionDown, true, 100, 140},
		{"pause is not movement", core.ActionPause, false, 100, 120},
		{"none is ignored", core.ActionNone, false, 100, 120},
		{"quit is ignored", core.ActionQuit, false, 100, 120},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := newTestEntity(t, 100, 120)
			c := NewController(e, 20)

			moved := c.Handle(tc.action)
			if moved != tc.moved {
				t.Errorf("Handle(%v) = %v, expected %v", tc.action, moved, tc.moved)
			}
			if e.Pos.X != tc.x || e.Pos.Y != tc.y {
				t.Errorf("position = (%g, %g), expected (%g, %g)", e.Pos.X, e.Pos.Y, tc.x, tc.y)
			}
		})
	}
}

func TestControllerStepSize(t *testing.T) {
	e := newTestEntity(t, 100, 120)
	c := NewController(e, 2.5)

	if got := c.Step(); got != 2.5 {
		t.Errorf("Step() = %g, expected 2.5", got)
	}
}

func TestControllerHandleMatchesDirectional(t *testing.T) {
	// Handle moves for exactly the directional actions and ignores the rest.
	actions := []core.Action{
		core.ActionNone, core.ActionLeft, core.ActionRight, core.ActionUp,
		core.ActionDown, core.ActionPause, core.ActionRestart, core.ActionQuit,
	}

	for _, a := range actions {
		e := newTestEntity(t, 100, 120)
		c := NewController(e, 20)

		if moved := c.Handle(a); moved != a.Directional() {
			t.Errorf("Handle(%v) = %v, Directional() = %v", a, moved, a.Directional())
		}
	}
}

func TestControllerClampsAtBounds(t *testing.T) {
	e := newTestEntity(t, 0, 0)
	c := NewController(e, 20)

	// Left at the lower bound is a clamped no-move
	c.Handle(core.ActionLeft)
	if e.Pos.X != 0 || e.Pos.Y != 0 {
		t.Errorf("left at origin moved to (%g, %g)", e.Pos.X, e.Pos.Y)
	}

	// Walk right until saturation at worldW - width
	for i := 0; i < 30; i++ {
		c.Handle(core.ActionRight)
	}
	if e.Pos.X != 380 {
		t.Errorf("x = %g after walking right, expected 380", e.Pos.X)
	}
	c.Handle(core.ActionRight)
	if e.Pos.X != 380 {
		t.Errorf("x = %g after extra right step, expected 380", e.Pos.X)
	}
}

func TestControllerApply(t *testing.T) {
	e := newTestEntity(t, 100, 120)
	c := NewController(e, 20)

	in := core.NewInputFrame()
	in.Set(core.ActionRight)
	in.Set(core.ActionDown)
	in.Set(core.ActionPause) // Not a movement action

	steps := c.Apply(in)
	if steps != 2 {
		t.Errorf("Apply() = %d steps, expected 2", steps)
	}
	if e.Pos.X != 120 || e.Pos.Y != 140 {
		t.Errorf("position = (%g, %g), expected (120, 140)", e.Pos.X, e.Pos.Y)
	}
}

func TestControllerApplyEmptyFrame(t *testing.T) {
	e := newTestEntity(t, 100, 120)
	c := NewController(e, 20)

	if steps := c.Apply(core.NewInputFrame()); steps != 0 {
		t.Errorf("Apply(empty) = %d steps, expected 0", steps)
	}
	if e.Pos.X != 100 || e.Pos.Y != 120 {
		t.Errorf("empty frame moved entity to (%g, %g)", e.Pos.X, e.Pos.Y)
	}
}
