package core

import "testing"

func TestNewEntityValidation(t *testing.T) {
	bounds := Bounds{W: 400, H: 400}

	tests := []struct {
		name    string
		w, h    float64
		bounds  Bounds
		wantErr bool
	}{
		{"valid", 20, 20, bounds, false},
		{"fills world exactly", 400, 400, bounds, false},
		{"zero width", 0, 20, bounds, true},
		{"negative height", 20, -1, bounds, true},
		{"wider than world", 401, 20, bounds, true},
		{"taller than world", 20, 401, bounds, true},
		{"zero bounds", 20, 20, Bounds{}, true},
		{"negative bounds", 20, 20, Bounds{W: -400, H: 400}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewEntity(NewPosition(0, 0), tc.w, tc.h, tc.bounds)
			if (err != nil) != tc.wantErr {
				t.Errorf("NewEntity() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestNewEntityClampsInitialPosition(t *testing.T) {
	e, err := NewEntity(NewPosition(500, -50), 20, 20, Bounds{W: 400, H: 400})
	if err != nil {
		t.Fatalf("NewEntity() failed: %v", err)
	}
	if e.Pos.X != 380 || e.Pos.Y != 0 {
		t.Errorf("initial position = (%g, %g), expected (380, 0)", e.Pos.X, e.Pos.Y)
	}
}

func TestEntityMoveClampInvariant(t *testing.T) {
	bounds := Bounds{W: 400, H: 400}
	e, err := NewEntity(NewPosition(100, 120), 20, 20, bounds)
	if err != nil {
		t.Fatalf("NewEntity() failed: %v", err)
	}

	deltas := []Vec{
		{X: 20}, {X: -1000}, {Y: 1e6}, {X: 399.5, Y: -399.5},
		{X: 0.25, Y: 0.25}, {X: -0.25, Y: -0.25}, {},
	}

	for _, d := range deltas {
		e.Move(d)
		if e.Pos.X < 0 || e.Pos.X > bounds.W-e.W {
			t.Errorf("after Move(%v): x=%g out of [0, %g]", d, e.Pos.X, bounds.W-e.W)
		}
		if e.Pos.Y < 0 || e.Pos.Y > bounds.H-e.H {
			t.Errorf("after Move(%v): y=%g out of [0, %g]", d, e.Pos.Y, bounds.H-e.H)
		}
	}
}

func TestEntityMoveExample(t *testing.T) {
	// Entity at (100, 120) in a 400x400 world, 20x20 box, step 20:
	// one step right lands on (120, 120); walking right saturates at 380.
	e, err := NewEntity(NewPosition(100, 120), 20, 20, Bounds{W: 400, H: 400})
	if err != nil {
		t.Fatalf("NewEntity() failed: %v", err)
	}

	e.Move(Vec{X: 20})
	if e.Pos.X != 120 || e.Pos.Y != 120 {
		t.Fatalf("after one step right: (%g, %g), expected (120, 120)", e.Pos.X, e.Pos.Y)
	}

	for i := 0; i < 30; i++ {
		e.Move(Vec{X: 20})
	}
	if e.Pos.X != 380 {
		t.Errorf("x saturated at %g, expected 380 (worldW - width)", e.Pos.X)
	}

	e.Move(Vec{X: 20})
	if e.Pos.X != 380 {
		t.Errorf("x moved past ceiling to %g", e.Pos.X)
	}
}

func TestEntityMoveLowerBoundClamp(t *testing.T) {
	e, err := NewEntity(NewPosition(0, 0), 20, 20, Bounds{W: 400, H: 400})
	if err != nil {
		t.Fatalf("NewEntity() failed: %v", err)
	}

	e.Move(Vec{X: -20})
	if e.Pos.X != 0 || e.Pos.Y != 0 {
		t.Errorf("left step at origin moved to (%g, %g), expected (0, 0)", e.Pos.X, e.Pos.Y)
	}

	e.Move(Vec{Y: -20})
	if e.Pos.X != 0 || e.Pos.Y != 0 {
		t.Errorf("up step at origin moved to (%g, %g), expected (0, 0)", e.Pos.X, e.Pos.Y)
	}
}

func TestEntityLeftRightRoundTripInsideBounds(t *testing.T) {
	e, err := NewEntity(NewPosition(200, 200), 20, 20, Bounds{W: 400, H: 400})
	if err != nil {
		t.Fatalf("NewEntity() failed: %v", err)
	}

	e.Move(Vec{X: -30})
	e.Move(Vec{X: 30})
	if e.Pos.X != 200 || e.Pos.Y != 200 {
		t.Errorf("round trip left entity at (%g, %g), expected (200, 200)", e.Pos.X, e.Pos.Y)
	}
}

func TestEntityRect(t *testing.T) {
	e, err := NewEntity(NewPosition(10.9, 5.1), 3, 2, Bounds{W: 80, H: 24})
	if err != nil {
		t.Fatalf("NewEntity() failed: %v", err)
	}

	r := e.Rect()
	expected := NewRect(10, 5, 3, 2)
	if r != expected {
		t.Errorf("Rect() = %v, expected %v", r, expected)
	}
}
