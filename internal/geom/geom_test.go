package geom

import "testing"

func TestOverlaps(t *testing.T) {
	half := Splat(0.05)

	tests := []struct {
		name     string
		a, b     Vec2
		expected bool
	}{
		{"same center", Vec2{0, 0}, Vec2{0, 0}, true},
		{"partial overlap x", Vec2{0, 0}, Vec2{0.09, 0}, true},
		{"partial overlap y", Vec2{0, 0}, Vec2{0, -0.05}, true},
		{"touching edge x", Vec2{0, 0}, Vec2{0.1, 0}, false},
		{"touching edge y", Vec2{0, 0}, Vec2{0, 0.1}, false},
		{"touching corner", Vec2{0, 0}, Vec2{0.1, 0.1}, false},
		{"apart", Vec2{0, 0}, Vec2{1, 1}, false},
		{"overlap x only", Vec2{0, 0}, Vec2{0.02, 0.5}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overlaps(tt.a, half, tt.b, half)
			if got != tt.expected {
				t.Errorf("Overlaps(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.expected)
			}
			// Symmetric
			if back := Overlaps(tt.b, half, tt.a, half); back != got {
				t.Errorf("Overlaps(%v, %v) = %v, not symmetric with %v", tt.b, tt.a, back, got)
			}
		})
	}
}

func TestOverlapsMixedExtents(t *testing.T) {
	// Actor box is 90% of a 0.1 tile, the wall cell is a full tile.
	actor := NewBox(Vec2{0, 0.046}, 0.09)
	wall := NewBox(Vec2{0, 0.1}, 0.1)

	if !actor.Overlaps(wall) {
		t.Error("actor box reaching past the wall edge should overlap")
	}

	actor = NewBox(Vec2{0, 0.005}, 0.09)
	if actor.Overlaps(wall) {
		t.Error("actor box ending exactly on the wall edge should not overlap")
	}
}

func TestBoxCorners(t *testing.T) {
	b := NewBox(Vec2{1, 2}, 0.5)

	if got := b.Min(); got != (Vec2{0.75, 1.75}) {
		t.Errorf("Min() = %v, want {0.75 1.75}", got)
	}
	if got := b.Max(); got != (Vec2{1.25, 2.25}) {
		t.Errorf("Max() = %v, want {1.25 2.25}", got)
	}
}

func TestVec2Arithmetic(t *testing.T) {
	v := Vec2{1, 2}.Add(Vec2{3, 4}).Sub(Vec2{1, 1}).Scale(0.5)
	if v != (Vec2{1.5, 2.5}) {
		t.Errorf("arithmetic chain = %v, want {1.5 2.5}", v)
	}
	if !(Vec2{}).IsZero() {
		t.Error("zero vector should report IsZero")
	}
	if (Vec2{0, 1}).IsZero() {
		t.Error("non-zero vector should not report IsZero")
	}
}
