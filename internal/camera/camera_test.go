package camera

import (
	"testing"

	"github.com/samdwyer/overworld/internal/entity"
	"github.com/samdwyer/overworld/internal/geom"
)

func TestTrackerFollowsActor(t *testing.T) {
	cam := &Camera{Pos: geom.Vec2{X: 9, Y: 9}}
	a := &entity.Actor{Pos: geom.Vec2{X: 0.2, Y: -0.2}}
	tr := NewTracker()

	tr.Update(cam, a)
	if cam.Pos != a.Pos {
		t.Errorf("Pos = %v, want %v", cam.Pos, a.Pos)
	}

	a.Pos = geom.Vec2{X: 0.25, Y: -0.1}
	tr.Update(cam, a)
	if cam.Pos != a.Pos {
		t.Errorf("Pos = %v, want %v after move", cam.Pos, a.Pos)
	}
}

func TestWorldToCell(t *testing.T) {
	cam := &Camera{Pos: geom.Vec2{X: 0.2, Y: -0.2}}

	tests := []struct {
		p      geom.Vec2
		dx, dy int
	}{
		{geom.Vec2{X: 0.2, Y: -0.2}, 0, 0},
		{geom.Vec2{X: 0.3, Y: -0.2}, 1, 0},
		{geom.Vec2{X: 0.2, Y: -0.1}, 0, -1},
		{geom.Vec2{X: 0, Y: -0.4}, -2, 2},
		{geom.Vec2{X: 0.24, Y: -0.2}, 0, 0},
		{geom.Vec2{X: 0.26, Y: -0.2}, 1, 0},
	}

	for _, tt := range tests {
		dx, dy := cam.WorldToCell(tt.p, 0.1)
		if dx != tt.dx || dy != tt.dy {
			t.Errorf("WorldToCell(%v) = (%d, %d), want (%d, %d)", tt.p, dx, dy, tt.dx, tt.dy)
		}
	}
}
