// Package camera keeps the view centered on the actor.
package camera

import (
	"github.com/samdwyer/overworld/internal/entity"
	"github.com/samdwyer/overworld/internal/geom"
)

// Camera is the world position the view is centered on.
type Camera struct {
	Pos geom.Vec2
}

// Tracker locks a camera to the actor.
type Tracker struct{}

// NewTracker creates a camera tracker.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Update copies the actor position into the camera. There is no smoothing
// or dead zone.
func (t *Tracker) Update(cam *Camera, actor *entity.Actor) {
	cam.Pos = actor.Pos
}

// WorldToCell converts a world position to a terminal cell offset from the
// view center, given the world size of one cell. Y grows upward in the
// world and downward on screen.
func (c *Camera) WorldToCell(p geom.Vec2, tileSize float64) (int, int) {
	d := p.Sub(c.Pos).Scale(1 / tileSize)
	return round(d.X), round(-d.Y)
}

func round(v float64) int {
	if v < 0 {
		return -int(-v + 0.5)
	}
	return int(v + 0.5)
}
