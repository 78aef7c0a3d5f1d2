// Package movement moves the overworld actor from directional input and
// resolves the move against static obstacles.
package movement

import (
	"math"
	"time"

	"github.com/samdwyer/overworld/internal/entity"
	"github.com/samdwyer/overworld/internal/geom"
	"github.com/samdwyer/overworld/internal/input"
	"github.com/samdwyer/overworld/internal/world"
)

// Result describes what one Update did.
type Result struct {
	Velocity  geom.Vec2 // Requested displacement this tick
	Committed geom.Vec2 // Displacement that was applied
	Moved     bool      // At least one axis was committed
}

// Controller resolves actor movement one axis at a time, vertical first,
// so a diagonal move into a wall slides along it.
type Controller struct{}

// NewController creates a movement controller.
func NewController() *Controller {
	return &Controller{}
}

// Direction returns the summed unit direction of the pressed movement keys.
// Opposing keys cancel out.
func Direction(in input.State) geom.Vec2 {
	var dir geom.Vec2
	if in.Pressed(input.KeyUp) {
		dir.Y++
	}
	if in.Pressed(input.KeyDown) {
		dir.Y--
	}
	if in.Pressed(input.KeyLeft) {
		dir.X--
	}
	if in.Pressed(input.KeyRight) {
		dir.X++
	}
	return dir
}

// Update moves the actor for one tick of length dt.
func (c *Controller) Update(actor *entity.Actor, in input.State, m *world.Map, dt time.Duration) Result {
	actor.JustMoved = false
	if !actor.Active || dt <= 0 {
		return Result{}
	}

	step := actor.Speed * m.TileSize * dt.Seconds()
	velocity := Direction(in).Scale(step)
	if velocity.IsZero() {
		return Result{}
	}

	result := Result{Velocity: velocity}

	if velocity.Y != 0 {
		target := actor.Pos.Add(geom.Vec2{Y: velocity.Y})
		if !m.Blocked(actor.BoxAt(target)) {
			actor.Pos = target
			result.Committed.Y = velocity.Y
		}
	}

	if velocity.X != 0 {
		target := actor.Pos.Add(geom.Vec2{X: velocity.X})
		if !m.Blocked(actor.BoxAt(target)) {
			actor.Pos = target
			result.Committed.X = velocity.X
		}
	}

	result.Moved = !result.Committed.IsZero()
	actor.JustMoved = result.Moved
	if result.Moved {
		actor.Facing = facingFor(actor.Facing, result.Committed)
	}
	return result
}

// facingFor picks the direction of the larger committed axis. Horizontal
// wins ties.
func facingFor(current entity.Facing, committed geom.Vec2) entity.Facing {
	ax, ay := math.Abs(committed.X), math.Abs(committed.Y)
	switch {
	case ax >= ay && committed.X > 0:
		return entity.FacingRight
	case ax >= ay && committed.X < 0:
		return entity.FacingLeft
	case committed.Y > 0:
		return entity.FacingUp
	case committed.Y < 0:
		return entity.FacingDown
	default:
		return current
	}
}
