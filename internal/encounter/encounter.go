// Package encounter escalates time spent moving through encounter zones
// into a request for combat.
package encounter

import (
	"time"

	"github.com/samdwyer/overworld/internal/entity"
	"github.com/samdwyer/overworld/internal/mode"
	"github.com/samdwyer/overworld/internal/world"
)

// Timer accumulates elapsed time towards a threshold.
type Timer struct {
	Elapsed   time.Duration
	Threshold time.Duration
	Repeating bool
}

// NewTimer creates a repeating timer with the given threshold.
func NewTimer(threshold time.Duration) Timer {
	return Timer{Threshold: threshold, Repeating: true}
}

// Advance adds dt and returns true on the call that reaches the threshold.
// A repeating timer then starts over from zero; a one-shot timer stays
// finished and never fires again.
func (t *Timer) Advance(dt time.Duration) bool {
	if dt <= 0 || t.Finished() {
		return false
	}
	t.Elapsed += dt
	if t.Elapsed < t.Threshold {
		return false
	}
	if t.Repeating {
		t.Elapsed = 0
	}
	return true
}

// Finished returns true for a one-shot timer that has fired.
func (t *Timer) Finished() bool {
	return !t.Repeating && t.Elapsed >= t.Threshold
}

// Reset clears the accumulated time.
func (t *Timer) Reset() {
	t.Elapsed = 0
}

// Trigger fires a combat request once the actor has spent the timer's
// threshold moving inside encounter zones. Standing still, or moving
// outside a zone, pauses the count without resetting it.
type Trigger struct {
	Timer Timer
	Asset mode.Asset // Handed to the transition that starts combat
}

// NewTrigger creates a trigger that fires after threshold of movement.
func NewTrigger(threshold time.Duration, asset mode.Asset) *Trigger {
	return &Trigger{Timer: NewTimer(threshold), Asset: asset}
}

// Update advances the trigger for one tick. When it fires, the actor is
// deactivated immediately so no further movement is processed before the
// mode changes, and the returned request targets Combat.
func (tr *Trigger) Update(actor *entity.Actor, m *world.Map, dt time.Duration) (mode.Request, bool) {
	if !actor.Active || !actor.JustMoved {
		return mode.Request{}, false
	}
	if !m.InEncounterZone(actor.Box()) {
		return mode.Request{}, false
	}
	if !tr.Timer.Advance(dt) {
		return mode.Request{}, false
	}

	actor.Active = false
	return mode.Request{Target: mode.Combat, Asset: tr.Asset}, true
}
