// Package transition provides the visual effects that sit between a mode
// request and the mode change itself.
package transition

import (
	"time"

	"github.com/samdwyer/overworld/internal/mode"
)

// Effect plays a transition and applies the request when it is safe to
// swap modes.
type Effect interface {
	// Start begins a transition for req. It returns false and ignores req
	// while another transition is running.
	Start(req mode.Request) bool
	// Advance moves the effect forward by dt.
	Advance(dt time.Duration)
	// Busy returns true while a transition is running.
	Busy() bool
}

// ApplyFunc receives a request once its transition reaches the swap point.
type ApplyFunc func(req mode.Request)

// =============================================================================
// Fade
// =============================================================================

// Fade darkens the screen, applies the request while fully dark, then
// fades back in.
type Fade struct {
	duration time.Duration // Total length, half out and half in
	apply    ApplyFunc

	elapsed time.Duration
	req     mode.Request
	busy    bool
	applied bool
}

// NewFade creates a fade of the given total duration.
func NewFade(duration time.Duration, apply ApplyFunc) *Fade {
	return &Fade{duration: duration, apply: apply}
}

// Start begins fading out towards req.
func (f *Fade) Start(req mode.Request) bool {
	if f.busy {
		return false
	}
	f.req = req
	f.elapsed = 0
	f.busy = true
	f.applied = false
	return true
}

// Advance moves the fade forward. The request is applied exactly once, on
// the tick that crosses the midpoint.
func (f *Fade) Advance(dt time.Duration) {
	if !f.busy {
		return
	}
	if dt > 0 {
		f.elapsed += dt
	}
	if !f.applied && f.elapsed >= f.duration/2 {
		f.applied = true
		f.apply(f.req)
	}
	if f.elapsed >= f.duration {
		f.busy = false
	}
}

// Busy returns true while fading.
func (f *Fade) Busy() bool {
	return f.busy
}

// Asset returns the asset handle of the running or last transition.
func (f *Fade) Asset() mode.Asset {
	return f.req.Asset
}

// Alpha returns the overlay opacity in [0, 1]: rising to 1 at the
// midpoint, then falling back to 0.
func (f *Fade) Alpha() float64 {
	if !f.busy || f.duration <= 0 {
		return 0
	}
	half := float64(f.duration) / 2
	e := float64(f.elapsed)
	if e <= half {
		return e / half
	}
	return (float64(f.duration) - e) / half
}

// =============================================================================
// Immediate
// =============================================================================

// Immediate applies a request on the next Advance without any visuals.
type Immediate struct {
	apply   ApplyFunc
	req     mode.Request
	pending bool
}

// NewImmediate creates an effect with no duration.
func NewImmediate(apply ApplyFunc) *Immediate {
	return &Immediate{apply: apply}
}

// Start queues req for the next Advance.
func (i *Immediate) Start(req mode.Request) bool {
	if i.pending {
		return false
	}
	i.req = req
	i.pending = true
	return true
}

// Advance applies the queued request.
func (i *Immediate) Advance(time.Duration) {
	if !i.pending {
		return
	}
	i.pending = false
	i.apply(i.req)
}

// Busy returns true while a request is queued.
func (i *Immediate) Busy() bool {
	return i.pending
}
