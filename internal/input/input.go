// Package input provides the polled directional intent the overworld systems read.
package input

import "github.com/zyedidia/generic/mapset"

// Key is a logical input key.
type Key int

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
	KeyConfirm
	KeyQuit
)

// String returns a human-readable key name.
func (k Key) String() string {
	switch k {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyConfirm:
		return "confirm"
	case KeyQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// State is the set of keys held during one tick.
type State struct {
	keys mapset.Set[Key]
}

// NewState creates a state with the given keys pressed.
func NewState(keys ...Key) State {
	s := State{keys: mapset.New[Key]()}
	for _, k := range keys {
		s.keys.Put(k)
	}
	return s
}

// Pressed returns true if the key is held.
func (s State) Pressed(k Key) bool {
	if s.keys.Size() == 0 {
		return false
	}
	return s.keys.Has(k)
}

// Press marks a key as held.
func (s *State) Press(k Key) {
	if s.keys.Size() == 0 {
		s.keys = mapset.New[Key]()
	}
	s.keys.Put(k)
}

// Release marks a key as no longer held.
func (s State) Release(k Key) {
	if s.keys.Size() == 0 {
		return
	}
	s.keys.Remove(k)
}

// Empty returns true if no key is held.
func (s State) Empty() bool {
	return s.keys.Size() == 0
}

// Source provides the current input state once per tick.
type Source interface {
	Snapshot() State
}
