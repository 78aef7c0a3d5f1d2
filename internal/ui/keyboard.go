package ui

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/overworld/internal/input"
)

// DefaultHold is how long a key counts as held after its last key event.
// Terminals report no key releases, only the press and its auto-repeats.
const DefaultHold = 150 * time.Millisecond

// Keyboard turns terminal key events into held-key snapshots. It is safe
// for one goroutine to feed events while another takes snapshots.
type Keyboard struct {
	mu       sync.Mutex
	hold     time.Duration
	now      func() time.Time
	lastSeen map[input.Key]time.Time
}

// NewKeyboard creates a keyboard that holds each key for the given window.
func NewKeyboard(hold time.Duration) *Keyboard {
	return &Keyboard{
		hold:     hold,
		now:      time.Now,
		lastSeen: make(map[input.Key]time.Time),
	}
}

// HandleKey records a terminal key event. It returns the logical key and
// false if the event maps to none.
func (k *Keyboard) HandleKey(ev *tcell.EventKey) (input.Key, bool) {
	key, ok := KeyFor(ev.Key(), ev.Rune())
	if ok {
		k.Press(key)
	}
	return key, ok
}

// Press records a press of key now.
func (k *Keyboard) Press(key input.Key) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.lastSeen[key] = k.now()
}

// Snapshot returns the keys pressed within the hold window.
func (k *Keyboard) Snapshot() input.State {
	k.mu.Lock()
	defer k.mu.Unlock()

	now := k.now()
	var state input.State
	for key, seen := range k.lastSeen {
		if now.Sub(seen) < k.hold {
			state.Press(key)
		} else {
			delete(k.lastSeen, key)
		}
	}
	return state
}

// KeyFor maps a terminal key or rune to a logical key. Arrow keys and WASD
// move; Enter and space confirm; Escape, Ctrl-C and q quit.
func KeyFor(key tcell.Key, r rune) (input.Key, bool) {
	switch key {
	case tcell.KeyUp:
		return input.KeyUp, true
	case tcell.KeyDown:
		return input.KeyDown, true
	case tcell.KeyLeft:
		return input.KeyLeft, true
	case tcell.KeyRight:
		return input.KeyRight, true
	case tcell.KeyEnter:
		return input.KeyConfirm, true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return input.KeyQuit, true
	case tcell.KeyRune:
		switch r {
		case 'w', 'W':
			return input.KeyUp, true
		case 's', 'S':
			return input.KeyDown, true
		case 'a', 'A':
			return input.KeyLeft, true
		case 'd', 'D':
			return input.KeyRight, true
		case ' ':
			return input.KeyConfirm, true
		case 'q', 'Q':
			return input.KeyQuit, true
		}
	}
	return 0, false
}

var _ input.Source = (*Keyboard)(nil)
