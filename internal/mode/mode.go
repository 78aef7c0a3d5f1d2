// Package mode provides the top-level mode state machine: exactly one of
// Menu, Overworld and Combat is active, and Combat runs on top of a paused
// Overworld.
package mode

import (
	"errors"
	"fmt"
)

// Mode is a top-level application mode.
type Mode int

const (
	// Menu is the start menu. It is the initial mode.
	Menu Mode = iota
	// Overworld is free movement across the map.
	Overworld
	// Combat is an encounter entered from the overworld.
	Combat
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case Menu:
		return "menu"
	case Overworld:
		return "overworld"
	case Combat:
		return "combat"
	default:
		return "unknown"
	}
}

// Asset is an opaque handle to a presentation asset, such as the sprite
// sheet a transition effect draws with.
type Asset string

// Request asks for a transition to Target. Asset is passed through to the
// transition effect untouched.
type Request struct {
	Target Mode
	Asset  Asset
}

// ErrInvalidTransition is returned for transitions the machine does not
// allow from the active mode.
var ErrInvalidTransition = errors.New("mode: invalid transition")

// Hooks are the lifecycle callbacks of one mode. Nil hooks are skipped.
type Hooks struct {
	OnEnter  func()
	OnExit   func()
	OnPause  func()
	OnResume func()
}

// Machine is a stack of modes. The top of the stack is active; anything
// below it is paused.
type Machine struct {
	stack []Mode
	hooks map[Mode]Hooks
}

// NewMachine creates a machine in the Menu mode. The Menu enter hook is
// not run; register hooks before the first Apply.
func NewMachine() *Machine {
	return &Machine{
		stack: []Mode{Menu},
		hooks: make(map[Mode]Hooks),
	}
}

// Handle registers the hooks for a mode, replacing earlier ones.
func (m *Machine) Handle(mode Mode, h Hooks) {
	m.hooks[mode] = h
}

// Active returns the running mode.
func (m *Machine) Active() Mode {
	return m.stack[len(m.stack)-1]
}

// Paused returns true if the mode is suspended below the active one.
func (m *Machine) Paused(mode Mode) bool {
	for _, s := range m.stack[:len(m.stack)-1] {
		if s == mode {
			return true
		}
	}
	return false
}

// Depth returns the number of modes on the stack.
func (m *Machine) Depth() int {
	return len(m.stack)
}

// Apply performs the transition to req.Target. Hooks run in transition
// order: the outgoing mode is exited or paused before the incoming mode is
// entered or resumed.
func (m *Machine) Apply(req Request) error {
	from, to := m.Active(), req.Target

	switch {
	case from == Menu && to == Overworld:
		m.replace(to)
	case from == Overworld && to == Combat:
		m.push(to)
	case from == Combat && to == Overworld:
		m.pop()
	case from == Overworld && to == Menu:
		m.replace(to)
	case from == Combat && to == Menu:
		for len(m.stack) > 1 {
			m.exit(m.Active())
			m.stack = m.stack[:len(m.stack)-1]
		}
		m.replace(to)
	default:
		return fmt.Errorf("%w: %s to %s", ErrInvalidTransition, from, to)
	}
	return nil
}

func (m *Machine) replace(to Mode) {
	m.exit(m.Active())
	m.stack[len(m.stack)-1] = to
	m.run(m.hooks[to].OnEnter)
}

func (m *Machine) push(to Mode) {
	m.run(m.hooks[m.Active()].OnPause)
	m.stack = append(m.stack, to)
	m.run(m.hooks[to].OnEnter)
}

func (m *Machine) pop() {
	m.exit(m.Active())
	m.stack = m.stack[:len(m.stack)-1]
	m.run(m.hooks[m.Active()].OnResume)
}

func (m *Machine) exit(mode Mode) {
	m.run(m.hooks[mode].OnExit)
}

func (m *Machine) run(fn func()) {
	if fn != nil {
		fn()
	}
}
