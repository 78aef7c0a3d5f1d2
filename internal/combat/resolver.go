// Package combat provides the turn-based fight that follows an encounter.
package combat

import "fmt"

// Combatant is the interface for any entity that can participate in combat.
// Both the overworld actor and enemies implement this interface.
type Combatant interface {
	// Identity
	GetName() string
	IsAlive() bool

	// Stats
	GetHP() int
	GetMaxHP() int
	GetAttack() int
	GetDefence() int

	// Mutations
	TakeDamage(amount int) int // Returns actual damage taken
}

// Result contains the outcome of one attack.
type Result struct {
	Damage  int    // Damage actually dealt
	Killed  bool   // True if the target died from this attack
	Message string // Human-readable description
}

// Resolver calculates and applies attacks.
type Resolver struct{}

// NewResolver creates a new resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Attack applies one attack from user to target.
// Damage is user.Attack - target.Defence, at least 1.
func (r *Resolver) Attack(user, target Combatant) Result {
	if !user.IsAlive() || !target.IsAlive() {
		return Result{Message: user.GetName() + " cannot attack"}
	}

	damage := r.CalculateDamage(user, target)
	actual := target.TakeDamage(damage)

	return Result{
		Damage:  actual,
		Killed:  !target.IsAlive(),
		Message: fmt.Sprintf("%s hits %s for %d damage!", user.GetName(), target.GetName(), actual),
	}
}

// CalculateDamage calculates damage without applying it (for AI/preview).
func (r *Resolver) CalculateDamage(user, target Combatant) int {
	damage := user.GetAttack() - target.GetDefence()
	if damage < 1 {
		damage = 1
	}
	return damage
}
