package entity

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/overworld/internal/combat"
	"github.com/samdwyer/overworld/internal/gamedata"
)

// Enemy is an opponent the actor fights after an encounter triggers.
type Enemy struct {
	Def    *gamedata.EnemyDef // Reference to the enemy definition
	Name   string
	Symbol rune
	Stats  CombatStats
}

// NewEnemyFromDef creates a new enemy from a data-driven definition.
func NewEnemyFromDef(def *gamedata.EnemyDef) *Enemy {
	return &Enemy{
		Def:    def,
		Name:   def.Name,
		Symbol: def.GlyphRune(),
		Stats: CombatStats{
			Health:    def.Health,
			MaxHealth: def.Health,
			Attack:    def.Attack,
			Defence:   def.Defence,
		},
	}
}

// Color returns the tcell color for this enemy.
func (e *Enemy) Color() tcell.Color {
	if e.Def != nil {
		return e.Def.TCellColor()
	}
	return tcell.ColorPurple
}

// ExpReward returns the experience awarded for defeating the enemy.
func (e *Enemy) ExpReward() int {
	if e.Def != nil {
		return e.Def.Exp
	}
	return 0
}

// =============================================================================
// Combatant interface implementation
// =============================================================================

// GetName returns the enemy's name.
func (e *Enemy) GetName() string { return e.Name }

// IsAlive returns true if the enemy has health remaining.
func (e *Enemy) IsAlive() bool { return e.Stats.IsAlive() }

// GetHP returns current health.
func (e *Enemy) GetHP() int { return e.Stats.Health }

// GetMaxHP returns maximum health.
func (e *Enemy) GetMaxHP() int { return e.Stats.MaxHealth }

// GetAttack returns attack stat.
func (e *Enemy) GetAttack() int { return e.Stats.Attack }

// GetDefence returns defence stat.
func (e *Enemy) GetDefence() int { return e.Stats.Defence }

// TakeDamage reduces health and returns actual damage taken.
func (e *Enemy) TakeDamage(amount int) int { return e.Stats.TakeDamage(amount) }

// Ensure Enemy implements combat.Combatant
var _ combat.Combatant = (*Enemy)(nil)
