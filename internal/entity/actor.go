// Package entity provides the overworld actor, its combat stats and the
// opponents it meets in combat.
package entity

import (
	"github.com/google/uuid"

	"github.com/samdwyer/overworld/internal/combat"
	"github.com/samdwyer/overworld/internal/gamedata"
	"github.com/samdwyer/overworld/internal/geom"
)

// LevelUpCost is the experience consumed by one level-up.
const LevelUpCost = 50

// Facing is the direction the actor is looking.
type Facing int

const (
	FacingDown Facing = iota
	FacingUp
	FacingLeft
	FacingRight
)

// String returns a human-readable facing name.
func (f Facing) String() string {
	switch f {
	case FacingDown:
		return "down"
	case FacingUp:
		return "up"
	case FacingLeft:
		return "left"
	case FacingRight:
		return "right"
	default:
		return "unknown"
	}
}

// Child is a presentation entity attached to the actor (sprite, shadow, ...).
// Children are hidden and shown together with their actor.
type Child struct {
	ID   uuid.UUID
	Name string
}

// Actor is the player-controlled entity moving across the overworld.
type Actor struct {
	ID        uuid.UUID
	Name      string
	Glyph     rune
	Pos       geom.Vec2 // World position of the actor's center
	Speed     float64   // Tiles per second
	Half      geom.Vec2 // Collision half extents
	Facing    Facing
	Active    bool // False suspends input processing
	JustMoved bool // True only for the tick a move was committed
	Exp       int
	Stats     CombatStats
	Children  []Child
}

// NewActor creates an active actor at pos from a data-driven definition.
// The collision box is the definition's fraction of one tile.
func NewActor(def *gamedata.ActorDef, pos geom.Vec2, tileSize float64) *Actor {
	a := &Actor{
		ID:     uuid.New(),
		Name:   def.Name,
		Glyph:  def.GlyphRune(),
		Pos:    pos,
		Speed:  def.Speed,
		Half:   geom.Splat(tileSize * def.CollisionScale / 2),
		Facing: FacingDown,
		Active: true,
		Stats: CombatStats{
			Health:    def.Stats.Health,
			MaxHealth: def.Stats.MaxHealth,
			Attack:    def.Stats.Attack,
			Defence:   def.Stats.Defence,
		},
	}
	for _, name := range def.Children {
		a.Children = append(a.Children, Child{ID: uuid.New(), Name: name})
	}
	return a
}

// Box returns the actor's collision box at its current position.
func (a *Actor) Box() geom.Box {
	return a.BoxAt(a.Pos)
}

// BoxAt returns the actor's collision box if it stood at pos.
func (a *Actor) BoxAt(pos geom.Vec2) geom.Box {
	return geom.Box{Center: pos, Half: a.Half}
}

// GiveExp adds experience and converts one level-up cost of it into
// permanent stat increases. A single award levels up at most once; surplus
// above the cost stays banked for the next award. Returns true if the actor
// leveled up.
func (a *Actor) GiveExp(amount int, stats *CombatStats) bool {
	if amount > 0 {
		a.Exp += amount
	}
	if a.Exp < LevelUpCost {
		return false
	}
	stats.Health += 2
	stats.MaxHealth += 2
	stats.Attack++
	stats.Defence++
	a.Exp -= LevelUpCost
	return true
}

// =============================================================================
// Combatant interface implementation
// =============================================================================

// GetName returns the actor's name.
func (a *Actor) GetName() string { return a.Name }

// IsAlive returns true if the actor has health remaining.
func (a *Actor) IsAlive() bool { return a.Stats.IsAlive() }

// GetHP returns current health.
func (a *Actor) GetHP() int { return a.Stats.Health }

// GetMaxHP returns maximum health.
func (a *Actor) GetMaxHP() int { return a.Stats.MaxHealth }

// GetAttack returns attack stat.
func (a *Actor) GetAttack() int { return a.Stats.Attack }

// GetDefence returns defence stat.
func (a *Actor) GetDefence() int { return a.Stats.Defence }

// TakeDamage reduces health and returns actual damage taken.
func (a *Actor) TakeDamage(amount int) int { return a.Stats.TakeDamage(amount) }

// Ensure Actor implements combat.Combatant
var _ combat.Combatant = (*Actor)(nil)
