package entity

// CombatStats holds the stats used when the actor or an opponent fights.
type CombatStats struct {
	Health    int
	MaxHealth int
	Attack    int
	Defence   int
}

// IsAlive returns true if there is health remaining.
func (s *CombatStats) IsAlive() bool { return s.Health > 0 }

// TakeDamage reduces health and returns actual damage taken.
func (s *CombatStats) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := amount
	if actual > s.Health {
		actual = s.Health
	}
	s.Health -= actual
	return actual
}

