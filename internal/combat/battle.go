package combat

// Outcome is the state of a battle.
type Outcome int

const (
	// OutcomePending - both sides are still standing
	OutcomePending Outcome = iota
	// OutcomeVictory - the enemy was defeated
	OutcomeVictory
	// OutcomeDefeat - the hero was defeated
	OutcomeDefeat
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomePending:
		return "pending"
	case OutcomeVictory:
		return "victory"
	case OutcomeDefeat:
		return "defeat"
	default:
		return "unknown"
	}
}

// Battle is a one-on-one fight between the hero and an enemy.
type Battle struct {
	Hero        Combatant
	Enemy       Combatant
	Rounds      int
	LastMessage string

	resolver *Resolver
}

// NewBattle creates a battle between hero and enemy.
func NewBattle(hero, enemy Combatant) *Battle {
	return &Battle{
		Hero:        hero,
		Enemy:       enemy,
		LastMessage: enemy.GetName() + " appears!",
		resolver:    NewResolver(),
	}
}

// Round plays one exchange: the hero strikes, then a surviving enemy strikes
// back. Rounds after the battle is decided do nothing.
func (b *Battle) Round() Outcome {
	if outcome := b.Outcome(); outcome != OutcomePending {
		return outcome
	}

	b.Rounds++
	hit := b.resolver.Attack(b.Hero, b.Enemy)
	b.LastMessage = hit.Message
	if hit.Killed {
		b.LastMessage += " " + b.Enemy.GetName() + " is defeated!"
		return OutcomeVictory
	}

	counter := b.resolver.Attack(b.Enemy, b.Hero)
	b.LastMessage += " " + counter.Message
	return b.Outcome()
}

// Outcome reports whether the battle is decided.
func (b *Battle) Outcome() Outcome {
	switch {
	case !b.Hero.IsAlive():
		return OutcomeDefeat
	case !b.Enemy.IsAlive():
		return OutcomeVictory
	default:
		return OutcomePending
	}
}
