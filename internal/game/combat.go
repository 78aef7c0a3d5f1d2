package game

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/overworld/internal/combat"
	"github.com/samdwyer/overworld/internal/entity"
	"github.com/samdwyer/overworld/internal/mode"
)

// =============================================================================
// Combat Loop Methods on Session
// =============================================================================

// enterCombat starts a battle against a randomly chosen enemy.
func (s *Session) enterCombat() {
	_, span := s.tracer.Start(s.tickCtx, "combat.start")
	defer span.End()

	def := s.enemies.SpawnRandom(s.rng)
	if def == nil {
		span.SetAttributes(attribute.String("warning", "no enemies available, returning to overworld"))
		// The fade is still running, so skip it and queue the return directly.
		s.enqueue(mode.Request{Target: mode.Overworld})
		return
	}

	s.enemy = entity.NewEnemyFromDef(def)
	s.battle = combat.NewBattle(s.registry.Actor(), s.enemy)

	span.SetAttributes(
		attribute.String("enemy", def.ID),
		attribute.Int("enemy_hp", s.enemy.GetHP()),
		attribute.Int("actor_hp", s.registry.Actor().GetHP()),
	)
}

// exitCombat discards the battle.
func (s *Session) exitCombat() {
	s.battle = nil
	s.enemy = nil
}

// playRound plays one exchange of the battle and ends combat once it is
// decided. Decided battles ignore further input.
func (s *Session) playRound(ctx context.Context) {
	if s.battle == nil || s.battle.Outcome() != combat.OutcomePending {
		return
	}

	ctx, span := s.tracer.Start(ctx, "combat.round")
	outcome := s.battle.Round()
	span.SetAttributes(
		attribute.Int("round", s.battle.Rounds),
		attribute.Int("actor_hp", s.battle.Hero.GetHP()),
		attribute.Int("enemy_hp", s.battle.Enemy.GetHP()),
		attribute.String("outcome", outcome.String()),
	)
	span.End()

	if outcome != combat.OutcomePending {
		s.endCombat(ctx, outcome)
	}
}

// endCombat hands a victory to the progression ledger, or sends a defeated
// actor back to the menu.
func (s *Session) endCombat(ctx context.Context, outcome combat.Outcome) {
	_, span := s.tracer.Start(ctx, "combat.end")
	span.SetAttributes(
		attribute.String("outcome", outcome.String()),
		attribute.Int("rounds", s.battle.Rounds),
	)
	span.End()

	switch outcome {
	case combat.OutcomeVictory:
		s.ResolveCombat(ctx, s.enemy.ExpReward())
	case combat.OutcomeDefeat:
		s.Request(mode.Request{Target: mode.Menu, Asset: s.cfg.FadeAsset})
	}
}

// ResolveCombat awards experience to the actor and returns to the
// overworld. It returns true if the actor leveled up.
func (s *Session) ResolveCombat(ctx context.Context, exp int) bool {
	actor := s.registry.Actor()

	_, span := s.tracer.Start(ctx, "progression.give_exp")
	leveled := actor.GiveExp(exp, &actor.Stats)
	span.SetAttributes(
		attribute.Int("amount", exp),
		attribute.Int("exp", actor.Exp),
		attribute.Bool("leveled", leveled),
		attribute.Int("max_health", actor.Stats.MaxHealth),
		attribute.Int("attack", actor.Stats.Attack),
		attribute.Int("defence", actor.Stats.Defence),
	)
	span.End()

	s.Request(mode.Request{Target: mode.Overworld, Asset: s.cfg.FadeAsset})
	return leveled
}
