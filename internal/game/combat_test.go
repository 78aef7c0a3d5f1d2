package game

import (
	"context"
	"testing"

	"github.com/samdwyer/overworld/internal/combat"
	"github.com/samdwyer/overworld/internal/input"
	"github.com/samdwyer/overworld/internal/mode"
)

// startCombat takes a fresh session from the menu into combat.
func startCombat(t *testing.T, s *Session) {
	t.Helper()
	startOverworld(t, s)

	if !s.Request(mode.Request{Target: mode.Combat}) {
		t.Fatal("Request(combat) was rejected")
	}
	press(s)
	if s.Mode() != mode.Combat {
		t.Fatalf("Mode() = %v, want combat", s.Mode())
	}
}

func TestCombatVictoryAwardsExp(t *testing.T) {
	s := newTestSession(t, 0)
	startCombat(t, s)
	a := s.Actor()
	b, enemy := s.Battle()
	reward := enemy.ExpReward()
	enemy.Stats.Health = 1

	press(s, input.KeyConfirm)

	if b.Outcome() != combat.OutcomeVictory {
		t.Fatalf("Outcome() = %v, want victory", b.Outcome())
	}
	if a.Exp != reward {
		t.Errorf("Exp = %d, want %d", a.Exp, reward)
	}

	press(s)
	if s.Mode() != mode.Overworld {
		t.Fatalf("Mode() = %v after victory, want overworld", s.Mode())
	}
	if !a.Active || !s.Registry().Visible(a.ID) {
		t.Error("actor should be active and visible again")
	}
	for _, c := range a.Children {
		if !s.Registry().Visible(c.ID) {
			t.Errorf("child %s should be visible again", c.Name)
		}
	}
	if b, e := s.Battle(); b != nil || e != nil {
		t.Error("leaving combat should discard the battle")
	}
}

func TestCombatConfirmIsEdgeTriggered(t *testing.T) {
	s := newTestSession(t, 0)
	startCombat(t, s)
	b, enemy := s.Battle()
	enemy.Stats.Health = 1000
	enemy.Stats.MaxHealth = 1000
	enemy.Stats.Attack = 0

	press(s, input.KeyConfirm)
	press(s, input.KeyConfirm)
	press(s, input.KeyConfirm)
	if b.Rounds != 1 {
		t.Errorf("Rounds = %d, holding confirm should play one round", b.Rounds)
	}

	press(s)
	press(s, input.KeyConfirm)
	if b.Rounds != 2 {
		t.Errorf("Rounds = %d, want 2 after releasing and pressing again", b.Rounds)
	}
}

func TestCombatIgnoresMovement(t *testing.T) {
	s := newTestSession(t, 0)
	startCombat(t, s)
	a := s.Actor()
	pos := a.Pos

	for i := 0; i < 10; i++ {
		press(s, input.KeyRight, input.KeyUp)
	}
	if a.Pos != pos {
		t.Errorf("actor moved to %v during combat", a.Pos)
	}
}

func TestCombatDefeatReturnsToMenu(t *testing.T) {
	s := newTestSession(t, 0)
	startCombat(t, s)
	a := s.Actor()
	b, enemy := s.Battle()
	a.Stats.Health = 1
	enemy.Stats.Health = 1000
	enemy.Stats.MaxHealth = 1000
	enemy.Stats.Attack = 50

	press(s, input.KeyConfirm)
	if b.Outcome() != combat.OutcomeDefeat {
		t.Fatalf("Outcome() = %v, want defeat", b.Outcome())
	}

	press(s)
	if s.Mode() != mode.Menu {
		t.Fatalf("Mode() = %v after defeat, want menu", s.Mode())
	}
	if s.Actor() != nil {
		t.Error("the actor should be despawned back in the menu")
	}
	if s.Paused(mode.Overworld) {
		t.Error("overworld should not stay paused")
	}

	// A new run starts with a fresh actor.
	startOverworld(t, s)
	if fresh := s.Actor(); fresh == a || fresh.Stats.Health != 10 {
		t.Error("restarting should spawn a new actor with starting stats")
	}
}

func TestResolveCombatLevelsUp(t *testing.T) {
	s := newTestSession(t, 0)
	startCombat(t, s)
	a := s.Actor()
	ctx := context.Background()

	if s.ResolveCombat(ctx, 30) {
		t.Error("ResolveCombat(30) should not level up")
	}
	press(s)
	if s.Mode() != mode.Overworld {
		t.Fatalf("Mode() = %v, want overworld", s.Mode())
	}

	if !s.Request(mode.Request{Target: mode.Combat}) {
		t.Fatal("Request(combat) was rejected")
	}
	press(s)

	if !s.ResolveCombat(ctx, 25) {
		t.Error("ResolveCombat(25) after 30 should level up")
	}
	if a.Exp != 5 {
		t.Errorf("Exp = %d, want 5", a.Exp)
	}
	if a.Stats.MaxHealth != 12 || a.Stats.Attack != 3 || a.Stats.Defence != 2 {
		t.Errorf("Stats = %+v, want max health 12, attack 3, defence 2", a.Stats)
	}
}
