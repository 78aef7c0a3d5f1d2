package entity

import (
	"testing"

	"github.com/samdwyer/overworld/internal/combat"
	"github.com/samdwyer/overworld/internal/gamedata"
	"github.com/samdwyer/overworld/internal/geom"
)

func testActorDef() *gamedata.ActorDef {
	return &gamedata.ActorDef{
		Name:           "Player",
		Glyph:          "@",
		Speed:          3,
		CollisionScale: 0.9,
		Stats:          gamedata.StatsDef{Health: 10, MaxHealth: 10, Attack: 2, Defence: 1},
		Children:       []string{"sprite", "shadow"},
	}
}

func TestNewActor(t *testing.T) {
	a := NewActor(testActorDef(), geom.Vec2{X: 0.2, Y: -0.2}, 0.1)

	if !a.Active {
		t.Error("NewActor() should be active")
	}
	if a.JustMoved {
		t.Error("NewActor() should not have just moved")
	}
	if a.Exp != 0 {
		t.Errorf("NewActor().Exp = %d, want 0", a.Exp)
	}
	if a.Facing != FacingDown {
		t.Errorf("NewActor().Facing = %v, want down", a.Facing)
	}
	tileSize, scale := 0.1, 0.9
	if want := tileSize * scale / 2; a.Half.X != want || a.Half.Y != want {
		t.Errorf("NewActor().Half = %v, want %v", a.Half, want)
	}
	if len(a.Children) != 2 || a.Children[0].Name != "sprite" || a.Children[1].Name != "shadow" {
		t.Errorf("NewActor().Children = %v, want sprite and shadow", a.Children)
	}
	if a.Children[0].ID == a.Children[1].ID || a.Children[0].ID == a.ID {
		t.Error("actor and children should have distinct IDs")
	}
	if a.Glyph != '@' {
		t.Errorf("NewActor().Glyph = %c, want @", a.Glyph)
	}
}

func TestGiveExp(t *testing.T) {
	a := NewActor(testActorDef(), geom.Vec2{}, 0.1)
	before := a.Stats

	if a.GiveExp(30, &a.Stats) {
		t.Error("GiveExp(30) should not level up")
	}
	if !a.GiveExp(25, &a.Stats) {
		t.Error("GiveExp(25) after 30 should level up")
	}

	if a.Exp != 5 {
		t.Errorf("Exp = %d, want 5", a.Exp)
	}
	want := CombatStats{
		Health:    before.Health + 2,
		MaxHealth: before.MaxHealth + 2,
		Attack:    before.Attack + 1,
		Defence:   before.Defence + 1,
	}
	if a.Stats != want {
		t.Errorf("Stats = %+v, want %+v", a.Stats, want)
	}
}

func TestGiveExpLevelsOncePerAward(t *testing.T) {
	a := NewActor(testActorDef(), geom.Vec2{}, 0.1)

	if !a.GiveExp(120, &a.Stats) {
		t.Fatal("GiveExp(120) should level up")
	}
	if a.Exp != 70 {
		t.Errorf("Exp = %d, want 70", a.Exp)
	}
	if a.Stats.Attack != 3 {
		t.Errorf("Attack = %d, want a single increment to 3", a.Stats.Attack)
	}

	// The banked surplus levels up on the next award.
	if !a.GiveExp(0, &a.Stats) {
		t.Error("GiveExp(0) with 70 banked should level up")
	}
	if a.Exp != 20 {
		t.Errorf("Exp = %d, want 20", a.Exp)
	}
}

func TestGiveExpNeverDecreasesStats(t *testing.T) {
	a := NewActor(testActorDef(), geom.Vec2{}, 0.1)
	prev := a.Stats

	for _, amount := range []int{10, 45, -30, 0, 99, 7, 50} {
		a.GiveExp(amount, &a.Stats)
		if a.Stats.MaxHealth < prev.MaxHealth || a.Stats.Attack < prev.Attack || a.Stats.Defence < prev.Defence {
			t.Fatalf("GiveExp(%d) decreased stats: %+v -> %+v", amount, prev, a.Stats)
		}
		if a.Exp < 0 {
			t.Fatalf("GiveExp(%d) left negative experience %d", amount, a.Exp)
		}
		prev = a.Stats
	}
}

func TestActorAsCombatant(t *testing.T) {
	var c combat.Combatant = NewActor(testActorDef(), geom.Vec2{}, 0.1)

	if c.GetName() != "Player" || !c.IsAlive() {
		t.Errorf("actor = %q alive=%v, want Player alive", c.GetName(), c.IsAlive())
	}
	if c.GetHP() != 10 || c.GetMaxHP() != 10 || c.GetAttack() != 2 || c.GetDefence() != 1 {
		t.Errorf("actor stats = %d/%d/%d/%d, want 10/10/2/1", c.GetHP(), c.GetMaxHP(), c.GetAttack(), c.GetDefence())
	}
	if got := c.TakeDamage(15); got != 10 {
		t.Errorf("TakeDamage(15) = %d, want 10", got)
	}
	if c.IsAlive() {
		t.Error("actor at zero health should not be alive")
	}
}

func TestCombatStatsTakeDamage(t *testing.T) {
	s := CombatStats{Health: 10, MaxHealth: 10}

	if got := s.TakeDamage(4); got != 4 {
		t.Errorf("TakeDamage(4) = %d, want 4", got)
	}
	if got := s.TakeDamage(100); got != 6 {
		t.Errorf("TakeDamage(100) = %d, want 6", got)
	}
	if s.IsAlive() {
		t.Error("stats at zero health should not be alive")
	}
	if got := s.TakeDamage(-3); got != 0 {
		t.Errorf("TakeDamage(-3) = %d, want 0", got)
	}
}

func TestRegistrySingleActor(t *testing.T) {
	r := NewRegistry()
	if r.HasActor() {
		t.Fatal("new registry should be empty")
	}

	first := NewActor(testActorDef(), geom.Vec2{}, 0.1)
	if err := r.Spawn(first); err != nil {
		t.Fatalf("Spawn() error = %v", err)
	}
	if err := r.Spawn(NewActor(testActorDef(), geom.Vec2{}, 0.1)); err != ErrActorExists {
		t.Errorf("second Spawn() error = %v, want ErrActorExists", err)
	}
	if r.Actor() != first {
		t.Error("Actor() should return the first actor")
	}

	r.Despawn()
	if r.HasActor() {
		t.Error("Despawn() should remove the actor")
	}
	if r.Visible(first.ID) {
		t.Error("Despawn() should forget visibility")
	}
}

func TestRegistryActorPanicsWhenEmpty(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Actor() on an empty registry should panic")
		}
	}()
	NewRegistry().Actor()
}

func TestRegistryVisibilityWalksChildren(t *testing.T) {
	r := NewRegistry()
	a := NewActor(testActorDef(), geom.Vec2{}, 0.1)
	if err := r.Spawn(a); err != nil {
		t.Fatalf("Spawn() error = %v", err)
	}

	ids := append([]Child{{ID: a.ID, Name: "actor"}}, a.Children...)
	for _, c := range ids {
		if !r.Visible(c.ID) {
			t.Errorf("%s should be visible after Spawn()", c.Name)
		}
	}

	r.SetActorVisible(false)
	for _, c := range ids {
		if r.Visible(c.ID) {
			t.Errorf("%s should be hidden", c.Name)
		}
	}

	r.SetActorVisible(true)
	for _, c := range ids {
		if !r.Visible(c.ID) {
			t.Errorf("%s should be shown again", c.Name)
		}
	}
}

func TestNewEnemyFromDef(t *testing.T) {
	def := &gamedata.EnemyDef{
		ID:      "bat",
		Name:    "Bat",
		Glyph:   "b",
		Color:   "#A070FF",
		Health:  3,
		Attack:  2,
		Defence: 0,
		Exp:     10,
	}
	e := NewEnemyFromDef(def)

	if e.GetName() != "Bat" || e.Symbol != 'b' {
		t.Errorf("enemy = %q %c, want Bat b", e.GetName(), e.Symbol)
	}
	if e.GetHP() != 3 || e.GetMaxHP() != 3 || e.GetAttack() != 2 || e.GetDefence() != 0 {
		t.Errorf("enemy stats = %+v, want 3/3/2/0", e.Stats)
	}
	if e.ExpReward() != 10 {
		t.Errorf("ExpReward() = %d, want 10", e.ExpReward())
	}
	if e.Color() == 0 {
		t.Error("Color() returned zero color")
	}
}

func TestFacingString(t *testing.T) {
	tests := []struct {
		facing   Facing
		expected string
	}{
		{FacingDown, "down"},
		{FacingUp, "up"},
		{FacingLeft, "left"},
		{FacingRight, "right"},
		{Facing(9), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.facing.String(); got != tt.expected {
			t.Errorf("Facing(%d).String() = %q, want %q", tt.facing, got, tt.expected)
		}
	}
}
