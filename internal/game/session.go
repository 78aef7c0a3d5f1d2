package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/overworld/internal/camera"
	"github.com/samdwyer/overworld/internal/combat"
	"github.com/samdwyer/overworld/internal/encounter"
	"github.com/samdwyer/overworld/internal/entity"
	"github.com/samdwyer/overworld/internal/gamedata"
	"github.com/samdwyer/overworld/internal/geom"
	"github.com/samdwyer/overworld/internal/input"
	"github.com/samdwyer/overworld/internal/mode"
	"github.com/samdwyer/overworld/internal/movement"
	"github.com/samdwyer/overworld/internal/telemetry"
	"github.com/samdwyer/overworld/internal/transition"
	"github.com/samdwyer/overworld/internal/world"
)

// Session is one run of the game: the mode machine, the world and every
// system that acts on it, advanced one tick at a time.
type Session struct {
	cfg    Config
	rng    *rand.Rand
	tracer trace.Tracer

	actorDef *gamedata.ActorDef
	enemies  *gamedata.EnemyRegistry
	layout   *world.Layout

	machine  *mode.Machine
	registry *entity.Registry
	camera   camera.Camera

	movement *movement.Controller
	trigger  *encounter.Trigger
	tracker  *camera.Tracker
	fade     transition.Effect

	// Requests that finished their transition and wait for the dispatcher.
	queue []mode.Request

	battle *combat.Battle
	enemy  *entity.Enemy

	confirmHeld bool

	// Context of the tick in progress; mode hooks run inside Tick.
	tickCtx context.Context
}

// NewSession loads the game data named by cfg and creates a session in the
// menu.
func NewSession(ctx context.Context, cfg Config) (*Session, error) {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "session.start")
	defer span.End()

	actorDef, err := gamedata.LoadActor()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "actor data")
		return nil, err
	}
	enemies, err := gamedata.LoadEnemyRegistry()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "enemy data")
		return nil, err
	}
	mapDef, err := gamedata.LoadMap(cfg.MapName)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "map data")
		return nil, err
	}
	layout, err := mapDef.Layout()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "map layout")
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s := &Session{
		cfg:      cfg,
		rng:      rand.New(rand.NewSource(seed)),
		tracer:   tracer,
		actorDef: actorDef,
		enemies:  enemies,
		layout:   layout,
		machine:  mode.NewMachine(),
		registry: entity.NewRegistry(),
		movement: movement.NewController(),
		trigger:  encounter.NewTrigger(seconds(actorDef.EncounterSeconds), cfg.FadeAsset),
		tracker:  camera.NewTracker(),
		tickCtx:  ctx,
	}

	if cfg.FadeDuration > 0 {
		s.fade = transition.NewFade(cfg.FadeDuration, s.enqueue)
	} else {
		s.fade = transition.NewImmediate(s.enqueue)
	}

	s.machine.Handle(mode.Overworld, mode.Hooks{
		OnEnter:  s.enterOverworld,
		OnExit:   s.exitOverworld,
		OnPause:  s.pauseOverworld,
		OnResume: s.resumeOverworld,
	})
	s.machine.Handle(mode.Combat, mode.Hooks{
		OnEnter: s.enterCombat,
		OnExit:  s.exitCombat,
	})

	span.SetAttributes(
		attribute.Int64("seed", seed),
		attribute.String("map", mapDef.Name),
		attribute.Int("map.width", layout.Width),
		attribute.Int("map.height", layout.Height),
		attribute.Int("map.obstacles", len(layout.Map.Obstacles())),
		attribute.Int("map.zones", len(layout.Map.Zones())),
		attribute.Int("enemies", enemies.Count()),
	)
	return s, nil
}

// =============================================================================
// Tick
// =============================================================================

// Tick advances the session by dt. The transition effect runs first, then
// finished transitions are applied to the mode machine, then the systems
// of the active mode run. Input is ignored while a transition is in
// flight.
func (s *Session) Tick(ctx context.Context, in input.State, dt time.Duration) {
	s.tickCtx = ctx

	s.fade.Advance(dt)
	s.dispatch(ctx)

	if s.fade.Busy() {
		in = input.State{}
	}
	confirm := in.Pressed(input.KeyConfirm) && !s.confirmHeld
	s.confirmHeld = in.Pressed(input.KeyConfirm)

	switch s.machine.Active() {
	case mode.Menu:
		if confirm {
			s.Request(mode.Request{Target: mode.Overworld, Asset: s.cfg.FadeAsset})
		}
	case mode.Overworld:
		s.updateOverworld(ctx, in, dt)
	case mode.Combat:
		if confirm {
			s.playRound(ctx)
		}
	}
}

// Request starts a transition towards req.Target. It returns false if a
// transition is already running; the earlier request wins.
func (s *Session) Request(req mode.Request) bool {
	return s.fade.Start(req)
}

func (s *Session) enqueue(req mode.Request) {
	s.queue = append(s.queue, req)
}

// dispatch applies queued requests in order. Requests that are not valid
// from the active mode are dropped.
func (s *Session) dispatch(ctx context.Context) {
	for len(s.queue) > 0 {
		req := s.queue[0]
		s.queue = s.queue[1:]

		from := s.machine.Active()
		_, span := s.tracer.Start(ctx, "mode.transition")
		span.SetAttributes(
			attribute.String("from", from.String()),
			attribute.String("to", req.Target.String()),
			attribute.String("asset", string(req.Asset)),
		)
		if err := s.machine.Apply(req); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "rejected")
		}
		span.End()
	}
}

// updateOverworld runs movement, then the encounter trigger, then the
// camera.
func (s *Session) updateOverworld(ctx context.Context, in input.State, dt time.Duration) {
	actor := s.registry.Actor()
	m := s.layout.Map

	s.movement.Update(actor, in, m, dt)

	if req, fired := s.trigger.Update(actor, m, dt); fired {
		span := trace.SpanFromContext(ctx)
		span.AddEvent("encounter.trigger", trace.WithAttributes(
			attribute.Float64("x", actor.Pos.X),
			attribute.Float64("y", actor.Pos.Y),
		))
		s.Request(req)
	}

	s.tracker.Update(&s.camera, actor)
}

// =============================================================================
// Mode hooks
// =============================================================================

func (s *Session) enterOverworld() {
	if !s.registry.HasActor() {
		actor := entity.NewActor(s.actorDef, s.spawnPoint(), s.layout.Map.TileSize)
		if err := s.registry.Spawn(actor); err != nil {
			panic(fmt.Sprintf("spawn actor: %v", err))
		}
		s.trigger.Timer.Reset()
	}
	s.tracker.Update(&s.camera, s.registry.Actor())
}

func (s *Session) exitOverworld() {
	s.registry.Despawn()
}

func (s *Session) pauseOverworld() {
	actor := s.registry.Actor()
	actor.Active = false
	actor.JustMoved = false
	s.registry.SetActorVisible(false)
}

func (s *Session) resumeOverworld() {
	s.registry.Actor().Active = true
	s.registry.SetActorVisible(true)
}

func (s *Session) spawnPoint() geom.Vec2 {
	if s.layout.HasSpawn {
		return s.layout.Spawn
	}
	t := s.layout.Map.TileSize
	return geom.Vec2{X: 2 * t, Y: -2 * t}
}

// =============================================================================
// Accessors
// =============================================================================

// Mode returns the active mode.
func (s *Session) Mode() mode.Mode {
	return s.machine.Active()
}

// Paused returns true if the mode is suspended below the active one.
func (s *Session) Paused(m mode.Mode) bool {
	return s.machine.Paused(m)
}

// Actor returns the actor, or nil outside the overworld and combat.
func (s *Session) Actor() *entity.Actor {
	if !s.registry.HasActor() {
		return nil
	}
	return s.registry.Actor()
}

// Registry returns the entity registry.
func (s *Session) Registry() *entity.Registry {
	return s.registry
}

// Camera returns the camera.
func (s *Session) Camera() camera.Camera {
	return s.camera
}

// Layout returns the loaded level.
func (s *Session) Layout() *world.Layout {
	return s.layout
}

// Battle returns the running battle and its enemy, or nil outside combat.
func (s *Session) Battle() (*combat.Battle, *entity.Enemy) {
	return s.battle, s.enemy
}

// Transitioning returns true while a mode transition is in flight.
func (s *Session) Transitioning() bool {
	return s.fade.Busy()
}

// FadeAlpha returns the transition overlay opacity in [0, 1].
func (s *Session) FadeAlpha() float64 {
	if f, ok := s.fade.(interface{ Alpha() float64 }); ok {
		return f.Alpha()
	}
	return 0
}

func seconds(v float64) time.Duration {
	return time.Duration(v * float64(time.Second))
}
