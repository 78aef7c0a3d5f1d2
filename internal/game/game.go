// Package game ties the overworld systems into a session advanced one
// tick at a time, and runs that session in the terminal.
package game

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/overworld/internal/input"
	"github.com/samdwyer/overworld/internal/telemetry"
	"github.com/samdwyer/overworld/internal/ui"
)

// Game runs a session against the terminal.
type Game struct {
	cfg      Config
	screen   *ui.Screen
	renderer *ui.Renderer
	keyboard *ui.Keyboard
	session  *Session
}

// New creates a new game instance.
func New(ctx context.Context, cfg Config) (*Game, error) {
	session, err := NewSession(ctx, cfg)
	if err != nil {
		return nil, err
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	return &Game{
		cfg:      cfg,
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		keyboard: ui.NewKeyboard(ui.DefaultHold),
		session:  session,
	}, nil
}

// Run executes the main game loop at the configured tick rate until the
// quit key is pressed or ctx is cancelled.
func (g *Game) Run(ctx context.Context) error {
	defer g.screen.Close()

	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.run")
	defer span.End()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event, 16)
	go g.pollEvents(ctx, events)

	ticker := time.NewTicker(g.cfg.TickInterval())
	defer ticker.Stop()

	ticks := 0
	last := time.Now()
	g.renderer.Render(g.frame())

	for {
		select {
		case <-ctx.Done():
			span.SetAttributes(attribute.Int("ticks", ticks))
			return nil

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if key, ok := g.keyboard.HandleKey(ev); ok && key == input.KeyQuit {
					span.SetAttributes(attribute.Int("ticks", ticks))
					return nil
				}
			case *tcell.EventResize:
				g.screen.Sync()
			}

		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now
			ticks++
			g.session.Tick(ctx, g.keyboard.Snapshot(), dt)
			g.renderer.Render(g.frame())
		}
	}
}

// pollEvents forwards terminal events until the screen is closed or ctx
// is cancelled.
func (g *Game) pollEvents(ctx context.Context, events chan<- tcell.Event) {
	for {
		ev := g.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-ctx.Done():
			return
		}
	}
}

// frame collects the session state the renderer draws.
func (g *Game) frame() ui.Frame {
	s := g.session
	f := ui.Frame{
		Mode:   s.Mode(),
		Layout: s.Layout(),
		Camera: s.Camera(),
		Actor:  s.Actor(),
		Fade:   s.FadeAlpha(),
	}
	if f.Actor != nil {
		f.ActorVisible = s.Registry().Visible(f.Actor.ID)
	}
	f.Battle, f.Enemy = s.Battle()
	return f
}
