package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/overworld/internal/camera"
	"github.com/samdwyer/overworld/internal/combat"
	"github.com/samdwyer/overworld/internal/entity"
	"github.com/samdwyer/overworld/internal/mode"
	"github.com/samdwyer/overworld/internal/world"
)

// Frame is everything the renderer needs to draw one tick.
type Frame struct {
	Mode         mode.Mode
	Layout       *world.Layout
	Camera       camera.Camera
	Actor        *entity.Actor // Nil in the menu
	ActorVisible bool
	Battle       *combat.Battle
	Enemy        *entity.Enemy
	Fade         float64 // Transition overlay opacity in [0, 1]
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws the active mode, then the transition overlay.
func (r *Renderer) Render(f Frame) {
	r.screen.Clear()

	switch f.Mode {
	case mode.Menu:
		r.renderMenu()
	case mode.Overworld:
		r.renderOverworld(f)
	case mode.Combat:
		r.renderCombat(f)
	}

	if glyph, ok := fadeRune(f.Fade); ok {
		w, h := r.screen.Size()
		style := tcell.StyleDefault.Foreground(tcell.ColorBlack)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				r.screen.SetContent(x, y, glyph, style)
			}
		}
	}

	r.screen.Show()
}

func (r *Renderer) renderMenu() {
	_, h := r.screen.Size()
	title := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	r.drawText(2, h/2-1, "OVERWORLD", title)
	r.RenderMessage("Enter: start   q: quit", h/2+1)
}

func (r *Renderer) renderOverworld(f Frame) {
	w, h := r.screen.Size()
	cx, cy := w/2, h/2
	m := f.Layout.Map

	for row := 0; row < f.Layout.Height; row++ {
		for col := 0; col < f.Layout.Width; col++ {
			tile := m.TileAt(col, row)
			dx, dy := f.Camera.WorldToCell(world.GridPos(col, row, m.TileSize), m.TileSize)
			r.screen.SetContent(cx+dx, cy+dy, tile.Rune(), tileStyle(tile))
		}
	}

	if f.Actor != nil && f.ActorVisible {
		dx, dy := f.Camera.WorldToCell(f.Actor.Pos, m.TileSize)
		style := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
		r.screen.SetContent(cx+dx, cy+dy, FacingGlyph(f.Actor.Facing), style)
	}

	if f.Actor != nil {
		r.RenderMessage(StatusLine(f.Actor), h-1)
	}
}

func (r *Renderer) renderCombat(f Frame) {
	if f.Battle == nil || f.Enemy == nil {
		return
	}
	_, h := r.screen.Size()

	enemyStyle := tcell.StyleDefault.Foreground(f.Enemy.Color()).Bold(true)
	r.screen.SetContent(4, 2, f.Enemy.Symbol, enemyStyle)
	r.drawText(6, 2, fmt.Sprintf("%s  HP %d/%d", f.Enemy.Name, f.Enemy.GetHP(), f.Enemy.GetMaxHP()), enemyStyle)

	r.RenderMessage(f.Battle.LastMessage, 5)

	switch f.Battle.Outcome() {
	case combat.OutcomePending:
		r.RenderMessage("Enter: attack", 7)
	case combat.OutcomeVictory:
		r.RenderMessage("Victory!", 7)
	case combat.OutcomeDefeat:
		r.RenderMessage("You have been defeated.", 7)
	}

	if f.Actor != nil {
		r.RenderMessage(StatusLine(f.Actor), h-1)
	}
}

// RenderMessage displays a message on the given screen row.
func (r *Renderer) RenderMessage(msg string, y int) {
	r.drawText(0, y, msg, tcell.StyleDefault.Foreground(tcell.ColorWhite))
}

func (r *Renderer) drawText(x, y int, msg string, style tcell.Style) {
	for i, ch := range []rune(msg) {
		r.screen.SetContent(x+i, y, ch, style)
	}
}

// tileStyle returns the appropriate style for a tile type.
func tileStyle(tile world.Tile) tcell.Style {
	switch tile {
	case world.TileWall:
		return tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	case world.TileGrass:
		return tcell.StyleDefault.Foreground(tcell.ColorGreen)
	case world.TileFloor:
		return tcell.StyleDefault.Foreground(tcell.ColorGray)
	default:
		return tcell.StyleDefault
	}
}

// FacingGlyph returns the arrow drawn for the actor's facing.
func FacingGlyph(f entity.Facing) rune {
	switch f {
	case entity.FacingUp:
		return '^'
	case entity.FacingLeft:
		return '<'
	case entity.FacingRight:
		return '>'
	default:
		return 'v'
	}
}

// StatusLine summarizes the actor's stats and progress to the next level.
func StatusLine(a *entity.Actor) string {
	return fmt.Sprintf("HP %d/%d  ATK %d  DEF %d  EXP %d/%d",
		a.Stats.Health, a.Stats.MaxHealth, a.Stats.Attack, a.Stats.Defence, a.Exp, entity.LevelUpCost)
}

// fadeRune picks the shade drawn over the screen for an overlay opacity.
// Nearly transparent overlays are skipped.
func fadeRune(alpha float64) (rune, bool) {
	switch {
	case alpha < 0.1:
		return 0, false
	case alpha < 0.35:
		return '░', true
	case alpha < 0.6:
		return '▒', true
	case alpha < 0.85:
		return '▓', true
	default:
		return '█', true
	}
}
