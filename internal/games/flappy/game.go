// Package flappy implements a Flappy Bird-style game.
// The player keeps an actor airborne and steers it through gaps between
// pairs of obstacles that scroll in from the right.
package flappy

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

// Game adapts a World to the registry.Game interface, mapping the playfield
// onto the terminal grid.
type Game struct {
	world  *World
	sprite *Sprite
	canvas *cellCanvas
	config core.RuntimeConfig
	clock  time.Duration // Simulation time, advanced one tick per Step
	paused bool
}

// New creates a new game instance with an unresolved sprite.
func New() *Game {
	return NewWithSprite(NewSprite())
}

// NewWithSprite creates a game whose actor takes its size from sprite.
func NewWithSprite(sprite *Sprite) *Game {
	return &Game{sprite: sprite}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "flappy"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flappy"
}

// Sprite returns the actor sprite so a loader can resolve it.
func (g *Game) Sprite() *Sprite {
	return g.sprite
}

// PlayfieldSize returns the playfield size for a cfg-sized terminal.
func PlayfieldSize(cfg core.RuntimeConfig) (w, h float64) {
	return float64(cfg.ScreenW * cfg.CellWidth), float64(cfg.ScreenH * cfg.CellHeight)
}

// Reset initializes the game for a new terminal session.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	def := core.DefaultConfig()
	if cfg.CellWidth <= 0 {
		cfg.CellWidth = def.CellWidth
	}
	if cfg.CellHeight <= 0 {
		cfg.CellHeight = def.CellHeight
	}
	g.config = cfg
	g.clock = 0
	g.paused = false
	g.canvas = newCellCanvas(cfg.ScreenW, cfg.ScreenH, float64(cfg.CellWidth), float64(cfg.CellHeight))

	field := PlayfieldFunc(func() (float64, float64) {
		return PlayfieldSize(g.config)
	})
	g.world = NewWorld(field, g.sprite, rand.New(rand.NewSource(cfg.Seed)))
	g.world.Draw(g.canvas)
}

// Resize follows a terminal resize without ending the run.
func (g *Game) Resize(w, h int) {
	g.config.ScreenW = w
	g.config.ScreenH = h
	g.canvas.screen.Resize(w, h)
	g.world.Draw(g.canvas)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	var events []core.Event

	if in.Has(core.ActionRestart) && g.world.Restart() {
		g.paused = false
		events = append(events, core.Event{Kind: core.EventReset})
	}

	if in.Has(core.ActionPause) && g.world.Running() {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State(), Events: events}
	}

	if in.Has(core.ActionJump) {
		g.world.Flap()
	}

	g.clock += g.config.TickInterval()
	res := g.world.Tick(g.clock, g.canvas)

	if res.Scored > 0 {
		events = append(events, core.Event{Kind: core.EventScored, Detail: fmt.Sprintf("score=%d", g.world.Score())})
	}
	if res.Ended {
		events = append(events, core.Event{Kind: core.EventGameOver, Detail: res.Cause.String()})
	}

	return core.StepResult{State: g.State(), Events: events}
}

// Render draws the last rendered frame plus the HUD to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	dst.Blit(g.canvas.screen)

	scoreText := fmt.Sprintf(" Score: %d ", g.canvas.score)
	dst.DrawTextColored(2, 0, scoreText, core.ColorWhite)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if g.canvas.gameOver {
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.canvas.score))
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)

	dst.DrawTextColored(box.X+(boxW-len(title))/2, box.Y+1, title, core.ColorBrightRed)
	dst.DrawText(box.X+(boxW-len(subtitle))/2, box.Y+3, subtitle)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.world.Score(),
		GameOver: !g.world.Running(),
		Paused:   g.paused,
	}
}

func init() {
	registry.Register("flappy", func() registry.Game {
		return New()
	})
}
