// Package window runs the game in a desktop window with Ebitengine.
//
// Update advances the world one tick and records the frame into a display
// list; Draw replays that list, so the draw pass never touches game state.
package window

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// Options configure a window run.
type Options struct {
	Width    int
	Height   int
	Title    string
	TickRate int
	Seed     int64
	Logger   *log.Logger
}

// Game implements ebiten.Game around a flappy world.
type Game struct {
	world  *flappy.World
	sprite *flappy.Sprite
	list   flappy.DisplayList
	logger *log.Logger

	width, height int
	clock         time.Duration
	interval      time.Duration

	spriteImg *ebiten.Image // converted once the sprite resolves
}

func (o Options) withDefaults() Options {
	if o.TickRate <= 0 {
		o.TickRate = 60
	}
	if o.Seed == 0 {
		o.Seed = time.Now().UnixNano()
	}
	if o.Logger == nil {
		o.Logger = log.Default()
	}
	if o.Title == "" {
		o.Title = "Flappy"
	}
	return o
}

// NewGame creates a window game. The sprite may still be unresolved.
func NewGame(sprite *flappy.Sprite, opts Options) *Game {
	opts = opts.withDefaults()

	g := &Game{
		sprite:   sprite,
		logger:   opts.Logger,
		width:    opts.Width,
		height:   opts.Height,
		interval: time.Second / time.Duration(opts.TickRate),
	}
	field := flappy.PlayfieldFunc(func() (float64, float64) {
		return float64(g.width), float64(g.height)
	})
	g.world = flappy.NewWorld(field, sprite, rand.New(rand.NewSource(opts.Seed)))
	g.world.Draw(&g.list)
	return g
}

// Update reads input and advances the world by one tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	click := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	flap := click ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) ||
		inpututil.IsKeyJustPressed(ebiten.KeyW)
	restart := click ||
		inpututil.IsKeyJustPressed(ebiten.KeyR) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEnter)

	g.step(flap, restart)
	return nil
}

// step applies input and ticks the world; it does not touch Ebitengine.
func (g *Game) step(flap, restart bool) flappy.TickResult {
	if restart && g.world.Restart() {
		g.logger.Info("run restarted")
		flap = false
	}
	if flap {
		g.world.Flap()
	}

	g.clock += g.interval
	res := g.world.Tick(g.clock, &g.list)
	if res.Scored > 0 {
		g.logger.Debug("obstacle passed", "score", g.world.Score())
	}
	if res.Ended {
		g.logger.Info("game over", "cause", res.Cause.String(), "score", g.world.Score())
	}
	return res
}

// Draw replays the last recorded frame.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(skyColor)

	for _, op := range g.list.Ops {
		switch op.Kind {
		case flappy.OpRect:
			vector.DrawFilledRect(screen, float32(op.X), float32(op.Y), float32(op.W), float32(op.H), rgba(op.Color), false)
		case flappy.OpSprite:
			g.drawSprite(screen, op)
		}
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", g.list.Score), 10, 10)
	if g.list.GameOver {
		msg := "GAME OVER - press R or click to restart"
		ebitenutil.DebugPrintAt(screen, msg, (g.width-len(msg)*6)/2, g.height/2)
	}
}

// drawSprite draws the actor image scaled to the op, or a filled box while
// the sprite is still loading.
func (g *Game) drawSprite(screen *ebiten.Image, op flappy.DrawOp) {
	if g.spriteImg == nil && op.Sprite != nil {
		if img := op.Sprite.Image(); img != nil {
			g.spriteImg = ebiten.NewImageFromImage(img)
		}
	}
	if g.spriteImg == nil {
		vector.DrawFilledRect(screen, float32(op.X), float32(op.Y), float32(op.W), float32(op.H), rgba(flappy.ActorColor), false)
		return
	}

	b := g.spriteImg.Bounds()
	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(op.W/float64(b.Dx()), op.H/float64(b.Dy()))
	opts.GeoM.Translate(op.X, op.Y)
	opts.Filter = ebiten.FilterLinear
	screen.DrawImage(g.spriteImg, opts)
}

// Layout makes the playfield follow the window size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// Run opens the window and blocks until it is closed.
func Run(sprite *flappy.Sprite, opts Options) error {
	opts = opts.withDefaults()
	if err := flappy.ValidatePlayfield(float64(opts.Height)); err != nil {
		return err
	}
	g := NewGame(sprite, opts)

	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(opts.TickRate)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
