package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// Glyphs used on the terminal grid.
const (
	ActorChar     = '●'
	ActorBeakChar = '▶'
	ObstacleChar  = '█'
)

// cellCanvas is a Presenter that rasterizes playfield rectangles onto a
// character grid, one cell per cellW x cellH playfield units.
type cellCanvas struct {
	screen       *core.Screen
	cellW, cellH float64
	score        int
	gameOver     bool
}

func newCellCanvas(cols, rows int, cellW, cellH float64) *cellCanvas {
	return &cellCanvas{
		screen: core.NewScreen(cols, rows),
		cellW:  cellW,
		cellH:  cellH,
	}
}

func (c *cellCanvas) Clear() {
	c.screen.Clear()
}

func (c *cellCanvas) DrawSprite(_ *Sprite, x, y, w, h float64) {
	r := core.Box{X: x, Y: y, W: w, H: h}.Cells(c.cellW, c.cellH)
	c.screen.FillRect(r, ActorChar, ActorColor)
	c.screen.SetCell(r.Right()-1, r.Y, ActorBeakChar, ActorColor)
}

func (c *cellCanvas) FillRect(x, y, w, h float64, color core.Color) {
	r := core.Box{X: x, Y: y, W: w, H: h}.Cells(c.cellW, c.cellH)
	c.screen.FillRect(r, ObstacleChar, color)
}

func (c *cellCanvas) SetScore(score int) {
	c.score = score
}

func (c *cellCanvas) SetGameOverVisible(visible bool) {
	c.gameOver = visible
}
