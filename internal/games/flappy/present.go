package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// Colors used when drawing the world.
const (
	ObstacleColor = core.ColorGreen
	ActorColor    = core.ColorBrightYellow
)

// Presenter is the display the world draws into once per tick.
// Implementations own all presentation; the world only issues calls.
type Presenter interface {
	// Clear starts a new frame.
	Clear()
	// DrawSprite draws s with its top-left corner at (x, y), scaled to w x h.
	DrawSprite(s *Sprite, x, y, w, h float64)
	// FillRect fills an axis-aligned rectangle.
	FillRect(x, y, w, h float64, c core.Color)
	// SetScore updates the score indicator.
	SetScore(score int)
	// SetGameOverVisible shows or hides the game over indicator.
	SetGameOverVisible(visible bool)
}

// Playfield reports the current drawable size. It is queried every tick, so
// implementations may follow window or terminal resizes.
type Playfield interface {
	Size() (w, h float64)
}

// FixedPlayfield is a playfield that never changes size.
type FixedPlayfield struct {
	W, H float64
}

// Size implements Playfield.
func (f FixedPlayfield) Size() (w, h float64) {
	return f.W, f.H
}

// PlayfieldFunc adapts a function to the Playfield interface.
type PlayfieldFunc func() (w, h float64)

// Size implements Playfield.
func (f PlayfieldFunc) Size() (w, h float64) {
	return f()
}

// OpKind distinguishes recorded draw calls.
type OpKind int

const (
	OpSprite OpKind = iota
	OpRect
)

// DrawOp is one recorded draw call.
type DrawOp struct {
	Kind       OpKind
	Sprite     *Sprite // OpSprite only
	X, Y, W, H float64
	Color      core.Color // OpRect only
}

// DisplayList is a Presenter that records one frame of draw calls for later
// replay, e.g. from a front end whose draw pass runs apart from its update.
type DisplayList struct {
	Ops      []DrawOp
	Score    int
	GameOver bool
}

// Clear drops the recorded draw calls. Score and game over state persist.
func (d *DisplayList) Clear() {
	d.Ops = d.Ops[:0]
}

// DrawSprite records a sprite draw.
func (d *DisplayList) DrawSprite(s *Sprite, x, y, w, h float64) {
	d.Ops = append(d.Ops, DrawOp{Kind: OpSprite, Sprite: s, X: x, Y: y, W: w, H: h})
}

// FillRect records a rectangle fill.
func (d *DisplayList) FillRect(x, y, w, h float64, c core.Color) {
	d.Ops = append(d.Ops, DrawOp{Kind: OpRect, X: x, Y: y, W: w, H: h, Color: c})
}

// SetScore records the score.
func (d *DisplayList) SetScore(score int) {
	d.Score = score
}

// SetGameOverVisible records the game over indicator state.
func (d *DisplayList) SetGameOverVisible(visible bool) {
	d.GameOver = visible
}
