package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// Physics constants, in playfield units per tick.
const (
	Gravity      = 0.25 // Added to velocity every tick
	FlapVelocity = -4.5 // Velocity set by a flap (negative = up)
)

// Actor is the falling, flapping player entity.
// X never changes after creation; Y moves by integrating VY.
type Actor struct {
	X, Y   float64
	VY     float64
	sprite *Sprite
}

// NewActor creates an actor at (x, y) at rest. The sprite supplies its size
// and may still be unresolved; nil means the placeholder size forever.
func NewActor(x, y float64, sprite *Sprite) *Actor {
	return &Actor{X: x, Y: y, sprite: sprite}
}

// Size returns the actor's current width and height.
func (a *Actor) Size() (w, h float64) {
	return a.sprite.Size()
}

// Integrate applies one tick of gravity and then moves the actor.
// It reports true when the bottom edge has reached the playfield's lower
// boundary; the caller ends the run.
func (a *Actor) Integrate(fieldH float64) (outOfBounds bool) {
	a.VY += Gravity
	a.Y += a.VY

	_, h := a.Size()
	return a.Y+h/2 >= fieldH
}

// Flap replaces the vertical velocity with the flap velocity.
func (a *Actor) Flap() {
	a.VY = FlapVelocity
}

// Footprint returns the actor's rectangle, centered on its position.
func (a *Actor) Footprint() core.Box {
	w, h := a.Size()
	return core.Box{X: a.X - w/2, Y: a.Y - h/2, W: w, H: h}
}

// Radius returns the collision radius: half the width, whatever the height.
func (a *Actor) Radius() float64 {
	w, _ := a.Size()
	return w / 2
}
