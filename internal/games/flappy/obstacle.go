package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// Obstacle constants, in playfield units.
const (
	ObstacleWidth = 50.0
	ObstacleSpeed = 3.0 // Leftward movement per tick
)

// Role says which edge of the playfield an obstacle hangs from.
type Role int

const (
	Top Role = iota
	Bottom
)

// String returns the role name.
func (r Role) String() string {
	if r == Top {
		return "top"
	}
	return "bottom"
}

// Obstacle is one half of a barrier pair.
type Obstacle struct {
	X      float64 // Left edge
	Height float64 // Extent from the anchoring edge
	Role   Role
	Passed bool // Set once the actor's x has gone past X
}

// Advance moves the obstacle left by ObstacleSpeed and reports whether it is
// now entirely past the left edge of the playfield.
func (o *Obstacle) Advance() (offScreen bool) {
	o.X -= ObstacleSpeed
	return o.X+ObstacleWidth < 0
}

// Bounds returns the rectangle the obstacle occupies on a playfield of the
// given height.
func (o *Obstacle) Bounds(fieldH float64) core.Box {
	if o.Role == Top {
		return core.Box{X: o.X, Y: 0, W: ObstacleWidth, H: o.Height}
	}
	return core.Box{X: o.X, Y: fieldH - o.Height, W: ObstacleWidth, H: o.Height}
}
