package flappy

// ScoreTracker counts obstacle pairs the actor has passed.
type ScoreTracker struct {
	score int
}

// Score returns the current count.
func (s *ScoreTracker) Score() int {
	return s.score
}

// Reset sets the count back to zero.
func (s *ScoreTracker) Reset() {
	s.score = 0
}

// Observe marks o as passed the first time its x is left of actorX.
// A point is awarded only on that transition, only for the top half of a
// pair, and only while counting is true. It reports whether a point was added.
func (s *ScoreTracker) Observe(o *Obstacle, actorX float64, counting bool) bool {
	if o.Passed || o.X >= actorX {
		return false
	}
	o.Passed = true
	if o.Role != Top || !counting {
		return false
	}
	s.score++
	return true
}
