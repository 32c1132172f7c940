package flappy

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"
)

// Spawn constants.
const (
	SpawnInterval = 1900 * time.Millisecond
	Gap           = 150.0 // Vertical opening between a pair
	EdgeMargin    = 20.0  // Minimum obstacle height at either edge
)

// ErrPlayfieldTooSmall is returned when the playfield cannot hold the gap
// plus both margins.
var ErrPlayfieldTooSmall = errors.New("flappy: playfield too small for obstacle gap")

// ValidatePlayfield checks that pairs can be generated for a playfield of the
// given height.
func ValidatePlayfield(fieldH float64) error {
	if fieldH-Gap-2*EdgeMargin <= 0 {
		return fmt.Errorf("%w: height %.0f, need more than %.0f", ErrPlayfieldTooSmall, fieldH, Gap+2*EdgeMargin)
	}
	return nil
}

// Spawner creates obstacle pairs on a fixed cadence.
type Spawner struct {
	rng *rand.Rand
}

// NewSpawner creates a spawner drawing heights from rng.
func NewSpawner(rng *rand.Rand) *Spawner {
	return &Spawner{rng: rng}
}

// Pair generates a top/bottom pair at the right edge of a fieldW x fieldH
// playfield. topHeight + Gap + bottomHeight always equals fieldH.
func (s *Spawner) Pair(fieldW, fieldH float64) (top, bottom Obstacle, err error) {
	if err := ValidatePlayfield(fieldH); err != nil {
		return top, bottom, err
	}

	maxHeight := fieldH - Gap
	topHeight := math.Floor(s.rng.Float64()*(maxHeight-2*EdgeMargin)) + EdgeMargin
	bottomHeight := maxHeight - topHeight

	top = Obstacle{X: fieldW, Height: topHeight, Role: Top}
	bottom = Obstacle{X: fieldW, Height: bottomHeight, Role: Bottom}
	return top, bottom, nil
}

// MaybeSpawn emits a pair when more than interval has elapsed since
// lastSpawn. It returns the pair (nil when nothing was spawned) and the
// spawn timestamp to carry forward.
func (s *Spawner) MaybeSpawn(now, lastSpawn, interval time.Duration, fieldW, fieldH float64) ([]Obstacle, time.Duration, error) {
	if now-lastSpawn <= interval {
		return nil, lastSpawn, nil
	}
	top, bottom, err := s.Pair(fieldW, fieldH)
	if err != nil {
		return nil, lastSpawn, err
	}
	return []Obstacle{top, bottom}, now, nil
}
