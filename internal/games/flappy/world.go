package flappy

import (
	"errors"
	"math/rand"
	"time"
)

// Cause records why a run ended.
type Cause int

const (
	CauseNone Cause = iota
	CauseCollision
	CauseOutOfBounds
)

// String returns a short name for the cause.
func (c Cause) String() string {
	switch c {
	case CauseCollision:
		return "collision"
	case CauseOutOfBounds:
		return "out_of_bounds"
	default:
		return "none"
	}
}

// TickResult describes what happened during one tick.
type TickResult struct {
	Scored       int   // Points awarded this tick
	Ended        bool  // The run ended this tick
	Cause        Cause // Why it ended, when Ended
	SpawnSkipped bool  // A spawn was due but the playfield was too small
}

// World owns all run state and advances it one tick at a time.
//
// Lifecycle: NewWorld starts a run; Tick advances it until the actor hits an
// obstacle or falls out of the playfield; Restart begins a fresh run.
type World struct {
	field   Playfield
	sprite  *Sprite
	spawner *Spawner

	actor     *Actor
	obstacles []Obstacle
	score     ScoreTracker
	running   bool
	lastSpawn time.Duration
	cause     Cause
	ticks     int
}

// NewWorld creates a world on the given playfield and starts a run.
// The sprite may be unresolved (or nil); obstacle heights come from rng.
func NewWorld(field Playfield, sprite *Sprite, rng *rand.Rand) *World {
	w := &World{
		field:     field,
		sprite:    sprite,
		spawner:   NewSpawner(rng),
		obstacles: make([]Obstacle, 0, 8),
	}
	w.Reset()
	return w
}

// Reset discards the current run and starts a fresh one: a new actor at the
// playfield center, no obstacles, zero score and a cleared spawn timer.
func (w *World) Reset() {
	fw, fh := w.field.Size()
	w.actor = NewActor(fw/2, fh/2, w.sprite)
	w.obstacles = w.obstacles[:0]
	w.score.Reset()
	w.lastSpawn = 0
	w.running = true
	w.cause = CauseNone
	w.ticks = 0
}

// Restart resets the world if the run is over. It reports whether a reset
// happened.
func (w *World) Restart() bool {
	if w.running {
		return false
	}
	w.Reset()
	return true
}

// Flap propels the actor upward. Ignored once the run is over.
func (w *World) Flap() {
	if !w.running {
		return
	}
	w.actor.Flap()
}

// Tick advances the world to time now and draws it into p (which may be nil).
//
// Order: spawn, actor physics, obstacle movement and scoring, render,
// collision. After the run ends only rendering happens.
func (w *World) Tick(now time.Duration, p Presenter) TickResult {
	var res TickResult
	if !w.running {
		w.Draw(p)
		return res
	}
	w.ticks++
	fw, fh := w.field.Size()

	pair, last, err := w.spawner.MaybeSpawn(now, w.lastSpawn, SpawnInterval, fw, fh)
	switch {
	case errors.Is(err, ErrPlayfieldTooSmall):
		res.SpawnSkipped = true
	case err == nil:
		w.obstacles = append(w.obstacles, pair...)
		w.lastSpawn = last
	}

	if w.actor.Integrate(fh) {
		w.end(CauseOutOfBounds, p, &res)
	}

	kept := w.obstacles[:0]
	for i := range w.obstacles {
		o := w.obstacles[i]
		if o.Advance() {
			continue
		}
		if w.score.Observe(&o, w.actor.X, w.running) {
			res.Scored++
		}
		kept = append(kept, o)
	}
	w.obstacles = kept

	w.Draw(p)

	if w.running && firstCollision(w.actor, w.obstacles, fh) >= 0 {
		w.end(CauseCollision, p, &res)
	}
	return res
}

func (w *World) end(cause Cause, p Presenter, res *TickResult) {
	w.running = false
	w.cause = cause
	res.Ended = true
	res.Cause = cause
	if p != nil {
		p.SetGameOverVisible(true)
	}
}

// Draw renders the current state into p without advancing anything.
func (w *World) Draw(p Presenter) {
	if p == nil {
		return
	}
	_, fh := w.field.Size()

	p.Clear()
	fp := w.actor.Footprint()
	p.DrawSprite(w.sprite, fp.X, fp.Y, fp.W, fp.H)
	for i := range w.obstacles {
		b := w.obstacles[i].Bounds(fh)
		p.FillRect(b.X, b.Y, b.W, b.H, ObstacleColor)
	}
	p.SetScore(w.score.Score())
	p.SetGameOverVisible(!w.running)
}

// Running reports whether the run is still active.
func (w *World) Running() bool { return w.running }

// Score returns the number of obstacle pairs passed this run.
func (w *World) Score() int { return w.score.Score() }

// Cause returns why the last run ended, or CauseNone while running.
func (w *World) Cause() Cause { return w.cause }

// Ticks returns how many active ticks the current run has lasted.
func (w *World) Ticks() int { return w.ticks }

// Actor returns a copy of the actor's state.
func (w *World) Actor() Actor { return *w.actor }

// Obstacles returns the live obstacles in spawn order. The slice is owned by
// the world and is only valid until the next Tick or Reset.
func (w *World) Obstacles() []Obstacle { return w.obstacles }
