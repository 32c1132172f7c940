package flappy

import (
	"errors"
	"math/rand"
	"testing"
	"time"
)

func TestObstacleAdvance(t *testing.T) {
	o := Obstacle{X: 800, Height: 100, Role: Top}
	if o.Advance() {
		t.Error("obstacle on screen should not report off-screen")
	}
	if o.X != 797 {
		t.Errorf("X after Advance = %v, expected 797", o.X)
	}

	// Right edge still visible.
	edge := Obstacle{X: -47, Role: Bottom}
	if edge.Advance() {
		t.Errorf("obstacle with right edge at %v should still be on screen", edge.X+ObstacleWidth)
	}

	gone := Obstacle{X: -51, Role: Top}
	if !gone.Advance() {
		t.Error("obstacle at x=-51 should be off-screen after Advance")
	}
}

func TestObstacleBounds(t *testing.T) {
	top := Obstacle{X: 300, Height: 120, Role: Top}
	b := top.Bounds(600)
	if b.X != 300 || b.Y != 0 || b.W != ObstacleWidth || b.H != 120 {
		t.Errorf("top bounds = %+v, expected anchored at y=0 with height 120", b)
	}

	bottom := Obstacle{X: 300, Height: 330, Role: Bottom}
	b = bottom.Bounds(600)
	if b.Y != 270 || b.Bottom() != 600 {
		t.Errorf("bottom bounds = %+v, expected y in [270, 600]", b)
	}
}

func TestRoleString(t *testing.T) {
	if Top.String() != "top" || Bottom.String() != "bottom" {
		t.Errorf("Role strings = %q, %q", Top.String(), Bottom.String())
	}
}

func TestValidatePlayfield(t *testing.T) {
	tests := []struct {
		height  float64
		wantErr bool
	}{
		{600, false},
		{191, false},
		{190, true},
		{150, true},
		{0, true},
	}

	for _, tc := range tests {
		err := ValidatePlayfield(tc.height)
		if (err != nil) != tc.wantErr {
			t.Errorf("ValidatePlayfield(%v) error = %v, wantErr %v", tc.height, err, tc.wantErr)
		}
		if err != nil && !errors.Is(err, ErrPlayfieldTooSmall) {
			t.Errorf("ValidatePlayfield(%v) should wrap ErrPlayfieldTooSmall, got %v", tc.height, err)
		}
	}
}

func TestSpawnerPairInvariant(t *testing.T) {
	s := NewSpawner(rand.New(rand.NewSource(7)))

	for _, fieldH := range []float64{600, 480, 191, 1080} {
		for i := 0; i < 2000; i++ {
			top, bottom, err := s.Pair(800, fieldH)
			if err != nil {
				t.Fatalf("Pair(800, %v) failed: %v", fieldH, err)
			}
			if top.Height+Gap+bottom.Height != fieldH {
				t.Fatalf("top %v + gap %v + bottom %v != %v", top.Height, Gap, bottom.Height, fieldH)
			}
			if top.Height < EdgeMargin || bottom.Height < EdgeMargin {
				t.Fatalf("heights %v/%v violate margin %v", top.Height, bottom.Height, EdgeMargin)
			}
			if top.Role != Top || bottom.Role != Bottom {
				t.Fatalf("roles = %v/%v, expected top/bottom", top.Role, bottom.Role)
			}
			if top.X != 800 || bottom.X != 800 {
				t.Fatalf("pair should spawn at the right edge, got %v/%v", top.X, bottom.X)
			}
			if top.Passed || bottom.Passed {
				t.Fatal("new obstacles should not be passed")
			}
		}
	}
}

func TestSpawnerScenario800x600(t *testing.T) {
	s := NewSpawner(rand.New(rand.NewSource(99)))
	for i := 0; i < 5000; i++ {
		top, bottom, err := s.Pair(800, 600)
		if err != nil {
			t.Fatal(err)
		}
		if top.Height < 20 || top.Height > 430 {
			t.Fatalf("top height %v outside [20, 430]", top.Height)
		}
		if bottom.Height != 450-top.Height {
			t.Fatalf("bottom height %v, expected %v", bottom.Height, 450-top.Height)
		}
	}
}

func TestSpawnerPairTooSmall(t *testing.T) {
	s := NewSpawner(rand.New(rand.NewSource(1)))
	if _, _, err := s.Pair(800, 150); !errors.Is(err, ErrPlayfieldTooSmall) {
		t.Errorf("Pair on a 150-high playfield should fail with ErrPlayfieldTooSmall, got %v", err)
	}
}

func TestSpawnerMaybeSpawn(t *testing.T) {
	s := NewSpawner(rand.New(rand.NewSource(1)))

	pair, last, err := s.MaybeSpawn(1900*time.Millisecond, 0, SpawnInterval, 800, 600)
	if err != nil || pair != nil || last != 0 {
		t.Errorf("no spawn expected at exactly the interval, got %d obstacles, last=%v, err=%v", len(pair), last, err)
	}

	now := 1901 * time.Millisecond
	pair, last, err = s.MaybeSpawn(now, 0, SpawnInterval, 800, 600)
	if err != nil {
		t.Fatalf("MaybeSpawn failed: %v", err)
	}
	if len(pair) != 2 || pair[0].Role != Top || pair[1].Role != Bottom {
		t.Fatalf("expected a top/bottom pair, got %+v", pair)
	}
	if last != now {
		t.Errorf("spawn timestamp = %v, expected %v", last, now)
	}

	pair, last, err = s.MaybeSpawn(now+time.Second, now, SpawnInterval, 800, 600)
	if err != nil || pair != nil || last != now {
		t.Error("no spawn expected before the next interval elapses")
	}

	_, last, err = s.MaybeSpawn(10*time.Second, now, SpawnInterval, 800, 100)
	if !errors.Is(err, ErrPlayfieldTooSmall) || last != now {
		t.Errorf("failed spawn should keep the old timestamp, got last=%v err=%v", last, err)
	}
}
