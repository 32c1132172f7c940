package registry

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return strings.ToUpper(g.id) }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Resize(int, int)                      {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub-b", func() Game { return &stubGame{id: "stub-b"} })
	Register("stub-a", func() Game { return &stubGame{id: "stub-a"} })

	if !Exists("stub-a") || !Exists("stub-b") {
		t.Fatal("registered game should exist")
	}

	g, err := Create("stub-b")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "stub-b" {
		t.Errorf("Create() returned game %q, expected stub-b", g.ID())
	}
}

func TestRegisterDoesNotCreate(t *testing.T) {
	created := 0
	Register("stub-lazy", func() Game {
		created++
		return &stubGame{id: "stub-lazy"}
	})
	if created != 0 {
		t.Fatalf("Register() created %d instances, expected 0", created)
	}

	if _, err := Create("stub-lazy"); err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if created != 1 {
		t.Errorf("Create() should build exactly one instance, got %d", created)
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("missing"); err == nil {
		t.Error("Create() of an unknown game should fail")
	}
	if Exists("missing") {
		t.Error("Exists() should be false for an unknown game")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub-dup", func() Game { return &stubGame{id: "stub-dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("stub-dup", func() Game { return &stubGame{id: "stub-dup"} })
}
