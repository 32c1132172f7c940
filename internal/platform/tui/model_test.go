package tui

import (
	"errors"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

func newTestModel(t *testing.T, opts Options) Model {
	t.Helper()
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	cfg := core.DefaultConfig()
	cfg.ScreenW = 80
	cfg.ScreenH = 21
	cfg.Seed = 7
	m := NewModel(flappy.New(), cfg, opts)
	m.Init()
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return nm, cmd
}

func TestModelReservesHelpRow(t *testing.T) {
	m := newTestModel(t, Options{})
	if m.screen.Height() != 20 {
		t.Errorf("screen height = %d, want 20", m.screen.Height())
	}
	view := m.View()
	if got := strings.Count(view, "\n"); got != 20 {
		t.Errorf("view has %d newlines, want 20", got)
	}
	if !strings.Contains(view, "Score: 0") {
		t.Error("view should show the score")
	}
	if !strings.Contains(view, "flap") {
		t.Error("view should show help")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, Options{})
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce QuitMsg")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelGameOverAndRestart(t *testing.T) {
	var events []core.Event
	m := newTestModel(t, Options{OnEvent: func(ev core.Event) { events = append(events, ev) }})

	// Without flapping the actor falls out of the bottom well before the
	// first obstacle arrives.
	for i := 0; i < 120 && !m.State().GameOver; i++ {
		var cmd tea.Cmd
		m, cmd = update(t, m, TickMsg(time.Now()))
		if cmd == nil {
			t.Fatal("tick should schedule the next tick")
		}
	}
	if !m.State().GameOver {
		t.Fatal("expected game over after falling")
	}
	if len(events) == 0 || events[len(events)-1].Kind != core.EventGameOver {
		t.Fatalf("expected a game over event, got %v", events)
	}
	if events[len(events)-1].Detail != "out_of_bounds" {
		t.Errorf("game over cause = %q, want out_of_bounds", events[len(events)-1].Detail)
	}
	if !strings.Contains(m.View(), "GAME OVER") {
		t.Error("view should show game over")
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	m, _ = update(t, m, TickMsg(time.Now()))
	if m.State().GameOver {
		t.Error("restart should start a new run")
	}
	if events[len(events)-1].Kind != core.EventReset {
		t.Errorf("last event = %v, want reset", events[len(events)-1].Kind)
	}
}

func TestModelResizeKeepsRun(t *testing.T) {
	m := newTestModel(t, Options{})
	for i := 0; i < 5; i++ {
		m, _ = update(t, m, TickMsg(time.Now()))
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 31})
	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("screen = %dx%d, want 100x30", m.screen.Width(), m.screen.Height())
	}
	if m.State().GameOver {
		t.Error("resize should not end the run")
	}
}

func TestModelScreenshot(t *testing.T) {
	dir := t.TempDir()
	m := newTestModel(t, Options{ScreenshotDir: dir})

	update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 screenshot, got %d", len(entries))
	}
	name := entries[0].Name()
	if !strings.HasPrefix(name, "flappy_") || !strings.HasSuffix(name, ".txt") {
		t.Errorf("unexpected screenshot name %q", name)
	}
}

func TestGameRows(t *testing.T) {
	if GameRows(24) != 23 {
		t.Errorf("GameRows(24) = %d, want 23", GameRows(24))
	}
	if GameRows(1) != 1 {
		t.Errorf("GameRows(1) = %d, want 1", GameRows(1))
	}
}

func TestCheckTerminal(t *testing.T) {
	tests := []struct {
		name       string
		height     int
		cellHeight int
		wantErr    bool
	}{
		{"short terminal", 10, 20, true},
		{"smallest playable", 11, 20, false},
		{"default cell size", 10, 0, true},
		{"tall cells", 6, 40, false},
		{"regular terminal", 24, 20, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := core.DefaultConfig()
			cfg.ScreenW = 80
			cfg.ScreenH = tt.height
			cfg.CellHeight = tt.cellHeight

			err := CheckTerminal(cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CheckTerminal() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, flappy.ErrPlayfieldTooSmall) {
				t.Errorf("error should wrap ErrPlayfieldTooSmall, got %v", err)
			}
		})
	}
}
