package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

// helpHeight is the number of terminal rows reserved for the help line.
const helpHeight = 1

// GameRows returns the rows left for the game in a terminal of the given height.
func GameRows(termHeight int) int {
	return core.Max(termHeight-helpHeight, 1)
}

// CheckTerminal reports whether a terminal of cfg's size, less the help row,
// leaves room for the obstacle gap. The error wraps flappy.ErrPlayfieldTooSmall.
func CheckTerminal(cfg core.RuntimeConfig) error {
	def := core.DefaultConfig()
	if cfg.CellWidth <= 0 {
		cfg.CellWidth = def.CellWidth
	}
	if cfg.CellHeight <= 0 {
		cfg.CellHeight = def.CellHeight
	}
	cfg.ScreenH = GameRows(cfg.ScreenH)
	_, fieldH := flappy.PlayfieldSize(cfg)
	if err := flappy.ValidatePlayfield(fieldH); err != nil {
		return fmt.Errorf("terminal too small (%dx%d): %w", cfg.ScreenW, cfg.ScreenH+helpHeight, err)
	}
	return nil
}

// Options tune a Model beyond its runtime config.
type Options struct {
	// Logger receives game events. Defaults to log.Default().
	Logger *log.Logger

	// ScreenshotDir is where ctrl+s writes text screenshots.
	// Screenshots are disabled when empty.
	ScreenshotDir string

	// OnEvent, if set, is called for every game event after it is logged.
	OnEvent func(core.Event)
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	config   core.RuntimeConfig
	opts     Options
	keys     KeyMap
	help     help.Model
	input    core.InputFrame
	state    core.GameState
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
// cfg.ScreenH is the full terminal height; one row is kept for help.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	cfg.ScreenH = GameRows(cfg.ScreenH)

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config: cfg,
		opts:   opts,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		input:  core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.opts.Logger.Info("run started", "game", m.game.ID(), "width", m.config.ScreenW, "height", m.config.ScreenH, "seed", m.config.Seed)
	return tickCmd(m.config.TickInterval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if a := mouseAction(msg, m.state.GameOver); a != core.ActionNone {
			m.input.Set(a)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	switch a := m.keys.Action(msg); a {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionNone:
	default:
		m.input.Set(a)
	}

	return m, nil
}

// handleResize follows the terminal size; the current run continues.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = GameRows(msg.Height)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.game.Resize(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.input)
	m.state = result.State
	m.input.Clear()

	for _, ev := range result.Events {
		m.logEvent(ev)
		if m.opts.OnEvent != nil {
			m.opts.OnEvent(ev)
		}
	}

	return m, tickCmd(m.config.TickInterval())
}

func (m Model) logEvent(ev core.Event) {
	logger := m.opts.Logger
	switch ev.Kind {
	case core.EventScored:
		logger.Debug("obstacle passed", "game", m.game.ID(), "detail", ev.Detail)
	case core.EventGameOver:
		logger.Info("game over", "game", m.game.ID(), "cause", ev.Detail, "score", m.state.Score)
	case core.EventReset:
		logger.Info("run restarted", "game", m.game.ID())
	}
}

// saveScreenshot writes the current screen to a text file in ScreenshotDir.
func (m Model) saveScreenshot() {
	if m.opts.ScreenshotDir == "" {
		return
	}
	path, err := writeScreenshot(m.opts.ScreenshotDir, m.game.ID(), m.frame())
	if err != nil {
		m.opts.Logger.Warn("screenshot failed", "error", err)
		return
	}
	m.opts.Logger.Info("screenshot saved", "path", path)
}

func writeScreenshot(dir, gameID, frame string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create screenshot directory: %w", err)
	}
	timestamp := time.Now().Format("20060102_150405.000")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", gameID, timestamp))
	if err := os.WriteFile(path, []byte(frame), 0o600); err != nil {
		return "", fmt.Errorf("cannot write screenshot: %w", err)
	}
	return path, nil
}

// frame renders the game into the screen buffer and returns it as plain text.
func (m Model) frame() string {
	m.game.Render(m.screen)
	return m.screen.String()
}

// State returns the game state as of the last tick.
func (m Model) State() core.GameState {
	return m.state
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	var sb strings.Builder
	sb.WriteString(RenderScreen(m.screen))
	sb.WriteRune('\n')
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

// Run starts the Bubble Tea program with the given game and blocks until it exits.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, cfg, opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
