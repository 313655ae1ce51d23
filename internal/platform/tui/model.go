package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-rockfall/internal/audio"
	"github.com/vovakirdan/tui-rockfall/internal/core"
	"github.com/vovakirdan/tui-rockfall/internal/games/rockfall"
)

// Options carries the optional collaborators of a session.
type Options struct {
	Logger *log.Logger
	Sound  *audio.Player // nil disables sound
}

// Model is the Bubble Tea model for running the game.
// Key presses are queued as they arrive and each tick consumes at most one,
// so input never blocks the frame loop.
type Model struct {
	game     *rockfall.Game
	screen   *core.Screen
	input    *core.InputQueue
	keys     KeyMap
	help     help.Model
	config   core.RuntimeConfig
	state    core.GameState
	logger   *log.Logger
	sound    *audio.Player
	quitting bool
}

// NewModel creates a Bubble Tea model and starts a new game on its screen.
func NewModel(game *rockfall.Game, cfg core.RuntimeConfig, opts Options) (Model, error) {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	if err := game.Reset(cfg, screen); err != nil {
		return Model{}, fmt.Errorf("tui: cannot start game: %w", err)
	}

	return Model{
		game:   game,
		screen: screen,
		input:  core.NewInputQueue(core.DefaultInputCapacity),
		keys:   DefaultKeyMap(),
		help:   help.New(),
		config: cfg,
		state:  game.State(),
		logger: logger,
		sound:  opts.Sound,
	}, nil
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.FrameDelay)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The play area is fixed when the game starts
		m.logger.Debug("ignoring resize", "width", msg.Width, "height", msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.state.GameOver {
		if key.Matches(msg, m.keys.Exit) {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	if action := m.keys.Action(msg); action != core.ActionNone {
		if !m.input.Push(action) {
			m.logger.Debug("input queue full, dropping key", "action", action)
		}
	}
	return m, nil
}

// handleTick runs one frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.state.GameOver {
		return m, nil
	}

	result := m.game.Step(m.input.Poll())
	m.state = result.State

	if m.state.GameOver {
		m.input.Reset()
		m.logger.Info("game over", "score", m.state.Score, "reason", m.state.Reason)
		if m.sound != nil && m.state.Reason == core.EndCollision {
			m.sound.PlayCrash()
		}
		// Stop ticking; the score screen stays until the player exits
		return m, nil
	}

	return m, tickCmd(m.config.FrameDelay)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	out := RenderScreen(m.screen)
	if !m.state.GameOver {
		return out
	}

	// Footer replaces the bottom row of the score screen
	lines := strings.Split(out, "\n")
	lines[len(lines)-1] = m.help.View(gameOverKeys{exit: m.keys.Exit})
	return strings.Join(lines, "\n")
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.state
}

// Run starts the Bubble Tea program and blocks until the player exits.
// It returns the final game state.
func Run(game *rockfall.Game, cfg core.RuntimeConfig, opts Options) (core.GameState, error) {
	model, err := NewModel(game, cfg, opts)
	if err != nil {
		return core.GameState{}, err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return game.State(), fmt.Errorf("tui: %w", err)
	}
	if fm, ok := final.(Model); ok {
		return fm.State(), nil
	}
	return game.State(), nil
}
