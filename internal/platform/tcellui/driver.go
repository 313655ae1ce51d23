package tcellui

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-rockfall/internal/audio"
	"github.com/vovakirdan/tui-rockfall/internal/core"
	"github.com/vovakirdan/tui-rockfall/internal/games/rockfall"
)

// Options carries the optional collaborators of a session.
type Options struct {
	Logger *log.Logger
	Sound  *audio.Player // nil disables sound
}

// Driver runs the frame loop on a tcell screen.
// All game and queue access happens on the goroutine calling Run; a separate
// goroutine only forwards terminal events.
type Driver struct {
	screen  tcell.Screen
	game    *rockfall.Game
	input   *core.InputQueue
	config  core.RuntimeConfig
	state   core.GameState
	logger  *log.Logger
	sound   *audio.Player
	aborted bool // ctrl+c seen
	exit    bool // exit key seen on the score screen
}

// NewDriver starts a new game on an initialized screen.
// A zero seed is replaced with a time-based one.
func NewDriver(screen tcell.Screen, game *rockfall.Game, cfg core.RuntimeConfig, opts Options) (*Driver, error) {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	screen.Clear()
	if err := game.Reset(cfg, NewSurface(screen)); err != nil {
		return nil, fmt.Errorf("tcellui: cannot start game: %w", err)
	}

	return &Driver{
		screen: screen,
		game:   game,
		input:  core.NewInputQueue(core.DefaultInputCapacity),
		config: cfg,
		state:  game.State(),
		logger: logger,
		sound:  opts.Sound,
	}, nil
}

// HandleEvent feeds one terminal event into the driver.
func (d *Driver) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		d.HandleKey(ev.Key(), ev.Rune())
	case *tcell.EventResize:
		w, h := ev.Size()
		d.logger.Debug("ignoring resize", "width", w, "height", h)
	}
}

// HandleKey queues the action for a key press, or records an exit request
// once the game is over.
func (d *Driver) HandleKey(k tcell.Key, r rune) {
	if k == tcell.KeyCtrlC {
		d.aborted = true
		return
	}

	if d.state.GameOver {
		if isExitKey(k, r) {
			d.exit = true
		}
		return
	}

	if action := DecodeKey(k, r); action != core.ActionNone {
		if !d.input.Push(action) {
			d.logger.Debug("input queue full, dropping key", "action", action)
		}
	}
}

// Frame runs a single frame, consuming at most one queued action.
// It is a no-op once the game is over.
func (d *Driver) Frame() core.StepResult {
	if d.state.GameOver {
		return core.StepResult{State: d.state}
	}

	result := d.game.Step(d.input.Poll())
	d.state = result.State

	if d.state.GameOver {
		d.input.Reset()
		d.logger.Info("game over", "score", d.state.Score, "reason", d.state.Reason)
		if d.sound != nil && d.state.Reason == core.EndCollision {
			d.sound.PlayCrash()
		}
	}
	return result
}

// Done reports whether the session should end.
func (d *Driver) Done() bool {
	return d.aborted || (d.state.GameOver && d.exit)
}

// State returns the last observed game state.
func (d *Driver) State() core.GameState {
	return d.state
}

// Run drives frames until the player dismisses the score screen, presses
// ctrl+c, or ctx is cancelled. It returns the final game state.
func (d *Driver) Run(ctx context.Context) (core.GameState, error) {
	events := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)

	go func() {
		for {
			ev := d.screen.PollEvent()
			if ev == nil {
				// Screen finalized
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	delay := d.config.FrameDelay
	if delay <= 0 {
		delay = time.Millisecond
	}
	ticker := time.NewTicker(delay)
	defer ticker.Stop()

	for !d.Done() {
		select {
		case <-ctx.Done():
			return d.state, ctx.Err()
		case ev := <-events:
			d.HandleEvent(ev)
		case <-ticker.C:
			if !d.state.GameOver {
				d.Frame()
			}
		}
	}
	return d.state, nil
}

// Run opens the terminal, plays one game and restores the terminal.
// The play area is the terminal size at startup unless cfg sets one.
func Run(ctx context.Context, game *rockfall.Game, cfg core.RuntimeConfig, opts Options) (core.GameState, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return core.GameState{}, fmt.Errorf("tcellui: %w", err)
	}
	if err := screen.Init(); err != nil {
		return core.GameState{}, fmt.Errorf("tcellui: %w", err)
	}
	defer screen.Fini()

	screen.HideCursor()
	if cfg.ScreenW <= 0 || cfg.ScreenH <= 0 {
		cfg.ScreenW, cfg.ScreenH = screen.Size()
	}

	d, err := NewDriver(screen, game, cfg, opts)
	if err != nil {
		return core.GameState{}, err
	}
	return d.Run(ctx)
}
