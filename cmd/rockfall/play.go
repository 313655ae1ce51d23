package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-rockfall/internal/audio"
	"github.com/vovakirdan/tui-rockfall/internal/config"
	"github.com/vovakirdan/tui-rockfall/internal/core"
	"github.com/vovakirdan/tui-rockfall/internal/games/rockfall"
	"github.com/vovakirdan/tui-rockfall/internal/platform/tcellui"
	"github.com/vovakirdan/tui-rockfall/internal/platform/tui"
)

const (
	backendTea   = "tea"
	backendTcell = "tcell"
)

func runPlay(cmd *cobra.Command, args []string) error {
	if flagBackend != backendTea && flagBackend != backendTcell {
		return fmt.Errorf("unknown backend %q (want %s or %s)", flagBackend, backendTea, backendTcell)
	}

	logger, closeLog := openLogger(flagLogPath)
	defer closeLog()

	gameCfg, source, err := config.LoadRockfall(flagConfig)
	if err != nil {
		return err
	}
	if source != config.SourceCustom && source != config.SourceUser {
		logger.Debug("using fallback config", "source", source)
	}

	cfg := runtimeConfig(gameCfg)
	logger.Info("session start",
		"width", cfg.ScreenW,
		"height", cfg.ScreenH,
		"seed", cfg.Seed,
		"backend", flagBackend,
		"config", source,
	)

	var sound *audio.Player
	if flagSound {
		sound = audio.NewPlayer()
		if err := sound.Init(); err != nil {
			logger.Warn("sound disabled", "error", err)
			sound = nil
		} else {
			defer sound.Close()
		}
	}

	game := rockfall.New(gameCfg)

	var state core.GameState
	switch flagBackend {
	case backendTcell:
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		state, err = tcellui.Run(ctx, game, cfg, tcellui.Options{Logger: logger, Sound: sound})
		if errors.Is(err, context.Canceled) {
			err = nil
		}
	default:
		state, err = tui.Run(game, cfg, tui.Options{Logger: logger, Sound: sound})
	}
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	logger.Info("session end", "score", state.Score, "reason", state.Reason)
	fmt.Fprintf(cmd.OutOrStdout(), "SCORE: %d\n", state.Score)
	return nil
}

// runtimeConfig sizes the play area from the terminal.
func runtimeConfig(gameCfg config.RockfallConfig) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.FrameDelay = gameCfg.FrameDelay()
	cfg.Seed = flagSeed
	return cfg
}

// openLogger opens the log file, creating its directory if needed.
// Logging is discarded when the file cannot be opened.
func openLogger(path string) (*log.Logger, func()) {
	f, err := openLogFile(path)
	if err != nil {
		return log.New(io.Discard), func() {}
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "rockfall",
		Level:           log.DebugLevel,
	})
	return logger, func() { _ = f.Close() }
}

func openLogFile(path string) (*os.File, error) {
	if path == "" {
		return nil, errors.New("no log path")
	}

	// Expand ~ to home directory
	if path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create directory: %w", err)
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}
