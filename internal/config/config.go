// Package config provides YAML-based game configuration loading for rockfall.
package config

import (
	"errors"
	"fmt"
	"time"
)

// RockfallConfig contains all configuration for the game.
type RockfallConfig struct {
	Frame     FrameConfig    `yaml:"frame"`
	Player    PlayerConfig   `yaml:"player"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
	HUD       HUDConfig      `yaml:"hud"`
}

// FrameConfig defines loop timing.
type FrameConfig struct {
	DelayMS int `yaml:"delay_ms"` // Pause between frames in milliseconds
	Cadence int `yaml:"cadence"`  // Obstacles advance on frames where score % cadence == 0
}

// PlayerConfig defines the player sprite and movement.
type PlayerConfig struct {
	Shape        []string `yaml:"shape"`
	Step         int      `yaml:"step"`          // Cells moved per left/right press
	BottomOffset int      `yaml:"bottom_offset"` // Start row counted up from the bottom edge
}

// ObstacleConfig defines falling obstacles.
type ObstacleConfig struct {
	Shape       []string `yaml:"shape"`
	DescendStep int      `yaml:"descend_step"` // Rows fallen per obstacle tick
}

// HUDConfig places the in-game score readout.
type HUDConfig struct {
	ScoreX int `yaml:"score_x"`
	ScoreY int `yaml:"score_y"`
}

// FrameDelay returns the frame delay as a duration.
func (c RockfallConfig) FrameDelay() time.Duration {
	return time.Duration(c.Frame.DelayMS) * time.Millisecond
}

// Validate checks that the configuration can drive a game.
func (c RockfallConfig) Validate() error {
	var errs []error

	if c.Frame.DelayMS <= 0 {
		errs = append(errs, fmt.Errorf("frame.delay_ms must be positive, got %d", c.Frame.DelayMS))
	}
	if c.Frame.Cadence < 1 {
		errs = append(errs, fmt.Errorf("frame.cadence must be at least 1, got %d", c.Frame.Cadence))
	}
	if c.Player.Step <= 0 {
		errs = append(errs, fmt.Errorf("player.step must be positive, got %d", c.Player.Step))
	}
	if c.Player.BottomOffset < 0 {
		errs = append(errs, fmt.Errorf("player.bottom_offset must not be negative, got %d", c.Player.BottomOffset))
	}
	if c.Obstacles.DescendStep <= 0 {
		errs = append(errs, fmt.Errorf("obstacles.descend_step must be positive, got %d", c.Obstacles.DescendStep))
	}
	if !validShape(c.Player.Shape) {
		errs = append(errs, errors.New("player.shape must have at least one non-empty row"))
	}
	if !validShape(c.Obstacles.Shape) {
		errs = append(errs, errors.New("obstacles.shape must have at least one non-empty row"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

func validShape(rows []string) bool {
	if len(rows) == 0 {
		return false
	}
	for _, r := range rows {
		if r == "" {
			return false
		}
	}
	return true
}
