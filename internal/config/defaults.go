package config

import (
	_ "embed"
)

//go:embed defaults/rockfall.yaml
var defaultRockfallYAML []byte

// DefaultRockfallConfig returns the hardcoded default configuration.
func DefaultRockfallConfig() RockfallConfig {
	return RockfallConfig{
		Frame: FrameConfig{
			DelayMS: 10,
			Cadence: 10,
		},
		Player: PlayerConfig{
			Shape:        []string{"*"},
			Step:         2,
			BottomOffset: 10,
		},
		Obstacles: ObstacleConfig{
			Shape:       []string{"O"},
			DescendStep: 1,
		},
		HUD: HUDConfig{
			ScoreX: 5,
			ScoreY: 2,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultRockfallYAML
}
