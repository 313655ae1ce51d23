package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Source names where a configuration came from.
type Source string

const (
	SourceCustom   Source = "custom"
	SourceUser     Source = "user"
	SourceLocal    Source = "local"
	SourceEmbedded Source = "embedded"
	SourceBuiltin  Source = "builtin"
)

const configFile = "rockfall.yaml"

// LoadRockfall loads the game configuration.
// Search order: customPath -> ~/.rockfall/configs/rockfall.yaml -> ./configs/rockfall.yaml -> embedded default
// A custom path that cannot be read, parsed or validated is an error; the
// other locations are skipped when unusable.
func LoadRockfall(customPath string) (RockfallConfig, Source, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, SourceCustom, err
		}
		return cfg, SourceCustom, nil
	}

	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		if cfg, err := loadFile(userCfgPath); err == nil {
			return cfg, SourceUser, nil
		}
	}

	if cfg, err := loadFile(filepath.Join("configs", configFile)); err == nil {
		return cfg, SourceLocal, nil
	}

	if cfg, err := parse(defaultRockfallYAML, "embedded default"); err == nil {
		return cfg, SourceEmbedded, nil
	}
	return DefaultRockfallConfig(), SourceBuiltin, nil
}

// loadFile reads, parses and validates a YAML config file.
func loadFile(path string) (RockfallConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RockfallConfig{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	return parse(data, path)
}

// parse decodes YAML on top of the builtin defaults, so a file only needs
// the keys it changes.
func parse(data []byte, name string) (RockfallConfig, error) {
	cfg := DefaultRockfallConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", name, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", name, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".rockfall", "configs", filename)
}
