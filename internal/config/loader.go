package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadFrogger loads Frogger configuration.
// Search order: customPath -> ~/.arcade/configs/frogger.yaml -> ./configs/frogger.yaml -> embedded default
// Keys missing from a file keep their default values.
func LoadFrogger(customPath string) (FroggerConfig, error) {
	cfg := DefaultFroggerConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("frogger.yaml"); userCfgPath != "" {
		if fileCfg, ok := readOptional(userCfgPath); ok {
			return fileCfg, nil
		}
	}

	// Try local configs directory
	if fileCfg, ok := readOptional(filepath.Join("configs", "frogger.yaml")); ok {
		return fileCfg, nil
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultFroggerYAML, &cfg); err != nil {
		return DefaultFroggerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// readOptional parses a config file that may not exist. Unreadable or
// malformed files are skipped.
func readOptional(path string) (FroggerConfig, bool) {
	cfg := DefaultFroggerConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyFroggerPreset adjusts lives and traffic density for a difficulty preset.
// Lane speeds are not affected.
func ApplyFroggerPreset(cfg *FroggerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Hero.Lives = 5
		cfg.Layout.VehicleColumns = 3
	case DifficultyNormal:
		def := DefaultFroggerConfig()
		cfg.Hero.Lives = def.Hero.Lives
		cfg.Layout = def.Layout
	case DifficultyHard:
		cfg.Hero.Lives = 2
		cfg.Layout.RaftRepetitions = 1
	}
}
