package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadMatch3 loads the match-3 configuration.
// Search order: customPath -> ~/.match3/configs/match3.yaml -> ./configs/match3.yaml -> embedded default
func LoadMatch3(customPath string) (Match3Config, error) {
	if customPath != "" {
		cfg := DefaultMatch3Config()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath("match3.yaml"); userCfgPath != "" {
		if cfg, ok := tryLoad(userCfgPath); ok {
			return cfg, nil
		}
	}

	if cfg, ok := tryLoad(filepath.Join("configs", "match3.yaml")); ok {
		return cfg, nil
	}

	cfg := DefaultMatch3Config()
	if err := yaml.Unmarshal(defaultMatch3YAML, &cfg); err != nil {
		return DefaultMatch3Config(), nil
	}
	return cfg, nil
}

// tryLoad reads an optional config file. Missing or broken files are skipped.
func tryLoad(path string) (Match3Config, bool) {
	cfg := DefaultMatch3Config()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	if cfg.Validate() != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".match3", "configs", filename)
}

// Validate checks that the configuration can produce playable boards.
func (c Match3Config) Validate() error {
	if len(c.Board.Sizes) == 0 {
		return fmt.Errorf("board.sizes is empty")
	}
	for _, s := range c.Board.Sizes {
		if s < 3 || s > c.Board.MaxSize {
			return fmt.Errorf("board size %d outside 3..%d", s, c.Board.MaxSize)
		}
		if p := PaletteForSize(s); p < 2 {
			return fmt.Errorf("board size %d leaves only %d tile kinds", s, p)
		}
	}
	if !c.HasSize(c.Board.DefaultSize) {
		return fmt.Errorf("board.default_size %d not in sizes %v", c.Board.DefaultSize, c.Board.Sizes)
	}
	if c.Generation.MaxAttempts <= 0 {
		return fmt.Errorf("generation.max_attempts must be positive")
	}
	if c.Timer.InitialSeconds <= 0 {
		return fmt.Errorf("timer.initial_seconds must be positive")
	}
	if c.Scoring.HintPenaltyDivisor <= 0 {
		return fmt.Errorf("scoring.hint_penalty_divisor must be positive")
	}
	return nil
}
