package config

import (
	_ "embed"
)

//go:embed defaults/match3.yaml
var defaultMatch3YAML []byte

// DefaultMatch3Config returns the built-in configuration. It matches the
// embedded defaults/match3.yaml.
func DefaultMatch3Config() Match3Config {
	return Match3Config{
		Board: BoardConfig{
			Sizes:       []int{5, 6, 7, 8, 9, 10, 11, 12, 13},
			DefaultSize: 7,
			MaxSize:     27,
		},
		Generation: GenerationConfig{
			MaxAttempts: 1000,
		},
		Timer: TimerConfig{
			InitialSeconds:  60,
			BonusMsPerPoint: 100,
		},
		Animation: AnimationConfig{
			Swap:    8,
			Clear:   12,
			Fall:    6,
			Hint:    90,
			Invalid: 10,
		},
		Scoring: ScoringConfig{
			HintPenaltyDivisor: 2,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultMatch3YAML
}
