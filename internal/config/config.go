// Package config loads the YAML configuration for the match-3 game and
// applies difficulty presets to it.
package config

// Match3Config contains all tunables for the match-3 game.
type Match3Config struct {
	Board      BoardConfig      `yaml:"board"`
	Generation GenerationConfig `yaml:"generation"`
	Timer      TimerConfig      `yaml:"timer"`
	Animation  AnimationConfig  `yaml:"animation"`
	Scoring    ScoringConfig    `yaml:"scoring"`
}

// BoardConfig lists the square board sizes offered to the player.
type BoardConfig struct {
	Sizes       []int `yaml:"sizes"`
	DefaultSize int   `yaml:"default_size"`
	MaxSize     int   `yaml:"max_size"`
}

// GenerationConfig bounds board generation.
type GenerationConfig struct {
	MaxAttempts int `yaml:"max_attempts"`
}

// TimerConfig drives the time attack clock.
type TimerConfig struct {
	InitialSeconds  int `yaml:"initial_seconds"`
	BonusMsPerPoint int `yaml:"bonus_ms_per_point"`
}

// AnimationConfig holds how many ticks each playback phase lasts.
type AnimationConfig struct {
	Swap    int `yaml:"swap"`
	Clear   int `yaml:"clear"`
	Fall    int `yaml:"fall"`
	Hint    int `yaml:"hint"`
	Invalid int `yaml:"invalid"`
}

// ScoringConfig adjusts scoring rules.
type ScoringConfig struct {
	// HintPenaltyDivisor divides the first wave of a move made after a hint.
	HintPenaltyDivisor int `yaml:"hint_penalty_divisor"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the presets in menu order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// ParsePreset returns the preset named s, or normal for anything unknown.
func ParsePreset(s string) DifficultyPreset {
	for _, p := range Presets {
		if string(p) == s {
			return p
		}
	}
	return DifficultyNormal
}

// PaletteForSize returns how many tile kinds a size×size board uses:
// one fewer than the size, and one fewer again above 7 and above 10.
func PaletteForSize(size int) int {
	palette := size - 1
	if size > 7 {
		palette--
	}
	if size > 10 {
		palette--
	}
	return palette
}
