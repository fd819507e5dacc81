package config

import (
	"fmt"
	"time"
)

// Round is the resolved setup for one game: board shape plus clock rules.
type Round struct {
	Size          int
	Palette       int
	InitialTime   time.Duration
	BonusPerPoint time.Duration
	MaxAttempts   int
}

// Round resolves the settings for a size×size board under a preset.
func (c Match3Config) Round(size int, preset DifficultyPreset) (Round, error) {
	if !c.HasSize(size) {
		return Round{}, fmt.Errorf("config: board size %d not offered (sizes %v)", size, c.Board.Sizes)
	}

	r := Round{
		Size:          size,
		Palette:       PaletteForSize(size),
		InitialTime:   time.Duration(c.Timer.InitialSeconds) * time.Second,
		BonusPerPoint: time.Duration(c.Timer.BonusMsPerPoint) * time.Millisecond,
		MaxAttempts:   c.Generation.MaxAttempts,
	}

	switch preset {
	case DifficultyEasy:
		if r.Palette > 2 {
			r.Palette--
		}
		r.InitialTime += 30 * time.Second
	case DifficultyHard:
		if (r.Palette+1)*(r.Palette+1) < size*size {
			r.Palette++
		}
		r.InitialTime -= min(15*time.Second, r.InitialTime/2)
	case DifficultyFixed:
		r.BonusPerPoint = 0
	}
	return r, nil
}

// HasSize reports whether size is one of the offered board sizes.
func (c Match3Config) HasSize(size int) bool {
	for _, s := range c.Board.Sizes {
		if s == size {
			return true
		}
	}
	return false
}
