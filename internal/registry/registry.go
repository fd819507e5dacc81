// Package registry maps game IDs to factories. Game packages register
// themselves in init(), so the platform can list and create game modes
// without importing them directly.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-match3/internal/core"
)

// Game is implemented by every playable mode. Games hold pure logic; the
// platform does input mapping, timing and rendering.
type Game interface {
	// ID is the unique identifier used on the command line and in storage.
	ID() string

	// Title is the human-readable name.
	Title() string

	// Reset starts a new round.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state. The screen is cleared beforehand.
	Render(dst *core.Screen)

	// State returns the current score and status.
	State() core.GameState
}

// ScoreKeyer is implemented by games that keep separate high score
// tables per variant, such as board size.
type ScoreKeyer interface {
	// ScoreKey returns the variant the current round is scored under.
	ScoreKey() string
}

// Configurable is implemented by games that offer board sizes and
// difficulty presets chosen before Reset.
type Configurable interface {
	// Configure selects the board size and preset for the next Reset.
	Configure(size int, preset string) error
	// Sizes lists the board sizes on offer.
	Sizes() []int
}

// Resizer is implemented by games that keep their round when the
// terminal is resized. Other games are restarted.
type Resizer interface {
	Resize(w, h int)
}

// HighScorer is implemented by games that show on their game over screen
// when a round made the high score table.
type HighScorer interface {
	// SetHighScore reports the rank the finished round took in its table.
	SetHighScore(rank int)
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new game instance.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory. It panics on a duplicate ID.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns all registered games sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a game by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}

// Exists reports whether a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// ScoreKey returns the variant g is scored under, or "" when g keeps a
// single table.
func ScoreKey(g Game) string {
	if k, ok := g.(ScoreKeyer); ok {
		return k.ScoreKey()
	}
	return ""
}
