package match3

import (
	"time"

	engine "github.com/vovakirdan/tui-match3/internal/match3"
)

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateAnimating   GameStateType = "animating"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the game state for determinism tests and replays.
type Snapshot struct {
	Tick     uint64
	Mode     string
	Size     int
	Palette  int
	Score    int
	Moves    int
	TimeLeft time.Duration
	Rows     []string
	Cursor   engine.Point
	Selected bool
	Auto     bool
	State    GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	case g.playback.active():
		state = StateAnimating
	}

	var rows []string
	if g.board != nil {
		for _, row := range g.board.Cells() {
			runes := make([]rune, len(row))
			for i, t := range row {
				runes[i] = t.Rune()
			}
			rows = append(rows, string(runes))
		}
	}

	return Snapshot{
		Tick:     g.tick,
		Mode:     string(g.mode),
		Size:     g.round.Size,
		Palette:  g.round.Palette,
		Score:    g.score,
		Moves:    g.moves,
		TimeLeft: g.TimeLeft(),
		Rows:     rows,
		Cursor:   g.cursor,
		Selected: g.selected,
		Auto:     g.auto,
		State:    state,
	}
}
