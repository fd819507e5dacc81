// Package match3 is the playable match-3 game built on the engine in
// internal/match3. It registers a time attack mode and an untimed zen mode.
package match3

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/core"
	engine "github.com/vovakirdan/tui-match3/internal/match3"
	"github.com/vovakirdan/tui-match3/internal/registry"
)

// Mode selects the ruleset.
type Mode string

const (
	ModeTimeAttack Mode = "time_attack"
	ModeZen        Mode = "zen"
)

// autoDelay is the pause between autoplay moves, in ticks.
const autoDelay = 20

// Game implements registry.Game for match-3.
type Game struct {
	mode   Mode
	cfg    config.Match3Config
	size   int
	preset config.DifficultyPreset
	round  config.Round

	resolver *engine.Resolver
	board    *engine.Board
	tick     uint64
	tickRate int

	score    int
	moves    int
	bestWave int

	// The clock is kept as a budget minus elapsed ticks so that it never
	// drifts from integer division of a second.
	budget     time.Duration
	clockTicks int

	cursor    engine.Point
	selected  bool
	selection engine.Point

	hint        *engine.Move
	hintTicks   int
	hintPending bool

	auto      bool
	autoTicks int

	playback playback

	message      string
	messageTicks int

	// highRank is the high score table place of a finished round, 0 if
	// it did not make the table.
	highRank int

	screenW  int
	screenH  int
	gameOver bool
	paused   bool
	tooSmall bool
	err      error
}

// New creates a time attack game with the default configuration.
func New() *Game {
	return newGame(ModeTimeAttack)
}

// NewZen creates an untimed game.
func NewZen() *Game {
	return newGame(ModeZen)
}

func newGame(mode Mode) *Game {
	cfg := config.DefaultMatch3Config()
	return &Game{
		mode:   mode,
		cfg:    cfg,
		size:   cfg.Board.DefaultSize,
		preset: config.DifficultyNormal,
	}
}

func init() {
	registry.Register("match3", func() registry.Game {
		return New()
	})
	registry.Register("match3_zen", func() registry.Game {
		return NewZen()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeZen {
		return "match3_zen"
	}
	return "match3"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeZen {
		return "Match-3 (Zen)"
	}
	return "Match-3 (Time Attack)"
}

// SetConfig replaces the configuration used by the next Reset. The board
// size falls back to the configured default if it is no longer offered.
func (g *Game) SetConfig(cfg config.Match3Config) {
	g.cfg = cfg
	if !cfg.HasSize(g.size) {
		g.size = cfg.Board.DefaultSize
	}
}

// Configure selects the board size and difficulty preset for the next Reset.
func (g *Game) Configure(size int, preset string) error {
	p := config.ParsePreset(preset)
	if _, err := g.cfg.Round(size, p); err != nil {
		return err
	}
	g.size = size
	g.preset = p
	return nil
}

// SetBoardSize selects a size×size board for the next Reset.
func (g *Game) SetBoardSize(size int) error {
	return g.Configure(size, string(g.preset))
}

// Sizes lists the board sizes on offer.
func (g *Game) Sizes() []int {
	return g.cfg.Board.Sizes
}

// ScoreKey keeps high scores per board size.
func (g *Game) ScoreKey() string {
	return fmt.Sprintf("%dx%d", g.size, g.size)
}

// Reset starts a new round with a fresh board.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	*g = Game{
		mode:     g.mode,
		cfg:      g.cfg,
		size:     g.size,
		preset:   g.preset,
		screenW:  cfg.ScreenW,
		screenH:  cfg.ScreenH,
		tickRate: cfg.TickRate,
	}
	if g.tickRate <= 0 {
		g.tickRate = 60
	}

	round, err := g.cfg.Round(g.size, g.preset)
	if err != nil {
		g.fail(err)
		return
	}
	g.round = round
	g.budget = round.InitialTime

	board, err := engine.New(round.Size, round.Size, round.Palette,
		engine.WithSeed(cfg.Seed),
		engine.WithMaxAttempts(round.MaxAttempts),
		engine.WithMaxSize(g.cfg.Board.MaxSize),
	)
	if err != nil {
		g.fail(err)
		return
	}
	g.board = board
	g.resolver = engine.NewResolver(board)
	if err := g.resolver.Start(); err != nil {
		g.fail(err)
		return
	}

	g.cursor = engine.P(round.Size/2, round.Size/2)
	g.checkScreenSize()
}

// fail ends the round on an engine error.
func (g *Game) fail(err error) {
	g.err = err
	g.gameOver = true
	if errors.Is(err, engine.ErrGenerationFailed) {
		g.message = "Could not generate a board"
	} else {
		g.message = err.Error()
	}
}

// Err returns the error that ended the round, if any.
func (g *Game) Err() error {
	return g.err
}

// SetHighScore records the table place the finished round took.
func (g *Game) SetHighScore(rank int) {
	g.highRank = rank
}

// Resize keeps the round and only rechecks whether the board still fits.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

func (g *Game) checkScreenSize() {
	w, h := g.layoutSize()
	g.tooSmall = g.screenW < w || g.screenH < h
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall || g.board == nil {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}
	if g.paused || g.gameOver {
		return core.StepResult{State: g.State()}
	}

	if g.messageTicks > 0 {
		g.messageTicks--
		if g.messageTicks == 0 {
			g.message = ""
		}
	}

	if g.mode == ModeTimeAttack {
		g.clockTicks++
		if g.TimeLeft() <= 0 {
			g.gameOver = true
			g.showMessage("Time's up!", 0)
			return core.StepResult{State: g.State()}
		}
	}

	if g.playback.active() {
		g.playback.step()
		return core.StepResult{State: g.State()}
	}

	if g.hintTicks > 0 {
		g.hintTicks--
		if g.hintTicks == 0 {
			g.hint = nil
		}
	}

	if in.Has(core.ActionAuto) {
		g.auto = !g.auto
		g.autoTicks = 0
		g.selected = false
	}

	var scored int
	if g.auto {
		scored = g.stepAuto()
	} else {
		scored = g.handleInput(in)
	}

	return core.StepResult{State: g.State(), Scored: scored}
}

// stepAuto plays the best move every autoDelay ticks.
func (g *Game) stepAuto() int {
	g.autoTicks++
	if g.autoTicks < autoDelay {
		return 0
	}
	g.autoTicks = 0

	m, ok := g.resolver.BestMove()
	if !ok {
		return 0
	}
	g.cursor = m.B
	return g.play(m.A, m.B)
}

// handleInput moves the cursor, manages the selection and plays swaps.
func (g *Game) handleInput(in core.InputFrame) int {
	if in.Has(core.ActionHint) {
		g.showHint()
		return 0
	}

	if dir, ok := direction(in); ok {
		if g.selected {
			target := g.selection.Add(dir)
			g.selected = false
			if g.board.OutOfBounds(target) {
				return 0
			}
			g.cursor = target
			return g.play(g.selection, target)
		}
		next := g.cursor.Add(dir)
		if !g.board.OutOfBounds(next) {
			g.cursor = next
		}
		return 0
	}

	if in.Has(core.ActionSelect) || in.Has(core.ActionConfirm) {
		switch {
		case !g.selected:
			g.selected = true
			g.selection = g.cursor
		case g.selection == g.cursor:
			g.selected = false
		case g.selection.Adjacent(g.cursor):
			g.selected = false
			return g.play(g.selection, g.cursor)
		default:
			g.selection = g.cursor
		}
	}
	return 0
}

func direction(in core.InputFrame) (engine.Point, bool) {
	switch {
	case in.Has(core.ActionUp):
		return engine.P(0, -1), true
	case in.Has(core.ActionDown):
		return engine.P(0, 1), true
	case in.Has(core.ActionLeft):
		return engine.P(-1, 0), true
	case in.Has(core.ActionRight):
		return engine.P(1, 0), true
	}
	return engine.Point{}, false
}

// showHint highlights a legal move. The next move's first wave is penalized.
func (g *Game) showHint() {
	m, ok := g.resolver.Hint()
	if !ok {
		return
	}
	g.hint = &m
	g.hintTicks = g.cfg.Animation.Hint
	g.hintPending = true
}

// play applies a swap, queues its frames and returns the points earned.
func (g *Game) play(a, b engine.Point) int {
	turn, err := g.resolver.Apply(a, b)
	if err != nil {
		g.fail(err)
		return 0
	}
	g.hint = nil
	g.hintTicks = 0
	g.playback.start(turn.Frames, g.cfg.Animation)

	if !turn.Valid {
		g.showMessage("No match", g.cfg.Animation.Invalid*3)
		return 0
	}

	gained := 0
	for i, w := range turn.Waves {
		s := w.Score
		if i == 0 && g.hintPending {
			s /= g.cfg.Scoring.HintPenaltyDivisor
		}
		gained += s
	}
	g.bestWave = max(g.bestWave, len(turn.Waves))
	g.hintPending = false
	g.moves++
	g.score += gained
	if g.mode == ModeTimeAttack {
		g.budget += time.Duration(gained) * g.round.BonusPerPoint
	}

	switch {
	case turn.Regenerated:
		g.showMessage("No moves left, new board", g.tickRate*2)
	case len(turn.Waves) > 1:
		g.showMessage(fmt.Sprintf("+%d  cascade x%d", gained, len(turn.Waves)), g.tickRate)
	default:
		g.showMessage(fmt.Sprintf("+%d", gained), g.tickRate/2)
	}
	return gained
}

func (g *Game) showMessage(msg string, ticks int) {
	g.message = msg
	g.messageTicks = ticks
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused || g.tooSmall,
	}
}

// TimeLeft returns the remaining time attack clock.
func (g *Game) TimeLeft() time.Duration {
	elapsed := time.Duration(g.clockTicks) * time.Second / time.Duration(max(g.tickRate, 1))
	return max(g.budget-elapsed, 0)
}
