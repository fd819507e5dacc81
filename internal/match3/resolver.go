package match3

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"
)

// State is the resolver's position in the turn cycle.
type State int

const (
	// StateStable: no match on the board and at least one legal move.
	StateStable State = iota
	// StateResolving: clearing matches and refilling until none remain.
	StateResolving
	// StateStuck: resolution finished with no legal move left.
	StateStuck
	// StateRegenerating: the whole board is being cleared and refilled.
	StateRegenerating
)

func (s State) String() string {
	switch s {
	case StateStable:
		return "stable"
	case StateResolving:
		return "resolving"
	case StateStuck:
		return "stuck"
	case StateRegenerating:
		return "regenerating"
	default:
		return "unknown"
	}
}

// Phase labels a Frame for playback.
type Phase int

const (
	PhaseSwap Phase = iota
	PhaseSwapBack
	PhaseClear
	PhaseFall
	PhaseRegenerate
)

func (p Phase) String() string {
	switch p {
	case PhaseSwap:
		return "swap"
	case PhaseSwapBack:
		return "swap-back"
	case PhaseClear:
		return "clear"
	case PhaseFall:
		return "fall"
	case PhaseRegenerate:
		return "regenerate"
	default:
		return "unknown"
	}
}

// Frame is a board snapshot taken at one step of a turn. Points are the
// cells the step touched, for highlighting.
type Frame struct {
	Phase  Phase
	Cells  [][]Tile
	Points []Point
}

// Wave is one round of simultaneous matches within a turn.
type Wave struct {
	Matches []Group
	Score   int
}

// Turn is the full record of one applied swap.
type Turn struct {
	Move        Move
	Valid       bool
	Waves       []Wave
	Frames      []Frame
	Regenerated bool
	Score       int
}

// Resolver drives a Board through the swap, cascade and regeneration cycle.
type Resolver struct {
	board  *Board
	state  State
	logger *log.Logger
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithLogger sets the logger used for refill fallbacks and generation
// failures.
func WithLogger(l *log.Logger) ResolverOption {
	return func(r *Resolver) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewResolver wraps b. The board is not modified until Start, Apply,
// Resolve or Regenerate is called.
func NewResolver(b *Board, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		board:  b,
		state:  StateStable,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Board returns the board the resolver owns.
func (r *Resolver) Board() *Board { return r.board }

// State returns the current state.
func (r *Resolver) State() State { return r.state }

// Start clears the board and fills it to a stable state.
func (r *Resolver) Start() error {
	return r.Regenerate()
}

// Regenerate clears the whole board and repopulates it with both steady
// state guarantees. Failure leaves the resolver in StateRegenerating.
func (r *Resolver) Regenerate() error {
	r.state = StateRegenerating
	r.board.Clear()
	if _, err := r.board.Populate(FullPopulate()); err != nil {
		r.logger.Error("board regeneration failed",
			"cols", r.board.cols, "rows", r.board.rows, "palette", r.board.palette, "err", err)
		return err
	}
	r.state = StateStable
	return nil
}

// Hint returns the first legal move in scan order.
func (r *Resolver) Hint() (Move, bool) {
	return r.board.FindAPlay()
}

// BestMove returns the highest scoring legal move.
func (r *Resolver) BestMove() (Move, bool) {
	return r.board.FindBetterPlay()
}

// Apply swaps a and c and resolves the resulting cascade. A swap of
// non-adjacent cells, or one that makes no match, leaves the board unchanged
// and returns a Turn with Valid false and a nil error.
func (r *Resolver) Apply(a, c Point) (Turn, error) {
	turn := Turn{Move: Move{A: a, B: c}}
	if r.board.OutOfBounds(a) || r.board.OutOfBounds(c) || !a.Adjacent(c) {
		return turn, nil
	}

	matches := r.board.swapMatches(a, c)
	r.board.Swap(a, c)
	turn.Frames = append(turn.Frames, r.frame(PhaseSwap, a, c))
	if len(matches) == 0 {
		r.board.Swap(a, c)
		turn.Frames = append(turn.Frames, r.frame(PhaseSwapBack, a, c))
		return turn, nil
	}

	turn.Valid = true
	turn.Move.Matches = matches
	err := r.resolve(&turn)
	return turn, err
}

// Resolve runs the cascade on the board as it stands, then regenerates if
// no legal move is left. It is used after the board was edited directly.
func (r *Resolver) Resolve() (Turn, error) {
	var turn Turn
	err := r.resolve(&turn)
	return turn, err
}

func (r *Resolver) resolve(turn *Turn) error {
	r.state = StateResolving
	if err := r.refill(turn); err != nil {
		return err
	}
	for wave := 0; ; wave++ {
		matches := r.board.ValidGroups()
		if len(matches) == 0 {
			break
		}
		score := Score(matches) + CascadeBonus(wave)
		turn.Waves = append(turn.Waves, Wave{Matches: matches, Score: score})
		turn.Score += score

		points := Points(matches)
		turn.Frames = append(turn.Frames, r.frame(PhaseClear, points...))
		r.board.ClearPoints(points)
		if err := r.refill(turn); err != nil {
			return err
		}
	}

	if r.board.hasPlay() {
		r.state = StateStable
		return nil
	}

	r.state = StateStuck
	r.logger.Debug("no legal move left, regenerating")
	if err := r.Regenerate(); err != nil {
		return err
	}
	turn.Regenerated = true
	turn.Frames = append(turn.Frames, r.frame(PhaseRegenerate))
	return nil
}

// refill alternates gravity and top-row population until the board is full.
func (r *Resolver) refill(turn *Turn) error {
	for !r.board.IsFull() {
		moved := r.board.ShiftDown()
		filled, err := r.board.Populate(TopRow(true))
		if errors.Is(err, ErrGenerationFailed) {
			r.logger.Warn("top row refill without match avoidance", "err", err)
			filled, err = r.board.Populate(TopRow(false))
		}
		if err != nil {
			return err
		}
		turn.Frames = append(turn.Frames, r.frame(PhaseFall, append(moved, filled...)...))
	}
	return nil
}

func (r *Resolver) frame(phase Phase, points ...Point) Frame {
	return Frame{Phase: phase, Cells: r.board.Cells(), Points: points}
}
