package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/config"
	engine "github.com/vovakirdan/tui-match3/internal/match3"
)

var (
	flagAutoTurns   int
	flagAutoSize    int
	flagAutoPalette int
	flagAutoFirst   bool
	flagAutoDelay   time.Duration
)

var autoplayCmd = &cobra.Command{
	Use:   "autoplay",
	Short: "Watch the solver play",
	Long: `Play a number of turns without a UI, printing the board after every
turn and logging what each swap scored.

By default the solver picks the highest scoring swap. --first takes the
first legal swap in scan order instead, which is what the hint shows.

Examples:
  match3 autoplay
  match3 autoplay --turns 50 --size 9 --seed 7
  match3 autoplay --first --delay 500ms`,
	RunE: runAutoplay,
}

func init() {
	autoplayCmd.Flags().IntVar(&flagAutoTurns, "turns", 20, "Number of swaps to play")
	autoplayCmd.Flags().IntVar(&flagAutoSize, "size", 0, "Board size (0 = configured default)")
	autoplayCmd.Flags().IntVar(&flagAutoPalette, "palette", 0, "Tile kinds (0 = derived from the size)")
	autoplayCmd.Flags().BoolVar(&flagAutoFirst, "first", false, "Take the first legal swap instead of the best")
	autoplayCmd.Flags().DurationVar(&flagAutoDelay, "delay", 0, "Pause between turns")
}

type autoplayOptions struct {
	Size        int
	Palette     int
	Turns       int
	MaxAttempts int
	First       bool
	Seed        int64
	Delay       time.Duration
}

type autoplayResult struct {
	Turns         int
	Score         int
	BestWaves     int
	Regenerations int
}

func runAutoplay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	opts := autoplayOptions{
		Size:        flagAutoSize,
		Palette:     flagAutoPalette,
		Turns:       flagAutoTurns,
		MaxAttempts: cfg.Generation.MaxAttempts,
		First:       flagAutoFirst,
		Seed:        seed(),
		Delay:       flagAutoDelay,
	}
	if opts.Size == 0 {
		opts.Size = cfg.Board.DefaultSize
	}
	if opts.Palette == 0 {
		opts.Palette = config.PaletteForSize(opts.Size)
	}

	logger := newLogger("autoplay")
	logger.Info("starting", "size", opts.Size, "palette", opts.Palette, "seed", opts.Seed, "first", opts.First)

	res, err := autoplay(os.Stdout, logger, opts)
	if err != nil {
		return err
	}
	logger.Info("done",
		"turns", res.Turns,
		"score", res.Score,
		"longest_cascade", res.BestWaves,
		"regenerations", res.Regenerations,
	)
	return nil
}

// autoplay plays opts.Turns swaps on a fresh board and writes the board
// after each one to w.
func autoplay(w io.Writer, logger *log.Logger, opts autoplayOptions) (autoplayResult, error) {
	var res autoplayResult

	board, err := engine.New(opts.Size, opts.Size, opts.Palette,
		engine.WithSeed(opts.Seed),
		engine.WithMaxAttempts(opts.MaxAttempts),
		engine.WithMaxSize(max(opts.Size, engine.DefaultMaxSize)),
	)
	if err != nil {
		return res, err
	}

	r := engine.NewResolver(board, engine.WithLogger(logger))
	if err := r.Start(); err != nil {
		return res, err
	}
	fmt.Fprint(w, board)

	pick := r.BestMove
	if opts.First {
		pick = r.Hint
	}

	for n := 1; n <= opts.Turns; n++ {
		move, ok := pick()
		if !ok {
			return res, fmt.Errorf("autoplay: no legal move on a stable board")
		}

		turn, err := r.Apply(move.A, move.B)
		if err != nil {
			return res, err
		}

		res.Turns++
		res.Score += turn.Score
		res.BestWaves = max(res.BestWaves, len(turn.Waves))
		if turn.Regenerated {
			res.Regenerations++
		}

		logger.Info("turn",
			"n", n,
			"swap", fmt.Sprintf("%v<->%v", move.A, move.B),
			"waves", len(turn.Waves),
			"score", turn.Score,
			"total", res.Score,
			"regenerated", turn.Regenerated,
		)
		fmt.Fprintf(w, "\nTurn %d: %v <-> %v  +%d (total %d)\n", n, move.A, move.B, turn.Score, res.Score)
		fmt.Fprint(w, board)

		if opts.Delay > 0 {
			time.Sleep(opts.Delay)
		}
	}

	return res, nil
}
