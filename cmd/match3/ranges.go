package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	engine "github.com/vovakirdan/tui-match3/internal/match3"
)

var (
	flagRangesMax      int
	flagRangesTrials   int
	flagRangesAttempts int
)

var rangesCmd = &cobra.Command{
	Use:   "ranges",
	Short: "Report which board shapes and palettes generate",
	Long: `Sweep board shapes from 3x3 up to --max on each side and every palette
size allowed on them, generating --trials boards per combination.

A combination is reported as exhausted when any trial spends the whole
restart budget without finding a board that has no match and at least
one legal move. Larger palettes on the same shape are then skipped.

Examples:
  match3 ranges
  match3 ranges --max 6 --trials 50
  match3 ranges --attempts 100`,
	RunE: runRanges,
}

func init() {
	rangesCmd.Flags().IntVar(&flagRangesMax, "max", 10, "Largest side length to try")
	rangesCmd.Flags().IntVar(&flagRangesTrials, "trials", 20, "Boards generated per combination")
	rangesCmd.Flags().IntVar(&flagRangesAttempts, "attempts", engine.DefaultMaxAttempts, "Restart budget per board")
}

// rangeResult is the outcome of one shape and palette combination.
type rangeResult struct {
	Cols      int
	Rows      int
	Palette   int
	Trials    int
	Generated int
}

// Exhausted reports whether any trial failed.
func (r rangeResult) Exhausted() bool {
	return r.Generated < r.Trials
}

func runRanges(_ *cobra.Command, _ []string) error {
	if flagRangesMax < engine.MinSize {
		return fmt.Errorf("--max must be at least %d", engine.MinSize)
	}
	logger := newLogger("ranges")
	logger.Info("sweeping", "max", flagRangesMax, "trials", flagRangesTrials, "attempts", flagRangesAttempts)

	largest := make(map[[2]int]int)
	err := sweepRanges(flagRangesMax, flagRangesTrials, flagRangesAttempts, seed(), func(r rangeResult) {
		if r.Exhausted() {
			logger.Warn("exhausted",
				"rows", r.Rows, "cols", r.Cols, "area", r.Cols*r.Rows,
				"palette", r.Palette, "generated", r.Generated, "trials", r.Trials)
			return
		}
		logger.Info("generated",
			"rows", r.Rows, "cols", r.Cols, "area", r.Cols*r.Rows, "palette", r.Palette)
		largest[[2]int{r.Rows, r.Cols}] = r.Palette
	})
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("Largest palette that always generated (rows down, cols across):")
	fmt.Print("    ")
	for cols := engine.MinSize; cols <= flagRangesMax; cols++ {
		fmt.Printf("%4d", cols)
	}
	fmt.Println()
	for rows := engine.MinSize; rows <= flagRangesMax; rows++ {
		fmt.Printf("%4d", rows)
		for cols := engine.MinSize; cols <= flagRangesMax; cols++ {
			if p, ok := largest[[2]int{rows, cols}]; ok {
				fmt.Printf("%4d", p)
			} else {
				fmt.Printf("%4s", "-")
			}
		}
		fmt.Println()
	}
	return nil
}

// sweepRanges generates boards for every shape up to maxSide and every
// palette with palette² < area, calling report once per combination. Any
// error other than exhausting the restart budget stops the sweep.
func sweepRanges(maxSide, trials, attempts int, seed int64, report func(rangeResult)) error {
	src := engine.NewSource(seed)

	for rows := engine.MinSize; rows <= maxSide; rows++ {
		for cols := engine.MinSize; cols <= maxSide; cols++ {
			for palette := 2; palette*palette < cols*rows; palette++ {
				res := rangeResult{Cols: cols, Rows: rows, Palette: palette, Trials: trials}
				for range trials {
					ok, err := generateOnce(cols, rows, palette, attempts, src, maxSide)
					if err != nil {
						return err
					}
					if !ok {
						break
					}
					res.Generated++
				}
				report(res)
				if res.Exhausted() {
					break
				}
			}
		}
	}
	return nil
}

func generateOnce(cols, rows, palette, attempts int, src engine.Source, maxSide int) (bool, error) {
	b, err := engine.New(cols, rows, palette,
		engine.WithSource(src),
		engine.WithMaxAttempts(attempts),
		engine.WithMaxSize(max(maxSide, engine.DefaultMaxSize)),
	)
	if err != nil {
		return false, err
	}
	if _, err := b.Populate(engine.FullPopulate()); err != nil {
		if errors.Is(err, engine.ErrGenerationFailed) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
