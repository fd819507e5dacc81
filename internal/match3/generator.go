package match3

import "fmt"

// Span is a half-open range [From, To) along one axis. A zero To runs to
// the end of the axis, so the zero Span covers the whole axis.
type Span struct {
	From int
	To   int
}

func (s Span) resolve(n int) Span {
	to := s.To
	if to == 0 {
		to = n
	}
	return Span{From: max(s.From, 0), To: min(to, n)}
}

// PopulateOptions selects the region to fill and the constraints to enforce.
type PopulateOptions struct {
	Cols Span
	Rows Span

	// NoMatch requires that no placed tile forms a match. When false the
	// generator still tries to avoid matches but keeps the last candidate
	// for a cell where every value matches.
	NoMatch bool

	// HasPlay requires at least one legal move once the region is filled.
	HasPlay bool
}

// FullPopulate is the option set used for a fresh or regenerated board.
func FullPopulate() PopulateOptions {
	return PopulateOptions{NoMatch: true, HasPlay: true}
}

// TopRow is the option set used to refill row 0 after gravity.
func TopRow(noMatch bool) PopulateOptions {
	return PopulateOptions{Rows: Span{From: 0, To: 1}, NoMatch: noMatch}
}

// Populate fills the Empty cells of the selected region and returns the
// points it filled in row-major order. Non-empty cells are left untouched.
//
// A failed attempt restores the region and starts over. After the restart
// budget is spent the board is left as it was and ErrGenerationFailed is
// returned.
func (b *Board) Populate(opts PopulateOptions) ([]Point, error) {
	cols := opts.Cols.resolve(b.cols)
	rows := opts.Rows.resolve(b.rows)

	backup := make([]Tile, len(b.cells))
	copy(backup, b.cells)

	for attempt := 0; attempt < b.maxAttempts; attempt++ {
		filled, ok := b.fill(cols, rows, opts.NoMatch)
		if ok && (!opts.HasPlay || b.hasPlay()) {
			return filled, nil
		}
		copy(b.cells, backup)
	}
	return nil, fmt.Errorf("match3: populate %dx%d palette %d after %d attempts: %w",
		b.cols, b.rows, b.palette, b.maxAttempts, ErrGenerationFailed)
}

func (b *Board) fill(cols, rows Span, noMatch bool) ([]Point, bool) {
	var filled []Point
	candidates := make([]Tile, b.palette)
	for row := rows.From; row < rows.To; row++ {
		for col := cols.From; col < cols.To; col++ {
			p := P(col, row)
			if !b.At(p).IsEmpty() {
				continue
			}
			if !b.place(p, candidates) && noMatch {
				return nil, false
			}
			filled = append(filled, p)
		}
	}
	return filled, true
}

// place draws palette values for p without replacement and keeps the first
// one that forms no match. If every value matches, the last one drawn stays
// on the board and place returns false.
func (b *Board) place(p Point, candidates []Tile) bool {
	for i := range candidates {
		candidates[i] = Tile(i)
	}
	for left := len(candidates); left > 0; left-- {
		i := b.rng.IntN(left)
		value := candidates[i]
		candidates[i] = candidates[left-1]
		b.cells[b.index(p)] = value
		if len(b.FilterGroup(b.Group(p))) == 0 {
			return true
		}
	}
	return false
}

func (b *Board) hasPlay() bool {
	_, ok := b.FindAPlay()
	return ok
}
