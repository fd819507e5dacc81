package match3

// Move is a swap of two adjacent cells together with the matches it makes.
type Move struct {
	A       Point
	B       Point
	Matches []Group
}

// Score is the points the move's first wave earns.
func (m Move) Score() int {
	return Score(m.Matches)
}

// IsSwapValid reports whether swapping a and c would form at least one
// match at either position. The board is unchanged on return. Adjacency is
// not checked here.
func (b *Board) IsSwapValid(a, c Point) bool {
	if b.OutOfBounds(a) || b.OutOfBounds(c) {
		return false
	}
	return len(b.swapMatches(a, c)) > 0
}

// swapMatches returns the matches anchored at a and c after swapping them.
func (b *Board) swapMatches(a, c Point) []Group {
	b.Swap(a, c)
	defer b.Swap(a, c)

	var matches []Group
	for _, p := range [2]Point{a, c} {
		if m := b.FilterGroup(b.Group(p)); len(m) > 0 {
			matches = append(matches, m)
		}
	}
	return matches
}

// eachMove calls fn for every legal swap in row-major scan order, visiting
// neighbors left, right, up, down. It stops when fn returns false.
func (b *Board) eachMove(fn func(Move) bool) {
	for row := 0; row < b.rows; row++ {
		for col := 0; col < b.cols; col++ {
			p := P(col, row)
			for _, off := range neighborOffsets {
				q := p.Add(off)
				if b.OutOfBounds(q) || b.At(p) == b.At(q) {
					continue
				}
				matches := b.swapMatches(p, q)
				if len(matches) == 0 {
					continue
				}
				if !fn(Move{A: p, B: q, Matches: matches}) {
					return
				}
			}
		}
	}
}

// FindAPlay returns the first legal move in scan order.
func (b *Board) FindAPlay() (Move, bool) {
	var found Move
	ok := false
	b.eachMove(func(m Move) bool {
		found, ok = m, true
		return false
	})
	return found, ok
}

// FindBetterPlay returns the legal move whose first wave scores highest.
// Ties keep the move seen first in scan order.
func (b *Board) FindBetterPlay() (Move, bool) {
	var best Move
	bestScore := -1
	b.eachMove(func(m Move) bool {
		if s := m.Score(); s > bestScore {
			best, bestScore = m, s
		}
		return true
	})
	return best, bestScore >= 0
}

// Moves returns every legal move in scan order. Each swap appears once per
// endpoint.
func (b *Board) Moves() []Move {
	var out []Move
	b.eachMove(func(m Move) bool {
		out = append(out, m)
		return true
	})
	return out
}
