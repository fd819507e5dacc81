package match3

import (
	"slices"

	"github.com/zyedidia/generic/mapset"
)

// Group returns every cell 4-connected to origin that holds the same value,
// origin included. It returns nil for an out-of-bounds origin.
func (b *Board) Group(origin Point) Group {
	if b.OutOfBounds(origin) {
		return nil
	}
	value := b.At(origin)

	visited := mapset.New[Point]()
	visited.Put(origin)
	stack := []Point{origin}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, off := range neighborOffsets {
			n := p.Add(off)
			if b.OutOfBounds(n) || visited.Has(n) || b.At(n) != value {
				continue
			}
			visited.Put(n)
			stack = append(stack, n)
		}
	}

	points := make([]Point, 0, visited.Size())
	visited.Each(func(p Point) {
		points = append(points, p)
	})
	return newGroup(points)
}

// FilterGroup keeps the points of g that sit on a straight horizontal or
// vertical run of three or more consecutive cells. A group with no such run
// filters to nil.
func (b *Board) FilterGroup(g Group) Group {
	if len(g) < 3 {
		return nil
	}
	byCol := make(map[int][]int)
	byRow := make(map[int][]int)
	for _, p := range g {
		byCol[p.Col] = append(byCol[p.Col], p.Row)
		byRow[p.Row] = append(byRow[p.Row], p.Col)
	}

	keep := mapset.New[Point]()
	for col, rows := range byCol {
		for _, row := range runs(rows) {
			keep.Put(P(col, row))
		}
	}
	for row, cols := range byRow {
		for _, col := range runs(cols) {
			keep.Put(P(col, row))
		}
	}
	if keep.Size() == 0 {
		return nil
	}

	points := make([]Point, 0, keep.Size())
	keep.Each(func(p Point) {
		points = append(points, p)
	})
	return newGroup(points)
}

// runs returns the coordinates that belong to a gap-free run of length >= 3.
func runs(coords []int) []int {
	if len(coords) < 3 {
		return nil
	}
	slices.Sort(coords)
	var out []int
	start := 0
	for i := 1; i <= len(coords); i++ {
		if i < len(coords) && coords[i] == coords[i-1]+1 {
			continue
		}
		if i-start >= 3 {
			out = append(out, coords[start:i]...)
		}
		start = i
	}
	return out
}

// ValidGroups returns every distinct match currently on the board, in
// row-major order of the first cell that reached it.
func (b *Board) ValidGroups() []Group {
	var matches []Group
	scanned := mapset.New[Point]()
	for row := 0; row < b.rows; row++ {
		for col := 0; col < b.cols; col++ {
			p := P(col, row)
			if b.At(p).IsEmpty() || scanned.Has(p) {
				continue
			}
			g := b.Group(p)
			for _, q := range g {
				scanned.Put(q)
			}
			if m := b.FilterGroup(g); len(m) > 0 {
				matches = append(matches, m)
			}
		}
	}
	return matches
}
