package match3

import "fmt"

// Point addresses one cell. Col grows to the right, Row grows downward and
// row 0 is the top of the board.
type Point struct {
	Col int
	Row int
}

// P is a convenience constructor for Point.
func P(col, row int) Point {
	return Point{Col: col, Row: row}
}

// neighborOffsets lists the 4-neighborhood in scan order: left, right, up, down.
var neighborOffsets = [4]Point{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Add returns the point offset by another point.
func (p Point) Add(off Point) Point {
	return Point{Col: p.Col + off.Col, Row: p.Row + off.Row}
}

// Adjacent reports whether q is one of p's four orthogonal neighbors.
func (p Point) Adjacent(q Point) bool {
	dc, dr := p.Col-q.Col, p.Row-q.Row
	if dc < 0 {
		dc = -dc
	}
	if dr < 0 {
		dr = -dr
	}
	return dc+dr == 1
}

// String returns a string representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Col, p.Row)
}

// comparePoints orders points by column, then by row.
func comparePoints(a, b Point) int {
	if a.Col != b.Col {
		return a.Col - b.Col
	}
	return a.Row - b.Row
}
