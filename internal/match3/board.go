package match3

import (
	"fmt"
	"strings"
)

const (
	// MinSize is the smallest supported width or height.
	MinSize = 3
	// DefaultMaxSize is the largest width or height accepted unless
	// WithMaxSize overrides it.
	DefaultMaxSize = 27
	// DefaultMaxAttempts bounds the restarts performed by Populate.
	DefaultMaxAttempts = 1000
)

// Board is a cols×rows grid of tiles drawn from a palette of size n.
// Cells are stored row-major.
type Board struct {
	cols        int
	rows        int
	palette     int
	cells       []Tile
	rng         Source
	maxAttempts int
}

type options struct {
	source      Source
	maxAttempts int
	maxSize     int
}

// Option configures a Board at construction time.
type Option func(*options)

// WithSeed seeds the default PCG source.
func WithSeed(seed int64) Option {
	return func(o *options) { o.source = NewSource(seed) }
}

// WithSource injects a custom random source.
func WithSource(src Source) Option {
	return func(o *options) { o.source = src }
}

// WithMaxAttempts sets the restart budget used by Populate.
func WithMaxAttempts(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxAttempts = n
		}
	}
}

// WithMaxSize raises or lowers the per-axis size cap.
func WithMaxSize(n int) Option {
	return func(o *options) {
		if n >= MinSize {
			o.maxSize = n
		}
	}
}

// New creates an empty board. Callers fill it with Populate or through a
// Resolver.
//
// Dimensions must lie in [MinSize, max size], the palette must hold at least
// two kinds, and palette² must stay strictly below cols*rows.
func New(cols, rows, palette int, opts ...Option) (*Board, error) {
	o := options{maxAttempts: DefaultMaxAttempts, maxSize: DefaultMaxSize}
	for _, opt := range opts {
		opt(&o)
	}

	if cols < MinSize || rows < MinSize || cols > o.maxSize || rows > o.maxSize {
		return nil, fmt.Errorf("match3: %dx%d not within %d..%d: %w",
			cols, rows, MinSize, o.maxSize, ErrInvalidDimensions)
	}
	if palette < 2 {
		return nil, fmt.Errorf("match3: palette %d: %w", palette, ErrInvalidPalette)
	}
	if palette*palette >= cols*rows {
		return nil, fmt.Errorf("match3: palette %d on %dx%d board: %w",
			palette, cols, rows, ErrConstraintViolated)
	}

	if o.source == nil {
		o.source = timeSource()
	}

	b := &Board{
		cols:        cols,
		rows:        rows,
		palette:     palette,
		cells:       make([]Tile, cols*rows),
		rng:         o.source,
		maxAttempts: o.maxAttempts,
	}
	b.Clear()
	return b, nil
}

// Parse builds a board from one string per row using the Tile.Rune letters.
// A space or '.' denotes an empty cell.
func Parse(palette int, lines []string, opts ...Option) (*Board, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("match3: parse: no rows: %w", ErrInvalidDimensions)
	}
	cols := len(lines[0])
	b, err := New(cols, len(lines), palette, opts...)
	if err != nil {
		return nil, err
	}
	for row, line := range lines {
		if len(line) != cols {
			return nil, fmt.Errorf("match3: parse: row %d has width %d, want %d: %w",
				row, len(line), cols, ErrInvalidDimensions)
		}
		for col, r := range []rune(line) {
			t, ok := TileFromRune(r)
			if !ok || int(t) >= palette {
				return nil, fmt.Errorf("match3: parse: bad tile %q at %v: %w",
					r, P(col, row), ErrInvalidPalette)
			}
			b.cells[b.index(P(col, row))] = t
		}
	}
	return b, nil
}

// Cols returns the board width.
func (b *Board) Cols() int { return b.cols }

// Rows returns the board height.
func (b *Board) Rows() int { return b.rows }

// Palette returns the number of distinct tile kinds.
func (b *Board) Palette() int { return b.palette }

func (b *Board) index(p Point) int {
	return p.Row*b.cols + p.Col
}

// OutOfBounds reports whether p lies outside the grid.
func (b *Board) OutOfBounds(p Point) bool {
	return p.Col < 0 || p.Row < 0 || p.Col >= b.cols || p.Row >= b.rows
}

// At returns the tile at p, or Empty if p is out of bounds.
func (b *Board) At(p Point) Tile {
	if b.OutOfBounds(p) {
		return Empty
	}
	return b.cells[b.index(p)]
}

// Set stores a tile at p. Out-of-bounds writes are ignored.
func (b *Board) Set(p Point, t Tile) {
	if b.OutOfBounds(p) {
		return
	}
	b.cells[b.index(p)] = t
}

// Clear empties every cell.
func (b *Board) Clear() {
	for i := range b.cells {
		b.cells[i] = Empty
	}
}

// ClearPoints empties the given cells. Out-of-bounds points are skipped.
func (b *Board) ClearPoints(points []Point) {
	for _, p := range points {
		b.Set(p, Empty)
	}
}

// Swap exchanges the tiles at a and c. Both points must be in bounds;
// Swap panics otherwise. It does not check adjacency.
func (b *Board) Swap(a, c Point) {
	if b.OutOfBounds(a) || b.OutOfBounds(c) {
		panic(fmt.Sprintf("match3: swap %v<->%v outside %dx%d board", a, c, b.cols, b.rows))
	}
	i, j := b.index(a), b.index(c)
	b.cells[i], b.cells[j] = b.cells[j], b.cells[i]
}

// IsFull reports whether no cell is Empty.
func (b *Board) IsFull() bool {
	for _, t := range b.cells {
		if t.IsEmpty() {
			return false
		}
	}
	return true
}

// Cells returns a copy of the grid indexed as [row][col].
func (b *Board) Cells() [][]Tile {
	out := make([][]Tile, b.rows)
	for row := range out {
		out[row] = make([]Tile, b.cols)
		copy(out[row], b.cells[row*b.cols:(row+1)*b.cols])
	}
	return out
}

// Clone returns a deep copy of the grid. The clone shares the random source.
func (b *Board) Clone() *Board {
	c := *b
	c.cells = make([]Tile, len(b.cells))
	copy(c.cells, b.cells)
	return &c
}

// Equal reports whether two boards have the same shape, palette and cells.
func (b *Board) Equal(o *Board) bool {
	if b.cols != o.cols || b.rows != o.rows || b.palette != o.palette {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// String draws the board with column headers and row numbers.
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString("  ")
	for col := 0; col < b.cols; col++ {
		fmt.Fprintf(&sb, "%3d", col)
	}
	sb.WriteByte('\n')
	for row := 0; row < b.rows; row++ {
		fmt.Fprintf(&sb, "%2d", row)
		for col := 0; col < b.cols; col++ {
			fmt.Fprintf(&sb, "%3c", b.At(P(col, row)).Rune())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
