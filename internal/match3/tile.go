package match3

// Tile is the value held by a single cell. Palette values are 0..n-1.
type Tile int8

// Empty marks a cell with no tile. It is disjoint from every palette value.
const Empty Tile = -1

// IsEmpty reports whether the tile is the Empty sentinel.
func (t Tile) IsEmpty() bool {
	return t == Empty
}

// Rune returns the letter used to draw the tile: 'a' for 0, 'b' for 1 and
// so on. Empty is drawn as a space.
func (t Tile) Rune() rune {
	if t.IsEmpty() {
		return ' '
	}
	return rune('a' + int(t))
}

// TileFromRune is the inverse of Rune. Both ' ' and '.' parse as Empty.
func TileFromRune(r rune) (Tile, bool) {
	switch {
	case r == ' ' || r == '.':
		return Empty, true
	case r >= 'a' && r <= 'z':
		return Tile(r - 'a'), true
	default:
		return Empty, false
	}
}
