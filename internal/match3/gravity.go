package match3

// ShiftDown lets every tile fall to the lowest empty cell of its column.
// Tiles keep their relative order and all Empty cells end up on top.
// It returns the destination of every tile that moved.
func (b *Board) ShiftDown() []Point {
	var moved []Point
	for col := 0; col < b.cols; col++ {
		write := b.rows - 1
		for row := b.rows - 1; row >= 0; row-- {
			p := P(col, row)
			if b.At(p).IsEmpty() {
				continue
			}
			if row != write {
				dst := P(col, write)
				b.Swap(p, dst)
				moved = append(moved, dst)
			}
			write--
		}
	}
	return moved
}
