package match3

import "testing"

func TestShiftDownPreservesOrder(t *testing.T) {
	b := mustParse(t, 3,
		"abc",
		".ca",
		"bab",
		".bc",
		"cca",
	)

	moved := b.ShiftDown()

	want := []Tile{Empty, Empty, 0, 1, 2}
	for row, tile := range want {
		if got := b.At(P(0, row)); got != tile {
			t.Errorf("column 0 row %d = %d, want %d", row, got, tile)
		}
	}
	if len(moved) != 2 || moved[0] != P(0, 3) || moved[1] != P(0, 2) {
		t.Errorf("moved = %v, want [(0,3) (0,2)]", moved)
	}
	if got := b.At(P(1, 1)); got != 2 {
		t.Errorf("full column changed: (1,1) = %d, want 2", got)
	}
}

func TestShiftDownColumns(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		want []string
	}{
		{
			name: "already settled",
			rows: []string{"...", "aba", "bab"},
			want: []string{"...", "aba", "bab"},
		},
		{
			name: "floating tiles",
			rows: []string{"ab.", "...", "..a"},
			want: []string{"...", "...", "aba"},
		},
		{
			name: "hole at bottom",
			rows: []string{"aba", "bab", "..."},
			want: []string{"...", "aba", "bab"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustParse(t, 2, tt.rows...)
			want := mustParse(t, 2, tt.want...)
			b.ShiftDown()
			if !b.Equal(want) {
				t.Errorf("ShiftDown =\n%s\nwant\n%s", b, want)
			}
		})
	}
}
