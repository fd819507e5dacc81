package match3

import (
	"errors"
	"testing"
)

func TestPopulateSteadyState(t *testing.T) {
	tests := []struct {
		cols    int
		rows    int
		palette int
	}{
		{5, 5, 4},
		{7, 7, 6},
		{9, 9, 7},
		{13, 13, 10},
		{4, 8, 3},
		{8, 3, 4},
	}

	for _, tt := range tests {
		for seed := int64(1); seed <= 5; seed++ {
			b, err := New(tt.cols, tt.rows, tt.palette, WithSeed(seed))
			if err != nil {
				t.Fatalf("New(%d, %d, %d): %v", tt.cols, tt.rows, tt.palette, err)
			}
			filled, err := b.Populate(FullPopulate())
			if err != nil {
				t.Fatalf("%dx%d/%d seed %d: Populate: %v", tt.cols, tt.rows, tt.palette, seed, err)
			}
			if len(filled) != tt.cols*tt.rows {
				t.Errorf("filled %d cells, want %d", len(filled), tt.cols*tt.rows)
			}
			if !b.IsFull() {
				t.Errorf("%dx%d/%d seed %d: board not full", tt.cols, tt.rows, tt.palette, seed)
			}
			if groups := b.ValidGroups(); len(groups) != 0 {
				t.Errorf("%dx%d/%d seed %d: pre-existing matches %v\n%s", tt.cols, tt.rows, tt.palette, seed, groups, b)
			}
			if _, ok := b.FindAPlay(); !ok {
				t.Errorf("%dx%d/%d seed %d: no legal move\n%s", tt.cols, tt.rows, tt.palette, seed, b)
			}
		}
	}
}

func TestPopulateIsDeterministic(t *testing.T) {
	a, _ := New(9, 9, 7, WithSeed(42))
	b, _ := New(9, 9, 7, WithSeed(42))
	if _, err := a.Populate(FullPopulate()); err != nil {
		t.Fatalf("Populate: %v", err)
	}
	if _, err := b.Populate(FullPopulate()); err != nil {
		t.Fatalf("Populate: %v", err)
	}
	if !a.Equal(b) {
		t.Errorf("same seed produced different boards:\n%s\n%s", a, b)
	}
}

func TestPopulateKeepsExistingTiles(t *testing.T) {
	b := mustParse(t, 3,
		".....",
		".....",
		"abcab",
		"bcabc",
		"cabca",
	)
	before := b.Cells()

	filled, err := b.Populate(PopulateOptions{Rows: Span{From: 0, To: 2}, NoMatch: true})
	if err != nil {
		t.Fatalf("Populate: %v", err)
	}
	if len(filled) != 10 {
		t.Errorf("filled %d cells, want 10", len(filled))
	}
	after := b.Cells()
	for row := 2; row < 5; row++ {
		for col := 0; col < 5; col++ {
			if after[row][col] != before[row][col] {
				t.Errorf("cell %v changed from %d to %d", P(col, row), before[row][col], after[row][col])
			}
		}
	}
	if groups := b.ValidGroups(); len(groups) != 0 {
		t.Errorf("populate created matches %v", groups)
	}
}

func TestPopulateRegion(t *testing.T) {
	b, _ := New(6, 6, 4, WithSeed(3))
	filled, err := b.Populate(PopulateOptions{Cols: Span{From: 2, To: 4}, Rows: Span{From: 1, To: 3}, NoMatch: true})
	if err != nil {
		t.Fatalf("Populate: %v", err)
	}

	want := []Point{P(2, 1), P(3, 1), P(2, 2), P(3, 2)}
	if len(filled) != len(want) {
		t.Fatalf("filled = %v, want %v", filled, want)
	}
	for i := range want {
		if filled[i] != want[i] {
			t.Errorf("filled[%d] = %v, want %v", i, filled[i], want[i])
		}
	}
	if b.At(P(0, 0)) != Empty || b.At(P(4, 1)) != Empty {
		t.Error("Populate wrote outside its region")
	}
}

func TestPopulateOpenSpan(t *testing.T) {
	b, _ := New(5, 4, 3, WithSeed(8))
	filled, err := b.Populate(PopulateOptions{Rows: Span{From: 2}, NoMatch: true})
	if err != nil {
		t.Fatalf("Populate: %v", err)
	}
	if len(filled) != 10 {
		t.Fatalf("filled %d cells, want the 10 in rows 2..3", len(filled))
	}
	for _, p := range filled {
		if p.Row < 2 {
			t.Errorf("filled %v above the span", p)
		}
	}
	if !b.At(P(4, 1)).IsEmpty() || b.At(P(4, 3)).IsEmpty() {
		t.Error("span should cover rows 2 to the bottom only")
	}
}

func TestPopulateExhaustion(t *testing.T) {
	// The only empty cell completes a run whatever value goes there.
	b, err := Parse(2, []string{
		"aa.bb",
		"babab",
		"ababa",
	}, WithSeed(1), WithMaxAttempts(10))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	before := b.Clone()

	if _, err := b.Populate(TopRow(true)); !errors.Is(err, ErrGenerationFailed) {
		t.Fatalf("Populate error = %v, want ErrGenerationFailed", err)
	}
	if !b.Equal(before) {
		t.Errorf("failed populate changed the board:\n%s", b)
	}

	filled, err := b.Populate(TopRow(false))
	if err != nil {
		t.Fatalf("Populate without match avoidance: %v", err)
	}
	if len(filled) != 1 || filled[0] != P(2, 0) {
		t.Errorf("filled = %v, want [(2,0)]", filled)
	}
	if len(b.ValidGroups()) == 0 {
		t.Error("forced placement should have formed a match")
	}
}
