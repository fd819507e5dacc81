package match3

import "testing"

// deadlocked has no match and no legal move: every row and column cycles
// through the palette.
var deadlocked = []string{
	"abca",
	"bcab",
	"cabc",
	"abca",
}

func TestFindAPlayNone(t *testing.T) {
	b := mustParse(t, 3, deadlocked...)
	if groups := b.ValidGroups(); len(groups) != 0 {
		t.Fatalf("fixture has matches %v", groups)
	}
	if m, ok := b.FindAPlay(); ok {
		t.Errorf("FindAPlay = %v, want none", m)
	}
	if m, ok := b.FindBetterPlay(); ok {
		t.Errorf("FindBetterPlay = %v, want none", m)
	}
	if moves := b.Moves(); len(moves) != 0 {
		t.Errorf("Moves = %v, want none", moves)
	}
}

func TestFindAPlay(t *testing.T) {
	b := mustParse(t, 3,
		"abca",
		"bcab",
		"aabc",
		"cbca",
	)
	before := b.Clone()

	m, ok := b.FindAPlay()
	if !ok {
		t.Fatal("FindAPlay found nothing")
	}
	if m.A != P(2, 1) || m.B != P(2, 2) {
		t.Errorf("FindAPlay = %v<->%v, want (2,1)<->(2,2)", m.A, m.B)
	}
	if len(m.Matches) != 1 {
		t.Fatalf("matches = %v, want one", m.Matches)
	}
	want := Group{P(0, 2), P(1, 2), P(2, 2)}
	if !m.Matches[0].Equal(want) {
		t.Errorf("match = %v, want %v", m.Matches[0], want)
	}
	if m.Score() != 3 {
		t.Errorf("move score = %d, want 3", m.Score())
	}
	if !b.Equal(before) {
		t.Error("FindAPlay modified the board")
	}
}

func TestIsSwapValid(t *testing.T) {
	b := mustParse(t, 3,
		"abca",
		"bcab",
		"aabc",
		"cbca",
	)

	tests := []struct {
		name string
		a, c Point
		want bool
	}{
		{name: "makes a row", a: P(2, 2), c: P(2, 1), want: true},
		{name: "diagonal", a: P(2, 2), c: P(3, 1), want: false},
		{name: "no match", a: P(0, 0), c: P(1, 0), want: false},
		{name: "out of bounds", a: P(3, 3), c: P(4, 3), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.IsSwapValid(tt.a, tt.c); got != tt.want {
				t.Errorf("IsSwapValid(%v, %v) = %v, want %v", tt.a, tt.c, got, tt.want)
			}
		})
	}
}

func TestFindBetterPlayPicksHighestFirst(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		b, _ := New(8, 8, 5, WithSeed(seed))
		if _, err := b.Populate(FullPopulate()); err != nil {
			t.Fatalf("seed %d: Populate: %v", seed, err)
		}

		best, ok := b.FindBetterPlay()
		if !ok {
			t.Fatalf("seed %d: FindBetterPlay found nothing", seed)
		}

		var first Move
		top := -1
		for _, m := range b.Moves() {
			if m.Score() > top {
				first, top = m, m.Score()
			}
		}
		if best.Score() != top {
			t.Errorf("seed %d: best score = %d, want %d", seed, best.Score(), top)
		}
		if best.A != first.A || best.B != first.B {
			t.Errorf("seed %d: tie broken to %v<->%v, want first seen %v<->%v",
				seed, best.A, best.B, first.A, first.B)
		}
	}
}
