package match3

import "testing"

func run(n int) Group {
	g := make(Group, n)
	for i := range g {
		g[i] = P(i, 0)
	}
	return g
}

func TestScore(t *testing.T) {
	tests := []struct {
		name    string
		matches []Group
		want    int
	}{
		{name: "nothing", matches: nil, want: 0},
		{name: "three", matches: []Group{run(3)}, want: 3},
		{name: "four", matches: []Group{run(4)}, want: 5},
		{name: "five", matches: []Group{run(5)}, want: 8},
		{name: "six", matches: []Group{run(6)}, want: 12},
		{name: "two threes", matches: []Group{run(3), run(3)}, want: 7},
		{name: "three threes", matches: []Group{run(3), run(3), run(3)}, want: 12},
		{name: "four and five", matches: []Group{run(4), run(5)}, want: 14},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(tt.matches); got != tt.want {
				t.Errorf("Score = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCascadeBonus(t *testing.T) {
	want := []int{0, 1, 3, 6, 10}
	for wave, w := range want {
		if got := CascadeBonus(wave); got != w {
			t.Errorf("CascadeBonus(%d) = %d, want %d", wave, got, w)
		}
	}
}
