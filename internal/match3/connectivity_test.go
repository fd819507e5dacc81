package match3

import "testing"

func TestGroupHorizontalRun(t *testing.T) {
	b := mustParse(t, 3,
		"bcbcb",
		"cbcbc",
		"baaab",
		"cbcbc",
		"bcbcb",
	)
	want := Group{P(1, 2), P(2, 2), P(3, 2)}

	g := b.Group(P(1, 2))
	if !g.Equal(want) {
		t.Fatalf("Group((1,2)) = %v, want %v", g, want)
	}
	if f := b.FilterGroup(g); !f.Equal(want) {
		t.Errorf("FilterGroup = %v, want %v", f, want)
	}
}

func TestFilterGroupLShape(t *testing.T) {
	b := mustParse(t, 3,
		"abcb",
		"acbc",
		"aabc",
		"bcab",
	)

	g := b.Group(P(0, 0))
	if len(g) != 4 {
		t.Fatalf("Group((0,0)) = %v, want 4 points", g)
	}
	want := Group{P(0, 0), P(0, 1), P(0, 2)}
	if f := b.FilterGroup(g); !f.Equal(want) {
		t.Errorf("FilterGroup = %v, want %v", f, want)
	}
}

func TestFilterGroupCross(t *testing.T) {
	b := mustParse(t, 3,
		"babcb",
		"aaaca",
		"bacbc",
		"cbcab",
		"abcbc",
	)

	want := Group{P(0, 1), P(1, 0), P(1, 1), P(1, 2), P(2, 1)}
	if f := b.FilterGroup(b.Group(P(1, 1))); !f.Equal(want) {
		t.Errorf("FilterGroup = %v, want %v", f, want)
	}
}

func TestFilterGroupRejectsShortRuns(t *testing.T) {
	tests := []struct {
		name  string
		rows  []string
		start Point
	}{
		{
			name:  "pair",
			rows:  []string{"aab", "bba", "aab"},
			start: P(0, 0),
		},
		{
			name:  "square",
			rows:  []string{"aab", "aab", "bba"},
			start: P(0, 0),
		},
		{
			name:  "zigzag",
			rows:  []string{"abb", "aab", "baa"},
			start: P(0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustParse(t, 2, tt.rows...)
			if f := b.FilterGroup(b.Group(tt.start)); len(f) != 0 {
				t.Errorf("FilterGroup = %v, want none", f)
			}
		})
	}
}

func TestFilterGroupSplitsGappedColumn(t *testing.T) {
	b := mustParse(t, 3,
		"abcb",
		"acbc",
		"aabc",
		"babc",
		"aacb",
	)

	g := b.Group(P(0, 0))
	if len(g) != 7 {
		t.Fatalf("Group((0,0)) = %v, want 7 points", g)
	}
	want := Group{P(0, 0), P(0, 1), P(0, 2), P(1, 2), P(1, 3), P(1, 4)}
	if f := b.FilterGroup(g); !f.Equal(want) {
		t.Errorf("FilterGroup = %v, want %v", f, want)
	}
}

func TestValidGroups(t *testing.T) {
	b := mustParse(t, 3,
		"aaab",
		"bcbc",
		"cbcb",
		"bccc",
	)

	groups := b.ValidGroups()
	want := []Group{
		{P(0, 0), P(1, 0), P(2, 0)},
		{P(1, 3), P(2, 3), P(3, 3)},
	}
	if len(groups) != len(want) {
		t.Fatalf("ValidGroups = %v, want %v", groups, want)
	}
	for i := range want {
		if !groups[i].Equal(want[i]) {
			t.Errorf("group %d = %v, want %v", i, groups[i], want[i])
		}
	}
}

func TestValidGroupsSkipsEmpty(t *testing.T) {
	b := mustParse(t, 2,
		"...",
		"...",
		"aba",
	)
	if groups := b.ValidGroups(); len(groups) != 0 {
		t.Errorf("ValidGroups = %v, want none", groups)
	}
}
