package match3

import "slices"

// Group is a set of points kept in canonical order: by column, then by row.
type Group []Point

func newGroup(points []Point) Group {
	g := Group(points)
	slices.SortFunc(g, comparePoints)
	return g
}

// Equal reports whether both groups hold the same points.
func (g Group) Equal(o Group) bool {
	return slices.Equal(g, o)
}

// Points flattens a list of groups into a single slice.
func Points(groups []Group) []Point {
	var out []Point
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}
