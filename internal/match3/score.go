package match3

// Score values one wave of simultaneous matches. A match of k cells is
// worth k plus the triangular bonus of k-3, and a wave of m matches adds
// the triangular bonus of m-1.
//
//	size 3 -> 3, size 4 -> 5, size 5 -> 8, two size-3 matches -> 7
func Score(matches []Group) int {
	total := 0
	for _, m := range matches {
		total += len(m) + triangular(len(m)-3)
	}
	return total + triangular(len(matches)-1)
}

// CascadeBonus is the extra score for the wave-th wave of a turn, counting
// the swap's own wave as 0.
func CascadeBonus(wave int) int {
	return triangular(wave)
}

func triangular(n int) int {
	if n <= 0 {
		return 0
	}
	return n * (n + 1) / 2
}
