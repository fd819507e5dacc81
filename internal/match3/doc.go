// Package match3 implements the match-grid engine: a rectangular board of
// typed tiles, match detection, constrained generation, gravity, and move
// search.
//
// The package is UI-agnostic and deterministic for a given random source.
// It performs no I/O and is not safe for concurrent use; a single driver
// owns a Board and calls into it between frames.
package match3
