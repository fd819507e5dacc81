package match3

import "errors"

var (
	// ErrInvalidDimensions is returned when cols or rows fall outside the
	// supported range.
	ErrInvalidDimensions = errors.New("invalid board dimensions")

	// ErrInvalidPalette is returned when fewer than two tile kinds are requested.
	ErrInvalidPalette = errors.New("invalid palette size")

	// ErrConstraintViolated is returned when palette² >= cols*rows.
	ErrConstraintViolated = errors.New("palette too large for board area")

	// ErrGenerationFailed is returned when Populate exhausts its restart budget.
	ErrGenerationFailed = errors.New("board generation failed")
)
