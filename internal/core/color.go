package core

// Color is the foreground color of a screen cell. The platform maps each
// value to an ANSI 256-color style.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// TilePalette lists distinct colors for board tiles, in tile order.
// Boards with more kinds than colors wrap around; the letter still tells
// the tiles apart.
var TilePalette = []Color{
	ColorBrightRed,
	ColorBrightGreen,
	ColorBrightYellow,
	ColorBrightBlue,
	ColorBrightMagenta,
	ColorBrightCyan,
	ColorOrange,
	ColorWhite,
	ColorRed,
	ColorGreen,
	ColorBlue,
	ColorMagenta,
}

// TileColor returns the color for the i-th tile kind.
func TileColor(i int) Color {
	if i < 0 {
		return ColorGray
	}
	return TilePalette[i%len(TilePalette)]
}
