package core

// Color identifies a foreground color for a screen cell. The platform
// layer decides how each value maps to actual terminal colors.
type Color uint8

// Palette available to games. Blocks, player and overlays pick from
// these; ColorDefault means the terminal's own foreground.
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

// Cell is one character of screen content together with its color.
type Cell struct {
	Rune  rune
	Color Color
}
