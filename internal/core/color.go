package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI color.
type Color uint8

// Colors used by the board renderer.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorWhite
	ColorBrightGreen
	ColorBrightRed
	ColorGray
)
