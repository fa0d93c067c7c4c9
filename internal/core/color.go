package core

// Color represents a foreground color for a screen cell.
// Mapped to ANSI codes by the terminal renderer.
type Color uint8

// Colors used by the field renderer.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorCyan
	ColorWhite
	ColorBrightWhite
	ColorGray
)
