package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

// Palette used by the game. The original arcade palette is black, white,
// red, green, blue and yellow; gray and cyan are used for hints and titles.
const (
	ColorDefault Color = iota
	ColorWhite
	ColorRed
	ColorGreen
	ColorBlue
	ColorYellow
	ColorCyan
	ColorGray
)

// String returns the palette name of the color.
func (c Color) String() string {
	switch c {
	case ColorWhite:
		return "white"
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorBlue:
		return "blue"
	case ColorYellow:
		return "yellow"
	case ColorCyan:
		return "cyan"
	case ColorGray:
		return "gray"
	default:
		return "default"
	}
}
