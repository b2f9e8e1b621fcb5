package core

// Color is the foreground color of a screen cell. The platform maps it to a
// terminal palette entry; games only pick from this list.
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
	ColorBrown
	ColorOrange
	ColorGray
)

// String returns the color name used in screenshots and debug output.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorYellow:
		return "yellow"
	case ColorBlue:
		return "blue"
	case ColorMagenta:
		return "magenta"
	case ColorCyan:
		return "cyan"
	case ColorWhite:
		return "white"
	case ColorBrightRed:
		return "bright-red"
	case ColorBrightGreen:
		return "bright-green"
	case ColorBrightYellow:
		return "bright-yellow"
	case ColorBrightBlue:
		return "bright-blue"
	case ColorBrown:
		return "brown"
	case ColorOrange:
		return "orange"
	case ColorGray:
		return "gray"
	default:
		return "unknown"
	}
}
