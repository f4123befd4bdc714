package core

// Color is a foreground color for a screen cell, mapped to ANSI colors by
// the platform renderer.
type Color uint8

// Predefined colors for game elements.
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

// ParseColor maps a config color name to a Color. Unknown names fall back
// to the terminal default.
func ParseColor(name string) Color {
	switch name {
	case "red":
		return ColorRed
	case "green":
		return ColorGreen
	case "yellow":
		return ColorYellow
	case "blue":
		return ColorBlue
	case "magenta":
		return ColorMagenta
	case "cyan":
		return ColorCyan
	case "white":
		return ColorWhite
	case "bright-red":
		return ColorBrightRed
	case "bright-green":
		return ColorBrightGreen
	case "bright-yellow":
		return ColorBrightYellow
	case "bright-blue":
		return ColorBrightBlue
	case "bright-magenta":
		return ColorBrightMagenta
	case "bright-cyan":
		return ColorBrightCyan
	case "bright-white":
		return ColorBrightWhite
	case "orange":
		return ColorOrange
	case "gray", "grey":
		return ColorGray
	default:
		return ColorDefault
	}
}
