package core

// Color represents a foreground color for a screen cell. The platform
// layer maps each value to an ANSI 256-color code.
type Color uint8

// Palette used by the platformer's sprites and HUD.
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
	ColorBrown // bricks, ground, goombas
	ColorSky   // overworld HUD accents
)
