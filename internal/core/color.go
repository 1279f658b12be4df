package core

// Color is the foreground of a screen cell. The set covers the frogger
// palette: traffic, river, banks and HUD.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorBlue
	ColorMagenta
	ColorGray
	ColorOrange
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightWhite
	NumColors // number of defined colors
)

// ansiCodes are 256-color terminal codes; empty means the terminal default.
var ansiCodes = [NumColors]string{
	ColorRed:          "1",
	ColorGreen:        "2",
	ColorBlue:         "4",
	ColorMagenta:      "5",
	ColorGray:         "245",
	ColorOrange:       "208",
	ColorBrightRed:    "9",
	ColorBrightGreen:  "10",
	ColorBrightYellow: "11",
	ColorBrightWhite:  "15",
}

// ANSI returns the 256-color code for c, or "" for the default color and
// unknown values.
func (c Color) ANSI() string {
	if c >= NumColors {
		return ""
	}
	return ansiCodes[c]
}
