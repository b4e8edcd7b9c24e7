package sgr

import (
	"fmt"
	"strconv"
)

// Color is a 3/4-bit ANSI color, identified by its foreground code.
// Background tokens use the same constants; Bg applies the +10 offset of
// the standard encoding.
type Color int

// Normal colors (foreground codes 30-37).
const (
	Black Color = iota + 30
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
)

// Bright colors (foreground codes 90-97).
const (
	BrightBlack Color = iota + 90
	BrightRed
	BrightGreen
	BrightYellow
	BrightBlue
	BrightMagenta
	BrightCyan
	BrightWhite
)

// Fg returns a foreground token for one of the 16 indexed colors.
func Fg(c Color) SGR {
	return SGR{params: strconv.Itoa(int(c))}
}

// Bg returns a background token for one of the 16 indexed colors.
func Bg(c Color) SGR {
	return SGR{params: strconv.Itoa(int(c) + 10)}
}

// FgRGB returns a 24-bit foreground color token. Each component must be
// in [0, 255]; out-of-range components fail with
// *InvalidColorComponentError and produce no token.
func FgRGB(r, g, b int) (SGR, error) {
	return rgb("38;2", r, g, b)
}

// BgRGB returns a 24-bit background color token. Each component must be
// in [0, 255]; out-of-range components fail with
// *InvalidColorComponentError and produce no token.
func BgRGB(r, g, b int) (SGR, error) {
	return rgb("48;2", r, g, b)
}

func rgb(prefix string, r, g, b int) (SGR, error) {
	for _, c := range []struct {
		channel string
		value   int
	}{{"r", r}, {"g", g}, {"b", b}} {
		if c.value < 0 || c.value > 255 {
			return SGR{}, &InvalidColorComponentError{Channel: c.channel, Value: c.value}
		}
	}
	return SGR{params: fmt.Sprintf("%s;%d;%d;%d", prefix, r, g, b)}, nil
}

// Foreground color token catalog.
var (
	FgBlack   = Fg(Black)
	FgRed     = Fg(Red)
	FgGreen   = Fg(Green)
	FgYellow  = Fg(Yellow)
	FgBlue    = Fg(Blue)
	FgMagenta = Fg(Magenta)
	FgCyan    = Fg(Cyan)
	FgWhite   = Fg(White)

	FgBrightBlack   = Fg(BrightBlack)
	FgBrightRed     = Fg(BrightRed)
	FgBrightGreen   = Fg(BrightGreen)
	FgBrightYellow  = Fg(BrightYellow)
	FgBrightBlue    = Fg(BrightBlue)
	FgBrightMagenta = Fg(BrightMagenta)
	FgBrightCyan    = Fg(BrightCyan)
	FgBrightWhite   = Fg(BrightWhite)
)

// Background color token catalog.
var (
	BgBlack   = Bg(Black)
	BgRed     = Bg(Red)
	BgGreen   = Bg(Green)
	BgYellow  = Bg(Yellow)
	BgBlue    = Bg(Blue)
	BgMagenta = Bg(Magenta)
	BgCyan    = Bg(Cyan)
	BgWhite   = Bg(White)

	BgBrightBlack   = Bg(BrightBlack)
	BgBrightRed     = Bg(BrightRed)
	BgBrightGreen   = Bg(BrightGreen)
	BgBrightYellow  = Bg(BrightYellow)
	BgBrightBlue    = Bg(BrightBlue)
	BgBrightMagenta = Bg(BrightMagenta)
	BgBrightCyan    = Bg(BrightCyan)
	BgBrightWhite   = Bg(BrightWhite)
)
