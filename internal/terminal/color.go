// Package terminal implements a small VT100-subset screen model: a
// StreamParser that classifies raw child-process output into plaintext and
// control sequences, and a Pane that applies those tokens to a scrollable
// grid of styled glyphs.
package terminal

// ColorMode selects how a Color's value should be interpreted.
type ColorMode uint8

const (
	// ColorBasic is one of the eight classic ANSI colors (Basic field).
	ColorBasic ColorMode = iota
	// ColorPalette is an indexed 256-color palette entry (Palette field).
	ColorPalette
	// ColorRGB is a 24-bit true color (R, G, B fields).
	ColorRGB
)

// BasicColor enumerates the eight classic ANSI colors, in SGR order.
type BasicColor uint8

const (
	Black BasicColor = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
)

// Color is a VT100 foreground or background color. The zero value is
// ColorBasic/Black, so code must set a field explicitly rather than rely
// on the zero value to mean "default" unless Black is actually wanted.
type Color struct {
	Mode    ColorMode
	Basic   BasicColor
	Palette uint8
	R, G, B uint8
}

// DefaultFG is the style's foreground when nothing has overridden it: white.
func DefaultFG() Color { return Color{Mode: ColorBasic, Basic: White} }

// DefaultBG is the style's background when nothing has overridden it: black.
func DefaultBG() Color { return Color{Mode: ColorBasic, Basic: Black} }

// PaletteColor builds an indexed 256-color Color.
func PaletteColor(index uint8) Color { return Color{Mode: ColorPalette, Palette: index} }

// RGBColor builds a 24-bit true-color Color.
func RGBColor(r, g, b uint8) Color { return Color{Mode: ColorRGB, R: r, G: g, B: b} }

// basicFrom8Color maps an SGR 30-37/40-47 offset (0-7) to a BasicColor.
func basicFrom8Color(n int) BasicColor { return BasicColor(n % 8) }
