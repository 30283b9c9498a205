package terminal

import (
	"bytes"
	"fmt"
)

// PrintStyle is the set of display attributes a glyph is printed with:
// foreground/background color plus the boolean SGR toggles. The zero value
// is not a valid style on its own — use DefaultStyle.
type PrintStyle struct {
	FG        Color
	BG        Color
	Bold      bool
	Italic    bool
	Underline bool
	Blink     bool
	Invert    bool
}

// DefaultStyle is the style a freshly reset pane starts in: white on black,
// no attributes set.
func DefaultStyle() PrintStyle {
	return PrintStyle{FG: DefaultFG(), BG: DefaultBG()}
}

// ApplySGR parses a complete "ESC [ params m" sequence (raw, including the
// leading ESC and trailing m) and mutates the receiver to reflect it.
//
// A parameter that can't be parsed as a number is skipped — the rest of the
// sequence is still applied (ErrMalformedEscape is returned alongside the
// mutation). An extended color sub-sequence (38/48;5;n or 38/48;2;r;g;b)
// missing its sub-parameters aborts the whole apply and leaves the
// receiver untouched (ErrInvalidColourArg).
func (p *PrintStyle) ApplySGR(raw []byte) error {
	params, malformed := parseSGRParams(raw)

	work := *p
	for i := 0; i < len(params); i++ {
		code := params[i]
		switch {
		case code == sgrSkip:
			continue
		case code == 0:
			work = DefaultStyle()
		case code == 1:
			work.Bold = true
		case code == 22:
			work.Bold = false
		case code == 3:
			work.Italic = true
		case code == 23:
			work.Italic = false
		case code == 4:
			work.Underline = true
		case code == 24:
			work.Underline = false
		case code == 5:
			work.Blink = true
		case code == 25:
			work.Blink = false
		case code == 7:
			work.Invert = true
		case code == 27:
			work.Invert = false
		case code >= 30 && code <= 37:
			work.FG = Color{Mode: ColorBasic, Basic: basicFrom8Color(code - 30)}
		case code == 38:
			c, next, err := parseExtendedColor(params, i)
			if err != nil {
				return err
			}
			work.FG = c
			i = next
		case code == 39:
			work.FG = DefaultFG()
		case code >= 40 && code <= 47:
			work.BG = Color{Mode: ColorBasic, Basic: basicFrom8Color(code - 40)}
		case code == 48:
			c, next, err := parseExtendedColor(params, i)
			if err != nil {
				return err
			}
			work.BG = c
			i = next
		case code == 49:
			work.BG = DefaultBG()
		case code >= 90 && code <= 97:
			work.FG = Color{Mode: ColorBasic, Basic: basicFrom8Color(code - 90)}
			work.Bold = true
		case code >= 100 && code <= 107:
			work.BG = Color{Mode: ColorBasic, Basic: basicFrom8Color(code - 100)}
		}
		// Any other code is a recognised-but-unsupported SGR attribute
		// (e.g. strikethrough) and is silently ignored, matching the
		// "everything else is dropped without crashing" contract.
	}

	*p = work
	if malformed {
		return ErrMalformedEscape
	}
	return nil
}

// sgrSkip marks a parameter that failed to parse; the dispatch loop skips
// it rather than substituting a code that would itself change the style.
const sgrSkip = -1

// parseSGRParams extracts the semicolon-separated parameter list from a
// raw "ESC [ params m" (or "ESC [ params %m") sequence. An empty parameter
// list is equivalent to a single 0 parameter. malformed is true if any
// individual sub-parameter failed to parse as a number.
func parseSGRParams(raw []byte) (params []int, malformed bool) {
	content := sgrContent(raw)
	if len(content) == 0 {
		return []int{0}, false
	}
	for _, piece := range bytes.Split(content, []byte{';'}) {
		if len(piece) == 0 {
			params = append(params, 0)
			continue
		}
		n, ok := parseUint(piece)
		if !ok {
			params = append(params, sgrSkip)
			malformed = true
			continue
		}
		params = append(params, n)
	}
	return params, malformed
}

// sgrContent strips the "ESC[" prefix and the terminating "m" (and an
// optional "%" immediately before it) from a raw SGR sequence.
func sgrContent(raw []byte) []byte {
	if len(raw) < 3 {
		return nil
	}
	content := raw[2 : len(raw)-1]
	if len(content) > 0 && content[len(content)-1] == '%' {
		content = content[:len(content)-1]
	}
	return content
}

func parseUint(b []byte) (int, bool) {
	if len(b) == 0 {
		return 0, false
	}
	n := 0
	for _, c := range b {
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}

// parseExtendedColor parses a 38/48;5;n or 38/48;2;r;g;b sub-sequence
// starting at params[i] (the 38 or 48 code itself). It returns the
// resulting color and the index of the last sub-parameter consumed.
func parseExtendedColor(params []int, i int) (Color, int, error) {
	if i+1 >= len(params) || params[i+1] == sgrSkip {
		return Color{}, i, ErrInvalidColourArg
	}
	switch params[i+1] {
	case 5:
		if i+2 >= len(params) || params[i+2] == sgrSkip {
			return Color{}, i, ErrInvalidColourArg
		}
		return PaletteColor(uint8(params[i+2])), i + 2, nil
	case 2:
		if i+4 >= len(params) {
			return Color{}, i, ErrInvalidColourArg
		}
		r, g, b := params[i+2], params[i+3], params[i+4]
		if r == sgrSkip || g == sgrSkip || b == sgrSkip {
			return Color{}, i, ErrInvalidColourArg
		}
		return RGBColor(uint8(r), uint8(g), uint8(b)), i + 4, nil
	default:
		return Color{}, i, ErrInvalidColourArg
	}
}

// Diff emits the minimal SGR bytes that transition the terminal from self
// to other, assuming the terminal is currently displaying self.
func (self PrintStyle) Diff(other PrintStyle) []byte {
	var buf bytes.Buffer
	if self.FG != other.FG {
		buf.Write(foregroundSGR(other.FG))
	}
	if self.BG != other.BG {
		buf.Write(backgroundSGR(other.BG))
	}
	if self.Bold != other.Bold {
		if other.Bold {
			buf.WriteString("\x1b[1m")
		} else {
			buf.WriteString("\x1b[22m")
		}
	}
	if self.Italic != other.Italic {
		if other.Italic {
			buf.WriteString("\x1b[3m")
		} else {
			buf.WriteString("\x1b[23m")
		}
	}
	if self.Underline != other.Underline {
		if other.Underline {
			buf.WriteString("\x1b[4m")
		} else {
			buf.WriteString("\x1b[24m")
		}
	}
	if self.Blink != other.Blink {
		if other.Blink {
			buf.WriteString("\x1b[5m")
		} else {
			buf.WriteString("\x1b[25m")
		}
	}
	if self.Invert != other.Invert {
		if other.Invert {
			buf.WriteString("\x1b[7m")
		} else {
			buf.WriteString("\x1b[27m")
		}
	}
	return buf.Bytes()
}

// ToSGR emits the minimal SGR bytes that express self, assuming the
// receiver is currently at DefaultStyle.
func (p PrintStyle) ToSGR() []byte {
	return DefaultStyle().Diff(p)
}

func foregroundSGR(c Color) []byte {
	switch c.Mode {
	case ColorPalette:
		return []byte(fmt.Sprintf("\x1b[38;5;%dm", c.Palette))
	case ColorRGB:
		return []byte(fmt.Sprintf("\x1b[38;2;%d;%d;%dm", c.R, c.G, c.B))
	default:
		return []byte(fmt.Sprintf("\x1b[%dm", 30+int(c.Basic)))
	}
}

func backgroundSGR(c Color) []byte {
	switch c.Mode {
	case ColorPalette:
		return []byte(fmt.Sprintf("\x1b[48;5;%dm", c.Palette))
	case ColorRGB:
		return []byte(fmt.Sprintf("\x1b[48;2;%d;%d;%dm", c.R, c.G, c.B))
	default:
		return []byte(fmt.Sprintf("\x1b[%dm", 40+int(c.Basic)))
	}
}
