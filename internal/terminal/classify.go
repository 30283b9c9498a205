package terminal

import "bytes"

// classifyEscape reports whether buf (a possibly in-progress escape
// sequence, starting with ESC) is now complete, and if so, which kind it
// is. buf[1] has already been confirmed to be a recognized continuer by
// the caller.
func classifyEscape(buf []byte) (complete bool, kind ControlKind) {
	if len(buf) < 2 {
		return false, 0
	}
	switch buf[1] {
	case 'M':
		return len(buf) == 2, KindScrollDown
	case 'D':
		return len(buf) == 2, KindScrollUp
	case '=':
		return len(buf) == 2, KindEnterAltKeypadMode
	case '>':
		return len(buf) == 2, KindExitAltKeypadMode
	case 'k':
		if bytes.HasSuffix(buf, []byte{0x1b, '\\'}) && len(buf) > 2 {
			return true, KindClearLine
		}
		return false, 0
	case 'O':
		if len(buf) < 3 {
			return false, 0
		}
		return true, moveCursorKind(buf[2], true)
	case '[', 0x9b:
		return classifyCSI(buf)
	}
	return false, 0
}

// csiFinal reports whether b is a valid CSI final byte (0x40-0x7E), or one
// of the two extra finals this parser also accepts to close a sequence.
func csiFinal(b byte) bool {
	return (b >= 0x40 && b <= 0x7e) || b == '>' || b == '='
}

func classifyCSI(buf []byte) (bool, ControlKind) {
	if len(buf) < 3 {
		return false, 0
	}
	last := buf[len(buf)-1]
	if !csiFinal(last) {
		return false, 0
	}
	return true, classifyCSIFinal(buf, last)
}

func classifyCSIFinal(buf []byte, final byte) ControlKind {
	switch final {
	case 'm':
		return KindSGR
	case 'H', 'f', 'A', 'B', 'C', 'D':
		return moveCursorKind(0, false)
	case 'J':
		return KindEraseScreen
	case 'K':
		return classifyEraseLine(buf)
	case 'h', 'l':
		return classifyMode(buf, final)
	case 'n':
		if bytes.Equal(buf, []byte("\x1b[6n")) {
			return KindGetCursorPos
		}
		return KindPassThrough
	case 'r':
		// DECSTBM (scroll-region set) is a recognized mode this core
		// doesn't implement; it passes straight through rather than
		// being flagged unknown.
		return KindPassThrough
	default:
		return KindUnknown
	}
}

// moveCursorKind distinguishes the SS3 application-keypad cursor form
// (ESC O <letter>, app==true) from the ordinary CSI cursor-move form. Both
// share the same set of final letters (H, f, A-D).
func moveCursorKind(_ byte, app bool) ControlKind {
	if app {
		return KindMoveCursorApp
	}
	return KindMoveCursor
}

func classifyEraseLine(buf []byte) ControlKind {
	switch {
	case bytes.Equal(buf, []byte("\x1b[2K")):
		return KindClearLine
	case bytes.Equal(buf, []byte("\x1b[1K")):
		return KindEraseLineBeforeCursor
	default: // "\x1b[K" or "\x1b[0K"
		return KindEraseLineAfterCursor
	}
}

func classifyMode(buf []byte, final byte) ControlKind {
	s := string(buf)
	switch {
	case final == 'l' && s == "\x1b[?25l":
		return KindHideCursor
	case final == 'h' && s == "\x1b[?25h":
		return KindShowCursor
	case final == 'h' && s == "\x1b[?1h":
		return KindEnterApplicationKeyMode
	default:
		return KindPassThrough
	}
}
