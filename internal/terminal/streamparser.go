package terminal

import "unicode/utf8"

// ControlKind classifies a recognized control sequence. Anything the core
// doesn't need to interpret classifies as KindUnknown and is forwarded
// verbatim rather than acted on.
type ControlKind int

const (
	KindSGR ControlKind = iota
	KindMoveCursor
	KindMoveCursorApp
	KindScrollDown
	KindScrollUp
	KindEraseScreen
	KindClearLine
	KindEraseLineBeforeCursor
	KindEraseLineAfterCursor
	KindHideCursor
	KindShowCursor
	KindGetCursorPos
	KindEnterApplicationKeyMode
	KindEnterAltKeypadMode
	KindExitAltKeypadMode
	KindPassThrough
	KindUnknown
)

// TerminalOutput is one token returned by StreamParser.Consume: either a run
// of plaintext or a single classified control sequence. Exactly one of
// Text or Raw is meaningful, selected by IsControl.
type TerminalOutput struct {
	IsControl bool
	Text      string // valid when !IsControl
	Kind      ControlKind
	Raw       []byte // valid when IsControl: the complete raw escape sequence
}

func plaintextOutput(s string) TerminalOutput {
	return TerminalOutput{Text: s}
}

func controlOutput(kind ControlKind, raw []byte) TerminalOutput {
	return TerminalOutput{IsControl: true, Kind: kind, Raw: append([]byte(nil), raw...)}
}

type parserMode int

const (
	modeText parserMode = iota
	modeEscape
)

// StreamParser is a minimal tokenizer over raw child-process output. It
// buffers bytes until it can commit to either a run of plaintext or a
// complete escape sequence, then appends that token to its vetted queue.
// Bytes are never decoded here — ESC (0x1B) never appears inside a
// multi-byte UTF-8 sequence, so splitting the byte stream at ESC
// boundaries never bisects a rune, and Consume holds back a trailing
// incomplete UTF-8 sequence, so plaintext tokens can be decoded with an
// ordinary range-over-string by the caller.
type StreamParser struct {
	mode    parserMode
	pending []byte // the in-progress escape sequence, including the leading ESC
	plain   []byte // the in-progress plaintext run
	vetted  []TerminalOutput
}

// NewStreamParser returns an empty parser in text mode.
func NewStreamParser() *StreamParser {
	return &StreamParser{}
}

// Push feeds raw bytes from the child process into the parser. Complete
// tokens are appended to the vetted queue, retrievable via Consume.
func (p *StreamParser) Push(data []byte) {
	for _, b := range data {
		switch p.mode {
		case modeText:
			if b == 0x1b {
				p.flushPlain()
				p.pending = []byte{b}
				p.mode = modeEscape
			} else {
				p.plain = append(p.plain, b)
			}
		case modeEscape:
			p.pending = append(p.pending, b)
			p.advanceEscape()
		}
	}
}

func (p *StreamParser) flushPlain() {
	if len(p.plain) == 0 {
		return
	}
	p.vetted = append(p.vetted, plaintextOutput(string(p.plain)))
	p.plain = nil
}

// isEscContinuer reports whether b is a recognized second byte of an
// escape sequence. '[' and 0x9b introduce a CSI; '>' and '=' are the
// complete two-byte keypad-mode sequences; 'M' and 'D' are the complete
// two-byte scroll sequences; 'k' introduces an ESC-k...ESC-\ title-style
// sequence; 'O' introduces the SS3 application-cursor-key form (ESC O
// <letter>), needed for MoveCursorApp to be reachable at all.
func isEscContinuer(b byte) bool {
	switch b {
	case '[', 0x9b, '>', '=', 'M', 'D', 'k', 'O':
		return true
	}
	return false
}

func (p *StreamParser) advanceEscape() {
	if len(p.pending) == 2 {
		if !isEscContinuer(p.pending[1]) {
			p.vetted = append(p.vetted, plaintextOutput(string(p.pending)))
			p.pending = nil
			p.mode = modeText
			return
		}
	}
	if complete, kind := classifyEscape(p.pending); complete {
		p.vetted = append(p.vetted, controlOutput(kind, p.pending))
		p.pending = nil
		p.mode = modeText
	}
}

// Consume drains and returns every complete token produced so far,
// including a trailing in-progress plaintext run (minus a trailing
// incomplete UTF-8 sequence, which waits for its remaining bytes). A multi-byte escape
// sequence still in progress is held until it completes or is disambiguated
// as not an escape at all, but a lone trailing ESC — with no second byte
// seen yet — has nothing left to wait for once the caller asks for output,
// so it flushes as a one-byte plaintext token rather than being held
// indefinitely.
func (p *StreamParser) Consume() []TerminalOutput {
	switch {
	case p.mode == modeText:
		start := len(p.plain) - 1
		for start > 0 && start > len(p.plain)-utf8.UTFMax && !utf8.RuneStart(p.plain[start]) {
			start--
		}
		var tail []byte
		if start >= 0 && !utf8.FullRune(p.plain[start:]) {
			tail = append(tail, p.plain[start:]...)
			p.plain = p.plain[:start]
		}
		p.flushPlain()
		p.plain = tail
	case len(p.pending) == 1:
		p.vetted = append(p.vetted, plaintextOutput(string(p.pending)))
		p.pending = nil
		p.mode = modeText
	}
	out := p.vetted
	p.vetted = nil
	return out
}
