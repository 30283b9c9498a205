package terminal

import (
	"fmt"
	"io"
	"log"
)

// Pane owns a StreamParser and the ViewPort it feeds, plus the host
// coordinates it's drawn at. Push consumes raw child output; Render draws
// whatever has changed since the last call.
type Pane struct {
	ID     string
	X, Y   int // 1-based host-terminal origin
	parser *StreamParser
	vp     *ViewPort

	// PassThrough receives bytes that the core doesn't interpret: pass-
	// through control sequences and unrecognized C0 controls. It is the
	// "out" side of the core for content that must reach the live host
	// terminal directly rather than through the dirty-line render cycle.
	// A nil PassThrough silently drops these bytes, which is correct for
	// any pane that isn't actually attached to the process occupying the
	// real terminal.
	PassThrough io.Writer
}

// NewPane returns a pane at host position (x, y) with the given viewport
// size and scroll behavior.
func NewPane(id string, x, y, width, height int, mode ScrollMode) *Pane {
	return &Pane{
		ID:     id,
		X:      x,
		Y:      y,
		parser: NewStreamParser(),
		vp:     NewViewPort(id, width, height, mode),
	}
}

func (p *Pane) Width() int  { return p.vp.Width() }
func (p *Pane) Height() int { return p.vp.Height() }

// ViewPort exposes the underlying grid, mainly for tests.
func (p *Pane) ViewPort() *ViewPort { return p.vp }

// Resize adjusts the pane's viewport, marking every line dirty.
func (p *Pane) Resize(width, height int) {
	p.vp.Resize(width, height)
}

// Push feeds raw child-process bytes through the stream parser and applies
// each resulting token to the viewport.
func (p *Pane) Push(data []byte) error {
	p.parser.Push(data)
	for _, tok := range p.parser.Consume() {
		if err := p.apply(tok); err != nil {
			return err
		}
	}
	return nil
}

func (p *Pane) apply(tok TerminalOutput) error {
	if !tok.IsControl {
		p.applyPlaintext(tok.Text)
		return nil
	}
	return p.applyControl(tok)
}

// applyPlaintext dispatches each decoded rune of a plaintext run: the
// handful of C0 controls the core interprets (backspace, linefeed, tab,
// carriage return, delete), and otherwise a printable glyph write.
func (p *Pane) applyPlaintext(text string) {
	for _, r := range text {
		switch r {
		case 0x08: // backspace
			p.vp.CursorLeft(1)
		case 0x0a: // line feed
			p.vp.Newline()
		case 0x09: // tab: four literal spaces
			for i := 0; i < 4; i++ {
				p.vp.Put(' ')
			}
		case 0x0d: // carriage return
			p.vp.CursorCR()
		case 0x7f: // delete: no-op
		default:
			if r < 0x20 {
				p.writePassThrough([]byte(string(r)))
				continue
			}
			p.vp.Put(r)
		}
	}
}

func (p *Pane) applyControl(tok TerminalOutput) error {
	switch tok.Kind {
	case KindSGR:
		// Both of ApplySGR's error cases are recoverable by design: a
		// malformed numeric parameter is skipped in place, and an
		// invalid extended-color sequence leaves the style untouched.
		// Neither warrants surfacing past the pane.
		_ = p.vp.ApplyStyle(tok.Raw)
		return nil
	case KindMoveCursor, KindMoveCursorApp:
		p.applyCursorMove(tok)
		return nil
	case KindScrollDown:
		p.vp.CursorUp(1)
		return nil
	case KindScrollUp:
		p.vp.Newline()
		return nil
	case KindEraseScreen:
		p.vp.Clear(deletionFor(tok.Raw))
		return nil
	case KindClearLine:
		p.vp.Clear(Deletion{Kind: DeleteLine})
		return nil
	case KindEraseLineBeforeCursor:
		p.vp.Clear(Deletion{Kind: DeleteLineBeforeCursor})
		return nil
	case KindEraseLineAfterCursor:
		p.vp.Clear(Deletion{Kind: DeleteLineAfterCursor})
		return nil
	case KindHideCursor, KindShowCursor, KindGetCursorPos, KindEnterApplicationKeyMode,
		KindEnterAltKeypadMode, KindExitAltKeypadMode, KindPassThrough:
		p.writePassThrough(tok.Raw)
		return nil
	default: // KindUnknown
		log.Printf("terminal: pane %s: unrecognised sequence %q", p.ID, tok.Raw)
		p.writePassThrough(tok.Raw)
		return nil
	}
}

func (p *Pane) writePassThrough(b []byte) {
	if p.PassThrough == nil {
		return
	}
	if _, err := p.PassThrough.Write(b); err != nil {
		log.Printf("terminal: pane %s: pass-through write failed: %v", p.ID, err)
	}
}

// deletionFor distinguishes ESC[2J (whole screen), ESC[1J (to cursor) and
// ESC[J / ESC[0J (after cursor) the same way classifyEraseLine does for K.
func deletionFor(raw []byte) Deletion {
	s := string(raw)
	switch s {
	case "\x1b[2J":
		return Deletion{Kind: DeleteScreen}
	case "\x1b[1J":
		return Deletion{Kind: DeleteScreenBeforeCursor}
	default: // "\x1b[J" or "\x1b[0J"
		return Deletion{Kind: DeleteScreenAfterCursor}
	}
}

// Render writes every dirty line to w, restoring the cursor's on-screen
// position afterward. Panes that haven't changed since the last Render
// write nothing at all.
func (p *Pane) Render(w io.Writer) error {
	current := DefaultStyle()
	for y := 0; y < p.vp.Height(); y++ {
		line := p.vp.Line(y)
		if line == nil || !line.Dirty() {
			continue
		}
		next, err := line.Emit(w, p.X-1, p.Y-1+y, p.vp.Width(), current)
		if err != nil {
			return fmt.Errorf("pane %s: %w", p.ID, err)
		}
		current = next
	}
	return p.PlaceCursor(w)
}

// PlaceCursor moves the real cursor to the pane's logical cursor position.
func (p *Pane) PlaceCursor(w io.Writer) error {
	row, col := p.vp.CursorLoc()
	_, err := fmt.Fprintf(w, "\x1b[%d;%dH", p.Y+row-1, p.X+col-1)
	if err != nil {
		return fmt.Errorf("pane %s: %w", p.ID, ErrWriteFailure)
	}
	return nil
}
