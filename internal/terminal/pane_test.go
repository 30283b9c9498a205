package terminal

import (
	"bytes"
	"testing"
)

func TestPaneCursorClampsOnOutOfRangeGoto(t *testing.T) {
	p := NewPane("main", 1, 1, 5, 5, ScrollModeFixed)
	if err := p.Push([]byte("\x1b[99;99H")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c := p.vp.Cursor()
	if c.X() != 4 || c.Y() != 4 {
		t.Fatalf("expected cursor clamped to (4,4), got (%d,%d)", c.X(), c.Y())
	}
}

func TestPanePrintableTextAdvancesCursor(t *testing.T) {
	p := NewPane("main", 1, 1, 10, 2, ScrollModeScroll)
	if err := p.Push([]byte("hi")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := p.vp.CurLine().Plaintext(); got != "hi" {
		t.Fatalf("expected \"hi\", got %q", got)
	}
	if p.vp.Cursor().X() != 2 {
		t.Fatalf("expected cursor at column 2, got %d", p.vp.Cursor().X())
	}
}

func TestPaneTabWritesFourSpaces(t *testing.T) {
	p := NewPane("main", 1, 1, 10, 2, ScrollModeScroll)
	if err := p.Push([]byte("a\tb")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := p.vp.CurLine().Plaintext(); got != "a    b" {
		t.Fatalf("expected \"a    b\", got %q", got)
	}
}

func TestPaneSGRAffectsSubsequentGlyphs(t *testing.T) {
	p := NewPane("main", 1, 1, 10, 2, ScrollModeScroll)
	if err := p.Push([]byte("\x1b[31mred")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	line := p.vp.CurLine()
	want := Color{Mode: ColorBasic, Basic: Red}
	for i := 0; i < 3; i++ {
		if line.glyphs[i].Style.FG != want {
			t.Fatalf("glyph %d: expected red fg, got %+v", i, line.glyphs[i].Style.FG)
		}
	}
}

func TestPaneHideCursorPassesThrough(t *testing.T) {
	var out bytes.Buffer
	p := NewPane("main", 1, 1, 10, 2, ScrollModeScroll)
	p.PassThrough = &out
	if err := p.Push([]byte("\x1b[?25l")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.String() != "\x1b[?25l" {
		t.Fatalf("expected hide-cursor sequence forwarded verbatim, got %q", out.String())
	}
}

func TestPaneNoPassThroughWriterDropsSilently(t *testing.T) {
	p := NewPane("background", 1, 1, 10, 2, ScrollModeScroll)
	if err := p.Push([]byte("\x1b[?25l")); err != nil {
		t.Fatalf("unexpected error from pane with no pass-through writer: %v", err)
	}
}

func TestPaneRenderEmitsOnlyDirtyLines(t *testing.T) {
	p := NewPane("main", 2, 3, 4, 2, ScrollModeScroll)
	if err := p.Push([]byte("ab")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var buf bytes.Buffer
	if err := p.Render(&buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	if !bytes.Contains([]byte(out), []byte("\x1b[3;2H")) {
		t.Fatalf("expected row 1 positioned at host (3,2), got %q", out)
	}
	// second render with nothing changed should only reposition the cursor
	buf.Reset()
	if err := p.Render(&buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bytes.Contains(buf.Bytes(), []byte("ab")) {
		t.Fatalf("expected no content re-emitted on a clean render, got %q", buf.String())
	}
}
