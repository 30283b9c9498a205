package terminal

import (
	"reflect"
	"testing"
)

func tokens(p *StreamParser, chunks ...string) []TerminalOutput {
	for _, c := range chunks {
		p.Push([]byte(c))
	}
	return p.Consume()
}

func TestStreamParserPlaintext(t *testing.T) {
	p := NewStreamParser()
	out := tokens(p, "hello world")
	if len(out) != 1 || out[0].IsControl || out[0].Text != "hello world" {
		t.Fatalf("unexpected tokens: %+v", out)
	}
}

func TestStreamParserFlushesTrailingBareEscOnConsume(t *testing.T) {
	p := NewStreamParser()
	p.Push([]byte("abc\x1b"))
	out := p.Consume()
	if len(out) != 2 || out[0].Text != "abc" || out[1].IsControl || out[1].Text != "\x1b" {
		t.Fatalf("expected plaintext \"abc\" then a lone-ESC plaintext token, got %+v", out)
	}

	// the ESC was flushed, not retained: the next byte starts a fresh run.
	out = tokens(p, "X")
	if len(out) != 1 || out[0].IsControl || out[0].Text != "X" {
		t.Fatalf("expected a fresh plaintext token after the ESC was flushed, got %+v", out)
	}
}

func TestStreamParserStillHoldsMultiByteEscapeAcrossConsume(t *testing.T) {
	p := NewStreamParser()
	p.Push([]byte("\x1b["))
	out := p.Consume()
	if len(out) != 0 {
		t.Fatalf("expected a partial CSI sequence to still be held, got %+v", out)
	}
	p.Push([]byte("31m"))
	out = p.Consume()
	if len(out) != 1 || !out[0].IsControl || out[0].Kind != KindSGR {
		t.Fatalf("expected the CSI sequence to complete across the Consume call, got %+v", out)
	}
}

func TestStreamParserSplitAcrossPushes(t *testing.T) {
	p := NewStreamParser()
	p.Push([]byte("\x1b["))
	p.Push([]byte("3"))
	p.Push([]byte("1m"))
	out := p.Consume()
	if len(out) != 1 || !out[0].IsControl || out[0].Kind != KindSGR {
		t.Fatalf("expected one SGR token split across pushes, got %+v", out)
	}
	if string(out[0].Raw) != "\x1b[31m" {
		t.Fatalf("unexpected raw bytes: %q", out[0].Raw)
	}
}

func TestStreamParserSGR(t *testing.T) {
	p := NewStreamParser()
	out := tokens(p, "\x1b[1;31m")
	want := []TerminalOutput{controlOutput(KindSGR, []byte("\x1b[1;31m"))}
	if !reflect.DeepEqual(out, want) {
		t.Fatalf("got %+v want %+v", out, want)
	}
}

func TestStreamParserBareScrollSequences(t *testing.T) {
	p := NewStreamParser()
	out := tokens(p, "\x1bM\x1bD")
	if len(out) != 2 || out[0].Kind != KindScrollDown || out[1].Kind != KindScrollUp {
		t.Fatalf("unexpected tokens: %+v", out)
	}
}

func TestStreamParserHideShowCursor(t *testing.T) {
	p := NewStreamParser()
	out := tokens(p, "\x1b[?25l\x1b[?25h")
	if len(out) != 2 || out[0].Kind != KindHideCursor || out[1].Kind != KindShowCursor {
		t.Fatalf("unexpected tokens: %+v", out)
	}
}

func TestStreamParserScrollRegionPassesThrough(t *testing.T) {
	p := NewStreamParser()
	out := tokens(p, "\x1b[2;3r")
	if len(out) != 1 || out[0].Kind != KindPassThrough {
		t.Fatalf("expected scroll-region set to classify as pass-through, got %+v", out)
	}
}

func TestStreamParserUnrecognisedFinalIsUnknown(t *testing.T) {
	p := NewStreamParser()
	out := tokens(p, "\x1b[3@")
	if len(out) != 1 || out[0].Kind != KindUnknown {
		t.Fatalf("expected insert-chars (unsupported) to classify as unknown, got %+v", out)
	}
}

func TestStreamParserApplicationCursorKeys(t *testing.T) {
	p := NewStreamParser()
	out := tokens(p, "\x1bOA")
	if len(out) != 1 || out[0].Kind != KindMoveCursorApp {
		t.Fatalf("expected SS3 application cursor-up, got %+v", out)
	}
}

func TestStreamParserMixedPlaintextAndControl(t *testing.T) {
	p := NewStreamParser()
	out := tokens(p, "hi\x1b[31mred\x1b[0mplain")
	wantKinds := []bool{false, true, false, true, false}
	if len(out) != len(wantKinds) {
		t.Fatalf("expected %d tokens, got %d: %+v", len(wantKinds), len(out), out)
	}
	for i, isControl := range wantKinds {
		if out[i].IsControl != isControl {
			t.Fatalf("token %d: expected IsControl=%v, got %+v", i, isControl, out[i])
		}
	}
}
