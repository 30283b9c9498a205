package terminal

import (
	"bytes"
	"fmt"
	"io"
)

// GlyphLine is a single row of a ViewPort: a sparse, growable slice of
// Glyphs plus a dirty flag for incremental rendering. A line only holds as
// many glyphs as have actually been written to it; positions beyond the
// end of the slice but within the viewport's width are rendered as blanks
// styled with the line's last style.
type GlyphLine struct {
	glyphs []Glyph
	dirty  bool
}

// NewGlyphLine returns an empty, dirty line (so it renders once on first
// draw even if nothing has been written to it yet).
func NewGlyphLine() *GlyphLine {
	return &GlyphLine{dirty: true}
}

// Len is the number of glyphs actually stored — not the viewport width.
func (l *GlyphLine) Len() int { return len(l.glyphs) }

// LastStyle is the style new blank padding should use: the style of the
// last glyph written, or DefaultStyle if the line is empty.
func (l *GlyphLine) LastStyle() PrintStyle {
	if len(l.glyphs) == 0 {
		return DefaultStyle()
	}
	return l.glyphs[len(l.glyphs)-1].Style
}

// Set writes ch at 0-based column i in the given style. Writing past the
// current end of the line grows it, padding the gap with blank glyphs in
// the line's *prior* last style (not the new glyph's style) — this padding
// behavior is load-bearing: a line that jumps from column 3 to column 10
// must not retroactively recolor columns 3-9.
func (l *GlyphLine) Set(i int, ch rune, style PrintStyle) {
	if i < 0 {
		return
	}
	if i < len(l.glyphs) {
		l.glyphs[i] = Glyph{Ch: ch, Style: style, dirty: true}
		l.dirty = true
		return
	}
	pad := l.LastStyle()
	for len(l.glyphs) < i {
		l.glyphs = append(l.glyphs, blankGlyph(pad))
	}
	l.glyphs = append(l.glyphs, Glyph{Ch: ch, Style: style, dirty: true})
	l.dirty = true
}

// ClearAt blanks the glyph at column i in place, if present.
func (l *GlyphLine) ClearAt(i int) {
	if i < 0 || i >= len(l.glyphs) {
		return
	}
	l.glyphs[i] = blankGlyph(l.glyphs[i].Style)
	l.dirty = true
}

// ClearToIndex blanks every column from 0 through i inclusive.
func (l *GlyphLine) ClearToIndex(i int) {
	if i < 0 {
		return
	}
	if i >= len(l.glyphs) {
		i = len(l.glyphs) - 1
	}
	for c := 0; c <= i; c++ {
		l.glyphs[c] = blankGlyph(l.glyphs[c].Style)
	}
	l.dirty = true
}

// ClearAfterIndex truncates the line at column i — everything from i
// onward renders as blank padding at the line's (now shorter) last style.
func (l *GlyphLine) ClearAfterIndex(i int) {
	if i < 0 {
		i = 0
	}
	if i < len(l.glyphs) {
		l.glyphs = l.glyphs[:i]
	}
	l.dirty = true
}

// Clear empties the line entirely.
func (l *GlyphLine) Clear() {
	l.glyphs = nil
	l.dirty = true
}

// Dirty reports whether this line has changed since it was last rendered:
// either the line was marked dirty wholesale (resize, clear, MakeDirty) or
// at least one of its glyphs was written since the last Emit.
func (l *GlyphLine) Dirty() bool {
	if l.dirty {
		return true
	}
	for i := range l.glyphs {
		if l.glyphs[i].dirty {
			return true
		}
	}
	return false
}

// MakeDirty forces this line to redraw on the next render even if nothing
// changed — used after a resize or a full-screen clear.
func (l *GlyphLine) MakeDirty() {
	l.dirty = true
}

func (l *GlyphLine) clean() {
	l.dirty = false
}

// Plaintext returns the line's text content with no styling, trimmed of
// nothing — callers that want a fixed width pad themselves.
func (l *GlyphLine) Plaintext() string {
	runes := make([]rune, len(l.glyphs))
	for i, g := range l.glyphs {
		runes[i] = g.Ch
	}
	return string(runes)
}

// Emit writes this line to w as a single cursor-position escape followed
// by its styled content, diffing each glyph's style against the style
// active so far (starting from surrounding, the style active just before
// this line) and restoring surrounding at the end so later writes aren't
// affected by this line's trailing style. x and y are 0-based host-terminal
// coordinates; width is the number of columns to fill (short lines are
// padded with the line's last style, keeping the line's footprint a fixed
// rectangle regardless of how much of it was actually written).
func (l *GlyphLine) Emit(w io.Writer, x, y, width int, surrounding PrintStyle) (PrintStyle, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "\x1b[%d;%dH", y+1, x+1)

	current := surrounding
	pad := l.LastStyle()
	for i := 0; i < width; i++ {
		var g Glyph
		if i < len(l.glyphs) {
			g = l.glyphs[i]
		} else {
			g = blankGlyph(pad)
		}
		if g.Style != current {
			buf.Write(current.Diff(g.Style))
			current = g.Style
		}
		buf.WriteRune(g.Ch)
	}
	if current != surrounding {
		buf.Write(current.Diff(surrounding))
		current = surrounding
	}

	if _, err := w.Write(buf.Bytes()); err != nil {
		return current, fmt.Errorf("%w: %v", ErrWriteFailure, err)
	}
	for i := range l.glyphs {
		l.glyphs[i].dirty = false
	}
	l.clean()
	return current, nil
}
