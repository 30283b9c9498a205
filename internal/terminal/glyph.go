package terminal

// Glyph is a single printed character cell: a rune plus the style it was
// printed with, and a dirty flag used for incremental rendering.
type Glyph struct {
	Ch    rune
	Style PrintStyle
	dirty bool
}

// blankGlyph returns a space glyph in the given style, marked dirty.
func blankGlyph(style PrintStyle) Glyph {
	return Glyph{Ch: ' ', Style: style, dirty: true}
}
