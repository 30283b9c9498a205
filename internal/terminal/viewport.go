package terminal

// ScrollMode governs what happens when output reaches the bottom row of a
// ViewPort.
type ScrollMode int

const (
	// ScrollModeScroll rolls the topmost line off and appends a fresh
	// blank line at the bottom, keeping the cursor on the last row.
	ScrollModeScroll ScrollMode = iota
	// ScrollModeFixed drops excess output once the bottom row is
	// reached: the cursor clamps at the last row instead of advancing,
	// and existing content is never rolled.
	ScrollModeFixed
)

// DeletionKind selects which region an erase operation clears.
type DeletionKind int

const (
	DeleteLine DeletionKind = iota
	DeleteLineBeforeCursor
	DeleteLineAfterCursor
	DeleteScreen
	DeleteScreenBeforeCursor
	DeleteScreenAfterCursor
)

// Deletion describes an erase operation to apply to a ViewPort.
type Deletion struct {
	Kind DeletionKind
}

// ViewPort is a fixed-size width x height grid of GlyphLines plus the
// cursor and current print style used to fill it. It never holds more
// than height lines: ScrollModeScroll rolls old lines out as new ones
// come in, ScrollModeFixed simply stops advancing once full.
type ViewPort struct {
	PaneID string

	width, height int
	lines         []*GlyphLine
	style         PrintStyle
	cursor        Cursor
	scrollMode    ScrollMode
}

// NewViewPort returns a blank width x height viewport for the given pane.
func NewViewPort(paneID string, width, height int, mode ScrollMode) *ViewPort {
	v := &ViewPort{
		PaneID:     paneID,
		width:      width,
		height:     height,
		style:      DefaultStyle(),
		cursor:     NewCursor(width, height),
		scrollMode: mode,
	}
	v.lines = make([]*GlyphLine, height)
	for i := range v.lines {
		v.lines[i] = NewGlyphLine()
	}
	return v
}

func (v *ViewPort) Width() int  { return v.width }
func (v *ViewPort) Height() int { return v.height }

// Style is the print style that will be used for the next glyph written.
func (v *ViewPort) Style() PrintStyle { return v.style }

// ApplyStyle mutates the current style per an SGR sequence. See
// PrintStyle.ApplySGR for the error/recovery contract.
func (v *ViewPort) ApplyStyle(raw []byte) error {
	return v.style.ApplySGR(raw)
}

// Cursor returns the current cursor position (a value copy).
func (v *ViewPort) Cursor() Cursor { return v.cursor }

// CursorLoc returns the 1-based (row, col) cursor position.
func (v *ViewPort) CursorLoc() (row, col int) {
	return v.cursor.Row(), v.cursor.Col()
}

// CurLine returns the GlyphLine the cursor currently sits on.
func (v *ViewPort) CurLine() *GlyphLine {
	return v.lines[v.cursor.Y()]
}

// Line returns the line at 0-based row y, or nil if out of range.
func (v *ViewPort) Line(y int) *GlyphLine {
	if y < 0 || y >= len(v.lines) {
		return nil
	}
	return v.lines[y]
}

// Put writes ch at the cursor's current column on the current line, in the
// current style, and advances the cursor one column to the right.
func (v *ViewPort) Put(ch rune) {
	v.CurLine().Set(v.cursor.X(), ch, v.style)
	v.cursor.IncrX(1)
}

// Newline moves the cursor to column 0 and down one row: in ScrollModeScroll, once the cursor is already on the last
// row, the top line rolls off and a fresh one appears at the bottom; in
// ScrollModeFixed the cursor simply stays put once it reaches the last
// row and further output is dropped.
func (v *ViewPort) Newline() {
	v.cursor.SetX(0)
	if v.cursor.Y() < v.height-1 {
		v.cursor.IncrY(1)
		return
	}
	if v.scrollMode == ScrollModeScroll {
		v.lines = append(v.lines[1:], NewGlyphLine())
		for _, l := range v.lines {
			l.MakeDirty()
		}
	}
	// ScrollModeFixed: cursor stays clamped at the bottom row.
}

// CursorGoto moves to a 1-based (row, col) position, clamped to bounds.
func (v *ViewPort) CursorGoto(row, col int) {
	v.cursor.SetX(col - 1)
	v.cursor.SetY(row - 1)
}

func (v *ViewPort) CursorUp(n int) { v.cursor.DecrY(n) }

// CursorDown moves the cursor down n rows. In ScrollModeScroll, each row
// that would cross the bottom instead rolls the buffer up by one line
// (the same behavior a bare line feed has in Newline), so a cursor-down
// that overshoots the visible area still scrolls rather than clamping.
func (v *ViewPort) CursorDown(n int) {
	for i := 0; i < n; i++ {
		if v.cursor.Y() < v.height-1 {
			v.cursor.IncrY(1)
			continue
		}
		if v.scrollMode == ScrollModeScroll {
			v.lines = append(v.lines[1:], NewGlyphLine())
			for _, l := range v.lines {
				l.MakeDirty()
			}
		}
	}
}

func (v *ViewPort) CursorLeft(n int)  { v.cursor.DecrX(n) }
func (v *ViewPort) CursorRight(n int) { v.cursor.IncrX(n) }
func (v *ViewPort) CursorHome()       { v.cursor.SetX(0); v.cursor.SetY(0) }

// CursorCR returns the cursor to column 0 on the current row, the way a
// bare carriage return does (unlike CursorHome, the row is untouched).
func (v *ViewPort) CursorCR() { v.cursor.SetX(0) }

// Clear applies an erase operation relative to the current cursor.
func (v *ViewPort) Clear(d Deletion) {
	switch d.Kind {
	case DeleteLine:
		v.CurLine().Clear()
	case DeleteLineBeforeCursor:
		v.CurLine().ClearToIndex(v.cursor.X())
	case DeleteLineAfterCursor:
		v.CurLine().ClearAfterIndex(v.cursor.X())
	case DeleteScreen:
		for _, l := range v.lines {
			l.Clear()
		}
		v.CursorGoto(1, 1)
	case DeleteScreenBeforeCursor:
		for y := 0; y < v.cursor.Y(); y++ {
			v.lines[y].Clear()
		}
		v.CurLine().ClearToIndex(v.cursor.X())
	case DeleteScreenAfterCursor:
		v.CurLine().ClearAfterIndex(v.cursor.X())
		for y := v.cursor.Y() + 1; y < v.height; y++ {
			v.lines[y].Clear()
		}
	}
}

// Resize changes the viewport's dimensions, clamping the cursor and
// growing or shrinking the line list as needed. Every line is marked
// dirty since the visible rectangle itself changed.
func (v *ViewPort) Resize(width, height int) {
	v.width = width
	v.height = height
	v.cursor.Resize(width, height)

	if height < len(v.lines) {
		v.lines = v.lines[:height]
	}
	for len(v.lines) < height {
		v.lines = append(v.lines, NewGlyphLine())
	}
	for _, l := range v.lines {
		l.MakeDirty()
	}
}
