package terminal

// Cursor tracks the write position within a ViewPort. x and y are 0-based;
// col() and row() (via Col/Row below) expose the 1-based VT100 view. xMax
// and yMax are the last valid index in each axis (width-1, height-1) — a
// viewport n columns wide has valid x in [0, n-1].
type Cursor struct {
	x, y       int
	xMax, yMax int
}

// NewCursor returns a cursor at the origin of a width x height viewport.
func NewCursor(width, height int) Cursor {
	return Cursor{xMax: width - 1, yMax: height - 1}
}

// X and Y are the 0-based cursor coordinates.
func (c Cursor) X() int { return c.x }
func (c Cursor) Y() int { return c.y }

// Col and Row are the 1-based cursor coordinates, as used in VT100
// "ESC[row;colH" sequences.
func (c Cursor) Col() int { return c.x + 1 }
func (c Cursor) Row() int { return c.y + 1 }

func clamp(n, max int) int {
	if n < 0 {
		return 0
	}
	if n > max {
		return max
	}
	return n
}

// SetX moves the cursor to an absolute 0-based column, clamped to bounds.
func (c *Cursor) SetX(n int) { c.x = clamp(n, c.xMax) }

// SetY moves the cursor to an absolute 0-based row, clamped to bounds.
func (c *Cursor) SetY(n int) { c.y = clamp(n, c.yMax) }

// IncrX moves the cursor right by n columns, clamped to the right edge.
func (c *Cursor) IncrX(n int) { c.SetX(c.x + n) }

// IncrY moves the cursor down by n rows, clamped to the bottom edge.
func (c *Cursor) IncrY(n int) { c.SetY(c.y + n) }

// DecrX moves the cursor left by n columns, never past the left edge.
func (c *Cursor) DecrX(n int) {
	if c.x > 0 {
		c.SetX(c.x - n)
	}
}

// DecrY moves the cursor up by n rows, never past the top edge.
func (c *Cursor) DecrY(n int) {
	if n > c.y {
		n = c.y
	}
	c.SetY(c.y - n)
}

// Resize adjusts the bounds a cursor is clamped against, re-clamping the
// current position if the viewport shrank underneath it.
func (c *Cursor) Resize(width, height int) {
	c.xMax = width - 1
	c.yMax = height - 1
	c.x = clamp(c.x, c.xMax)
	c.y = clamp(c.y, c.yMax)
}
