// Package cursor tracks the selected row and scroll offset of a list.
package cursor

// Cursor is a row selection within a scrolling viewport. The list length and
// the viewport height are passed in on every call since both change.
type Cursor struct {
	pos    int // selected row
	offset int // first visible row
	margin int // rows kept visible above/below the selection
}

// New creates a Cursor keeping margin rows around the selection.
func New(margin int) Cursor {
	return Cursor{margin: margin}
}

func (c Cursor) Pos() int {
	return c.pos
}

func (c Cursor) Offset() int {
	return c.offset
}

// Move shifts the selection by delta, clamped to the list.
// No-op on an empty list.
func (c *Cursor) Move(delta, listLen, height int) {
	if listLen == 0 {
		return
	}
	c.pos = clamp(c.pos+delta, listLen-1)
	c.ensureVisible(listLen, height)
}

// Jump selects pos, clamped to the list. No-op on an empty list.
func (c *Cursor) Jump(pos, listLen, height int) {
	if listLen == 0 {
		return
	}
	c.pos = clamp(pos, listLen-1)
	c.ensureVisible(listLen, height)
}

// Reset selects the first row.
func (c *Cursor) Reset() {
	c.pos = 0
	c.offset = 0
}

// Fit pulls the selection back inside a list that shrank (a narrower filter
// for instance) and re-scrolls.
func (c *Cursor) Fit(listLen, height int) {
	if listLen == 0 {
		c.Reset()
		return
	}
	c.pos = clamp(c.pos, listLen-1)
	c.ensureVisible(listLen, height)
}

func (c *Cursor) ensureVisible(listLen, height int) {
	if height <= 0 || listLen == 0 {
		return
	}
	margin := min(c.margin, (height-1)/2)

	if c.pos < c.offset+margin {
		c.offset = max(c.pos-margin, 0)
	}
	if c.pos >= c.offset+height-margin {
		c.offset = c.pos - height + margin + 1
	}
	c.offset = clamp(c.offset, max(listLen-height, 0))
}

// VisibleRange returns the visible rows as [start, end).
func (c Cursor) VisibleRange(listLen, height int) (start, end int) {
	if listLen == 0 || height <= 0 {
		return 0, 0
	}
	return c.offset, min(c.offset+height, listLen)
}

// HandleKey applies a navigation key and reports whether it was one:
// j/down, k/up, g/home, G/end, ctrl+d and ctrl+u (half pages),
// pgdown and pgup (full pages).
func (c *Cursor) HandleKey(key string, listLen, height int) bool {
	switch key {
	case "j", "down":
		c.Move(1, listLen, height)
	case "k", "up":
		c.Move(-1, listLen, height)
	case "g", "home":
		c.Reset()
	case "G", "end":
		c.Jump(listLen-1, listLen, height)
	case "ctrl+d":
		c.Move(max(height/2, 1), listLen, height)
	case "ctrl+u":
		c.Move(-max(height/2, 1), listLen, height)
	case "pgdown":
		c.Move(max(height, 1), listLen, height)
	case "pgup":
		c.Move(-max(height, 1), listLen, height)
	default:
		return false
	}
	return true
}

func clamp(v, maxVal int) int {
	if v < 0 {
		return 0
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
