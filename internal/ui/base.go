package ui

// Base carries the size and focus every component needs. Embed it.
//
//	type Model struct {
//	    ui.Base
//	    cursor cursor.Cursor
//	}
type Base struct {
	width, height int
	focused       bool
}

// SetFocused sets whether the component receives keys.
func (b *Base) SetFocused(focused bool) {
	b.focused = focused
}

// IsFocused returns whether the component receives keys.
func (b Base) IsFocused() bool {
	return b.focused
}

// SetSize sets the component dimensions.
func (b *Base) SetSize(width, height int) {
	b.width = width
	b.height = height
}

func (b Base) Width() int {
	return b.width
}

func (b Base) Height() int {
	return b.height
}

// BodyHeight returns the rows left for list content once the panel border
// and the column header are drawn.
func (b Base) BodyHeight() int {
	return max(b.height-PanelOverhead, 0)
}
