// Package ui provides shared UI constants and utilities.
package ui

// Layout constants shared by the panels.
const (
	// ScrollMargin is the number of rows kept visible above/below the cursor.
	ScrollMargin = 3

	// BorderHeight is the vertical space consumed by a panel border.
	BorderHeight = 2

	// HeaderHeight is the column header plus its separator.
	HeaderHeight = 2

	// PanelOverhead is border + header + separator.
	PanelOverhead = BorderHeight + HeaderHeight

	// HeaderBarHeight is the tab line at the top of the screen.
	HeaderBarHeight = 1

	// FilterBarHeight is the filter input line, border included.
	FilterBarHeight = 3

	// StatusLineHeight is the key hint line at the bottom.
	StatusLineHeight = 1
)
