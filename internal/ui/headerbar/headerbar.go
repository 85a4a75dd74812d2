// Package headerbar renders the top line: title, view tabs and a summary
// of the loaded catalogue.
package headerbar

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/shelf/internal/ui/styles"
)

// Height is the fixed height of the header bar (single line).
const Height = 1

// View identifies a tab.
type View string

const (
	ViewProducts   View = "products"
	ViewCategories View = "categories"
)

type tab struct {
	key  string
	name string
	view View
}

var tabs = []tab{
	{"F1", "Products", ViewProducts},
	{"F2", "Categories", ViewCategories},
}

// Status summarizes the catalogue for the right side of the bar.
type Status struct {
	Loading   bool
	Shown     int       // rows after filtering
	Total     int       // rows in the collection
	FetchedAt time.Time // zero until the first successful fetch
	Now       time.Time
}

func (s Status) String() string {
	switch {
	case s.Loading:
		return "loading…"
	case s.FetchedAt.IsZero():
		return ""
	}
	count := humanize.Comma(int64(s.Total)) + " products"
	if s.Shown != s.Total {
		count = humanize.Comma(int64(s.Shown)) + " of " + count
	}
	return count + " · fetched " + humanize.RelTime(s.FetchedAt, s.Now, "ago", "from now")
}

// Render returns the header bar for the given width.
func Render(current View, status Status, width int) string {
	if width < 20 {
		return ""
	}
	t := styles.T()
	s := t.S()

	title := styles.Gradient("shelf", true, t.Primary, t.Secondary)

	parts := make([]string, 0, len(tabs))
	for _, tb := range tabs {
		keyStyle, nameStyle := s.Subtle, s.Muted
		if tb.view == current {
			keyStyle, nameStyle = s.HeaderActive, s.HeaderActive
		}
		parts = append(parts, keyStyle.Render(tb.key)+" "+nameStyle.Render(tb.name))
	}
	left := title + "  " + strings.Join(parts, s.Subtle.Render(" │ "))

	right := s.Muted.Render(status.String())
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return left
	}
	return left + strings.Repeat(" ", gap) + right
}
