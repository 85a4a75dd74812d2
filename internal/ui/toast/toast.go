// Package toast renders the notification bar.
package toast

import (
	"github.com/llehouerou/shelf/internal/ui/render"
	"github.com/llehouerou/shelf/internal/ui/styles"
	"github.com/llehouerou/shelf/internal/view"
)

// Height is the bar including its border.
const Height = 3

// Render returns the bar for n, or "" when there is nothing to show.
func Render(n *view.Notification, width int) string {
	if n == nil || width < 6 {
		return ""
	}
	s := styles.T().S()
	failed := n.Severity == view.SeverityError

	icon := s.Success.Render("✓")
	if failed {
		icon = s.Error.Render("✗")
	}
	hint := s.Subtle.Render("  x dismiss")

	// border 2, padding 2, icon and space 2
	inner := width - 6
	msgWidth := inner - 11
	if msgWidth < 8 {
		msgWidth, hint = inner, ""
	}
	line := icon + " " + s.Base.Render(render.Truncate(n.Message, msgWidth)) + hint

	return styles.NotificationStyle(failed).Width(width - 2).Render(line)
}
