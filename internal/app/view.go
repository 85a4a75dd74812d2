package app

import (
	"strings"

	"github.com/llehouerou/shelf/internal/ui/headerbar"
	"github.com/llehouerou/shelf/internal/ui/render"
	"github.com/llehouerou/shelf/internal/ui/styles"
	"github.com/llehouerou/shelf/internal/ui/toast"
)

const statusHint = "/ filter · 1 2 3 sort · enter details · tab categories · r reload · ? help · q quit"

// View renders the application UI.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	status := headerbar.Status{
		Loading:   m.state.Loading(),
		Shown:     len(m.state.Derived),
		Total:     len(m.state.Collection),
		FetchedAt: m.fetchedAt,
		Now:       m.now(),
	}
	parts := []string{
		headerbar.Render(m.viewMode, status, m.width),
		m.filter.View(),
	}

	if m.viewMode == headerbar.ViewCategories {
		parts = append(parts, m.categories.View())
	} else {
		parts = append(parts, m.table.View())
	}

	if n := toast.Render(m.state.Notification, m.width); n != "" {
		parts = append(parts, n)
	}
	parts = append(parts, styles.T().S().Subtle.Render(render.Truncate(statusHint, m.width)))

	view := strings.Join(parts, "\n")
	view = m.popups.RenderOverlay(view)
	return enforceHeight(view, m.height)
}

// enforceHeight pads or cuts view to exactly height lines.
func enforceHeight(view string, height int) string {
	lines := strings.Split(view, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
