package styles

import "github.com/charmbracelet/lipgloss"

// PanelStyle returns the rounded border used around every panel.
func PanelStyle(focused bool) lipgloss.Style {
	t := T()
	color := t.Border
	if focused {
		color = t.BorderFocus
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(color)
}

// NotificationStyle returns the bordered box of the notification bar,
// colored by outcome.
func NotificationStyle(failed bool) lipgloss.Style {
	t := T()
	color := t.Success
	if failed {
		color = t.Error
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Padding(0, 1)
}
