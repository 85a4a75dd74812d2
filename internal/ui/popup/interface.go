// Package popup draws modal boxes over the main view.
package popup

import tea "github.com/charmbracelet/bubbletea"

// Popup is a modal component. It receives every key while open and closes
// itself by emitting an action.
type Popup interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Popup, tea.Cmd)
	// View renders the content only; the app adds the border and centers it.
	View() string
	SetSize(width, height int)
}
