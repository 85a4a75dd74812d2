// Package action defines how components report user intent to the app.
package action

import tea "github.com/charmbracelet/bubbletea"

// Action is something a component wants the app to do.
// ActionType names it for logging.
type Action interface {
	ActionType() string
}

// Msg wraps an Action with the name of the component that produced it.
type Msg struct {
	Source string // "producttable", "categorylist", "filterbar", ...
	Action Action
}

var _ tea.Msg = Msg{}

// Cmd returns a command that delivers a from source.
func Cmd(source string, a Action) tea.Cmd {
	return func() tea.Msg {
		return Msg{Source: source, Action: a}
	}
}
