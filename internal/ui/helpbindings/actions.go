package helpbindings

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/shelf/internal/ui/action"
)

const source = "helpbindings"

// Close signals the help popup should close.
type Close struct{}

func (Close) ActionType() string { return "helpbindings.close" }

func closeCmd() tea.Cmd {
	return action.Cmd(source, Close{})
}
