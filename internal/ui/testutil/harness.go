package testutil

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/shelf/internal/ui/popup"
)

// Model is any component whose Update returns its own type.
type Model[M any] interface {
	Update(msg tea.Msg) (M, tea.Cmd)
	View() string
}

// Harness wraps a component, feeds it keys and collects the commands it
// returns.
type Harness[M Model[M]] struct {
	model M
	cmds  []tea.Cmd
}

// NewHarness wraps m.
func NewHarness[M Model[M]](m M) *Harness[M] {
	return &Harness[M]{model: m}
}

// NewPopupHarness wraps p and records its Init command.
func NewPopupHarness(p popup.Popup) *Harness[popup.Popup] {
	h := NewHarness(p)
	if cmd := p.Init(); cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return h
}

// Model returns the current component.
func (h *Harness[M]) Model() M {
	return h.model
}

func (h *Harness[M]) View() string {
	return h.model.View()
}

// Send delivers msg and returns the resulting command.
func (h *Harness[M]) Send(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	h.model, cmd = h.model.Update(msg)
	if cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return cmd
}

// Press sends each named key in order and returns the last command.
func (h *Harness[M]) Press(keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		cmd = h.Send(Key(k))
	}
	return cmd
}

// Type sends text one rune at a time.
func (h *Harness[M]) Type(text string) tea.Cmd {
	var cmd tea.Cmd
	for _, r := range text {
		cmd = h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return cmd
}

// Commands returns every non-nil command collected so far.
func (h *Harness[M]) Commands() []tea.Cmd {
	return h.cmds
}

// LastCommand returns the most recent command, or nil.
func (h *Harness[M]) LastCommand() tea.Cmd {
	if len(h.cmds) == 0 {
		return nil
	}
	return h.cmds[len(h.cmds)-1]
}

func (h *Harness[M]) ClearCommands() {
	h.cmds = nil
}
