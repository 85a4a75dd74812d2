// Package filterbar is the single-line filter input above the product table.
package filterbar

import (
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/shelf/internal/ui"
	"github.com/llehouerou/shelf/internal/ui/action"
	"github.com/llehouerou/shelf/internal/ui/render"
	"github.com/llehouerou/shelf/internal/ui/styles"
)

// Height is the bar including its border.
const Height = ui.FilterBarHeight

const (
	charLimit     = 256
	maxScopeWidth = 24
)

// Model wraps a text input. Edits are not reported through actions: the
// owner compares Value before and after Update so the list re-derives in
// keystroke order.
type Model struct {
	ui.Base
	input textinput.Model
	scope string
}

// New creates an unfocused, empty filter bar.
func New() Model {
	t := styles.T()
	ti := textinput.New()
	ti.Prompt = prompt("")
	ti.Placeholder = "filter by title, category or description"
	ti.CharLimit = charLimit
	ti.PromptStyle = t.S().Key
	ti.TextStyle = t.S().Base
	ti.PlaceholderStyle = t.S().Subtle
	ti.Cursor.SetMode(cursor.CursorStatic)
	return Model{input: ti}
}

// Focus gives the input the keyboard and returns the cursor blink command.
func (m *Model) Focus() tea.Cmd {
	m.SetFocused(true)
	return m.input.Focus()
}

func (m *Model) Blur() {
	m.SetFocused(false)
	m.input.Blur()
}

// Value returns the current filter text.
func (m Model) Value() string {
	return m.input.Value()
}

// SetValue replaces the text.
func (m *Model) SetValue(s string) {
	m.input.SetValue(s)
	m.input.CursorEnd()
}

// SetScope shows the category the filter applies within, or none for "".
func (m *Model) SetScope(category string) {
	if category == m.scope {
		return
	}
	m.scope = category
	m.input.Prompt = prompt(category)
	m.SetSize(m.Width(), m.Height())
}

func prompt(scope string) string {
	if scope == "" {
		return "/ "
	}
	return render.Truncate(render.Sanitize(scope), maxScopeWidth) + " / "
}

func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	// border + prompt + cursor cell
	m.input.Width = max(width-2-ansi.StringWidth(m.input.Prompt)-1, 1)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.IsFocused() {
		return m, nil
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter", "esc":
			m.Blur()
			return m, action.Cmd(source, Done{})
		case "ctrl+u":
			m.input.SetValue("")
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	width := max(m.Width()-2, 1)
	return styles.PanelStyle(m.IsFocused()).Width(width).Render(m.input.View())
}
