// Package helpbindings is the scrollable key binding reference.
package helpbindings

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/shelf/internal/keymap"
	"github.com/llehouerou/shelf/internal/ui"
	"github.com/llehouerou/shelf/internal/ui/popup"
	"github.com/llehouerou/shelf/internal/ui/render"
	"github.com/llehouerou/shelf/internal/ui/styles"
)

var _ popup.Popup = (*Model)(nil)

var categoryOrder = []string{"global", "sort", "list", "products", "categories", "filter"}

var categoryLabels = map[string]string{
	"global":     "Global",
	"sort":       "Sorting (again to reverse)",
	"list":       "Lists",
	"products":   "Products",
	"categories": "Categories",
	"filter":     "Filter Input",
}

// Model holds the state for the help popup.
type Model struct {
	ui.Base
	bindings     []keymap.Binding
	scrollOffset int
}

// New creates a help popup showing the given contexts, in display order.
func New(contexts ...string) *Model {
	m := &Model{}
	for _, ctx := range categoryOrder {
		if slices.Contains(contexts, ctx) {
			m.bindings = append(m.bindings, keymap.ByContext(ctx)...)
		}
	}
	return m
}

// AllContexts lists every binding context.
func AllContexts() []string {
	return slices.Clone(categoryOrder)
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "?", "esc", "q":
		return m, closeCmd()
	case "j", "down":
		m.scrollOffset = min(m.scrollOffset+1, m.maxScroll())
	case "k", "up":
		m.scrollOffset = max(m.scrollOffset-1, 0)
	case "g", "home":
		m.scrollOffset = 0
	case "G", "end":
		m.scrollOffset = m.maxScroll()
	}
	return m, nil
}

func (m *Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}

	lines := m.lines()
	maxWidth := 0
	for _, line := range lines {
		maxWidth = max(maxWidth, lipgloss.Width(line))
	}

	start := min(m.scrollOffset, len(lines))
	end := min(start+m.visibleHeight(), len(lines))
	visible := make([]string, 0, end-start)
	for _, line := range lines[start:end] {
		visible = append(visible, line+strings.Repeat(" ", maxWidth-lipgloss.Width(line)))
	}

	return strings.Join(visible, "\n") + "\n\n" + styles.T().S().Subtle.Render(m.footer())
}

func (m *Model) lines() []string {
	s := styles.T().S()

	keyWidth := 0
	for _, b := range m.bindings {
		keyWidth = max(keyWidth, lipgloss.Width(strings.Join(b.Keys, ", ")))
	}

	var lines []string
	context := ""
	for _, b := range m.bindings {
		if b.Context != context {
			if context != "" {
				lines = append(lines, "")
			}
			label := categoryLabels[b.Context]
			if label == "" {
				label = b.Context
			}
			lines = append(lines,
				s.Warning.Bold(true).Render(label),
				s.Subtle.Render(render.Separator(keyWidth+20)))
			context = b.Context
		}
		keys := render.Pad(strings.Join(b.Keys, ", "), keyWidth)
		lines = append(lines, s.Key.Bold(true).Render(keys)+"  "+s.Base.Render(b.Description))
	}
	return lines
}

func (m *Model) footer() string {
	if m.maxScroll() == 0 {
		return "?/esc close"
	}
	return "j/k scroll · ?/esc close"
}

// visibleHeight leaves room for the footer.
func (m *Model) visibleHeight() int {
	return max(m.Height()-2, 3)
}

func (m *Model) maxScroll() int {
	return max(len(m.lines())-m.visibleHeight(), 0)
}
