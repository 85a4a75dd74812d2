// Package categorylist shows the categories of the loaded catalogue with
// their product counts.
package categorylist

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/shelf/internal/catalog"
	"github.com/llehouerou/shelf/internal/ui"
	"github.com/llehouerou/shelf/internal/ui/action"
	"github.com/llehouerou/shelf/internal/ui/cursor"
	"github.com/llehouerou/shelf/internal/ui/render"
	"github.com/llehouerou/shelf/internal/ui/styles"
)

const countWidth = 10

type Model struct {
	ui.Base
	cursor     cursor.Cursor
	categories []catalog.CategoryCount
	active     string // category the products view is narrowed to
}

func New() Model {
	return Model{cursor: cursor.New(ui.ScrollMargin)}
}

// SetCategories replaces the list.
func (m *Model) SetCategories(c []catalog.CategoryCount) {
	m.categories = c
	m.cursor.Fit(len(c), m.BodyHeight())
}

// SetActive marks the category the products view is narrowed to.
func (m *Model) SetActive(category string) {
	m.active = category
}

func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.cursor.Fit(len(m.categories), m.BodyHeight())
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.IsFocused() {
		return m, nil
	}
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if m.cursor.HandleKey(key.String(), len(m.categories), m.BodyHeight()) {
		return m, nil
	}
	if key.String() == "enter" && len(m.categories) > 0 {
		return m, action.Cmd(source, Choose{Name: m.categories[m.cursor.Pos()].Name})
	}
	return m, nil
}

func (m Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}
	s := styles.T().S()
	width := max(m.Width()-2, 1)
	nameWidth := max(width-countWidth-1, 1)
	body := m.BodyHeight()

	lines := make([]string, 0, body+2)
	lines = append(lines,
		s.Header.Render(render.Pad("Category", nameWidth)+" "+render.PadLeft("Products", countWidth)),
		s.Subtle.Render(render.Separator(width)))

	start, end := m.cursor.VisibleRange(len(m.categories), body)
	for i := start; i < end; i++ {
		c := m.categories[i]
		name := c.Name
		if m.active != "" && name == m.active {
			name = "● " + name
		}
		line := render.TruncateAndPad(name, nameWidth) + " " +
			render.PadLeft(humanize.Comma(int64(c.Count)), countWidth)
		switch {
		case i == m.cursor.Pos() && m.IsFocused():
			line = s.Cursor.Render(line)
		case i%2 == 1:
			line = s.Stripe.Foreground(styles.T().FgBase).Render(line)
		default:
			line = s.Base.Render(line)
		}
		lines = append(lines, line)
	}
	if len(m.categories) == 0 && body > 0 {
		lines = append(lines, s.Muted.Render(render.Pad("No categories yet", width)))
		end++
	}
	for range body - (end - start) {
		lines = append(lines, render.Pad("", width))
	}

	return styles.PanelStyle(m.IsFocused()).Render(strings.Join(lines, "\n"))
}
