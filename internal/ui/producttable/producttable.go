// Package producttable renders the derived product list as a table with
// sortable headers.
package producttable

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/shelf/internal/catalog"
	"github.com/llehouerou/shelf/internal/ui"
	"github.com/llehouerou/shelf/internal/ui/action"
	"github.com/llehouerou/shelf/internal/ui/cursor"
	"github.com/llehouerou/shelf/internal/ui/render"
	"github.com/llehouerou/shelf/internal/ui/styles"
	"github.com/llehouerou/shelf/internal/view"
)

// HeaderRow is the line of the column titles, counted from the top border.
const HeaderRow = 1

// Model is the product table. It only displays what it is given; ordering
// and filtering happen in the view package.
type Model struct {
	ui.Base
	cursor      cursor.Cursor
	items       []catalog.Item
	sort        view.SortConfig
	placeholder string
}

func New() Model {
	return Model{cursor: cursor.New(ui.ScrollMargin)}
}

// SetItems replaces the rows. The selected product stays selected when it
// is still listed.
func (m *Model) SetItems(items []catalog.Item) {
	selected, had := m.Selected()
	m.items = items
	if had {
		if i := slices.IndexFunc(items, func(it catalog.Item) bool { return it.ID == selected.ID }); i >= 0 {
			m.cursor.Jump(i, len(items), m.BodyHeight())
			return
		}
	}
	m.cursor.Fit(len(items), m.BodyHeight())
}

// SetSort sets which header carries the sort arrow.
func (m *Model) SetSort(cfg view.SortConfig) {
	m.sort = cfg
}

// SetPlaceholder sets the text shown when there are no rows.
func (m *Model) SetPlaceholder(s string) {
	m.placeholder = s
}

func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.cursor.Fit(len(m.items), m.BodyHeight())
}

// Selected returns the product under the cursor.
func (m Model) Selected() (catalog.Item, bool) {
	if len(m.items) == 0 {
		return catalog.Item{}, false
	}
	return m.items[m.cursor.Pos()], true
}

// HeaderAt returns the sort key of the header cell at column x, counted
// from the left border.
func (m Model) HeaderAt(x int) (view.SortKey, bool) {
	pos := 1
	for _, c := range layout(m.innerWidth()) {
		if x >= pos && x < pos+c.width {
			return c.key, c.key != view.SortNone
		}
		pos += c.width + 1
	}
	return view.SortNone, false
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.IsFocused() {
		return m, nil
	}
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if m.cursor.HandleKey(key.String(), len(m.items), m.BodyHeight()) {
		return m, nil
	}
	if key.String() == "enter" {
		if it, ok := m.Selected(); ok {
			return m, action.Cmd(source, ShowDetails{Item: it})
		}
	}
	return m, nil
}

func (m Model) innerWidth() int {
	return max(m.Width()-2, 1)
}

func (m Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}
	s := styles.T().S()
	width := m.innerWidth()
	cols := layout(width)
	body := m.BodyHeight()

	lines := make([]string, 0, body+2)
	lines = append(lines, m.header(cols, width), s.Subtle.Render(render.Separator(width)))

	if len(m.items) == 0 {
		for i := range body {
			text := ""
			if i == body/2 {
				text = m.placeholder
			}
			lines = append(lines, s.Muted.Render(centered(text, width)))
		}
	} else {
		start, end := m.cursor.VisibleRange(len(m.items), body)
		for i := start; i < end; i++ {
			lines = append(lines, m.row(i, cols, width))
		}
		for range body - (end - start) {
			lines = append(lines, strings.Repeat(" ", width))
		}
	}

	return styles.PanelStyle(m.IsFocused()).Render(strings.Join(lines, "\n"))
}

func (m Model) header(cols []column, width int) string {
	s := styles.T().S()
	cells := make([]string, 0, len(cols))
	for _, c := range cols {
		title := c.title
		if marker := m.sort.Marker(c.key); marker != "" {
			title += " " + marker
		}
		text := cell(title, c.width, c.right)
		if c.key != view.SortNone && c.key == m.sort.Key {
			cells = append(cells, s.HeaderActive.Render(text))
		} else {
			cells = append(cells, s.Header.Render(text))
		}
	}
	return render.Pad(strings.Join(cells, " "), width)
}

func (m Model) row(i int, cols []column, width int) string {
	s := styles.T().S()
	it := m.items[i]
	cells := make([]string, 0, len(cols))
	for _, c := range cols {
		cells = append(cells, cell(c.cell(it), c.width, c.right))
	}
	line := render.Clip(strings.Join(cells, " "), width)

	var style lipgloss.Style
	switch {
	case i == m.cursor.Pos() && m.IsFocused():
		style = s.Cursor
	case i%2 == 1:
		style = s.Stripe.Foreground(styles.T().FgBase)
	default:
		style = s.Base
	}
	return style.Render(line)
}

func cell(text string, width int, right bool) string {
	text = render.Truncate(text, width)
	if right {
		return render.PadLeft(text, width)
	}
	return render.Pad(text, width)
}

func centered(text string, width int) string {
	text = render.Truncate(text, width)
	w := lipgloss.Width(text)
	left := (width - w) / 2
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", width-w-left)
}
