// Package details is the popup showing every field of one product.
package details

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/shelf/internal/catalog"
	"github.com/llehouerou/shelf/internal/ui"
	"github.com/llehouerou/shelf/internal/ui/action"
	"github.com/llehouerou/shelf/internal/ui/popup"
	"github.com/llehouerou/shelf/internal/ui/render"
	"github.com/llehouerou/shelf/internal/ui/styles"
)

var _ popup.Popup = (*Model)(nil)

// Close signals the popup should close.
type Close struct{}

func (Close) ActionType() string { return "details.close" }

const labelWidth = 10

type Model struct {
	ui.Base
	item   catalog.Item
	scroll int
}

func New(item catalog.Item) *Model {
	return &Model{item: item}
}

// Item returns the product shown.
func (m *Model) Item() catalog.Item {
	return m.item
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "esc", "enter", "q":
		return m, action.Cmd("details", Close{})
	case "j", "down":
		m.scroll = min(m.scroll+1, m.maxScroll())
	case "k", "up":
		m.scroll = max(m.scroll-1, 0)
	}
	return m, nil
}

func (m *Model) lines() []string {
	s := styles.T().S()
	width := max(m.Width(), 20)
	valueWidth := width - labelWidth
	it := m.item

	field := func(label, value string, style lipgloss.Style) []string {
		wrapped := strings.Split(style.Render(wrap(value, valueWidth)), "\n")
		out := make([]string, 0, len(wrapped))
		for i, v := range wrapped {
			l := ""
			if i == 0 {
				l = label
			}
			out = append(out, s.Muted.Render(render.Pad(l, labelWidth))+v)
		}
		return out
	}

	rating := "not rated"
	if it.HasRating() {
		rating = fmt.Sprintf("%.1f / 5 from %s reviews", it.Rating.Rate, humanize.Comma(int64(it.Rating.Count)))
	}

	var lines []string
	lines = append(lines, strings.Split(s.Title.Render(wrap(it.Title, width)), "\n")...)
	lines = append(lines, "")
	lines = append(lines, field("Price", it.FormatPrice(), s.Price)...)
	lines = append(lines, field("Category", it.Category, s.Base)...)
	lines = append(lines, field("Rating", rating, s.Base)...)
	lines = append(lines, field("Image", it.Image, s.Muted)...)
	lines = append(lines, field("ID", fmt.Sprint(it.ID), s.Subtle)...)
	lines = append(lines, "")
	lines = append(lines, strings.Split(wrap(it.Description, width), "\n")...)
	return lines
}

// wrap breaks clean text on word boundaries, hard-breaking longer words
// such as URLs.
func wrap(text string, width int) string {
	return lipgloss.NewStyle().Width(width).Render(render.Sanitize(text))
}

// visibleHeight leaves room for the footer.
func (m *Model) visibleHeight() int {
	return max(m.Height()-2, 3)
}

func (m *Model) maxScroll() int {
	return max(len(m.lines())-m.visibleHeight(), 0)
}

func (m *Model) View() string {
	lines := m.lines()
	start := min(m.scroll, len(lines))
	end := min(start+m.visibleHeight(), len(lines))

	footer := "esc close"
	if m.maxScroll() > 0 {
		footer = "j/k scroll · " + footer
	}
	return strings.Join(lines[start:end], "\n") + "\n\n" + styles.T().S().Subtle.Render(footer)
}
