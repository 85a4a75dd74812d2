// Package listing prints the derived product view once, for use outside the
// interactive interface.
package listing

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/shelf/internal/catalog"
	"github.com/llehouerou/shelf/internal/ui/render"
	"github.com/llehouerou/shelf/internal/view"
)

const (
	titleWidth = 48
	imageWidth = 40
)

// Options selects the rows and their order.
type Options struct {
	Category string // exact category; "" for all
	Filter   string
	Sort     view.SortKey
	Desc     bool
}

// Derive runs items through the same transitions the interactive view uses:
// load, category, filter, then one or two header clicks.
func Derive(items []catalog.Item, opts Options) view.State {
	s := view.Reduce(view.NewState(), view.FetchStarted{})
	s = view.Reduce(s, view.FetchSucceeded{Items: items})
	if opts.Category != "" {
		s = view.Reduce(s, view.CategoryChosen{Name: opts.Category})
	}
	s = view.Reduce(s, view.FilterChanged{Text: opts.Filter})
	if opts.Sort == view.SortNone {
		return s
	}
	s = view.Reduce(s, view.HeaderClicked{Key: opts.Sort})
	if opts.Desc {
		s = view.Reduce(s, view.HeaderClicked{Key: opts.Sort})
	}
	return s
}

// Render draws the derived rows of s as a bordered table.
func Render(s view.State) string {
	header := func(name string, key view.SortKey) string {
		if m := s.Sort.Marker(key); m != "" {
			return name + " " + m
		}
		return name
	}

	rows := make([][]string, 0, len(s.Derived))
	for _, it := range s.Derived {
		rows = append(rows, []string{
			strconv.FormatInt(it.ID, 10),
			render.Truncate(render.Sanitize(it.Title), titleWidth),
			render.Sanitize(it.Category),
			it.FormatPrice(),
			render.Truncate(it.Image, imageWidth),
		})
	}

	headerStyle := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)
	priceStyle := cellStyle.Align(lipgloss.Right)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", header("Title", view.SortTitle), header("Category", view.SortCategory),
			header("Price", view.SortPrice), "Image").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 3:
				return priceStyle
			default:
				return cellStyle
			}
		})
	return t.String() + "\n" + Summary(s) + "\n"
}

// Summary is the line printed under the table.
func Summary(s view.State) string {
	shown := humanize.Comma(int64(len(s.Derived)))
	total := humanize.Comma(int64(len(s.Collection)))
	if len(s.Derived) == len(s.Collection) {
		return total + " products"
	}
	return shown + " of " + total + " products"
}
