package producttable

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/llehouerou/shelf/internal/catalog"
	"github.com/llehouerou/shelf/internal/view"
)

type column struct {
	title string
	key   view.SortKey // SortNone: not sortable
	width int
	right bool
	cell  func(catalog.Item) string
}

const (
	idWidth       = 4
	categoryWidth = 18
	priceWidth    = 10
	ratingWidth   = 13
	minTitleWidth = 12
	// below this the image column is dropped
	minImageWidth = 16
)

func idCell(it catalog.Item) string       { return fmt.Sprint(it.ID) }
func titleCell(it catalog.Item) string    { return it.Title }
func categoryCell(it catalog.Item) string { return it.Category }
func priceCell(it catalog.Item) string    { return it.FormatPrice() }
func imageCell(it catalog.Item) string    { return it.Image }

func ratingCell(it catalog.Item) string {
	if !it.HasRating() {
		return "–"
	}
	return fmt.Sprintf("★ %.1f (%s)", it.Rating.Rate, humanize.Comma(int64(it.Rating.Count)))
}

// layout fits the columns into width cells, one space between columns.
// Title and image share what the fixed columns leave, title taking the
// larger part; narrow screens lose the image then the rating.
func layout(width int) []column {
	cols := []column{
		{title: "#", width: idWidth, right: true, cell: idCell},
		{title: "Title", key: view.SortTitle, cell: titleCell},
		{title: "Category", key: view.SortCategory, width: categoryWidth, cell: categoryCell},
		{title: "Price", key: view.SortPrice, width: priceWidth, right: true, cell: priceCell},
		{title: "Rating", width: ratingWidth, cell: ratingCell},
		{title: "Image", cell: imageCell},
	}

	fixed := func(cs []column) int {
		total := len(cs) - 1 // separators
		for _, c := range cs {
			total += c.width
		}
		return total
	}

	flex := width - fixed(cols)
	if flex < minTitleWidth+minImageWidth {
		cols = cols[:len(cols)-1] // image
		flex = width - fixed(cols)
		if flex < minTitleWidth {
			cols = cols[:4] // rating
			flex = width - fixed(cols)
		}
		cols[1].width = max(flex, 1)
		return cols
	}

	image := max(flex*2/5, minImageWidth)
	cols[1].width = flex - image
	cols[5].width = image
	return cols
}
