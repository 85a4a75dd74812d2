package producttable

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/shelf/internal/catalog"
	"github.com/llehouerou/shelf/internal/ui/testutil"
	"github.com/llehouerou/shelf/internal/view"
)

func products() []catalog.Item {
	return []catalog.Item{
		{ID: 1, Title: "Fjallraven Backpack", Price: decimal.RequireFromString("109.95"), Category: "men's clothing",
			Image: "https://fakestoreapi.com/img/81fPKd-2AYL._AC_SL1500_.jpg", Rating: catalog.Rating{Rate: 3.9, Count: 120}},
		{ID: 2, Title: "Mens Casual T-Shirt", Price: decimal.RequireFromString("22.3"), Category: "men's clothing"},
		{ID: 5, Title: "Dragon Bracelet", Price: decimal.RequireFromString("695"), Category: "jewelery",
			Rating: catalog.Rating{Rate: 4.6, Count: 1400}},
	}
}

func newTable(width, height int, items []catalog.Item) Model {
	m := New()
	m.SetSize(width, height)
	m.SetFocused(true)
	m.SetItems(items)
	return m
}

func TestView_Rows(t *testing.T) {
	m := newTable(120, 12, products())
	view := testutil.StripANSI(m.View())

	line := testutil.FindLine(view, "Dragon Bracelet")
	require.NotEmpty(t, line)
	assert.Contains(t, line, "$695.00")
	assert.Contains(t, line, "jewelery")
	assert.Contains(t, line, "★ 4.6 (1,400)")

	assert.Contains(t, testutil.FindLine(view, "Mens Casual"), "$22.30")
	assert.Contains(t, testutil.FindLine(view, "Mens Casual"), "–", "missing rating")
	assert.Contains(t, testutil.FindLine(view, "Fjallraven"), "https://fakestoreapi.com/")
}

func TestView_FixedSize(t *testing.T) {
	for _, width := range []int{40, 70, 120} {
		m := newTable(width, 10, products())
		lines := testutil.SplitLines(m.View())
		require.Len(t, lines, 10, "width %d", width)
		for _, line := range lines {
			assert.Equal(t, width, testutil.MeasureWidth(line), "width %d", width)
		}
	}
}

func TestView_SortMarker(t *testing.T) {
	m := newTable(120, 10, products())

	header := testutil.FindLine(m.View(), "Title")
	assert.NotContains(t, header, "▲")
	assert.NotContains(t, header, "▼")

	m.SetSort(view.SortConfig{Key: view.SortPrice, Dir: view.Descending})
	header = testutil.FindLine(m.View(), "Title")
	assert.Contains(t, header, "Price ▼")
	assert.NotContains(t, header, "Title ▼")

	m.SetSort(view.SortConfig{Key: view.SortTitle})
	assert.Contains(t, testutil.FindLine(m.View(), "Title"), "Title ▲")
}

func TestView_Placeholder(t *testing.T) {
	m := newTable(80, 10, nil)
	m.SetPlaceholder("No products match \"zzz\"")
	assert.NotEmpty(t, testutil.FindLine(m.View(), "No products match \"zzz\""))
}

func TestView_NarrowDropsColumns(t *testing.T) {
	wide := testutil.StripANSI(newTable(120, 8, products()).View())
	assert.Contains(t, wide, "Image")
	assert.Contains(t, wide, "Rating")

	mid := testutil.StripANSI(newTable(70, 8, products()).View())
	assert.NotContains(t, mid, "Image")
	assert.Contains(t, mid, "Rating")

	narrow := testutil.StripANSI(newTable(50, 8, products()).View())
	assert.NotContains(t, narrow, "Rating")
	assert.Contains(t, narrow, "Price")
}

func TestLayout_FillsWidth(t *testing.T) {
	for _, width := range []int{48, 68, 118, 200} {
		cols := layout(width)
		total := len(cols) - 1
		for _, c := range cols {
			total += c.width
		}
		assert.Equal(t, width, total, "width %d", width)
	}
}

func TestEnter_ShowsDetails(t *testing.T) {
	h := testutil.NewHarness(newTable(120, 12, products()))

	actions := testutil.Actions(h.Press("j", "j", "enter"))
	require.Len(t, actions, 1)
	details, ok := actions[0].(ShowDetails)
	require.True(t, ok)
	assert.Equal(t, int64(5), details.Item.ID)
}

func TestEnter_EmptyTable(t *testing.T) {
	h := testutil.NewHarness(newTable(120, 12, nil))
	assert.Nil(t, h.Press("enter"))
}

func TestUnfocused_IgnoresKeys(t *testing.T) {
	m := newTable(120, 12, products())
	m.SetFocused(false)
	h := testutil.NewHarness(m)
	h.Press("j")
	sel, _ := h.Model().Selected()
	assert.Equal(t, int64(1), sel.ID)
}

func TestSetItems_KeepsSelection(t *testing.T) {
	h := testutil.NewHarness(newTable(120, 12, products()))
	h.Press("G")

	m := h.Model()
	sel, _ := m.Selected()
	require.Equal(t, int64(5), sel.ID)

	// Re-sorted: the bracelet moves to the top.
	items := products()
	m.SetItems([]catalog.Item{items[2], items[0], items[1]})
	sel, _ = m.Selected()
	assert.Equal(t, int64(5), sel.ID)

	// Filtered out: the cursor stays in range.
	m.SetItems(items[:1])
	sel, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, int64(1), sel.ID)

	m.SetItems(nil)
	_, ok = m.Selected()
	assert.False(t, ok)
}

func TestHeaderAt(t *testing.T) {
	m := newTable(120, 10, products())
	header := testutil.StripANSI(testutil.SplitLines(m.View())[HeaderRow])

	for _, tt := range []struct {
		label string
		want  view.SortKey
	}{
		{"Title", view.SortTitle},
		{"Category", view.SortCategory},
		{"Price", view.SortPrice},
	} {
		x := strings.Index(header, tt.label)
		require.GreaterOrEqual(t, x, 0, tt.label)
		// Byte offset equals cell offset: the border is the only multi-byte rune before.
		x -= len("│") - 1
		got, ok := m.HeaderAt(x)
		assert.True(t, ok, tt.label)
		assert.Equal(t, tt.want, got, tt.label)
	}

	_, ok := m.HeaderAt(2) // "#" column
	assert.False(t, ok)
	_, ok = m.HeaderAt(0) // border
	assert.False(t, ok)
}
