package categorylist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/shelf/internal/catalog"
	"github.com/llehouerou/shelf/internal/ui/testutil"
)

func categories() []catalog.CategoryCount {
	return []catalog.CategoryCount{
		{Name: "electronics", Count: 6},
		{Name: "jewelery", Count: 4},
		{Name: "men's clothing", Count: 4},
		{Name: "women's clothing", Count: 1206},
	}
}

func newList(width, height int) Model {
	m := New()
	m.SetSize(width, height)
	m.SetFocused(true)
	m.SetCategories(categories())
	return m
}

func TestEnter_Chooses(t *testing.T) {
	h := testutil.NewHarness(newList(60, 12))

	actions := testutil.Actions(h.Press("j", "enter"))
	require.Len(t, actions, 1)
	assert.Equal(t, Choose{Name: "jewelery"}, actions[0])
}

func TestEnter_Empty(t *testing.T) {
	m := New()
	m.SetSize(60, 12)
	m.SetFocused(true)
	h := testutil.NewHarness(m)
	assert.Nil(t, h.Press("enter"))
}

func TestView(t *testing.T) {
	m := newList(60, 12)
	m.SetActive("men's clothing")
	view := m.View()

	assert.Contains(t, testutil.FindLine(view, "women's clothing"), "1,206")
	assert.Contains(t, testutil.StripANSI(view), "● men's clothing")
	assert.NotContains(t, testutil.FindLine(view, "women's clothing"), "●", "only the exact category is marked")
	assert.NotContains(t, testutil.FindLine(view, "electronics"), "●")

	lines := testutil.SplitLines(view)
	require.Len(t, lines, 12)
	for _, line := range lines {
		assert.Equal(t, 60, testutil.MeasureWidth(line))
	}
}

func TestView_Empty(t *testing.T) {
	m := New()
	m.SetSize(40, 8)
	view := m.View()
	assert.NotEmpty(t, testutil.FindLine(view, "No categories yet"))
	assert.Len(t, testutil.SplitLines(view), 8)
}
