package toast

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/shelf/internal/ui/testutil"
	"github.com/llehouerou/shelf/internal/view"
)

func TestRender_Nil(t *testing.T) {
	assert.Empty(t, Render(nil, 80))
}

func TestRender_Severity(t *testing.T) {
	ok := testutil.StripANSI(Render(&view.Notification{ID: 1, Severity: view.SeveritySuccess, Message: "Loaded 20 products"}, 80))
	assert.Contains(t, ok, "✓ Loaded 20 products")
	assert.Contains(t, ok, "x dismiss")

	failed := testutil.StripANSI(Render(&view.Notification{ID: 2, Severity: view.SeverityError, Message: "Failed to fetch products: boom"}, 80))
	assert.Contains(t, failed, "✗ Failed to fetch products: boom")
}

func TestRender_FixedSize(t *testing.T) {
	long := strings.Repeat("very long message ", 20)
	for _, width := range []int{20, 40, 120} {
		out := Render(&view.Notification{Message: long}, width)
		lines := testutil.SplitLines(out)
		require.Len(t, lines, Height, "width %d", width)
		for _, line := range lines {
			assert.Equal(t, width, testutil.MeasureWidth(line), "width %d", width)
		}
	}
}
