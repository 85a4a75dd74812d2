package keymap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var contexts = []string{"global", "sort", "list", "products", "categories", "filter"}

func TestAll_KnownContexts(t *testing.T) {
	for _, b := range All {
		assert.Contains(t, contexts, b.Context, "binding %q", b.Description)
		assert.NotEmpty(t, b.Keys, "binding %q", b.Description)
		assert.NotEmpty(t, b.Description)
	}
}

func TestAll_NoKeyClashWithinScope(t *testing.T) {
	// Global, sort and list keys are resolved together outside the filter.
	seen := map[string]string{}
	for _, b := range All {
		if b.Context == "filter" || b.Context == "products" || b.Context == "categories" {
			continue
		}
		for _, k := range b.Keys {
			prev, dup := seen[k]
			assert.False(t, dup, "key %q bound to %q and %q", k, prev, b.Description)
			seen[k] = b.Description
		}
	}
}

func TestByContext(t *testing.T) {
	sorts := ByContext("sort")
	assert.Len(t, sorts, 3)
	for _, b := range sorts {
		assert.Equal(t, "sort", b.Context)
	}
	assert.Empty(t, ByContext("nonexistent"))
}
