package catalog

import (
	"slices"
	"strings"
)

// CategoryCount is a category name with the number of items filed under it.
type CategoryCount struct {
	Name  string
	Count int
}

// Categories groups items by category, sorted by name.
func Categories(items []Item) []CategoryCount {
	counts := make(map[string]int)
	for _, it := range items {
		counts[it.Category]++
	}

	result := make([]CategoryCount, 0, len(counts))
	for name, n := range counts {
		result = append(result, CategoryCount{Name: name, Count: n})
	}
	slices.SortFunc(result, func(a, b CategoryCount) int {
		return strings.Compare(a.Name, b.Name)
	})
	return result
}
