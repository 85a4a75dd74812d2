// Package view holds the product list state and the pure filter/sort
// functions that derive what the table displays.
package view

import (
	"slices"
	"strings"

	"github.com/llehouerou/shelf/internal/catalog"
)

// Filter returns the items whose title, category or description contains
// text, ignoring case. Order is preserved and the input is never modified.
func Filter(items []catalog.Item, text string) []catalog.Item {
	if text == "" {
		return slices.Clone(items)
	}

	needle := strings.ToLower(text)
	out := make([]catalog.Item, 0, len(items))
	for _, it := range items {
		if matches(it, needle) {
			out = append(out, it)
		}
	}
	return out
}

func matches(it catalog.Item, needle string) bool {
	return strings.Contains(strings.ToLower(it.Title), needle) ||
		strings.Contains(strings.ToLower(it.Category), needle) ||
		strings.Contains(strings.ToLower(it.Description), needle)
}

// Sort returns a copy of items ordered by key. The sort is stable: items
// that compare equal keep their input order in both directions. SortNone
// returns the input order.
func Sort(items []catalog.Item, key SortKey, dir Direction) []catalog.Item {
	out := slices.Clone(items)
	cmp := comparator(key)
	if cmp == nil {
		return out
	}
	if dir == Descending {
		slices.SortStableFunc(out, func(a, b catalog.Item) int { return cmp(b, a) })
	} else {
		slices.SortStableFunc(out, cmp)
	}
	return out
}

func comparator(key SortKey) func(a, b catalog.Item) int {
	switch key {
	case SortTitle:
		return func(a, b catalog.Item) int { return strings.Compare(a.Title, b.Title) }
	case SortPrice:
		return func(a, b catalog.Item) int { return a.Price.Cmp(b.Price) }
	case SortCategory:
		return func(a, b catalog.Item) int { return strings.Compare(a.Category, b.Category) }
	case SortNone:
	}
	return nil
}

// InCategory keeps the items whose category is exactly name. An empty name
// keeps everything.
func InCategory(items []catalog.Item, name string) []catalog.Item {
	if name == "" {
		return items
	}
	out := make([]catalog.Item, 0, len(items))
	for _, it := range items {
		if it.Category == name {
			out = append(out, it)
		}
	}
	return out
}

// Derive applies the filter and then the sort to the full collection.
// Callers must always pass the original collection, never an earlier
// derived view, or widening the filter would lose items.
func Derive(collection []catalog.Item, text string, cfg SortConfig) []catalog.Item {
	return Sort(Filter(collection, text), cfg.Key, cfg.Dir)
}
