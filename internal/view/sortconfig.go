package view

import "fmt"

// SortKey names the column the derived view is ordered by.
type SortKey string

const (
	SortNone     SortKey = ""
	SortTitle    SortKey = "title"
	SortPrice    SortKey = "price"
	SortCategory SortKey = "category"
)

// SortKeys lists the sortable columns in header order.
var SortKeys = []SortKey{SortTitle, SortPrice, SortCategory}

// ParseSortKey maps a column name to a SortKey. The empty string and "none"
// map to SortNone.
func ParseSortKey(s string) (SortKey, error) {
	switch s {
	case "", "none":
		return SortNone, nil
	case string(SortTitle):
		return SortTitle, nil
	case string(SortPrice):
		return SortPrice, nil
	case string(SortCategory):
		return SortCategory, nil
	}
	return SortNone, fmt.Errorf("unknown sort key %q (want title, price or category)", s)
}

// Direction is the sort order of the active key.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

func (d Direction) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// Arrow is the header marker for the direction.
func (d Direction) Arrow() string {
	if d == Descending {
		return "▼"
	}
	return "▲"
}

// SortConfig is the active sort key and direction. The zero value is
// insertion order.
type SortConfig struct {
	Key SortKey
	Dir Direction
}

// Click returns the configuration after the header for key is selected.
// A new key starts ascending; the active key flips direction. Once a key is
// chosen there is no way back to SortNone through Click.
func (c SortConfig) Click(key SortKey) SortConfig {
	if key == SortNone {
		return c
	}
	if c.Key != key {
		return SortConfig{Key: key, Dir: Ascending}
	}
	if c.Dir == Ascending {
		return SortConfig{Key: key, Dir: Descending}
	}
	return SortConfig{Key: key, Dir: Ascending}
}

// Marker returns the arrow to draw next to the header for key, or "".
func (c SortConfig) Marker(key SortKey) string {
	if c.Key == SortNone || c.Key != key {
		return ""
	}
	return c.Dir.Arrow()
}
