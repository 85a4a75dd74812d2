// Package catalog fetches the product catalogue from a JSON listing endpoint.
package catalog

import (
	"github.com/shopspring/decimal"
)

// Item is a single product record. Identity is ID; the other fields only
// change when the catalogue is fetched again.
type Item struct {
	ID          int64           `json:"id"`
	Title       string          `json:"title"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Image       string          `json:"image"`
	Rating      Rating          `json:"rating"`
}

// Rating is the optional review summary some endpoints attach to items.
type Rating struct {
	Rate  float64 `json:"rate"`
	Count int     `json:"count"`
}

// HasRating reports whether the endpoint returned review data for the item.
func (i Item) HasRating() bool {
	return i.Rating.Count > 0
}

// FormatPrice renders the price as dollars with two decimal places.
func (i Item) FormatPrice() string {
	return "$" + i.Price.StringFixed(2)
}
