package models

import "strings"

// SortMode selects the ordering of the visible product list.
type SortMode string

const (
	SortNewest    SortMode = "newest"
	SortCheapest  SortMode = "cheapest"
	SortExpensive SortMode = "expensive"
	SortRating    SortMode = "rating"
)

// SortModes lists every supported mode.
var SortModes = []SortMode{SortNewest, SortCheapest, SortExpensive, SortRating}

// ParseSortMode converts a string into a SortMode.
func ParseSortMode(s string) (SortMode, bool) {
	mode := SortMode(strings.ToLower(strings.TrimSpace(s)))
	for _, m := range SortModes {
		if m == mode {
			return m, true
		}
	}
	return "", false
}

// Valid reports whether m is a known mode.
func (m SortMode) Valid() bool {
	_, ok := ParseSortMode(string(m))
	return ok
}

// PriceRange is an inclusive price window. Min <= Max, both non-negative.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains reports whether price lies within the range, bounds included.
func (r PriceRange) Contains(price float64) bool {
	return r.Min <= price && price <= r.Max
}

// FilterCriteria is the active combination of category, price, brand,
// rating, search and sort selections.
type FilterCriteria struct {
	CategoryID string     `json:"category_id,omitempty"` // Empty means no category restriction
	PriceRange PriceRange `json:"price_range"`
	Brands     []string   `json:"brands"`
	MinRating  float64    `json:"min_rating"`
	Query      string     `json:"query"`
	SortBy     SortMode   `json:"sort_by"`
}

// Clone returns a copy that shares no memory with c.
func (c FilterCriteria) Clone() FilterCriteria {
	out := c
	out.Brands = append([]string(nil), c.Brands...)
	if out.Brands == nil {
		out.Brands = []string{}
	}
	return out
}
