package services

import (
	"cmp"
	"slices"
	"strings"

	"etalase/internal/catalog"
	"etalase/internal/models"
)

// VisibleProducts derives the product list for the current criteria. The
// result is recomputed on every call.
func (s *CommerceStore) VisibleProducts() []models.Product {
	return DeriveVisible(s.catalog, s.Criteria())
}

// DeriveVisible filters cat by c and sorts the survivors. All predicates must
// hold for a product to be kept:
//
//   - category: none selected, or the product's category matches
//   - price: within the inclusive range
//   - brand: no brands selected, or the product's brand is selected
//   - rating: at least the minimum rating
//   - search: empty query, or the trimmed, case-folded query is a substring of
//     the product name or its brand name
//
// Sorting is stable with catalog order as the final tie-breaker. An empty
// result is a normal outcome.
func DeriveVisible(cat *catalog.Catalog, c models.FilterCriteria) []models.Product {
	query := strings.ToLower(strings.TrimSpace(c.Query))

	var brands map[string]struct{}
	if len(c.Brands) > 0 {
		brands = make(map[string]struct{}, len(c.Brands))
		for _, id := range c.Brands {
			brands[id] = struct{}{}
		}
	}

	out := make([]models.Product, 0)
	for _, p := range cat.Products() {
		if c.CategoryID != "" && p.CategoryID != c.CategoryID {
			continue
		}
		if !c.PriceRange.Contains(p.Price) {
			continue
		}
		if brands != nil {
			if _, ok := brands[p.BrandID]; !ok {
				continue
			}
		}
		if p.Rating < c.MinRating {
			continue
		}
		if query != "" && !matchesQuery(p.Name, cat.BrandName(p.BrandID), query) {
			continue
		}
		out = append(out, p)
	}

	slices.SortStableFunc(out, comparator(c.SortBy))
	return out
}

func matchesQuery(name, brand, query string) bool {
	return strings.Contains(strings.ToLower(name), query) ||
		strings.Contains(strings.ToLower(brand), query)
}

func comparator(mode models.SortMode) func(a, b models.Product) int {
	switch mode {
	case models.SortCheapest:
		return func(a, b models.Product) int {
			return cmp.Or(cmp.Compare(a.Price, b.Price), cmp.Compare(a.Position, b.Position))
		}
	case models.SortExpensive:
		return func(a, b models.Product) int {
			return cmp.Or(cmp.Compare(b.Price, a.Price), cmp.Compare(a.Position, b.Position))
		}
	case models.SortRating:
		return func(a, b models.Product) int {
			return cmp.Or(
				cmp.Compare(b.Rating, a.Rating),
				cmp.Compare(b.ReviewCount, a.ReviewCount),
				cmp.Compare(a.Position, b.Position),
			)
		}
	default:
		// newest: most recently added first
		return func(a, b models.Product) int {
			return cmp.Compare(b.Position, a.Position)
		}
	}
}
