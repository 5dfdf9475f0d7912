package services

import (
	"slices"

	"etalase/internal/models"

	"go.uber.org/zap"
)

// MaxRating is the top of the rating scale.
const MaxRating = 5.0

// DefaultCriteria returns the criteria a fresh store starts with: no
// category, the full catalog price span, no brands, no rating floor, an empty
// query and newest-first sorting.
func (s *CommerceStore) DefaultCriteria() models.FilterCriteria {
	return models.FilterCriteria{
		PriceRange: models.PriceRange{Min: 0, Max: s.catalog.MaxPrice()},
		Brands:     []string{},
		SortBy:     models.SortNewest,
	}
}

// Criteria returns a snapshot of the active criteria.
func (s *CommerceStore) Criteria() models.FilterCriteria {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.criteria.Clone()
}

// SetCategory restricts the list to one category. An empty ID clears it.
func (s *CommerceStore) SetCategory(categoryID string) {
	s.updateCriteria("set_category", func(c *models.FilterCriteria) {
		c.CategoryID = categoryID
	})
}

// SetPriceRange replaces the price window. Negative bounds clamp to zero and
// reversed bounds are swapped so that min <= max always holds.
func (s *CommerceStore) SetPriceRange(lo, hi float64) {
	lo, hi = clampPriceRange(lo, hi)
	s.updateCriteria("set_price_range", func(c *models.FilterCriteria) {
		c.PriceRange = models.PriceRange{Min: lo, Max: hi}
	})
}

// SetBrands replaces the whole brand selection. Duplicates are collapsed; an
// empty selection removes the brand restriction.
func (s *CommerceStore) SetBrands(brandIDs []string) {
	brands := make([]string, 0, len(brandIDs))
	for _, id := range brandIDs {
		if !slices.Contains(brands, id) {
			brands = append(brands, id)
		}
	}
	s.updateCriteria("set_brands", func(c *models.FilterCriteria) {
		c.Brands = brands
	})
}

// SetMinRating sets the rating floor, clamped to [0, MaxRating].
func (s *CommerceStore) SetMinRating(rating float64) {
	rating = min(max(rating, 0), MaxRating)
	s.updateCriteria("set_min_rating", func(c *models.FilterCriteria) {
		c.MinRating = rating
	})
}

// ToggleMinRating sets the rating floor to rating, or clears it to zero when
// rating is already the active floor. The check and the update happen under
// one lock.
func (s *CommerceStore) ToggleMinRating(rating float64) {
	rating = min(max(rating, 0), MaxRating)
	s.updateCriteria("set_min_rating", func(c *models.FilterCriteria) {
		if c.MinRating == rating {
			c.MinRating = 0
			return
		}
		c.MinRating = rating
	})
}

// SetSearchQuery replaces the free-text query. It is stored as given;
// trimming and case folding happen during derivation.
func (s *CommerceStore) SetSearchQuery(query string) {
	s.updateCriteria("set_search_query", func(c *models.FilterCriteria) {
		c.Query = query
	})
}

// SetSortBy selects the sort mode. Unknown modes are ignored.
func (s *CommerceStore) SetSortBy(mode models.SortMode) {
	parsed, ok := models.ParseSortMode(string(mode))
	if !ok {
		s.logger.Debug("ignoring unknown sort mode", zap.String("mode", string(mode)))
		return
	}
	s.updateCriteria("set_sort_by", func(c *models.FilterCriteria) {
		c.SortBy = parsed
	})
}

// ResetFilters restores every criteria field to its default in one update.
func (s *CommerceStore) ResetFilters() {
	defaults := s.DefaultCriteria()
	s.updateCriteria("reset", func(c *models.FilterCriteria) {
		*c = defaults
	})
}

// updateCriteria applies fn to a copy of the criteria and swaps it in only if
// something differs.
func (s *CommerceStore) updateCriteria(action string, fn func(*models.FilterCriteria)) {
	s.mu.Lock()
	next := s.criteria.Clone()
	fn(&next)
	if criteriaEqual(s.criteria, next) {
		s.mu.Unlock()
		return
	}
	s.criteria = next
	evt := s.changed(TopicCriteria, action, "", 0)
	s.mu.Unlock()

	s.publish(evt)
}

func criteriaEqual(a, b models.FilterCriteria) bool {
	return a.CategoryID == b.CategoryID &&
		a.PriceRange == b.PriceRange &&
		a.MinRating == b.MinRating &&
		a.Query == b.Query &&
		a.SortBy == b.SortBy &&
		slices.Equal(a.Brands, b.Brands)
}

func clampPriceRange(lo, hi float64) (float64, float64) {
	lo, hi = max(lo, 0), max(hi, 0)
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo, hi
}
