package catalog

import (
	"fmt"

	"etalase/internal/models"

	"github.com/montanaflynn/stats"
)

// Summary describes the catalog for filter widgets: the price span, simple
// averages, and how many products each category and brand holds.
type Summary struct {
	Products    int               `json:"products"`
	PriceRange  models.PriceRange `json:"price_range"`
	MeanPrice   float64           `json:"mean_price"`
	MedianPrice float64           `json:"median_price"`
	MeanRating  float64           `json:"mean_rating"`
	Categories  map[string]int    `json:"categories"`
	Brands      map[string]int    `json:"brands"`
}

// Summary computes catalog statistics. An empty catalog yields a zero Summary.
func (c *Catalog) Summary() (Summary, error) {
	s := Summary{
		Products:   len(c.products),
		Categories: make(map[string]int, len(c.categories)),
		Brands:     make(map[string]int, len(c.brands)),
	}
	for _, cat := range c.categories {
		s.Categories[cat.ID] = 0
	}
	for _, b := range c.brands {
		s.Brands[b.ID] = 0
	}
	if len(c.products) == 0 {
		return s, nil
	}

	prices := make(stats.Float64Data, 0, len(c.products))
	ratings := make(stats.Float64Data, 0, len(c.products))
	for _, p := range c.products {
		prices = append(prices, p.Price)
		ratings = append(ratings, p.Rating)
		s.Categories[p.CategoryID]++
		s.Brands[p.BrandID]++
	}

	var err error
	if s.PriceRange.Min, err = prices.Min(); err != nil {
		return Summary{}, fmt.Errorf("failed to compute min price: %w", err)
	}
	if s.PriceRange.Max, err = prices.Max(); err != nil {
		return Summary{}, fmt.Errorf("failed to compute max price: %w", err)
	}
	if s.MeanPrice, err = prices.Mean(); err != nil {
		return Summary{}, fmt.Errorf("failed to compute mean price: %w", err)
	}
	if s.MedianPrice, err = prices.Median(); err != nil {
		return Summary{}, fmt.Errorf("failed to compute median price: %w", err)
	}
	if s.MeanRating, err = ratings.Mean(); err != nil {
		return Summary{}, fmt.Errorf("failed to compute mean rating: %w", err)
	}
	s.MeanRating, _ = stats.Round(s.MeanRating, 2)
	return s, nil
}
