// Package catalog holds the immutable product, category and brand dataset
// the storefront browses. A Catalog is built once at startup and only read
// afterwards, so it is safe for concurrent use without locking.
package catalog

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"etalase/internal/models"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidCatalog is wrapped by every validation failure reported by New.
var ErrInvalidCatalog = errors.New("invalid catalog")

// DefaultCategoryColor is returned for unknown category IDs.
const DefaultCategoryColor = "#9CA3AF"

// Catalog is an ordered, read-only set of products, categories and brands.
type Catalog struct {
	products   []models.Product
	categories []models.Category
	brands     []models.Brand

	productIdx  map[string]int
	categoryIdx map[string]int
	brandIdx    map[string]int
}

// New validates the records and builds a Catalog. Records are ordered by
// Position (input order breaks ties) and renumbered from zero.
func New(products []models.Product, categories []models.Category, brands []models.Brand) (*Catalog, error) {
	c := &Catalog{
		products:    models.CloneProducts(products),
		categories:  slices.Clone(categories),
		brands:      slices.Clone(brands),
		productIdx:  make(map[string]int, len(products)),
		categoryIdx: make(map[string]int, len(categories)),
		brandIdx:    make(map[string]int, len(brands)),
	}

	slices.SortStableFunc(c.products, func(a, b models.Product) int { return cmp.Compare(a.Position, b.Position) })
	slices.SortStableFunc(c.categories, func(a, b models.Category) int { return cmp.Compare(a.Position, b.Position) })
	slices.SortStableFunc(c.brands, func(a, b models.Brand) int { return cmp.Compare(a.Position, b.Position) })

	validate := validator.New()

	for i := range c.brands {
		b := &c.brands[i]
		if err := validate.Struct(b); err != nil {
			return nil, fmt.Errorf("%w: brand %q: %v", ErrInvalidCatalog, b.ID, err)
		}
		if _, dup := c.brandIdx[b.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate brand ID %q", ErrInvalidCatalog, b.ID)
		}
		b.Position = i
		c.brandIdx[b.ID] = i
	}

	for i := range c.categories {
		cat := &c.categories[i]
		if err := validate.Struct(cat); err != nil {
			return nil, fmt.Errorf("%w: category %q: %v", ErrInvalidCatalog, cat.ID, err)
		}
		if _, dup := c.categoryIdx[cat.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate category ID %q", ErrInvalidCatalog, cat.ID)
		}
		cat.Position = i
		c.categoryIdx[cat.ID] = i
	}

	counts := make(map[string]int, len(c.categories))
	for i := range c.products {
		p := &c.products[i]
		if err := validate.Struct(p); err != nil {
			return nil, fmt.Errorf("%w: product %q: %v", ErrInvalidCatalog, p.ID, err)
		}
		if p.OriginalPrice != nil && *p.OriginalPrice <= p.Price {
			return nil, fmt.Errorf("%w: product %q: original price %.2f must exceed price %.2f",
				ErrInvalidCatalog, p.ID, *p.OriginalPrice, p.Price)
		}
		if _, dup := c.productIdx[p.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate product ID %q", ErrInvalidCatalog, p.ID)
		}
		if _, ok := c.categoryIdx[p.CategoryID]; !ok {
			return nil, fmt.Errorf("%w: product %q references unknown category %q", ErrInvalidCatalog, p.ID, p.CategoryID)
		}
		if _, ok := c.brandIdx[p.BrandID]; !ok {
			return nil, fmt.Errorf("%w: product %q references unknown brand %q", ErrInvalidCatalog, p.ID, p.BrandID)
		}
		p.Position = i
		c.productIdx[p.ID] = i
		counts[p.CategoryID]++
	}

	for _, cat := range c.categories {
		if cat.ProductCount != counts[cat.ID] {
			return nil, fmt.Errorf("%w: category %q declares %d products, catalog has %d",
				ErrInvalidCatalog, cat.ID, cat.ProductCount, counts[cat.ID])
		}
	}

	return c, nil
}

// Len returns the number of products.
func (c *Catalog) Len() int {
	return len(c.products)
}

// Products returns every product in catalog order.
func (c *Catalog) Products() []models.Product {
	return models.CloneProducts(c.products)
}

// Categories returns every category in catalog order.
func (c *Catalog) Categories() []models.Category {
	return slices.Clone(c.categories)
}

// Brands returns every brand in catalog order.
func (c *Catalog) Brands() []models.Brand {
	return slices.Clone(c.brands)
}

// Product looks up a product by ID.
func (c *Catalog) Product(id string) (models.Product, bool) {
	i, ok := c.productIdx[id]
	if !ok {
		return models.Product{}, false
	}
	return c.products[i].Clone(), true
}

// Category looks up a category by ID.
func (c *Catalog) Category(id string) (models.Category, bool) {
	i, ok := c.categoryIdx[id]
	if !ok {
		return models.Category{}, false
	}
	return c.categories[i], true
}

// Brand looks up a brand by ID.
func (c *Catalog) Brand(id string) (models.Brand, bool) {
	i, ok := c.brandIdx[id]
	if !ok {
		return models.Brand{}, false
	}
	return c.brands[i], true
}

// BrandName returns the display name of a brand, or "" if unknown.
func (c *Catalog) BrandName(id string) string {
	b, _ := c.Brand(id)
	return b.Name
}

// CategoryColor returns the color token of a category.
func (c *Catalog) CategoryColor(id string) string {
	cat, ok := c.Category(id)
	if !ok || cat.Color == "" {
		return DefaultCategoryColor
	}
	return cat.Color
}

// MaxPrice is the highest product price, the upper end of the full price span.
func (c *Catalog) MaxPrice() float64 {
	var highest float64
	for _, p := range c.products {
		highest = max(highest, p.Price)
	}
	return highest
}

// BestSellers returns products flagged as best sellers, in catalog order.
func (c *Catalog) BestSellers() []models.Product {
	return c.where(func(p models.Product) bool { return p.IsBestSeller })
}

// NewArrivals returns products flagged as new, in catalog order.
func (c *Catalog) NewArrivals() []models.Product {
	return c.where(func(p models.Product) bool { return p.IsNew })
}

func (c *Catalog) where(keep func(models.Product) bool) []models.Product {
	out := make([]models.Product, 0)
	for _, p := range c.products {
		if keep(p) {
			out = append(out, p.Clone())
		}
	}
	return out
}
