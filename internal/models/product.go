package models

import "math"

// Product represents an item in the storefront catalog.
// Products are owned by the catalog and never mutated by the store.
type Product struct {
	ID            string   `json:"id" gorm:"primaryKey;type:varchar(64)" validate:"required"`
	CategoryID    string   `json:"category_id" gorm:"index;type:varchar(64)" validate:"required"`
	BrandID       string   `json:"brand_id" gorm:"index;type:varchar(64)" validate:"required"`
	Name          string   `json:"name" gorm:"type:varchar(255)" validate:"required,max=255"`
	Price         float64  `json:"price" validate:"gt=0"`
	OriginalPrice *float64 `json:"original_price,omitempty"` // Pre-discount price, must exceed Price when set
	Rating        float64  `json:"rating" validate:"gte=0,lte=5"`
	ReviewCount   int      `json:"review_count" validate:"gte=0"`
	IsNew         bool     `json:"is_new"`
	IsBestSeller  bool     `json:"is_best_seller"`
	Image         string   `json:"image" gorm:"size:1024"`
	Position      int      `json:"-" gorm:"index"` // Catalog insertion order
}

// DiscountPercent returns the rounded discount against the original price, or 0.
func (p Product) DiscountPercent() int {
	if p.OriginalPrice == nil || *p.OriginalPrice <= 0 {
		return 0
	}
	original := *p.OriginalPrice
	return int(math.Round((1 - p.Price/original) * 100))
}

// Clone returns a copy of p that does not share the original price pointer.
func (p Product) Clone() Product {
	if p.OriginalPrice != nil {
		original := *p.OriginalPrice
		p.OriginalPrice = &original
	}
	return p
}

// CloneProducts deep-copies a product slice. A nil input yields nil.
func CloneProducts(products []Product) []Product {
	if products == nil {
		return nil
	}
	out := make([]Product, len(products))
	for i, p := range products {
		out[i] = p.Clone()
	}
	return out
}

// HasDiscount reports whether the product carries a valid original price.
func (p Product) HasDiscount() bool {
	return p.OriginalPrice != nil && *p.OriginalPrice > p.Price
}
