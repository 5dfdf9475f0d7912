package catalog

import (
	"fmt"

	"etalase/internal/models"
)

// Reader is the read side of a catalog data source.
type Reader interface {
	GetProducts() ([]models.Product, error)
	GetCategories() ([]models.Category, error)
	GetBrands() ([]models.Brand, error)
}

// Writer is used only to seed an empty data source.
type Writer interface {
	CreateProduct(product *models.Product) error
	CreateCategory(category *models.Category) error
	CreateBrand(brand *models.Brand) error
}

// Load reads every record from the source and builds a Catalog.
func Load(src Reader) (*Catalog, error) {
	brands, err := src.GetBrands()
	if err != nil {
		return nil, fmt.Errorf("failed to load brands: %w", err)
	}
	categories, err := src.GetCategories()
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}
	products, err := src.GetProducts()
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}
	return New(products, categories, brands)
}

// Seed writes the records of ds into dst. Brands and categories go first so
// products always reference existing rows.
func Seed(dst Writer, ds Dataset) error {
	for i := range ds.Brands {
		if err := dst.CreateBrand(&ds.Brands[i]); err != nil {
			return fmt.Errorf("failed to seed brand %s: %w", ds.Brands[i].ID, err)
		}
	}
	for i := range ds.Categories {
		if err := dst.CreateCategory(&ds.Categories[i]); err != nil {
			return fmt.Errorf("failed to seed category %s: %w", ds.Categories[i].ID, err)
		}
	}
	for i := range ds.Products {
		if err := dst.CreateProduct(&ds.Products[i]); err != nil {
			return fmt.Errorf("failed to seed product %s: %w", ds.Products[i].ID, err)
		}
	}
	return nil
}
