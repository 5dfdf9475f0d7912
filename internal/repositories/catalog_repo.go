package repositories

import (
	"etalase/internal/models"
)

// CatalogRepository defines the interface for catalog data access.
// Read methods return records in catalog order (ascending Position).
type CatalogRepository interface {
	GetProducts() ([]models.Product, error)
	GetCategories() ([]models.Category, error)
	GetBrands() ([]models.Brand, error)
	CreateProduct(product *models.Product) error
	CreateCategory(category *models.Category) error
	CreateBrand(brand *models.Brand) error
	IsEmpty() (bool, error)
}
