package repositories

import (
	"fmt"
	"slices"
	"sync"

	"etalase/internal/models"

	"github.com/google/uuid"
)

// MockCatalogRepository is an in-memory implementation of CatalogRepository.
// Records keep their insertion order; Position is assigned on create.
type MockCatalogRepository struct {
	products   []models.Product
	categories []models.Category
	brands     []models.Brand
	mu         sync.RWMutex
}

// NewMockCatalogRepository creates a new instance of MockCatalogRepository.
func NewMockCatalogRepository() *MockCatalogRepository {
	return &MockCatalogRepository{}
}

// GetProducts returns all products.
func (r *MockCatalogRepository) GetProducts() ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.products), nil
}

// GetCategories returns all categories.
func (r *MockCatalogRepository) GetCategories() ([]models.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.categories), nil
}

// GetBrands returns all brands.
func (r *MockCatalogRepository) GetBrands() ([]models.Brand, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.brands), nil
}

// CreateProduct adds a new product.
func (r *MockCatalogRepository) CreateProduct(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if slices.ContainsFunc(r.products, func(p models.Product) bool { return p.ID == product.ID }) {
		return fmt.Errorf("product with ID %s already exists", product.ID)
	}
	product.Position = len(r.products)
	r.products = append(r.products, *product)
	return nil
}

// CreateCategory adds a new category.
func (r *MockCatalogRepository) CreateCategory(category *models.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if category.ID == "" {
		category.ID = uuid.New().String()
	}
	if slices.ContainsFunc(r.categories, func(c models.Category) bool { return c.ID == category.ID }) {
		return fmt.Errorf("category with ID %s already exists", category.ID)
	}
	category.Position = len(r.categories)
	r.categories = append(r.categories, *category)
	return nil
}

// CreateBrand adds a new brand.
func (r *MockCatalogRepository) CreateBrand(brand *models.Brand) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if brand.ID == "" {
		brand.ID = uuid.New().String()
	}
	if slices.ContainsFunc(r.brands, func(b models.Brand) bool { return b.ID == brand.ID }) {
		return fmt.Errorf("brand with ID %s already exists", brand.ID)
	}
	brand.Position = len(r.brands)
	r.brands = append(r.brands, *brand)
	return nil
}

// IsEmpty reports whether no product has been stored yet.
func (r *MockCatalogRepository) IsEmpty() (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.products) == 0, nil
}
