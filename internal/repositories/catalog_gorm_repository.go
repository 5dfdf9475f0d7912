package repositories

import (
	"fmt"

	"etalase/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMCatalogRepository is a GORM implementation of CatalogRepository.
type GORMCatalogRepository struct {
	db *gorm.DB
}

// NewGORMCatalogRepository creates a new instance of GORMCatalogRepository.
func NewGORMCatalogRepository(db *gorm.DB) *GORMCatalogRepository {
	return &GORMCatalogRepository{
		db: db,
	}
}

// Migrate creates or updates the catalog tables.
func (r *GORMCatalogRepository) Migrate() error {
	if err := r.db.AutoMigrate(&models.Brand{}, &models.Category{}, &models.Product{}); err != nil {
		return fmt.Errorf("failed to migrate catalog tables: %w", err)
	}
	return nil
}

// GetProducts retrieves all products from the database in catalog order.
func (r *GORMCatalogRepository) GetProducts() ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Order("position asc").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get all products: %w", err)
	}
	return products, nil
}

// GetCategories retrieves all categories from the database in catalog order.
func (r *GORMCatalogRepository) GetCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Order("position asc").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to get all categories: %w", err)
	}
	return categories, nil
}

// GetBrands retrieves all brands from the database in catalog order.
func (r *GORMCatalogRepository) GetBrands() ([]models.Brand, error) {
	var brands []models.Brand
	if err := r.db.Order("position asc").Find(&brands).Error; err != nil {
		return nil, fmt.Errorf("failed to get all brands: %w", err)
	}
	return brands, nil
}

// CreateProduct inserts a product, appending it to the end of the catalog.
func (r *GORMCatalogRepository) CreateProduct(product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	next, err := r.nextPosition(&models.Product{})
	if err != nil {
		return err
	}
	product.Position = next
	if err := r.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// CreateCategory inserts a category.
func (r *GORMCatalogRepository) CreateCategory(category *models.Category) error {
	if category.ID == "" {
		category.ID = uuid.New().String()
	}
	next, err := r.nextPosition(&models.Category{})
	if err != nil {
		return err
	}
	category.Position = next
	if err := r.db.Create(category).Error; err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

// CreateBrand inserts a brand.
func (r *GORMCatalogRepository) CreateBrand(brand *models.Brand) error {
	if brand.ID == "" {
		brand.ID = uuid.New().String()
	}
	next, err := r.nextPosition(&models.Brand{})
	if err != nil {
		return err
	}
	brand.Position = next
	if err := r.db.Create(brand).Error; err != nil {
		return fmt.Errorf("failed to create brand: %w", err)
	}
	return nil
}

// IsEmpty reports whether the products table has no rows.
func (r *GORMCatalogRepository) IsEmpty() (bool, error) {
	var count int64
	if err := r.db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to count products: %w", err)
	}
	return count == 0, nil
}

func (r *GORMCatalogRepository) nextPosition(model interface{}) (int, error) {
	var count int64
	if err := r.db.Model(model).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count rows: %w", err)
	}
	return int(count), nil
}
