package catalog_test

import (
	"errors"
	"testing"

	"etalase/internal/catalog"
	"etalase/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockSource is a mock implementation of catalog.Reader and catalog.Writer.
type MockSource struct {
	mock.Mock
}

func (m *MockSource) GetProducts() ([]models.Product, error) {
	args := m.Called()
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockSource) GetCategories() ([]models.Category, error) {
	args := m.Called()
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *MockSource) GetBrands() ([]models.Brand, error) {
	args := m.Called()
	return args.Get(0).([]models.Brand), args.Error(1)
}

func (m *MockSource) CreateProduct(product *models.Product) error {
	return m.Called(product).Error(0)
}

func (m *MockSource) CreateCategory(category *models.Category) error {
	return m.Called(category).Error(0)
}

func (m *MockSource) CreateBrand(brand *models.Brand) error {
	return m.Called(brand).Error(0)
}

func TestLoad(t *testing.T) {
	products, categories, brands := sampleRecords()
	src := new(MockSource)
	src.On("GetBrands").Return(brands, nil).Once()
	src.On("GetCategories").Return(categories, nil).Once()
	src.On("GetProducts").Return(products, nil).Once()

	cat, err := catalog.Load(src)
	require.NoError(t, err)
	assert.Equal(t, 3, cat.Len())
	src.AssertExpectations(t)
}

func TestLoad_PropagatesSourceErrors(t *testing.T) {
	src := new(MockSource)
	src.On("GetBrands").Return([]models.Brand{}, nil).Once()
	src.On("GetCategories").Return([]models.Category(nil), errors.New("database error")).Once()

	cat, err := catalog.Load(src)
	assert.Nil(t, cat)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load categories")
	assert.Contains(t, err.Error(), "database error")
	src.AssertExpectations(t)
}

func TestSeed_WritesBrandsCategoriesThenProducts(t *testing.T) {
	ds := catalog.DefaultDataset()
	src := new(MockSource)

	var order []string
	src.On("CreateBrand", mock.AnythingOfType("*models.Brand")).Run(func(mock.Arguments) { order = append(order, "brand") }).Return(nil)
	src.On("CreateCategory", mock.AnythingOfType("*models.Category")).Run(func(mock.Arguments) { order = append(order, "category") }).Return(nil)
	src.On("CreateProduct", mock.AnythingOfType("*models.Product")).Run(func(mock.Arguments) { order = append(order, "product") }).Return(nil)

	require.NoError(t, catalog.Seed(src, ds))

	assert.Len(t, order, len(ds.Brands)+len(ds.Categories)+len(ds.Products))
	assert.Equal(t, "brand", order[0])
	assert.Equal(t, "category", order[len(ds.Brands)])
	assert.Equal(t, "product", order[len(order)-1])
	src.AssertNumberOfCalls(t, "CreateProduct", len(ds.Products))
}

func TestSeed_StopsOnFirstError(t *testing.T) {
	ds := catalog.DefaultDataset()
	src := new(MockSource)
	src.On("CreateBrand", mock.Anything).Return(errors.New("constraint violation")).Once()

	err := catalog.Seed(src, ds)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to seed brand lumiere")
	src.AssertNotCalled(t, "CreateProduct", mock.Anything)
}
