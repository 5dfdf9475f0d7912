package catalog_test

import (
	"errors"
	"testing"

	"etalase/internal/catalog"
	"etalase/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 { return &v }

func sampleRecords() ([]models.Product, []models.Category, []models.Brand) {
	brands := []models.Brand{
		{ID: "b1", Name: "Brand One"},
		{ID: "b2", Name: "Brand Two"},
	}
	categories := []models.Category{
		{ID: "c1", Name: "Cat One", Color: "#111111", ProductCount: 2},
		{ID: "c2", Name: "Cat Two", ProductCount: 1},
	}
	products := []models.Product{
		{ID: "A", CategoryID: "c1", BrandID: "b1", Name: "Alpha", Price: 100, Rating: 4, IsNew: true},
		{ID: "B", CategoryID: "c1", BrandID: "b2", Name: "Bravo", Price: 200, OriginalPrice: ptr(250), Rating: 3.5, IsBestSeller: true},
		{ID: "C", CategoryID: "c2", BrandID: "b1", Name: "Charlie", Price: 150, Rating: 5},
	}
	return products, categories, brands
}

func TestNew_BuildsOrderedCatalog(t *testing.T) {
	products, categories, brands := sampleRecords()
	cat, err := catalog.New(products, categories, brands)
	require.NoError(t, err)

	assert.Equal(t, 3, cat.Len())
	got := cat.Products()
	require.Len(t, got, 3)
	assert.Equal(t, "A", got[0].ID)
	assert.Equal(t, "C", got[2].ID)
	assert.Equal(t, 2, got[2].Position)

	p, ok := cat.Product("B")
	assert.True(t, ok)
	assert.Equal(t, "Bravo", p.Name)

	_, ok = cat.Product("missing")
	assert.False(t, ok)

	assert.Equal(t, "Brand Two", cat.BrandName("b2"))
	assert.Equal(t, "", cat.BrandName("nope"))
	assert.Equal(t, 200.0, cat.MaxPrice())
}

func TestNew_OrdersByPosition(t *testing.T) {
	products, categories, brands := sampleRecords()
	products[0].Position = 5
	products[1].Position = 1
	products[2].Position = 1

	cat, err := catalog.New(products, categories, brands)
	require.NoError(t, err)

	got := cat.Products()
	assert.Equal(t, []string{"B", "C", "A"}, []string{got[0].ID, got[1].ID, got[2].ID})
	assert.Equal(t, []int{0, 1, 2}, []int{got[0].Position, got[1].Position, got[2].Position})
}

func TestNew_RejectsInvalidRecords(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p []models.Product, c []models.Category, b []models.Brand) ([]models.Product, []models.Category, []models.Brand)
		want   string
	}{
		{
			name: "non-positive price",
			mutate: func(p []models.Product, c []models.Category, b []models.Brand) ([]models.Product, []models.Category, []models.Brand) {
				p[0].Price = 0
				return p, c, b
			},
			want: "product \"A\"",
		},
		{
			name: "original price not above price",
			mutate: func(p []models.Product, c []models.Category, b []models.Brand) ([]models.Product, []models.Category, []models.Brand) {
				p[1].OriginalPrice = ptr(200)
				return p, c, b
			},
			want: "original price",
		},
		{
			name: "rating above five",
			mutate: func(p []models.Product, c []models.Category, b []models.Brand) ([]models.Product, []models.Category, []models.Brand) {
				p[2].Rating = 5.5
				return p, c, b
			},
			want: "product \"C\"",
		},
		{
			name: "duplicate product id",
			mutate: func(p []models.Product, c []models.Category, b []models.Brand) ([]models.Product, []models.Category, []models.Brand) {
				p[2].ID = "A"
				c[1].ProductCount = 1
				return p, c, b
			},
			want: "duplicate product",
		},
		{
			name: "unknown category",
			mutate: func(p []models.Product, c []models.Category, b []models.Brand) ([]models.Product, []models.Category, []models.Brand) {
				p[2].CategoryID = "c9"
				return p, c, b
			},
			want: "unknown category",
		},
		{
			name: "unknown brand",
			mutate: func(p []models.Product, c []models.Category, b []models.Brand) ([]models.Product, []models.Category, []models.Brand) {
				p[2].BrandID = "b9"
				return p, c, b
			},
			want: "unknown brand",
		},
		{
			name: "product count mismatch",
			mutate: func(p []models.Product, c []models.Category, b []models.Brand) ([]models.Product, []models.Category, []models.Brand) {
				c[0].ProductCount = 3
				return p, c, b
			},
			want: "declares 3 products",
		},
		{
			name: "duplicate brand",
			mutate: func(p []models.Product, c []models.Category, b []models.Brand) ([]models.Product, []models.Category, []models.Brand) {
				b[1].ID = "b1"
				return p, c, b
			},
			want: "duplicate brand",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, c, b := tt.mutate(sampleRecords())
			cat, err := catalog.New(p, c, b)
			assert.Nil(t, cat)
			require.Error(t, err)
			assert.True(t, errors.Is(err, catalog.ErrInvalidCatalog))
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestCuratedLists_IgnoreEverythingButFlags(t *testing.T) {
	products, categories, brands := sampleRecords()
	cat, err := catalog.New(products, categories, brands)
	require.NoError(t, err)

	best := cat.BestSellers()
	require.Len(t, best, 1)
	assert.Equal(t, "B", best[0].ID)

	fresh := cat.NewArrivals()
	require.Len(t, fresh, 1)
	assert.Equal(t, "A", fresh[0].ID)
}

func TestCategoryColor(t *testing.T) {
	products, categories, brands := sampleRecords()
	cat, err := catalog.New(products, categories, brands)
	require.NoError(t, err)

	assert.Equal(t, "#111111", cat.CategoryColor("c1"))
	assert.Equal(t, catalog.DefaultCategoryColor, cat.CategoryColor("c2"))
	assert.Equal(t, catalog.DefaultCategoryColor, cat.CategoryColor("unknown"))
}

func TestAccessorsReturnCopies(t *testing.T) {
	products, categories, brands := sampleRecords()
	cat, err := catalog.New(products, categories, brands)
	require.NoError(t, err)

	got := cat.Products()
	got[0].Name = "mutated"
	products[1].Name = "mutated too"

	p, _ := cat.Product("A")
	assert.Equal(t, "Alpha", p.Name)
	p, _ = cat.Product("B")
	assert.Equal(t, "Bravo", p.Name)
}

func TestAccessorsDoNotShareOriginalPrice(t *testing.T) {
	products, categories, brands := sampleRecords()
	cat, err := catalog.New(products, categories, brands)
	require.NoError(t, err)

	*products[1].OriginalPrice = 1
	*cat.Products()[1].OriginalPrice = 2
	p, _ := cat.Product("B")
	*p.OriginalPrice = 3
	*cat.BestSellers()[0].OriginalPrice = 4

	p, _ = cat.Product("B")
	require.NotNil(t, p.OriginalPrice)
	assert.Equal(t, 250.0, *p.OriginalPrice)
	assert.Equal(t, 20, p.DiscountPercent())
}

func TestSummary(t *testing.T) {
	products, categories, brands := sampleRecords()
	cat, err := catalog.New(products, categories, brands)
	require.NoError(t, err)

	s, err := cat.Summary()
	require.NoError(t, err)
	assert.Equal(t, 3, s.Products)
	assert.Equal(t, models.PriceRange{Min: 100, Max: 200}, s.PriceRange)
	assert.InDelta(t, 150.0, s.MeanPrice, 0.001)
	assert.InDelta(t, 150.0, s.MedianPrice, 0.001)
	assert.InDelta(t, 4.17, s.MeanRating, 0.001)
	assert.Equal(t, map[string]int{"c1": 2, "c2": 1}, s.Categories)
	assert.Equal(t, map[string]int{"b1": 2, "b2": 1}, s.Brands)
}

func TestSummary_EmptyCatalog(t *testing.T) {
	cat, err := catalog.New(nil, nil, nil)
	require.NoError(t, err)

	s, err := cat.Summary()
	require.NoError(t, err)
	assert.Equal(t, 0, s.Products)
	assert.Equal(t, 0.0, cat.MaxPrice())
	assert.Empty(t, cat.BestSellers())
}

func TestDefaultDataset_IsValid(t *testing.T) {
	cat, err := catalog.DefaultDataset().Build()
	require.NoError(t, err)

	assert.Equal(t, 16, cat.Len())
	assert.NotEmpty(t, cat.BestSellers())
	assert.NotEmpty(t, cat.NewArrivals())
	for _, c := range cat.Categories() {
		assert.Positive(t, c.ProductCount, c.ID)
	}
}

func TestDiscountPercent(t *testing.T) {
	p := models.Product{Price: 690000, OriginalPrice: ptr(850000)}
	assert.Equal(t, 19, p.DiscountPercent())
	assert.True(t, p.HasDiscount())

	p = models.Product{Price: 100}
	assert.Equal(t, 0, p.DiscountPercent())
	assert.False(t, p.HasDiscount())
}
