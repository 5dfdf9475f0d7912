package catalog

import "etalase/internal/models"

// Dataset is a full set of catalog records ready for seeding or New.
type Dataset struct {
	Products   []models.Product
	Categories []models.Category
	Brands     []models.Brand
}

// Build constructs a Catalog from the dataset.
func (ds Dataset) Build() (*Catalog, error) {
	return New(ds.Products, ds.Categories, ds.Brands)
}

func price(v float64) *float64 { return &v }

// DefaultDataset returns the demo beauty catalog served when no database is
// configured. Every call returns fresh slices.
func DefaultDataset() Dataset {
	brands := []models.Brand{
		{ID: "lumiere", Name: "Lumiere"},
		{ID: "rosewood", Name: "Rosewood"},
		{ID: "aurora", Name: "Aurora Beauty"},
		{ID: "velvet", Name: "Velvet & Co"},
		{ID: "nordic-skin", Name: "Nordic Skin"},
		{ID: "atelier", Name: "Atelier Parfum"},
	}

	categories := []models.Category{
		{ID: "face-makeup", Name: "Face Makeup", Color: "#FF6B9D"},
		{ID: "eye-makeup", Name: "Eye Makeup", Color: "#A8D8EA"},
		{ID: "lip-makeup", Name: "Lip Makeup", Color: "#E63946"},
		{ID: "skincare", Name: "Skincare", Color: "#95D5B2"},
		{ID: "haircare", Name: "Haircare", Color: "#F4A261"},
		{ID: "fragrance", Name: "Fragrance", Color: "#B388EB"},
		{ID: "nail", Name: "Nail Care", Color: "#FFB4A2"},
		{ID: "body-care", Name: "Body Care", Color: "#90BE6D"},
	}

	products := []models.Product{
		{ID: "p-01", CategoryID: "face-makeup", BrandID: "lumiere", Name: "Silk Finish Foundation", Price: 690000, OriginalPrice: price(850000), Rating: 4.6, ReviewCount: 214, IsBestSeller: true, Image: "/images/p-01.jpg"},
		{ID: "p-02", CategoryID: "face-makeup", BrandID: "velvet", Name: "Soft Glow Blush", Price: 320000, Rating: 4.2, ReviewCount: 88, Image: "/images/p-02.jpg"},
		{ID: "p-03", CategoryID: "eye-makeup", BrandID: "aurora", Name: "Volume Lash Mascara", Price: 280000, Rating: 4.8, ReviewCount: 512, IsBestSeller: true, Image: "/images/p-03.jpg"},
		{ID: "p-04", CategoryID: "eye-makeup", BrandID: "velvet", Name: "Nude Eyeshadow Palette", Price: 940000, OriginalPrice: price(1200000), Rating: 4.5, ReviewCount: 173, Image: "/images/p-04.jpg"},
		{ID: "p-05", CategoryID: "lip-makeup", BrandID: "rosewood", Name: "Matte Liquid Lipstick", Price: 245000, Rating: 4.1, ReviewCount: 301, IsBestSeller: true, Image: "/images/p-05.jpg"},
		{ID: "p-06", CategoryID: "lip-makeup", BrandID: "lumiere", Name: "Tinted Lip Oil", Price: 210000, Rating: 3.9, ReviewCount: 64, IsNew: true, Image: "/images/p-06.jpg"},
		{ID: "p-07", CategoryID: "skincare", BrandID: "nordic-skin", Name: "Hydrating Hyaluronic Serum", Price: 780000, Rating: 4.7, ReviewCount: 402, IsBestSeller: true, Image: "/images/p-07.jpg"},
		{ID: "p-08", CategoryID: "skincare", BrandID: "nordic-skin", Name: "Daily Mineral Sunscreen SPF50", Price: 450000, OriginalPrice: price(520000), Rating: 4.4, ReviewCount: 259, Image: "/images/p-08.jpg"},
		{ID: "p-09", CategoryID: "skincare", BrandID: "aurora", Name: "Gentle Foam Cleanser", Price: 190000, Rating: 4.0, ReviewCount: 97, IsNew: true, Image: "/images/p-09.jpg"},
		{ID: "p-10", CategoryID: "haircare", BrandID: "rosewood", Name: "Argan Repair Hair Mask", Price: 360000, Rating: 4.3, ReviewCount: 142, Image: "/images/p-10.jpg"},
		{ID: "p-11", CategoryID: "haircare", BrandID: "aurora", Name: "Volumizing Dry Shampoo", Price: 230000, Rating: 3.6, ReviewCount: 51, IsNew: true, Image: "/images/p-11.jpg"},
		{ID: "p-12", CategoryID: "fragrance", BrandID: "atelier", Name: "Amber Night Eau de Parfum", Price: 1850000, OriginalPrice: price(2000000), Rating: 4.9, ReviewCount: 77, IsBestSeller: true, Image: "/images/p-12.jpg"},
		{ID: "p-13", CategoryID: "fragrance", BrandID: "atelier", Name: "Citrus Bloom Eau de Toilette", Price: 1250000, Rating: 4.4, ReviewCount: 39, IsNew: true, Image: "/images/p-13.jpg"},
		{ID: "p-14", CategoryID: "nail", BrandID: "velvet", Name: "Gel Effect Nail Polish", Price: 150000, Rating: 3.8, ReviewCount: 120, Image: "/images/p-14.jpg"},
		{ID: "p-15", CategoryID: "body-care", BrandID: "lumiere", Name: "Shea Body Butter", Price: 390000, Rating: 4.5, ReviewCount: 188, IsNew: true, Image: "/images/p-15.jpg"},
		{ID: "p-16", CategoryID: "body-care", BrandID: "nordic-skin", Name: "Oat Milk Body Lotion", Price: 330000, Rating: 4.2, ReviewCount: 94, Image: "/images/p-16.jpg"},
	}

	for i := range brands {
		brands[i].Position = i
	}
	counts := make(map[string]int, len(categories))
	for i := range products {
		products[i].Position = i
		counts[products[i].CategoryID]++
	}
	for i := range categories {
		categories[i].Position = i
		categories[i].ProductCount = counts[categories[i].ID]
	}

	return Dataset{Products: products, Categories: categories, Brands: brands}
}
