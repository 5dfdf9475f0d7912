package handlers

import (
	"fmt"

	"etalase/internal/models"
	"etalase/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cast"
	"go.uber.org/zap"
)

// ProductView is a product as rendered on a product card: the catalog record
// plus display fields and the shopper's cart and wishlist state.
type ProductView struct {
	models.Product
	BrandName       string `json:"brand_name"`
	CategoryColor   string `json:"category_color"`
	DiscountPercent int    `json:"discount_percent"`
	InCart          bool   `json:"in_cart"`
	InWishlist      bool   `json:"in_wishlist"`
}

func newProductView(store *services.CommerceStore, p models.Product) ProductView {
	cat := store.Catalog()
	return ProductView{
		Product:         p,
		BrandName:       cat.BrandName(p.BrandID),
		CategoryColor:   cat.CategoryColor(p.CategoryID),
		DiscountPercent: p.DiscountPercent(),
		InCart:          store.InCart(p.ID),
		InWishlist:      store.IsInWishlist(p.ID),
	}
}

func newProductViews(store *services.CommerceStore, products []models.Product) []ProductView {
	views := make([]ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, newProductView(store, p))
	}
	return views
}

// CatalogHandler serves the read-only catalog: categories, brands, single
// products and the curated home page lists.
type CatalogHandler struct {
	store  *services.CommerceStore
	logger *zap.Logger
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(store *services.CommerceStore, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{store: store, logger: logger}
}

// RegisterRoutes registers the catalog routes with the Fiber app.
func (h *CatalogHandler) RegisterRoutes(router fiber.Router) {
	catalogRoutes := router.Group("/catalog")
	catalogRoutes.Get("/categories", h.GetCategories)
	catalogRoutes.Get("/brands", h.GetBrands)
	catalogRoutes.Get("/summary", h.GetSummary)
	catalogRoutes.Get("/products/:id", h.GetProduct)
	catalogRoutes.Get("/best-sellers", h.GetBestSellers)
	catalogRoutes.Get("/new-arrivals", h.GetNewArrivals)
}

// GetCategories lists every category with its color and product count.
func (h *CatalogHandler) GetCategories(c *fiber.Ctx) error {
	categories := h.store.Catalog().Categories()
	return c.JSON(fiber.Map{
		"categories": categories,
		"count":      len(categories),
	})
}

// GetBrands lists every brand.
func (h *CatalogHandler) GetBrands(c *fiber.Ctx) error {
	brands := h.store.Catalog().Brands()
	return c.JSON(fiber.Map{
		"brands": brands,
		"count":  len(brands),
	})
}

// GetSummary returns catalog statistics for the filter sidebar.
func (h *CatalogHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.store.Catalog().Summary()
	if err != nil {
		h.logger.Error("failed to summarize catalog", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not summarize catalog",
			"error":   err.Error(),
		})
	}
	return c.JSON(summary)
}

// GetProduct returns a single product view.
func (h *CatalogHandler) GetProduct(c *fiber.Ctx) error {
	id := c.Params("id")
	p, ok := h.store.Catalog().Product(id)
	if !ok {
		return productNotFound(c, id)
	}
	return c.JSON(newProductView(h.store, p))
}

// GetBestSellers returns the best seller list, truncated by ?limit=n.
func (h *CatalogHandler) GetBestSellers(c *fiber.Ctx) error {
	return h.curated(c, h.store.BestSellers())
}

// GetNewArrivals returns the new arrivals list, truncated by ?limit=n.
func (h *CatalogHandler) GetNewArrivals(c *fiber.Ctx) error {
	return h.curated(c, h.store.NewArrivals())
}

func (h *CatalogHandler) curated(c *fiber.Ctx, products []models.Product) error {
	limit, err := parseLimit(c.Query("limit"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid limit",
			"error":   err.Error(),
		})
	}
	if limit > 0 && limit < len(products) {
		products = products[:limit]
	}
	return c.JSON(fiber.Map{
		"products": newProductViews(h.store, products),
		"count":    len(products),
	})
}

// parseLimit reads an optional non-negative limit. Zero means no limit.
func parseLimit(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	if !isDecimal(raw) {
		return 0, fmt.Errorf("limit must be a plain decimal integer, got %q", raw)
	}
	limit, err := cast.ToIntE(raw)
	if err != nil {
		return 0, fmt.Errorf("limit must be an integer: %w", err)
	}
	if limit < 0 {
		return 0, fmt.Errorf("limit must not be negative, got %d", limit)
	}
	return limit, nil
}

// isDecimal reports whether raw is a run of ASCII digits without a leading
// zero. Signs, base prefixes and "010" style octal are rejected so that
// cast never reads the value in another base.
func isDecimal(raw string) bool {
	if raw == "" || (len(raw) > 1 && raw[0] == '0') {
		return false
	}
	for i := 0; i < len(raw); i++ {
		if raw[i] < '0' || raw[i] > '9' {
			return false
		}
	}
	return true
}
