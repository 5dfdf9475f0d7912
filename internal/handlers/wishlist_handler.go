package handlers

import (
	"etalase/internal/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// WishlistHandler handles HTTP requests for the wishlist.
type WishlistHandler struct {
	store  *services.CommerceStore
	logger *zap.Logger
}

// NewWishlistHandler creates a new WishlistHandler.
func NewWishlistHandler(store *services.CommerceStore, logger *zap.Logger) *WishlistHandler {
	return &WishlistHandler{store: store, logger: logger}
}

// RegisterRoutes registers the wishlist routes with the Fiber app.
func (h *WishlistHandler) RegisterRoutes(router fiber.Router) {
	wishlistRoutes := router.Group("/wishlist")
	wishlistRoutes.Get("/", h.GetWishlist)
	wishlistRoutes.Get("/:id", h.GetStatus)
	wishlistRoutes.Post("/:id", h.AddItem)
	wishlistRoutes.Delete("/:id", h.RemoveItem)
}

// GetWishlist returns the saved products in the order they were added.
func (h *WishlistHandler) GetWishlist(c *fiber.Ctx) error {
	entries := h.store.Wishlist()
	return c.JSON(fiber.Map{
		"items": entries,
		"count": len(entries),
	})
}

// GetStatus reports whether a product is saved.
func (h *WishlistHandler) GetStatus(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"product_id":  c.Params("id"),
		"in_wishlist": h.store.IsInWishlist(c.Params("id")),
	})
}

// AddItem saves a catalog product. Saving it again changes nothing.
func (h *WishlistHandler) AddItem(c *fiber.Ctx) error {
	id := c.Params("id")
	p, found := h.store.Catalog().Product(id)
	if !found {
		return productNotFound(c, id)
	}
	h.store.AddToWishlist(p)
	h.logger.Info("product saved to wishlist", zap.String("product_id", id))
	return c.JSON(fiber.Map{
		"message": "Product saved to wishlist",
		"count":   h.store.WishlistCount(),
	})
}

// RemoveItem removes a product from the wishlist.
func (h *WishlistHandler) RemoveItem(c *fiber.Ctx) error {
	h.store.RemoveFromWishlist(c.Params("id"))
	return c.JSON(fiber.Map{
		"message": "Product removed from wishlist",
		"count":   h.store.WishlistCount(),
	})
}
