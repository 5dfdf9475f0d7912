package handlers

import (
	"etalase/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CartHandler handles HTTP requests for the shopping cart.
type CartHandler struct {
	store    *services.CommerceStore
	logger   *zap.Logger
	validate *validator.Validate
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(store *services.CommerceStore, logger *zap.Logger) *CartHandler {
	return &CartHandler{
		store:    store,
		logger:   logger,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the cart routes with the Fiber app.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	cartRoutes := router.Group("/cart")
	cartRoutes.Get("/", h.GetCart)
	cartRoutes.Delete("/", h.ClearCart)
	cartRoutes.Post("/items", h.AddItem)
	cartRoutes.Patch("/items/:id", h.UpdateQuantity)
	cartRoutes.Delete("/items/:id", h.RemoveItem)
}

// AddItemRequest represents the request body for adding a product to the cart.
type AddItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

// QuantityRequest represents the request body for changing a line quantity.
// Zero or less removes the line.
type QuantityRequest struct {
	Quantity *int `json:"quantity" validate:"required"`
}

// GetCart returns the cart lines, unit count and total.
func (h *CartHandler) GetCart(c *fiber.Ctx) error {
	return h.cartResponse(c, fiber.StatusOK, "")
}

// AddItem adds one unit of a catalog product to the cart.
func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	var req AddItemRequest
	if ok, err := bindJSON(c, h.validate, &req); !ok {
		return err
	}

	p, found := h.store.Catalog().Product(req.ProductID)
	if !found {
		return productNotFound(c, req.ProductID)
	}
	h.store.AddToCart(p)
	h.logger.Info("product added to cart", zap.String("product_id", p.ID))
	return h.cartResponse(c, fiber.StatusOK, "Product added to cart")
}

// UpdateQuantity sets the quantity of an existing cart line.
func (h *CartHandler) UpdateQuantity(c *fiber.Ctx) error {
	var req QuantityRequest
	if ok, err := bindJSON(c, h.validate, &req); !ok {
		return err
	}

	id := c.Params("id")
	if !h.store.SetQuantity(id, *req.Quantity) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Cart line not found",
			"error":   "product " + id + " is not in the cart",
		})
	}
	return h.cartResponse(c, fiber.StatusOK, "Cart updated")
}

// RemoveItem removes a product's line from the cart.
func (h *CartHandler) RemoveItem(c *fiber.Ctx) error {
	h.store.RemoveFromCart(c.Params("id"))
	return h.cartResponse(c, fiber.StatusOK, "Product removed from cart")
}

// ClearCart empties the cart.
func (h *CartHandler) ClearCart(c *fiber.Ctx) error {
	h.store.ClearCart()
	return h.cartResponse(c, fiber.StatusOK, "Cart cleared")
}

func (h *CartHandler) cartResponse(c *fiber.Ctx, status int, message string) error {
	lines, count, total := h.store.CartSnapshot()
	body := fiber.Map{
		"lines": lines,
		"count": count,
		"total": total,
	}
	if message != "" {
		body["message"] = message
	}
	return c.Status(status).JSON(body)
}
