package handlers

import (
	"fmt"

	"etalase/internal/models"
	"etalase/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// FilterHandler exposes the visible product list and the criteria that
// shape it.
type FilterHandler struct {
	store    *services.CommerceStore
	logger   *zap.Logger
	validate *validator.Validate
}

// NewFilterHandler creates a new FilterHandler.
func NewFilterHandler(store *services.CommerceStore, logger *zap.Logger) *FilterHandler {
	return &FilterHandler{
		store:    store,
		logger:   logger,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the product list and filter routes with the Fiber app.
func (h *FilterHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/products", h.GetVisibleProducts)

	filterRoutes := router.Group("/filters")
	filterRoutes.Get("/", h.GetFilters)
	filterRoutes.Put("/category", h.SetCategory)
	filterRoutes.Put("/price", h.SetPriceRange)
	filterRoutes.Put("/brands", h.SetBrands)
	filterRoutes.Put("/rating", h.SetMinRating)
	filterRoutes.Put("/search", h.SetSearchQuery)
	filterRoutes.Put("/sort", h.SetSortBy)
	filterRoutes.Post("/reset", h.ResetFilters)
}

// CategoryRequest selects a category. An empty ID clears the selection.
type CategoryRequest struct {
	CategoryID string `json:"category_id" validate:"max=64"`
}

// PriceRangeRequest sets the price window.
type PriceRangeRequest struct {
	Min *float64 `json:"min" validate:"required"`
	Max *float64 `json:"max" validate:"required"`
}

// BrandsRequest replaces the brand selection.
type BrandsRequest struct {
	Brands []string `json:"brands" validate:"dive,required"`
}

// RatingRequest sets the rating floor. With Toggle set, selecting the active
// rating again clears it.
type RatingRequest struct {
	Rating *float64 `json:"rating" validate:"required,gte=0,lte=5"`
	Toggle bool     `json:"toggle"`
}

// SearchRequest sets the free-text query.
type SearchRequest struct {
	Query string `json:"query" validate:"max=200"`
}

// SortRequest selects the sort mode.
type SortRequest struct {
	SortBy string `json:"sort_by" validate:"required,oneof=newest cheapest expensive rating"`
}

// GetVisibleProducts returns the products matching the active criteria.
func (h *FilterHandler) GetVisibleProducts(c *fiber.Ctx) error {
	criteria := h.store.Criteria()
	products := services.DeriveVisible(h.store.Catalog(), criteria)
	return c.JSON(fiber.Map{
		"criteria": criteria,
		"count":    len(products),
		"products": newProductViews(h.store, products),
	})
}

// GetFilters returns the active criteria and the supported sort modes.
func (h *FilterHandler) GetFilters(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"criteria":   h.store.Criteria(),
		"defaults":   h.store.DefaultCriteria(),
		"sort_modes": models.SortModes,
	})
}

// SetCategory handles category selection.
func (h *FilterHandler) SetCategory(c *fiber.Ctx) error {
	var req CategoryRequest
	if ok, err := bindJSON(c, h.validate, &req); !ok {
		return err
	}
	if req.CategoryID != "" {
		if _, found := h.store.Catalog().Category(req.CategoryID); !found {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Unknown category",
				"error":   fmt.Sprintf("category with ID %s not found", req.CategoryID),
			})
		}
	}
	h.store.SetCategory(req.CategoryID)
	return h.criteriaResponse(c)
}

// SetPriceRange handles price window changes.
func (h *FilterHandler) SetPriceRange(c *fiber.Ctx) error {
	var req PriceRangeRequest
	if ok, err := bindJSON(c, h.validate, &req); !ok {
		return err
	}
	h.store.SetPriceRange(*req.Min, *req.Max)
	return h.criteriaResponse(c)
}

// SetBrands handles brand selection changes.
func (h *FilterHandler) SetBrands(c *fiber.Ctx) error {
	var req BrandsRequest
	if ok, err := bindJSON(c, h.validate, &req); !ok {
		return err
	}
	for _, id := range req.Brands {
		if _, found := h.store.Catalog().Brand(id); !found {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Unknown brand",
				"error":   fmt.Sprintf("brand with ID %s not found", id),
			})
		}
	}
	h.store.SetBrands(req.Brands)
	return h.criteriaResponse(c)
}

// SetMinRating handles rating floor changes.
func (h *FilterHandler) SetMinRating(c *fiber.Ctx) error {
	var req RatingRequest
	if ok, err := bindJSON(c, h.validate, &req); !ok {
		return err
	}
	if req.Toggle {
		h.store.ToggleMinRating(*req.Rating)
	} else {
		h.store.SetMinRating(*req.Rating)
	}
	return h.criteriaResponse(c)
}

// SetSearchQuery handles search input.
func (h *FilterHandler) SetSearchQuery(c *fiber.Ctx) error {
	var req SearchRequest
	if ok, err := bindJSON(c, h.validate, &req); !ok {
		return err
	}
	h.store.SetSearchQuery(req.Query)
	return h.criteriaResponse(c)
}

// SetSortBy handles sort mode changes.
func (h *FilterHandler) SetSortBy(c *fiber.Ctx) error {
	var req SortRequest
	if ok, err := bindJSON(c, h.validate, &req); !ok {
		return err
	}
	h.store.SetSortBy(models.SortMode(req.SortBy))
	return h.criteriaResponse(c)
}

// ResetFilters restores the default criteria.
func (h *FilterHandler) ResetFilters(c *fiber.Ctx) error {
	h.store.ResetFilters()
	h.logger.Debug("filters reset")
	return h.criteriaResponse(c)
}

func (h *FilterHandler) criteriaResponse(c *fiber.Ctx) error {
	criteria := h.store.Criteria()
	return c.JSON(fiber.Map{
		"message":  "Filters updated",
		"criteria": criteria,
		"count":    len(services.DeriveVisible(h.store.Catalog(), criteria)),
	})
}
