package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sangkips/blisspos/internal/application/service"
	"github.com/sangkips/blisspos/internal/presentation/http/dto/request"
	"github.com/sangkips/blisspos/internal/presentation/http/dto/response"
	"github.com/shopspring/decimal"
)

// CatalogHandler handles category and item HTTP requests.
type CatalogHandler struct {
	catalogService *service.CatalogService
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// ListCategories handles listing all categories.
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.catalogService.ListCategories(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Categories retrieved successfully", categories)
}

// CreateCategory handles creating a category.
func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	var req request.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	category, err := h.catalogService.AddCategory(c.Request.Context(), &service.AddCategoryInput{
		Name:  req.Name,
		Color: req.Color,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Category created successfully", category)
}

// DeleteCategory handles deleting a category and all of its items.
func (h *CatalogHandler) DeleteCategory(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.catalogService.DeleteCategory(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Category deleted successfully", nil)
}

// ListItems handles listing items, optionally filtered by category.
func (h *CatalogHandler) ListItems(c *gin.Context) {
	var filter request.ItemFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	var categoryID *uuid.UUID
	if filter.CategoryID != "" {
		id, err := uuid.Parse(filter.CategoryID)
		if err != nil {
			response.BadRequest(c, "Invalid category_id")
			return
		}
		categoryID = &id
	}

	items, err := h.catalogService.ListItems(c.Request.Context(), categoryID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Items retrieved successfully", items)
}

// CreateItem handles creating an item.
func (h *CatalogHandler) CreateItem(c *gin.Context) {
	var req request.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		response.BadRequest(c, "Invalid category_id")
		return
	}

	item, err := h.catalogService.AddItem(c.Request.Context(), &service.AddItemInput{
		Name:        req.Name,
		Price:       decimal.NewFromFloat(req.Price),
		CategoryID:  categoryID,
		Description: req.Description,
		Stock:       req.Stock,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Item created successfully", item)
}

// DeleteItem handles deleting an item.
func (h *CatalogHandler) DeleteItem(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.catalogService.DeleteItem(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Item deleted successfully", nil)
}
