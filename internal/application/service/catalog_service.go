package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/blisspos/internal/domain/entity"
	"github.com/sangkips/blisspos/internal/domain/repository"
	"github.com/sangkips/blisspos/pkg/apperror"
	"github.com/sangkips/blisspos/pkg/utils"
	"github.com/shopspring/decimal"
)

// CatalogService manages the catalog of categories and items. Both support
// only add and delete; deleting a category cascades to every item that
// references it, so a dangling category reference can never exist.
type CatalogService struct {
	categoryRepo repository.CategoryRepository
	itemRepo     repository.ItemRepository
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(categoryRepo repository.CategoryRepository, itemRepo repository.ItemRepository) *CatalogService {
	return &CatalogService{
		categoryRepo: categoryRepo,
		itemRepo:     itemRepo,
	}
}

// AddCategoryInput represents the add category input.
type AddCategoryInput struct {
	Name  string
	Color string
}

// AddCategory creates a new category.
func (s *CatalogService) AddCategory(ctx context.Context, input *AddCategoryInput) (*entity.Category, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "name", Message: "Name is required"},
		})
	}

	category := &entity.Category{
		ID:        utils.NewID(),
		Name:      name,
		Color:     input.Color,
		CreatedAt: time.Now(),
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

// DeleteCategory removes a category and, in a second step, every item that
// referenced it. Both collections are persisted, so the invariant "no item
// references a missing category" holds from the caller's perspective.
func (s *CatalogService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if category == nil {
		return apperror.NewNotFoundError("Category")
	}

	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		return err
	}
	if _, err := s.itemRepo.DeleteByCategory(ctx, id); err != nil {
		return err
	}
	return nil
}

// ListCategories lists all categories in creation order.
func (s *CatalogService) ListCategories(ctx context.Context) ([]entity.Category, error) {
	return s.categoryRepo.List(ctx)
}

// AddItemInput represents the add item input.
type AddItemInput struct {
	Name        string
	Price       decimal.Decimal
	CategoryID  uuid.UUID
	Description string
	Stock       int
}

// AddItem creates a new catalog item. An empty description and a zero stock
// count are normalized to absent rather than stored as sentinel values.
func (s *CatalogService) AddItem(ctx context.Context, input *AddItemInput) (*entity.Item, error) {
	var fieldErrs []apperror.FieldError

	name := strings.TrimSpace(input.Name)
	if name == "" {
		fieldErrs = append(fieldErrs, apperror.FieldError{Field: "name", Message: "Name is required"})
	}
	if !input.Price.IsPositive() {
		fieldErrs = append(fieldErrs, apperror.FieldError{Field: "price", Message: "Price must be greater than zero"})
	}
	if input.Stock < 0 {
		fieldErrs = append(fieldErrs, apperror.FieldError{Field: "stock", Message: "Stock cannot be negative"})
	}
	if len(fieldErrs) > 0 {
		return nil, apperror.NewValidationError(fieldErrs)
	}

	category, err := s.categoryRepo.GetByID(ctx, input.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperror.NewNotFoundError("Category")
	}

	item := &entity.Item{
		ID:         utils.NewID(),
		Name:       name,
		Price:      input.Price,
		CategoryID: input.CategoryID,
		CreatedAt:  time.Now(),
	}
	if desc := strings.TrimSpace(input.Description); desc != "" {
		item.Description = &desc
	}
	if input.Stock > 0 {
		stock := input.Stock
		item.Stock = &stock
	}

	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

// DeleteItem removes a single item.
func (s *CatalogService) DeleteItem(ctx context.Context, id uuid.UUID) error {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if item == nil {
		return apperror.NewNotFoundError("Item")
	}
	return s.itemRepo.Delete(ctx, id)
}

// ListItems lists items, optionally restricted to one category.
func (s *CatalogService) ListItems(ctx context.Context, categoryID *uuid.UUID) ([]entity.Item, error) {
	if categoryID != nil {
		return s.itemRepo.ListByCategory(ctx, *categoryID)
	}
	return s.itemRepo.List(ctx)
}
