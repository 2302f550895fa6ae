package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/okalang/dinebill-api/internal/domain/entity"
	"github.com/okalang/dinebill-api/internal/domain/repository"
	"github.com/okalang/dinebill-api/pkg/apperror"
	"github.com/okalang/dinebill-api/pkg/utils"
)

// MenuService handles menu catalog operations
type MenuService struct {
	menuRepo repository.MenuItemRepository
}

// NewMenuService creates a new menu service
func NewMenuService(menuRepo repository.MenuItemRepository) *MenuService {
	return &MenuService{menuRepo: menuRepo}
}

// CreateMenuItemInput represents the create menu item input
type CreateMenuItemInput struct {
	Name        string
	Price       float64
	Category    string
	Description *string
	Available   *bool
}

func validateMenuInput(name string, price float64, category string) []apperror.FieldError {
	var fieldErrors []apperror.FieldError
	if strings.TrimSpace(name) == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "name", Message: "Name is required"})
	}
	if price < 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "price", Message: "Price must not be negative"})
	}
	if strings.TrimSpace(category) == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "category", Message: "Category is required"})
	}
	return fieldErrors
}

// CreateMenuItem validates and stores a new menu item
func (s *MenuService) CreateMenuItem(ctx context.Context, input *CreateMenuItemInput) (*entity.MenuItem, error) {
	if fieldErrors := validateMenuInput(input.Name, input.Price, input.Category); len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	item := &entity.MenuItem{
		Name:        strings.TrimSpace(input.Name),
		PriceCents:  utils.ToCents(input.Price),
		Category:    strings.TrimSpace(input.Category),
		Description: input.Description,
		Available:   true,
	}
	if input.Available != nil {
		item.Available = *input.Available
	}

	if err := s.menuRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// GetMenuItem returns a single menu item
func (s *MenuService) GetMenuItem(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error) {
	item, err := s.menuRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Menu item")
	}
	return item, nil
}

// ListMenuItems lists the catalog, optionally narrowed to a category or to
// available items only
func (s *MenuService) ListMenuItems(ctx context.Context, category string, availableOnly bool) ([]entity.MenuItem, error) {
	if category != "" {
		return s.menuRepo.ListByCategory(ctx, category)
	}
	if availableOnly {
		return s.menuRepo.ListAvailable(ctx)
	}
	return s.menuRepo.List(ctx)
}

// UpdateMenuItemInput represents the update menu item input; nil fields are
// left unchanged
type UpdateMenuItemInput struct {
	Name        *string
	Price       *float64
	Category    *string
	Description *string
	Available   *bool
}

// UpdateMenuItem applies a partial update and saves the full record
func (s *MenuService) UpdateMenuItem(ctx context.Context, id uuid.UUID, input *UpdateMenuItemInput) (*entity.MenuItem, error) {
	item, err := s.GetMenuItem(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		item.Name = *input.Name
	}
	if input.Price != nil {
		item.PriceCents = utils.ToCents(*input.Price)
	}
	if input.Category != nil {
		item.Category = *input.Category
	}
	if input.Description != nil {
		item.Description = input.Description
	}
	if input.Available != nil {
		item.Available = *input.Available
	}

	if fieldErrors := validateMenuInput(item.Name, float64(item.PriceCents)/100, item.Category); len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	if err := s.menuRepo.Save(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// DeleteMenuItem removes a menu item. Deleting an absent id succeeds.
func (s *MenuService) DeleteMenuItem(ctx context.Context, id uuid.UUID) error {
	return s.menuRepo.Delete(ctx, id)
}

// SetAvailability flips the availability soft toggle
func (s *MenuService) SetAvailability(ctx context.Context, id uuid.UUID, available bool) (*entity.MenuItem, error) {
	item, err := s.GetMenuItem(ctx, id)
	if err != nil {
		return nil, err
	}
	item.Available = available
	if err := s.menuRepo.Save(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}
