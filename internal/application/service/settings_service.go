package service

import (
	"context"

	"github.com/okalang/dinebill-api/internal/domain/entity"
	"github.com/okalang/dinebill-api/internal/domain/enum"
	"github.com/okalang/dinebill-api/internal/domain/repository"
	"github.com/okalang/dinebill-api/pkg/apperror"
)

// SettingsService handles the outlet settings singleton
type SettingsService struct {
	settingsRepo repository.SettingsRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repository.SettingsRepository) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

// GetSettings returns the settings row created at initialization
func (s *SettingsService) GetSettings(ctx context.Context) (*entity.Settings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		return nil, apperror.NewMissingContextError("Application settings")
	}
	return settings, nil
}

// UpdateSettingsInput represents the full replacement payload
type UpdateSettingsInput struct {
	ShopName       string
	Address        string
	TaxID          *string
	Phone          *string
	Tax1Rate       float64
	Tax2Rate       float64
	PaperWidth     int
	CurrencySymbol string
	Theme          string
	AutoSync       bool
}

// UpdateSettings replaces the settings row in full
func (s *SettingsService) UpdateSettings(ctx context.Context, input *UpdateSettingsInput) (*entity.Settings, error) {
	settings, err := s.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	var fieldErrors []apperror.FieldError
	if input.ShopName == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "shop_name", Message: "Shop name is required"})
	}
	if input.Tax1Rate < 0 || input.Tax2Rate < 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "tax_rates", Message: "Tax rates must not be negative"})
	}
	paperWidth, err := enum.ParsePaperWidth(input.PaperWidth)
	if err != nil {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "paper_width", Message: "Paper width must be 58 or 80"})
	}
	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	settings.ShopName = input.ShopName
	settings.Address = input.Address
	settings.TaxID = input.TaxID
	settings.Phone = input.Phone
	settings.Tax1Rate = input.Tax1Rate
	settings.Tax2Rate = input.Tax2Rate
	settings.PaperWidth = paperWidth
	settings.CurrencySymbol = input.CurrencySymbol
	settings.Theme = input.Theme
	settings.AutoSync = input.AutoSync

	if err := s.settingsRepo.Save(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}
