package service

import (
	"context"
	"testing"

	"github.com/okalang/dinebill-api/internal/domain/entity"
	"github.com/okalang/dinebill-api/internal/domain/enum"
	"github.com/okalang/dinebill-api/internal/infrastructure/repository"
	"github.com/okalang/dinebill-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSettingsFixture(t *testing.T) *SettingsService {
	t.Helper()
	f := newBillingFixture(t)
	return NewSettingsService(repository.NewSettingsRepository(f.db))
}

func TestUpdateSettingsFullReplacement(t *testing.T) {
	svc := newSettingsFixture(t)
	ctx := context.Background()

	taxID := "TAX-42"
	updated, err := svc.UpdateSettings(ctx, &UpdateSettingsInput{
		ShopName:       "Corner Cafe",
		Address:        "1 Main St",
		TaxID:          &taxID,
		Tax1Rate:       5,
		Tax2Rate:       1.5,
		PaperWidth:     80,
		CurrencySymbol: "€",
		Theme:          "dark",
		AutoSync:       true,
	})
	require.NoError(t, err)
	assert.Equal(t, "Corner Cafe", updated.ShopName)
	assert.Equal(t, enum.Paper80mm, updated.PaperWidth)
	assert.Equal(t, 5.0, updated.Tax1Rate)

	// A second update without TaxID clears it; updates replace in full.
	updated, err = svc.UpdateSettings(ctx, &UpdateSettingsInput{
		ShopName:       "Corner Cafe",
		Tax1Rate:       5,
		Tax2Rate:       1.5,
		PaperWidth:     80,
		CurrencySymbol: "€",
		Theme:          "dark",
	})
	require.NoError(t, err)
	assert.Nil(t, updated.TaxID)
	assert.False(t, updated.AutoSync)
}

func TestUpdateSettingsValidation(t *testing.T) {
	svc := newSettingsFixture(t)

	_, err := svc.UpdateSettings(context.Background(), &UpdateSettingsInput{
		ShopName:   "",
		Tax1Rate:   -1,
		PaperWidth: 72,
	})
	require.True(t, apperror.IsKind(err, apperror.KindValidation))
	assert.Len(t, apperror.GetAppError(err).Errors, 3)
}

func TestEffectiveTaxRateDefaults(t *testing.T) {
	s := &entity.Settings{Tax1Rate: -1, Tax2Rate: 7.5}
	assert.Equal(t, entity.DefaultTaxRate, s.EffectiveTax1Rate())
	assert.Equal(t, 7.5, s.EffectiveTax2Rate())

	// An explicit 0% stays 0%; the default never overrides a stored rate.
	zero := &entity.Settings{Tax1Rate: 0, Tax2Rate: 0}
	assert.Equal(t, 0.0, zero.EffectiveTax1Rate())
	assert.Equal(t, 0.0, zero.EffectiveTax2Rate())
}

func TestUpdateSettingsZeroTaxRateIsStored(t *testing.T) {
	svc := newSettingsFixture(t)

	updated, err := svc.UpdateSettings(context.Background(), &UpdateSettingsInput{
		ShopName:       "Corner Cafe",
		Tax1Rate:       0,
		Tax2Rate:       0,
		PaperWidth:     58,
		CurrencySymbol: "$",
		Theme:          "light",
	})
	require.NoError(t, err)
	assert.Equal(t, 0.0, updated.Tax1Rate)
	assert.Equal(t, 0.0, updated.EffectiveTax1Rate())
	assert.Equal(t, 0.0, updated.EffectiveTax2Rate())
}
