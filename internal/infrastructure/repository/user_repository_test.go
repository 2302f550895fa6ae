package repository

import (
	"context"
	"testing"

	"github.com/okalang/dinebill-api/internal/domain/entity"
	"github.com/okalang/dinebill-api/internal/domain/enum"
	"github.com/okalang/dinebill-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUser(username string) *entity.User {
	return &entity.User{
		Username:     username,
		PasswordHash: "hash",
		Role:         enum.RoleCashier,
		DisplayName:  "Test User",
		Active:       true,
	}
}

func TestUserCreateDuplicateUsername(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newUser("jane")))

	err := repo.Create(ctx, newUser("jane"))
	assert.True(t, apperror.IsKind(err, apperror.KindDuplicateKey))
}

func TestUserGetByUsername(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newUser("jane")))

	user, err := repo.GetByUsername(ctx, "jane")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "jane", user.Username)

	absent, err := repo.GetByUsername(ctx, "nobody")
	require.NoError(t, err)
	assert.Nil(t, absent)
}

func TestUserSaveTogglesActive(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))
	ctx := context.Background()

	user := newUser("jane")
	require.NoError(t, repo.Create(ctx, user))

	user.Active = false
	require.NoError(t, repo.Save(ctx, user))

	stored, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.False(t, stored.Active)
}
