package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/okalang/dinebill-api/internal/domain/entity"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	// GetByUsername returns at most one user; nil when absent
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	List(ctx context.Context) ([]entity.User, error)
	Save(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id uuid.UUID) error
}
