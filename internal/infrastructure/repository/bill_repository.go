package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/okalang/dinebill-api/internal/domain/entity"
	domainRepo "github.com/okalang/dinebill-api/internal/domain/repository"
	"github.com/okalang/dinebill-api/pkg/apperror"
	"gorm.io/gorm"
)

type billRepository struct {
	db *gorm.DB
}

// NewBillRepository creates a new bill repository
func NewBillRepository(db *gorm.DB) domainRepo.BillRepository {
	return &billRepository{db: db}
}

func (r *billRepository) Create(ctx context.Context, bill *entity.Bill) error {
	// GORM cascades the Items association inside the same transaction,
	// so a bill is never stored without its lines.
	err := r.db.WithContext(ctx).Create(bill).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperror.NewDuplicateKeyError("Bill number already exists")
	}
	return err
}

// preloadItems orders a bill's lines by insertion. Preload on its own makes
// no ordering promise, and receipts render lines as they were rung up.
func preloadItems(db *gorm.DB) *gorm.DB {
	return db.Order("rowid ASC")
}

func (r *billRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Bill, error) {
	var bill entity.Bill
	err := r.db.WithContext(ctx).
		Preload("Items", preloadItems).
		First(&bill, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &bill, err
}

func (r *billRepository) List(ctx context.Context) ([]entity.Bill, error) {
	var bills []entity.Bill
	err := r.db.WithContext(ctx).
		Preload("Items", preloadItems).
		Order("rowid ASC").
		Find(&bills).Error
	return bills, err
}

func (r *billRepository) ListRecent(ctx context.Context, limit int) ([]entity.Bill, error) {
	var bills []entity.Bill
	err := r.db.WithContext(ctx).
		Preload("Items", preloadItems).
		Order("rowid DESC").
		Limit(limit).
		Find(&bills).Error
	return bills, err
}

func (r *billRepository) ListUnsynced(ctx context.Context) ([]entity.Bill, error) {
	var bills []entity.Bill
	err := r.db.WithContext(ctx).
		Preload("Items", preloadItems).
		Where("synced = ?", false).
		Order("rowid ASC").
		Find(&bills).Error
	return bills, err
}

// LastInserted orders by SQLite's implicit rowid, which is true physical
// insertion order. Bill numbering depends on this, not on timestamps.
func (r *billRepository) LastInserted(ctx context.Context) (*entity.Bill, error) {
	var bill entity.Bill
	err := r.db.WithContext(ctx).
		Order("rowid DESC").
		First(&bill).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &bill, err
}

func (r *billRepository) MarkSynced(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Model(&entity.Bill{}).
		Where("id = ?", id).
		Update("synced", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperror.NewNotFoundError("Bill")
	}
	return nil
}

func (r *billRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Bill{}).Count(&count).Error
	return count, err
}
