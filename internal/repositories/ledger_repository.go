package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gigcampus/internal/models/db_models"
)

type LedgerRepository interface {
	AppendTx(tx *gorm.DB, entry *db_models.LedgerEntry) error
	HasEntry(ctx context.Context, refType db_models.LedgerReference, refID uuid.UUID, direction db_models.LedgerDirection) (bool, error)
}

type ledgerRepository struct {
	db *gorm.DB
}

func NewLedgerRepository(db *gorm.DB) LedgerRepository {
	return &ledgerRepository{db: db}
}

func (r *ledgerRepository) AppendTx(tx *gorm.DB, entry *db_models.LedgerEntry) error {
	return tx.Create(entry).Error
}

func (r *ledgerRepository) HasEntry(ctx context.Context, refType db_models.LedgerReference, refID uuid.UUID, direction db_models.LedgerDirection) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.LedgerEntry{}).
		Where("reference_type = ? AND reference_id = ? AND direction = ?", refType, refID, direction).
		Count(&count).Error
	return count > 0, err
}
