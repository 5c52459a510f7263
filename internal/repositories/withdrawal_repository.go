package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gigcampus/internal/models/db_models"
)

type WithdrawalRepository interface {
	InsertTx(tx *gorm.DB, withdrawal *db_models.Withdrawal) error
	ListByPayee(ctx context.Context, payeeID uuid.UUID, limit int) ([]db_models.Withdrawal, error)
	SumCompleted(ctx context.Context, payeeID uuid.UUID) (int64, error)
}

type withdrawalRepository struct {
	db *gorm.DB
}

func NewWithdrawalRepository(db *gorm.DB) WithdrawalRepository {
	return &withdrawalRepository{db: db}
}

func (r *withdrawalRepository) InsertTx(tx *gorm.DB, withdrawal *db_models.Withdrawal) error {
	return tx.Create(withdrawal).Error
}

func (r *withdrawalRepository) ListByPayee(ctx context.Context, payeeID uuid.UUID, limit int) ([]db_models.Withdrawal, error) {
	var withdrawals []db_models.Withdrawal
	q := r.db.WithContext(ctx).
		Where("payee_id = ?", payeeID).
		Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&withdrawals).Error
	return withdrawals, err
}

func (r *withdrawalRepository) SumCompleted(ctx context.Context, payeeID uuid.UUID) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Withdrawal{}).
		Where("payee_id = ? AND status = ?", payeeID, db_models.WithdrawalStatusCompleted).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}
