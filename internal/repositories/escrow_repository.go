package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gigcampus/internal/models/db_models"
)

type EscrowRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Escrow, error)
	ExistsForPayment(ctx context.Context, paymentID uuid.UUID) (bool, error)

	// ClaimStatusTx is the optimistic lock at the heart of release/refund:
	// a conditional status flip that succeeds for exactly one writer.
	ClaimStatusTx(tx *gorm.DB, id uuid.UUID, from []db_models.EscrowStatus, to db_models.EscrowStatus, updates map[string]interface{}) (bool, error)

	SumEarnings(ctx context.Context, payeeID uuid.UUID, status db_models.EscrowStatus) (int64, error)
	SumEarningsReleasedBetween(ctx context.Context, payeeID uuid.UUID, fromUnix, toUnix int64) (int64, error)
	ListReleasedRecent(ctx context.Context, payeeID uuid.UUID, limit int) ([]db_models.Escrow, error)
}

type escrowRepository struct {
	db *gorm.DB
}

func NewEscrowRepository(db *gorm.DB) EscrowRepository {
	return &escrowRepository{db: db}
}

func (r *escrowRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Escrow, error) {
	var escrow db_models.Escrow
	err := r.db.WithContext(ctx).First(&escrow, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &escrow, nil
}

func (r *escrowRepository) ExistsForPayment(ctx context.Context, paymentID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Escrow{}).
		Where("payment_id = ?", paymentID).
		Count(&count).Error
	return count > 0, err
}

func (r *escrowRepository) ClaimStatusTx(tx *gorm.DB, id uuid.UUID, from []db_models.EscrowStatus, to db_models.EscrowStatus, updates map[string]interface{}) (bool, error) {
	if updates == nil {
		updates = map[string]interface{}{}
	}
	updates["status"] = to

	result := tx.Model(&db_models.Escrow{}).
		Where("id = ? AND status IN ?", id, from).
		Updates(updates)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

func (r *escrowRepository) SumEarnings(ctx context.Context, payeeID uuid.UUID, status db_models.EscrowStatus) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Escrow{}).
		Where("payee_id = ? AND status = ?", payeeID, status).
		Select("COALESCE(SUM(payee_earnings), 0)").
		Scan(&total).Error
	return total, err
}

func (r *escrowRepository) SumEarningsReleasedBetween(ctx context.Context, payeeID uuid.UUID, fromUnix, toUnix int64) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Escrow{}).
		Where("payee_id = ? AND status = ? AND release_date >= ? AND release_date < ?",
			payeeID, db_models.EscrowStatusReleased, fromUnix, toUnix).
		Select("COALESCE(SUM(payee_earnings), 0)").
		Scan(&total).Error
	return total, err
}

func (r *escrowRepository) ListReleasedRecent(ctx context.Context, payeeID uuid.UUID, limit int) ([]db_models.Escrow, error) {
	var escrows []db_models.Escrow
	err := r.db.WithContext(ctx).
		Where("payee_id = ? AND status = ?", payeeID, db_models.EscrowStatusReleased).
		Order("release_date DESC").
		Limit(limit).
		Find(&escrows).Error
	return escrows, err
}
