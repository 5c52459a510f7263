package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gigcampus/internal/models/db_models"
)

type PaymentRepository interface {
	Insert(ctx context.Context, payment *db_models.Payment) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Payment, error)
	FindByGatewayOrderID(ctx context.Context, orderID string) (*db_models.Payment, error)
	ListRecent(ctx context.Context, limit int) ([]db_models.Payment, error)
}

type paymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Insert(ctx context.Context, payment *db_models.Payment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

func (r *paymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Payment, error) {
	var payment db_models.Payment
	err := r.db.WithContext(ctx).First(&payment, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &payment, nil
}

func (r *paymentRepository) FindByGatewayOrderID(ctx context.Context, orderID string) (*db_models.Payment, error) {
	var payment db_models.Payment
	err := r.db.WithContext(ctx).First(&payment, "gateway_order_id = ?", orderID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &payment, nil
}

func (r *paymentRepository) ListRecent(ctx context.Context, limit int) ([]db_models.Payment, error) {
	var payments []db_models.Payment
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&payments).Error
	return payments, err
}
