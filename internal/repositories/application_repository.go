package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gigcampus/internal/models/db_models"
)

type ApplicationRepository interface {
	Insert(ctx context.Context, application *db_models.Application) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Application, error)
	AcceptTx(tx *gorm.DB, id uuid.UUID) (bool, error)
	MarkPaidTx(tx *gorm.DB, id uuid.UUID, paymentID uuid.UUID) error
}

type applicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) Insert(ctx context.Context, application *db_models.Application) error {
	return r.db.WithContext(ctx).Create(application).Error
}

func (r *applicationRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Application, error) {
	var application db_models.Application
	err := r.db.WithContext(ctx).First(&application, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &application, nil
}

// AcceptTx moves a pending application to accepted; the conditional update
// keeps double accepts out.
func (r *applicationRepository) AcceptTx(tx *gorm.DB, id uuid.UUID) (bool, error) {
	result := tx.Model(&db_models.Application{}).
		Where("id = ? AND status = ?", id, db_models.ApplicationStatusPending).
		Update("status", db_models.ApplicationStatusAccepted)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

func (r *applicationRepository) MarkPaidTx(tx *gorm.DB, id uuid.UUID, paymentID uuid.UUID) error {
	return tx.Model(&db_models.Application{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"paid":       true,
			"payment_id": paymentID,
		}).Error
}
