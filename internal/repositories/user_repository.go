package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gigcampus/internal/models/db_models"
)

type UserRepository interface {
	Insert(ctx context.Context, user *db_models.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.User, error)
	FindByEmail(ctx context.Context, email string) (*db_models.User, error)

	// CreditEarningsTx applies an escrow release to the payee's counters.
	CreditEarningsTx(tx *gorm.DB, userID uuid.UUID, amount int64) error
	// DebitBalanceTx conditionally debits the available balance; returns
	// false when the balance is lower than the requested amount.
	DebitBalanceTx(tx *gorm.DB, userID uuid.UUID, amount int64) (bool, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Insert(ctx context.Context, user *db_models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.User, error) {
	var user db_models.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*db_models.User, error) {
	var user db_models.User
	err := r.db.WithContext(ctx).First(&user, "email = ?", email).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

func (r *userRepository) CreditEarningsTx(tx *gorm.DB, userID uuid.UUID, amount int64) error {
	result := tx.Model(&db_models.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"total_earnings":     gorm.Expr("total_earnings + ?", amount),
			"available_balance":  gorm.Expr("available_balance + ?", amount),
			"completed_projects": gorm.Expr("completed_projects + 1"),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *userRepository) DebitBalanceTx(tx *gorm.DB, userID uuid.UUID, amount int64) (bool, error) {
	result := tx.Model(&db_models.User{}).
		Where("id = ? AND available_balance >= ?", userID, amount).
		Update("available_balance", gorm.Expr("available_balance - ?", amount))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}
