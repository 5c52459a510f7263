package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"gigcampus/internal/gateway/razorpay"
	"gigcampus/internal/models/db_models"
	"gigcampus/internal/models/request_models"
	"gigcampus/internal/models/response_models"
	"gigcampus/pkg/utils"
)

type VerificationService interface {
	VerifyAndConfirm(ctx context.Context, req request_models.VerifyPaymentRequest) (*response_models.VerifyPaymentResponse, error)
}

type verificationService struct {
	db     *gorm.DB
	secret string
	logger *zap.Logger
}

func NewVerificationService(db *gorm.DB, secret string, logger *zap.Logger) VerificationService {
	return &verificationService{db: db, secret: secret, logger: logger}
}

// VerifyAndConfirm authenticates a checkout callback and moves the payment
// to paid. For project payments it also creates the held escrow — inside
// the same transaction, so a crash can never leave a paid project payment
// without its escrow.
func (s *verificationService) VerifyAndConfirm(ctx context.Context, req request_models.VerifyPaymentRequest) (*response_models.VerifyPaymentResponse, error) {
	if !razorpay.VerifySignature(s.secret, req.GatewayOrderID, req.GatewayPaymentID, req.GatewaySignature) {
		// Security relevant: this is either tampering or a misconfigured
		// secret. No state changes, ever.
		s.logger.Warn("payment signature mismatch",
			zap.String("gateway_order_id", req.GatewayOrderID),
			zap.String("gateway_payment_id", req.GatewayPaymentID))
		return nil, utils.ErrSignatureMismatch
	}

	var resp response_models.VerifyPaymentResponse

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var payment db_models.Payment
		if err := tx.First(&payment, "gateway_order_id = ?", req.GatewayOrderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: payment for order %s", utils.ErrNotFound, req.GatewayOrderID)
			}
			return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
		}

		// The conditional update is the replay guard: a payment already
		// paid, failed or refunded never transitions again.
		now := time.Now().Unix()
		result := tx.Model(&db_models.Payment{}).
			Where("id = ? AND status IN ?", payment.ID,
				[]db_models.PaymentStatus{db_models.PaymentStatusCreated, db_models.PaymentStatusPending}).
			Updates(map[string]interface{}{
				"status":             db_models.PaymentStatusPaid,
				"gateway_payment_id": req.GatewayPaymentID,
				"gateway_signature":  req.GatewaySignature,
				"paid_at":            now,
			})
		if result.Error != nil {
			return fmt.Errorf("%w: %v", utils.ErrDatabaseError, result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("%w: payment already %s", utils.ErrInvalidState, payment.Status)
		}

		resp.PaymentID = payment.ID
		resp.Status = string(db_models.PaymentStatusPaid)

		if payment.Kind != db_models.PaymentKindProject {
			return nil
		}

		// Held escrow, at most once per payment. The existence check keeps
		// duplicate callback deliveries quiet; the unique index on
		// payment_id is the hard guarantee underneath it.
		var count int64
		if err := tx.Model(&db_models.Escrow{}).
			Where("payment_id = ?", payment.ID).
			Count(&count).Error; err != nil {
			return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
		}
		if count > 0 {
			return nil
		}

		if payment.PayeeID == nil || payment.ProjectID == nil {
			return fmt.Errorf("%w: project payment %s has no payee or project", utils.ErrInvalidState, payment.ID)
		}

		escrow := &db_models.Escrow{
			ProjectID:     *payment.ProjectID,
			PayerID:       payment.PayerID,
			PayeeID:       *payment.PayeeID,
			PaymentID:     payment.ID,
			TotalAmount:   payment.Amount,
			PlatformFee:   payment.PlatformFee,
			PayeeEarnings: payment.PayeeEarnings,
			Status:        db_models.EscrowStatusHeld,
		}
		if err := tx.Create(escrow).Error; err != nil {
			return fmt.Errorf("%w: create escrow: %v", utils.ErrDatabaseError, err)
		}
		resp.EscrowID = &escrow.ID

		if payment.ApplicationID != nil {
			if err := tx.Model(&db_models.Application{}).
				Where("id = ?", *payment.ApplicationID).
				Updates(map[string]interface{}{
					"paid":       true,
					"payment_id": payment.ID,
				}).Error; err != nil {
				return fmt.Errorf("%w: mark application paid: %v", utils.ErrDatabaseError, err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("payment verified",
		zap.String("payment_id", resp.PaymentID.String()),
		zap.String("gateway_order_id", req.GatewayOrderID))

	return &resp, nil
}
