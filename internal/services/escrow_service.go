package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"gigcampus/internal/models/db_models"
	"gigcampus/internal/repositories"
	"gigcampus/pkg/utils"
)

type EscrowService interface {
	Release(ctx context.Context, escrowID, requesterID uuid.UUID, reason string) error
	Dispute(ctx context.Context, escrowID, requesterID uuid.UUID, reason string) error
	Refund(ctx context.Context, escrowID, requesterID uuid.UUID, reason string) error
}

// escrowService owns the held -> released | held -> disputed -> {released,
// refunded} state machine. Every terminal transition starts with a
// conditional status flip; the writer whose flip matched a row is the only
// one allowed to apply the dependent balance and project effects, and all
// of it happens in one database transaction.
type escrowService struct {
	db       *gorm.DB
	escrows  repositories.EscrowRepository
	users    repositories.UserRepository
	projects repositories.ProjectRepository
	ledger   repositories.LedgerRepository
	logger   *zap.Logger
}

func NewEscrowService(
	db *gorm.DB,
	escrows repositories.EscrowRepository,
	users repositories.UserRepository,
	projects repositories.ProjectRepository,
	ledger repositories.LedgerRepository,
	logger *zap.Logger,
) EscrowService {
	return &escrowService{
		db:       db,
		escrows:  escrows,
		users:    users,
		projects: projects,
		ledger:   ledger,
		logger:   logger,
	}
}

// Release pays the escrowed earnings out to the payee and marks the project
// complete. Only the payer who funded the escrow may release; a disputed
// escrow released by the payer counts as the dispute resolving in the
// payee's favor.
func (s *escrowService) Release(ctx context.Context, escrowID, requesterID uuid.UUID, reason string) error {
	escrow, err := s.escrows.FindByID(ctx, escrowID)
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if escrow == nil {
		return fmt.Errorf("%w: escrow %s", utils.ErrNotFound, escrowID)
	}
	if escrow.PayerID != requesterID {
		return utils.ErrUnauthorized
	}

	now := time.Now().Unix()
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		claimed, err := s.escrows.ClaimStatusTx(tx, escrowID,
			[]db_models.EscrowStatus{db_models.EscrowStatusHeld, db_models.EscrowStatusDisputed},
			db_models.EscrowStatusReleased,
			map[string]interface{}{"release_date": now})
		if err != nil {
			return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
		}
		if !claimed {
			return fmt.Errorf("%w: escrow already processed", utils.ErrInvalidState)
		}

		if err := s.ledger.AppendTx(tx, &db_models.LedgerEntry{
			UserID:        escrow.PayeeID,
			Amount:        escrow.PayeeEarnings,
			Direction:     db_models.LedgerCredit,
			ReferenceType: db_models.LedgerRefEscrow,
			ReferenceID:   escrow.ID,
			Note:          "escrow release",
		}); err != nil {
			return fmt.Errorf("%w: ledger entry: %v", utils.ErrDatabaseError, err)
		}

		if err := s.users.CreditEarningsTx(tx, escrow.PayeeID, escrow.PayeeEarnings); err != nil {
			return fmt.Errorf("%w: credit payee: %v", utils.ErrDatabaseError, err)
		}

		if err := s.projects.MarkCompletedTx(tx, escrow.ProjectID, now); err != nil {
			return fmt.Errorf("%w: complete project: %v", utils.ErrDatabaseError, err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("escrow released",
		zap.String("escrow_id", escrowID.String()),
		zap.String("payee_id", escrow.PayeeID.String()),
		zap.Int64("payee_earnings", escrow.PayeeEarnings))

	return nil
}

// Dispute freezes a held escrow. Either party can raise it; it resolves
// through Release (payer approves after all) or Refund.
func (s *escrowService) Dispute(ctx context.Context, escrowID, requesterID uuid.UUID, reason string) error {
	escrow, err := s.escrows.FindByID(ctx, escrowID)
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if escrow == nil {
		return fmt.Errorf("%w: escrow %s", utils.ErrNotFound, escrowID)
	}
	if escrow.PayerID != requesterID && escrow.PayeeID != requesterID {
		return utils.ErrUnauthorized
	}

	claimed, err := s.escrows.ClaimStatusTx(s.db.WithContext(ctx), escrowID,
		[]db_models.EscrowStatus{db_models.EscrowStatusHeld},
		db_models.EscrowStatusDisputed,
		map[string]interface{}{"dispute_reason": reason})
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if !claimed {
		return fmt.Errorf("%w: escrow is not held", utils.ErrInvalidState)
	}

	s.logger.Info("escrow disputed",
		zap.String("escrow_id", escrowID.String()),
		zap.String("requester_id", requesterID.String()))

	return nil
}

// Refund resolves a held or disputed escrow back to the payer. The payee's
// balance is never touched; the payment record flips to refunded and the
// gateway-side refund happens out of band.
func (s *escrowService) Refund(ctx context.Context, escrowID, requesterID uuid.UUID, reason string) error {
	escrow, err := s.escrows.FindByID(ctx, escrowID)
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if escrow == nil {
		return fmt.Errorf("%w: escrow %s", utils.ErrNotFound, escrowID)
	}
	if escrow.PayerID != requesterID {
		return utils.ErrUnauthorized
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		claimed, err := s.escrows.ClaimStatusTx(tx, escrowID,
			[]db_models.EscrowStatus{db_models.EscrowStatusHeld, db_models.EscrowStatusDisputed},
			db_models.EscrowStatusRefunded,
			map[string]interface{}{"dispute_reason": reason})
		if err != nil {
			return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
		}
		if !claimed {
			return fmt.Errorf("%w: escrow already processed", utils.ErrInvalidState)
		}

		if err := tx.Model(&db_models.Payment{}).
			Where("id = ? AND status = ?", escrow.PaymentID, db_models.PaymentStatusPaid).
			Update("status", db_models.PaymentStatusRefunded).Error; err != nil {
			return fmt.Errorf("%w: refund payment: %v", utils.ErrDatabaseError, err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("escrow refunded",
		zap.String("escrow_id", escrowID.String()),
		zap.String("payer_id", escrow.PayerID.String()),
		zap.Int64("total_amount", escrow.TotalAmount))

	return nil
}
