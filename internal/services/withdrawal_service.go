package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"gigcampus/internal/models/db_models"
	"gigcampus/internal/models/request_models"
	"gigcampus/internal/repositories"
	"gigcampus/pkg/utils"
)

type WithdrawalConfig struct {
	Minimum int64 // smallest allowed withdrawal, whole rupees
}

type WithdrawalService interface {
	RequestWithdrawal(ctx context.Context, payeeID uuid.UUID, req request_models.WithdrawRequest) (*db_models.Withdrawal, error)
}

type withdrawalService struct {
	db          *gorm.DB
	users       repositories.UserRepository
	withdrawals repositories.WithdrawalRepository
	ledger      repositories.LedgerRepository
	cfg         WithdrawalConfig
	logger      *zap.Logger
}

func NewWithdrawalService(
	db *gorm.DB,
	users repositories.UserRepository,
	withdrawals repositories.WithdrawalRepository,
	ledger repositories.LedgerRepository,
	cfg WithdrawalConfig,
	logger *zap.Logger,
) WithdrawalService {
	return &withdrawalService{
		db:          db,
		users:       users,
		withdrawals: withdrawals,
		ledger:      ledger,
		cfg:         cfg,
		logger:      logger,
	}
}

// RequestWithdrawal debits the payee's available balance and records a
// pending payout request. The debit is a conditional update, so a
// concurrent withdrawal can never take the balance negative; debit and
// record creation commit together. The external payout itself is
// asynchronous — if it later fails, a compensating credit is a new ledger
// entry, not an edit.
func (s *withdrawalService) RequestWithdrawal(ctx context.Context, payeeID uuid.UUID, req request_models.WithdrawRequest) (*db_models.Withdrawal, error) {
	if req.Amount < s.cfg.Minimum {
		return nil, fmt.Errorf("%w: minimum withdrawal is %d", utils.ErrValidation, s.cfg.Minimum)
	}

	method := db_models.WithdrawalMethod(req.Method)
	if err := validateAccountDetails(method, req.AccountDetails); err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, payeeID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %s", utils.ErrNotFound, payeeID)
	}

	withdrawal := &db_models.Withdrawal{
		PayeeID: payeeID,
		Amount:  req.Amount,
		Method:  method,
		AccountDetails: db_models.AccountDetails{
			AccountNumber:     req.AccountDetails.AccountNumber,
			IfscCode:          req.AccountDetails.IfscCode,
			AccountHolderName: req.AccountDetails.AccountHolderName,
			UpiID:             req.AccountDetails.UpiID,
		},
		Status: db_models.WithdrawalStatusPending,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		debited, err := s.users.DebitBalanceTx(tx, payeeID, req.Amount)
		if err != nil {
			return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
		}
		if !debited {
			return utils.ErrInsufficientBalance
		}

		if err := s.withdrawals.InsertTx(tx, withdrawal); err != nil {
			return fmt.Errorf("%w: create withdrawal: %v", utils.ErrDatabaseError, err)
		}

		if err := s.ledger.AppendTx(tx, &db_models.LedgerEntry{
			UserID:        payeeID,
			Amount:        req.Amount,
			Direction:     db_models.LedgerDebit,
			ReferenceType: db_models.LedgerRefWithdrawal,
			ReferenceID:   withdrawal.ID,
			Note:          "withdrawal request",
		}); err != nil {
			return fmt.Errorf("%w: ledger entry: %v", utils.ErrDatabaseError, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("withdrawal requested",
		zap.String("withdrawal_id", withdrawal.ID.String()),
		zap.String("payee_id", payeeID.String()),
		zap.Int64("amount", req.Amount),
		zap.String("method", req.Method))

	return withdrawal, nil
}

func validateAccountDetails(method db_models.WithdrawalMethod, details request_models.WithdrawalAccountDetails) error {
	switch method {
	case db_models.WithdrawalMethodBankTransfer:
		if details.AccountNumber == "" || details.IfscCode == "" || details.AccountHolderName == "" {
			return fmt.Errorf("%w: bank transfers need account number, IFSC code and account holder name", utils.ErrValidation)
		}
	case db_models.WithdrawalMethodUPI:
		if details.UpiID == "" {
			return fmt.Errorf("%w: UPI withdrawals need a UPI id", utils.ErrValidation)
		}
	default:
		return fmt.Errorf("%w: unsupported withdrawal method %q", utils.ErrValidation, method)
	}
	return nil
}
