package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"gigcampus/internal/models/db_models"
	"gigcampus/internal/models/response_models"
	"gigcampus/internal/repositories"
	"gigcampus/pkg/utils"
)

type EarningsService interface {
	Summary(ctx context.Context, userID uuid.UUID) (*response_models.EarningsSummary, error)
}

type earningsService struct {
	users       repositories.UserRepository
	escrows     repositories.EscrowRepository
	withdrawals repositories.WithdrawalRepository
}

func NewEarningsService(
	users repositories.UserRepository,
	escrows repositories.EscrowRepository,
	withdrawals repositories.WithdrawalRepository,
) EarningsService {
	return &earningsService{
		users:       users,
		escrows:     escrows,
		withdrawals: withdrawals,
	}
}

const recentLimit = 5

func (s *earningsService) Summary(ctx context.Context, userID uuid.UUID) (*response_models.EarningsSummary, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %s", utils.ErrNotFound, userID)
	}

	totalEarnings, err := s.escrows.SumEarnings(ctx, userID, db_models.EscrowStatusReleased)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	pendingEarnings, err := s.escrows.SumEarnings(ctx, userID, db_models.EscrowStatusHeld)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	totalWithdrawn, err := s.withdrawals.SumCompleted(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	now := time.Now()
	thisMonthStart := utils.StartOfMonth(now)
	lastMonthStart := utils.StartOfLastMonth(now)

	thisMonth, err := s.escrows.SumEarningsReleasedBetween(ctx, userID, thisMonthStart, now.Unix()+1)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	lastMonth, err := s.escrows.SumEarningsReleasedBetween(ctx, userID, lastMonthStart, thisMonthStart)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	recent, err := s.recentTransactions(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &response_models.EarningsSummary{
		TotalEarnings:     totalEarnings,
		PendingEarnings:   pendingEarnings,
		TotalWithdrawn:    totalWithdrawn,
		AvailableBalance:  user.AvailableBalance,
		ThisMonthEarnings: thisMonth,
		LastMonthEarnings: lastMonth,
		Recent:            recent,
	}, nil
}

// recentTransactions interleaves the latest released escrows and
// withdrawals into one reverse-chronological feed.
func (s *earningsService) recentTransactions(ctx context.Context, userID uuid.UUID) ([]response_models.TransactionEntry, error) {
	escrows, err := s.escrows.ListReleasedRecent(ctx, userID, recentLimit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	withdrawals, err := s.withdrawals.ListByPayee(ctx, userID, recentLimit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	entries := make([]response_models.TransactionEntry, 0, len(escrows)+len(withdrawals))
	for _, escrow := range escrows {
		createdAt := escrow.CreatedAt
		if escrow.ReleaseDate != nil {
			createdAt = *escrow.ReleaseDate
		}
		entries = append(entries, response_models.TransactionEntry{
			ID:          escrow.ID,
			Type:        "earning",
			Amount:      escrow.PayeeEarnings,
			Description: "Escrow release",
			Status:      "completed",
			CreatedAt:   createdAt,
		})
	}
	for _, withdrawal := range withdrawals {
		entries = append(entries, response_models.TransactionEntry{
			ID:          withdrawal.ID,
			Type:        "withdrawal",
			Amount:      withdrawal.Amount,
			Description: fmt.Sprintf("Withdrawal via %s", withdrawal.Method),
			Status:      string(withdrawal.Status),
			CreatedAt:   withdrawal.CreatedAt,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].CreatedAt > entries[j].CreatedAt
	})

	return entries, nil
}
