package response_models

import "github.com/google/uuid"

type TransactionEntry struct {
	ID          uuid.UUID `json:"id"`
	Type        string    `json:"type"` // earning | withdrawal
	Amount      int64     `json:"amount"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   int64     `json:"created_at"`
}

type EarningsSummary struct {
	TotalEarnings     int64              `json:"total_earnings"`
	PendingEarnings   int64              `json:"pending_earnings"`
	TotalWithdrawn    int64              `json:"total_withdrawn"`
	AvailableBalance  int64              `json:"available_balance"`
	ThisMonthEarnings int64              `json:"this_month_earnings"`
	LastMonthEarnings int64              `json:"last_month_earnings"`
	Recent            []TransactionEntry `json:"recent_transactions"`
}
