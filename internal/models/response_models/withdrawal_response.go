package response_models

import "github.com/google/uuid"

type WithdrawalResponse struct {
	ID        uuid.UUID `json:"id"`
	Amount    int64     `json:"amount"`
	Method    string    `json:"method"`
	Status    string    `json:"status"`
	CreatedAt int64     `json:"created_at"`
}
