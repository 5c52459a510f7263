package request_models

import "github.com/google/uuid"

type ReleaseEscrowRequest struct {
	EscrowID uuid.UUID `json:"escrow_id" binding:"required"`
	Reason   string    `json:"reason" binding:"omitempty,max=500"`
}

type DisputeEscrowRequest struct {
	EscrowID uuid.UUID `json:"escrow_id" binding:"required"`
	Reason   string    `json:"reason" binding:"required,max=500"`
}

type RefundEscrowRequest struct {
	EscrowID uuid.UUID `json:"escrow_id" binding:"required"`
	Reason   string    `json:"reason" binding:"omitempty,max=500"`
}
