package request_models

import "github.com/google/uuid"

type CreateOrderRequest struct {
	Amount        int64      `json:"amount" binding:"required,gt=0"`
	Currency      string     `json:"currency" binding:"omitempty,len=3"`
	Kind          string     `json:"kind" binding:"required,oneof=project_payment milestone_payment profile_boost featured_listing membership"`
	ProjectID     *uuid.UUID `json:"project_id"`
	ApplicationID *uuid.UUID `json:"application_id"`
	PayeeID       *uuid.UUID `json:"payee_id"`
}

type VerifyPaymentRequest struct {
	GatewayOrderID   string `json:"gateway_order_id" binding:"required"`
	GatewayPaymentID string `json:"gateway_payment_id" binding:"required"`
	GatewaySignature string `json:"gateway_signature" binding:"required"`
}
