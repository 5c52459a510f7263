package response_models

import "github.com/google/uuid"

// CreateOrderResponse carries everything the client needs to open the
// gateway's hosted checkout.
type CreateOrderResponse struct {
	GatewayOrderID string    `json:"gateway_order_id"`
	Amount         int64     `json:"amount"` // gateway minor units (paise)
	Currency       string    `json:"currency"`
	PaymentID      uuid.UUID `json:"payment_id"`
	CheckoutKey    string    `json:"checkout_key"`
}

type VerifyPaymentResponse struct {
	PaymentID uuid.UUID  `json:"payment_id"`
	Status    string     `json:"status"`
	EscrowID  *uuid.UUID `json:"escrow_id,omitempty"`
}

type AdminPaymentEntry struct {
	ID        uuid.UUID  `json:"id"`
	Amount    int64      `json:"amount"`
	Status    string     `json:"status"`
	Kind      string     `json:"kind"`
	PayerID   uuid.UUID  `json:"payer_id"`
	PayeeID   *uuid.UUID `json:"payee_id,omitempty"`
	CreatedAt int64      `json:"created_at"`
}
