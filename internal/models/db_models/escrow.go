package db_models

import "github.com/google/uuid"

type EscrowStatus string

const (
	EscrowStatusHeld     EscrowStatus = "held"
	EscrowStatusReleased EscrowStatus = "released"
	EscrowStatusDisputed EscrowStatus = "disputed"
	EscrowStatusRefunded EscrowStatus = "refunded"
)

// Escrow holds a confirmed project payment until the payer releases it.
// 1:1 with a Payment of kind project_payment; the unique index on
// PaymentID is what makes duplicate webhook deliveries harmless.
type Escrow struct {
	BaseModel
	ProjectID uuid.UUID `gorm:"index"`
	PayerID   uuid.UUID `gorm:"index"`
	PayeeID   uuid.UUID `gorm:"index"`
	PaymentID uuid.UUID `gorm:"uniqueIndex"`

	// Copied from the Payment at creation, immutable afterward.
	TotalAmount   int64
	PlatformFee   int64
	PayeeEarnings int64

	Status        EscrowStatus `gorm:"index;size:16"`
	DisputeReason string       `gorm:"size:500"`
	ReleaseDate   *int64
}
