package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type PaymentStatus string

const (
	PaymentStatusCreated  PaymentStatus = "created"
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

type PaymentKind string

const (
	PaymentKindProject         PaymentKind = "project_payment"
	PaymentKindMilestone       PaymentKind = "milestone_payment"
	PaymentKindProfileBoost    PaymentKind = "profile_boost"
	PaymentKindFeaturedListing PaymentKind = "featured_listing"
	PaymentKindMembership      PaymentKind = "membership"
)

// Payment is one payment attempt. Amounts are whole rupees; the gateway
// client converts to paise on the wire.
type Payment struct {
	BaseModel
	GatewayOrderID   string `gorm:"uniqueIndex;size:64"`
	GatewayPaymentID string `gorm:"index;size:64"` // set after a successful checkout
	GatewaySignature string `gorm:"size:128"`      // set after verification

	Amount   int64
	Currency string `gorm:"size:3;default:INR"`

	Status PaymentStatus `gorm:"index;size:16"`
	Kind   PaymentKind   `gorm:"index;size:32"`

	ProjectID     *uuid.UUID `gorm:"index"`
	ApplicationID *uuid.UUID `gorm:"index"`
	PayerID       uuid.UUID  `gorm:"index"`
	PayeeID       *uuid.UUID `gorm:"index"` // absent for non-escrow kinds

	// Fee split computed once at order creation, never recomputed.
	PlatformFee   int64
	PayeeEarnings int64

	PaidAt *int64

	Metadata datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
}
