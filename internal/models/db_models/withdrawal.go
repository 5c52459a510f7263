package db_models

import "github.com/google/uuid"

type WithdrawalStatus string

const (
	WithdrawalStatusPending    WithdrawalStatus = "pending"
	WithdrawalStatusProcessing WithdrawalStatus = "processing"
	WithdrawalStatusCompleted  WithdrawalStatus = "completed"
	WithdrawalStatusFailed     WithdrawalStatus = "failed"
)

type WithdrawalMethod string

const (
	WithdrawalMethodBankTransfer WithdrawalMethod = "bank_transfer"
	WithdrawalMethodUPI          WithdrawalMethod = "upi"
)

type AccountDetails struct {
	AccountNumber     string `gorm:"size:32"`
	IfscCode          string `gorm:"size:16"`
	AccountHolderName string `gorm:"size:255"`
	UpiID             string `gorm:"size:255"`
}

// Withdrawal is a payout request. The payee's balance is debited when the
// record is created; the external payout is settled asynchronously.
type Withdrawal struct {
	BaseModel
	PayeeID uuid.UUID `gorm:"index"`
	Amount  int64

	Method         WithdrawalMethod `gorm:"size:16"`
	AccountDetails AccountDetails   `gorm:"embedded;embeddedPrefix:account_"`

	Status            WithdrawalStatus `gorm:"index;size:16"`
	ProcessedAt       *int64
	GatewayTransferID string `gorm:"size:64"`
}
