package db_models

import "github.com/google/uuid"

type LedgerDirection string

const (
	LedgerCredit LedgerDirection = "credit"
	LedgerDebit  LedgerDirection = "debit"
)

type LedgerReference string

const (
	LedgerRefEscrow     LedgerReference = "escrow"
	LedgerRefWithdrawal LedgerReference = "withdrawal"
)

// LedgerEntry is an append-only record of every balance mutation, keyed to
// the entity that caused it. The unique index means an escrow or withdrawal
// can move a balance in a given direction at most once, which is the
// audit-trail side of the release/debit idempotency guarantees.
type LedgerEntry struct {
	BaseModel
	UserID uuid.UUID `gorm:"index"`
	Amount int64     // always positive; Direction carries the sign

	Direction     LedgerDirection `gorm:"size:8;uniqueIndex:idx_ledger_ref,priority:3"`
	ReferenceType LedgerReference `gorm:"size:16;uniqueIndex:idx_ledger_ref,priority:1"`
	ReferenceID   uuid.UUID       `gorm:"uniqueIndex:idx_ledger_ref,priority:2"`

	Note string `gorm:"size:255"`
}
