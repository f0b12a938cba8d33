package transaction

import (
	"time"

	"github.com/google/uuid"
)

// Type represents the type of transaction (income or expense), derived from
// the sign of the source amount.
type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

// Status represents the provider-reported state of a transaction.
type Status string

const (
	StatusCompleted Status = "completed"
	StatusPending   Status = "pending"
)

// SourceBankSync tags every transaction ingested by the sync pipeline.
const SourceBankSync = "bank_sync"

// Transaction is one ledger entry. Created once by the reconciler, never
// updated or deleted by the pipeline.
type Transaction struct {
	ID               uuid.UUID
	TenantID         uuid.UUID
	AccountID        uuid.UUID
	Amount           int64 // Absolute amount in agorot
	Type             Type
	Status           Status
	Description      string
	Date             time.Time // Calendar day, no time component
	CategoryID       *string   // nil means uncategorized
	Source           string
	OriginalCurrency string
	Memo             string
	CreatedAt        time.Time
}

// Key is the uniqueness tuple: a transaction matching an existing row on all
// five fields is a duplicate and is not re-inserted.
type Key struct {
	TenantID    uuid.UUID
	AccountID   uuid.UUID
	Amount      int64
	Date        time.Time
	Description string
}
