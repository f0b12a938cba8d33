package account

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound = errors.New("account not found")

	// ErrAmbiguous means the (tenant, account number) lookup matched more
	// than one row, which the schema is supposed to rule out.
	ErrAmbiguous = errors.New("multiple accounts match lookup key")

	// ErrMissingID means the store reported a successful insert but yielded
	// no row id to hang transactions off.
	ErrMissingID = errors.New("account store returned no id")
)

// Account is a tenant's bank or card account as known to the destination
// store. Unique per (tenant id, account number).
type Account struct {
	ID            uuid.UUID
	TenantID      uuid.UUID
	AccountNumber string
	Name          string
	Balance       int64 // Balance in agorot
	Currency      string
	Type          string
	LastSyncedAt  time.Time
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}
