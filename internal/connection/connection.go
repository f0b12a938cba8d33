// Package connection models a tenant's link to one provider, holding
// credentials and the status of the last sync attempt.
package connection

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/moneta-app/banksync/internal/scraper"
)

// Status is the outcome of the last sync attempt for a connection.
type Status string

const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
	StatusPending Status = "pending"
)

// Connection identifies a (tenant, provider) pair requiring sync. The
// pipeline reads it and writes its status fields; it never creates or
// deletes connections.
type Connection struct {
	ID            uuid.UUID
	TenantID      uuid.UUID
	Provider      scraper.Provider
	Credentials   string // Opaque base64(JSON) blob
	AutoSync      bool
	LastSyncAt    *time.Time
	LastStatus    Status
	LastError     *string
	AccountsCount int
	CreatedAt     time.Time
}

//go:generate mockgen -source=connection.go -destination=repository_mock.go -package=connection
type Repository interface {
	// ListAutoSync returns every connection eligible for the nightly batch.
	ListAutoSync(ctx context.Context) ([]*Connection, error)

	// RecordSuccess upserts the connection's status after a successful sync.
	RecordSuccess(ctx context.Context, tenantID uuid.UUID, provider scraper.Provider, syncedAt time.Time, accountsCount int) error

	// RecordError upserts the connection's status after a failed sync.
	RecordError(ctx context.Context, tenantID uuid.UUID, provider scraper.Provider, syncedAt time.Time, message string) error
}
