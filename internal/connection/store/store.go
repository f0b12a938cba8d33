package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/moneta-app/banksync/internal/connection"
	"github.com/moneta-app/banksync/internal/scraper"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) ListAutoSync(ctx context.Context) ([]*connection.Connection, error) {
	query := `
		SELECT id, tenant_id, provider, credentials, auto_sync,
			last_sync_at, last_status, last_error, accounts_count, created_at
		FROM connections
		WHERE auto_sync = TRUE
		ORDER BY created_at ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing connections: %w", err)
	}
	defer rows.Close()

	var conns []*connection.Connection

	for rows.Next() {
		var (
			c         connection.Connection
			provider  string
			status    sql.NullString
			lastError sql.NullString
		)

		if err := rows.Scan(
			&c.ID, &c.TenantID, &provider, &c.Credentials, &c.AutoSync,
			&c.LastSyncAt, &status, &lastError, &c.AccountsCount, &c.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning connection: %w", err)
		}

		c.Provider = scraper.Provider(provider)
		c.LastStatus = connection.Status(status.String)

		if lastError.Valid {
			c.LastError = &lastError.String
		}

		conns = append(conns, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating connection rows: %w", err)
	}

	return conns, nil
}

func (s *Store) RecordSuccess(ctx context.Context, tenantID uuid.UUID, provider scraper.Provider, syncedAt time.Time, accountsCount int) error {
	query := `
		INSERT INTO connections (tenant_id, provider, credentials, last_sync_at, last_status, last_error, accounts_count, created_at)
		VALUES ($1, $2, '', $3, $4, NULL, $5, NOW())
		ON CONFLICT (tenant_id, provider) DO UPDATE
		SET last_sync_at = EXCLUDED.last_sync_at,
			last_status = EXCLUDED.last_status,
			last_error = NULL,
			accounts_count = EXCLUDED.accounts_count
	`

	_, err := s.db.ExecContext(ctx, query, tenantID, provider, syncedAt, connection.StatusSuccess, accountsCount)
	if err != nil {
		return fmt.Errorf("recording sync success: %w", err)
	}

	return nil
}

func (s *Store) RecordError(ctx context.Context, tenantID uuid.UUID, provider scraper.Provider, syncedAt time.Time, message string) error {
	query := `
		INSERT INTO connections (tenant_id, provider, credentials, last_sync_at, last_status, last_error, created_at)
		VALUES ($1, $2, '', $3, $4, $5, NOW())
		ON CONFLICT (tenant_id, provider) DO UPDATE
		SET last_sync_at = EXCLUDED.last_sync_at,
			last_status = EXCLUDED.last_status,
			last_error = EXCLUDED.last_error
	`

	_, err := s.db.ExecContext(ctx, query, tenantID, provider, syncedAt, connection.StatusError, message)
	if err != nil {
		return fmt.Errorf("recording sync error: %w", err)
	}

	return nil
}
