package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/moneta-app/banksync/internal/account"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

const selectAccountColumns = `
	id, tenant_id, account_number, name, balance, currency, type,
	last_synced_at, created_at, updated_at
`

func (s *Store) FindByNumber(ctx context.Context, tenantID uuid.UUID, accountNumber string) (*account.Account, error) {
	query := `SELECT ` + selectAccountColumns + `
		FROM accounts
		WHERE tenant_id = $1 AND account_number = $2`

	rows, err := s.db.QueryContext(ctx, query, tenantID, accountNumber)
	if err != nil {
		return nil, fmt.Errorf("finding account: %w", err)
	}
	defer rows.Close()

	var found *account.Account

	for rows.Next() {
		var acc account.Account
		if err := rows.Scan(
			&acc.ID, &acc.TenantID, &acc.AccountNumber, &acc.Name, &acc.Balance,
			&acc.Currency, &acc.Type, &acc.LastSyncedAt, &acc.CreatedAt, &acc.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning account: %w", err)
		}

		if found != nil {
			// Exactly one row is expected; more than one is an integrity
			// fault the caller must treat as fatal for this account.
			return nil, account.ErrAmbiguous
		}

		found = &acc
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating account rows: %w", err)
	}

	if found == nil {
		return nil, account.ErrNotFound
	}

	return found, nil
}

func (s *Store) CreateAccount(ctx context.Context, acc *account.Account) error {
	query := `
		INSERT INTO accounts (tenant_id, account_number, name, balance, currency, type, last_synced_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		acc.TenantID,
		acc.AccountNumber,
		acc.Name,
		acc.Balance,
		acc.Currency,
		acc.Type,
		acc.LastSyncedAt,
	).Scan(&acc.ID, &acc.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating account: %w", err)
	}

	return nil
}

func (s *Store) UpdateBalance(ctx context.Context, id uuid.UUID, balance int64, syncedAt time.Time) error {
	query := `
		UPDATE accounts
		SET balance = $1, last_synced_at = $2, updated_at = NOW()
		WHERE id = $3
	`

	_, err := s.db.ExecContext(ctx, query, balance, syncedAt, id)
	if err != nil {
		return fmt.Errorf("updating balance: %w", err)
	}

	return nil
}
