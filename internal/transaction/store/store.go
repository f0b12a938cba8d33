package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/moneta-app/banksync/internal/transaction"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Exists(ctx context.Context, key transaction.Key) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM transactions
			WHERE tenant_id = $1 AND account_id = $2 AND amount = $3
				AND date = $4 AND description = $5
		)
	`

	var exists bool

	err := s.db.QueryRowContext(ctx, query,
		key.TenantID, key.AccountID, key.Amount, key.Date, key.Description,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("checking transaction existence: %w", err)
	}

	return exists, nil
}

func (s *Store) CreateTransaction(ctx context.Context, tx *transaction.Transaction) error {
	// ON CONFLICT backs the tuple-key unique index; a concurrent sync of the
	// same connection that slips past the existence check lands here instead
	// of producing a duplicate row.
	query := `
		INSERT INTO transactions (tenant_id, account_id, amount, type, status, description, date,
			category_id, source, original_currency, memo, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW())
		ON CONFLICT (tenant_id, account_id, amount, date, description) DO NOTHING
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		tx.TenantID,
		tx.AccountID,
		tx.Amount,
		tx.Type,
		tx.Status,
		tx.Description,
		tx.Date,
		tx.CategoryID,
		tx.Source,
		tx.OriginalCurrency,
		tx.Memo,
	).Scan(&tx.ID, &tx.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			// Conflict with an existing row: already ingested, nothing to do.
			return nil
		}

		return fmt.Errorf("creating transaction: %w", err)
	}

	return nil
}
