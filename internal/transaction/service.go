package transaction

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/moneta-app/banksync/internal/category"
	"github.com/moneta-app/banksync/internal/scraper"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=transaction
type Repository interface {
	Exists(ctx context.Context, key Key) (bool, error)
	CreateTransaction(ctx context.Context, tx *Transaction) error
}

type Service struct {
	repo       Repository
	categories *category.Engine
}

func NewService(repo Repository, categories *category.Engine) *Service {
	return &Service{repo: repo, categories: categories}
}

// ReconcileResult reports how one account's transaction list was ingested.
type ReconcileResult struct {
	Saved   int
	Skipped int
}

const defaultDescription = "No description"

// Reconcile ingests one account's raw transaction list in source order.
// Duplicates against the tuple key are skipped; everything else is
// categorized and inserted. A store failure aborts the remaining
// transactions and returns the counts accumulated so far; prior inserts
// stay in place.
func (s *Service) Reconcile(ctx context.Context, tenantID, accountID uuid.UUID, txns []scraper.Transaction) (ReconcileResult, error) {
	var result ReconcileResult

	for _, raw := range txns {
		tx := normalize(tenantID, accountID, raw)

		exists, err := s.repo.Exists(ctx, Key{
			TenantID:    tx.TenantID,
			AccountID:   tx.AccountID,
			Amount:      tx.Amount,
			Date:        tx.Date,
			Description: tx.Description,
		})
		if err != nil {
			return result, fmt.Errorf("checking for duplicate: %w", err)
		}

		if exists {
			result.Skipped++
			continue
		}

		if id := s.categories.Categorize(tx.Description); id != "" {
			tx.CategoryID = &id
		}

		if err := s.repo.CreateTransaction(ctx, tx); err != nil {
			return result, fmt.Errorf("creating transaction: %w", err)
		}

		result.Saved++
	}

	return result, nil
}

func normalize(tenantID, accountID uuid.UUID, raw scraper.Transaction) *Transaction {
	signed := 0.0

	switch {
	case raw.ChargedAmount != nil:
		signed = *raw.ChargedAmount
	case raw.OriginalAmount != nil:
		signed = *raw.OriginalAmount
	}

	txType := TypeIncome
	if signed < 0 {
		txType = TypeExpense
	}

	status := StatusCompleted
	if raw.Status == string(StatusPending) {
		status = StatusPending
	}

	description := raw.Description
	if description == "" {
		description = defaultDescription
	}

	return &Transaction{
		TenantID:         tenantID,
		AccountID:        accountID,
		Amount:           agorot(math.Abs(signed)),
		Type:             txType,
		Status:           status,
		Description:      description,
		Date:             day(raw.Date),
		Source:           SourceBankSync,
		OriginalCurrency: raw.OriginalCurrency,
		Memo:             raw.Memo,
	}
}

// day strips the time-of-day so the uniqueness key compares calendar days.
func day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func agorot(v float64) int64 {
	return int64(math.Round(v * 100))
}
