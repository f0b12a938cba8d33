package account

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/moneta-app/banksync/internal/scraper"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=account
type Repository interface {
	// FindByNumber returns ErrNotFound when no row matches and ErrAmbiguous
	// when more than one does.
	FindByNumber(ctx context.Context, tenantID uuid.UUID, accountNumber string) (*Account, error)
	CreateAccount(ctx context.Context, acc *Account) error
	UpdateBalance(ctx context.Context, id uuid.UUID, balance int64, syncedAt time.Time) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

const (
	defaultCurrency     = "ILS"
	defaultType         = "checking"
	defaultAccountLabel = "account"
)

// Reconcile finds or creates the destination account for one provider
// snapshot, updates its balance and last-sync timestamp, and returns its id.
// Any error means the caller must not ingest this account's transactions.
func (s *Service) Reconcile(ctx context.Context, tenantID uuid.UUID, snap scraper.Account, providerLabel string) (uuid.UUID, error) {
	number := snap.AccountNumber
	if number == "" {
		// Card providers sometimes omit the account number; fall back to the
		// provider label so the account still has a stable key.
		number = providerLabel
	}

	balance := int64(0)
	if snap.Balance != nil {
		balance = agorot(*snap.Balance)
	}

	now := time.Now().UTC()

	existing, err := s.repo.FindByNumber(ctx, tenantID, number)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return uuid.Nil, fmt.Errorf("looking up account %s: %w", number, err)
	}

	if existing != nil {
		if err := s.repo.UpdateBalance(ctx, existing.ID, balance, now); err != nil {
			return uuid.Nil, fmt.Errorf("updating account %s: %w", number, err)
		}

		return existing.ID, nil
	}

	label := snap.AccountNumber
	if label == "" {
		label = defaultAccountLabel
	}

	acc := &Account{
		TenantID:      tenantID,
		AccountNumber: number,
		Name:          fmt.Sprintf("%s - %s", providerLabel, label),
		Balance:       balance,
		Currency:      defaultCurrency,
		Type:          defaultType,
		LastSyncedAt:  now,
	}

	if err := s.repo.CreateAccount(ctx, acc); err != nil {
		return uuid.Nil, fmt.Errorf("creating account %s: %w", number, err)
	}

	if acc.ID == uuid.Nil {
		return uuid.Nil, fmt.Errorf("creating account %s: %w", number, ErrMissingID)
	}

	return acc.ID, nil
}

func agorot(v float64) int64 {
	return int64(math.Round(v * 100))
}
