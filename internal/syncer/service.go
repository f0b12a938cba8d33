// Package syncer drives provider syncs end-to-end: scrape, reconcile
// accounts and transactions, write back connection status.
package syncer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/moneta-app/banksync/internal/account"
	"github.com/moneta-app/banksync/internal/connection"
	"github.com/moneta-app/banksync/internal/metrics"
	"github.com/moneta-app/banksync/internal/scraper"
	"github.com/moneta-app/banksync/internal/transaction"
)

type Service struct {
	scrapers     *scraper.Registry
	accounts     *account.Service
	transactions *transaction.Service
	connections  connection.Repository
	metrics      *metrics.Metrics
	lookback     time.Duration
}

func NewService(
	scrapers *scraper.Registry,
	accounts *account.Service,
	transactions *transaction.Service,
	connections connection.Repository,
	m *metrics.Metrics,
	lookbackDays int,
) *Service {
	return &Service{
		scrapers:     scrapers,
		accounts:     accounts,
		transactions: transactions,
		connections:  connections,
		metrics:      m,
		lookback:     time.Duration(lookbackDays) * 24 * time.Hour,
	}
}

// Result aggregates one connection sync.
type Result struct {
	AccountsCount int `json:"accounts_count"`
	Saved         int `json:"saved"`
	Skipped       int `json:"skipped"`
}

// Outcome is one entry of a batch run.
type Outcome struct {
	TenantID      uuid.UUID        `json:"tenant_id"`
	Provider      scraper.Provider `json:"provider"`
	Success       bool             `json:"success"`
	AccountsCount int              `json:"accounts_count,omitempty"`
	Saved         int              `json:"saved,omitempty"`
	Skipped       int              `json:"skipped,omitempty"`
	Error         string           `json:"error,omitempty"`
}

// SyncOne runs a single connection sync to completion. Whatever happens, the
// connection's status is written exactly once before returning; a failing
// status write is logged, never raised.
func (s *Service) SyncOne(ctx context.Context, tenantID uuid.UUID, provider scraper.Provider, creds scraper.Credentials) (*Result, error) {
	started := time.Now()

	scr, err := s.scrapers.Lookup(provider)
	if err != nil {
		s.recordError(ctx, tenantID, provider, err.Error(), started)
		return nil, err
	}

	res, err := scr.Scrape(ctx, creds, scraper.Options{
		StartDate:   started.Add(-s.lookback),
		ShowBrowser: false,
		BrowserArgs: scraper.HardenedBrowserArgs,
	})
	if err != nil {
		err = fmt.Errorf("invoking scraper for %s: %w", provider, err)
		s.recordError(ctx, tenantID, provider, err.Error(), started)

		return nil, err
	}

	if !res.Success {
		serr := &ScrapeError{Provider: provider, Message: res.ErrorMessage}
		// The status message is the provider-reported text, not the wrapped
		// error string.
		s.recordError(ctx, tenantID, provider, serr.Message, started)

		return nil, serr
	}

	label := providerLabel(provider)
	result := &Result{AccountsCount: len(res.Accounts)}

	// An account-scoped fault must not abort the remaining accounts from
	// the same scrape; a store failure is fatal for the whole connection.
	for _, snap := range res.Accounts {
		accountID, err := s.accounts.Reconcile(ctx, tenantID, snap, label)
		if err != nil {
			if errors.Is(err, account.ErrAmbiguous) || errors.Is(err, account.ErrMissingID) {
				slog.Warn("skipping account",
					"provider", provider,
					"account", snap.AccountNumber,
					"error", err)

				continue
			}

			perr := &PersistenceError{Provider: provider, Err: err}
			s.recordError(ctx, tenantID, provider, perr.Error(), started)

			return nil, perr
		}

		r, err := s.transactions.Reconcile(ctx, tenantID, accountID, snap.Transactions)
		result.Saved += r.Saved
		result.Skipped += r.Skipped

		if err != nil {
			perr := &PersistenceError{Provider: provider, Err: err}
			s.recordError(ctx, tenantID, provider, perr.Error(), started)

			slog.Warn("sync aborted mid-account",
				"provider", provider,
				"account", snap.AccountNumber,
				"saved", result.Saved,
				"error", err)

			return nil, perr
		}
	}

	if err := s.connections.RecordSuccess(ctx, tenantID, provider, time.Now().UTC(), result.AccountsCount); err != nil {
		slog.Error("failed to record sync success", "provider", provider, "error", err)
	}

	s.metrics.ObserveSync(string(provider), "success", result.Saved, result.Skipped, time.Since(started))

	slog.Info("sync completed",
		"provider", provider,
		"accounts", result.AccountsCount,
		"saved", result.Saved,
		"skipped", result.Skipped)

	return result, nil
}

// SyncAll runs each connection to completion in order. A connection's
// failure is recorded in its outcome entry and never halts the batch.
func (s *Service) SyncAll(ctx context.Context, conns []*connection.Connection) []Outcome {
	outcomes := make([]Outcome, 0, len(conns))

	for _, c := range conns {
		outcome := Outcome{TenantID: c.TenantID, Provider: c.Provider}

		creds, err := scraper.DecodeCredentials(c.Credentials)
		if err != nil {
			outcome.Error = err.Error()

			if rerr := s.connections.RecordError(ctx, c.TenantID, c.Provider, time.Now().UTC(), err.Error()); rerr != nil {
				slog.Error("failed to record sync error", "provider", c.Provider, "error", rerr)
			}

			outcomes = append(outcomes, outcome)

			continue
		}

		res, err := s.SyncOne(ctx, c.TenantID, c.Provider, creds)
		if err != nil {
			outcome.Error = err.Error()
			outcomes = append(outcomes, outcome)

			continue
		}

		outcome.Success = true
		outcome.AccountsCount = res.AccountsCount
		outcome.Saved = res.Saved
		outcome.Skipped = res.Skipped
		outcomes = append(outcomes, outcome)
	}

	return outcomes
}

func (s *Service) recordError(ctx context.Context, tenantID uuid.UUID, provider scraper.Provider, message string, started time.Time) {
	if err := s.connections.RecordError(ctx, tenantID, provider, time.Now().UTC(), message); err != nil {
		slog.Error("failed to record sync error", "provider", provider, "error", err)
	}

	s.metrics.ObserveSync(string(provider), "error", 0, 0, time.Since(started))
}

func providerLabel(p scraper.Provider) string {
	for _, info := range scraper.Catalog() {
		if info.ID == p {
			return info.Name
		}
	}

	return string(p)
}
