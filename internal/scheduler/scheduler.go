// Package scheduler runs the nightly batch sync.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/moneta-app/banksync/internal/connection"
	"github.com/moneta-app/banksync/internal/syncer"
)

type Scheduler struct {
	cron        *cron.Cron
	syncer      *syncer.Service
	connections connection.Repository
}

// New schedules the nightly batch at the given cron spec, evaluated in the
// given zone.
func New(spec, timezone string, svc *syncer.Service, connections connection.Repository) (*Scheduler, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("loading timezone %s: %w", timezone, err)
	}

	s := &Scheduler{
		cron:        cron.New(cron.WithLocation(loc)),
		syncer:      svc,
		connections: connections,
	}

	if _, err := s.cron.AddFunc(spec, s.runNightly); err != nil {
		return nil, fmt.Errorf("adding nightly job: %w", err)
	}

	return s, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop waits for a running batch to finish before returning.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

// runNightly is fire-and-forget: outcomes are logged per connection and the
// list is discarded.
func (s *Scheduler) runNightly() {
	ctx := context.Background()

	conns, err := s.connections.ListAutoSync(ctx)
	if err != nil {
		slog.Error("nightly sync: listing connections failed", "error", err)
		return
	}

	slog.Info("nightly sync started", "connections", len(conns))

	for _, outcome := range s.syncer.SyncAll(ctx, conns) {
		if outcome.Success {
			slog.Info("nightly sync connection done",
				"tenant", outcome.TenantID,
				"provider", outcome.Provider,
				"accounts", outcome.AccountsCount,
				"saved", outcome.Saved,
				"skipped", outcome.Skipped)

			continue
		}

		slog.Error("nightly sync connection failed",
			"tenant", outcome.TenantID,
			"provider", outcome.Provider,
			"error", outcome.Error)
	}
}
