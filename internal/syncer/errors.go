package syncer

import (
	"fmt"

	"github.com/moneta-app/banksync/internal/scraper"
)

// ScrapeError means the scraping capability itself reported failure (wrong
// credentials, provider site change). Fatal for the connection, harmless to
// others.
type ScrapeError struct {
	Provider scraper.Provider
	Message  string
}

func (e *ScrapeError) Error() string {
	return fmt.Sprintf("scrape failed for %s: %s", e.Provider, e.Message)
}

// PersistenceError means the destination store failed mid-reconciliation.
// Fatal for the connection in progress; prior successful writes stay in
// place.
type PersistenceError struct {
	Provider scraper.Provider
	Err      error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persisting sync for %s: %v", e.Provider, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
