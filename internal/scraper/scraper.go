// Package scraper defines the provider scraping capability: the opaque
// external mechanism that logs into a bank or card provider and returns a
// normalized account/transaction payload.
package scraper

import (
	"context"
	"time"
)

// Provider identifies a bank or credit-card data source.
type Provider string

const (
	ProviderHapoalim Provider = "hapoalim"
	ProviderLeumi    Provider = "leumi"
	ProviderDiscount Provider = "discount"
	ProviderMizrahi  Provider = "mizrahi"
	ProviderIsracard Provider = "isracard"
	ProviderMax      Provider = "max"
	ProviderVisaCal  Provider = "visaCal"
)

// Credentials is the provider login material, field names as the provider
// strategy expects them (username, password, id, card6Digits, ...).
type Credentials map[string]string

// Options control a single scrape invocation.
type Options struct {
	// StartDate bounds how far back transactions are requested.
	StartDate time.Time `json:"startDate"`

	// ShowBrowser enables an interactive browser window; batch runs keep it
	// off.
	ShowBrowser bool `json:"showBrowser"`

	// BrowserArgs are passed through to the underlying browser process.
	BrowserArgs []string `json:"browserArgs,omitempty"`
}

// HardenedBrowserArgs are the browser flags every unattended scrape runs
// with.
var HardenedBrowserArgs = []string{"--no-sandbox", "--disable-gpu"}

// Transaction is one raw ledger entry as reported by a provider.
type Transaction struct {
	Date             time.Time `json:"date"`
	Description      string    `json:"description"`
	ChargedAmount    *float64  `json:"chargedAmount"`
	OriginalAmount   *float64  `json:"originalAmount"`
	OriginalCurrency string    `json:"originalCurrency"`
	Status           string    `json:"status"`
	Memo             string    `json:"memo"`
}

// Account is one provider account snapshot with its transactions.
type Account struct {
	AccountNumber string        `json:"accountNumber"`
	Balance       *float64      `json:"balance"`
	Transactions  []Transaction `json:"txns"`
}

// Result is the outcome of one scrape. Failure is signaled through Success
// and ErrorMessage, not through a transport error.
type Result struct {
	Success      bool      `json:"success"`
	ErrorType    string    `json:"errorType,omitempty"`
	ErrorMessage string    `json:"errorMessage,omitempty"`
	Accounts     []Account `json:"accounts,omitempty"`
}

//go:generate mockgen -source=scraper.go -destination=scraper_mock.go -package=scraper
type Scraper interface {
	Scrape(ctx context.Context, creds Credentials, opts Options) (*Result, error)
}
