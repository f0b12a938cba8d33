package scraper

import (
	"errors"
	"fmt"
)

var ErrUnsupportedProvider = errors.New("unsupported provider")

// Registry maps provider ids to their scraping strategy. New providers are
// added by registering a strategy, not by branching orchestration logic.
type Registry struct {
	scrapers map[Provider]Scraper
}

func NewRegistry() *Registry {
	return &Registry{scrapers: make(map[Provider]Scraper)}
}

func (r *Registry) Register(p Provider, s Scraper) {
	r.scrapers[p] = s
}

// Lookup resolves a provider id to its strategy.
func (r *Registry) Lookup(p Provider) (Scraper, error) {
	s, ok := r.scrapers[p]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedProvider, p)
	}

	return s, nil
}
