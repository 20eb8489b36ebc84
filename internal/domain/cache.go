package domain

import (
	"context"
	"time"
)

// CachedResponse is one stored API response.
type CachedResponse struct {
	URL       string
	Status    int
	Body      []byte
	FetchedAt time.Time
}

// CacheRepo defines the interface for the on-disk HTTP response cache.
type CacheRepo interface {
	// Get returns the cached response for url, or nil when absent.
	Get(ctx context.Context, url string) (*CachedResponse, error)
	// Store inserts or replaces the cached response for its URL.
	Store(ctx context.Context, res *CachedResponse) error
	// Prune deletes entries fetched before cutoff and returns how many
	// were removed.
	Prune(ctx context.Context, cutoff time.Time) (int, error)
}
