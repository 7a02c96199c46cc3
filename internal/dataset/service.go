package dataset

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"go-econ-trends/internal/cache"
	"go-econ-trends/internal/model"
	"go-econ-trends/internal/store"
	"go-econ-trends/internal/worldbank"
)

// Fetcher is the slice of the indicator client the service needs. Tests
// substitute a fake provider here.
type Fetcher interface {
	FetchIndicator(ctx context.Context, q model.Query) (model.Table, []worldbank.FetchResult)
}

// Service runs the fetch-or-cache flow: consult the query cache first, hit
// the remote provider on a miss, write the result back, and record the
// request in history. Analytics are left to the caller; the service only
// produces observation tables.
type Service struct {
	client  Fetcher
	cache   *cache.Cache
	history *store.Store // optional; nil disables request recording
	maxAge  time.Duration
}

// New wires a service together. maxAge <= 0 selects the cache default
// freshness window.
func New(client Fetcher, c *cache.Cache, history *store.Store, maxAge time.Duration) *Service {
	return &Service{client: client, cache: c, history: history, maxAge: maxAge}
}

// Fetch returns the observation table for a query. The worst outcome is an
// explicit empty table: per-country failures and cache trouble degrade,
// they never abort the call. Only context cancellation is returned as an
// error.
func (s *Service) Fetch(ctx context.Context, q model.Query) (model.Table, error) {
	q.Indicator = worldbank.IndicatorCode(q.Indicator)
	queryID := uuid.New().String()
	key := cache.Key(q)

	if table, ok := s.cache.Get(key, s.maxAge); ok {
		log.Printf("📦 Cache hit for %s (%d records)", q.Indicator, len(table))
		s.record(queryID, q, true, len(table), "completed", nil)
		return table, nil
	}

	log.Printf("🌐 Cache miss for %s, fetching %d countries from provider", q.Indicator, len(q.NormalizedCountries()))
	table, results := s.client.FetchIndicator(ctx, q)
	if err := ctx.Err(); err != nil {
		s.record(queryID, q, false, 0, "cancelled", results)
		return model.Table{}, err
	}

	if err := s.cache.Put(key, table); err != nil {
		// A write failure costs a refetch next time, nothing more
		log.Printf("⚠️ Failed to write cache entry %s: %v", key, err)
	}

	status := "completed"
	if table.IsEmpty() {
		status = "empty"
	}
	s.record(queryID, q, false, len(table), status, results)

	return table, nil
}

// record persists request history and per-country failures; history
// trouble is logged and swallowed
func (s *Service) record(queryID string, q model.Query, cacheHit bool, recordCount int, status string, results []worldbank.FetchResult) {
	if s.history == nil {
		return
	}
	if err := s.history.SaveQuery(queryID, q, cacheHit, recordCount, status); err != nil {
		log.Printf("⚠️ Failed to save query history: %v", err)
		return
	}
	for _, res := range results {
		if res.Err == nil {
			continue
		}
		if err := s.history.SaveQueryError(queryID, res.CountryCode, res.Err.Error()); err != nil {
			log.Printf("⚠️ Failed to save query error: %v", err)
		}
	}
}
