package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go-econ-trends/internal/model"
)

// DefaultMaxAge is the freshness window applied when the caller passes a
// non-positive max age
const DefaultMaxAge = 24 * time.Hour

// Cache is a disk-backed query cache. One JSON file per key holds the
// fetch timestamp and the observation list; entries older than the
// freshness window read as misses and are simply overwritten by the next
// Put. Corrupt or unreadable files also read as misses, never as errors.
type Cache struct {
	dir string
	now func() time.Time
}

// entry is the persisted file layout
type entry struct {
	Timestamp string      `json:"timestamp"`
	Data      model.Table `json:"data"`
}

// New creates a cache rooted at dir, creating the directory if needed
func New(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}
	return &Cache{dir: dir, now: time.Now}, nil
}

// WithClock replaces the cache's time source. Used by tests to simulate
// entry aging.
func (c *Cache) WithClock(now func() time.Time) *Cache {
	c.now = now
	return c
}

// Key derives the deterministic cache key for a query. Country codes are
// canonicalized first, so permutations of the same set map to one entry.
func Key(q model.Query) string {
	canonical := fmt.Sprintf("%s|%s|%d:%d",
		q.Indicator,
		strings.Join(q.NormalizedCountries(), ","),
		q.StartYear,
		q.EndYear,
	)
	sum := sha256.Sum256([]byte(canonical))
	return hex.EncodeToString(sum[:16])
}

// Get returns the stored table for key when a fresh entry exists.
// ok=false is a miss; a fresh entry holding an empty table is still a hit.
// maxAge <= 0 selects the default freshness window.
func (c *Cache) Get(key string, maxAge time.Duration) (model.Table, bool) {
	if maxAge <= 0 {
		maxAge = DefaultMaxAge
	}

	raw, err := os.ReadFile(c.path(key))
	if err != nil {
		return nil, false
	}

	var e entry
	if err := json.Unmarshal(raw, &e); err != nil {
		return nil, false
	}

	fetchedAt, err := time.Parse(time.RFC3339Nano, e.Timestamp)
	if err != nil {
		return nil, false
	}
	if c.now().Sub(fetchedAt) > maxAge {
		return nil, false
	}

	if e.Data == nil {
		e.Data = model.Table{}
	}
	return e.Data, true
}

// Put persists table under key with the current timestamp, fully replacing
// any prior entry. The write goes to a temp file first and is renamed into
// place, so concurrent readers never see a partial entry.
func (c *Cache) Put(key string, table model.Table) error {
	e := entry{
		Timestamp: c.now().Format(time.RFC3339Nano),
		Data:      table,
	}
	if e.Data == nil {
		e.Data = model.Table{}
	}

	raw, err := json.MarshalIndent(e, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode cache entry: %w", err)
	}

	tmp, err := os.CreateTemp(c.dir, key+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp cache file: %w", err)
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write cache entry: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close temp cache file: %w", err)
	}

	if err := os.Rename(tmp.Name(), c.path(key)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace cache entry: %w", err)
	}
	return nil
}

func (c *Cache) path(key string) string {
	return filepath.Join(c.dir, key+".json")
}
