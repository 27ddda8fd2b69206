package catalog

// ABOUTME: TTL-cached snapshot of model metadata with atomic refresh
// ABOUTME: Refresh swaps the whole snapshot pointer, never mutates records in place

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/estiens/open-router-enhanced-sub001/pkg/catalog/domain"
	"github.com/estiens/open-router-enhanced-sub001/pkg/util/logging"
)

// DefaultTTL is how long a loaded snapshot is considered fresh.
const DefaultTTL = time.Hour

// snapshot is one immutable generation of catalog data. Readers hold a
// pointer to a snapshot; refreshes publish a new one atomically.
type snapshot struct {
	records   map[string]domain.ModelRecord
	fetchedAt time.Time
}

// Catalog serves model metadata loaded from a DataSource behind a TTL cache.
//
// Concurrency: reads load the current snapshot pointer without locking;
// Refresh builds a complete replacement map and swaps the pointer, so
// concurrent readers always see a consistent generation. A mutex serializes
// refreshes so a thundering herd of stale readers triggers one fetch.
type Catalog struct {
	source domain.DataSource
	ttl    time.Duration
	logger zerolog.Logger

	refreshMu sync.Mutex
	current   atomic.Pointer[snapshot]
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithTTL overrides the snapshot freshness window. A zero TTL means the
// snapshot never expires and is only reloaded by an explicit Refresh.
func WithTTL(ttl time.Duration) Option {
	return func(c *Catalog) {
		c.ttl = ttl
	}
}

// WithLogger attaches a logger. The default is a no-op logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Catalog) {
		c.logger = logger
	}
}

// New creates a catalog over the given data source. No fetch happens until
// the first read or explicit Refresh.
func New(source domain.DataSource, opts ...Option) *Catalog {
	c := &Catalog{
		source: source,
		ttl:    DefaultTTL,
		logger: logging.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Refresh invalidates the cached snapshot and reloads from the data source.
// On failure the previous snapshot (if any) is left in place and remains
// readable; callers decide whether to tolerate staleness.
func (c *Catalog) Refresh(ctx context.Context) error {
	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()

	records, err := c.source.FetchAll(ctx)
	if err != nil {
		c.logger.Warn().Err(err).Msg("catalog refresh failed")
		return fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}

	byID := make(map[string]domain.ModelRecord, len(records))
	for _, r := range records {
		byID[r.ID] = r
	}

	c.current.Store(&snapshot{records: byID, fetchedAt: time.Now()})
	c.logger.Info().Int("models", len(byID)).Msg("catalog refreshed")
	return nil
}

// All returns the current snapshot keyed by model id, loading it on first
// use. The returned map is shared with the catalog and must be treated as
// read-only; the next refresh replaces it wholesale rather than mutating it.
func (c *Catalog) All(ctx context.Context) (map[string]domain.ModelRecord, error) {
	snap, err := c.fresh(ctx)
	if err != nil {
		return nil, err
	}
	return snap.records, nil
}

// Get returns the record for the given model id, or ErrModelNotFound.
func (c *Catalog) Get(ctx context.Context, id string) (domain.ModelRecord, error) {
	snap, err := c.fresh(ctx)
	if err != nil {
		return domain.ModelRecord{}, err
	}
	record, ok := snap.records[id]
	if !ok {
		return domain.ModelRecord{}, fmt.Errorf("%w: %s", ErrModelNotFound, id)
	}
	return record, nil
}

// Exists reports whether the catalog currently knows the given model id.
// Catalog-availability failures read as absence.
func (c *Catalog) Exists(ctx context.Context, id string) bool {
	snap, err := c.fresh(ctx)
	if err != nil {
		return false
	}
	_, ok := snap.records[id]
	return ok
}

// fresh returns a usable snapshot, refreshing when none is loaded or the TTL
// has lapsed. A failed refresh with a stale snapshot in hand degrades to the
// stale data instead of an error.
func (c *Catalog) fresh(ctx context.Context) (*snapshot, error) {
	snap := c.current.Load()
	if snap != nil && !c.expired(snap) {
		return snap, nil
	}

	if err := c.Refresh(ctx); err != nil {
		if snap != nil {
			c.logger.Warn().
				Time("fetched_at", snap.fetchedAt).
				Msg("serving stale catalog snapshot after failed refresh")
			return snap, nil
		}
		return nil, err
	}
	return c.current.Load(), nil
}

func (c *Catalog) expired(snap *snapshot) bool {
	if c.ttl <= 0 {
		return false
	}
	return time.Since(snap.fetchedAt) >= c.ttl
}
