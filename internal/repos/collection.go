package repos

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/derschnepf/Synergy-app/internal/metrics"
	"github.com/derschnepf/Synergy-app/internal/store"
	"github.com/derschnepf/Synergy-app/pkg/cache"
)

// Record is a stored entity addressable by id.
type Record[T any] interface {
	RecordID() int64
	WithDefaults() T
}

// Collection serializes every read-modify-write cycle on one document behind a mutex,
// so concurrent requests cannot lose each other's updates.
type Collection[T Record[T]] struct {
	name  string
	kind  string
	doc   *store.Document[T]
	cache cache.Cache
	ttl   time.Duration

	mu sync.Mutex
	// set when an invalidation failed; the cached list may predate the last save
	cacheStale bool
}

func NewCollection[T Record[T]](name, kind, path string, c cache.Cache, ttl time.Duration) *Collection[T] {
	return &Collection[T]{
		name:  name,
		kind:  kind,
		doc:   store.NewDocument[T](path),
		cache: c,
		ttl:   ttl,
	}
}

func (c *Collection[T]) Name() string { return c.name }
func (c *Collection[T]) Kind() string { return c.kind }
func (c *Collection[T]) Path() string { return c.doc.Path() }

func (c *Collection[T]) cacheKey() string { return "collection:" + c.name }

// List returns the full collection in stored order.
func (c *Collection[T]) List(ctx context.Context) ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	records, err := c.load(ctx)
	c.observe("list", err)
	return records, err
}

// ListJSON returns the collection encoded as a JSON array, served from the cache when possible.
func (c *Collection[T]) ListJSON(ctx context.Context) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cache != nil && !c.cacheStale {
		if cached, ok := c.cache.Get(ctx, c.cacheKey()); ok {
			metrics.CacheLookupsTotal.WithLabelValues("hit").Inc()
			return []byte(cached), nil
		}
		metrics.CacheLookupsTotal.WithLabelValues("miss").Inc()
	}
	records, err := c.load(ctx)
	c.observe("list", err)
	if err != nil {
		return nil, err
	}
	b, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", c.name, err)
	}
	if c.cache != nil {
		if err := c.cache.Set(ctx, c.cacheKey(), string(b), c.ttl); err != nil {
			log.Warn().Err(err).Str("collection", c.name).Msg("cache set failed")
		} else {
			c.cacheStale = false
		}
	}
	return b, nil
}

func (c *Collection[T]) Count(ctx context.Context) (int, error) {
	records, err := c.List(ctx)
	return len(records), err
}

// Create appends rec. An id that is already stored is rejected with ErrDuplicateID.
func (c *Collection[T]) Create(ctx context.Context, rec T) (T, error) {
	id := rec.RecordID()
	err := c.mutate(ctx, "create", func(records []T) ([]T, error) {
		for _, r := range records {
			if r.RecordID() == id {
				return nil, fmt.Errorf("%s %d: %w", c.kind, id, ErrDuplicateID)
			}
		}
		return append(records, rec), nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return rec, nil
}

// Update replaces the first record with the given id, keeping its position.
func (c *Collection[T]) Update(ctx context.Context, id int64, rec T) (T, error) {
	var zero T
	if rec.RecordID() != id {
		err := fmt.Errorf("%s %d: %w (body id %d)", c.kind, id, ErrIDMismatch, rec.RecordID())
		c.observe("update", err)
		return zero, err
	}
	err := c.mutate(ctx, "update", func(records []T) ([]T, error) {
		for i, r := range records {
			if r.RecordID() == id {
				records[i] = rec
				return records, nil
			}
		}
		return nil, fmt.Errorf("%s %d: %w", c.kind, id, ErrNotFound)
	})
	if err != nil {
		return zero, err
	}
	return rec, nil
}

// Delete removes every record with the given id and reports how many were removed.
func (c *Collection[T]) Delete(ctx context.Context, id int64) (int, error) {
	removed := 0
	err := c.mutate(ctx, "delete", func(records []T) ([]T, error) {
		kept := make([]T, 0, len(records))
		for _, r := range records {
			if r.RecordID() == id {
				continue
			}
			kept = append(kept, r)
		}
		removed = len(records) - len(kept)
		if removed == 0 {
			return nil, fmt.Errorf("%s %d: %w", c.kind, id, ErrNotFound)
		}
		return kept, nil
	})
	if err != nil {
		return 0, err
	}
	log.Info().Str("collection", c.name).Int64("id", id).Int("removed", removed).Msg("records deleted")
	return removed, nil
}

// Backup writes the current collection to dst under the same lock as mutations.
func (c *Collection[T]) Backup(ctx context.Context, dst string) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	records, err := c.load(ctx)
	if err != nil {
		return 0, err
	}
	if err := store.NewDocument[T](dst).Save(ctx, records); err != nil {
		return 0, err
	}
	return len(records), nil
}

// mutate runs one load-modify-save cycle. Nothing is written when load or fn fails.
func (c *Collection[T]) mutate(ctx context.Context, op string, fn func([]T) ([]T, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	records, err := c.load(ctx)
	if err != nil {
		c.observe(op, err)
		return err
	}
	next, err := fn(records)
	if err != nil {
		c.observe(op, err)
		return err
	}
	if err := c.doc.Save(ctx, next); err != nil {
		c.observe(op, err)
		return fmt.Errorf("save %s: %w", c.name, err)
	}
	if c.cache != nil {
		if err := c.cache.Delete(ctx, c.cacheKey()); err != nil {
			log.Warn().Err(err).Str("collection", c.name).Msg("cache invalidation failed")
			c.cacheStale = true
		}
	}
	c.observe(op, nil)
	return nil
}

func (c *Collection[T]) load(ctx context.Context) ([]T, error) {
	records, err := c.doc.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range records {
		records[i] = records[i].WithDefaults()
	}
	return records, nil
}

func (c *Collection[T]) observe(op string, err error) {
	metrics.StoreOperationsTotal.WithLabelValues(c.name, op, result(err)).Inc()
	if err != nil && errors.Is(err, store.ErrCorrupt) {
		log.Error().Err(err).Str("collection", c.name).Str("op", op).Msg("collection document is corrupt")
	}
}

func result(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrDuplicateID):
		return "conflict"
	case errors.Is(err, ErrIDMismatch):
		return "invalid"
	case errors.Is(err, store.ErrCorrupt):
		return "corrupt"
	default:
		return "error"
	}
}
