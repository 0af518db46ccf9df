package idempotency

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"encore.dev/rlog"
	"encore.dev/storage/cache"

	idempotencybiz "elementalsouls.app/evolution/business/idempotency"
	"elementalsouls.app/evolution/model"
)

// IdempotencyCluster is the cache cluster for idempotency
var IdempotencyCluster = cache.NewCluster("idempotency-cluster", cache.ClusterConfig{
	EvictionPolicy: cache.AllKeysLRU,
})

// IdempotencyCache holds completed records only. It is a read-through copy
// of the authoritative store and never takes part in claiming a key.
var IdempotencyCache = cache.NewStructKeyspace[model.IdempotencyKey, model.IdempotencyRecord](
	IdempotencyCluster,
	cache.KeyspaceConfig{
		KeyPattern:    "idempotency/:Resource/:Key",
		DefaultExpiry: cache.ExpireIn(idempotencybiz.DefaultTTL),
	},
)

// ResponseCache stores completed records until they expire.
type ResponseCache interface {
	Get(ctx context.Context, key model.IdempotencyKey) (model.IdempotencyRecord, error)
	Set(ctx context.Context, key model.IdempotencyKey, record model.IdempotencyRecord, ttl time.Duration) error
}

type keyspaceCache struct {
	keyspace *cache.StructKeyspace[model.IdempotencyKey, model.IdempotencyRecord]
}

// NewKeyspaceCache adapts an Encore keyspace to ResponseCache.
func NewKeyspaceCache(keyspace *cache.StructKeyspace[model.IdempotencyKey, model.IdempotencyRecord]) ResponseCache {
	return keyspaceCache{keyspace: keyspace}
}

func (c keyspaceCache) Get(ctx context.Context, key model.IdempotencyKey) (model.IdempotencyRecord, error) {
	return c.keyspace.Get(ctx, key)
}

func (c keyspaceCache) Set(ctx context.Context, key model.IdempotencyKey, record model.IdempotencyRecord, ttl time.Duration) error {
	return c.keyspace.With(cache.ExpireIn(ttl)).Set(ctx, key, record)
}

// CachedStore serves replays of completed requests from the cache and
// delegates everything else to the authoritative store.
type CachedStore struct {
	store idempotencybiz.Store
	cache ResponseCache
	now   func() time.Time
}

var _ idempotencybiz.Store = (*CachedStore)(nil)

func NewCachedStore(store idempotencybiz.Store, responseCache ResponseCache) *CachedStore {
	return &CachedStore{store: store, cache: responseCache, now: time.Now}
}

func (s *CachedStore) Get(ctx context.Context, key model.IdempotencyKey) (*model.IdempotencyRecord, error) {
	cached, err := s.cache.Get(ctx, key)
	switch {
	case err == nil && cached.ExpiresAt.After(s.now()):
		return &cached, nil
	case err != nil && !errors.Is(err, cache.Miss):
		rlog.Warn("idempotency cache unavailable, reading store", "key", key.Key, "error", err)
	}

	record, err := s.store.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	if record.Status == model.IdempotencyStatusCompleted {
		if ttl := record.ExpiresAt.Sub(s.now()); ttl > 0 {
			if err := s.cache.Set(ctx, key, *record, ttl); err != nil {
				rlog.Warn("failed to cache completed idempotency record", "key", key.Key, "error", err)
			}
		}
	}
	return record, nil
}

func (s *CachedStore) Claim(ctx context.Context, key model.IdempotencyKey, requestHash string, expiresAt time.Time) (bool, error) {
	return s.store.Claim(ctx, key, requestHash, expiresAt)
}

func (s *CachedStore) Complete(ctx context.Context, key model.IdempotencyKey, response json.RawMessage, expiresAt time.Time) error {
	return s.store.Complete(ctx, key, response, expiresAt)
}

func (s *CachedStore) Fail(ctx context.Context, key model.IdempotencyKey, kind model.ErrorKind, message string, retryable bool, expiresAt time.Time) error {
	return s.store.Fail(ctx, key, kind, message, retryable, expiresAt)
}
