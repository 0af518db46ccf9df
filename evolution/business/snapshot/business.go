package snapshot

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"encore.dev/rlog"

	"elementalsouls.app/evolution/ledger"
	"elementalsouls.app/evolution/model"
	"elementalsouls.app/evolution/repository/snapshots"
)

const (
	DefaultCacheSize = 1024
	DefaultCacheTTL  = 5 * time.Minute

	// revalidateConcurrency bounds the ledger reads issued by one wallet listing.
	revalidateConcurrency = 8
)

var (
	cacheHitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "evolution_snapshot_cache_hits_total",
		Help: "Asset snapshot lookups served from the in-memory cache.",
	})
	cacheMissesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "evolution_snapshot_cache_misses_total",
		Help: "Asset snapshot lookups that fell through to the database.",
	})
)

// Business serves the cached view of ledger records. Nothing read from here
// may drive a mutating decision; the orchestrator always asks the ledger.
type Business interface {
	Get(ctx context.Context, assetID uint64) (*model.AssetSnapshot, error)
	Upsert(ctx context.Context, snap model.AssetSnapshot) (*model.AssetSnapshot, error)
	Remove(ctx context.Context, assetID uint64) error
	// ListByOwner returns the wallet's snapshots after re-reading owner,
	// level and uri of each from the ledger. Records the wallet no longer
	// owns are left out.
	ListByOwner(ctx context.Context, owner string) ([]*model.AssetSnapshot, error)
}

type Options struct {
	CacheSize int
	CacheTTL  time.Duration
}

type business struct {
	snapshotRepo snapshots.Querier
	ledger       ledger.Client
	cache        *expirable.LRU[uint64, *model.AssetSnapshot]
}

func NewSnapshotBusiness(snapshotRepo snapshots.Querier, ledgerClient ledger.Client, opts Options) Business {
	if opts.CacheSize <= 0 {
		opts.CacheSize = DefaultCacheSize
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = DefaultCacheTTL
	}
	return &business{
		snapshotRepo: snapshotRepo,
		ledger:       ledgerClient,
		cache:        expirable.NewLRU[uint64, *model.AssetSnapshot](opts.CacheSize, nil, opts.CacheTTL),
	}
}

func (b *business) cached(assetID uint64) (*model.AssetSnapshot, bool) {
	snap, ok := b.cache.Get(assetID)
	if ok {
		cacheHitsTotal.Inc()
		return snap, true
	}
	cacheMissesTotal.Inc()
	return nil, false
}

func normalizeOwner(owner string) string {
	return strings.ToLower(owner)
}

func convertDBSnapshotToModel(dbSnap snapshots.AssetSnapshot) *model.AssetSnapshot {
	snap := &model.AssetSnapshot{
		AssetID:   uint64(dbSnap.AssetID),
		Owner:     dbSnap.Owner,
		Level:     int(dbSnap.Level),
		Element:   model.Element(dbSnap.Element),
		URI:       dbSnap.Uri,
		UpdatedAt: dbSnap.UpdatedAt.Time,
	}
	if dbSnap.ImageRef.Valid {
		snap.ImageRef = dbSnap.ImageRef.String
	}
	if len(dbSnap.Attributes) > 0 {
		if err := json.Unmarshal(dbSnap.Attributes, &snap.Attributes); err != nil {
			rlog.Warn("stored snapshot attributes are not decodable", "asset_id", dbSnap.AssetID, "error", err)
		}
	}
	return snap
}
