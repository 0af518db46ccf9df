package lock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"encore.dev/rlog"

	"elementalsouls.app/evolution/model"
)

const DefaultTTL = 30 * time.Second

var lockContention = promauto.NewCounter(prometheus.CounterOpts{
	Name: "evolution_asset_lock_contention_total",
	Help: "Lock acquisitions rejected because another holder owned the asset",
})

// Store is the atomic primitive behind the lock manager.
type Store interface {
	// SetNX stores value under key with a ttl only if key is absent.
	SetNX(ctx context.Context, key, value string, ttl time.Duration) (bool, error)
	// CompareAndDelete removes key only if it still holds value.
	CompareAndDelete(ctx context.Context, key, value string) (bool, error)
	// Extend resets the ttl of key only if it still holds value.
	Extend(ctx context.Context, key, value string, ttl time.Duration) (bool, error)
}

// Handle proves ownership of an asset lock.
type Handle struct {
	AssetID   uint64
	Key       string
	Token     string
	ExpiresAt time.Time
}

// Locker serializes mutating work per asset.
type Locker interface {
	Acquire(ctx context.Context, assetID uint64, ttl time.Duration) (*Handle, error)
	Renew(ctx context.Context, handle *Handle, ttl time.Duration) error
	Release(ctx context.Context, handle *Handle) error
}

// ErrLockLost is returned by Renew once the lock expired or changed hands.
var ErrLockLost = errors.New("asset lock is no longer held")

type Manager struct {
	store Store
	now   func() time.Time
}

func NewManager(store Store) *Manager {
	return &Manager{store: store, now: time.Now}
}

func Key(assetID uint64) string {
	return fmt.Sprintf("lock:%d", assetID)
}

// Acquire never waits: a held lock yields ResourceBusy immediately.
func (m *Manager) Acquire(ctx context.Context, assetID uint64, ttl time.Duration) (*Handle, error) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	handle := &Handle{
		AssetID:   assetID,
		Key:       Key(assetID),
		Token:     uuid.NewString(),
		ExpiresAt: m.now().Add(ttl),
	}

	ok, err := m.store.SetNX(ctx, handle.Key, handle.Token, ttl)
	if err != nil {
		rlog.Error("failed to acquire asset lock", "asset_id", assetID, "error", err)
		return nil, model.Internal("failed to acquire asset lock")
	}
	if !ok {
		lockContention.Inc()
		return nil, model.NewErrorWithDetails(
			model.ErrorDetails{Kind: model.KindResourceBusy, AssetID: assetID},
			"asset is locked by another request",
		)
	}

	return handle, nil
}

// Renew pushes the expiry of a held lock ttl into the future.
func (m *Manager) Renew(ctx context.Context, handle *Handle, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	extended, err := m.store.Extend(ctx, handle.Key, handle.Token, ttl)
	if err != nil {
		return fmt.Errorf("renew %s: %w", handle.Key, err)
	}
	if !extended {
		return ErrLockLost
	}
	handle.ExpiresAt = m.now().Add(ttl)
	return nil
}

// Release is a no-op when the lock already expired or changed hands.
func (m *Manager) Release(ctx context.Context, handle *Handle) error {
	if handle == nil {
		return nil
	}

	deleted, err := m.store.CompareAndDelete(ctx, handle.Key, handle.Token)
	if err != nil {
		return fmt.Errorf("release %s: %w", handle.Key, err)
	}
	if !deleted {
		rlog.Warn("asset lock was no longer held at release", "asset_id", handle.AssetID)
	}
	return nil
}
