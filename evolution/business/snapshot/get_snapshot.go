package snapshot

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/rlog"

	"elementalsouls.app/evolution/model"
	"elementalsouls.app/evolution/repository/snapshots"
)

// Get returns the snapshot of assetID, reading through the cache.
func (b *business) Get(ctx context.Context, assetID uint64) (*model.AssetSnapshot, error) {
	if snap, ok := b.cached(assetID); ok {
		return snap, nil
	}

	dbSnap, err := b.snapshotRepo.GetSnapshot(ctx, int64(assetID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.NotFound("asset snapshot not found")
		}
		return nil, model.Internal("failed to get asset snapshot")
	}

	snap := convertDBSnapshotToModel(dbSnap)
	b.cache.Add(assetID, snap)
	return snap, nil
}

func (b *business) Upsert(ctx context.Context, snap model.AssetSnapshot) (*model.AssetSnapshot, error) {
	attributes, err := json.Marshal(snap.Attributes)
	if err != nil {
		return nil, model.Internal("failed to encode snapshot attributes")
	}
	if snap.Attributes == nil {
		attributes = []byte("[]")
	}

	dbSnap, err := b.snapshotRepo.UpsertSnapshot(ctx, snapshots.UpsertSnapshotParams{
		AssetID:    int64(snap.AssetID),
		Owner:      normalizeOwner(snap.Owner),
		Level:      int32(snap.Level),
		Element:    string(snap.Element),
		Uri:        snap.URI,
		ImageRef:   pgtype.Text{String: snap.ImageRef, Valid: snap.ImageRef != ""},
		Attributes: attributes,
	})
	if err != nil {
		b.cache.Remove(snap.AssetID)
		rlog.Error("failed to upsert asset snapshot", "asset_id", snap.AssetID, "error", err)
		return nil, model.Internal("failed to save asset snapshot")
	}

	saved := convertDBSnapshotToModel(dbSnap)
	b.cache.Add(saved.AssetID, saved)
	return saved, nil
}

// Remove drops the snapshot of a record that no longer exists on the ledger.
func (b *business) Remove(ctx context.Context, assetID uint64) error {
	b.cache.Remove(assetID)
	if err := b.snapshotRepo.DeleteSnapshot(ctx, int64(assetID)); err != nil {
		rlog.Error("failed to delete asset snapshot", "asset_id", assetID, "error", err)
		return model.Internal("failed to delete asset snapshot")
	}
	return nil
}
