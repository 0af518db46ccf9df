package snapshot

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/sync/errgroup"

	"encore.dev/rlog"

	"elementalsouls.app/evolution/ledger"
	"elementalsouls.app/evolution/model"
)

func (b *business) ListByOwner(ctx context.Context, owner string) ([]*model.AssetSnapshot, error) {
	owner = normalizeOwner(owner)

	rows, err := b.snapshotRepo.ListSnapshotsByOwner(ctx, owner)
	if err != nil {
		return nil, model.Internal("failed to list asset snapshots")
	}

	fresh := make([]*model.AssetSnapshot, len(rows))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(revalidateConcurrency)
	for i, row := range rows {
		cached := convertDBSnapshotToModel(row)
		g.Go(func() error {
			snap, err := b.revalidate(gctx, cached, owner)
			if err != nil {
				return err
			}
			fresh[i] = snap
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		rlog.Error("failed to revalidate wallet assets", "owner", owner, "error", err)
		return nil, model.Internal("failed to read assets from ledger")
	}

	result := make([]*model.AssetSnapshot, 0, len(fresh))
	for _, snap := range fresh {
		if snap != nil {
			result = append(result, snap)
		}
	}
	return result, nil
}

// revalidate re-reads one record from the ledger. It returns nil when the
// record is gone or has a different owner, and writes any drift back.
func (b *business) revalidate(ctx context.Context, cached *model.AssetSnapshot, owner string) (*model.AssetSnapshot, error) {
	onChainOwner, err := b.ledger.GetOwner(ctx, cached.AssetID)
	if errors.Is(err, ledger.ErrAssetNotFound) {
		b.cache.Remove(cached.AssetID)
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	level, err := b.ledger.GetLevel(ctx, cached.AssetID)
	if err != nil {
		return nil, err
	}
	uri, err := b.ledger.GetURI(ctx, cached.AssetID)
	if err != nil {
		return nil, err
	}

	snap := *cached
	snap.Owner = strings.ToLower(onChainOwner.Hex())
	snap.Level = level
	snap.URI = uri

	if snap.Owner != cached.Owner || snap.Level != cached.Level || snap.URI != cached.URI {
		rlog.Info("asset snapshot drifted from ledger", "asset_id", cached.AssetID, "owner", snap.Owner, "level", level)
		if _, err := b.Upsert(context.WithoutCancel(ctx), snap); err != nil {
			rlog.Warn("failed to refresh drifted snapshot", "asset_id", cached.AssetID, "error", err)
		}
	}

	if snap.Owner != owner {
		return nil, nil
	}
	return &snap, nil
}
