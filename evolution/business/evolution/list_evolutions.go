package evolution

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"elementalsouls.app/evolution/model"
	"elementalsouls.app/evolution/repository/evolutions"
)

// ListEvolutions returns every recorded evolution that burned or produced assetID.
func (b *business) ListEvolutions(ctx context.Context, assetID uint64) ([]*model.EvolutionRecord, error) {
	dbEvos, err := b.EvolutionRepo.ListEvolutionsByAsset(ctx, int64(assetID))
	if err != nil {
		return nil, model.Internal("failed to list evolutions")
	}
	return convertDBEvolutions(dbEvos), nil
}

// ListIncidents returns partial failures and timeouts, newest first.
func (b *business) ListIncidents(ctx context.Context, limit, offset int32) ([]*model.EvolutionRecord, error) {
	dbEvos, err := b.EvolutionRepo.ListIncidents(ctx, evolutions.ListIncidentsParams{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, model.Internal("failed to list evolution incidents")
	}
	return convertDBEvolutions(dbEvos), nil
}

// PurgeDrafts deletes drafts whose evolution was never confirmed.
func (b *business) PurgeDrafts(ctx context.Context, olderThan time.Duration) (int64, error) {
	n, err := b.DraftRepo.DeleteDraftsBefore(ctx, pgtype.Timestamptz{Time: b.now().Add(-olderThan), Valid: true})
	if err != nil {
		return 0, model.Internal("failed to purge metadata drafts")
	}
	return n, nil
}

func convertDBEvolutions(dbEvos []evolutions.Evolution) []*model.EvolutionRecord {
	records := make([]*model.EvolutionRecord, len(dbEvos))
	for i, dbEvo := range dbEvos {
		records[i] = convertDBEvolutionToModel(dbEvo)
	}
	return records
}
