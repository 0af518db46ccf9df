package job

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"elementalsouls.app/evolution/model"
)

// GetImageJob always reads the persisted record.
func (b *business) GetImageJob(ctx context.Context, jobID string) (*model.GenerationJob, error) {
	dbJob, err := b.jobRepo.GetJob(ctx, jobID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.NotFound("image job not found")
		}
		return nil, model.Internal("failed to get image job")
	}
	return convertDBJobToModel(dbJob), nil
}
