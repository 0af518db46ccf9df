package job

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/rlog"

	"elementalsouls.app/evolution/model"
	"elementalsouls.app/evolution/repository/jobs"
)

var errNotRunnable = model.InvalidRequest("image job is missing or already finished")

// MarkProcessing records that attempt number attempt has started.
func (b *business) MarkProcessing(ctx context.Context, jobID string, attempt int) (*model.GenerationJob, error) {
	dbJob, err := b.jobRepo.MarkJobProcessing(ctx, jobs.MarkJobProcessingParams{
		JobID:    jobID,
		Attempts: int32(attempt),
	})
	if err != nil {
		return nil, translate(err, "failed to mark image job processing")
	}
	return convertDBJobToModel(dbJob), nil
}

func (b *business) MarkRetrying(ctx context.Context, jobID string, cause string) error {
	_, err := b.jobRepo.MarkJobRetrying(ctx, jobs.MarkJobRetryingParams{
		JobID: jobID,
		Error: pgtype.Text{String: cause, Valid: true},
	})
	if err != nil {
		return translate(err, "failed to mark image job for retry")
	}
	return nil
}

func (b *business) MarkCompleted(ctx context.Context, jobID, imageRef, prompt string) (*model.GenerationJob, error) {
	dbJob, err := b.jobRepo.MarkJobCompleted(ctx, jobs.MarkJobCompletedParams{
		JobID:    jobID,
		ImageRef: pgtype.Text{String: imageRef, Valid: true},
		Prompt:   pgtype.Text{String: prompt, Valid: prompt != ""},
	})
	if err != nil {
		return nil, translate(err, "failed to complete image job")
	}
	rlog.Info("image job completed", "job_id", jobID, "image_ref", imageRef)
	return convertDBJobToModel(dbJob), nil
}

func (b *business) MarkFailed(ctx context.Context, jobID string, cause string) error {
	_, err := b.jobRepo.MarkJobFailed(ctx, jobs.MarkJobFailedParams{
		JobID: jobID,
		Error: pgtype.Text{String: cause, Valid: true},
	})
	if err != nil {
		return translate(err, "failed to fail image job")
	}
	rlog.Warn("image job failed", "job_id", jobID, "error", cause)
	return nil
}

// FailStaleJobs fails jobs that sat queued for longer than olderThan.
func (b *business) FailStaleJobs(ctx context.Context, olderThan time.Duration) (int64, error) {
	n, err := b.jobRepo.FailStaleQueuedJobs(ctx, jobs.FailStaleQueuedJobsParams{
		Before: pgtype.Timestamptz{Time: b.now().Add(-olderThan), Valid: true},
		Error:  pgtype.Text{String: "job was never picked up by a worker", Valid: true},
	})
	if err != nil {
		return 0, model.Internal("failed to sweep stale image jobs")
	}
	return n, nil
}

func translate(err error, message string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return errNotRunnable
	}
	return model.Internal(message)
}
