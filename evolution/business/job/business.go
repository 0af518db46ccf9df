package job

import (
	"context"
	"encoding/json"
	"time"

	"encore.dev/rlog"

	"elementalsouls.app/evolution/model"
	"elementalsouls.app/evolution/repository/jobs"
)

const DefaultMaxAttempts = 3

type Business interface {
	EnqueueImageJob(ctx context.Context, requester string, params model.GenerationParams) (*model.GenerationJob, error)
	GetImageJob(ctx context.Context, jobID string) (*model.GenerationJob, error)

	MarkProcessing(ctx context.Context, jobID string, attempt int) (*model.GenerationJob, error)
	MarkRetrying(ctx context.Context, jobID string, cause string) error
	MarkCompleted(ctx context.Context, jobID, imageRef, prompt string) (*model.GenerationJob, error)
	MarkFailed(ctx context.Context, jobID string, cause string) error

	FailStaleJobs(ctx context.Context, olderThan time.Duration) (int64, error)
}

// Dispatcher hands a persisted job to the worker pool.
type Dispatcher interface {
	Dispatch(ctx context.Context, job *model.GenerationJob) error
}

type business struct {
	jobRepo     jobs.Querier
	dispatcher  Dispatcher
	maxAttempts int
	now         func() time.Time
}

func NewJobBusiness(jobRepo jobs.Querier, dispatcher Dispatcher, maxAttempts int) Business {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &business{
		jobRepo:     jobRepo,
		dispatcher:  dispatcher,
		maxAttempts: maxAttempts,
		now:         time.Now,
	}
}

func convertDBJobToModel(dbJob jobs.ImageJob) *model.GenerationJob {
	job := &model.GenerationJob{
		JobID:       dbJob.JobID,
		Requester:   dbJob.Requester,
		Status:      model.JobStatus(dbJob.Status),
		Attempts:    int(dbJob.Attempts),
		MaxAttempts: int(dbJob.MaxAttempts),
		CreatedAt:   dbJob.CreatedAt.Time,
		UpdatedAt:   dbJob.UpdatedAt.Time,
	}

	if err := json.Unmarshal(dbJob.Params, &job.Parameters); err != nil {
		rlog.Warn("stored job parameters are not decodable", "job_id", dbJob.JobID, "error", err)
	}

	if dbJob.ImageRef.Valid {
		job.ImageRef = &dbJob.ImageRef.String
	}
	if dbJob.Prompt.Valid {
		job.Prompt = &dbJob.Prompt.String
	}
	if dbJob.Error.Valid {
		job.Error = &dbJob.Error.String
	}
	if dbJob.StartedAt.Valid {
		job.StartedAt = &dbJob.StartedAt.Time
	}
	if dbJob.CompletedAt.Valid {
		job.CompletedAt = &dbJob.CompletedAt.Time
	}

	return job
}
