package job

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"encore.dev/rlog"

	"elementalsouls.app/evolution/model"
	"elementalsouls.app/evolution/repository/jobs"
)

// EnqueueImageJob persists the job as queued before handing it to the worker
// pool, so its status is readable as soon as the id is returned. A failed
// hand-off leaves the row queued for the stale-job sweep.
func (b *business) EnqueueImageJob(ctx context.Context, requester string, params model.GenerationParams) (*model.GenerationJob, error) {
	if err := validateParams(params); err != nil {
		return nil, err
	}

	encoded, err := json.Marshal(params)
	if err != nil {
		return nil, model.Internal("failed to encode job parameters")
	}

	dbJob, err := b.jobRepo.CreateJob(ctx, jobs.CreateJobParams{
		JobID:       uuid.NewString(),
		Requester:   requester,
		Params:      encoded,
		MaxAttempts: int32(b.maxAttempts),
	})
	if err != nil {
		rlog.Error("failed to persist image job", "requester", requester, "error", err)
		return nil, model.Internal("failed to create image job")
	}

	job := convertDBJobToModel(dbJob)
	if err := b.dispatcher.Dispatch(ctx, job); err != nil {
		rlog.Error("failed to dispatch image job", "job_id", job.JobID, "error", err)
		return nil, model.Internal("failed to enqueue image job")
	}

	rlog.Info("image job enqueued", "job_id", job.JobID, "requester", requester, "element", params.Element, "mode", params.Mode)
	return job, nil
}

func validateParams(params model.GenerationParams) error {
	if !params.Element.Valid() {
		return model.InvalidRequest("unknown element")
	}
	if params.ToLevel < 1 || params.ToLevel > model.MaxLevel {
		return model.InvalidRequest("to_level must be between 1 and 10")
	}
	switch params.Mode {
	case model.ImageModeTxt2Img:
	case model.ImageModeImg2Img:
		if params.BaseImageRef == "" {
			return model.InvalidRequest("img2img requires a base image reference")
		}
	default:
		return model.InvalidRequest("unknown image mode")
	}
	return nil
}
