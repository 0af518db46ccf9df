package workflow

import (
	"context"
	"errors"
	"time"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"

	"elementalsouls.app/evolution/business/job"
	"elementalsouls.app/evolution/contentstore"
	"elementalsouls.app/evolution/generator"
	"elementalsouls.app/evolution/model"
)

const (
	errTypeDependency  = "DependencyError"
	errTypeGeneration  = "IMAGE_GENERATION_FAILED"
	errTypeNotRunnable = "IMAGE_JOB_NOT_RUNNABLE"
)

// ActivityDependencies holds the dependencies needed by activities
type ActivityDependencies struct {
	JobBusiness       job.Business
	Generator         generator.Generator
	ContentStore      contentstore.Store
	GenerationTimeout time.Duration
}

var activityDeps *ActivityDependencies

// SetActivityDependencies sets the dependencies for activities
func SetActivityDependencies(jobBusiness job.Business, gen generator.Generator, store contentstore.Store, generationTimeout time.Duration) {
	if generationTimeout <= 0 {
		generationTimeout = generator.DefaultTimeout
	}
	activityDeps = &ActivityDependencies{
		JobBusiness:       jobBusiness,
		Generator:         gen,
		ContentStore:      store,
		GenerationTimeout: generationTimeout,
	}
}

type ImageActivityInput struct {
	JobID       string                 `json:"job_id"`
	Params      model.GenerationParams `json:"params"`
	MaxAttempts int                    `json:"max_attempts"`
}

// GenerateImageActivity performs one generation attempt and returns the
// content reference of the stored image.
func GenerateImageActivity(ctx context.Context, in ImageActivityInput) (string, error) {
	logger := activity.GetLogger(ctx)
	attempt := int(activity.GetInfo(ctx).Attempt)
	logger.Info("Processing image generation activity", "jobID", in.JobID, "attempt", attempt)

	deps := activityDeps
	if deps == nil || deps.JobBusiness == nil || deps.Generator == nil || deps.ContentStore == nil {
		logger.Error("Activity dependencies not set")
		return "", temporal.NewApplicationError("activity dependencies not initialized", errTypeDependency)
	}

	if _, err := deps.JobBusiness.MarkProcessing(ctx, in.JobID, attempt); err != nil {
		if model.KindOf(err) == model.KindInvalidRequest {
			logger.Warn("Image job is no longer runnable", "jobID", in.JobID)
			return "", temporal.NewNonRetryableApplicationError("image job is not runnable", errTypeNotRunnable, err)
		}
		logger.Error("Failed to mark image job processing", "jobID", in.JobID, "error", err)
		return "", err
	}

	genCtx, cancel := context.WithTimeout(ctx, deps.GenerationTimeout)
	img, err := deps.Generator.Generate(genCtx, in.Params)
	cancel()
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			err = errors.New("image generation timed out")
		}
		return "", failAttempt(ctx, deps, in, attempt, err, true)
	}

	imageRef, err := deps.ContentStore.Put(ctx, img.Data, img.MimeType)
	if err != nil {
		return "", failAttempt(ctx, deps, in, attempt, err, !errors.Is(err, contentstore.ErrPayloadTooLarge))
	}

	if _, err := deps.JobBusiness.MarkCompleted(ctx, in.JobID, imageRef, img.Prompt); err != nil {
		logger.Error("Failed to complete image job", "jobID", in.JobID, "error", err)
		return "", err
	}

	logger.Info("Successfully generated image", "jobID", in.JobID, "imageRef", imageRef, "attempt", attempt)
	return imageRef, nil
}

// failAttempt records a failed attempt. The job goes back to queued while
// attempts remain; otherwise it is failed and the returned error stops the
// retry policy.
func failAttempt(ctx context.Context, deps *ActivityDependencies, in ImageActivityInput, attempt int, cause error, retryable bool) error {
	logger := activity.GetLogger(ctx)

	if !retryable || attempt >= in.MaxAttempts {
		if err := deps.JobBusiness.MarkFailed(ctx, in.JobID, cause.Error()); err != nil {
			logger.Error("Failed to mark image job failed", "jobID", in.JobID, "error", err)
		}
		logger.Error("Image job failed", "jobID", in.JobID, "attempt", attempt, "error", cause)
		return temporal.NewNonRetryableApplicationError("image generation failed: "+cause.Error(), errTypeGeneration, cause)
	}

	if err := deps.JobBusiness.MarkRetrying(ctx, in.JobID, cause.Error()); err != nil {
		logger.Error("Failed to mark image job for retry", "jobID", in.JobID, "error", err)
	}
	logger.Warn("Image generation attempt failed, retrying", "jobID", in.JobID, "attempt", attempt, "error", cause)
	return temporal.NewApplicationError("image generation attempt failed: "+cause.Error(), errTypeGeneration, cause)
}

type FailJobInput struct {
	JobID string `json:"job_id"`
	Cause string `json:"cause"`
}

// FailImageJobActivity marks a job failed once the workflow has given up on
// it. A job that already reached a terminal status is left as it is.
func FailImageJobActivity(ctx context.Context, in FailJobInput) error {
	logger := activity.GetLogger(ctx)

	deps := activityDeps
	if deps == nil || deps.JobBusiness == nil {
		logger.Error("Activity dependencies not set")
		return temporal.NewApplicationError("activity dependencies not initialized", errTypeDependency)
	}

	if err := deps.JobBusiness.MarkFailed(ctx, in.JobID, in.Cause); err != nil {
		if model.KindOf(err) == model.KindInvalidRequest {
			return nil
		}
		logger.Error("Failed to mark image job failed", "jobID", in.JobID, "error", err)
		return err
	}
	return nil
}
