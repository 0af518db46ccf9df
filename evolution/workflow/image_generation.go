package workflow

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"elementalsouls.app/evolution/model"
)

// RetryConfig is the exponential backoff applied between generation attempts.
type RetryConfig struct {
	InitialInterval    time.Duration `json:"initial_interval"`
	BackoffCoefficient float64       `json:"backoff_coefficient"`
	MaximumInterval    time.Duration `json:"maximum_interval"`
}

var DefaultRetry = RetryConfig{
	InitialInterval:    2 * time.Second,
	BackoffCoefficient: 2.0,
	MaximumInterval:    30 * time.Second,
}

// GenerateImageParams contains parameters for starting the image generation workflow
type GenerateImageParams struct {
	JobID             string                 `json:"job_id"`
	Params            model.GenerationParams `json:"params"`
	MaxAttempts       int                    `json:"max_attempts"`
	GenerationTimeout time.Duration          `json:"generation_timeout"`
	Retry             RetryConfig            `json:"retry"`
}

// GenerateImage runs one image job to completion. Every attempt is a single
// activity execution and the activity records the job status itself, so the
// persisted row stays the source of truth for polling clients.
func GenerateImage(ctx workflow.Context, params GenerateImageParams) (string, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("Starting image generation workflow", "jobID", params.JobID, "maxAttempts", params.MaxAttempts)

	retry := params.Retry
	if retry.InitialInterval <= 0 {
		retry = DefaultRetry
	}
	timeout := params.GenerationTimeout
	if timeout <= 0 {
		timeout = 90 * time.Second
	}

	activityOptions := workflow.ActivityOptions{
		// Headroom over the generation timeout for the upload and status writes.
		StartToCloseTimeout: timeout + time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    retry.InitialInterval,
			BackoffCoefficient: retry.BackoffCoefficient,
			MaximumInterval:    retry.MaximumInterval,
			MaximumAttempts:    int32(params.MaxAttempts),
		},
	}
	activityCtx := workflow.WithActivityOptions(ctx, activityOptions)

	var imageRef string
	err := workflow.ExecuteActivity(activityCtx, GenerateImageActivity, ImageActivityInput{
		JobID:       params.JobID,
		Params:      params.Params,
		MaxAttempts: params.MaxAttempts,
	}).Get(ctx, &imageRef)
	if err != nil {
		logger.Error("Image generation workflow failed", "jobID", params.JobID, "error", err)
		failJob(ctx, params.JobID, err)
		return "", err
	}

	logger.Info("Image generation workflow completed", "jobID", params.JobID, "imageRef", imageRef)
	return imageRef, nil
}

// failJob leaves the job row FAILED however the generation activity ended,
// including status writes that failed and attempts lost to a dead worker.
func failJob(ctx workflow.Context, jobID string, cause error) {
	failCtx := workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		StartToCloseTimeout: 30 * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    time.Minute,
			MaximumAttempts:    10,
		},
	})

	err := workflow.ExecuteActivity(failCtx, FailImageJobActivity, FailJobInput{
		JobID: jobID,
		Cause: cause.Error(),
	}).Get(ctx, nil)
	if err != nil {
		workflow.GetLogger(ctx).Error("Failed to record image job failure", "jobID", jobID, "error", err)
	}
}
