package workflow

import (
	"context"
	"fmt"
	"time"

	"encore.dev/rlog"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/temporal"

	"elementalsouls.app/evolution/model"
)

// TemporalDispatcher starts one GenerateImage workflow per image job.
type TemporalDispatcher struct {
	client            client.Client
	taskQueue         string
	generationTimeout time.Duration
	retry             RetryConfig
}

func NewTemporalDispatcher(c client.Client, taskQueue string, generationTimeout time.Duration, retry RetryConfig) *TemporalDispatcher {
	return &TemporalDispatcher{
		client:            c,
		taskQueue:         taskQueue,
		generationTimeout: generationTimeout,
		retry:             retry,
	}
}

func WorkflowID(jobID string) string {
	return fmt.Sprintf("image-job-%s", jobID)
}

func (d *TemporalDispatcher) Dispatch(ctx context.Context, job *model.GenerationJob) error {
	workflowID := WorkflowID(job.JobID)

	options := client.StartWorkflowOptions{
		ID:        workflowID,
		TaskQueue: d.taskQueue,
	}

	params := GenerateImageParams{
		JobID:             job.JobID,
		Params:            job.Parameters,
		MaxAttempts:       job.MaxAttempts,
		GenerationTimeout: d.generationTimeout,
		Retry:             d.retry,
	}

	_, err := d.client.ExecuteWorkflow(ctx, options, GenerateImage, params)
	if err != nil {
		// Distinguish AlreadyStarted (benign) vs real failure
		if temporal.IsWorkflowExecutionAlreadyStartedError(err) {
			rlog.Info("workflow already started", "job_id", job.JobID, "workflow_id", workflowID)
			return nil
		}
		return fmt.Errorf("execute workflow %s: %w", workflowID, err)
	}
	return nil
}
