package workflow

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.temporal.io/api/serviceerror"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/mocks"
	"go.temporal.io/sdk/testsuite"
	"go.uber.org/mock/gomock"

	"elementalsouls.app/evolution/contentstore"
	"elementalsouls.app/evolution/generator"
	"elementalsouls.app/evolution/mocks/business/job_business"
	"elementalsouls.app/evolution/mocks/contentstore/content_store"
	"elementalsouls.app/evolution/mocks/generator/image_generator"
	"elementalsouls.app/evolution/model"
)

var fireParams = model.GenerationParams{
	Element: model.ElementFire,
	Mode:    model.ImageModeTxt2Img,
	ToLevel: 3,
}

var fastRetry = RetryConfig{
	InitialInterval:    time.Millisecond,
	BackoffCoefficient: 2.0,
	MaximumInterval:    10 * time.Millisecond,
}

type activityMocks struct {
	jobs  *job_business.MockBusiness
	gen   *image_generator.MockGenerator
	store *content_store.MockStore
}

// helper to set dependencies to mocks
func setupMockDeps(t *testing.T, ctrl *gomock.Controller, timeout time.Duration) activityMocks {
	m := activityMocks{
		jobs:  job_business.NewMockBusiness(ctrl),
		gen:   image_generator.NewMockGenerator(ctrl),
		store: content_store.NewMockStore(ctrl),
	}
	SetActivityDependencies(m.jobs, m.gen, m.store, timeout)
	t.Cleanup(func() { activityDeps = nil })
	return m
}

func newWorkflowEnv() *testsuite.TestWorkflowEnvironment {
	var ts testsuite.WorkflowTestSuite
	env := ts.NewTestWorkflowEnvironment()
	env.RegisterActivity(GenerateImageActivity)
	env.RegisterActivity(FailImageJobActivity)
	return env
}

func TestGenerateImageWorkflow_CompletesOnFirstAttempt(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := setupMockDeps(t, ctrl, time.Second)

	image := &generator.Image{Data: []byte("<svg/>"), MimeType: "image/svg+xml", Prompt: "fire soul"}
	gomock.InOrder(
		m.jobs.EXPECT().MarkProcessing(gomock.Any(), "job-1", 1).Return(&model.GenerationJob{}, nil),
		m.gen.EXPECT().Generate(gomock.Any(), fireParams).Return(image, nil),
		m.store.EXPECT().Put(gomock.Any(), image.Data, "image/svg+xml").Return("ipfs://bafyimage", nil),
		m.jobs.EXPECT().MarkCompleted(gomock.Any(), "job-1", "ipfs://bafyimage", "fire soul").Return(&model.GenerationJob{}, nil),
	)

	env := newWorkflowEnv()
	env.ExecuteWorkflow(GenerateImage, GenerateImageParams{JobID: "job-1", Params: fireParams, MaxAttempts: 3, Retry: fastRetry})
	require.True(t, env.IsWorkflowCompleted())
	require.NoError(t, env.GetWorkflowError())

	var ref string
	require.NoError(t, env.GetWorkflowResult(&ref))
	assert.Equal(t, "ipfs://bafyimage", ref)
}

func TestGenerateImageWorkflow_RetriesThenCompletes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := setupMockDeps(t, ctrl, time.Second)

	image := &generator.Image{Data: []byte("png"), MimeType: "image/png", Prompt: "p"}
	gomock.InOrder(
		m.jobs.EXPECT().MarkProcessing(gomock.Any(), "job-2", 1).Return(&model.GenerationJob{}, nil),
		m.gen.EXPECT().Generate(gomock.Any(), fireParams).Return(nil, errors.New("comfy unavailable")),
		m.jobs.EXPECT().MarkRetrying(gomock.Any(), "job-2", "comfy unavailable").Return(nil),
		m.jobs.EXPECT().MarkProcessing(gomock.Any(), "job-2", 2).Return(&model.GenerationJob{}, nil),
		m.gen.EXPECT().Generate(gomock.Any(), fireParams).Return(image, nil),
		m.store.EXPECT().Put(gomock.Any(), image.Data, "image/png").Return("ipfs://bafy2", nil),
		m.jobs.EXPECT().MarkCompleted(gomock.Any(), "job-2", "ipfs://bafy2", "p").Return(&model.GenerationJob{}, nil),
	)

	env := newWorkflowEnv()
	env.ExecuteWorkflow(GenerateImage, GenerateImageParams{JobID: "job-2", Params: fireParams, MaxAttempts: 3, Retry: fastRetry})
	require.True(t, env.IsWorkflowCompleted())
	assert.NoError(t, env.GetWorkflowError())
}

func TestGenerateImageWorkflow_FailsAfterMaxAttempts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := setupMockDeps(t, ctrl, time.Second)

	gomock.InOrder(
		m.jobs.EXPECT().MarkProcessing(gomock.Any(), "job-3", 1).Return(&model.GenerationJob{}, nil),
		m.gen.EXPECT().Generate(gomock.Any(), fireParams).Return(nil, errors.New("model crashed")),
		m.jobs.EXPECT().MarkRetrying(gomock.Any(), "job-3", "model crashed").Return(nil),
		m.jobs.EXPECT().MarkProcessing(gomock.Any(), "job-3", 2).Return(&model.GenerationJob{}, nil),
		m.gen.EXPECT().Generate(gomock.Any(), fireParams).Return(nil, errors.New("model crashed")),
		m.jobs.EXPECT().MarkFailed(gomock.Any(), "job-3", "model crashed").Return(nil),
		// The workflow's own failure record finds the job already terminal.
		m.jobs.EXPECT().MarkFailed(gomock.Any(), "job-3", gomock.Any()).
			Return(model.InvalidRequest("image job is missing or already finished")),
	)

	env := newWorkflowEnv()
	env.ExecuteWorkflow(GenerateImage, GenerateImageParams{JobID: "job-3", Params: fireParams, MaxAttempts: 2, Retry: fastRetry})
	require.True(t, env.IsWorkflowCompleted())
	err := env.GetWorkflowError()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "model crashed")
}

func TestGenerateImageWorkflow_FailsJobWhenStatusWritesFail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := setupMockDeps(t, ctrl, time.Second)

	image := &generator.Image{Data: []byte("png"), MimeType: "image/png", Prompt: "p"}
	for attempt := 1; attempt <= 2; attempt++ {
		m.jobs.EXPECT().MarkProcessing(gomock.Any(), "job-4", attempt).Return(&model.GenerationJob{}, nil)
	}
	m.gen.EXPECT().Generate(gomock.Any(), fireParams).Return(image, nil).Times(2)
	m.store.EXPECT().Put(gomock.Any(), image.Data, "image/png").Return("ipfs://bafy4", nil).Times(2)
	m.jobs.EXPECT().MarkCompleted(gomock.Any(), "job-4", "ipfs://bafy4", "p").
		Return(nil, model.Internal("failed to complete image job")).Times(2)
	m.jobs.EXPECT().MarkFailed(gomock.Any(), "job-4", gomock.Any()).Return(nil).Times(1)

	env := newWorkflowEnv()
	env.ExecuteWorkflow(GenerateImage, GenerateImageParams{JobID: "job-4", Params: fireParams, MaxAttempts: 2, Retry: fastRetry})
	require.True(t, env.IsWorkflowCompleted())
	assert.Error(t, env.GetWorkflowError())
}

func TestFailImageJobActivity(t *testing.T) {
	testCases := []struct {
		name        string
		markErr     error
		expectError bool
	}{
		{name: "marks_failed"},
		{
			name:    "already_terminal_is_done",
			markErr: model.InvalidRequest("image job is missing or already finished"),
		},
		{
			name:        "database_error_is_retried",
			markErr:     model.Internal("failed to fail image job"),
			expectError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := setupMockDeps(t, ctrl, time.Second)
			m.jobs.EXPECT().MarkFailed(gomock.Any(), "job", "worker lost").Return(tc.markErr)

			var ts testsuite.WorkflowTestSuite
			env := ts.NewTestActivityEnvironment()
			env.RegisterActivity(FailImageJobActivity)

			_, err := env.ExecuteActivity(FailImageJobActivity, FailJobInput{JobID: "job", Cause: "worker lost"})
			if tc.expectError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestGenerateImageActivity_FailurePaths(t *testing.T) {
	testCases := []struct {
		name          string
		maxAttempts   int
		expect        func(m activityMocks)
		expectedError string
	}{
		{
			name:        "payload_too_large_is_not_retried",
			maxAttempts: 3,
			expect: func(m activityMocks) {
				m.jobs.EXPECT().MarkProcessing(gomock.Any(), "job", 1).Return(&model.GenerationJob{}, nil)
				m.gen.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(&generator.Image{Data: []byte("x"), MimeType: "image/png"}, nil)
				m.store.EXPECT().Put(gomock.Any(), gomock.Any(), "image/png").Return("", contentstore.ErrPayloadTooLarge)
				m.jobs.EXPECT().MarkFailed(gomock.Any(), "job", contentstore.ErrPayloadTooLarge.Error()).Return(nil)
			},
			expectedError: "payload too large",
		},
		{
			name:        "terminal_job_is_skipped",
			maxAttempts: 3,
			expect: func(m activityMocks) {
				m.jobs.EXPECT().MarkProcessing(gomock.Any(), "job", 1).
					Return(nil, model.InvalidRequest("image job is missing or already finished"))
			},
			expectedError: "not runnable",
		},
		{
			name:        "generation_timeout_fails_last_attempt",
			maxAttempts: 1,
			expect: func(m activityMocks) {
				m.jobs.EXPECT().MarkProcessing(gomock.Any(), "job", 1).Return(&model.GenerationJob{}, nil)
				m.gen.EXPECT().Generate(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, _ model.GenerationParams) (*generator.Image, error) {
						<-ctx.Done()
						return nil, ctx.Err()
					})
				m.jobs.EXPECT().MarkFailed(gomock.Any(), "job", "image generation timed out").Return(nil)
			},
			expectedError: "timed out",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := setupMockDeps(t, ctrl, 20*time.Millisecond)
			tc.expect(m)

			var ts testsuite.WorkflowTestSuite
			env := ts.NewTestActivityEnvironment()
			env.RegisterActivity(GenerateImageActivity)

			_, err := env.ExecuteActivity(GenerateImageActivity, ImageActivityInput{
				JobID:       "job",
				Params:      fireParams,
				MaxAttempts: tc.maxAttempts,
			})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.expectedError)
		})
	}
}

func TestGenerateImageActivity_MissingDependencies(t *testing.T) {
	activityDeps = nil

	var ts testsuite.WorkflowTestSuite
	env := ts.NewTestActivityEnvironment()
	env.RegisterActivity(GenerateImageActivity)

	_, err := env.ExecuteActivity(GenerateImageActivity, ImageActivityInput{JobID: "job", MaxAttempts: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "activity dependencies not initialized")
}

func TestTemporalDispatcher(t *testing.T) {
	testCases := []struct {
		name        string
		temporalErr error
		expectError bool
	}{
		{name: "started"},
		{
			name:        "already_started_is_benign",
			temporalErr: serviceerror.NewWorkflowExecutionAlreadyStarted("already started", "", ""),
		},
		{
			name:        "temporal_unavailable",
			temporalErr: errors.New("connection refused"),
			expectError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockTemporal := mocks.NewClient(t)
			d := NewTemporalDispatcher(mockTemporal, "image-generation", time.Minute, fastRetry)

			job := &model.GenerationJob{JobID: "abc", Parameters: fireParams, MaxAttempts: 3}
			mockTemporal.On("ExecuteWorkflow",
				mock.Anything,
				mock.MatchedBy(func(o client.StartWorkflowOptions) bool {
					return o.ID == "image-job-abc" && o.TaskQueue == "image-generation"
				}),
				mock.Anything,
				mock.MatchedBy(func(p GenerateImageParams) bool {
					return p.JobID == "abc" && p.MaxAttempts == 3 && p.Params == fireParams
				}),
			).Return(nil, tc.temporalErr)

			err := d.Dispatch(context.Background(), job)
			if tc.expectError {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "image-job-abc")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
