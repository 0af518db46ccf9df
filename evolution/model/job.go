package model

import (
	"time"
)

type JobStatus string

const (
	JobStatusQueued     JobStatus = "queued"
	JobStatusProcessing JobStatus = "processing"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusFailed     JobStatus = "failed"
)

// Terminal reports whether no further transitions are allowed.
func (s JobStatus) Terminal() bool {
	return s == JobStatusCompleted || s == JobStatusFailed
}

type ImageMode string

const (
	ImageModeTxt2Img ImageMode = "txt2img"
	ImageModeImg2Img ImageMode = "img2img"
)

// GenerationParams are the inputs of one image generation.
type GenerationParams struct {
	Element      Element   `json:"element"`
	Mode         ImageMode `json:"mode"`
	ToLevel      int       `json:"to_level"`
	BaseImageRef string    `json:"base_image_ref,omitempty"`
	Prompt       string    `json:"prompt,omitempty"`
	Strength     *float64  `json:"strength,omitempty"`
	Seed         *int64    `json:"seed,omitempty"`
}

type GenerationJob struct {
	JobID       string           `json:"job_id"`
	Requester   string           `json:"requester"`
	Parameters  GenerationParams `json:"parameters"`
	Status      JobStatus        `json:"status"`
	Attempts    int              `json:"attempts"`
	MaxAttempts int              `json:"max_attempts"`
	ImageRef    *string          `json:"image_ref,omitempty"`
	Prompt      *string          `json:"prompt,omitempty"`
	Error       *string          `json:"error,omitempty"`
	StartedAt   *time.Time       `json:"started_at,omitempty"`
	CompletedAt *time.Time       `json:"completed_at,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}
