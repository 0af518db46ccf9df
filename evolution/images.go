package evolution

import (
	"context"
	"strings"

	"encore.dev/rlog"

	"elementalsouls.app/evolution/model"
)

type CreateImageJobRequest struct {
	IdempotencyKey string `header:"X-Idempotency-Key" json:"-"`

	Wallet       string   `json:"wallet" validate:"required,eth_addr"`
	Element      string   `json:"element" validate:"required,oneof=Fire Water Earth Air"`
	Mode         string   `json:"mode,omitempty" validate:"omitempty,oneof=txt2img img2img"`
	ToLevel      int      `json:"to_level" validate:"required,min=1,max=10"`
	BaseImageRef string   `json:"base_image_ref,omitempty" validate:"omitempty,startswith=ipfs://,max=512"`
	Prompt       string   `json:"prompt,omitempty" validate:"max=500"`
	Strength     *float64 `json:"strength,omitempty" validate:"omitempty,gt=0,lte=1"`
	Seed         *int64   `json:"seed,omitempty"`
}

type ImageJobResponse struct {
	Job model.GenerationJob `json:"job"`
}

// CreateImageJob queues artwork generation and returns at once. Poll
// GetImageJob for the result.
//
//encore:api public path=/v1/images method=POST tag:idempotency
func (s *Service) CreateImageJob(ctx context.Context, req *CreateImageJobRequest) (*ImageJobResponse, error) {
	mode := model.ImageMode(req.Mode)
	if mode == "" {
		mode = model.ImageModeTxt2Img
	}

	job, err := s.jobs.EnqueueImageJob(ctx, strings.ToLower(req.Wallet), model.GenerationParams{
		Element:      model.Element(req.Element),
		Mode:         mode,
		ToLevel:      req.ToLevel,
		BaseImageRef: req.BaseImageRef,
		Prompt:       req.Prompt,
		Strength:     req.Strength,
		Seed:         req.Seed,
	})
	if err != nil {
		rlog.Error("failed to create image job", "wallet", req.Wallet, "error", err)
		return nil, err
	}

	return &ImageJobResponse{
		Job: *job,
	}, nil
}

func (r *CreateImageJobRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return validationError(err)
	}
	if r.Mode == string(model.ImageModeImg2Img) && r.BaseImageRef == "" {
		return model.InvalidRequest("img2img requires base_image_ref")
	}
	return nil
}

//encore:api public path=/v1/images/:jobID method=GET
func (s *Service) GetImageJob(ctx context.Context, jobID string) (*ImageJobResponse, error) {
	if err := validate.Var(jobID, "uuid"); err != nil {
		return nil, model.NotFound("image job not found")
	}

	job, err := s.jobs.GetImageJob(ctx, jobID)
	if err != nil {
		return nil, err
	}

	return &ImageJobResponse{
		Job: *job,
	}, nil
}
