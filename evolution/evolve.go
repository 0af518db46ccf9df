package evolution

import (
	"context"
	"strings"

	"encore.dev/rlog"

	"elementalsouls.app/evolution/model"
)

type EvolveRequest struct {
	IdempotencyKey string `header:"X-Idempotency-Key" json:"-"`

	Wallet     string            `json:"wallet" validate:"required,eth_addr"`
	Mode       string            `json:"mode,omitempty" validate:"omitempty,oneof=permit direct"`
	ToLevel    int               `json:"to_level" validate:"required,min=2,max=10"`
	ImageRef   string            `json:"image_ref,omitempty" validate:"omitempty,startswith=ipfs://,max=512"`
	ImageJobID string            `json:"image_job_id,omitempty" validate:"omitempty,uuid"`
	Attributes []model.Attribute `json:"attributes,omitempty" validate:"max=32,dive"`
	// PermitTTLSeconds is clamped to the issuer maximum.
	PermitTTLSeconds int `json:"permit_ttl_seconds,omitempty" validate:"min=0"`
}

type EvolveResponse struct {
	Evolution model.EvolutionOutcome `json:"evolution"`
}

// Evolve moves an asset one level up. Permit mode returns a signed permit
// for the owner to submit; direct mode burns and mints on the owner's behalf.
//
//encore:api public path=/v1/assets/:id/evolve method=POST tag:idempotency
func (s *Service) Evolve(ctx context.Context, id uint64, req *EvolveRequest) (*EvolveResponse, error) {
	mode := model.EvolutionMode(req.Mode)
	if mode == "" {
		mode = model.EvolutionModePermit
	}

	outcome, err := s.evolutions.Evolve(ctx, model.EvolutionRequest{
		AssetID:    id,
		Wallet:     strings.ToLower(req.Wallet),
		Mode:       mode,
		ToLevel:    req.ToLevel,
		ImageRef:   req.ImageRef,
		ImageJobID: req.ImageJobID,
		Attributes: req.Attributes,
		TTL:        seconds(min(req.PermitTTLSeconds, cfg.Evolution.PermitMaxTTLSeconds())),
	})
	if err != nil {
		rlog.Error("evolution failed", "asset_id", id, "mode", mode, "kind", model.KindOf(err), "error", err)
		return nil, err
	}

	return &EvolveResponse{
		Evolution: *outcome,
	}, nil
}

// Validate implements validation for EvolveRequest using go-playground/validator
func (r *EvolveRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return validationError(err)
	}
	if r.ImageRef != "" && r.ImageJobID != "" {
		return model.InvalidRequest("image_ref and image_job_id are mutually exclusive")
	}
	if r.ImageRef == "" && r.ImageJobID == "" {
		return model.InvalidRequest("one of image_ref or image_job_id is required")
	}
	return nil
}

type ConfirmEvolutionRequest struct {
	IdempotencyKey string `header:"X-Idempotency-Key" json:"-"`

	Wallet     string `json:"wallet" validate:"required,eth_addr"`
	ContentRef string `json:"content_ref" validate:"required,startswith=ipfs://"`
	TxHash     string `json:"tx_hash" validate:"required,len=66,startswith=0x,hexadecimal"`
}

type AssetResponse struct {
	Asset model.AssetSnapshot `json:"asset"`
}

// ConfirmEvolution settles a permit evolution once the owner's transaction
// has landed.
//
//encore:api public path=/v1/assets/:id/evolution/confirm method=POST tag:idempotency
func (s *Service) ConfirmEvolution(ctx context.Context, id uint64, req *ConfirmEvolutionRequest) (*AssetResponse, error) {
	asset, err := s.evolutions.ConfirmEvolution(ctx, model.ConfirmRequest{
		AssetID:    id,
		Wallet:     strings.ToLower(req.Wallet),
		ContentRef: req.ContentRef,
		TxHash:     req.TxHash,
	})
	if err != nil {
		rlog.Error("failed to confirm evolution", "asset_id", id, "tx_hash", req.TxHash, "error", err)
		return nil, err
	}

	return &AssetResponse{
		Asset: *asset,
	}, nil
}

func (r *ConfirmEvolutionRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return validationError(err)
	}
	return nil
}
