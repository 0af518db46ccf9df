package evolution

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"encore.dev/rlog"

	"elementalsouls.app/evolution/business/permit"
	"elementalsouls.app/evolution/contentstore"
	"elementalsouls.app/evolution/domain"
	"elementalsouls.app/evolution/ledger"
	"elementalsouls.app/evolution/model"
	"elementalsouls.app/evolution/repository/drafts"
	"elementalsouls.app/evolution/repository/evolutions"
)

// validated is everything Validating learned from the ledger.
type validated struct {
	owner        common.Address
	currentLevel int
	element      model.Element
	imageRef     string
}

func (b *business) Evolve(ctx context.Context, req model.EvolutionRequest) (*model.EvolutionOutcome, error) {
	ctx, cancel := b.detach(ctx)
	defer cancel()

	run := b.StateMachine.Begin(req.AssetID)
	defer run.Release(ctx)

	v, err := b.validate(ctx, req)
	if err != nil {
		evolutionOutcomes.WithLabelValues(string(req.Mode), "rejected").Inc()
		return nil, err
	}

	if err := run.Lock(ctx); err != nil {
		evolutionOutcomes.WithLabelValues(string(req.Mode), "busy").Inc()
		return nil, err
	}

	uri, err := b.buildMetadata(ctx, req, v)
	if err != nil {
		evolutionOutcomes.WithLabelValues(string(req.Mode), "failed").Inc()
		return nil, err
	}
	if err := run.Transition(domain.StateMetadataBuilt); err != nil {
		return nil, err
	}

	var outcome *model.EvolutionOutcome
	switch req.Mode {
	case model.EvolutionModeDirect:
		outcome, err = b.commit(ctx, run, req, v, uri)
	default:
		outcome, err = b.issuePermit(ctx, run, req, v, uri)
	}
	if err != nil {
		evolutionOutcomes.WithLabelValues(string(req.Mode), string(model.KindOf(err))).Inc()
		return nil, err
	}

	evolutionOutcomes.WithLabelValues(string(req.Mode), "ok").Inc()
	return outcome, nil
}

// validate checks the request against the ledger. It runs before the lock
// is taken and has no side effects.
func (b *business) validate(ctx context.Context, req model.EvolutionRequest) (*validated, error) {
	if req.Mode != model.EvolutionModePermit && req.Mode != model.EvolutionModeDirect {
		return nil, model.InvalidRequest("mode must be permit or direct")
	}
	if !common.IsHexAddress(req.Wallet) {
		return nil, model.InvalidRequest("wallet must be a hex address")
	}
	if req.ToLevel > model.MaxLevel {
		return nil, model.InvalidRequest("asset is already at the maximum level")
	}
	if req.TTL < 0 {
		return nil, model.InvalidRequest("ttl must be positive")
	}

	owner, err := b.Ledger.GetOwner(ctx, req.AssetID)
	if err != nil {
		if errors.Is(err, ledger.ErrAssetNotFound) {
			return nil, model.NotFound("asset not found")
		}
		rlog.Error("failed to read asset owner", "asset_id", req.AssetID, "error", err)
		return nil, model.Internal("failed to read asset owner")
	}
	if owner != common.HexToAddress(req.Wallet) {
		return nil, model.InvalidRequest("wallet does not own the asset")
	}

	level, err := b.Ledger.GetLevel(ctx, req.AssetID)
	if err != nil {
		rlog.Error("failed to read asset level", "asset_id", req.AssetID, "error", err)
		return nil, model.Internal("failed to read asset level")
	}
	if req.ToLevel != level+1 {
		return nil, model.InvalidRequest("to_level must be exactly one above the current level")
	}

	imageRef, err := b.resolveImage(ctx, req)
	if err != nil {
		return nil, err
	}
	element, err := b.resolveElement(ctx, req)
	if err != nil {
		return nil, err
	}

	return &validated{
		owner:        owner,
		currentLevel: level,
		element:      element,
		imageRef:     imageRef,
	}, nil
}

func (b *business) resolveImage(ctx context.Context, req model.EvolutionRequest) (string, error) {
	switch {
	case req.ImageJobID != "" && req.ImageRef != "":
		return "", model.InvalidRequest("provide either image_ref or image_job_id, not both")
	case req.ImageJobID != "":
		job, err := b.Jobs.GetImageJob(ctx, req.ImageJobID)
		if err != nil {
			return "", err
		}
		if !strings.EqualFold(job.Requester, req.Wallet) {
			return "", model.NotFound("image job not found")
		}
		if job.Status != model.JobStatusCompleted || job.ImageRef == nil {
			return "", model.InvalidRequest("image job is not completed")
		}
		return *job.ImageRef, nil
	case req.ImageRef != "":
		if !contentstore.IsReference(req.ImageRef) {
			return "", model.InvalidRequest("image_ref must be an ipfs:// reference")
		}
		return req.ImageRef, nil
	default:
		return "", model.InvalidRequest("image_ref or image_job_id is required")
	}
}

// resolveElement reads the element from the asset's snapshot. The element
// never changes across evolutions, so a caller Element trait may only repeat
// it. The caller names the element only for an asset with no snapshot yet.
func (b *business) resolveElement(ctx context.Context, req model.EvolutionRequest) (model.Element, error) {
	requested, hasRequested := elementAttribute(req.Attributes)

	snap, err := b.Snapshots.Get(ctx, req.AssetID)
	if err != nil && model.KindOf(err) != model.KindNotFound {
		return "", err
	}
	if err == nil && snap.Element.Valid() {
		if hasRequested && requested != snap.Element {
			return "", model.InvalidRequest("element of an existing asset cannot be changed")
		}
		return snap.Element, nil
	}

	if !hasRequested {
		return "", model.InvalidRequest("element is required")
	}
	if !requested.Valid() {
		return "", model.InvalidRequest("unknown element")
	}
	return requested, nil
}

// buildMetadata stores the new metadata document and records it as a draft.
func (b *business) buildMetadata(ctx context.Context, req model.EvolutionRequest, v *validated) (string, error) {
	metadata := BuildMetadata(v.element, req.ToLevel, v.imageRef, req.Attributes)

	uri, err := b.ContentStore.PutJSON(ctx, metadata)
	if err != nil {
		if errors.Is(err, contentstore.ErrPayloadTooLarge) {
			return "", model.InvalidRequest("metadata exceeds the content size limit")
		}
		rlog.Error("failed to store evolution metadata", "asset_id", req.AssetID, "error", err)
		return "", model.Internal("failed to store metadata")
	}

	attributes, err := json.Marshal(metadata.Attributes)
	if err != nil {
		return "", model.Internal("failed to encode metadata attributes")
	}
	if _, err := b.DraftRepo.UpsertDraft(ctx, drafts.UpsertDraftParams{
		Uri:        uri,
		AssetID:    int64(req.AssetID),
		Element:    string(v.element),
		Level:      int32(req.ToLevel),
		ImageRef:   v.imageRef,
		Attributes: attributes,
	}); err != nil {
		rlog.Error("failed to persist metadata draft", "asset_id", req.AssetID, "uri", uri, "error", err)
		return "", model.Internal("failed to persist metadata draft")
	}

	return uri, nil
}

// issuePermit signs a permit over a nonce read under the lock. The draft is
// kept until the owner confirms the resulting transaction.
func (b *business) issuePermit(ctx context.Context, run *domain.Run, req model.EvolutionRequest, v *validated, uri string) (*model.EvolutionOutcome, error) {
	nonce, err := b.Ledger.GetNonce(ctx, req.AssetID)
	if err != nil {
		rlog.Error("failed to read permit nonce", "asset_id", req.AssetID, "error", err)
		return nil, model.Internal("failed to read permit nonce")
	}

	ttl := req.TTL
	if ttl == 0 {
		ttl = b.permitTTL
	}
	if err := run.Held(); err != nil {
		return nil, err
	}
	signed, err := b.Issuer.Issue(permit.Request{
		Owner:     v.owner,
		AssetID:   req.AssetID,
		FromLevel: v.currentLevel,
		ToLevel:   req.ToLevel,
		Nonce:     nonce,
		NewURI:    uri,
		TTL:       ttl,
	})
	if err != nil {
		if errors.Is(err, permit.ErrInvalidTTL) {
			return nil, model.InvalidRequest(err.Error())
		}
		rlog.Error("failed to sign permit", "asset_id", req.AssetID, "error", err)
		return nil, model.Internal("failed to sign permit")
	}

	if err := run.Transition(domain.StatePermitIssued); err != nil {
		return nil, err
	}

	b.record(ctx, evolutions.CreateEvolutionParams{
		AssetID:    int64(req.AssetID),
		Owner:      strings.ToLower(v.owner.Hex()),
		FromLevel:  int32(v.currentLevel),
		ToLevel:    int32(req.ToLevel),
		ContentRef: uri,
		Mode:       string(model.EvolutionModePermit),
		Status:     string(model.EvolutionStatusPermitIssued),
	})

	rlog.Info("evolution permit issued",
		"asset_id", req.AssetID,
		"to_level", req.ToLevel,
		"nonce", nonce,
		"deadline", signed.Permit.Deadline,
	)

	return &model.EvolutionOutcome{Mode: model.EvolutionModePermit, Permit: signed}, nil
}
