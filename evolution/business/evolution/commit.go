package evolution

import (
	"context"
	"errors"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/rlog"

	"elementalsouls.app/evolution/domain"
	"elementalsouls.app/evolution/ledger"
	"elementalsouls.app/evolution/model"
	"elementalsouls.app/evolution/repository/evolutions"
)

// commit burns the old record and mints its replacement from the operator
// account. Once the burn is confirmed nothing is rolled back: a failed mint
// is surfaced as a partial failure for an operator to reconcile.
func (b *business) commit(ctx context.Context, run *domain.Run, req model.EvolutionRequest, v *validated, uri string) (*model.EvolutionOutcome, error) {
	base := evolutions.CreateEvolutionParams{
		AssetID:    int64(req.AssetID),
		Owner:      strings.ToLower(v.owner.Hex()),
		FromLevel:  int32(v.currentLevel),
		ToLevel:    int32(req.ToLevel),
		ContentRef: uri,
		Mode:       string(model.EvolutionModeDirect),
	}

	if err := run.Held(); err != nil {
		return nil, err
	}
	burnTx, err := b.Ledger.Burn(ctx, req.AssetID)
	if err != nil {
		rlog.Error("failed to submit burn", "asset_id", req.AssetID, "error", err)
		return nil, model.Internal("failed to burn asset")
	}
	if _, err := b.Ledger.WaitForConfirmation(ctx, burnTx); err != nil {
		if isTimeout(err) {
			return nil, b.timedOut(ctx, base, burnTx, common.Hash{}, err)
		}
		rlog.Error("burn was not confirmed", "asset_id", req.AssetID, "burn_tx", burnTx.Hex(), "error", err)
		return nil, model.Internal("burn transaction failed")
	}

	// The old record is gone from here on.
	mintTx, newAssetID, err := b.Ledger.Mint(ctx, v.owner, req.ToLevel, uri)
	if err != nil {
		return nil, b.partialFailure(ctx, base, burnTx, common.Hash{}, err)
	}
	receipt, err := b.Ledger.WaitForConfirmation(ctx, mintTx)
	if err != nil {
		if isTimeout(err) {
			return nil, b.timedOut(ctx, base, burnTx, mintTx, err)
		}
		return nil, b.partialFailure(ctx, base, burnTx, mintTx, err)
	}
	if receipt.MintedAssetID != nil {
		newAssetID = *receipt.MintedAssetID
	}

	if err := run.Transition(domain.StateLedgerCommitted); err != nil {
		return nil, err
	}

	b.reconcile(ctx, req, v, uri, newAssetID)

	committed := base
	committed.Status = string(model.EvolutionStatusCommitted)
	committed.NewAssetID = pgtype.Int8{Int64: int64(newAssetID), Valid: true}
	committed.BurnTx = text(burnTx.Hex())
	committed.MintTx = text(mintTx.Hex())
	b.record(ctx, committed)

	rlog.Info("evolution committed",
		"asset_id", req.AssetID,
		"new_asset_id", newAssetID,
		"to_level", req.ToLevel,
		"burn_tx", burnTx.Hex(),
		"mint_tx", mintTx.Hex(),
	)

	return &model.EvolutionOutcome{
		Mode: model.EvolutionModeDirect,
		Commit: &model.CommitResult{
			OldAssetID:  req.AssetID,
			NewAssetID:  newAssetID,
			Level:       req.ToLevel,
			URI:         uri,
			BurnTxHash:  burnTx.Hex(),
			MintTxHash:  mintTx.Hex(),
			BlockNumber: receipt.BlockNumber,
		},
	}, nil
}

// reconcile moves the snapshot to the new record and drops the draft. The
// ledger is already committed, so failures here are only logged.
func (b *business) reconcile(ctx context.Context, req model.EvolutionRequest, v *validated, uri string, newAssetID uint64) {
	if err := b.Snapshots.Remove(ctx, req.AssetID); err != nil {
		rlog.Warn("failed to drop snapshot of burned asset", "asset_id", req.AssetID, "error", err)
	}
	if _, err := b.Snapshots.Upsert(ctx, model.AssetSnapshot{
		AssetID:    newAssetID,
		Owner:      v.owner.Hex(),
		Level:      req.ToLevel,
		Element:    v.element,
		URI:        uri,
		ImageRef:   v.imageRef,
		Attributes: MergeAttributes(RequiredAttributes(v.element, req.ToLevel), req.Attributes),
	}); err != nil {
		rlog.Warn("failed to snapshot minted asset", "asset_id", newAssetID, "error", err)
	}
	if err := b.DraftRepo.DeleteDraft(ctx, uri); err != nil {
		rlog.Warn("failed to delete committed draft", "uri", uri, "error", err)
	}
}

func (b *business) partialFailure(ctx context.Context, base evolutions.CreateEvolutionParams, burnTx, mintTx common.Hash, cause error) error {
	partialFailures.Inc()
	rlog.Error("evolution partially failed: asset burned without replacement",
		"alert", "partial_failure",
		"asset_id", base.AssetID,
		"owner", base.Owner,
		"to_level", base.ToLevel,
		"content_ref", base.ContentRef,
		"burn_tx", burnTx.Hex(),
		"mint_tx", hashOrEmpty(mintTx),
		"error", cause,
	)

	failed := base
	failed.Status = string(model.EvolutionStatusPartialFailure)
	failed.BurnTx = text(burnTx.Hex())
	failed.MintTx = text(hashOrEmpty(mintTx))
	failed.Error = text(cause.Error())
	b.record(ctx, failed)

	return model.NewErrorWithDetails(model.ErrorDetails{
		Kind:    model.KindPartialFailure,
		AssetID: uint64(base.AssetID),
		BurnTx:  burnTx.Hex(),
		MintTx:  hashOrEmpty(mintTx),
	}, "asset was burned but its replacement could not be minted")
}

// timedOut records a confirmation wait that ran out. The transaction may
// still land, so the outcome is unknown rather than failed.
func (b *business) timedOut(ctx context.Context, base evolutions.CreateEvolutionParams, burnTx, mintTx common.Hash, cause error) error {
	rlog.Error("ledger confirmation timed out",
		"alert", "timeout",
		"asset_id", base.AssetID,
		"burn_tx", burnTx.Hex(),
		"mint_tx", hashOrEmpty(mintTx),
		"error", cause,
	)

	timeout := base
	timeout.Status = string(model.EvolutionStatusTimeout)
	timeout.BurnTx = text(burnTx.Hex())
	timeout.MintTx = text(hashOrEmpty(mintTx))
	timeout.Error = text(cause.Error())
	b.record(ctx, timeout)

	return model.NewErrorWithDetails(model.ErrorDetails{
		Kind:    model.KindTimeout,
		AssetID: uint64(base.AssetID),
		BurnTx:  burnTx.Hex(),
		MintTx:  hashOrEmpty(mintTx),
	}, "timed out waiting for ledger confirmation")
}

func isTimeout(err error) bool {
	return errors.Is(err, ledger.ErrConfirmationTimeout) || errors.Is(err, context.DeadlineExceeded)
}

func hashOrEmpty(h common.Hash) string {
	if h == (common.Hash{}) {
		return ""
	}
	return h.Hex()
}
