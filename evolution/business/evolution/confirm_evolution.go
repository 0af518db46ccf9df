package evolution

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/rlog"

	"elementalsouls.app/evolution/ledger"
	"elementalsouls.app/evolution/model"
	"elementalsouls.app/evolution/repository/evolutions"
)

// ConfirmEvolution reconciles a permit the owner submitted to the ledger
// themselves. It waits for the transaction, checks that the minted record
// carries the drafted metadata and then moves the snapshot over to it.
func (b *business) ConfirmEvolution(ctx context.Context, req model.ConfirmRequest) (*model.AssetSnapshot, error) {
	ctx, cancel := b.detach(ctx)
	defer cancel()

	draft, err := b.DraftRepo.GetDraft(ctx, req.ContentRef)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.NotFound("metadata draft not found")
		}
		return nil, model.Internal("failed to get metadata draft")
	}
	if uint64(draft.AssetID) != req.AssetID {
		return nil, model.InvalidRequest("metadata draft belongs to a different asset")
	}

	receipt, err := b.Ledger.WaitForConfirmation(ctx, common.HexToHash(req.TxHash))
	if err != nil {
		switch {
		case isTimeout(err):
			return nil, model.NewErrorWithDetails(
				model.ErrorDetails{Kind: model.KindTimeout, AssetID: req.AssetID, MintTx: req.TxHash},
				"timed out waiting for ledger confirmation",
			)
		case errors.Is(err, ledger.ErrReverted):
			return nil, model.InvalidRequest("evolution transaction reverted")
		default:
			rlog.Error("failed to confirm evolution transaction", "asset_id", req.AssetID, "tx", req.TxHash, "error", err)
			return nil, model.Internal("failed to confirm evolution transaction")
		}
	}
	if receipt.MintedAssetID == nil {
		return nil, model.InvalidRequest("transaction did not mint an evolved asset")
	}
	newAssetID := *receipt.MintedAssetID

	owner, err := b.Ledger.GetOwner(ctx, newAssetID)
	if err != nil {
		return nil, model.Internal("failed to read evolved asset owner")
	}
	level, err := b.Ledger.GetLevel(ctx, newAssetID)
	if err != nil {
		return nil, model.Internal("failed to read evolved asset level")
	}
	uri, err := b.Ledger.GetURI(ctx, newAssetID)
	if err != nil {
		return nil, model.Internal("failed to read evolved asset uri")
	}

	if owner != common.HexToAddress(req.Wallet) {
		return nil, model.InvalidRequest("evolved asset is not owned by the wallet")
	}
	if uri != draft.Uri || level != int(draft.Level) {
		return nil, model.InvalidRequest("evolved asset does not match the metadata draft")
	}

	var attributes []model.Attribute
	if err := json.Unmarshal(draft.Attributes, &attributes); err != nil {
		rlog.Warn("draft attributes are not decodable", "uri", draft.Uri, "error", err)
	}

	if err := b.Snapshots.Remove(ctx, req.AssetID); err != nil {
		rlog.Warn("failed to drop snapshot of burned asset", "asset_id", req.AssetID, "error", err)
	}
	snap, err := b.Snapshots.Upsert(ctx, model.AssetSnapshot{
		AssetID:    newAssetID,
		Owner:      owner.Hex(),
		Level:      level,
		Element:    model.Element(draft.Element),
		URI:        uri,
		ImageRef:   draft.ImageRef,
		Attributes: attributes,
	})
	if err != nil {
		return nil, err
	}

	if err := b.DraftRepo.DeleteDraft(ctx, draft.Uri); err != nil {
		rlog.Warn("failed to delete confirmed draft", "uri", draft.Uri, "error", err)
	}

	if _, err := b.EvolutionRepo.MarkEvolutionConfirmed(ctx, evolutions.MarkEvolutionConfirmedParams{
		AssetID:    int64(req.AssetID),
		ContentRef: draft.Uri,
		NewAssetID: pgtype.Int8{Int64: int64(newAssetID), Valid: true},
		ConfirmTx:  text(strings.ToLower(req.TxHash)),
	}); err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
		case isUniqueViolation(err):
			rlog.Warn("asset already recorded as consumed", "asset_id", req.AssetID)
		default:
			rlog.Warn("failed to mark evolution confirmed", "asset_id", req.AssetID, "error", err)
		}
	}

	rlog.Info("evolution confirmed", "asset_id", req.AssetID, "new_asset_id", newAssetID, "level", level)
	return snap, nil
}
