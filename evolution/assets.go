package evolution

import (
	"context"
	"errors"
	"strings"

	"encore.dev/rlog"

	"elementalsouls.app/evolution/ledger"
	"elementalsouls.app/evolution/model"
)

//encore:api public path=/v1/assets/:id method=GET
func (s *Service) GetAsset(ctx context.Context, id uint64) (*AssetResponse, error) {
	asset, err := s.snapshots.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &AssetResponse{
		Asset: *asset,
	}, nil
}

type ListAssetsResponse struct {
	Assets []*model.AssetSnapshot `json:"assets"`
}

// ListWalletAssets returns the wallet's assets, each re-checked against the
// ledger.
//
//encore:api public path=/v1/wallets/:wallet/assets method=GET
func (s *Service) ListWalletAssets(ctx context.Context, wallet string) (*ListAssetsResponse, error) {
	if err := validateWallet(wallet); err != nil {
		return nil, err
	}

	assets, err := s.snapshots.ListByOwner(ctx, strings.ToLower(wallet))
	if err != nil {
		rlog.Error("failed to list wallet assets", "wallet", wallet, "error", err)
		return nil, err
	}
	if assets == nil {
		assets = []*model.AssetSnapshot{}
	}

	return &ListAssetsResponse{
		Assets: assets,
	}, nil
}

type NonceResponse struct {
	AssetID uint64 `json:"asset_id"`
	Nonce   uint64 `json:"nonce"`
}

//encore:api public path=/v1/assets/:id/nonce method=GET
func (s *Service) GetNonce(ctx context.Context, id uint64) (*NonceResponse, error) {
	nonce, err := s.ledger.GetNonce(ctx, id)
	switch {
	case errors.Is(err, ledger.ErrAssetNotFound):
		return nil, model.NotFound("asset not found")
	case err != nil:
		rlog.Error("failed to read permit nonce", "asset_id", id, "error", err)
		return nil, model.Internal("failed to read nonce")
	}

	return &NonceResponse{
		AssetID: id,
		Nonce:   nonce,
	}, nil
}
