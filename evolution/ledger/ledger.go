// Package ledger talks to the collection and gateway contracts that hold the
// authoritative asset records.
package ledger

import (
	"context"
	"errors"

	"github.com/ethereum/go-ethereum/common"
)

var (
	ErrAssetNotFound       = errors.New("asset not found on ledger")
	ErrReverted            = errors.New("transaction reverted")
	ErrConfirmationTimeout = errors.New("timed out waiting for confirmation")
)

type Receipt struct {
	TxHash      common.Hash
	BlockNumber uint64
	// MintedAssetID is set when the transaction minted a collection record.
	MintedAssetID *uint64
}

type Client interface {
	GetOwner(ctx context.Context, assetID uint64) (common.Address, error)
	GetLevel(ctx context.Context, assetID uint64) (int, error)
	GetURI(ctx context.Context, assetID uint64) (string, error)
	GetNonce(ctx context.Context, assetID uint64) (uint64, error)
	Mint(ctx context.Context, owner common.Address, level int, uri string) (common.Hash, uint64, error)
	Burn(ctx context.Context, assetID uint64) (common.Hash, error)
	// WaitForConfirmation blocks until tx is mined. It returns ErrReverted
	// for a failed receipt and ErrConfirmationTimeout when the bounded wait
	// runs out.
	WaitForConfirmation(ctx context.Context, tx common.Hash) (*Receipt, error)
}
