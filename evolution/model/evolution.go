package model

import (
	"time"
)

type EvolutionMode string

const (
	// EvolutionModePermit hands a signed permit back to the owner, who submits it to the ledger.
	EvolutionModePermit EvolutionMode = "permit"
	// EvolutionModeDirect burns the old record and mints the new one from the service operator account.
	EvolutionModeDirect EvolutionMode = "direct"
)

const MaxLevel = 10

type EvolutionRequest struct {
	AssetID    uint64
	Wallet     string
	Mode       EvolutionMode
	ToLevel    int
	ImageRef   string
	ImageJobID string
	Attributes []Attribute
	TTL        time.Duration
}

// Permit is the typed payload covered by the permit signature. Field order is significant.
type Permit struct {
	Owner     string `json:"owner"`
	AssetID   uint64 `json:"asset_id"`
	FromLevel int    `json:"from_level"`
	ToLevel   int    `json:"to_level"`
	Deadline  uint64 `json:"deadline"`
	Nonce     uint64 `json:"nonce"`
	NewURI    string `json:"new_uri"`
}

type SignedPermit struct {
	Permit       Permit `json:"permit"`
	Signature    string `json:"signature"`
	BytesForData string `json:"bytes_for_data"`
	Signer       string `json:"signer"`
}

type CommitResult struct {
	OldAssetID  uint64 `json:"old_asset_id"`
	NewAssetID  uint64 `json:"new_asset_id"`
	Level       int    `json:"level"`
	URI         string `json:"uri"`
	BurnTxHash  string `json:"burn_tx_hash"`
	MintTxHash  string `json:"mint_tx_hash"`
	BlockNumber uint64 `json:"block_number"`
}

type EvolutionOutcome struct {
	Mode   EvolutionMode `json:"mode"`
	Permit *SignedPermit `json:"permit,omitempty"`
	Commit *CommitResult `json:"commit,omitempty"`
}

type ConfirmRequest struct {
	AssetID    uint64
	Wallet     string
	ContentRef string
	TxHash     string
}

type EvolutionStatus string

const (
	EvolutionStatusPermitIssued   EvolutionStatus = "permit_issued"
	EvolutionStatusCommitted      EvolutionStatus = "committed"
	EvolutionStatusConfirmed      EvolutionStatus = "confirmed"
	EvolutionStatusPartialFailure EvolutionStatus = "partial_failure"
	EvolutionStatusTimeout        EvolutionStatus = "timeout"
)

// EvolutionRecord is the persisted outcome of one evolution attempt.
type EvolutionRecord struct {
	ID         int64           `json:"id"`
	AssetID    uint64          `json:"asset_id"`
	NewAssetID *uint64         `json:"new_asset_id,omitempty"`
	Owner      string          `json:"owner"`
	FromLevel  int             `json:"from_level"`
	ToLevel    int             `json:"to_level"`
	ContentRef string          `json:"content_ref"`
	Mode       EvolutionMode   `json:"mode"`
	Status     EvolutionStatus `json:"status"`
	BurnTx     *string         `json:"burn_tx,omitempty"`
	MintTx     *string         `json:"mint_tx,omitempty"`
	ConfirmTx  *string         `json:"confirm_tx,omitempty"`
	Error      *string         `json:"error,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}
