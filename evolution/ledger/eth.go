package ledger

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"

	"encore.dev/rlog"
)

const DefaultConfirmationTimeout = 2 * time.Minute

// Backend is the subset of an Ethereum RPC client the ledger needs.
type Backend interface {
	bind.ContractBackend
	bind.DeployBackend
	TransactionByHash(ctx context.Context, hash common.Hash) (*types.Transaction, bool, error)
}

type Config struct {
	ChainID             int64
	Collection          common.Address
	Gateway             common.Address
	ConfirmationTimeout time.Duration
}

type EthClient struct {
	backend        Backend
	collection     *bind.BoundContract
	collectionAddr common.Address
	collectionABI  abi.ABI
	gateway        *bind.BoundContract
	operator       *bind.TransactOpts
	confirmTimeout time.Duration
}

// Dial connects to rpcURL and binds the contracts. operatorKey pays for and
// signs direct-mode burns and mints.
func Dial(ctx context.Context, rpcURL string, operatorKey *ecdsa.PrivateKey, cfg Config) (*EthClient, error) {
	backend, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, fmt.Errorf("dial ledger rpc: %w", err)
	}
	return NewEthClient(backend, operatorKey, cfg)
}

func NewEthClient(backend Backend, operatorKey *ecdsa.PrivateKey, cfg Config) (*EthClient, error) {
	collectionABI, err := abi.JSON(strings.NewReader(collectionABI))
	if err != nil {
		return nil, fmt.Errorf("parse collection abi: %w", err)
	}
	gatewayABI, err := abi.JSON(strings.NewReader(gatewayABI))
	if err != nil {
		return nil, fmt.Errorf("parse gateway abi: %w", err)
	}

	operator, err := bind.NewKeyedTransactorWithChainID(operatorKey, big.NewInt(cfg.ChainID))
	if err != nil {
		return nil, fmt.Errorf("operator transactor: %w", err)
	}

	timeout := cfg.ConfirmationTimeout
	if timeout <= 0 {
		timeout = DefaultConfirmationTimeout
	}

	return &EthClient{
		backend:        backend,
		collection:     bind.NewBoundContract(cfg.Collection, collectionABI, backend, backend, backend),
		collectionAddr: cfg.Collection,
		collectionABI:  collectionABI,
		gateway:        bind.NewBoundContract(cfg.Gateway, gatewayABI, backend, backend, backend),
		operator:       operator,
		confirmTimeout: timeout,
	}, nil
}

func (c *EthClient) GetOwner(ctx context.Context, assetID uint64) (common.Address, error) {
	var out []interface{}
	if err := c.collection.Call(&bind.CallOpts{Context: ctx}, &out, "ownerOf", tokenID(assetID)); err != nil {
		return common.Address{}, classifyCallError(err, assetID)
	}
	return *abi.ConvertType(out[0], new(common.Address)).(*common.Address), nil
}

func (c *EthClient) GetLevel(ctx context.Context, assetID uint64) (int, error) {
	var out []interface{}
	if err := c.collection.Call(&bind.CallOpts{Context: ctx}, &out, "levelOf", tokenID(assetID)); err != nil {
		return 0, classifyCallError(err, assetID)
	}
	return int(*abi.ConvertType(out[0], new(uint8)).(*uint8)), nil
}

func (c *EthClient) GetURI(ctx context.Context, assetID uint64) (string, error) {
	var out []interface{}
	if err := c.collection.Call(&bind.CallOpts{Context: ctx}, &out, "tokenURI", tokenID(assetID)); err != nil {
		return "", classifyCallError(err, assetID)
	}
	return *abi.ConvertType(out[0], new(string)).(*string), nil
}

func (c *EthClient) GetNonce(ctx context.Context, assetID uint64) (uint64, error) {
	var out []interface{}
	if err := c.gateway.Call(&bind.CallOpts{Context: ctx}, &out, "nonces", tokenID(assetID)); err != nil {
		return 0, fmt.Errorf("read nonce of %d: %w", assetID, err)
	}
	return (*abi.ConvertType(out[0], new(*big.Int)).(**big.Int)).Uint64(), nil
}

// Mint simulates the call first to learn the id the collection will assign,
// then submits it.
func (c *EthClient) Mint(ctx context.Context, owner common.Address, level int, uri string) (common.Hash, uint64, error) {
	var out []interface{}
	opts := &bind.CallOpts{Context: ctx, From: c.operator.From}
	if err := c.collection.Call(opts, &out, "mint", owner, uint8(level), uri); err != nil {
		return common.Hash{}, 0, fmt.Errorf("simulate mint: %w", err)
	}
	newID := *abi.ConvertType(out[0], new(*big.Int)).(**big.Int)

	tx, err := c.collection.Transact(c.transactOpts(ctx), "mint", owner, uint8(level), uri)
	if err != nil {
		return common.Hash{}, 0, fmt.Errorf("submit mint: %w", err)
	}
	rlog.Info("mint submitted", "tx", tx.Hash().Hex(), "asset_id", newID.Uint64(), "owner", owner.Hex())
	return tx.Hash(), newID.Uint64(), nil
}

func (c *EthClient) Burn(ctx context.Context, assetID uint64) (common.Hash, error) {
	tx, err := c.collection.Transact(c.transactOpts(ctx), "burn", tokenID(assetID))
	if err != nil {
		return common.Hash{}, fmt.Errorf("submit burn: %w", err)
	}
	rlog.Info("burn submitted", "tx", tx.Hash().Hex(), "asset_id", assetID)
	return tx.Hash(), nil
}

func (c *EthClient) WaitForConfirmation(ctx context.Context, hash common.Hash) (*Receipt, error) {
	ctx, cancel := context.WithTimeout(ctx, c.confirmTimeout)
	defer cancel()

	receipt, err := c.waitMined(ctx, hash)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %s", ErrConfirmationTimeout, hash.Hex())
		}
		return nil, err
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return nil, fmt.Errorf("%w: %s", ErrReverted, hash.Hex())
	}

	return &Receipt{
		TxHash:        hash,
		BlockNumber:   receipt.BlockNumber.Uint64(),
		MintedAssetID: c.mintedAssetID(receipt.Logs),
	}, nil
}

func (c *EthClient) waitMined(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	tx, _, err := c.backend.TransactionByHash(ctx, hash)
	if err != nil {
		if errors.Is(err, ethereum.NotFound) {
			return nil, fmt.Errorf("transaction %s not found", hash.Hex())
		}
		return nil, err
	}
	return bind.WaitMined(ctx, c.backend, tx)
}

func (c *EthClient) transactOpts(ctx context.Context) *bind.TransactOpts {
	opts := *c.operator
	opts.Context = ctx
	return &opts
}

// mintedAssetID finds the Transfer event of the collection contract whose
// sender is the zero address. Mints of other contracts in the same
// transaction are ignored.
func (c *EthClient) mintedAssetID(logs []*types.Log) *uint64 {
	transfer := c.collectionABI.Events["Transfer"].ID
	for _, l := range logs {
		if l.Address != c.collectionAddr {
			continue
		}
		if len(l.Topics) != 4 || l.Topics[0] != transfer {
			continue
		}
		if l.Topics[1] != (common.Hash{}) {
			continue
		}
		id := new(big.Int).SetBytes(l.Topics[3].Bytes()).Uint64()
		return &id
	}
	return nil
}

func tokenID(assetID uint64) *big.Int {
	return new(big.Int).SetUint64(assetID)
}

// classifyCallError maps a reverted view call to ErrAssetNotFound; the
// collection reverts reads of burned or never-minted records.
func classifyCallError(err error, assetID uint64) error {
	if strings.Contains(err.Error(), "execution reverted") {
		return fmt.Errorf("%w: %d", ErrAssetNotFound, assetID)
	}
	return err
}
