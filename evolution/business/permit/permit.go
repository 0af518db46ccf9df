package permit

import (
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"

	"elementalsouls.app/evolution/model"
)

const (
	DomainName    = "LevelUpGateway"
	DomainVersion = "1"
	PrimaryType   = "LevelUpPermit"

	MaxTTL = time.Hour
)

var (
	ErrInvalidTTL       = errors.New("permit ttl must be positive")
	ErrInvalidSignature = errors.New("invalid permit signature")
)

var types = apitypes.Types{
	"EIP712Domain": {
		{Name: "name", Type: "string"},
		{Name: "version", Type: "string"},
		{Name: "chainId", Type: "uint256"},
		{Name: "verifyingContract", Type: "address"},
	},
	PrimaryType: {
		{Name: "owner", Type: "address"},
		{Name: "tokenId", Type: "uint256"},
		{Name: "fromLevel", Type: "uint8"},
		{Name: "toLevel", Type: "uint8"},
		{Name: "deadline", Type: "uint256"},
		{Name: "nonce", Type: "uint256"},
		{Name: "newUri", Type: "string"},
	},
}

// Domain separates permits of one gateway deployment from every other.
type Domain struct {
	Name              string
	Version           string
	ChainID           int64
	VerifyingContract common.Address
}

func NewDomain(chainID int64, verifyingContract common.Address) Domain {
	return Domain{
		Name:              DomainName,
		Version:           DomainVersion,
		ChainID:           chainID,
		VerifyingContract: verifyingContract,
	}
}

// Issuer signs evolution permits. It keeps no state between calls.
type Issuer struct {
	key    *ecdsa.PrivateKey
	signer common.Address
	domain Domain
	maxTTL time.Duration
	now    func() time.Time
}

func NewIssuer(key *ecdsa.PrivateKey, domain Domain, maxTTL time.Duration) *Issuer {
	if maxTTL <= 0 || maxTTL > MaxTTL {
		maxTTL = MaxTTL
	}
	return &Issuer{
		key:    key,
		signer: crypto.PubkeyToAddress(key.PublicKey),
		domain: domain,
		maxTTL: maxTTL,
		now:    time.Now,
	}
}

func (i *Issuer) Address() common.Address { return i.signer }

func (i *Issuer) Domain() Domain { return i.domain }

// Request is everything Issue needs besides the clock.
type Request struct {
	Owner     common.Address
	AssetID   uint64
	FromLevel int
	ToLevel   int
	Nonce     uint64
	NewURI    string
	TTL       time.Duration
}

// Issue fixes the deadline at now+ttl, clamping ttl to the issuer maximum,
// and signs the resulting permit.
func (i *Issuer) Issue(req Request) (*model.SignedPermit, error) {
	if req.TTL <= 0 {
		return nil, ErrInvalidTTL
	}
	ttl := min(req.TTL, i.maxTTL)

	return i.Sign(model.Permit{
		Owner:     req.Owner.Hex(),
		AssetID:   req.AssetID,
		FromLevel: req.FromLevel,
		ToLevel:   req.ToLevel,
		Deadline:  uint64(i.now().Add(ttl).Unix()),
		Nonce:     req.Nonce,
		NewURI:    req.NewURI,
	})
}

// Sign produces the typed-data signature and the calldata payload for p.
// Signing is deterministic: the same permit always yields the same bytes.
func (i *Issuer) Sign(p model.Permit) (*model.SignedPermit, error) {
	hash, err := Hash(i.domain, p)
	if err != nil {
		return nil, err
	}

	sig, err := crypto.Sign(hash, i.key)
	if err != nil {
		return nil, fmt.Errorf("sign permit: %w", err)
	}
	sig[crypto.RecoveryIDOffset] += 27

	payload, err := EncodeForGateway(p, sig)
	if err != nil {
		return nil, err
	}

	return &model.SignedPermit{
		Permit:       p,
		Signature:    hexutil.Encode(sig),
		BytesForData: hexutil.Encode(payload),
		Signer:       i.signer.Hex(),
	}, nil
}

// Hash returns the EIP-712 digest of p under domain.
func Hash(domain Domain, p model.Permit) ([]byte, error) {
	if !common.IsHexAddress(p.Owner) {
		return nil, fmt.Errorf("invalid owner address %q", p.Owner)
	}
	if p.FromLevel < 0 || p.FromLevel > 255 || p.ToLevel < 0 || p.ToLevel > 255 {
		return nil, fmt.Errorf("level out of range: %d -> %d", p.FromLevel, p.ToLevel)
	}

	typedData := apitypes.TypedData{
		Types:       types,
		PrimaryType: PrimaryType,
		Domain: apitypes.TypedDataDomain{
			Name:              domain.Name,
			Version:           domain.Version,
			ChainId:           math.NewHexOrDecimal256(domain.ChainID),
			VerifyingContract: domain.VerifyingContract.Hex(),
		},
		Message: apitypes.TypedDataMessage{
			"owner":     common.HexToAddress(p.Owner).Hex(),
			"tokenId":   strconv.FormatUint(p.AssetID, 10),
			"fromLevel": strconv.Itoa(p.FromLevel),
			"toLevel":   strconv.Itoa(p.ToLevel),
			"deadline":  strconv.FormatUint(p.Deadline, 10),
			"nonce":     strconv.FormatUint(p.Nonce, 10),
			"newUri":    p.NewURI,
		},
	}

	hash, _, err := apitypes.TypedDataAndHash(typedData)
	if err != nil {
		return nil, fmt.Errorf("hash permit: %w", err)
	}
	return hash, nil
}

// Verify recovers the signer of sig over p. A tampered permit recovers a
// different address rather than failing.
func Verify(domain Domain, p model.Permit, sig []byte) (common.Address, error) {
	if len(sig) != crypto.SignatureLength {
		return common.Address{}, ErrInvalidSignature
	}
	hash, err := Hash(domain, p)
	if err != nil {
		return common.Address{}, err
	}

	normalized := make([]byte, len(sig))
	copy(normalized, sig)
	if normalized[crypto.RecoveryIDOffset] >= 27 {
		normalized[crypto.RecoveryIDOffset] -= 27
	}

	pub, err := crypto.SigToPub(hash, normalized)
	if err != nil {
		return common.Address{}, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}
	return crypto.PubkeyToAddress(*pub), nil
}

type gatewayPermit struct {
	Owner     common.Address
	TokenId   *big.Int
	FromLevel uint8
	ToLevel   uint8
	Deadline  *big.Int
	Nonce     *big.Int
	NewUri    string
}

var gatewayArgs = func() abi.Arguments {
	tuple, err := abi.NewType("tuple", "", []abi.ArgumentMarshaling{
		{Name: "owner", Type: "address"},
		{Name: "tokenId", Type: "uint256"},
		{Name: "fromLevel", Type: "uint8"},
		{Name: "toLevel", Type: "uint8"},
		{Name: "deadline", Type: "uint256"},
		{Name: "nonce", Type: "uint256"},
		{Name: "newUri", Type: "string"},
	})
	if err != nil {
		panic(err)
	}
	bytesType, err := abi.NewType("bytes", "", nil)
	if err != nil {
		panic(err)
	}
	return abi.Arguments{{Name: "permit", Type: tuple}, {Name: "signature", Type: bytesType}}
}()

// EncodeForGateway ABI-encodes (permit, signature) as the gateway expects it
// in the data argument of a transfer.
func EncodeForGateway(p model.Permit, sig []byte) ([]byte, error) {
	payload, err := gatewayArgs.Pack(gatewayPermit{
		Owner:     common.HexToAddress(p.Owner),
		TokenId:   new(big.Int).SetUint64(p.AssetID),
		FromLevel: uint8(p.FromLevel),
		ToLevel:   uint8(p.ToLevel),
		Deadline:  new(big.Int).SetUint64(p.Deadline),
		Nonce:     new(big.Int).SetUint64(p.Nonce),
		NewUri:    p.NewURI,
	}, sig)
	if err != nil {
		return nil, fmt.Errorf("encode permit: %w", err)
	}
	return payload, nil
}
