package evolution

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"encore.dev/beta/errs"

	"elementalsouls.app/evolution/business/lock"
	"elementalsouls.app/evolution/business/permit"
	"elementalsouls.app/evolution/domain"
	"elementalsouls.app/evolution/ledger"
	"elementalsouls.app/evolution/mocks/business/job_business"
	"elementalsouls.app/evolution/mocks/business/snapshot_business"
	"elementalsouls.app/evolution/mocks/contentstore/content_store"
	"elementalsouls.app/evolution/mocks/ledger/ledger_client"
	"elementalsouls.app/evolution/mocks/repository/draft_repo"
	"elementalsouls.app/evolution/mocks/repository/evolution_repo"
	"elementalsouls.app/evolution/model"
	"elementalsouls.app/evolution/repository/drafts"
	"elementalsouls.app/evolution/repository/evolutions"
)

const assetID = uint64(42)

var (
	ownerA  = common.HexToAddress("0x00000000000000000000000000000000000a11ce")
	gateway = common.HexToAddress("0x000000000000000000000000000000000000ba7e")
	burnTx  = common.HexToHash("0xb0")
	mintTx  = common.HexToHash("0xa1")
)

type fixture struct {
	ledger    *ledger_client.MockClient
	store     *content_store.MockStore
	drafts    *draft_repo.MockQuerier
	evos      *evolution_repo.MockQuerier
	jobs      *job_business.MockBusiness
	snapshots *snapshot_business.MockBusiness
	issuer    *permit.Issuer
	biz       Business

	// snapshotElement is what the asset snapshot records; empty means no snapshot.
	snapshotElement model.Element
}

func newFixture(t *testing.T, ctrl *gomock.Controller) *fixture {
	return newFixtureWithLockTTL(t, ctrl, 30*time.Second)
}

func newFixtureWithLockTTL(t *testing.T, ctrl *gomock.Controller, lockTTL time.Duration) *fixture {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	f := &fixture{
		ledger:    ledger_client.NewMockClient(ctrl),
		store:     content_store.NewMockStore(ctrl),
		drafts:    draft_repo.NewMockQuerier(ctrl),
		evos:      evolution_repo.NewMockQuerier(ctrl),
		jobs:      job_business.NewMockBusiness(ctrl),
		snapshots: snapshot_business.NewMockBusiness(ctrl),
		issuer:    permit.NewIssuer(key, permit.NewDomain(31337, gateway), time.Hour),

		snapshotElement: model.ElementFire,
	}
	f.snapshots.EXPECT().Get(gomock.Any(), assetID).
		DoAndReturn(func(_ context.Context, id uint64) (*model.AssetSnapshot, error) {
			if f.snapshotElement == "" {
				return nil, model.NotFound("asset snapshot not found")
			}
			return &model.AssetSnapshot{AssetID: id, Level: 2, Element: f.snapshotElement}, nil
		}).AnyTimes()
	f.biz = NewEvolutionBusiness(Dependencies{
		StateMachine:  domain.NewEvolutionStateMachine(lock.NewManager(lock.NewMemoryStore(time.Now)), lockTTL),
		Ledger:        f.ledger,
		ContentStore:  f.store,
		Issuer:        f.issuer,
		DraftRepo:     f.drafts,
		EvolutionRepo: f.evos,
		Jobs:          f.jobs,
		Snapshots:     f.snapshots,
	}, Options{RunTimeout: 5 * time.Second})
	return f
}

func fireAttr() model.Attribute {
	return model.Attribute{TraitType: TraitElement, Value: json.RawMessage(`"Fire"`)}
}

func permitRequest() model.EvolutionRequest {
	return model.EvolutionRequest{
		AssetID:    assetID,
		Wallet:     ownerA.Hex(),
		Mode:       model.EvolutionModePermit,
		ToLevel:    3,
		ImageRef:   "ipfs://bafyimage",
		Attributes: []model.Attribute{fireAttr()},
		TTL:        10 * time.Minute,
	}
}

func (f *fixture) expectValidLedger(times int) {
	f.ledger.EXPECT().GetOwner(gomock.Any(), assetID).Return(ownerA, nil).Times(times)
	f.ledger.EXPECT().GetLevel(gomock.Any(), assetID).Return(2, nil).Times(times)
}

func TestEvolve_PermitFromLevelTwoToThree(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newFixture(t, ctrl)

	f.expectValidLedger(2)
	f.ledger.EXPECT().GetNonce(gomock.Any(), assetID).Return(uint64(7), nil).Times(2)
	f.store.EXPECT().PutJSON(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, v any) (string, error) {
			metadata := v.(model.Metadata)
			assert.Equal(t, "Elemental Soul Lv.3 (Fire)", metadata.Name)
			assert.Equal(t, "ipfs://bafyimage", metadata.Image)
			return "ipfs://bafymeta", nil
		}).Times(2)
	f.drafts.EXPECT().UpsertDraft(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg drafts.UpsertDraftParams) (drafts.MetadataDraft, error) {
			assert.Equal(t, "ipfs://bafymeta", arg.Uri)
			assert.Equal(t, int32(3), arg.Level)
			assert.Equal(t, "Fire", arg.Element)
			return drafts.MetadataDraft{Uri: arg.Uri}, nil
		}).Times(2)
	f.evos.EXPECT().CreateEvolution(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg evolutions.CreateEvolutionParams) (evolutions.Evolution, error) {
			assert.Equal(t, string(model.EvolutionStatusPermitIssued), arg.Status)
			return evolutions.Evolution{}, nil
		}).Times(2)

	before := time.Now()
	outcome, err := f.biz.Evolve(context.Background(), permitRequest())
	after := time.Now()
	require.NoError(t, err)
	require.NotNil(t, outcome.Permit)
	assert.Nil(t, outcome.Commit)

	p := outcome.Permit.Permit
	assert.Equal(t, 2, p.FromLevel)
	assert.Equal(t, 3, p.ToLevel)
	assert.Equal(t, uint64(7), p.Nonce)
	assert.Equal(t, "ipfs://bafymeta", p.NewURI)
	assert.GreaterOrEqual(t, p.Deadline, uint64(before.Add(10*time.Minute).Unix()))
	assert.LessOrEqual(t, p.Deadline, uint64(after.Add(10*time.Minute).Unix()))

	sig, err := hexutil.Decode(outcome.Permit.Signature)
	require.NoError(t, err)
	signer, err := permit.Verify(f.issuer.Domain(), p, sig)
	require.NoError(t, err)
	assert.Equal(t, f.issuer.Address(), signer)

	// The lock was released: an immediate second request goes through.
	_, err = f.biz.Evolve(context.Background(), permitRequest())
	assert.NoError(t, err)
}

func TestEvolve_ConcurrentRequestForSameAssetIsBusy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newFixture(t, ctrl)

	entered := make(chan struct{})
	proceed := make(chan struct{})

	f.ledger.EXPECT().GetOwner(gomock.Any(), assetID).Return(ownerA, nil).AnyTimes()
	f.ledger.EXPECT().GetLevel(gomock.Any(), assetID).Return(2, nil).AnyTimes()
	f.ledger.EXPECT().GetNonce(gomock.Any(), assetID).Return(uint64(1), nil).Times(1)
	f.store.EXPECT().PutJSON(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ any) (string, error) {
			close(entered)
			<-proceed
			return "ipfs://slow", nil
		}).Times(1)
	f.drafts.EXPECT().UpsertDraft(gomock.Any(), gomock.Any()).Return(drafts.MetadataDraft{}, nil).Times(1)
	f.evos.EXPECT().CreateEvolution(gomock.Any(), gomock.Any()).Return(evolutions.Evolution{}, nil).Times(1)

	type result struct {
		outcome *model.EvolutionOutcome
		err     error
	}
	first := make(chan result, 1)
	go func() {
		outcome, err := f.biz.Evolve(context.Background(), permitRequest())
		first <- result{outcome, err}
	}()

	<-entered
	_, err := f.biz.Evolve(context.Background(), permitRequest())
	require.Error(t, err)
	assert.Equal(t, model.KindResourceBusy, model.KindOf(err))

	close(proceed)
	res := <-first
	require.NoError(t, res.err)
	assert.Equal(t, "ipfs://slow", res.outcome.Permit.Permit.NewURI)
}

func TestEvolve_LockOutlivesItsTTLDuringSlowConfirmation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newFixtureWithLockTTL(t, ctrl, 60*time.Millisecond)

	newID := uint64(43)
	entered := make(chan struct{})
	proceed := make(chan struct{})

	f.ledger.EXPECT().GetOwner(gomock.Any(), assetID).Return(ownerA, nil).AnyTimes()
	f.ledger.EXPECT().GetLevel(gomock.Any(), assetID).Return(2, nil).AnyTimes()
	f.expectMetadataBuilt()
	f.ledger.EXPECT().Burn(gomock.Any(), assetID).Return(burnTx, nil)
	f.ledger.EXPECT().WaitForConfirmation(gomock.Any(), burnTx).
		DoAndReturn(func(_ context.Context, _ common.Hash) (*ledger.Receipt, error) {
			close(entered)
			<-proceed
			return &ledger.Receipt{TxHash: burnTx}, nil
		})
	f.ledger.EXPECT().Mint(gomock.Any(), ownerA, 3, "ipfs://meta").Return(mintTx, newID, nil)
	f.ledger.EXPECT().WaitForConfirmation(gomock.Any(), mintTx).Return(&ledger.Receipt{TxHash: mintTx, MintedAssetID: &newID}, nil)
	f.snapshots.EXPECT().Remove(gomock.Any(), assetID).Return(nil)
	f.snapshots.EXPECT().Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, snap model.AssetSnapshot) (*model.AssetSnapshot, error) {
			return &snap, nil
		})
	f.drafts.EXPECT().DeleteDraft(gomock.Any(), "ipfs://meta").Return(nil)
	f.expectRecorded(model.EvolutionStatusCommitted)

	done := make(chan error, 1)
	go func() {
		_, err := f.biz.Evolve(context.Background(), directRequest())
		done <- err
	}()

	<-entered
	time.Sleep(250 * time.Millisecond)

	_, err := f.biz.Evolve(context.Background(), directRequest())
	require.Error(t, err)
	assert.Equal(t, model.KindResourceBusy, model.KindOf(err))

	close(proceed)
	require.NoError(t, <-done)
}

func TestEvolve_CallerElementSeedsAssetWithoutSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newFixture(t, ctrl)
	f.snapshotElement = ""

	f.expectValidLedger(1)
	f.store.EXPECT().PutJSON(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, v any) (string, error) {
			assert.Equal(t, "Elemental Soul Lv.3 (Fire)", v.(model.Metadata).Name)
			return "ipfs://meta", nil
		})
	f.drafts.EXPECT().UpsertDraft(gomock.Any(), gomock.Any()).Return(drafts.MetadataDraft{}, nil)
	f.ledger.EXPECT().GetNonce(gomock.Any(), assetID).Return(uint64(0), nil)
	f.evos.EXPECT().CreateEvolution(gomock.Any(), gomock.Any()).Return(evolutions.Evolution{}, nil)

	_, err := f.biz.Evolve(context.Background(), permitRequest())
	assert.NoError(t, err)
}

func TestEvolve_ValidationHappensBeforeAnySideEffect(t *testing.T) {
	other := common.HexToAddress("0x0000000000000000000000000000000000000b0b")
	imageRef := "ipfs://bafyjob"

	testCases := []struct {
		name         string
		mutate       func(r *model.EvolutionRequest)
		setup        func(f *fixture)
		expectedKind model.ErrorKind
	}{
		{
			name:         "unknown_mode",
			mutate:       func(r *model.EvolutionRequest) { r.Mode = "teleport" },
			expectedKind: model.KindInvalidRequest,
		},
		{
			name:         "beyond_max_level",
			mutate:       func(r *model.EvolutionRequest) { r.ToLevel = model.MaxLevel + 1 },
			expectedKind: model.KindInvalidRequest,
		},
		{
			name: "asset_missing",
			setup: func(f *fixture) {
				f.ledger.EXPECT().GetOwner(gomock.Any(), assetID).Return(common.Address{}, ledger.ErrAssetNotFound)
			},
			expectedKind: model.KindNotFound,
		},
		{
			name: "not_the_owner",
			setup: func(f *fixture) {
				f.ledger.EXPECT().GetOwner(gomock.Any(), assetID).Return(other, nil)
			},
			expectedKind: model.KindInvalidRequest,
		},
		{
			name:   "skips_a_level",
			mutate: func(r *model.EvolutionRequest) { r.ToLevel = 4 },
			setup: func(f *fixture) {
				f.expectValidLedger(1)
			},
			expectedKind: model.KindInvalidRequest,
		},
		{
			name:   "image_ref_not_ipfs",
			mutate: func(r *model.EvolutionRequest) { r.ImageRef = "https://example.com/a.png" },
			setup: func(f *fixture) {
				f.expectValidLedger(1)
			},
			expectedKind: model.KindInvalidRequest,
		},
		{
			name: "image_job_still_running",
			mutate: func(r *model.EvolutionRequest) {
				r.ImageRef = ""
				r.ImageJobID = "job-1"
			},
			setup: func(f *fixture) {
				f.expectValidLedger(1)
				f.jobs.EXPECT().GetImageJob(gomock.Any(), "job-1").Return(&model.GenerationJob{
					JobID: "job-1", Requester: ownerA.Hex(), Status: model.JobStatusProcessing,
				}, nil)
			},
			expectedKind: model.KindInvalidRequest,
		},
		{
			name: "image_job_of_another_wallet",
			mutate: func(r *model.EvolutionRequest) {
				r.ImageRef = ""
				r.ImageJobID = "job-1"
			},
			setup: func(f *fixture) {
				f.expectValidLedger(1)
				f.jobs.EXPECT().GetImageJob(gomock.Any(), "job-1").Return(&model.GenerationJob{
					JobID: "job-1", Requester: other.Hex(), Status: model.JobStatusCompleted, ImageRef: &imageRef,
				}, nil)
			},
			expectedKind: model.KindNotFound,
		},
		{
			name:   "element_unknown_everywhere",
			mutate: func(r *model.EvolutionRequest) { r.Attributes = nil },
			setup: func(f *fixture) {
				f.expectValidLedger(1)
				f.snapshotElement = ""
			},
			expectedKind: model.KindInvalidRequest,
		},
		{
			name: "element_not_recognised",
			mutate: func(r *model.EvolutionRequest) {
				r.Attributes = []model.Attribute{{TraitType: TraitElement, Value: json.RawMessage(`"Metal"`)}}
			},
			setup: func(f *fixture) {
				f.expectValidLedger(1)
				f.snapshotElement = ""
			},
			expectedKind: model.KindInvalidRequest,
		},
		{
			name: "caller_cannot_change_element",
			mutate: func(r *model.EvolutionRequest) {
				r.Attributes = []model.Attribute{{TraitType: TraitElement, Value: json.RawMessage(`"Water"`)}}
			},
			setup: func(f *fixture) {
				f.expectValidLedger(1)
			},
			expectedKind: model.KindInvalidRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			f := newFixture(t, ctrl)
			if tc.setup != nil {
				tc.setup(f)
			}

			req := permitRequest()
			if tc.mutate != nil {
				tc.mutate(&req)
			}

			// No content store, draft or ledger write expectations: any such call fails the test.
			_, err := f.biz.Evolve(context.Background(), req)
			require.Error(t, err)
			assert.Equal(t, tc.expectedKind, model.KindOf(err))
		})
	}
}

func TestEvolve_ElementComesFromSnapshotAndImageFromJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newFixture(t, ctrl)
	f.snapshotElement = model.ElementWater

	imageRef := "ipfs://bafyjob"
	f.expectValidLedger(1)
	f.jobs.EXPECT().GetImageJob(gomock.Any(), "job-9").Return(&model.GenerationJob{
		JobID: "job-9", Requester: "0x00000000000000000000000000000000000A11CE", Status: model.JobStatusCompleted, ImageRef: &imageRef,
	}, nil)
	f.store.EXPECT().PutJSON(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, v any) (string, error) {
			metadata := v.(model.Metadata)
			assert.Equal(t, "Elemental Soul Lv.3 (Water)", metadata.Name)
			assert.Equal(t, imageRef, metadata.Image)
			return "ipfs://meta", nil
		})
	f.drafts.EXPECT().UpsertDraft(gomock.Any(), gomock.Any()).Return(drafts.MetadataDraft{}, nil)
	f.ledger.EXPECT().GetNonce(gomock.Any(), assetID).Return(uint64(0), nil)
	f.evos.EXPECT().CreateEvolution(gomock.Any(), gomock.Any()).Return(evolutions.Evolution{}, nil)

	req := permitRequest()
	req.ImageRef = ""
	req.ImageJobID = "job-9"
	req.Attributes = []model.Attribute{{TraitType: "Aura", Value: json.RawMessage(`"blue"`)}}

	_, err := f.biz.Evolve(context.Background(), req)
	assert.NoError(t, err)
}

func directRequest() model.EvolutionRequest {
	req := permitRequest()
	req.Mode = model.EvolutionModeDirect
	req.TTL = 0
	return req
}

func (f *fixture) expectMetadataBuilt() {
	f.store.EXPECT().PutJSON(gomock.Any(), gomock.Any()).Return("ipfs://meta", nil)
	f.drafts.EXPECT().UpsertDraft(gomock.Any(), gomock.Any()).Return(drafts.MetadataDraft{}, nil)
}

func (f *fixture) expectRecorded(status model.EvolutionStatus) {
	f.evos.EXPECT().CreateEvolution(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg evolutions.CreateEvolutionParams) (evolutions.Evolution, error) {
			if arg.Status != string(status) {
				return evolutions.Evolution{}, errors.New("unexpected status " + arg.Status)
			}
			return evolutions.Evolution{}, nil
		})
}

func TestEvolve_DirectCommit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newFixture(t, ctrl)

	newID := uint64(43)
	f.expectValidLedger(1)
	f.expectMetadataBuilt()
	gomock.InOrder(
		f.ledger.EXPECT().Burn(gomock.Any(), assetID).Return(burnTx, nil),
		f.ledger.EXPECT().WaitForConfirmation(gomock.Any(), burnTx).Return(&ledger.Receipt{TxHash: burnTx, BlockNumber: 10}, nil),
		f.ledger.EXPECT().Mint(gomock.Any(), ownerA, 3, "ipfs://meta").Return(mintTx, uint64(0), nil),
		f.ledger.EXPECT().WaitForConfirmation(gomock.Any(), mintTx).Return(&ledger.Receipt{TxHash: mintTx, BlockNumber: 11, MintedAssetID: &newID}, nil),
	)
	f.snapshots.EXPECT().Remove(gomock.Any(), assetID).Return(nil)
	f.snapshots.EXPECT().Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, snap model.AssetSnapshot) (*model.AssetSnapshot, error) {
			assert.Equal(t, newID, snap.AssetID)
			assert.Equal(t, 3, snap.Level)
			assert.Equal(t, model.ElementFire, snap.Element)
			assert.Equal(t, "ipfs://bafyimage", snap.ImageRef)
			return &snap, nil
		})
	f.drafts.EXPECT().DeleteDraft(gomock.Any(), "ipfs://meta").Return(nil)
	f.expectRecorded(model.EvolutionStatusCommitted)

	outcome, err := f.biz.Evolve(context.Background(), directRequest())
	require.NoError(t, err)
	require.NotNil(t, outcome.Commit)
	assert.Equal(t, assetID, outcome.Commit.OldAssetID)
	assert.Equal(t, newID, outcome.Commit.NewAssetID)
	assert.Equal(t, uint64(11), outcome.Commit.BlockNumber)
	assert.Equal(t, burnTx.Hex(), outcome.Commit.BurnTxHash)
}

func TestEvolve_DirectFailures(t *testing.T) {
	testCases := []struct {
		name          string
		setup         func(f *fixture)
		expectedKind  model.ErrorKind
		expectBurnTx  bool
		expectMintTx  bool
		expectedState model.EvolutionStatus
	}{
		{
			name: "burn_reverted_is_a_plain_failure",
			setup: func(f *fixture) {
				f.ledger.EXPECT().Burn(gomock.Any(), assetID).Return(burnTx, nil)
				f.ledger.EXPECT().WaitForConfirmation(gomock.Any(), burnTx).Return(nil, ledger.ErrReverted)
			},
			expectedKind: model.KindInternal,
		},
		{
			name: "burn_confirmation_timeout",
			setup: func(f *fixture) {
				f.ledger.EXPECT().Burn(gomock.Any(), assetID).Return(burnTx, nil)
				f.ledger.EXPECT().WaitForConfirmation(gomock.Any(), burnTx).Return(nil, ledger.ErrConfirmationTimeout)
				f.expectRecorded(model.EvolutionStatusTimeout)
			},
			expectedKind: model.KindTimeout,
			expectBurnTx: true,
		},
		{
			name: "mint_rejected_after_burn",
			setup: func(f *fixture) {
				f.ledger.EXPECT().Burn(gomock.Any(), assetID).Return(burnTx, nil)
				f.ledger.EXPECT().WaitForConfirmation(gomock.Any(), burnTx).Return(&ledger.Receipt{TxHash: burnTx}, nil)
				f.ledger.EXPECT().Mint(gomock.Any(), ownerA, 3, "ipfs://meta").Return(common.Hash{}, uint64(0), errors.New("insufficient funds"))
				f.expectRecorded(model.EvolutionStatusPartialFailure)
			},
			expectedKind: model.KindPartialFailure,
			expectBurnTx: true,
		},
		{
			name: "mint_reverted_after_burn",
			setup: func(f *fixture) {
				f.ledger.EXPECT().Burn(gomock.Any(), assetID).Return(burnTx, nil)
				f.ledger.EXPECT().WaitForConfirmation(gomock.Any(), burnTx).Return(&ledger.Receipt{TxHash: burnTx}, nil)
				f.ledger.EXPECT().Mint(gomock.Any(), ownerA, 3, "ipfs://meta").Return(mintTx, uint64(0), nil)
				f.ledger.EXPECT().WaitForConfirmation(gomock.Any(), mintTx).Return(nil, ledger.ErrReverted)
				f.expectRecorded(model.EvolutionStatusPartialFailure)
			},
			expectedKind: model.KindPartialFailure,
			expectBurnTx: true,
			expectMintTx: true,
		},
		{
			name: "mint_confirmation_timeout",
			setup: func(f *fixture) {
				f.ledger.EXPECT().Burn(gomock.Any(), assetID).Return(burnTx, nil)
				f.ledger.EXPECT().WaitForConfirmation(gomock.Any(), burnTx).Return(&ledger.Receipt{TxHash: burnTx}, nil)
				f.ledger.EXPECT().Mint(gomock.Any(), ownerA, 3, "ipfs://meta").Return(mintTx, uint64(0), nil)
				f.ledger.EXPECT().WaitForConfirmation(gomock.Any(), mintTx).Return(nil, ledger.ErrConfirmationTimeout)
				f.expectRecorded(model.EvolutionStatusTimeout)
			},
			expectedKind: model.KindTimeout,
			expectBurnTx: true,
			expectMintTx: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			f := newFixture(t, ctrl)
			f.expectValidLedger(1)
			f.expectMetadataBuilt()
			tc.setup(f)

			_, err := f.biz.Evolve(context.Background(), directRequest())
			require.Error(t, err)
			assert.Equal(t, tc.expectedKind, model.KindOf(err))

			var apiErr *errs.Error
			require.True(t, errors.As(err, &apiErr))
			details, _ := apiErr.Details.(model.ErrorDetails)
			if tc.expectBurnTx {
				assert.Equal(t, burnTx.Hex(), details.BurnTx)
				assert.Equal(t, assetID, details.AssetID)
			}
			if tc.expectMintTx {
				assert.Equal(t, mintTx.Hex(), details.MintTx)
			}
		})
	}
}

func TestEvolve_CallerCancellationDoesNotAbortRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newFixture(t, ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	live := func(ctx context.Context) {
		assert.NoError(t, ctx.Err())
	}
	f.ledger.EXPECT().GetOwner(gomock.Any(), assetID).
		DoAndReturn(func(ctx context.Context, _ uint64) (common.Address, error) {
			live(ctx)
			return ownerA, nil
		})
	f.ledger.EXPECT().GetLevel(gomock.Any(), assetID).Return(2, nil)
	f.store.EXPECT().PutJSON(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ any) (string, error) {
			live(ctx)
			return "ipfs://meta", nil
		})
	f.drafts.EXPECT().UpsertDraft(gomock.Any(), gomock.Any()).Return(drafts.MetadataDraft{}, nil)
	f.ledger.EXPECT().GetNonce(gomock.Any(), assetID).Return(uint64(3), nil)
	f.evos.EXPECT().CreateEvolution(gomock.Any(), gomock.Any()).Return(evolutions.Evolution{}, nil)

	outcome, err := f.biz.Evolve(ctx, permitRequest())
	require.NoError(t, err)
	assert.Equal(t, uint64(3), outcome.Permit.Permit.Nonce)
}

func TestMergeAttributes_RequiredTraitsWin(t *testing.T) {
	extra := []model.Attribute{
		{TraitType: TraitLevel, Value: json.RawMessage(`99`)},
		{TraitType: TraitElement, Value: json.RawMessage(`"Water"`)},
		{TraitType: "Aura", Value: json.RawMessage(`"gold"`)},
		{TraitType: "Aura", Value: json.RawMessage(`"silver"`)},
	}

	merged := MergeAttributes(RequiredAttributes(model.ElementFire, 4), extra)

	require.Len(t, merged, 3)
	assert.Equal(t, TraitElement, merged[0].TraitType)
	assert.JSONEq(t, `"Fire"`, string(merged[0].Value))
	assert.Equal(t, TraitLevel, merged[1].TraitType)
	assert.JSONEq(t, `4`, string(merged[1].Value))
	assert.Equal(t, "Aura", merged[2].TraitType)
	assert.JSONEq(t, `"gold"`, string(merged[2].Value))
}
