package evolution

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"elementalsouls.app/evolution/ledger"
	"elementalsouls.app/evolution/mocks/business/evolution_business"
	"elementalsouls.app/evolution/mocks/business/job_business"
	"elementalsouls.app/evolution/mocks/business/snapshot_business"
	"elementalsouls.app/evolution/mocks/ledger/ledger_client"
	"elementalsouls.app/evolution/model"
)

func TestGetAsset(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSnapshots := snapshot_business.NewMockBusiness(ctrl)
	service := &Service{
		snapshots: mockSnapshots,
	}

	mockSnapshots.EXPECT().Get(gomock.Any(), uint64(42)).Return(&model.AssetSnapshot{AssetID: 42, Level: 2}, nil)
	response, err := service.GetAsset(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, 2, response.Asset.Level)

	mockSnapshots.EXPECT().Get(gomock.Any(), uint64(9)).Return(nil, model.NotFound("asset not found"))
	_, err = service.GetAsset(context.Background(), 9)
	assert.Equal(t, model.KindNotFound, model.KindOf(err))
}

func TestListWalletAssets(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSnapshots := snapshot_business.NewMockBusiness(ctrl)
	service := &Service{
		snapshots: mockSnapshots,
	}

	testCases := []struct {
		name          string
		wallet        string
		setup         func()
		expectedKind  model.ErrorKind
		expectedCount int
	}{
		{
			name:   "owner_is_lowercased",
			wallet: testWallet,
			setup: func() {
				mockSnapshots.EXPECT().ListByOwner(gomock.Any(), "0x8ba1f109551bd432803012645ac136ddd64dba72").
					Return([]*model.AssetSnapshot{{AssetID: 1}, {AssetID: 2}}, nil)
			},
			expectedCount: 2,
		},
		{
			name:   "no_assets",
			wallet: testWallet,
			setup: func() {
				mockSnapshots.EXPECT().ListByOwner(gomock.Any(), gomock.Any()).Return(nil, nil)
			},
		},
		{
			name:         "invalid_wallet",
			wallet:       "0x123",
			setup:        func() {},
			expectedKind: model.KindInvalidRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.setup()

			response, err := service.ListWalletAssets(context.Background(), tc.wallet)
			if tc.expectedKind != "" {
				assert.Equal(t, tc.expectedKind, model.KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, response.Assets)
			assert.Len(t, response.Assets, tc.expectedCount)
		})
	}
}

func TestGetNonce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLedger := ledger_client.NewMockClient(ctrl)
	service := &Service{
		ledger: mockLedger,
	}

	testCases := []struct {
		name         string
		ledgerNonce  uint64
		ledgerError  error
		expectedKind model.ErrorKind
	}{
		{
			name:        "happy_case",
			ledgerNonce: 7,
		},
		{
			name:         "burned_asset",
			ledgerError:  ledger.ErrAssetNotFound,
			expectedKind: model.KindNotFound,
		},
		{
			name:         "rpc_error",
			ledgerError:  errors.New("connection refused"),
			expectedKind: model.KindInternal,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockLedger.EXPECT().GetNonce(gomock.Any(), uint64(42)).Return(tc.ledgerNonce, tc.ledgerError)

			response, err := service.GetNonce(context.Background(), 42)
			if tc.expectedKind != "" {
				assert.Equal(t, tc.expectedKind, model.KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.ledgerNonce, response.Nonce)
		})
	}
}

type fakeKeyPurger struct {
	purged int64
	err    error
}

func (f *fakeKeyPurger) PurgeExpired(context.Context) (int64, error) {
	return f.purged, f.err
}

func TestMaintenance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEvolutions := evolution_business.NewMockBusiness(ctrl)
	mockJobs := job_business.NewMockBusiness(ctrl)
	purger := &fakeKeyPurger{purged: 4}
	service := &Service{
		evolutions: mockEvolutions,
		jobs:       mockJobs,
		keys:       purger,
	}

	mockEvolutions.EXPECT().PurgeDrafts(gomock.Any(), time.Duration(cfg.Maintenance.DraftRetentionHours())*time.Hour).Return(int64(3), nil)
	response, err := service.PurgeDrafts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), response.Affected)

	mockJobs.EXPECT().FailStaleJobs(gomock.Any(), time.Duration(cfg.Maintenance.StaleJobMinutes())*time.Minute).Return(int64(1), nil)
	response, err = service.FailStaleImageJobs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), response.Affected)

	response, err = service.PurgeIdempotencyKeys(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(4), response.Affected)

	purger.err = errors.New("db down")
	_, err = service.PurgeIdempotencyKeys(context.Background())
	assert.Equal(t, model.KindInternal, model.KindOf(err))
}
