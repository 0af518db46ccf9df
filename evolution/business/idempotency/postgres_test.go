package idempotency

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"elementalsouls.app/evolution/mocks/repository/idempotency_repo"
	"elementalsouls.app/evolution/model"
	"elementalsouls.app/evolution/repository/idempotencykeys"
)

func TestPostgresStore_Claim(t *testing.T) {
	testCases := []struct {
		name          string
		mockError     error
		expectClaimed bool
		expectedError string
	}{
		{name: "claimed", expectClaimed: true},
		{name: "held_by_another_request", mockError: pgx.ErrNoRows},
		{name: "database_error", mockError: errors.New("connection reset"), expectedError: "connection reset"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := idempotency_repo.NewMockQuerier(ctrl)
			expiresAt := time.Now().Add(time.Minute)
			repo.EXPECT().
				ClaimIdempotencyKey(gomock.Any(), idempotencykeys.ClaimIdempotencyKeyParams{
					Resource:    "/v1/images",
					Key:         "k",
					RequestHash: "h",
					ExpiresAt:   pgtype.Timestamptz{Time: expiresAt, Valid: true},
				}).
				Return("in_flight", tc.mockError)

			store := NewPostgresStore(repo)
			claimed, err := store.Claim(context.Background(), model.IdempotencyKey{Resource: "/v1/images", Key: "k"}, "h", expiresAt)

			if tc.expectedError != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expectClaimed, claimed)
		})
	}
}

func TestPostgresStore_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := idempotency_repo.NewMockQuerier(ctrl)
	store := NewPostgresStore(repo)
	key := model.IdempotencyKey{Resource: "/v1/assets/1/evolve", Key: "k"}

	repo.EXPECT().GetIdempotencyKey(gomock.Any(), gomock.Any()).Return(idempotencykeys.IdempotencyKey{}, pgx.ErrNoRows)
	_, err := store.Get(context.Background(), key)
	assert.ErrorIs(t, err, ErrRecordNotFound)

	repo.EXPECT().GetIdempotencyKey(gomock.Any(), idempotencykeys.GetIdempotencyKeyParams{Resource: key.Resource, Key: key.Key}).
		Return(idempotencykeys.IdempotencyKey{
			Resource:     key.Resource,
			Key:          key.Key,
			RequestHash:  "h",
			Status:       "failed",
			ErrorKind:    pgtype.Text{String: "partial_failure", Valid: true},
			ErrorMessage: pgtype.Text{String: "burned", Valid: true},
		}, nil)
	record, err := store.Get(context.Background(), key)
	assert.NoError(t, err)
	assert.Equal(t, model.IdempotencyStatusFailed, record.Status)
	assert.Equal(t, model.KindPartialFailure, record.ErrorKind)
	assert.False(t, record.Retryable)
}
