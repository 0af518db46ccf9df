package idempotency

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"elementalsouls.app/evolution/model"
	"elementalsouls.app/evolution/repository/idempotencykeys"
)

// PostgresStore is the durable Store. Claims are a single upsert guarded by
// the reclaim conditions, so concurrent claimers cannot both win.
type PostgresStore struct {
	repo idempotencykeys.Querier
}

func NewPostgresStore(repo idempotencykeys.Querier) *PostgresStore {
	return &PostgresStore{repo: repo}
}

func (s *PostgresStore) Get(ctx context.Context, key model.IdempotencyKey) (*model.IdempotencyRecord, error) {
	row, err := s.repo.GetIdempotencyKey(ctx, idempotencykeys.GetIdempotencyKeyParams{
		Resource: key.Resource,
		Key:      key.Key,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}

	return &model.IdempotencyRecord{
		Status:       model.IdempotencyStatus(row.Status),
		RequestHash:  row.RequestHash,
		Response:     row.Response,
		ErrorKind:    model.ErrorKind(row.ErrorKind.String),
		ErrorMessage: row.ErrorMessage.String,
		Retryable:    row.Retryable,
		ExpiresAt:    row.ExpiresAt.Time,
		CreatedAt:    row.CreatedAt.Time,
		UpdatedAt:    row.UpdatedAt.Time,
	}, nil
}

func (s *PostgresStore) Claim(ctx context.Context, key model.IdempotencyKey, requestHash string, expiresAt time.Time) (bool, error) {
	_, err := s.repo.ClaimIdempotencyKey(ctx, idempotencykeys.ClaimIdempotencyKeyParams{
		Resource:    key.Resource,
		Key:         key.Key,
		RequestHash: requestHash,
		ExpiresAt:   pgtype.Timestamptz{Time: expiresAt, Valid: true},
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *PostgresStore) Complete(ctx context.Context, key model.IdempotencyKey, response json.RawMessage, expiresAt time.Time) error {
	return s.repo.CompleteIdempotencyKey(ctx, idempotencykeys.CompleteIdempotencyKeyParams{
		Resource:  key.Resource,
		Key:       key.Key,
		Response:  response,
		ExpiresAt: pgtype.Timestamptz{Time: expiresAt, Valid: true},
	})
}

func (s *PostgresStore) Fail(ctx context.Context, key model.IdempotencyKey, kind model.ErrorKind, message string, retryable bool, expiresAt time.Time) error {
	return s.repo.FailIdempotencyKey(ctx, idempotencykeys.FailIdempotencyKeyParams{
		Resource:     key.Resource,
		Key:          key.Key,
		ErrorKind:    pgtype.Text{String: string(kind), Valid: kind != ""},
		ErrorMessage: pgtype.Text{String: message, Valid: true},
		Retryable:    retryable,
		ExpiresAt:    pgtype.Timestamptz{Time: expiresAt, Valid: true},
	})
}

// PurgeExpired deletes records past their expiry.
func (s *PostgresStore) PurgeExpired(ctx context.Context) (int64, error) {
	return s.repo.DeleteExpiredIdempotencyKeys(ctx)
}
