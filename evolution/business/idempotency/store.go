package idempotency

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"elementalsouls.app/evolution/model"
)

var ErrRecordNotFound = errors.New("idempotency record not found")

// Store persists idempotency records. Claim must be atomic: it succeeds only
// when no live record exists, the existing record has expired, or it is a
// retryable failure of the same request.
type Store interface {
	Get(ctx context.Context, key model.IdempotencyKey) (*model.IdempotencyRecord, error)
	Claim(ctx context.Context, key model.IdempotencyKey, requestHash string, expiresAt time.Time) (bool, error)
	Complete(ctx context.Context, key model.IdempotencyKey, response json.RawMessage, expiresAt time.Time) error
	Fail(ctx context.Context, key model.IdempotencyKey, kind model.ErrorKind, message string, retryable bool, expiresAt time.Time) error
}

// MemoryStore keeps records in process. Used by tests and local runs.
type MemoryStore struct {
	mu      sync.Mutex
	records map[model.IdempotencyKey]model.IdempotencyRecord
	now     func() time.Time
}

func NewMemoryStore(now func() time.Time) *MemoryStore {
	if now == nil {
		now = time.Now
	}
	return &MemoryStore{
		records: make(map[model.IdempotencyKey]model.IdempotencyRecord),
		now:     now,
	}
}

func (s *MemoryStore) Get(_ context.Context, key model.IdempotencyKey) (*model.IdempotencyRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.live(key)
	if !ok {
		return nil, ErrRecordNotFound
	}
	return &record, nil
}

func (s *MemoryStore) Claim(_ context.Context, key model.IdempotencyKey, requestHash string, expiresAt time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if record, ok := s.live(key); ok {
		reclaimable := record.Status == model.IdempotencyStatusFailed &&
			record.Retryable &&
			record.RequestHash == requestHash
		if !reclaimable {
			return false, nil
		}
	}

	now := s.now()
	s.records[key] = model.IdempotencyRecord{
		Status:      model.IdempotencyStatusInFlight,
		RequestHash: requestHash,
		ExpiresAt:   expiresAt,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return true, nil
}

func (s *MemoryStore) Complete(_ context.Context, key model.IdempotencyKey, response json.RawMessage, expiresAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.records[key]
	if !ok || record.Status != model.IdempotencyStatusInFlight {
		return nil
	}
	record.Status = model.IdempotencyStatusCompleted
	record.Response = append(json.RawMessage(nil), response...)
	record.ExpiresAt = expiresAt
	record.UpdatedAt = s.now()
	s.records[key] = record
	return nil
}

func (s *MemoryStore) Fail(_ context.Context, key model.IdempotencyKey, kind model.ErrorKind, message string, retryable bool, expiresAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.records[key]
	if !ok || record.Status != model.IdempotencyStatusInFlight {
		return nil
	}
	record.Status = model.IdempotencyStatusFailed
	record.ErrorKind = kind
	record.ErrorMessage = message
	record.Retryable = retryable
	record.ExpiresAt = expiresAt
	record.UpdatedAt = s.now()
	s.records[key] = record
	return nil
}

func (s *MemoryStore) live(key model.IdempotencyKey) (model.IdempotencyRecord, bool) {
	record, ok := s.records[key]
	if !ok {
		return record, false
	}
	if !s.now().Before(record.ExpiresAt) {
		delete(s.records, key)
		return record, false
	}
	return record, true
}
