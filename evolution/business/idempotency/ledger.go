package idempotency

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"elementalsouls.app/evolution/model"
)

const (
	DefaultTTL         = 24 * time.Hour
	DefaultInFlightTTL = 5 * time.Minute
)

// Work is the unit of work guarded by an idempotency key. Its result must be
// JSON so that it can be replayed to later callers.
type Work func(ctx context.Context) (json.RawMessage, error)

type Options struct {
	// TTL bounds how long completed and failed outcomes are remembered.
	TTL time.Duration
	// InFlightTTL bounds how long a claim survives a crashed worker.
	InFlightTTL time.Duration
	Now         func() time.Time
}

// Ledger maps client-supplied keys to the outcome of the first request that
// used them.
type Ledger struct {
	store       Store
	ttl         time.Duration
	inFlightTTL time.Duration
	now         func() time.Time
}

func NewLedger(store Store, opts Options) *Ledger {
	if opts.TTL <= 0 {
		opts.TTL = DefaultTTL
	}
	if opts.InFlightTTL <= 0 {
		opts.InFlightTTL = DefaultInFlightTTL
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Ledger{
		store:       store,
		ttl:         opts.TTL,
		inFlightTTL: opts.InFlightTTL,
		now:         opts.Now,
	}
}

// Execute runs work at most once per key. reused reports whether result was
// replayed from an earlier completed request. Requests without a key always
// run.
func (l *Ledger) Execute(ctx context.Context, key model.IdempotencyKey, requestHash string, work Work) (bool, json.RawMessage, error) {
	if key.Key == "" {
		result, err := work(ctx)
		return false, result, err
	}

	// A lost claim race is retried once so the caller sees the winner's state.
	for range 2 {
		record, err := l.store.Get(ctx, key)
		switch {
		case errors.Is(err, ErrRecordNotFound):
		case err != nil:
			rlog.Error("failed to read idempotency record", "resource", key.Resource, "key", key.Key, "error", err)
			return false, nil, model.Internal("failed to check idempotency")
		default:
			if handled, result, err := resolve(record, requestHash); handled {
				return err == nil, result, err
			}
		}

		claimed, err := l.store.Claim(ctx, key, requestHash, l.now().Add(l.inFlightTTL))
		if err != nil {
			rlog.Error("failed to claim idempotency key", "resource", key.Resource, "key", key.Key, "error", err)
			return false, nil, model.Internal("failed to check idempotency")
		}
		if claimed {
			return l.run(ctx, key, work)
		}
	}

	return false, nil, inFlightError()
}

func (l *Ledger) run(ctx context.Context, key model.IdempotencyKey, work Work) (bool, json.RawMessage, error) {
	result, err := work(ctx)

	// The outcome must be recorded even when the caller has gone away.
	storeCtx := context.WithoutCancel(ctx)
	expiresAt := l.now().Add(l.ttl)

	if err != nil {
		kind := model.KindOf(err)
		if ferr := l.store.Fail(storeCtx, key, kind, messageOf(err), Retryable(kind), expiresAt); ferr != nil {
			rlog.Error("failed to record failed request", "resource", key.Resource, "key", key.Key, "error", ferr)
		}
		return false, nil, err
	}

	if cerr := l.store.Complete(storeCtx, key, result, expiresAt); cerr != nil {
		rlog.Error("failed to record completed request", "resource", key.Resource, "key", key.Key, "error", cerr)
	}
	return false, result, nil
}

// resolve decides what an existing record means for a new request. handled is
// false when the record may be claimed again.
func resolve(record *model.IdempotencyRecord, requestHash string) (bool, json.RawMessage, error) {
	if record.RequestHash != requestHash {
		return true, nil, model.ResourceBusy("idempotency key reused with a different request")
	}

	switch record.Status {
	case model.IdempotencyStatusCompleted:
		return true, record.Response, nil
	case model.IdempotencyStatusInFlight:
		return true, nil, inFlightError()
	case model.IdempotencyStatusFailed:
		if record.Retryable {
			return false, nil, nil
		}
		return true, nil, model.NewError(record.ErrorKind, record.ErrorMessage)
	default:
		return false, nil, nil
	}
}

// Retryable reports whether a failure of the given kind may be re-run under
// the same key. Partial failures and timeouts leave ledger state that a blind
// re-run could duplicate.
func Retryable(kind model.ErrorKind) bool {
	switch kind {
	case model.KindPartialFailure, model.KindTimeout:
		return false
	default:
		return true
	}
}

// HashRequest digests the parts that identify a request.
func HashRequest(parts ...[]byte) string {
	h := sha256.New()
	for _, p := range parts {
		h.Write(p)
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}

func inFlightError() *errs.Error {
	return model.ResourceBusy("request with this idempotency key is already in progress")
}

func messageOf(err error) string {
	var e *errs.Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
