package domain

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"encore.dev/rlog"

	"elementalsouls.app/evolution/business/lock"
	"elementalsouls.app/evolution/model"
)

type State string

const (
	StateValidating      State = "validating"
	StateLocked          State = "locked"
	StateMetadataBuilt   State = "metadata_built"
	StatePermitIssued    State = "permit_issued"
	StateLedgerCommitted State = "ledger_committed"
	StateReleased        State = "released"
)

// Every state may fall through to Released; that edge is the error path.
var transitions = map[State][]State{
	StateValidating:      {StateLocked, StateReleased},
	StateLocked:          {StateMetadataBuilt, StateReleased},
	StateMetadataBuilt:   {StatePermitIssued, StateLedgerCommitted, StateReleased},
	StatePermitIssued:    {StateReleased},
	StateLedgerCommitted: {StateReleased},
}

var stateTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "evolution_state_transitions_total",
	Help: "Evolution state machine transitions by target state",
}, []string{"state"})

// EvolutionStateMachine hands out one Run per evolution request and owns the
// per-asset lock for the lifetime of that run. The lock is renewed while the
// run holds it, so lockTTL only bounds how long a crashed holder blocks the
// asset.
type EvolutionStateMachine struct {
	locker  lock.Locker
	lockTTL time.Duration
}

func NewEvolutionStateMachine(locker lock.Locker, lockTTL time.Duration) *EvolutionStateMachine {
	if lockTTL <= 0 {
		lockTTL = lock.DefaultTTL
	}
	return &EvolutionStateMachine{locker: locker, lockTTL: lockTTL}
}

// Begin starts a run in Validating. Callers must defer Release.
func (sm *EvolutionStateMachine) Begin(assetID uint64) *Run {
	return &Run{
		assetID: assetID,
		state:   StateValidating,
		history: []State{StateValidating},
		sm:      sm,
	}
}

// Run tracks one evolution. It is not safe for concurrent use.
type Run struct {
	assetID uint64
	state   State
	history []State
	handle  *lock.Handle
	sm      *EvolutionStateMachine

	stopRenew chan struct{}
	renewDone sync.WaitGroup
	lost      atomic.Bool
}

func (r *Run) State() State { return r.state }

func (r *Run) History() []State { return slices.Clone(r.history) }

func (r *Run) Holding() bool { return r.handle != nil }

func (r *Run) Transition(to State) error {
	if !slices.Contains(transitions[r.state], to) {
		return model.Internal(fmt.Sprintf("illegal evolution transition %s -> %s", r.state, to))
	}
	r.state = to
	r.history = append(r.history, to)
	stateTransitions.WithLabelValues(string(to)).Inc()
	return nil
}

// Lock acquires the asset lock and moves to Locked. A held lock fails fast
// with ResourceBusy.
func (r *Run) Lock(ctx context.Context) error {
	if r.state != StateValidating {
		return model.Internal(fmt.Sprintf("cannot lock from state %s", r.state))
	}
	handle, err := r.sm.locker.Acquire(ctx, r.assetID, r.sm.lockTTL)
	if err != nil {
		return err
	}
	r.handle = handle
	r.keepAlive(ctx, *handle)
	return r.Transition(StateLocked)
}

// keepAlive renews the lease every third of its ttl until Release or until
// ctx is done, so a run holds the asset for as long as it is running.
func (r *Run) keepAlive(ctx context.Context, handle lock.Handle) {
	ttl := r.sm.lockTTL
	interval := max(ttl/3, time.Millisecond)
	stop := make(chan struct{})
	r.stopRenew = stop
	r.renewDone.Add(1)

	go func() {
		defer r.renewDone.Done()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-stop:
				return
			case <-ctx.Done():
				return
			case <-ticker.C:
			}

			renewCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), interval)
			err := r.sm.locker.Renew(renewCtx, &handle, ttl)
			cancel()
			if errors.Is(err, lock.ErrLockLost) {
				r.lost.Store(true)
				rlog.Error("asset lock lost while the run was holding it", "asset_id", r.assetID)
				return
			}
			if err != nil {
				rlog.Warn("failed to renew asset lock", "asset_id", r.assetID, "error", err)
			}
		}
	}()
}

// Held reports ResourceBusy once the lease has been lost to expiry.
func (r *Run) Held() error {
	if r.handle == nil || r.lost.Load() {
		return model.NewErrorWithDetails(
			model.ErrorDetails{Kind: model.KindResourceBusy, AssetID: r.assetID},
			"asset lock is no longer held",
		)
	}
	return nil
}

// Release frees the lock if held and moves to Released. It is safe to call
// more than once and runs even when ctx is already cancelled.
func (r *Run) Release(ctx context.Context) {
	if r.state == StateReleased {
		return
	}

	if r.stopRenew != nil {
		close(r.stopRenew)
		r.renewDone.Wait()
		r.stopRenew = nil
	}

	if r.handle != nil {
		releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()
		if err := r.sm.locker.Release(releaseCtx, r.handle); err != nil {
			rlog.Error("failed to release asset lock", "asset_id", r.assetID, "error", err)
		}
		r.handle = nil
	}

	_ = r.Transition(StateReleased)
}
