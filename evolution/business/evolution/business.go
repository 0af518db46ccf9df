package evolution

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"encore.dev/rlog"

	"elementalsouls.app/evolution/business/job"
	"elementalsouls.app/evolution/business/permit"
	"elementalsouls.app/evolution/business/snapshot"
	"elementalsouls.app/evolution/contentstore"
	"elementalsouls.app/evolution/domain"
	"elementalsouls.app/evolution/ledger"
	"elementalsouls.app/evolution/model"
	"elementalsouls.app/evolution/repository/drafts"
	"elementalsouls.app/evolution/repository/evolutions"
)

const (
	DefaultRunTimeout = 3 * time.Minute
	DefaultPermitTTL  = 15 * time.Minute

	recordTimeout = 10 * time.Second
)

var (
	evolutionOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "evolution_outcomes_total",
		Help: "Finished evolution runs by mode and outcome",
	}, []string{"mode", "outcome"})

	partialFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "evolution_partial_failures_total",
		Help: "Direct evolutions that burned the old record but could not mint its replacement",
	})
)

type Business interface {
	// Evolve runs one evolution to completion. It keeps running when ctx is
	// cancelled, bounded by the configured run timeout instead.
	Evolve(ctx context.Context, req model.EvolutionRequest) (*model.EvolutionOutcome, error)
	ConfirmEvolution(ctx context.Context, req model.ConfirmRequest) (*model.AssetSnapshot, error)

	ListEvolutions(ctx context.Context, assetID uint64) ([]*model.EvolutionRecord, error)
	ListIncidents(ctx context.Context, limit, offset int32) ([]*model.EvolutionRecord, error)
	PurgeDrafts(ctx context.Context, olderThan time.Duration) (int64, error)
}

// Dependencies are the collaborators one evolution run sequences.
type Dependencies struct {
	StateMachine  *domain.EvolutionStateMachine
	Ledger        ledger.Client
	ContentStore  contentstore.Store
	Issuer        *permit.Issuer
	DraftRepo     drafts.Querier
	EvolutionRepo evolutions.Querier
	Jobs          job.Business
	Snapshots     snapshot.Business
}

type Options struct {
	RunTimeout time.Duration
	// PermitTTL applies when a request does not ask for a lifetime.
	PermitTTL time.Duration
}

type business struct {
	Dependencies
	runTimeout time.Duration
	permitTTL  time.Duration
	now        func() time.Time
}

func NewEvolutionBusiness(deps Dependencies, opts Options) Business {
	if opts.RunTimeout <= 0 {
		opts.RunTimeout = DefaultRunTimeout
	}
	if opts.PermitTTL <= 0 {
		opts.PermitTTL = DefaultPermitTTL
	}
	return &business{
		Dependencies: deps,
		runTimeout:   opts.RunTimeout,
		permitTTL:    opts.PermitTTL,
		now:          time.Now,
	}
}

// detach cuts ctx loose from the caller so a dropped connection cannot abort
// a run halfway through its ledger calls.
func (b *business) detach(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), b.runTimeout)
}

// record persists the outcome of a run for history and recovery tooling.
// Failing to record never fails the run itself. It still writes after the
// run deadline has passed.
func (b *business) record(ctx context.Context, params evolutions.CreateEvolutionParams) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), recordTimeout)
	defer cancel()

	if _, err := b.EvolutionRepo.CreateEvolution(ctx, params); err != nil {
		if isUniqueViolation(err) {
			rlog.Warn("asset already recorded as consumed", "asset_id", params.AssetID, "status", params.Status)
			return
		}
		rlog.Error("failed to record evolution outcome",
			"asset_id", params.AssetID,
			"status", params.Status,
			"burn_tx", params.BurnTx.String,
			"mint_tx", params.MintTx.String,
			"error", err,
		)
	}
}

func isUniqueViolation(err error) bool {
	var e *pgconn.PgError
	return errors.As(err, &e) && e.Code == pgerrcode.UniqueViolation
}

func text(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: s != ""}
}

func convertDBEvolutionToModel(dbEvo evolutions.Evolution) *model.EvolutionRecord {
	record := &model.EvolutionRecord{
		ID:         dbEvo.ID,
		AssetID:    uint64(dbEvo.AssetID),
		Owner:      dbEvo.Owner,
		FromLevel:  int(dbEvo.FromLevel),
		ToLevel:    int(dbEvo.ToLevel),
		ContentRef: dbEvo.ContentRef,
		Mode:       model.EvolutionMode(dbEvo.Mode),
		Status:     model.EvolutionStatus(dbEvo.Status),
		CreatedAt:  dbEvo.CreatedAt.Time,
		UpdatedAt:  dbEvo.UpdatedAt.Time,
	}

	if dbEvo.NewAssetID.Valid {
		id := uint64(dbEvo.NewAssetID.Int64)
		record.NewAssetID = &id
	}
	if dbEvo.BurnTx.Valid {
		record.BurnTx = &dbEvo.BurnTx.String
	}
	if dbEvo.MintTx.Valid {
		record.MintTx = &dbEvo.MintTx.String
	}
	if dbEvo.ConfirmTx.Valid {
		record.ConfirmTx = &dbEvo.ConfirmTx.String
	}
	if dbEvo.Error.Valid {
		record.Error = &dbEvo.Error.String
	}

	return record
}
