package repository

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"elementalsouls.app/evolution/repository/drafts"
	"elementalsouls.app/evolution/repository/evolutions"
	"elementalsouls.app/evolution/repository/idempotencykeys"
	"elementalsouls.app/evolution/repository/jobs"
	"elementalsouls.app/evolution/repository/snapshots"
)

// Repository combines all domain-specific queriers
type Repository struct {
	Jobs            jobs.Querier
	Drafts          drafts.Querier
	Snapshots       snapshots.Querier
	Evolutions      evolutions.Querier
	IdempotencyKeys idempotencykeys.Querier
}

// NewRepository creates a new Repository with all domain queriers
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{
		Jobs:            jobs.New(db),
		Drafts:          drafts.New(db),
		Snapshots:       snapshots.New(db),
		Evolutions:      evolutions.New(db),
		IdempotencyKeys: idempotencykeys.New(db),
	}
}
