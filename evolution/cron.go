package evolution

import (
	"context"
	"time"

	"encore.dev/cron"
	"encore.dev/rlog"

	"elementalsouls.app/evolution/model"
)

var _ = cron.NewJob("purge-metadata-drafts", cron.JobConfig{
	Title:    "Purge metadata drafts never confirmed on the ledger",
	Every:    1 * cron.Hour,
	Endpoint: PurgeDrafts,
})

var _ = cron.NewJob("fail-stale-image-jobs", cron.JobConfig{
	Title:    "Fail image jobs stuck in the queue",
	Every:    10 * cron.Minute,
	Endpoint: FailStaleImageJobs,
})

var _ = cron.NewJob("purge-idempotency-keys", cron.JobConfig{
	Title:    "Purge expired idempotency records",
	Every:    1 * cron.Hour,
	Endpoint: PurgeIdempotencyKeys,
})

type MaintenanceResponse struct {
	Affected int64 `json:"affected"`
}

//encore:api private method=POST path=/internal/maintenance/drafts/purge
func (s *Service) PurgeDrafts(ctx context.Context) (*MaintenanceResponse, error) {
	retention := time.Duration(cfg.Maintenance.DraftRetentionHours()) * time.Hour
	n, err := s.evolutions.PurgeDrafts(ctx, retention)
	if err != nil {
		return nil, err
	}
	if n > 0 {
		rlog.Info("purged metadata drafts", "count", n, "retention", retention)
	}
	return &MaintenanceResponse{Affected: n}, nil
}

//encore:api private method=POST path=/internal/maintenance/jobs/fail-stale
func (s *Service) FailStaleImageJobs(ctx context.Context) (*MaintenanceResponse, error) {
	threshold := time.Duration(cfg.Maintenance.StaleJobMinutes()) * time.Minute
	n, err := s.jobs.FailStaleJobs(ctx, threshold)
	if err != nil {
		return nil, err
	}
	if n > 0 {
		rlog.Warn("failed stale image jobs", "count", n, "threshold", threshold)
	}
	return &MaintenanceResponse{Affected: n}, nil
}

//encore:api private method=POST path=/internal/maintenance/idempotency/purge
func (s *Service) PurgeIdempotencyKeys(ctx context.Context) (*MaintenanceResponse, error) {
	n, err := s.keys.PurgeExpired(ctx)
	if err != nil {
		rlog.Error("failed to purge idempotency records", "error", err)
		return nil, model.Internal("failed to purge idempotency records")
	}
	return &MaintenanceResponse{Affected: n}, nil
}
