package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/arrows94/3d-order-manager/internal/core/domain/model/kernel"

	"github.com/robfig/cron/v3"
)

// UploadScopeStore lists and removes per-order upload directories.
type UploadScopeStore interface {
	ScopesOlderThan(minAge time.Duration) ([]string, error)
	RemoveScope(scope string) error
}

// OrderFinder reports whether an order with the given id exists.
type OrderFinder interface {
	Exists(ctx context.Context, id kernel.UUID) (bool, error)
}

// UploadCleanupJob removes upload directories that never became an order.
// Uploads are written before the order row, so a failed submission leaves a
// directory behind; anything older than the retention window whose name does
// not match a stored order id gets reaped.
type UploadCleanupJob struct {
	store     UploadScopeStore
	orders    OrderFinder
	retention time.Duration
	schedule  string
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewUploadCleanupJob creates the cleanup job. Schedule is a six-field cron
// expression; retention is the minimum age of a scope before it is eligible.
func NewUploadCleanupJob(
	store UploadScopeStore,
	orders OrderFinder,
	retention time.Duration,
	schedule string,
	logger *slog.Logger,
) *UploadCleanupJob {
	return &UploadCleanupJob{
		store:     store,
		orders:    orders,
		retention: retention,
		schedule:  schedule,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "upload_cleanup_job"),
	}
}

// Start schedules the cleanup to run on the configured cron expression.
func (j *UploadCleanupJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if err := j.RunOnce(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Upload cleanup run failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Upload cleanup job started",
		"schedule", j.schedule, "retention", j.retention.String())
	return nil
}

// Stop stops the cleanup job.
func (j *UploadCleanupJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Upload cleanup job stopped")
}

// RunOnce performs a single cleanup sweep. A scope is removed when it is old
// enough and no stored order claims it; directories whose name is not an
// order id at all are treated as orphans too.
func (j *UploadCleanupJob) RunOnce(ctx context.Context) error {
	scopes, err := j.store.ScopesOlderThan(j.retention)
	if err != nil {
		return err
	}

	for _, scope := range scopes {
		orphaned, err := j.isOrphaned(ctx, scope)
		if err != nil {
			j.logger.ErrorContext(ctx, "Skipping upload scope, existence check failed",
				"scope", scope, "error", err)
			continue
		}
		if !orphaned {
			continue
		}

		if err := j.store.RemoveScope(scope); err != nil {
			j.logger.ErrorContext(ctx, "Failed to remove orphaned upload scope",
				"scope", scope, "error", err)
			continue
		}
		j.logger.InfoContext(ctx, "Removed orphaned upload scope", "scope", scope)
	}

	return nil
}

func (j *UploadCleanupJob) isOrphaned(ctx context.Context, scope string) (bool, error) {
	id, err := kernel.UUIDFromString(scope)
	if err != nil {
		// Scope directories are named after order ids; anything else did
		// not come from a submission and is safe to reap.
		return true, nil
	}

	exists, err := j.orders.Exists(ctx, id)
	if err != nil {
		return false, err
	}
	return !exists, nil
}
