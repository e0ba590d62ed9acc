package jobs

import (
	"context"
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	dailySalesExportJob *DailySalesExportJob
	logger              *slog.Logger
}

// NewJobManager creates a job manager. A nil job is treated as disabled.
func NewJobManager(dailySalesExportJob *DailySalesExportJob, logger *slog.Logger) *JobManager {
	return &JobManager{
		dailySalesExportJob: dailySalesExportJob,
		logger:              logger.With("component", "job_manager"),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if jm.dailySalesExportJob == nil {
		jm.logger.InfoContext(context.Background(), "Daily sales export disabled, REPORT_EXPORT_DIR is not set")
		return nil
	}

	if err := jm.dailySalesExportJob.Start(); err != nil {
		return fmt.Errorf("failed to start daily sales export job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	if jm.dailySalesExportJob != nil {
		jm.dailySalesExportJob.Stop()
	}
}
