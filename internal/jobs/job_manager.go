package jobs

import (
	"fmt"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	uploadCleanupJob *UploadCleanupJob
}

// NewJobManager creates a new job manager over the given jobs.
func NewJobManager(uploadCleanupJob *UploadCleanupJob) *JobManager {
	return &JobManager{
		uploadCleanupJob: uploadCleanupJob,
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.uploadCleanupJob.Start(); err != nil {
		return fmt.Errorf("failed to start upload cleanup job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.uploadCleanupJob.Stop()
}
