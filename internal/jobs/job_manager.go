package jobs

import (
	"fmt"
	"log/slog"

	"shiptrack/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	sessionPurgeJob *SessionPurgeJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(sessionStore ports.SessionStore, logger *slog.Logger) *JobManager {
	return &JobManager{
		sessionPurgeJob: NewSessionPurgeJob(sessionStore, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.sessionPurgeJob.Start(); err != nil {
		return fmt.Errorf("failed to start session purge job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.sessionPurgeJob.Stop()
}
