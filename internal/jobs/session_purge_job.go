package jobs

import (
	"context"
	"log/slog"
	"time"

	"shiptrack/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// SessionPurgeJob deletes expired session tokens on a schedule.
// Runs hourly; expired sessions are already rejected at resolution time,
// so the purge only keeps the table from growing.
type SessionPurgeJob struct {
	store  ports.SessionStore
	cron   *cron.Cron
	logger *slog.Logger
}

// NewSessionPurgeJob creates a new job for purging expired sessions.
func NewSessionPurgeJob(store ports.SessionStore, logger *slog.Logger) *SessionPurgeJob {
	return &SessionPurgeJob{
		store:  store,
		cron:   cron.New(),
		logger: logger.With("component", "session_purge_job"),
	}
}

// Start begins the session purge job to run at the top of every hour.
func (j *SessionPurgeJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * *", func() {
		ctx := context.Background()

		deleted, err := j.store.DeleteExpired(ctx, time.Now().UTC())
		if err != nil {
			j.logger.ErrorContext(ctx, "Session purge failed", "error", err)
			return
		}

		if deleted > 0 {
			j.logger.InfoContext(ctx, "Expired sessions purged", "count", deleted)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Session purge job started (running hourly)")
	return nil
}

// Stop stops the session purge job.
func (j *SessionPurgeJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Session purge job stopped")
}
