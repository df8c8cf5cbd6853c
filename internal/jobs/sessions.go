package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"pharmaevents.app/internal/repositories"
)

// SessionCleanupJob periodically removes expired sessions so the
// sessions table doesn't grow without bound.
type SessionCleanupJob struct {
	sessions *repositories.SessionRepository
}

func NewSessionCleanupJob(
	sessions *repositories.SessionRepository,
) SessionCleanupJob {
	return SessionCleanupJob{
		sessions: sessions,
	}
}

func (j SessionCleanupJob) ID() string {
	return "sessions"
}

func (j SessionCleanupJob) RunEvery() time.Duration {
	return time.Hour
}

func (j SessionCleanupJob) Run(ctx context.Context, logger *slog.Logger) error {
	deleted, err := j.sessions.DeleteExpired(ctx)
	if err != nil {
		return err
	}

	if deleted > 0 {
		logger.Debug(fmt.Sprintf("deleted %d expired sessions", deleted))
	}

	return nil
}
