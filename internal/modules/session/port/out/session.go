package out

import (
	"context"
	"time"

	"pomo/internal/modules/session/domain"
)

type SessionStore interface {
	// Insert persists a new running session. When a running row already
	// exists it fails with apperrors.ErrActiveSessionExists.
	Insert(ctx context.Context, session domain.Session) error

	// Update persists a terminal transition. The write is conditional on
	// the row still being running; losing that race yields
	// apperrors.ErrNoActiveSession.
	Update(ctx context.Context, session domain.Session) error

	// Running returns the single running session, or
	// apperrors.ErrNoActiveSession.
	Running(ctx context.Context) (domain.Session, error)

	// ListBetween returns sessions with date keys in [from, to],
	// ordered by start time.
	ListBetween(ctx context.Context, from, to string) ([]domain.Session, error)

	// ListAll returns every session, newest start first.
	ListAll(ctx context.Context) ([]domain.Session, error)
}

// Notifier schedules a desktop notification for the planned end of a
// session. Implementations are best effort; failures must not affect
// the session itself.
type Notifier interface {
	Schedule(ctx context.Context, at time.Time, taskName string) error
}
