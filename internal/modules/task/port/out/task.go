package out

import (
	"context"

	"pomo/internal/modules/task/domain"
)

type TaskStore interface {
	// Insert persists a new task. A duplicate name fails with
	// apperrors.ErrInvalidInput.
	Insert(ctx context.Context, task domain.Task) error

	// FindByName returns the task, or apperrors.ErrNotFound.
	FindByName(ctx context.Context, name string) (domain.Task, error)

	// List returns tasks newest first.
	List(ctx context.Context) ([]domain.Task, error)
}

// UsageReader aggregates completed-session totals per task id.
type UsageReader interface {
	Usage(ctx context.Context) (map[string]domain.Usage, error)
}
