package in

import (
	"context"

	"pomo/internal/modules/task/dto"
)

type Usecase interface {
	// Add creates a task; a duplicate name is invalid input.
	Add(ctx context.Context, name string) (dto.TaskOutput, error)

	// Ensure returns the task with the given name, creating it first if
	// needed. Session start resolves task names through this.
	Ensure(ctx context.Context, name string) (dto.TaskOutput, error)

	// List returns tasks newest first with their session totals.
	List(ctx context.Context) ([]dto.TaskItem, error)
}
