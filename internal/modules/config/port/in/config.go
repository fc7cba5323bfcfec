package in

import (
	"context"

	"pomo/internal/modules/config/dto"
)

type Usecase interface {
	Get(ctx context.Context, key string) (dto.Entry, error)
	Set(ctx context.Context, key, value string) (dto.Entry, error)
	List(ctx context.Context) ([]dto.Entry, error)

	// Typed views of the effective values, defaults applied.
	Goal(ctx context.Context) (int, error)
	GraceMin(ctx context.Context) (int, error)
	NotifyEnabled(ctx context.Context) (bool, error)
	StreakZeroGoalMet(ctx context.Context) (bool, error)
}
