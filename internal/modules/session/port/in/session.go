package in

import (
	"context"

	"pomo/internal/modules/session/dto"
)

type Usecase interface {
	Start(ctx context.Context, input dto.StartInput) (dto.StartOutput, error)
	Complete(ctx context.Context) (dto.FinishOutput, error)
	Interrupt(ctx context.Context, reason string) (dto.FinishOutput, error)
	Active(ctx context.Context) (dto.ActiveOutput, error)

	// Reconcile abandons a running session whose grace window has
	// elapsed. Every command runs it before doing its own work.
	Reconcile(ctx context.Context) (dto.ReconcileOutput, error)

	// History returns sessions whose date key falls in [from, to].
	History(ctx context.Context, from, to string) ([]dto.Record, error)

	// Export returns every session, newest start first.
	Export(ctx context.Context) ([]dto.Record, error)
}
