package in

import (
	"context"

	sessiondto "pomo/internal/modules/session/dto"
	sessionin "pomo/internal/modules/session/port/in"
)

type CLIHandler struct {
	usecase sessionin.Usecase
}

func NewCLIHandler(usecase sessionin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Start(ctx context.Context, taskName string, plannedMin int) (sessiondto.StartOutput, error) {
	return h.usecase.Start(ctx, sessiondto.StartInput{TaskName: taskName, PlannedMin: plannedMin})
}

func (h CLIHandler) Complete(ctx context.Context) (sessiondto.FinishOutput, error) {
	return h.usecase.Complete(ctx)
}

func (h CLIHandler) Interrupt(ctx context.Context, reason string) (sessiondto.FinishOutput, error) {
	return h.usecase.Interrupt(ctx, reason)
}

func (h CLIHandler) Active(ctx context.Context) (sessiondto.ActiveOutput, error) {
	return h.usecase.Active(ctx)
}

func (h CLIHandler) Reconcile(ctx context.Context) (sessiondto.ReconcileOutput, error) {
	return h.usecase.Reconcile(ctx)
}

func (h CLIHandler) Export(ctx context.Context) ([]sessiondto.Record, error) {
	return h.usecase.Export(ctx)
}
