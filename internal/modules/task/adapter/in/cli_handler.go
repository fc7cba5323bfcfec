package in

import (
	"context"

	"pomo/internal/modules/task/dto"
	taskin "pomo/internal/modules/task/port/in"
)

type CLIHandler struct {
	usecase taskin.Usecase
}

func NewCLIHandler(usecase taskin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Add(ctx context.Context, name string) (dto.TaskOutput, error) {
	return h.usecase.Add(ctx, name)
}

func (h CLIHandler) List(ctx context.Context) ([]dto.TaskItem, error) {
	return h.usecase.List(ctx)
}
