package in

import (
	"context"

	"pomo/internal/modules/config/dto"
	configin "pomo/internal/modules/config/port/in"
)

type CLIHandler struct {
	usecase configin.Usecase
}

func NewCLIHandler(usecase configin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Get(ctx context.Context, key string) (dto.Entry, error) {
	return h.usecase.Get(ctx, key)
}

func (h CLIHandler) Set(ctx context.Context, key, value string) (dto.Entry, error) {
	return h.usecase.Set(ctx, key, value)
}

func (h CLIHandler) List(ctx context.Context) ([]dto.Entry, error) {
	return h.usecase.List(ctx)
}
