package in

import (
	"context"

	"pomo/internal/modules/renderer/dto"
	rendererin "pomo/internal/modules/renderer/port/in"
)

type CLIHandler struct {
	usecase rendererin.Usecase
}

func NewCLIHandler(usecase rendererin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) List(ctx context.Context) ([]dto.RendererInfo, error) {
	return h.usecase.List(ctx)
}

func (h CLIHandler) Doctor(ctx context.Context) ([]dto.DoctorResult, error) {
	return h.usecase.Doctor(ctx)
}
