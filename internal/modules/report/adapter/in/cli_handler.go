package in

import (
	"context"

	"pomo/internal/modules/report/dto"
	reportin "pomo/internal/modules/report/port/in"
)

type CLIHandler struct {
	usecase reportin.Usecase
}

func NewCLIHandler(usecase reportin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Today(ctx context.Context) (dto.TodayOutput, error) {
	return h.usecase.Today(ctx)
}

func (h CLIHandler) Week(ctx context.Context, startDay string) (dto.WeekOutput, error) {
	return h.usecase.Week(ctx, startDay)
}

func (h CLIHandler) Heatmap(ctx context.Context, year, month int) (dto.HeatmapOutput, error) {
	return h.usecase.Heatmap(ctx, year, month)
}
