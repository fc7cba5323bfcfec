package in

import (
	"context"

	"pomo/internal/modules/report/dto"
)

type Usecase interface {
	// Today summarizes the current day and the running streak.
	Today(ctx context.Context) (dto.TodayOutput, error)

	// Week summarizes the Monday-start week containing startDay, or the
	// current week when startDay is empty.
	Week(ctx context.Context, startDay string) (dto.WeekOutput, error)

	// Heatmap buckets a calendar month; zero year/month mean now.
	Heatmap(ctx context.Context, year, month int) (dto.HeatmapOutput, error)
}
