package usecase

import (
	"context"
	"fmt"
	"strconv"

	"pomo/internal/modules/report/domain"
	"pomo/internal/modules/report/dto"
	reportin "pomo/internal/modules/report/port/in"
	reportout "pomo/internal/modules/report/port/out"
	"pomo/internal/modules/report/service"
	"pomo/internal/platform/dates"
)

type Interactor struct {
	svc      *service.ReportService
	renderer reportout.ChartRenderer
}

// NewInteractor wires the report usecase. The renderer may be nil when
// no renderer plugin is configured; reports then stay text only.
func NewInteractor(svc *service.ReportService, renderer reportout.ChartRenderer) reportin.Usecase {
	return &Interactor{svc: svc, renderer: renderer}
}

func (i *Interactor) Today(ctx context.Context) (dto.TodayOutput, error) {
	bucket, streak, trailing, goal, err := i.svc.Today(ctx)
	if err != nil {
		return dto.TodayOutput{}, err
	}
	out := dto.TodayOutput{Day: dayOutput(bucket), Goal: goal, Streak: streak}
	out.ImagePath, out.RenderWarning = i.render(ctx, reportout.Chart{
		Kind:    "bar",
		Title:   fmt.Sprintf("Completed sessions to %s", bucket.Date),
		Buckets: dayBuckets(trailing),
	})
	return out, nil
}

func (i *Interactor) Week(ctx context.Context, startDay string) (dto.WeekOutput, error) {
	summary, goal, err := i.svc.Week(ctx, startDay)
	if err != nil {
		return dto.WeekOutput{}, err
	}
	out := dto.WeekOutput{
		Start:          summary.Start,
		End:            summary.End,
		Days:           make([]dto.DayOutput, 0, len(summary.Days)),
		TotalCompleted: summary.TotalCompleted,
		TotalMinutes:   summary.TotalMinutes,
		DailyAverage:   summary.DailyAverage,
		Goal:           goal,
	}
	for _, bucket := range summary.Days {
		out.Days = append(out.Days, dayOutput(bucket))
	}
	out.ImagePath, out.RenderWarning = i.render(ctx, reportout.Chart{
		Kind:    "bar",
		Title:   fmt.Sprintf("Week of %s", summary.Start),
		Buckets: dayBuckets(summary.Days),
	})
	return out, nil
}

func (i *Interactor) Heatmap(ctx context.Context, year, month int) (dto.HeatmapOutput, error) {
	heatmap, goal, err := i.svc.Heatmap(ctx, year, month)
	if err != nil {
		return dto.HeatmapOutput{}, err
	}
	out := dto.HeatmapOutput{
		Year:           heatmap.Year,
		Month:          int(heatmap.Month),
		Cells:          make([]dto.HeatmapCellOutput, 0, len(heatmap.Cells)),
		MaxCompleted:   heatmap.MaxCompleted,
		TotalCompleted: heatmap.TotalCompleted,
		TotalMinutes:   heatmap.TotalMinutes,
		ActiveDays:     heatmap.ActiveDays,
		Goal:           goal,
	}
	buckets := make([]reportout.ChartBucket, 0, len(heatmap.Cells))
	for _, cell := range heatmap.Cells {
		out.Cells = append(out.Cells, dto.HeatmapCellOutput{
			Date:      cell.Date,
			Day:       cell.Day,
			Completed: cell.Completed,
			Minutes:   cell.Minutes,
			Intensity: cell.Intensity,
			Level:     int(cell.Level),
		})
		buckets = append(buckets, reportout.ChartBucket{Label: strconv.Itoa(cell.Day), Value: cell.Completed})
	}
	out.ImagePath, out.RenderWarning = i.render(ctx, reportout.Chart{
		Kind:    "heatmap",
		Title:   fmt.Sprintf("%s %d", heatmap.Month, heatmap.Year),
		Buckets: buckets,
	})
	return out, nil
}

// render is best effort: a renderer failure leaves the text report
// intact and surfaces as a warning, never as a command error.
func (i *Interactor) render(ctx context.Context, chart reportout.Chart) (string, string) {
	if i.renderer == nil {
		return "", ""
	}
	path, err := i.renderer.Render(ctx, chart)
	if err != nil {
		return "", err.Error()
	}
	return path, ""
}

func dayOutput(bucket domain.DayBucket) dto.DayOutput {
	return dto.DayOutput{
		Date:             bucket.Date,
		CompletedCount:   bucket.CompletedCount,
		InterruptedCount: bucket.InterruptedCount,
		AbandonedCount:   bucket.AbandonedCount,
		FocusMinutes:     bucket.FocusMinutes,
		GoalMet:          bucket.GoalMet,
	}
}

func dayBuckets(buckets []domain.DayBucket) []reportout.ChartBucket {
	out := make([]reportout.ChartBucket, 0, len(buckets))
	for _, bucket := range buckets {
		label := bucket.Date
		if day, err := dates.ParseDay(bucket.Date); err == nil {
			label = day.Format("Mon")
		}
		out = append(out, reportout.ChartBucket{Label: label, Value: bucket.CompletedCount})
	}
	return out
}
