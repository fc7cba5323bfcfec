package out

import (
	"context"

	"pomo/internal/modules/report/domain"
)

// SessionFeed supplies recorded sessions to the aggregations.
type SessionFeed interface {
	Between(ctx context.Context, from, to string) ([]domain.Session, error)
	All(ctx context.Context) ([]domain.Session, error)
}

// GoalPolicy supplies the effective goal settings.
type GoalPolicy interface {
	Goal(ctx context.Context) (int, error)
	StreakZeroGoalMet(ctx context.Context) (bool, error)
}

// Chart is the renderer-facing shape of a report.
type Chart struct {
	Kind    string // bar or heatmap
	Title   string
	Buckets []ChartBucket
}

type ChartBucket struct {
	Label string
	Value int
}

// ChartRenderer draws a chart and returns the written image path. A
// failure here is recoverable; the text report stands on its own.
type ChartRenderer interface {
	Render(ctx context.Context, chart Chart) (string, error)
}
