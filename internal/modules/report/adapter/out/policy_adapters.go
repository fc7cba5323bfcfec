package out

import (
	"context"

	configin "pomo/internal/modules/config/port/in"
	rendererdto "pomo/internal/modules/renderer/dto"
	rendererin "pomo/internal/modules/renderer/port/in"
	reportout "pomo/internal/modules/report/port/out"
)

// ConfigGoalPolicy reads the effective goal settings from the config
// module.
type ConfigGoalPolicy struct {
	cfg configin.Usecase
}

func NewConfigGoalPolicy(cfg configin.Usecase) reportout.GoalPolicy {
	return &ConfigGoalPolicy{cfg: cfg}
}

func (a *ConfigGoalPolicy) Goal(ctx context.Context) (int, error) {
	return a.cfg.Goal(ctx)
}

func (a *ConfigGoalPolicy) StreakZeroGoalMet(ctx context.Context) (bool, error) {
	return a.cfg.StreakZeroGoalMet(ctx)
}

// PluginChartRenderer forwards charts to the renderer module's default
// plugin.
type PluginChartRenderer struct {
	renderer rendererin.Usecase
}

func NewPluginChartRenderer(renderer rendererin.Usecase) reportout.ChartRenderer {
	return &PluginChartRenderer{renderer: renderer}
}

func (a *PluginChartRenderer) Render(ctx context.Context, chart reportout.Chart) (string, error) {
	buckets := make([]rendererdto.Bucket, 0, len(chart.Buckets))
	for _, bucket := range chart.Buckets {
		buckets = append(buckets, rendererdto.Bucket{Label: bucket.Label, Value: bucket.Value})
	}
	out, err := a.renderer.Render(ctx, rendererdto.RenderInput{
		Kind:    chart.Kind,
		Title:   chart.Title,
		Buckets: buckets,
	})
	if err != nil {
		return "", err
	}
	return out.Path, nil
}
