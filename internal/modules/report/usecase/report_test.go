package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"pomo/internal/modules/report/domain"
	reportout "pomo/internal/modules/report/port/out"
	"pomo/internal/modules/report/service"
	"pomo/internal/modules/report/usecase"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type fakeFeed struct{ sessions []domain.Session }

func (f *fakeFeed) Between(_ context.Context, from, to string) ([]domain.Session, error) {
	var out []domain.Session
	for _, s := range f.sessions {
		if s.Date >= from && s.Date <= to {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeFeed) All(context.Context) ([]domain.Session, error) {
	return f.sessions, nil
}

type fakePolicy struct{ goal int }

func (f fakePolicy) Goal(context.Context) (int, error)               { return f.goal, nil }
func (f fakePolicy) StreakZeroGoalMet(context.Context) (bool, error) { return false, nil }

type fakeRenderer struct {
	path string
	err  error
	last reportout.Chart
}

func (f *fakeRenderer) Render(_ context.Context, chart reportout.Chart) (string, error) {
	f.last = chart
	return f.path, f.err
}

func newService(sessions []domain.Session) *service.ReportService {
	return service.NewReportService(
		fixedClock{now: time.Date(2026, 8, 17, 14, 0, 0, 0, time.Local)},
		&fakeFeed{sessions: sessions},
		fakePolicy{goal: 2},
	)
}

func TestTodayAttachesRenderedChart(t *testing.T) {
	t.Parallel()

	renderer := &fakeRenderer{path: "/tmp/charts/today.svg"}
	uc := usecase.NewInteractor(newService([]domain.Session{
		{Date: "2026-08-17", Status: "completed", ActualMin: 25},
		{Date: "2026-08-17", Status: "completed", ActualMin: 25},
	}), renderer)

	out, err := uc.Today(context.Background())
	if err != nil {
		t.Fatalf("today: %v", err)
	}
	if out.ImagePath != "/tmp/charts/today.svg" || out.RenderWarning != "" {
		t.Fatalf("unexpected render result: %+v", out)
	}
	if renderer.last.Kind != "bar" || len(renderer.last.Buckets) != 7 {
		t.Fatalf("unexpected chart: %+v", renderer.last)
	}
	// Trailing buckets are labeled by weekday, ending today.
	if renderer.last.Buckets[6].Label != "Mon" || renderer.last.Buckets[6].Value != 2 {
		t.Fatalf("unexpected last bucket: %+v", renderer.last.Buckets[6])
	}
	if out.Day.CompletedCount != 2 || !out.Day.GoalMet {
		t.Fatalf("unexpected day: %+v", out.Day)
	}
}

func TestRenderFailureDowngradesToWarning(t *testing.T) {
	t.Parallel()

	renderer := &fakeRenderer{err: errors.New("plugin exited early")}
	uc := usecase.NewInteractor(newService([]domain.Session{
		{Date: "2026-08-17", Status: "completed", ActualMin: 25},
	}), renderer)

	out, err := uc.Today(context.Background())
	if err != nil {
		t.Fatalf("a renderer failure must not fail the report: %v", err)
	}
	if out.ImagePath != "" {
		t.Fatalf("image path = %q, want empty", out.ImagePath)
	}
	if out.RenderWarning != "plugin exited early" {
		t.Fatalf("warning = %q", out.RenderWarning)
	}
	if out.Day.CompletedCount != 1 {
		t.Fatalf("text report lost: %+v", out.Day)
	}
}

func TestReportsWithoutRenderer(t *testing.T) {
	t.Parallel()

	// nil renderer: text only. A renderer that declines (empty path,
	// no error) reads the same to the caller.
	for _, tc := range []struct {
		name     string
		renderer reportout.ChartRenderer
	}{
		{name: "no renderer wired"},
		{name: "renderer declines the kind", renderer: &fakeRenderer{}},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			uc := usecase.NewInteractor(newService(nil), tc.renderer)
			out, err := uc.Week(context.Background(), "")
			if err != nil {
				t.Fatalf("week: %v", err)
			}
			if out.ImagePath != "" || out.RenderWarning != "" {
				t.Fatalf("expected text-only output, got %+v", out)
			}
			if out.Start != "2026-08-17" || len(out.Days) != 7 {
				t.Fatalf("unexpected week: %+v", out)
			}
		})
	}
}

func TestHeatmapChartUsesDayNumbers(t *testing.T) {
	t.Parallel()

	renderer := &fakeRenderer{path: "/tmp/charts/heatmap.svg"}
	uc := usecase.NewInteractor(newService([]domain.Session{
		{Date: "2026-08-05", Status: "completed", ActualMin: 25},
	}), renderer)

	out, err := uc.Heatmap(context.Background(), 2026, 8)
	if err != nil {
		t.Fatalf("heatmap: %v", err)
	}
	if out.ImagePath != "/tmp/charts/heatmap.svg" {
		t.Fatalf("image path = %q", out.ImagePath)
	}
	if renderer.last.Kind != "heatmap" || renderer.last.Title != "August 2026" {
		t.Fatalf("unexpected chart: %+v", renderer.last)
	}
	if len(renderer.last.Buckets) != 31 || renderer.last.Buckets[4].Label != "5" || renderer.last.Buckets[4].Value != 1 {
		t.Fatalf("unexpected buckets: %+v", renderer.last.Buckets[4])
	}
	if len(out.Cells) != 31 || out.Cells[4].Completed != 1 {
		t.Fatalf("unexpected cells: %+v", out.Cells[4])
	}
}
