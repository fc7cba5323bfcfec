package console_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	reportdto "pomo/internal/modules/report/dto"
	sessiondto "pomo/internal/modules/session/dto"
	taskdto "pomo/internal/modules/task/dto"
	"pomo/internal/ui/console"
)

func TestBar(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		done  int
		total int
		want  string
	}{
		{name: "empty", done: 0, total: 8, want: "░░░░░░░░░░"},
		{name: "full", done: 8, total: 8, want: "██████████"},
		{name: "half", done: 4, total: 8, want: "█████░░░░░"},
		{name: "over target clamps", done: 12, total: 8, want: "██████████"},
		{name: "zero goal is trivially full", done: 0, total: 0, want: "██████████"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := console.Bar(tc.done, tc.total, 10); got != tc.want {
				t.Fatalf("bar = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestTodayReport(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	console.Today(&buf, reportdto.TodayOutput{
		Day: reportdto.DayOutput{
			Date:           "2026-08-17",
			CompletedCount: 3,
			FocusMinutes:   76,
			GoalMet:        true,
		},
		Goal:   3,
		Streak: 4,
	})

	out := buf.String()
	for _, want := range []string{
		"Today - 2026-08-17",
		"Completed: 3 sessions (76 min)",
		"Goal met: 3/3",
		"4 days",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Interrupted") {
		t.Fatalf("clean day must not mention interruptions:\n%s", out)
	}
}

func TestTodayReportCountsRemaining(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	console.Today(&buf, reportdto.TodayOutput{
		Day:  reportdto.DayOutput{Date: "2026-08-17", CompletedCount: 1, InterruptedCount: 2},
		Goal: 3,
	})

	out := buf.String()
	if !strings.Contains(out, "2 to go") {
		t.Fatalf("expected remaining count:\n%s", out)
	}
	if !strings.Contains(out, "Interrupted: 2") {
		t.Fatalf("expected interruption tally:\n%s", out)
	}
	if strings.Contains(out, "Streak") {
		t.Fatalf("zero streak must stay silent:\n%s", out)
	}
}

func TestWeekTableListsEveryDayAndTotals(t *testing.T) {
	t.Parallel()

	week := reportdto.WeekOutput{
		Start:          "2026-08-17",
		End:            "2026-08-23",
		TotalCompleted: 7,
		TotalMinutes:   175,
		DailyAverage:   1.0,
		Goal:           2,
	}
	for i := 0; i < 7; i++ {
		week.Days = append(week.Days, reportdto.DayOutput{
			Date:           time.Date(2026, 8, 17+i, 0, 0, 0, 0, time.Local).Format("2006-01-02"),
			CompletedCount: 1,
			FocusMinutes:   25,
		})
	}

	var buf bytes.Buffer
	console.Week(&buf, week)

	out := buf.String()
	for _, want := range []string{"Mon", "Sun", "2026-08-17", "2026-08-23", "7 sessions, 175 minutes", "1.0 sessions/day"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestHeatmapGridAlignsToWeekday(t *testing.T) {
	t.Parallel()

	// August 2026 starts on a Saturday: the first grid row carries five
	// leading blanks and two day cells.
	heatmap := reportdto.HeatmapOutput{Year: 2026, Month: 8, Goal: 4, ActiveDays: 1, TotalCompleted: 4, TotalMinutes: 100}
	for day := 1; day <= 31; day++ {
		cell := reportdto.HeatmapCellOutput{
			Date: time.Date(2026, 8, day, 0, 0, 0, 0, time.Local).Format("2006-01-02"),
			Day:  day,
		}
		if day == 5 {
			cell.Completed = 4
			cell.Level = 3
		}
		heatmap.Cells = append(heatmap.Cells, cell)
	}

	var buf bytes.Buffer
	console.Heatmap(&buf, heatmap)

	lines := strings.Split(buf.String(), "\n")
	gridStart := -1
	for i, line := range lines {
		if strings.Contains(line, "Mon Tue Wed Thu Fri Sat Sun") {
			gridStart = i + 1
			break
		}
	}
	if gridStart < 0 {
		t.Fatalf("weekday header missing:\n%s", buf.String())
	}
	if got := strings.Count(lines[gridStart], "⬜"); got != 2 {
		t.Fatalf("first row has %d day cells, want 2:\n%q", got, lines[gridStart])
	}
	if got := strings.Count(lines[gridStart+1], "🟢"); got != 1 {
		t.Fatalf("goal-met day missing from second row:\n%q", lines[gridStart+1])
	}
	if !strings.Contains(buf.String(), "active days") {
		t.Fatalf("summary missing:\n%s", buf.String())
	}
}

func TestStatusShowsOvertimePastPlannedEnd(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 17, 10, 30, 0, 0, time.Local)
	var buf bytes.Buffer
	console.Status(&buf, sessiondto.ActiveOutput{
		SessionID:  "sess-1",
		StartedAt:  now.Add(-30 * time.Minute),
		PlannedMin: 25,
		PlannedEnd: now.Add(-5 * time.Minute),
	}, now)

	if !strings.Contains(buf.String(), "overtime") {
		t.Fatalf("expected overtime marker:\n%s", buf.String())
	}
}

func TestTasksTable(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	console.Tasks(&buf, nil)
	if !strings.Contains(buf.String(), "no tasks yet") {
		t.Fatalf("expected empty notice, got:\n%s", buf.String())
	}

	buf.Reset()
	console.Tasks(&buf, []taskdto.TaskItem{{
		Name:           "reading",
		CompletedCount: 3,
		FocusMinutes:   76,
		CreatedAt:      time.Date(2026, 8, 17, 9, 0, 0, 0, time.Local),
	}})
	for _, want := range []string{"reading", "3", "76", "2026-08-17"} {
		if !strings.Contains(buf.String(), want) {
			t.Fatalf("output missing %q:\n%s", want, buf.String())
		}
	}
}
