package console

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	configdto "pomo/internal/modules/config/dto"
	reportdto "pomo/internal/modules/report/dto"
	sessiondto "pomo/internal/modules/session/dto"
	taskdto "pomo/internal/modules/task/dto"
	"pomo/internal/platform/dates"
)

const (
	goalBarWidth = 20
	weekBarWidth = 10
)

// StartBanner announces a freshly started session.
func StartBanner(w io.Writer, out sessiondto.StartOutput) {
	task := out.TaskName
	if task == "" {
		task = "no task"
	}
	fmt.Fprintf(w, "%s Focus session started: %d minutes (%s)\n", Green("✓"), out.PlannedMin, task)
	fmt.Fprintf(w, "%s Ends at %s. Run %s when done, %s if you stop early.\n",
		Dim("→"), out.PlannedEnd.Format("15:04"), Bold("pomo complete"), Bold("pomo interrupt"))
}

// FinishBanner reports a session that just reached a terminal state.
func FinishBanner(w io.Writer, out sessiondto.FinishOutput) {
	switch out.Status {
	case "completed":
		fmt.Fprintf(w, "%s Session completed: %d focused minutes\n", Green("✓"), out.ActualMin)
	case "interrupted":
		fmt.Fprintf(w, "%s Session interrupted after %d minutes (%s)\n", Yellow("⚠"), out.ActualMin, out.Reason)
	default:
		fmt.Fprintf(w, "%s Session %s after %d minutes\n", Yellow("⚠"), out.Status, out.ActualMin)
	}
}

// Status shows the active session with elapsed and remaining time
// derived from the persisted start, never from an in-process timer.
func Status(w io.Writer, active sessiondto.ActiveOutput, now time.Time) {
	elapsed := int(now.Sub(active.StartedAt).Minutes())
	if elapsed < 0 {
		elapsed = 0
	}
	fmt.Fprintf(w, "%s Session %s running\n", Green("●"), active.SessionID)
	KeyValue(w, "started", active.StartedAt.Format("15:04"))
	KeyValue(w, "planned", fmt.Sprintf("%d min (ends %s)", active.PlannedMin, active.PlannedEnd.Format("15:04")))
	if remaining := active.PlannedMin - elapsed; remaining >= 0 {
		KeyValue(w, "remaining", fmt.Sprintf("%d min", remaining))
	} else {
		KeyValue(w, "overtime", Yellow(fmt.Sprintf("%d min past the planned end", -remaining)))
	}
	fmt.Fprintf(w, "  [%s] %d/%d min\n", Bar(elapsed, active.PlannedMin, goalBarWidth), elapsed, active.PlannedMin)
}

// Today renders the daily report with the goal progress bar.
func Today(w io.Writer, out reportdto.TodayOutput) {
	Header(w, "Today - "+out.Day.Date)
	fmt.Fprintf(w, "%s Completed: %d sessions (%d min)\n", Green("✓"), out.Day.CompletedCount, out.Day.FocusMinutes)
	if out.Day.InterruptedCount > 0 || out.Day.AbandonedCount > 0 {
		fmt.Fprintf(w, "%s Interrupted: %d, abandoned: %d\n", Yellow("⚠"), out.Day.InterruptedCount, out.Day.AbandonedCount)
	}
	if out.Day.GoalMet {
		fmt.Fprintf(w, "%s Goal met: %d/%d\n", Green("✓"), out.Day.CompletedCount, out.Goal)
	} else {
		fmt.Fprintf(w, "%s Goal: %d/%d, %d to go\n", Cyan("→"), out.Day.CompletedCount, out.Goal, out.Goal-out.Day.CompletedCount)
	}
	fmt.Fprintf(w, "\n  [%s] %d/%d\n", Bar(out.Day.CompletedCount, out.Goal, goalBarWidth), out.Day.CompletedCount, out.Goal)
	if out.Streak > 0 {
		fmt.Fprintf(w, "  %s %s\n", Bold("Streak:"), plural(out.Streak, "day"))
	}
}

// Week renders the Monday-start week as an aligned table with per-day
// mini bars, followed by totals.
func Week(w io.Writer, out reportdto.WeekOutput) {
	Header(w, fmt.Sprintf("Week %s to %s", out.Start, out.End))

	table := NewTable(w, []string{"Day", "Date", "Done", "Min", "Progress"})
	for _, day := range out.Days {
		name := day.Date
		if parsed, err := dates.ParseDay(day.Date); err == nil {
			name = parsed.Format("Mon")
		}
		table.AddRow([]string{
			name,
			day.Date,
			strconv.Itoa(day.CompletedCount),
			strconv.Itoa(day.FocusMinutes),
			Bar(day.CompletedCount, out.Goal, weekBarWidth),
		})
	}
	table.Render()

	fmt.Fprintf(w, "\n  %s %d sessions, %d minutes\n", Bold("Total:"), out.TotalCompleted, out.TotalMinutes)
	fmt.Fprintf(w, "  %s %.1f sessions/day\n", Bold("Daily average:"), out.DailyAverage)
}

var levelCells = [...]string{"⬜", "🟠", "🟡", "🟢"}

// Heatmap renders the month as a Monday-first grid of goal-band cells,
// with the legend and totals the grid needs to be read.
func Heatmap(w io.Writer, out reportdto.HeatmapOutput) {
	Header(w, fmt.Sprintf("Heatmap - %s %d", time.Month(out.Month), out.Year))
	fmt.Fprintln(w, Dim("Mon Tue Wed Thu Fri Sat Sun"))

	offset := 0
	if len(out.Cells) > 0 {
		if first, err := dates.ParseDay(out.Cells[0].Date); err == nil {
			offset = dates.WeekdayIndex(first)
		}
	}
	row := make([]string, 0, 7)
	for i := 0; i < offset; i++ {
		row = append(row, "  ")
	}
	for _, cell := range out.Cells {
		level := cell.Level
		if level < 0 || level >= len(levelCells) {
			level = 0
		}
		row = append(row, levelCells[level])
		if len(row) == 7 {
			fmt.Fprintln(w, strings.Join(row, "  "))
			row = row[:0]
		}
	}
	if len(row) > 0 {
		fmt.Fprintln(w, strings.Join(row, "  "))
	}

	half := out.Goal / 2
	if half < 1 {
		half = 1
	}
	fmt.Fprintf(w, "\n%s\n", Bold("Legend:"))
	fmt.Fprintf(w, "  %s goal met (%d+)\n", levelCells[3], out.Goal)
	fmt.Fprintf(w, "  %s halfway (%d-%d)\n", levelCells[2], half, out.Goal-1)
	fmt.Fprintf(w, "  %s started (1-%d)\n", levelCells[1], half-1)
	fmt.Fprintf(w, "  %s no sessions\n", levelCells[0])

	fmt.Fprintf(w, "\n%s\n", Bold("Month summary:"))
	KeyValue(w, "total", fmt.Sprintf("%d sessions (%d min)", out.TotalCompleted, out.TotalMinutes))
	KeyValue(w, "active days", fmt.Sprintf("%d/%d", out.ActiveDays, len(out.Cells)))
	if out.ActiveDays > 0 {
		KeyValue(w, "daily avg", fmt.Sprintf("%d min on active days", out.TotalMinutes/out.ActiveDays))
	}
}

// Tasks renders the task list with derived session totals.
func Tasks(w io.Writer, items []taskdto.TaskItem) {
	if len(items) == 0 {
		fmt.Fprintln(w, "no tasks yet")
		return
	}
	table := NewTable(w, []string{"Task", "Done", "Min", "Created"})
	for _, item := range items {
		table.AddRow([]string{
			item.Name,
			strconv.Itoa(item.CompletedCount),
			strconv.Itoa(item.FocusMinutes),
			item.CreatedAt.Format(dates.DayFormat),
		})
	}
	table.Render()
}

// ConfigList renders every config key with its effective value.
func ConfigList(w io.Writer, entries []configdto.Entry) {
	table := NewTable(w, []string{"Key", "Value", "Source"})
	for _, e := range entries {
		source := "set"
		if e.IsDefault {
			source = Dim("default")
		}
		table.AddRow([]string{e.Key, e.Value, source})
	}
	table.Render()
}

// ConfigEntry renders a single config lookup.
func ConfigEntry(w io.Writer, e configdto.Entry) {
	value := e.Value
	if e.IsDefault {
		value += Dim(" (default)")
	}
	fmt.Fprintf(w, "%s = %s\n", e.Key, value)
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
