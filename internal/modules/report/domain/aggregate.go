// Package domain computes the temporal aggregations: day buckets, week
// summaries, month heatmaps, and streaks. Everything here is a pure
// function of the session set; identical inputs give identical outputs.
package domain

import (
	"time"

	"pomo/internal/platform/dates"
)

// Session is the slice of a recorded session the aggregations need.
type Session struct {
	Date      string
	Status    string
	ActualMin int
}

const (
	statusCompleted   = "completed"
	statusInterrupted = "interrupted"
	statusAbandoned   = "abandoned"
)

// DayBucket is one day's derived summary. Focus minutes count completed
// sessions only; interruptions and abandonments are tallied but add no
// focus time.
type DayBucket struct {
	Date             string
	CompletedCount   int
	InterruptedCount int
	AbandonedCount   int
	FocusMinutes     int
	GoalMet          bool
}

// DaySummary buckets the sessions recorded on the given day. A goal of
// zero is trivially met.
func DaySummary(sessions []Session, date string, goal int) DayBucket {
	bucket := DayBucket{Date: date}
	for _, s := range sessions {
		if s.Date != date {
			continue
		}
		switch s.Status {
		case statusCompleted:
			bucket.CompletedCount++
			bucket.FocusMinutes += s.ActualMin
		case statusInterrupted:
			bucket.InterruptedCount++
		case statusAbandoned:
			bucket.AbandonedCount++
		}
	}
	bucket.GoalMet = bucket.CompletedCount >= goal
	return bucket
}

type WeekSummary struct {
	Start          string
	End            string
	Days           []DayBucket
	TotalCompleted int
	TotalMinutes   int
	DailyAverage   float64
}

// Week summarizes the seven days starting at weekStart.
func Week(sessions []Session, weekStart time.Time, goal int) WeekSummary {
	start := dates.StartOfDay(weekStart)
	summary := WeekSummary{
		Start: dates.Day(start),
		End:   dates.Day(start.AddDate(0, 0, 6)),
		Days:  make([]DayBucket, 0, 7),
	}
	for i := 0; i < 7; i++ {
		bucket := DaySummary(sessions, dates.Day(start.AddDate(0, 0, i)), goal)
		summary.Days = append(summary.Days, bucket)
		summary.TotalCompleted += bucket.CompletedCount
		summary.TotalMinutes += bucket.FocusMinutes
	}
	summary.DailyAverage = float64(summary.TotalCompleted) / 7
	return summary
}

// Level bands a day's completed count against the goal for display.
type Level int

const (
	LevelNone Level = iota
	LevelStarted
	LevelHalf
	LevelMet
)

type HeatmapCell struct {
	Date      string
	Day       int
	Completed int
	Minutes   int
	Intensity float64
	Level     Level
}

type Heatmap struct {
	Year           int
	Month          time.Month
	Cells          []HeatmapCell
	MaxCompleted   int
	TotalCompleted int
	TotalMinutes   int
	ActiveDays     int
}

// MonthHeatmap buckets a calendar month into one cell per day.
// Intensity is each day's completed count normalized by the month's
// maximum; a month with no completions has all intensities at zero.
func MonthHeatmap(sessions []Session, year int, month time.Month, goal int) Heatmap {
	heatmap := Heatmap{Year: year, Month: month}
	days := dates.DaysIn(year, month)
	for day := 1; day <= days; day++ {
		date := dates.Day(time.Date(year, month, day, 0, 0, 0, 0, time.Local))
		bucket := DaySummary(sessions, date, goal)
		heatmap.Cells = append(heatmap.Cells, HeatmapCell{
			Date:      date,
			Day:       day,
			Completed: bucket.CompletedCount,
			Minutes:   bucket.FocusMinutes,
			Level:     level(bucket.CompletedCount, goal),
		})
		heatmap.TotalCompleted += bucket.CompletedCount
		heatmap.TotalMinutes += bucket.FocusMinutes
		if bucket.CompletedCount > heatmap.MaxCompleted {
			heatmap.MaxCompleted = bucket.CompletedCount
		}
		if bucket.CompletedCount > 0 {
			heatmap.ActiveDays++
		}
	}
	if heatmap.MaxCompleted > 0 {
		for i := range heatmap.Cells {
			heatmap.Cells[i].Intensity = float64(heatmap.Cells[i].Completed) / float64(heatmap.MaxCompleted)
		}
	}
	return heatmap
}

func level(completed, goal int) Level {
	switch {
	case completed == 0:
		return LevelNone
	case goal <= 0:
		return LevelMet
	case completed >= goal:
		return LevelMet
	case float64(completed) >= float64(goal)*0.5:
		return LevelHalf
	default:
		return LevelStarted
	}
}

// Streak counts consecutive qualifying days ending at asOf. A day
// qualifies when its completed count reaches the goal; with a zero goal
// an empty day qualifies only when zeroGoalMet allows it. An asOf day
// that has not qualified yet is treated as pending rather than a break.
// The walk never extends before the earliest recorded session.
func Streak(sessions []Session, asOf string, goal int, zeroGoalMet bool) int {
	earliest := ""
	for _, s := range sessions {
		if earliest == "" || s.Date < earliest {
			earliest = s.Date
		}
	}
	if earliest == "" {
		return 0
	}
	start, err := dates.ParseDay(asOf)
	if err != nil {
		return 0
	}

	day := start
	if !qualifies(DaySummary(sessions, asOf, goal), goal, zeroGoalMet) {
		day = start.AddDate(0, 0, -1)
	}

	count := 0
	for {
		date := dates.Day(day)
		if date < earliest {
			break
		}
		if !qualifies(DaySummary(sessions, date, goal), goal, zeroGoalMet) {
			break
		}
		count++
		day = day.AddDate(0, 0, -1)
	}
	return count
}

func qualifies(bucket DayBucket, goal int, zeroGoalMet bool) bool {
	if goal == 0 && bucket.CompletedCount == 0 {
		return zeroGoalMet
	}
	return bucket.CompletedCount >= goal
}
