package service

import (
	"context"
	"fmt"
	"time"

	"pomo/internal/modules/report/domain"
	reportout "pomo/internal/modules/report/port/out"
	"pomo/internal/platform/clock"
	"pomo/internal/platform/dates"
	apperrors "pomo/internal/platform/errors"
)

// ReportService resolves report windows against the clock and feeds the
// pure aggregations.
type ReportService struct {
	clock  clock.Clock
	feed   reportout.SessionFeed
	policy reportout.GoalPolicy
}

func NewReportService(clock clock.Clock, feed reportout.SessionFeed, policy reportout.GoalPolicy) *ReportService {
	return &ReportService{clock: clock, feed: feed, policy: policy}
}

// Today returns the current day bucket, the streak ending there, and
// the trailing seven day buckets for charting.
func (s *ReportService) Today(ctx context.Context) (domain.DayBucket, int, []domain.DayBucket, int, error) {
	goal, err := s.policy.Goal(ctx)
	if err != nil {
		return domain.DayBucket{}, 0, nil, 0, err
	}
	zeroGoalMet, err := s.policy.StreakZeroGoalMet(ctx)
	if err != nil {
		return domain.DayBucket{}, 0, nil, 0, err
	}
	sessions, err := s.feed.All(ctx)
	if err != nil {
		return domain.DayBucket{}, 0, nil, 0, err
	}

	now := s.clock.Now()
	today := dates.Day(now)
	bucket := domain.DaySummary(sessions, today, goal)
	streak := domain.Streak(sessions, today, goal, zeroGoalMet)

	trailing := make([]domain.DayBucket, 0, 7)
	for i := 6; i >= 0; i-- {
		day := dates.Day(dates.StartOfDay(now).AddDate(0, 0, -i))
		trailing = append(trailing, domain.DaySummary(sessions, day, goal))
	}
	return bucket, streak, trailing, goal, nil
}

// Week summarizes the Monday-start week containing startDay ("" means
// the current week).
func (s *ReportService) Week(ctx context.Context, startDay string) (domain.WeekSummary, int, error) {
	goal, err := s.policy.Goal(ctx)
	if err != nil {
		return domain.WeekSummary{}, 0, err
	}

	anchor := s.clock.Now()
	if startDay != "" {
		parsed, err := dates.ParseDay(startDay)
		if err != nil {
			return domain.WeekSummary{}, 0, fmt.Errorf("%w: bad week start %q, want YYYY-MM-DD", apperrors.ErrInvalidInput, startDay)
		}
		anchor = parsed
	}
	weekStart := dates.WeekStart(anchor)

	sessions, err := s.feed.Between(ctx, dates.Day(weekStart), dates.Day(weekStart.AddDate(0, 0, 6)))
	if err != nil {
		return domain.WeekSummary{}, 0, err
	}
	return domain.Week(sessions, weekStart, goal), goal, nil
}

// Heatmap buckets the given month; zero year and month mean now.
func (s *ReportService) Heatmap(ctx context.Context, year, month int) (domain.Heatmap, int, error) {
	goal, err := s.policy.Goal(ctx)
	if err != nil {
		return domain.Heatmap{}, 0, err
	}

	now := s.clock.Now()
	if year == 0 {
		year = now.Year()
	}
	if month == 0 {
		month = int(now.Month())
	}
	if month < 1 || month > 12 {
		return domain.Heatmap{}, 0, fmt.Errorf("%w: month %d out of range", apperrors.ErrInvalidInput, month)
	}

	m := time.Month(month)
	first := time.Date(year, m, 1, 0, 0, 0, 0, time.Local)
	last := time.Date(year, m, dates.DaysIn(year, m), 0, 0, 0, 0, time.Local)
	sessions, err := s.feed.Between(ctx, dates.Day(first), dates.Day(last))
	if err != nil {
		return domain.Heatmap{}, 0, err
	}
	return domain.MonthHeatmap(sessions, year, m, goal), goal, nil
}
