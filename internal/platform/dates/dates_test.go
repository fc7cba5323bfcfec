package dates_test

import (
	"testing"
	"time"

	"pomo/internal/platform/dates"
)

func TestWeekStartSnapsToMonday(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   time.Time
		want string
	}{
		{name: "monday is its own start", in: time.Date(2026, 8, 17, 15, 30, 0, 0, time.Local), want: "2026-08-17"},
		{name: "wednesday", in: time.Date(2026, 8, 19, 0, 0, 0, 0, time.Local), want: "2026-08-17"},
		{name: "sunday closes the week", in: time.Date(2026, 8, 23, 23, 59, 0, 0, time.Local), want: "2026-08-17"},
		{name: "across a month boundary", in: time.Date(2026, 9, 1, 8, 0, 0, 0, time.Local), want: "2026-08-31"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := dates.WeekStart(tc.in)
			if dates.Day(got) != tc.want {
				t.Fatalf("week start = %s, want %s", dates.Day(got), tc.want)
			}
			if got.Hour() != 0 || got.Minute() != 0 {
				t.Fatalf("week start not at midnight: %v", got)
			}
		})
	}
}

func TestWeekdayIndexIsMondayFirst(t *testing.T) {
	t.Parallel()

	monday := time.Date(2026, 8, 17, 0, 0, 0, 0, time.Local)
	for i := 0; i < 7; i++ {
		if got := dates.WeekdayIndex(monday.AddDate(0, 0, i)); got != i {
			t.Fatalf("index of %s = %d, want %d", dates.Day(monday.AddDate(0, 0, i)), got, i)
		}
	}
}

func TestDaysIn(t *testing.T) {
	t.Parallel()

	cases := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2026, time.February, 28},
		{2028, time.February, 29}, // leap year
		{2026, time.August, 31},
		{2026, time.September, 30},
		{2100, time.February, 28}, // century, not a leap year
	}
	for _, tc := range cases {
		if got := dates.DaysIn(tc.year, tc.month); got != tc.want {
			t.Fatalf("days in %s %d = %d, want %d", tc.month, tc.year, got, tc.want)
		}
	}
}

func TestParseDayRoundTrips(t *testing.T) {
	t.Parallel()

	day, err := dates.ParseDay("2026-08-17")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if day.Location() != time.Local || day.Hour() != 0 {
		t.Fatalf("expected local midnight, got %v", day)
	}
	if dates.Day(day) != "2026-08-17" {
		t.Fatalf("round trip lost the day: %s", dates.Day(day))
	}
	if _, err := dates.ParseDay("17/08/2026"); err == nil {
		t.Fatal("expected an error for a malformed day")
	}
}

func TestStartOfDayKeepsLocation(t *testing.T) {
	t.Parallel()

	in := time.Date(2026, 8, 17, 22, 45, 12, 999, time.Local)
	got := dates.StartOfDay(in)
	if got.Hour() != 0 || got.Minute() != 0 || got.Second() != 0 || got.Nanosecond() != 0 {
		t.Fatalf("not midnight: %v", got)
	}
	if got.Day() != 17 || got.Location() != time.Local {
		t.Fatalf("wrong day or location: %v", got)
	}
}
