package health

import (
	"testing"
	"time"
)

func day(now time.Time, daysAgo int) time.Time {
	return now.AddDate(0, 0, -daysAgo)
}

func TestCountStreak(t *testing.T) {
	now := time.Date(2026, 8, 28, 15, 30, 0, 0, time.Local)

	tests := []struct {
		name    string
		daysAgo []int // newest first
		want    int
	}{
		{"no commits", nil, 0},
		{"committed today only", []int{0}, 1},
		{"three straight days", []int{0, 1, 2}, 3},
		{"yesterday exception keeps the streak", []int{1, 2}, 2},
		{"gap at yesterday breaks it", []int{2}, 0},
		{"gap in the middle stops counting", []int{0, 1, 3, 4}, 2},
		{"yesterday exception then gap", []int{1, 3}, 1},
		{"long unbroken run", []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 10},
		{"old history only", []int{10, 11, 12}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dates := make([]time.Time, len(tt.daysAgo))
			for i, d := range tt.daysAgo {
				dates[i] = day(now, d)
			}
			if got := CountStreak(dates, now); got != tt.want {
				t.Errorf("CountStreak(%v) = %d, want %d", tt.daysAgo, got, tt.want)
			}
		})
	}
}

func TestCountStreak_TimeOfDayIrrelevant(t *testing.T) {
	// Dates compare at calendar-day granularity, whatever the clock says.
	now := time.Date(2026, 8, 28, 0, 0, 1, 0, time.Local)
	dates := []time.Time{
		time.Date(2026, 8, 28, 23, 59, 0, 0, time.Local),
		time.Date(2026, 8, 27, 1, 0, 0, 0, time.Local),
	}
	if got := CountStreak(dates, now); got != 2 {
		t.Errorf("CountStreak = %d, want 2", got)
	}
}
