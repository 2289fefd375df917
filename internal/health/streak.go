package health

import (
	"time"

	"github.com/nithya6875/gitbuddy-sub000/internal/git"
)

// CountStreak returns the number of consecutive calendar days with at
// least one commit, counted backward from today. dates must be distinct
// commit dates sorted newest first; now supplies the caller's notion of
// "today" (local midnight).
//
// A streak whose most recent day is yesterday still counts in full: a user
// who committed every day up through yesterday has not broken the streak
// just because they haven't committed yet today.
func CountStreak(dates []time.Time, now time.Time) int {
	if len(dates) == 0 {
		return 0
	}

	base := git.Midnight(now)
	first := git.Midnight(dates[0])
	if !first.Equal(base) {
		// Most recent commit was not today; allow yesterday, anything
		// older means the streak is already broken.
		if !first.Equal(base.AddDate(0, 0, -1)) {
			return 0
		}
		base = first
	}

	streak := 0
	for i, d := range dates {
		if !git.Midnight(d).Equal(base.AddDate(0, 0, -i)) {
			break
		}
		streak++
	}
	return streak
}
