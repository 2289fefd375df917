package pet

import "time"

// Mood is the companion's visible emotional state.
type Mood string

const (
	MoodExcited  Mood = "excited"
	MoodHappy    Mood = "happy"
	MoodNeutral  Mood = "neutral"
	MoodSad      Mood = "sad"
	MoodSick     Mood = "sick"
	MoodSleeping Mood = "sleeping"
)

// SleepAfter is how long without input before the companion falls asleep.
const SleepAfter = 60 * time.Second

// MoodFor derives the mood from vitality and idle time. Idle overrides
// health: past SleepAfter the companion sleeps no matter how the repo is
// doing. Otherwise thresholds are evaluated highest first so boundary
// values land in the higher band.
func MoodFor(vitality int, idle time.Duration) Mood {
	if idle >= SleepAfter {
		return MoodSleeping
	}
	switch {
	case vitality >= 90:
		return MoodExcited
	case vitality >= 70:
		return MoodHappy
	case vitality >= 50:
		return MoodNeutral
	case vitality >= 25:
		return MoodSad
	default:
		return MoodSick
	}
}
