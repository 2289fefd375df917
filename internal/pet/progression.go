package pet

import "time"

// levelThresholds are the cumulative experience plateaus. Level N requires
// levelThresholds[N-1] experience.
var levelThresholds = [...]int{0, 100, 300, 600, 1000}

// MaxLevel is the highest reachable level.
const MaxLevel = len(levelThresholds)

// Vitality clamps an aggregate health score into the 0-100 HP range. Each
// rescan fully overwrites vitality; there is no smoothing across scans.
func Vitality(totalScore int) int {
	if totalScore < 0 {
		return 0
	}
	if totalScore > 100 {
		return 100
	}
	return totalScore
}

// LevelFor returns the level for the given experience: the highest plateau
// at or below xp. Level is always derived, never read back from storage.
func LevelFor(xp int) int {
	level := 1
	for i, threshold := range levelThresholds {
		if xp >= threshold {
			level = i + 1
		}
	}
	return level
}

// NextLevelAt returns the experience required for the next level, and
// false when already at max level.
func NextLevelAt(xp int) (int, bool) {
	level := LevelFor(xp)
	if level >= MaxLevel {
		return 0, false
	}
	return levelThresholds[level], true
}

// LeveledUp reports whether awarding experience crossed at least one
// plateau. Crossing several plateaus in one award is still a single
// level-up event; the new level reflects however many were crossed.
func LeveledUp(oldXP, newXP int) bool {
	return LevelFor(newXP) > LevelFor(oldXP)
}

const (
	decayGrace   = 24 * time.Hour
	decayPerDay  = 5
	decayCap     = 30
	decayFloorHP = 10
)

// DecayPoints returns how many vitality points absence costs. The first 24
// hours are a grace period; each full day after that costs decayPerDay
// points, capped at decayCap. Pure function of the elapsed time, so
// repeated computation with the same now is idempotent.
func DecayPoints(lastVisit, now time.Time) int {
	if lastVisit.IsZero() {
		return 0
	}
	hours := int(now.Sub(lastVisit).Hours())
	if hours < 24 {
		return 0
	}
	points := (hours - 24) / 24 * decayPerDay
	if points > decayCap {
		points = decayCap
	}
	return points
}

// ApplyDecay subtracts absence decay from vitality. Decay never drops
// vitality below decayFloorHP and never raises it: neglect weakens the
// companion but cannot kill it.
func ApplyDecay(vitality int, lastVisit, now time.Time) int {
	points := DecayPoints(lastVisit, now)
	if points == 0 {
		return vitality
	}
	decayed := vitality - points
	if decayed < decayFloorHP {
		decayed = decayFloorHP
		if vitality < decayed {
			decayed = vitality
		}
	}
	return decayed
}

// Action is something the user did that earns experience.
type Action int

const (
	ActionScan Action = iota
	ActionFeed
	ActionTrickSmall
	ActionTrickBig
	ActionCommit
	ActionCommitClean
	ActionStreakDay
	ActionCleanBonus
)

// rewards is the fixed experience table. Pure lookup; no dynamic
// computation.
var rewards = map[Action]int{
	ActionScan:        2,
	ActionFeed:        5,
	ActionTrickSmall:  5,
	ActionTrickBig:    15,
	ActionCommit:      10,
	ActionCommitClean: 15,
	ActionStreakDay:   3,
	ActionCleanBonus:  5,
}

// Reward returns the experience earned by performing an action count
// times. Unknown actions and non-positive counts earn nothing.
func Reward(action Action, count int) int {
	if count <= 0 {
		return 0
	}
	return rewards[action] * count
}
