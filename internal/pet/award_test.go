package pet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/nithya6875/gitbuddy-sub000/internal/health"
)

func snapshotWith(score, changes int, commitTime time.Time, commits, streak int) health.RepositoryHealth {
	snap := health.RepositoryHealth{
		IsGitRepo:  true,
		TotalScore: score,
		Checks: []health.HealthCheck{
			{Name: health.CheckCleanliness, Raw: changes},
		},
		CommitCount: commits,
		Streak:      streak,
	}
	if !commitTime.IsZero() {
		snap.LastCommit = &commitTime
	}
	return snap
}

func TestApplyScan_NotARepo(t *testing.T) {
	s := DefaultState()
	s.Vitality = 77
	now := time.Now()

	earned := ApplyScan(&s, health.RepositoryHealth{}, now)

	assert.Equal(t, Reward(ActionScan, 1), earned, "a scan outside a repo still earns the base reward")
	assert.Equal(t, 77, s.Vitality, "vitality untouched without a repo")
	assert.True(t, s.LastVisit.Equal(now))
}

func TestApplyScan_VitalityMirrorsScore(t *testing.T) {
	s := DefaultState()
	now := time.Now()

	ApplyScan(&s, snapshotWith(64, 3, now, 10, 0), now)
	assert.Equal(t, 64, s.Vitality)

	// Each rescan fully overwrites; no smoothing.
	ApplyScan(&s, snapshotWith(20, 3, now, 10, 0), now)
	assert.Equal(t, 20, s.Vitality)
}

func TestApplyScan_CleanBonus(t *testing.T) {
	now := time.Now()

	dirty := DefaultState()
	dirty.LastVisit = now
	earnedDirty := ApplyScan(&dirty, snapshotWith(50, 4, now, 5, 0), now)

	clean := DefaultState()
	clean.LastVisit = now
	earnedClean := ApplyScan(&clean, snapshotWith(50, 0, now, 5, 0), now)

	assert.Equal(t, Reward(ActionCleanBonus, 1), earnedClean-earnedDirty)
}

func TestApplyScan_NewCommitReward(t *testing.T) {
	now := time.Now()
	s := DefaultState()
	s.LastVisit = now

	// First scan establishes the baseline without a commit reward.
	first := ApplyScan(&s, snapshotWith(50, 3, now.Add(-2*time.Hour), 5, 0), now)
	assert.Equal(t, Reward(ActionScan, 1), first)
	assert.NotEmpty(t, s.LastSeenCommit)

	// Nothing new: no commit reward.
	again := ApplyScan(&s, snapshotWith(50, 3, now.Add(-2*time.Hour), 5, 0), now)
	assert.Equal(t, Reward(ActionScan, 1), again)

	// A new commit with a dirty tree earns the base commit reward.
	withCommit := ApplyScan(&s, snapshotWith(50, 3, now, 6, 0), now)
	assert.Equal(t, Reward(ActionScan, 1)+Reward(ActionCommit, 1), withCommit)

	// A new commit with a clean tree earns the bigger one (plus bonus).
	cleanCommit := ApplyScan(&s, snapshotWith(50, 0, now.Add(time.Minute), 7, 0), now)
	assert.Equal(t,
		Reward(ActionScan, 1)+Reward(ActionCommitClean, 1)+Reward(ActionCleanBonus, 1),
		cleanCommit)
}

func TestApplyScan_StreakDayOncePerDay(t *testing.T) {
	now := time.Date(2026, 8, 28, 10, 0, 0, 0, time.Local)
	s := DefaultState()
	s.LastVisit = now.AddDate(0, 0, -1) // yesterday

	earned := ApplyScan(&s, snapshotWith(50, 3, time.Time{}, 5, 4), now)
	assert.Equal(t, Reward(ActionScan, 1)+Reward(ActionStreakDay, 1), earned)

	// Second scan the same day: streak already rewarded.
	again := ApplyScan(&s, snapshotWith(50, 3, time.Time{}, 5, 4), now.Add(time.Hour))
	assert.Equal(t, Reward(ActionScan, 1), again)
}

func TestApplyScan_NoStreakNoReward(t *testing.T) {
	now := time.Now()
	s := DefaultState()
	s.LastVisit = now.AddDate(0, 0, -3)

	earned := ApplyScan(&s, snapshotWith(50, 3, time.Time{}, 5, 0), now)
	assert.Equal(t, Reward(ActionScan, 1), earned)
}
