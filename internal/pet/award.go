package pet

import (
	"fmt"
	"time"

	"github.com/nithya6875/gitbuddy-sub000/internal/health"
)

// ApplyScan folds a health snapshot into the state: vitality mirrors the
// aggregate score, and the scan earns experience (base scan reward, clean
// tree bonus, new commits, keeping the streak alive). Returns the total
// experience earned. Callers run this inside Store.Update so the whole
// fold is one read-modify-write.
func ApplyScan(s *State, snapshot health.RepositoryHealth, now time.Time) int {
	earned := Reward(ActionScan, 1)

	if snapshot.IsGitRepo {
		s.Vitality = Vitality(snapshot.TotalScore)

		clean := treeClean(snapshot)
		if clean {
			earned += Reward(ActionCleanBonus, 1)
		}

		head := commitFingerprint(snapshot)
		if head != "" && s.LastSeenCommit != "" && head != s.LastSeenCommit {
			if clean {
				earned += Reward(ActionCommitClean, 1)
			} else {
				earned += Reward(ActionCommit, 1)
			}
		}
		if head != "" {
			s.LastSeenCommit = head
		}

		// First scan of a day with a live streak keeps it rewarded.
		if snapshot.Streak > 0 && s.LastVisit.Before(midnight(now)) {
			earned += Reward(ActionStreakDay, 1)
		}
	}

	s.Experience += earned
	s.LastVisit = now
	return earned
}

// treeClean reports whether the cleanliness check saw zero changes.
func treeClean(snapshot health.RepositoryHealth) bool {
	for _, c := range snapshot.Checks {
		if c.Name == health.CheckCleanliness {
			return c.Raw == 0
		}
	}
	return false
}

// commitFingerprint identifies the latest commit well enough to detect new
// ones between scans, without another probe.
func commitFingerprint(snapshot health.RepositoryHealth) string {
	if snapshot.LastCommit == nil {
		return ""
	}
	return fmt.Sprintf("%d@%d", snapshot.CommitCount, snapshot.LastCommit.Unix())
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
