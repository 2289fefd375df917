package health

import "time"

// CheckStatus is the qualitative band of a single metric. Downstream
// consumers (achievements, the TUI) match on these values, so they are
// stable strings.
type CheckStatus string

const (
	StatusGreat   CheckStatus = "great"
	StatusOK      CheckStatus = "ok"
	StatusWarning CheckStatus = "warning"
	StatusBad     CheckStatus = "bad"
)

// Stable check names. Consumers match on these, never on the display value.
const (
	CheckWeeklyCommits = "weekly_commits"
	CheckStreak        = "streak"
	CheckCleanliness   = "cleanliness"
	CheckTests         = "tests"
	CheckReadme        = "readme"
	CheckRecency       = "recency"
)

// HealthCheck is one evaluated metric. Raw carries the underlying integer
// (count, streak days, hours) so consumers never re-parse the display
// string. Checks are created fresh on every scan and never mutated.
type HealthCheck struct {
	Name   string      `json:"name"`
	Status CheckStatus `json:"status"`
	Value  string      `json:"value"`
	Raw    int         `json:"raw"`
	Weight int         `json:"weight"`
	Score  int         `json:"score"`
}

// RepositoryHealth is the result of one scan. A directory without a git
// repository yields the zero-value sentinel: IsGitRepo false, no checks,
// zero score.
type RepositoryHealth struct {
	IsGitRepo   bool          `json:"is_git_repo"`
	Checks      []HealthCheck `json:"checks"`
	TotalScore  int           `json:"total_score"`
	CommitCount int           `json:"commit_count"`
	LastCommit  *time.Time    `json:"last_commit,omitempty"`
	Streak      int           `json:"streak"`
}

// Stats are the secondary "fun fact" statistics. They come from the same
// probe family as the health checks but never feed the score.
type Stats struct {
	CommitCount   int              `json:"commit_count"`
	FirstCommit   *time.Time       `json:"first_commit,omitempty"`
	TopExtensions []ExtensionCount `json:"top_extensions,omitempty"`
	AvgSubjectLen int              `json:"avg_subject_len"`
}

// ExtensionCount is one entry of the tracked-file extension histogram.
type ExtensionCount struct {
	Extension string `json:"extension"`
	Count     int    `json:"count"`
}

// RepoAge returns the time elapsed since the first commit, or 0 when the
// history is empty.
func (s Stats) RepoAge(now time.Time) time.Duration {
	if s.FirstCommit == nil {
		return 0
	}
	age := now.Sub(*s.FirstCommit)
	if age < 0 {
		return 0
	}
	return age
}
