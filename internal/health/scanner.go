package health

import (
	"context"
	"fmt"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/sourcegraph/conc"

	"github.com/nithya6875/gitbuddy-sub000/internal/git"
	"github.com/nithya6875/gitbuddy-sub000/internal/logger"
)

// Weights are the fixed percentage weights of the six checks. They must
// sum to 100.
type Weights struct {
	WeeklyCommits int `koanf:"weekly_commits" json:"weekly_commits"`
	Streak        int `koanf:"streak" json:"streak"`
	Cleanliness   int `koanf:"cleanliness" json:"cleanliness"`
	Tests         int `koanf:"tests" json:"tests"`
	Readme        int `koanf:"readme" json:"readme"`
	Recency       int `koanf:"recency" json:"recency"`
}

// DefaultWeights returns the standard 30/15/20/15/5/15 split.
func DefaultWeights() Weights {
	return Weights{
		WeeklyCommits: 30,
		Streak:        15,
		Cleanliness:   20,
		Tests:         15,
		Readme:        5,
		Recency:       15,
	}
}

// Sum returns the total of all weights.
func (w Weights) Sum() int {
	return w.WeeklyCommits + w.Streak + w.Cleanliness + w.Tests + w.Readme + w.Recency
}

// Valid reports whether the weights are non-negative and sum to 100.
func (w Weights) Valid() bool {
	if w.WeeklyCommits < 0 || w.Streak < 0 || w.Cleanliness < 0 ||
		w.Tests < 0 || w.Readme < 0 || w.Recency < 0 {
		return false
	}
	return w.Sum() == 100
}

// Scanner probes a working directory and aggregates the results into a
// RepositoryHealth snapshot. Each Scan returns a fresh value; there is no
// cached scan state.
type Scanner struct {
	dir     string
	client  *git.Client
	weights Weights
	now     func() time.Time
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithWeights overrides the check weights. Invalid weights (negative or
// not summing to 100) are ignored in favor of the defaults.
func WithWeights(w Weights) Option {
	return func(s *Scanner) {
		if w.Valid() {
			s.weights = w
		} else {
			logger.Warn("ignoring invalid check weights", "sum", w.Sum())
		}
	}
}

// WithTimeout overrides the per-probe timeout budget.
func WithTimeout(d time.Duration) Option {
	return func(s *Scanner) {
		if d > 0 {
			s.client = git.NewClient(s.dir, d)
		}
	}
}

// WithClock overrides the scanner's clock. Used by tests.
func WithClock(now func() time.Time) Option {
	return func(s *Scanner) {
		if now != nil {
			s.now = now
		}
	}
}

// New creates a Scanner for the given working directory.
func New(dir string, opts ...Option) *Scanner {
	s := &Scanner{
		dir:     dir,
		client:  git.NewClient(dir, 0),
		weights: DefaultWeights(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Weights returns the weights the scanner applies.
func (s *Scanner) Weights() Weights {
	return s.weights
}

// IsRepo reports whether the scanner's directory is inside a git
// repository, walking up parent directories the way git itself does.
func (s *Scanner) IsRepo() bool {
	_, err := gogit.PlainOpenWithOptions(s.dir, &gogit.PlainOpenOptions{DetectDotGit: true})
	return err == nil
}

// Scan runs all checks and aggregates them into a snapshot. A directory
// without a repository short-circuits to the sentinel result without
// running a single probe. Probe failures degrade the affected check to its
// worst-case score; Scan itself never fails.
func (s *Scanner) Scan(ctx context.Context) RepositoryHealth {
	if !s.IsRepo() {
		logger.Debug("scan skipped, not a git repository", "dir", s.dir)
		return RepositoryHealth{Checks: []HealthCheck{}}
	}

	var (
		weekly      int
		dates       []time.Time
		changes     int
		changesOK   bool
		hasTests    bool
		hasReadme   bool
		lastCommit  time.Time
		hasCommits  bool
		commitCount int
	)

	// The collectors are independent; fan out so total scan latency is
	// bounded by the slowest probe, not the sum.
	wg := conc.NewWaitGroup()
	wg.Go(func() { weekly = s.client.WeeklyCommits(ctx) })
	wg.Go(func() { dates = s.client.CommitDates(ctx, 100) })
	wg.Go(func() { changes, changesOK = s.client.WorktreeChanges(ctx) })
	wg.Go(func() { hasTests = s.client.HasTests(ctx) })
	wg.Go(func() { hasReadme = s.client.HasReadme(ctx) })
	wg.Go(func() { lastCommit, hasCommits = s.client.LastCommitTime(ctx) })
	wg.Go(func() { commitCount = s.client.CommitCount(ctx) })
	wg.Wait()

	now := s.now()
	streak := CountStreak(dates, now)

	checks := []HealthCheck{
		s.checkWeeklyCommits(weekly),
		s.checkStreak(streak),
		s.checkCleanliness(changes, changesOK),
		s.checkTests(hasTests),
		s.checkReadme(hasReadme),
		s.checkRecency(lastCommit, hasCommits, now),
	}

	result := RepositoryHealth{
		IsGitRepo:   true,
		Checks:      checks,
		TotalScore:  totalScore(checks),
		CommitCount: commitCount,
		Streak:      streak,
	}
	if hasCommits {
		t := lastCommit
		result.LastCommit = &t
	}

	logger.Debug("scan complete",
		"score", result.TotalScore,
		"commits", result.CommitCount,
		"streak", result.Streak)
	return result
}

// Stats collects the fun-fact statistics from the same probe family. Not
// part of the score.
func (s *Scanner) Stats(ctx context.Context) Stats {
	if !s.IsRepo() {
		return Stats{}
	}

	var (
		count      int
		first      time.Time
		hasFirst   bool
		extensions []git.ExtensionCount
		avgSubject int
	)

	wg := conc.NewWaitGroup()
	wg.Go(func() { count = s.client.CommitCount(ctx) })
	wg.Go(func() { first, hasFirst = s.client.FirstCommitTime(ctx) })
	wg.Go(func() { extensions = s.client.Extensions(ctx) })
	wg.Go(func() { avgSubject = s.client.AvgSubjectLength(ctx, 100) })
	wg.Wait()

	stats := Stats{
		CommitCount:   count,
		AvgSubjectLen: avgSubject,
	}
	if hasFirst {
		t := first
		stats.FirstCommit = &t
	}
	const topN = 5
	for i, ext := range extensions {
		if i >= topN {
			break
		}
		stats.TopExtensions = append(stats.TopExtensions, ExtensionCount(ext))
	}
	return stats
}

// totalScore is the weight-normalized weighted mean, rounded to nearest.
func totalScore(checks []HealthCheck) int {
	weightSum := 0
	weighted := 0
	for _, c := range checks {
		weightSum += c.Weight
		weighted += c.Score * c.Weight
	}
	if weightSum == 0 {
		return 0
	}
	return (weighted + weightSum/2) / weightSum
}

func (s *Scanner) checkWeeklyCommits(count int) HealthCheck {
	var score int
	var status CheckStatus
	switch {
	case count >= 10:
		score, status = 100, StatusGreat
	case count >= 5:
		score, status = 75, StatusOK
	case count >= 1:
		score, status = 40, StatusWarning
	default:
		score, status = 0, StatusBad
	}
	return HealthCheck{
		Name:   CheckWeeklyCommits,
		Status: status,
		Value:  fmt.Sprintf("%d commits this week", count),
		Raw:    count,
		Weight: s.weights.WeeklyCommits,
		Score:  score,
	}
}

func (s *Scanner) checkStreak(days int) HealthCheck {
	var score int
	var status CheckStatus
	switch {
	case days >= 7:
		score, status = 100, StatusGreat
	case days >= 3:
		score, status = 75, StatusOK
	case days >= 1:
		score, status = 40, StatusWarning
	default:
		score, status = 0, StatusBad
	}
	return HealthCheck{
		Name:   CheckStreak,
		Status: status,
		Value:  fmt.Sprintf("%d day streak", days),
		Raw:    days,
		Weight: s.weights.Streak,
		Score:  score,
	}
}

func (s *Scanner) checkCleanliness(changes int, ok bool) HealthCheck {
	if !ok {
		// Status probe failed; score as a fully dirty tree.
		changes = 10
	}
	var score int
	var status CheckStatus
	switch {
	case changes == 0:
		score, status = 100, StatusGreat
	case changes < 5:
		score, status = 60, StatusOK
	case changes < 10:
		score, status = 30, StatusWarning
	default:
		score, status = 0, StatusBad
	}
	value := fmt.Sprintf("%d changed files", changes)
	if changes == 0 {
		value = "working tree clean"
	} else if changes == 1 {
		value = "1 changed file"
	}
	return HealthCheck{
		Name:   CheckCleanliness,
		Status: status,
		Value:  value,
		Raw:    changes,
		Weight: s.weights.Cleanliness,
		Score:  score,
	}
}

func (s *Scanner) checkTests(present bool) HealthCheck {
	// Missing tests are penalized but not catastrophically.
	check := HealthCheck{
		Name:   CheckTests,
		Status: StatusBad,
		Value:  "no tests found",
		Weight: s.weights.Tests,
		Score:  20,
	}
	if present {
		check.Status = StatusGreat
		check.Value = "tests present"
		check.Raw = 1
		check.Score = 100
	}
	return check
}

func (s *Scanner) checkReadme(present bool) HealthCheck {
	check := HealthCheck{
		Name:   CheckReadme,
		Status: StatusWarning,
		Value:  "no README",
		Weight: s.weights.Readme,
		Score:  30,
	}
	if present {
		check.Status = StatusGreat
		check.Value = "README present"
		check.Raw = 1
		check.Score = 100
	}
	return check
}

func (s *Scanner) checkRecency(last time.Time, hasCommits bool, now time.Time) HealthCheck {
	if !hasCommits {
		return HealthCheck{
			Name:   CheckRecency,
			Status: StatusBad,
			Value:  "no commits yet",
			Weight: s.weights.Recency,
			Score:  0,
		}
	}
	hours := int(now.Sub(last).Hours())
	if hours < 0 {
		hours = 0
	}
	var score int
	var status CheckStatus
	switch {
	case hours < 24:
		score, status = 100, StatusGreat
	case hours < 72:
		score, status = 70, StatusOK
	case hours < 168:
		score, status = 40, StatusWarning
	default:
		score, status = 10, StatusBad
	}
	return HealthCheck{
		Name:   CheckRecency,
		Status: status,
		Value:  "committed " + humanizeHours(hours) + " ago",
		Raw:    hours,
		Weight: s.weights.Recency,
		Score:  score,
	}
}

func humanizeHours(hours int) string {
	switch {
	case hours < 1:
		return "less than an hour"
	case hours < 48:
		return fmt.Sprintf("%dh", hours)
	default:
		return fmt.Sprintf("%dd", hours/24)
	}
}
