package git

import (
	"context"
	"path"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Client runs the probe family against a single working directory. All
// methods are best-effort: on probe failure they return their zero value
// (plus ok=false where callers need to tell "zero" from "unknown").
type Client struct {
	dir     string
	timeout time.Duration
}

// NewClient creates a client for the given working directory. timeout
// overrides the per-probe default when positive.
func NewClient(dir string, timeout time.Duration) *Client {
	return &Client{dir: dir, timeout: timeout}
}

func (c *Client) run(ctx context.Context, timeout time.Duration, args ...string) Result {
	if c.timeout > 0 {
		timeout = c.timeout
	}
	return Probe{Args: args, Timeout: timeout}.Run(ctx, c.dir)
}

// WeeklyCommits counts commits in the trailing 7 calendar days, window
// starting at local midnight six days ago.
func (c *Client) WeeklyCommits(ctx context.Context) int {
	since := Midnight(time.Now()).AddDate(0, 0, -6).Format(time.RFC3339)
	res := c.run(ctx, 5*time.Second, "rev-list", "--count", "--since="+since, "HEAD")
	n, err := strconv.Atoi(strings.TrimSpace(res.FirstLine()))
	if !res.OK || err != nil || n < 0 {
		return 0
	}
	return n
}

// CommitDates returns the distinct calendar dates of the most recent limit
// commits, newest first, each normalized to local midnight. Dates are
// rendered in the caller's timezone, not the author's, so a commit made
// abroad lands on the day it happened here.
func (c *Client) CommitDates(ctx context.Context, limit int) []time.Time {
	if limit <= 0 {
		limit = 100
	}
	res := c.run(ctx, 5*time.Second, "log", "-"+strconv.Itoa(limit), "--format=%ad", "--date=format-local:%Y-%m-%d")
	if !res.OK {
		return nil
	}
	seen := make(map[string]struct{})
	var dates []time.Time
	for _, line := range res.Lines() {
		day := strings.TrimSpace(line)
		if _, dup := seen[day]; dup {
			continue
		}
		t, err := time.ParseInLocation("2006-01-02", day, time.Local)
		if err != nil {
			continue
		}
		seen[day] = struct{}{}
		dates = append(dates, t)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].After(dates[j]) })
	return dates
}

// WorktreeChanges counts modified and untracked paths from porcelain
// status. ok is false when the probe itself failed, which callers score as
// a dirty tree rather than a clean one.
func (c *Client) WorktreeChanges(ctx context.Context) (count int, ok bool) {
	res := c.run(ctx, 5*time.Second, "status", "--porcelain")
	if !res.OK {
		return 0, false
	}
	return len(res.Lines()), true
}

// testSuffixes are per-language test-file naming conventions.
var testSuffixes = []string{
	"_test.go",
	"_test.py",
	".spec.js", ".spec.jsx", ".spec.ts", ".spec.tsx",
	".test.js", ".test.jsx", ".test.ts", ".test.tsx",
	"_spec.rb",
	"Test.java", "Tests.cs",
}

// HasTests reports whether any tracked path matches a test-file naming
// convention.
func (c *Client) HasTests(ctx context.Context) bool {
	res := c.run(ctx, 10*time.Second, "ls-files")
	if !res.OK {
		return false
	}
	for _, file := range res.Lines() {
		if isTestFile(file) {
			return true
		}
	}
	return false
}

func isTestFile(file string) bool {
	base := path.Base(file)
	for _, suffix := range testSuffixes {
		if strings.HasSuffix(base, suffix) {
			return true
		}
	}
	if strings.HasPrefix(base, "test_") && strings.HasSuffix(base, ".py") {
		return true
	}
	dir := path.Dir(file)
	for _, seg := range strings.Split(dir, "/") {
		if seg == "test" || seg == "tests" || seg == "__tests__" || seg == "spec" {
			return true
		}
	}
	return false
}

// HasReadme reports whether a README file is tracked at the repo root.
func (c *Client) HasReadme(ctx context.Context) bool {
	res := c.run(ctx, 10*time.Second, "ls-files")
	if !res.OK {
		return false
	}
	for _, file := range res.Lines() {
		if strings.Contains(file, "/") {
			continue
		}
		name := strings.ToLower(file)
		if name == "readme" || strings.HasPrefix(name, "readme.") {
			return true
		}
	}
	return false
}

// LastCommitTime returns the committer timestamp of HEAD. ok is false when
// there are no commits or the probe failed.
func (c *Client) LastCommitTime(ctx context.Context) (time.Time, bool) {
	res := c.run(ctx, 3*time.Second, "log", "-1", "--format=%cI")
	if !res.OK {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, strings.TrimSpace(res.FirstLine()))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// CommitCount returns the total number of commits reachable from HEAD.
func (c *Client) CommitCount(ctx context.Context) int {
	res := c.run(ctx, 5*time.Second, "rev-list", "--count", "HEAD")
	n, err := strconv.Atoi(strings.TrimSpace(res.FirstLine()))
	if !res.OK || err != nil || n < 0 {
		return 0
	}
	return n
}

// FirstCommitTime returns the committer timestamp of the oldest commit.
// The probe output is oldest-first, so truncation of a long history still
// leaves the line we need at the top.
func (c *Client) FirstCommitTime(ctx context.Context) (time.Time, bool) {
	res := c.run(ctx, 10*time.Second, "log", "--reverse", "--format=%cI")
	if !res.OK {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, strings.TrimSpace(res.FirstLine()))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ExtensionCount is one entry of the tracked-file extension histogram.
type ExtensionCount struct {
	Extension string
	Count     int
}

// Extensions returns the histogram of tracked-file extensions, most common
// first. Extensionless files are grouped under "(none)".
func (c *Client) Extensions(ctx context.Context) []ExtensionCount {
	res := c.run(ctx, 10*time.Second, "ls-files")
	if !res.OK {
		return nil
	}
	counts := make(map[string]int)
	for _, file := range res.Lines() {
		ext := path.Ext(file)
		if ext == "" {
			ext = "(none)"
		}
		counts[ext]++
	}
	hist := make([]ExtensionCount, 0, len(counts))
	for ext, n := range counts {
		hist = append(hist, ExtensionCount{Extension: ext, Count: n})
	}
	sort.Slice(hist, func(i, j int) bool {
		if hist[i].Count != hist[j].Count {
			return hist[i].Count > hist[j].Count
		}
		return hist[i].Extension < hist[j].Extension
	})
	return hist
}

// AvgSubjectLength returns the average commit-subject length in characters
// over the last limit commits, rounded to the nearest integer.
func (c *Client) AvgSubjectLength(ctx context.Context, limit int) int {
	if limit <= 0 {
		limit = 100
	}
	res := c.run(ctx, 5*time.Second, "log", "-"+strconv.Itoa(limit), "--format=%s")
	lines := res.Lines()
	if !res.OK || len(lines) == 0 {
		return 0
	}
	total := 0
	for _, subject := range lines {
		total += len([]rune(subject))
	}
	return (total + len(lines)/2) / len(lines)
}

// Midnight truncates t to local midnight.
func Midnight(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
