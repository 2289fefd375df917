package pet

import (
	"testing"
	"time"
)

func TestLevelFor(t *testing.T) {
	tests := []struct {
		xp   int
		want int
	}{
		{0, 1},
		{99, 1},
		{100, 2},
		{299, 2},
		{300, 3},
		{599, 3},
		{600, 4},
		{999, 4},
		{1000, 5},
		{5000, 5},
	}
	for _, tt := range tests {
		if got := LevelFor(tt.xp); got != tt.want {
			t.Errorf("LevelFor(%d) = %d, want %d", tt.xp, got, tt.want)
		}
	}
}

func TestLevelFor_Monotonic(t *testing.T) {
	prev := 0
	for xp := 0; xp <= 2000; xp++ {
		level := LevelFor(xp)
		if level < prev {
			t.Fatalf("LevelFor(%d) = %d, decreased from %d", xp, level, prev)
		}
		if level < 1 || level > MaxLevel {
			t.Fatalf("LevelFor(%d) = %d, out of [1,%d]", xp, level, MaxLevel)
		}
		prev = level
	}
}

func TestLeveledUp(t *testing.T) {
	tests := []struct {
		oldXP, newXP int
		want         bool
	}{
		{0, 50, false},
		{0, 100, true},
		{99, 100, true},
		{100, 299, false},
		{0, 1000, true}, // several plateaus crossed, still one event
		{1000, 9999, false},
	}
	for _, tt := range tests {
		if got := LeveledUp(tt.oldXP, tt.newXP); got != tt.want {
			t.Errorf("LeveledUp(%d, %d) = %v, want %v", tt.oldXP, tt.newXP, got, tt.want)
		}
	}
}

func TestLeveledUp_ConsistentWithLevel(t *testing.T) {
	for a := 0; a <= 1200; a += 37 {
		for b := a; b <= 1200; b += 53 {
			want := LevelFor(b) > LevelFor(a)
			if got := LeveledUp(a, b); got != want {
				t.Fatalf("LeveledUp(%d, %d) = %v, want %v", a, b, got, want)
			}
		}
	}
}

func TestNextLevelAt(t *testing.T) {
	next, ok := NextLevelAt(0)
	if !ok || next != 100 {
		t.Errorf("NextLevelAt(0) = %d, %v, want 100, true", next, ok)
	}
	next, ok = NextLevelAt(350)
	if !ok || next != 600 {
		t.Errorf("NextLevelAt(350) = %d, %v, want 600, true", next, ok)
	}
	if _, ok := NextLevelAt(1000); ok {
		t.Error("NextLevelAt(1000) should report max level")
	}
}

func TestVitality_Clamps(t *testing.T) {
	tests := []struct {
		score, want int
	}{
		{-5, 0},
		{0, 0},
		{42, 42},
		{100, 100},
		{140, 100},
	}
	for _, tt := range tests {
		if got := Vitality(tt.score); got != tt.want {
			t.Errorf("Vitality(%d) = %d, want %d", tt.score, got, tt.want)
		}
	}
}

func TestMoodFor_Boundaries(t *testing.T) {
	tests := []struct {
		vitality int
		idle     time.Duration
		want     Mood
	}{
		{90, 0, MoodExcited},
		{89, 0, MoodHappy},
		{70, 0, MoodHappy},
		{69, 0, MoodNeutral},
		{50, 0, MoodNeutral},
		{49, 0, MoodSad},
		{25, 0, MoodSad},
		{24, 0, MoodSick},
		{0, 0, MoodSick},
		{100, 61 * time.Second, MoodSleeping},
		{0, 61 * time.Second, MoodSleeping},
		{50, 60 * time.Second, MoodSleeping},
		{50, 59 * time.Second, MoodNeutral},
	}
	for _, tt := range tests {
		if got := MoodFor(tt.vitality, tt.idle); got != tt.want {
			t.Errorf("MoodFor(%d, %v) = %s, want %s", tt.vitality, tt.idle, got, tt.want)
		}
	}
}

func TestDecayPoints(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name  string
		since time.Duration
		want  int
	}{
		{"within grace", 23 * time.Hour, 0},
		{"exactly one day", 24 * time.Hour, 0},
		{"two days", 48 * time.Hour, 5},
		{"three days", 72 * time.Hour, 10},
		{"a month caps", 30 * 24 * time.Hour, 30},
		{"a year caps", 365 * 24 * time.Hour, 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DecayPoints(now.Add(-tt.since), now)
			if got != tt.want {
				t.Errorf("DecayPoints(-%v) = %d, want %d", tt.since, got, tt.want)
			}
			// Pure function of elapsed time: repeating changes nothing.
			if again := DecayPoints(now.Add(-tt.since), now); again != got {
				t.Errorf("DecayPoints not idempotent: %d then %d", got, again)
			}
		})
	}
}

func TestDecayPoints_ZeroLastVisit(t *testing.T) {
	if got := DecayPoints(time.Time{}, time.Now()); got != 0 {
		t.Errorf("DecayPoints(zero) = %d, want 0", got)
	}
}

func TestApplyDecay(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name     string
		vitality int
		since    time.Duration
		want     int
	}{
		{"no decay in grace", 80, 12 * time.Hour, 80},
		{"two days", 80, 48 * time.Hour, 75},
		{"floors at 10", 12, 10 * 24 * time.Hour, 10},
		{"cap keeps survivors", 100, 365 * 24 * time.Hour, 70},
		{"never raises a weak pet", 5, 48 * time.Hour, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyDecay(tt.vitality, now.Add(-tt.since), now)
			if got != tt.want {
				t.Errorf("ApplyDecay(%d, -%v) = %d, want %d", tt.vitality, tt.since, got, tt.want)
			}
		})
	}
}

func TestReward(t *testing.T) {
	tests := []struct {
		action Action
		count  int
		want   int
	}{
		{ActionScan, 1, 2},
		{ActionFeed, 3, 15},
		{ActionTrickSmall, 1, 5},
		{ActionTrickBig, 1, 15},
		{ActionCommit, 1, 10},
		{ActionCommitClean, 1, 15},
		{ActionStreakDay, 1, 3},
		{ActionCleanBonus, 1, 5},
		{ActionScan, 0, 0},
		{ActionFeed, -2, 0},
	}
	for _, tt := range tests {
		if got := Reward(tt.action, tt.count); got != tt.want {
			t.Errorf("Reward(%v, %d) = %d, want %d", tt.action, tt.count, got, tt.want)
		}
	}
}
