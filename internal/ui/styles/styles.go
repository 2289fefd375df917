package styles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/nithya6875/gitbuddy-sub000/internal/health"
	"github.com/nithya6875/gitbuddy-sub000/internal/pet"
)

// Color palette - coherent with charmbracelet style
var (
	Primary   = lipgloss.Color("#7D56F4") // Purple (charmbracelet brand)
	Secondary = lipgloss.Color("#FF79C6") // Pink accent
	Success   = lipgloss.Color("#50FA7B") // Green
	Warning   = lipgloss.Color("#FFB86C") // Orange
	Error     = lipgloss.Color("#FF5555") // Red
	Muted     = lipgloss.Color("#6272A4") // Muted blue-gray
	Text      = lipgloss.Color("#F8F8F2") // Light text
	Subtle    = lipgloss.Color("#44475A") // Dark background accent
)

// Base styles
var (
	// Title style for headers
	Title = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFDF5")).
		Background(Primary).
		Padding(0, 1).
		Bold(true)

	// Normal text
	NormalText = lipgloss.NewStyle().
			Foreground(Text)

	// Muted text
	MutedText = lipgloss.NewStyle().
			Foreground(Muted)

	// Success text
	SuccessText = lipgloss.NewStyle().
			Foreground(Success)

	// Warning text
	WarningText = lipgloss.NewStyle().
			Foreground(Warning)

	// Error text
	ErrorText = lipgloss.NewStyle().
			Foreground(Error)

	// Highlighted (focused)
	Highlighted = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	// App container
	App = lipgloss.NewStyle().
		Padding(1, 2)

	// Box border around the pet
	Box = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Subtle).
		Padding(0, 1)

	// Help text
	Help = lipgloss.NewStyle().
		Foreground(Muted)

	// Spinner
	Spinner = lipgloss.NewStyle().
		Foreground(Primary)

	// Level badge next to the pet name
	LevelBadge = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#000000")).
			Background(Warning).
			Bold(true).
			Padding(0, 1)

	// Celebration text for level-ups
	Celebration = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)
)

// Symbols
var (
	CheckMark = lipgloss.NewStyle().Foreground(Success).SetString("✓")
	CrossMark = lipgloss.NewStyle().Foreground(Error).SetString("✗")
	Bullet    = lipgloss.NewStyle().Foreground(Primary).SetString("•")
	Heart     = lipgloss.NewStyle().Foreground(Error).SetString("♥")
	Star      = lipgloss.NewStyle().Foreground(Warning).SetString("★")
)

// Mood colors, one per mood.
var moodColors = map[pet.Mood]lipgloss.Color{
	pet.MoodExcited:  Secondary,
	pet.MoodHappy:    Success,
	pet.MoodNeutral:  Text,
	pet.MoodSad:      Warning,
	pet.MoodSick:     Error,
	pet.MoodSleeping: Muted,
}

// MoodColor returns the color associated with a mood.
func MoodColor(mood pet.Mood) lipgloss.Color {
	if c, ok := moodColors[mood]; ok {
		return c
	}
	return Text
}

// FormatMood renders the mood name in its color.
func FormatMood(mood pet.Mood) string {
	return lipgloss.NewStyle().Foreground(MoodColor(mood)).Bold(true).Render(string(mood))
}

// FormatStatus renders a check status in its color.
func FormatStatus(status health.CheckStatus) string {
	switch status {
	case health.StatusGreat:
		return SuccessText.Render("great")
	case health.StatusOK:
		return NormalText.Render("ok")
	case health.StatusWarning:
		return WarningText.Render("warning")
	default:
		return ErrorText.Render("bad")
	}
}

// FormatSuccess formats a success message
func FormatSuccess(msg string) string {
	return CheckMark.String() + " " + SuccessText.Render(msg)
}

// FormatError formats an error message
func FormatError(msg string) string {
	return CrossMark.String() + " " + ErrorText.Render(msg)
}

// FormatLevel renders the level badge.
func FormatLevel(level int) string {
	return LevelBadge.Render(fmt.Sprintf("Lv.%d", level))
}
