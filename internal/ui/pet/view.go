package pet

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	petstate "github.com/nithya6875/gitbuddy-sub000/internal/pet"
	"github.com/nithya6875/gitbuddy-sub000/internal/ui/styles"
)

// View renders the UI
func (m Model) View() string {
	var content string

	switch m.view {
	case viewPet:
		content = m.viewPet()
	case viewChecks:
		content = m.checksList.View()
	case viewRename:
		content = m.viewRename()
	case viewLevelUp:
		content = m.viewLevelUp()
	}

	return styles.App.Render(content)
}

// mood derives the current mood from vitality and keyboard idle time.
func (m Model) mood() petstate.Mood {
	return petstate.MoodFor(m.state.Vitality, time.Since(m.lastInput))
}

func (m Model) viewPet() string {
	var s strings.Builder

	mood := m.mood()

	// Name, level, mood
	s.WriteString(styles.Title.Render(m.state.Name) + " " + styles.FormatLevel(m.state.Level()))
	s.WriteString("  " + styles.FormatMood(mood) + "\n\n")

	// The companion itself
	sprite := lipgloss.NewStyle().
		Foreground(styles.MoodColor(mood)).
		Render(Sprite(mood, m.frame))
	s.WriteString(styles.Box.Render(sprite) + "\n\n")

	// HP bar
	s.WriteString(fmt.Sprintf("%s HP %3d/100  %s\n",
		styles.Heart.String(),
		m.state.Vitality,
		m.hpBar.ViewAs(float64(m.state.Vitality)/100)))

	// XP bar toward the next plateau
	if next, ok := petstate.NextLevelAt(m.state.Experience); ok {
		s.WriteString(fmt.Sprintf("%s XP %3d/%d  %s\n",
			styles.Star.String(),
			m.state.Experience,
			next,
			m.xpBar.ViewAs(float64(m.state.Experience)/float64(next))))
	} else {
		s.WriteString(fmt.Sprintf("%s XP %d (max level)\n",
			styles.Star.String(), m.state.Experience))
	}

	// Repo status line
	s.WriteString("\n")
	switch {
	case m.scanning:
		s.WriteString(m.spinner.View() + " " + styles.MutedText.Render("scanning repository..."))
	case m.hasScanned && !m.snapshot.IsGitRepo:
		s.WriteString(styles.MutedText.Render("no git repository in this directory"))
	case m.hasScanned:
		s.WriteString(styles.MutedText.Render(fmt.Sprintf(
			"health %d/100  %s  %d commits  %d day streak",
			m.snapshot.TotalScore,
			styles.Bullet.String(),
			m.snapshot.CommitCount,
			m.snapshot.Streak)))
	}

	if m.statusMsg != "" {
		s.WriteString("\n" + styles.FormatSuccess(m.statusMsg))
	}

	s.WriteString("\n\n" + styles.Help.Render("s:scan  f:feed  t:trick  c:checks  n:rename  q:quit"))
	return s.String()
}

func (m Model) viewRename() string {
	var s strings.Builder

	s.WriteString(styles.Title.Render("Rename") + "\n\n")
	s.WriteString("What should your companion be called?\n\n")
	s.WriteString(m.nameInput.View() + "\n\n")
	s.WriteString(styles.Help.Render("enter:rename  esc:cancel"))

	return s.String()
}

func (m Model) viewLevelUp() string {
	var s strings.Builder

	banner := `  *  LEVEL UP!  *`
	s.WriteString(styles.Celebration.Render(banner) + "\n\n")
	s.WriteString(styles.Box.Render(Sprite(petstate.MoodExcited, m.frame)) + "\n\n")
	s.WriteString(fmt.Sprintf("%s reached %s\n\n",
		styles.Highlighted.Render(m.state.Name),
		styles.FormatLevel(m.newLevel)))
	s.WriteString(styles.Help.Render("press any key to continue"))

	return s.String()
}
