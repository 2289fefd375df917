package pet

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyPress(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestUpdate_LevelUpDismissedByAnyKey(t *testing.T) {
	// The level-up screen says any key continues; that has to hold for the
	// quit shortcuts too.
	for _, msg := range []tea.KeyMsg{keyPress('q'), {Type: tea.KeyCtrlC}, keyPress('x')} {
		m := Model{keys: DefaultKeyMap(), view: viewLevelUp}

		updated, cmd := m.Update(msg)
		got := updated.(Model)

		assert.Equal(t, viewPet, got.view, "key %v must dismiss the level-up screen", msg)
		assert.Nil(t, cmd, "dismissing the level-up screen must not quit")
	}
}

func TestUpdate_QuitFromPetView(t *testing.T) {
	m := Model{keys: DefaultKeyMap(), view: viewPet}

	_, cmd := m.Update(keyPress('q'))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
