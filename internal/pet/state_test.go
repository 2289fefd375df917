package pet

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_LoadMissingFile(t *testing.T) {
	store := NewStore(t.TempDir())
	state := store.Load()

	assert.Equal(t, DefaultState(), state)
}

func TestStore_LoadCorruptFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "state.json"), []byte("{not json"), 0644))

	state := NewStore(dir).Load()
	assert.Equal(t, DefaultState(), state)
}

func TestStore_UpdatePersists(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)
	store.Load()

	visited := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)
	store.Update(func(s *State) {
		s.Name = "Pixel"
		s.Experience = 120
		s.Vitality = 80
		s.LastVisit = visited
	})

	reloaded := NewStore(dir).Load()
	assert.Equal(t, "Pixel", reloaded.Name)
	assert.Equal(t, 120, reloaded.Experience)
	assert.Equal(t, 80, reloaded.Vitality)
	assert.True(t, reloaded.LastVisit.Equal(visited))
	assert.Equal(t, 2, reloaded.Level())
}

func TestStore_UpdateReadsLatestSnapshot(t *testing.T) {
	// Two stores over the same file: an update through one must not
	// revert a field written through the other in between.
	dir := t.TempDir()
	a := NewStore(dir)
	b := NewStore(dir)
	a.Load()
	b.Load()

	a.Update(func(s *State) { s.Experience = 50 })
	state := b.Update(func(s *State) { s.Vitality = 75 })

	assert.Equal(t, 50, state.Experience, "experience written by the other store must survive")
	assert.Equal(t, 75, state.Vitality)
}

func TestStore_ClampsOnUpdate(t *testing.T) {
	store := NewStore(t.TempDir())
	store.Load()

	state := store.Update(func(s *State) {
		s.Vitality = 250
		s.Experience = -10
	})
	assert.Equal(t, 100, state.Vitality)
	assert.Equal(t, 0, state.Experience)
}

func TestState_LevelAlwaysDerived(t *testing.T) {
	// A hand-edited file carrying a bogus "level" field must not matter:
	// level comes from experience, nothing else.
	dir := t.TempDir()
	raw := map[string]any{
		"name":       "Edited",
		"experience": 700,
		"vitality":   40,
		"level":      1,
	}
	data, err := json.Marshal(raw)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "state.json"), data, 0644))

	state := NewStore(dir).Load()
	assert.Equal(t, 4, state.Level())
}

func TestStore_GetReturnsSnapshot(t *testing.T) {
	store := NewStore(t.TempDir())
	store.Load()
	store.Update(func(s *State) { s.Name = "Snap" })

	assert.Equal(t, "Snap", store.Get().Name)
}
