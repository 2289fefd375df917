package pet

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/nithya6875/gitbuddy-sub000/internal/logger"
)

// State is the durable progression state. Level is intentionally absent:
// it is always derived from Experience so a hand-edited state file can
// never desync the two.
type State struct {
	Name           string    `json:"name"`
	Experience     int       `json:"experience"`
	Vitality       int       `json:"vitality"`
	LastVisit      time.Time `json:"last_visit"`
	LastSeenCommit string    `json:"last_seen_commit,omitempty"`
}

// Level derives the current level from experience.
func (s State) Level() int {
	return LevelFor(s.Experience)
}

// DefaultState returns the state of a freshly hatched companion.
func DefaultState() State {
	return State{
		Name:     "Bud",
		Vitality: 50,
	}
}

// Store handles persistence of the companion state as a JSON file under
// the data directory.
type Store struct {
	path  string
	mu    sync.RWMutex
	state State
}

// NewStore creates a store rooted at dataDir.
func NewStore(dataDir string) *Store {
	return &Store{
		path:  filepath.Join(dataDir, "state.json"),
		state: DefaultState(),
	}
}

// DataDir returns the default data directory, honoring XDG_DATA_HOME.
func DataDir() string {
	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		homeDir, _ := os.UserHomeDir()
		dataDir = filepath.Join(homeDir, ".local", "share")
	}
	return filepath.Join(dataDir, "gitbuddy")
}

// Load reads the state from disk. A missing or unreadable file is not an
// error: the companion starts from defaults and the problem is logged.
func (s *Store) Load() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = s.read()
	return s.state
}

// read loads the latest persisted snapshot, falling back to defaults.
// Callers must hold mu.
func (s *Store) read() State {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("failed to read state file, starting fresh", "path", s.path, "error", err)
		}
		return DefaultState()
	}

	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		logger.Warn("corrupt state file, starting fresh", "path", s.path, "error", err)
		return DefaultState()
	}

	if state.Name == "" {
		state.Name = DefaultState().Name
	}
	state.Vitality = Vitality(state.Vitality)
	if state.Experience < 0 {
		state.Experience = 0
	}
	return state
}

// Get returns the current in-memory snapshot.
func (s *Store) Get() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Update applies fn to the latest persisted snapshot and writes the result
// back. Every mutation goes through here so a concurrent award between a
// scan's read and write is never silently reverted.
func (s *Store) Update(fn func(*State)) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.read()
	fn(&state)
	state.Vitality = Vitality(state.Vitality)
	if state.Experience < 0 {
		state.Experience = 0
	}
	s.state = state

	if err := s.write(state); err != nil {
		logger.Warn("failed to save state", "path", s.path, "error", err)
	}
	return state
}

// write persists the state. Callers must hold mu.
func (s *Store) write(state State) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0644)
}
