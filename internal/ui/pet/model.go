package pet

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nithya6875/gitbuddy-sub000/internal/health"
	petstate "github.com/nithya6875/gitbuddy-sub000/internal/pet"
	"github.com/nithya6875/gitbuddy-sub000/internal/ui/styles"
)

// View states
type viewState int

const (
	viewPet viewState = iota
	viewChecks
	viewRename
	viewLevelUp
)

// checkItem implements list.Item for bubbles/list
type checkItem struct {
	check health.HealthCheck
}

func (i checkItem) Title() string {
	return i.check.Name + "  " + styles.FormatStatus(i.check.Status)
}

func (i checkItem) Description() string {
	return fmt.Sprintf("%s | score %d | weight %d%%", i.check.Value, i.check.Score, i.check.Weight)
}

func (i checkItem) FilterValue() string {
	return i.check.Name
}

// KeyMap defines keyboard shortcuts
type KeyMap struct {
	Scan   key.Binding
	Feed   key.Binding
	Trick  key.Binding
	Checks key.Binding
	Rename key.Binding
	Quit   key.Binding
	Back   key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Scan: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "scan"),
		),
		Feed: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "feed"),
		),
		Trick: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "trick"),
		),
		Checks: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "checks"),
		),
		Rename: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "rename"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
	}
}

// Model is the main TUI model
type Model struct {
	store   *petstate.Store
	scanner *health.Scanner

	state      petstate.State
	snapshot   health.RepositoryHealth
	hasScanned bool

	checksList list.Model
	nameInput  textinput.Model
	spinner    spinner.Model
	hpBar      progress.Model
	xpBar      progress.Model
	keys       KeyMap

	view          viewState
	width, height int

	scanning  bool
	frame     int
	lastInput time.Time
	statusMsg string
	newLevel  int
}

// NewModel creates a new TUI model
func NewModel(store *petstate.Store, scanner *health.Scanner) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(styles.Primary).
		BorderForeground(styles.Primary)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(styles.Muted).
		BorderForeground(styles.Primary)

	l := list.New([]list.Item{}, delegate, 0, 0)
	l.Title = "Health Checks"
	l.Styles.Title = styles.Title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)

	ti := textinput.New()
	ti.Placeholder = "new name"
	ti.CharLimit = 24
	ti.Width = 30

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.Spinner

	hp := progress.New(progress.WithGradient("#FF5555", "#50FA7B"))
	hp.Width = 30
	hp.ShowPercentage = false

	xp := progress.New(progress.WithSolidFill("#7D56F4"))
	xp.Width = 30
	xp.ShowPercentage = false

	return Model{
		store:      store,
		scanner:    scanner,
		state:      store.Get(),
		checksList: l,
		nameInput:  ti,
		spinner:    s,
		hpBar:      hp,
		xpBar:      xp,
		keys:       DefaultKeyMap(),
		view:       viewPet,
		scanning:   true,
		lastInput:  time.Now(),
	}
}

// Init kicks off the initial scan and the animation clock.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.doScan,
		m.spinner.Tick,
		tick(),
	)
}

// Messages

type tickMsg time.Time

type scanDoneMsg struct {
	snapshot  health.RepositoryHealth
	state     petstate.State
	leveledUp bool
	newLevel  int
}

type awardMsg struct {
	state     petstate.State
	message   string
	leveledUp bool
	newLevel  int
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// startScan marks the model as scanning and returns the scan command.
func (m *Model) startScan() tea.Cmd {
	m.scanning = true
	return m.doScan
}

// doScan runs a full scan and folds the result into the persisted state
// with a single read-modify-write.
func (m Model) doScan() tea.Msg {
	snapshot := m.scanner.Scan(context.Background())

	var leveledUp bool
	var newLevel int
	state := m.store.Update(func(s *petstate.State) {
		oldXP := s.Experience
		petstate.ApplyScan(s, snapshot, time.Now())
		leveledUp = petstate.LeveledUp(oldXP, s.Experience)
		newLevel = petstate.LevelFor(s.Experience)
	})

	return scanDoneMsg{
		snapshot:  snapshot,
		state:     state,
		leveledUp: leveledUp,
		newLevel:  newLevel,
	}
}

// feed gives the companion a snack.
func (m Model) feed() tea.Msg {
	return m.award(petstate.ActionFeed, 1, "%s munches happily (+%d xp)")
}

// trick performs a trick; every so often the companion nails a big one.
func (m Model) trick() tea.Msg {
	if rand.Intn(4) == 0 {
		return m.award(petstate.ActionTrickBig, 1, "%s does an amazing backflip! (+%d xp)")
	}
	return m.award(petstate.ActionTrickSmall, 1, "%s rolls over (+%d xp)")
}

func (m Model) award(action petstate.Action, count int, format string) tea.Msg {
	earned := petstate.Reward(action, count)
	var leveledUp bool
	var newLevel int
	state := m.store.Update(func(s *petstate.State) {
		oldXP := s.Experience
		s.Experience += earned
		s.LastVisit = time.Now()
		leveledUp = petstate.LeveledUp(oldXP, s.Experience)
		newLevel = petstate.LevelFor(s.Experience)
	})
	return awardMsg{
		state:     state,
		message:   fmt.Sprintf(format, state.Name, earned),
		leveledUp: leveledUp,
		newLevel:  newLevel,
	}
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		h, v := styles.App.GetFrameSize()
		m.checksList.SetSize(msg.Width-h, msg.Height-v-2)
		return m, nil

	case tea.KeyMsg:
		m.lastInput = time.Now()

		// Rename captures all keys; the level-up screen promises that any
		// key dismisses it, so quit is deferred there too.
		if key.Matches(msg, m.keys.Quit) && m.view != viewRename && m.view != viewLevelUp {
			return m, tea.Quit
		}

		switch m.view {
		case viewPet:
			return m.updatePet(msg)
		case viewChecks:
			return m.updateChecks(msg)
		case viewRename:
			return m.updateRename(msg)
		case viewLevelUp:
			m.view = viewPet
			return m, nil
		}

	case tickMsg:
		m.frame++
		return m, tick()

	case scanDoneMsg:
		m.scanning = false
		m.snapshot = msg.snapshot
		m.hasScanned = true
		m.state = msg.state

		items := make([]list.Item, len(msg.snapshot.Checks))
		for i, c := range msg.snapshot.Checks {
			items[i] = checkItem{check: c}
		}
		m.checksList.SetItems(items)

		if !msg.snapshot.IsGitRepo {
			m.statusMsg = "no git repository here"
		} else {
			m.statusMsg = fmt.Sprintf("scan complete: %d/100", msg.snapshot.TotalScore)
		}
		if msg.leveledUp {
			m.newLevel = msg.newLevel
			m.view = viewLevelUp
		}
		return m, nil

	case awardMsg:
		m.state = msg.state
		m.statusMsg = msg.message
		if msg.leveledUp {
			m.newLevel = msg.newLevel
			m.view = viewLevelUp
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) updatePet(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Scan):
		if m.scanning {
			return m, nil
		}
		cmd := m.startScan()
		m.statusMsg = ""
		return m, cmd

	case key.Matches(msg, m.keys.Feed):
		return m, m.feed

	case key.Matches(msg, m.keys.Trick):
		return m, m.trick

	case key.Matches(msg, m.keys.Checks):
		if m.hasScanned && m.snapshot.IsGitRepo {
			m.view = viewChecks
		}
		return m, nil

	case key.Matches(msg, m.keys.Rename):
		m.view = viewRename
		m.nameInput.SetValue("")
		m.nameInput.Focus()
		return m, textinput.Blink
	}
	return m, nil
}

func (m Model) updateChecks(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Back) || key.Matches(msg, m.keys.Checks) {
		m.view = viewPet
		return m, nil
	}
	var cmd tea.Cmd
	m.checksList, cmd = m.checksList.Update(msg)
	return m, cmd
}

func (m Model) updateRename(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		name := strings.TrimSpace(m.nameInput.Value())
		if name != "" {
			m.state = m.store.Update(func(s *petstate.State) {
				s.Name = name
			})
			m.statusMsg = "renamed to " + name
		}
		m.view = viewPet
		return m, nil

	case tea.KeyEsc:
		m.view = viewPet
		return m, nil
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}
