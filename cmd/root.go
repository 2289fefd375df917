package cmd

import (
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/nithya6875/gitbuddy-sub000/internal/config"
	"github.com/nithya6875/gitbuddy-sub000/internal/logger"
	"github.com/nithya6875/gitbuddy-sub000/internal/pet"
	petui "github.com/nithya6875/gitbuddy-sub000/internal/ui/pet"
)

// Version info set via ldflags at build time
var (
	version = "dev"
	commit  = "unknown"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:     "gitbuddy",
	Short:   "A terminal companion fed by your repo's health",
	Version: version + " (" + commit + ")",
	Long: `gitbuddy is a terminal companion whose mood, vitality and level
reflect the health of the git repository in the current directory.

Running gitbuddy without arguments opens the interactive companion.

Quick start:
  gitbuddy          Open the companion
  gitbuddy scan     One-shot health scan
  gitbuddy stats    Repository fun facts`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.LoadOrDefault()

		store := pet.NewStore(pet.DataDir())
		state := store.Load()

		// A freshly hatched companion takes the configured name.
		if state.LastVisit.IsZero() && cfg.Pet.Name != "" {
			store.Update(func(s *pet.State) {
				s.Name = cfg.Pet.Name
			})
		}

		// Absence costs vitality before the session starts.
		store.Update(func(s *pet.State) {
			s.Vitality = pet.ApplyDecay(s.Vitality, s.LastVisit, time.Now())
		})

		scanner := newScanner(cfg)

		model := petui.NewModel(store, scanner)
		p := tea.NewProgram(model, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return err
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	defer logger.Close()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		// Logging is best effort; the companion runs without it.
		_ = logger.Init(verbose)
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose/debug logging")
}
