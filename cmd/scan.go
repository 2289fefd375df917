package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/nithya6875/gitbuddy-sub000/internal/config"
	"github.com/nithya6875/gitbuddy-sub000/internal/health"
	"github.com/nithya6875/gitbuddy-sub000/internal/output"
	"github.com/nithya6875/gitbuddy-sub000/internal/pet"
)

var (
	scanFormat string
	scanOutput string
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan the repository and print its health",
	Long: `Runs all health checks against the repository in the current
directory and prints the weighted result. The scan feeds the companion the
same way the interactive view does.

Examples:
  gitbuddy scan
  gitbuddy scan --format json
  gitbuddy scan --format markdown --output health.md`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.LoadOrDefault()
		if !cmd.Flags().Changed("format") {
			scanFormat = cfg.Output.Format
		}
		scanner := newScanner(cfg)

		snapshot := scanner.Scan(cmd.Context())

		// The one-shot scan still counts as a visit.
		store := pet.NewStore(pet.DataDir())
		store.Load()
		var earned int
		var leveledUp bool
		state := store.Update(func(s *pet.State) {
			oldXP := s.Experience
			s.Vitality = pet.ApplyDecay(s.Vitality, s.LastVisit, time.Now())
			earned = pet.ApplyScan(s, snapshot, time.Now())
			leveledUp = pet.LeveledUp(oldXP, s.Experience)
		})

		format := output.ParseFormat(scanFormat)
		w, closeFn, err := openOutput(scanOutput)
		if err != nil {
			return err
		}
		defer closeFn()

		colored := cfg.Output.Color && scanOutput == ""
		formatter := output.NewFormatter(format, w, colored)

		if !snapshot.IsGitRepo {
			return formatter.Output(&output.Table{
				Title:   "Repository Health",
				Headers: []string{"Check", "Status", "Value", "Score", "Weight"},
				Rows:    [][]string{},
				Footer:  []string{"not a git repository", "", "", "0", ""},
				Data:    snapshot,
			})
		}

		rows := make([][]string, 0, len(snapshot.Checks))
		for _, c := range snapshot.Checks {
			rows = append(rows, []string{
				c.Name,
				string(c.Status),
				c.Value,
				strconv.Itoa(c.Score),
				strconv.Itoa(c.Weight) + "%",
			})
		}

		table := &output.Table{
			Title:   "Repository Health",
			Headers: []string{"Check", "Status", "Value", "Score", "Weight"},
			Rows:    rows,
			Footer:  []string{"total", "", "", strconv.Itoa(snapshot.TotalScore), "100%"},
			Data:    snapshot,
		}
		if err := formatter.Output(table); err != nil {
			return err
		}

		if format == output.FormatText {
			fmt.Fprintf(w, "%s earned %d xp (level %d)\n", state.Name, earned, state.Level())
			if leveledUp {
				fmt.Fprintf(w, "%s leveled up!\n", state.Name)
			}
		}
		return nil
	},
}

// newScanner builds a Scanner for the current directory from config.
func newScanner(cfg *config.Config) *health.Scanner {
	opts := []health.Option{health.WithWeights(cfg.Scan.Weights)}
	if cfg.Scan.TimeoutSeconds > 0 {
		opts = append(opts, health.WithTimeout(time.Duration(cfg.Scan.TimeoutSeconds)*time.Second))
	}
	return health.New(".", opts...)
}

// openOutput returns stdout or the requested file.
func openOutput(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

func init() {
	scanCmd.Flags().StringVar(&scanFormat, "format", "text", "Output format (text, json, markdown)")
	scanCmd.Flags().StringVarP(&scanOutput, "output", "o", "", "Write output to file instead of stdout")
	rootCmd.AddCommand(scanCmd)
}
