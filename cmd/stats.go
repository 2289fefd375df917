package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/nithya6875/gitbuddy-sub000/internal/config"
	"github.com/nithya6875/gitbuddy-sub000/internal/output"
)

var statsFormat string

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show repository fun facts",
	Long: `Prints secondary statistics about the repository: age since the
first commit, total commits, the most common file extensions, and the
average commit message length. These never affect the companion's health.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.LoadOrDefault()
		if !cmd.Flags().Changed("format") {
			statsFormat = cfg.Output.Format
		}
		scanner := newScanner(cfg)

		if !scanner.IsRepo() {
			fmt.Println("not a git repository")
			return nil
		}
		stats := scanner.Stats(cmd.Context())

		rows := [][]string{
			{"commits", strconv.Itoa(stats.CommitCount)},
			{"repo age", humanizeAge(stats.RepoAge(time.Now()))},
			{"avg message length", fmt.Sprintf("%d chars", stats.AvgSubjectLen)},
		}
		if len(stats.TopExtensions) > 0 {
			parts := make([]string, 0, len(stats.TopExtensions))
			for _, ext := range stats.TopExtensions {
				parts = append(parts, fmt.Sprintf("%s (%d)", ext.Extension, ext.Count))
			}
			rows = append(rows, []string{"top extensions", strings.Join(parts, ", ")})
		}

		formatter := output.NewFormatter(output.ParseFormat(statsFormat), cmd.OutOrStdout(), cfg.Output.Color)
		return formatter.Output(&output.Table{
			Title:   "Repository Stats",
			Headers: []string{"Stat", "Value"},
			Rows:    rows,
			Data:    stats,
		})
	},
}

func humanizeAge(age time.Duration) string {
	days := int(age.Hours() / 24)
	switch {
	case days <= 0:
		return "brand new"
	case days < 30:
		return fmt.Sprintf("%d days", days)
	case days < 365:
		return fmt.Sprintf("%d months", days/30)
	default:
		return fmt.Sprintf("%.1f years", float64(days)/365)
	}
}

func init() {
	statsCmd.Flags().StringVar(&statsFormat, "format", "text", "Output format (text, json, markdown)")
	rootCmd.AddCommand(statsCmd)
}
