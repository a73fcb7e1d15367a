package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Haston00/DABO/internal/config"
	"github.com/Haston00/DABO/internal/history"
	"github.com/Haston00/DABO/internal/ui"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded scheduling runs, most recent first",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 10, "maximum runs to list (0 for all)")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	printer := ui.New()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.HistoryPath == "" {
		printer.Info("run history is disabled (history_path is empty)")
		return nil
	}
	if _, err := os.Stat(cfg.HistoryPath); os.IsNotExist(err) {
		printer.Info("no runs recorded yet")
		return nil
	}

	log, err := history.Open(cmd.Context(), cfg.HistoryPath)
	if err != nil {
		printer.Error(err.Error())
		return err
	}
	defer log.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	runs, err := log.Recent(cmd.Context(), limit)
	if err != nil {
		printer.Error(err.Error())
		return err
	}
	if len(runs) == 0 {
		printer.Info("no runs recorded yet")
		return nil
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%-16s %-24s %-20s %5s %5s %5s %6s\n",
		"WHEN", "PROJECT", "SCOPE", "ACTS", "CRIT", "MILE", "DAYS")
	for _, r := range runs {
		project := r.Project
		if runes := []rune(project); len(runes) > 24 {
			project = string(runes[:21]) + "..."
		}
		fmt.Fprintf(w, "%-16s %-24s %-20s %5d %5d %5d %6d\n",
			r.CreatedAt.Format("2006-01-02 15:04"), project, r.Scope,
			r.Activities, r.Critical, r.Milestones, r.ProjectDays)
	}
	return nil
}
