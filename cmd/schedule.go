package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/Haston00/DABO/internal/activity"
	"github.com/Haston00/DABO/internal/config"
	"github.com/Haston00/DABO/internal/cpm"
	"github.com/Haston00/DABO/internal/history"
	"github.com/Haston00/DABO/internal/telemetry"
	"github.com/Haston00/DABO/internal/ui"
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule [plan]",
	Short: "Compute the schedule: critical path, float, and project duration",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSchedule,
}

func init() {
	scheduleCmd.Flags().String("scope", "", "scope label recorded in run history")
	scheduleCmd.Flags().Bool("no-history", false, "skip recording the run")

	rootCmd.AddCommand(scheduleCmd)
}

func runSchedule(cmd *cobra.Command, args []string) error {
	printer := ui.New()

	cfg, path, p, err := loadPlan(cmd, args)
	if err != nil {
		printer.Error(err.Error())
		return err
	}

	acts := p.Activities()
	res, err := cpm.Compute(acts)
	if err != nil {
		return reportComputeError(printer, path, acts, err)
	}

	project := projectName(p, cfg)
	summary := cpm.Summarize(acts, res)
	if cfg.Verbose {
		fmt.Fprintln(cmd.OutOrStdout(), ui.Table(acts, res))
	}
	printer.Summary(project, summary)

	names := make(map[string]string, len(acts))
	for _, a := range acts {
		names[a.ID] = a.Name
	}
	printer.CriticalPath(res.CriticalPath, names)

	if noHistory, _ := cmd.Flags().GetBool("no-history"); !noHistory && cfg.HistoryPath != "" {
		scope, _ := cmd.Flags().GetString("scope")
		if err := recordRun(cmd, cfg, printer, project, scope, summary); err != nil {
			printer.Error(err.Error())
		}
	}

	emitter, err := openEmitter(cfg)
	if err != nil {
		printer.Error(err.Error())
	}
	defer emitter.Close()
	_ = emitter.Emit(telemetry.Event{
		Timestamp: time.Now().UTC(),
		Kind:      telemetry.KindComputed,
		Project:   project,
		Data:      summary,
	})

	return nil
}

// reportComputeError prints compute failures in full: every validation
// finding at once, or the cycle verdict.
func reportComputeError(printer *ui.Printer, path string, acts []activity.Activity, err error) error {
	var vf *cpm.ValidationFailure
	if errors.As(err, &vf) {
		printer.ValidateResult(path, len(acts), activity.Messages(vf.Errs))
		return err
	}
	if errors.Is(err, cpm.ErrCycle) {
		printer.ValidateResult(path, len(acts), []string{"dependency cycle detected"})
		return err
	}
	printer.Error(err.Error())
	return err
}

// recordRun appends the computed summary to the local run history.
func recordRun(cmd *cobra.Command, cfg config.Config, printer *ui.Printer, project, scope string, s cpm.Summary) error {
	if dir := filepath.Dir(cfg.HistoryPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create history dir: %w", err)
		}
	}

	log, err := history.Open(cmd.Context(), cfg.HistoryPath)
	if err != nil {
		return err
	}
	defer log.Close()

	id, err := log.Record(cmd.Context(), history.NewRun(project, scope, s))
	if err != nil {
		return err
	}
	printer.RunLogged(id)
	return nil
}

// openEmitter builds the telemetry emitter, or a no-op nil emitter
// when telemetry is not configured.
func openEmitter(cfg config.Config) (*telemetry.Emitter, error) {
	if cfg.TelemetryPath == "" {
		return nil, nil
	}
	if dir := filepath.Dir(cfg.TelemetryPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create telemetry dir: %w", err)
		}
	}
	return telemetry.NewEmitter(cfg.TelemetryPath)
}
