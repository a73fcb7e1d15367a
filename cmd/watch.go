package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Haston00/DABO/internal/config"
	"github.com/Haston00/DABO/internal/cpm"
	"github.com/Haston00/DABO/internal/plan"
	"github.com/Haston00/DABO/internal/telemetry"
	"github.com/Haston00/DABO/internal/ui"
)

var watchCmd = &cobra.Command{
	Use:   "watch [plan]",
	Short: "Watch the plan file and recompute the schedule on every change",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	printer := ui.New()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyFlagOverrides(cmd, &cfg)
	path := planPath(cmd, args, cfg)

	w, err := plan.NewWatcher(path)
	if err != nil {
		printer.Error(fmt.Sprintf("failed to create watcher: %v", err))
		return err
	}
	if err := w.Start(); err != nil {
		printer.Error(fmt.Sprintf("failed to start watcher: %v", err))
		return err
	}
	defer w.Stop()

	emitter, err := openEmitter(cfg)
	if err != nil {
		printer.Error(err.Error())
	}
	defer emitter.Close()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		printer.Info("\nshutting down...")
		cancel()
	}()

	printer.Banner()
	printer.WatchStarted(path)
	recomputePlan(cfg, printer, emitter, path)

	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-w.Changes:
			if !ok {
				return nil
			}
			recomputePlan(cfg, printer, emitter, path)
		}
	}
}

// recomputePlan reloads the plan and reports the fresh summary. Load
// and compute failures are shown but never stop the watch: a broken
// intermediate save should not kill the session.
func recomputePlan(cfg config.Config, printer *ui.Printer, emitter *telemetry.Emitter, path string) {
	p, err := plan.Load(path)
	if err != nil {
		printer.ReloadFailed(err)
		return
	}

	acts := p.Activities()
	res, err := cpm.Compute(acts)
	if err != nil {
		printer.ReloadFailed(err)
		return
	}

	summary := cpm.Summarize(acts, res)
	printer.Reloaded(path, summary)
	if cfg.Verbose {
		names := make(map[string]string, len(acts))
		for _, a := range acts {
			names[a.ID] = a.Name
		}
		printer.CriticalPath(res.CriticalPath, names)
	}

	_ = emitter.Emit(telemetry.Event{
		Timestamp: time.Now().UTC(),
		Kind:      telemetry.KindWatchReload,
		Project:   projectName(p, cfg),
		Data:      summary,
	})
}
