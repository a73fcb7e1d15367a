package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Haston00/DABO/internal/activity"
	"github.com/Haston00/DABO/internal/telemetry"
	"github.com/Haston00/DABO/internal/ui"
)

var validateCmd = &cobra.Command{
	Use:   "validate [plan]",
	Short: "Check a plan file for structural problems and dependency cycles",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	printer := ui.New()

	cfg, path, p, err := loadPlan(cmd, args)
	if err != nil {
		printer.Error(err.Error())
		return err
	}

	acts := p.Activities()
	problems := activity.Messages(activity.Validate(acts))
	if activity.DetectCycles(acts) {
		problems = append(problems, "dependency cycle detected")
	}

	printer.ValidateResult(path, len(acts), problems)

	emitter, err := openEmitter(cfg)
	if err != nil {
		printer.Error(err.Error())
	}
	defer emitter.Close()
	_ = emitter.Emit(telemetry.Event{
		Timestamp: time.Now().UTC(),
		Kind:      telemetry.KindValidated,
		Project:   projectName(p, cfg),
		Data:      map[string]any{"plan": path, "problems": len(problems)},
	})

	if len(problems) > 0 {
		return fmt.Errorf("validation failed with %d error(s)", len(problems))
	}
	return nil
}
