package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Haston00/DABO/internal/config"
	"github.com/Haston00/DABO/internal/plan"
	"github.com/Haston00/DABO/internal/template"
	"github.com/Haston00/DABO/internal/ui"
)

var generateCmd = &cobra.Command{
	Use:   "generate [plan]",
	Short: "Generate a plan file from a standard construction template",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().String("name", "", "project name (default: configured project_name)")
	generateCmd.Flags().String("type", "office", "building type (office, retail, warehouse, medical, education, mixed_use)")
	generateCmd.Flags().Int("square-feet", 50000, "gross building area in square feet")
	generateCmd.Flags().Int("stories", 1, "number of stories")
	generateCmd.Flags().String("scope", template.ScopeNewConstruction, "project scope (new_construction, renovation, tenant_improvement)")
	generateCmd.Flags().String("start", "", "project start date (YYYY-MM-DD)")
	generateCmd.Flags().String("weekends", "", "weekend handling: skip or work")
	generateCmd.Flags().Bool("force", false, "overwrite an existing plan file")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	printer := ui.New()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	name, _ := cmd.Flags().GetString("name")
	if name == "" {
		name = cfg.ProjectName
	}
	buildingType, _ := cmd.Flags().GetString("type")
	squareFeet, _ := cmd.Flags().GetInt("square-feet")
	stories, _ := cmd.Flags().GetInt("stories")
	scope, _ := cmd.Flags().GetString("scope")
	start, _ := cmd.Flags().GetString("start")
	weekends, _ := cmd.Flags().GetString("weekends")
	force, _ := cmd.Flags().GetBool("force")

	if squareFeet <= 0 {
		return fmt.Errorf("--square-feet must be positive, got %d", squareFeet)
	}
	if start != "" {
		if _, err := time.Parse("2006-01-02", start); err != nil {
			return fmt.Errorf("invalid --start %q: %w", start, err)
		}
	}
	if !knownScope(scope) {
		printer.Info(fmt.Sprintf("unknown scope %q, using %s", scope, template.ScopeNewConstruction))
	}
	if !knownBuildingType(buildingType) {
		printer.Info(fmt.Sprintf("unknown building type %q, pricing as office", buildingType))
	}

	path := planPath(cmd, args, cfg)
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("plan file %s already exists (use --force to overwrite)", path)
		}
	}

	acts := template.Build(template.Params{
		BuildingType: buildingType,
		SquareFeet:   squareFeet,
		Stories:      stories,
		Scope:        scope,
	})

	p := plan.FromActivities(plan.Project{
		Name:     name,
		Start:    start,
		Weekends: weekends,
	}, acts)

	if err := plan.Write(path, p); err != nil {
		printer.Error(fmt.Sprintf("failed to write plan: %v", err))
		return err
	}

	printer.Info(fmt.Sprintf("generated %d activities in %s", len(acts), path))
	printer.Info(fmt.Sprintf("run 'dabo-sched schedule %s' to compute the schedule", path))
	return nil
}

func knownScope(scope string) bool {
	for _, s := range template.Scopes {
		if s == scope {
			return true
		}
	}
	return false
}

func knownBuildingType(bt string) bool {
	for _, t := range template.BuildingTypes {
		if t == bt {
			return true
		}
	}
	return false
}
