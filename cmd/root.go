package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Haston00/DABO/internal/config"
	"github.com/Haston00/DABO/internal/plan"
)

var rootCmd = &cobra.Command{
	Use:   "dabo-sched",
	Short: "Construction schedule engine built on the critical path method",
	Long:  "dabo-sched computes construction schedules from activity plans: dependency sequencing, critical path, float, calendar dates, and exports.",
	RunE:  runRootDefault,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default .dabo-sched.yaml)")
	rootCmd.PersistentFlags().String("plan", "", "plan file (default plan.toml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".dabo-sched")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("DABO_SCHED")
	viper.AutomaticEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}

// runRootDefault shows the schedule when the plan file exists in the
// cwd. If there is no plan yet, it falls back to showing help.
func runRootDefault(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return cmd.Help()
	}
	path := planPath(cmd, nil, cfg)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cmd.Help()
	}
	// Hand the resolved path over as the positional argument so a
	// --plan override on the bare invocation is not lost.
	return runShow(showCmd, []string{path})
}

// planPath resolves the plan file: positional argument, then --plan,
// then the configured default.
func planPath(cmd *cobra.Command, args []string, cfg config.Config) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	if p, _ := cmd.Flags().GetString("plan"); p != "" {
		return p
	}
	return cfg.PlanPath
}

// applyFlagOverrides applies CLI flag values to the loaded config.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	if v, _ := cmd.Flags().GetBool("verbose"); v {
		cfg.Verbose = true
	}
}

// loadPlan loads config and the resolved plan file in one step, the
// common preamble of every plan-reading command.
func loadPlan(cmd *cobra.Command, args []string) (config.Config, string, *plan.Plan, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, "", nil, fmt.Errorf("failed to load config: %w", err)
	}
	applyFlagOverrides(cmd, &cfg)
	path := planPath(cmd, args, cfg)
	p, err := plan.Load(path)
	if err != nil {
		return cfg, path, nil, err
	}
	return cfg, path, p, nil
}

// projectName prefers the name in the plan file over the configured one.
func projectName(p *plan.Plan, cfg config.Config) string {
	if p != nil && p.Project.Name != "" {
		return p.Project.Name
	}
	return cfg.ProjectName
}
