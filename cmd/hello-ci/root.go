package main

import (
	"github.com/spf13/cobra"

	"github.com/cuinixam/hello-ci/pkg/config"
	"github.com/cuinixam/hello-ci/pkg/env"
	"github.com/cuinixam/hello-ci/pkg/observability"
	"github.com/cuinixam/hello-ci/pkg/version"
)

// app carries state shared by all commands.
type app struct {
	configPath string
	logLevel   string

	env    env.Accessor
	cfg    *config.Config
	logger observability.Logger
}

// newRootCmd builds the command tree. e is the environment that
// detection reads from.
func newRootCmd(e env.Accessor) *cobra.Command {
	a := &app{env: e}

	rootCmd := &cobra.Command{
		Use:   "hello-ci",
		Short: "Detect the CI build context",
		Long: `hello-ci - CI build context detector.

Inspects the environment of the current process to find out which CI
system the build runs in, whether it builds a pull request and which
branches are involved.`,
		Version:       version.FullString(),
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Path to configuration file (default is ./"+config.ProjectConfigFile+")")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(newDetectCmd(a))
	rootCmd.AddCommand(newReadCmd(a))
	rootCmd.AddCommand(newSystemsCmd())
	rootCmd.AddCommand(newConfigCmd(a))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// setup loads configuration and installs the logger.
func (a *app) setup() error {
	cfg, err := config.NewLoader().
		WithEnv(a.env).
		WithConfigFile(a.configPath).
		Load()
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	a.cfg = cfg
	a.logger = observability.NewLogger(cfg.LogLevel)
	observability.SetDefault(a.logger)
	a.logger.Debug("configuration loaded",
		observability.String("log_level", cfg.LogLevel),
		observability.String("output_format", cfg.Output.Format))
	return nil
}

// skipSetup lets a command run without loading configuration.
func skipSetup(cmd *cobra.Command, args []string) error {
	return nil
}
