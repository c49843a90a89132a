package main

import (
	"github.com/spf13/cobra"

	"github.com/cuinixam/hello-ci/pkg/errors"
	"github.com/cuinixam/hello-ci/pkg/observability"
	"github.com/cuinixam/hello-ci/pkg/output"
	"github.com/cuinixam/hello-ci/pkg/platform"
)

// detectFlags holds the flags for the detect command
type detectFlags struct {
	format      string
	color       bool
	failUnknown bool
}

func newDetectCmd(a *app) *cobra.Command {
	var opts detectFlags

	cmd := &cobra.Command{
		Use:   "detect",
		Short: "Detect the CI system and branch information",
		Long: `Detect the CI system the build runs in.

Prints the CI system, whether the build is a pull request, the branch
being merged into and the branch being built. Outside a known CI system
the result is UNKNOWN with no branches.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format := a.cfg.Output.Format
			if cmd.Flags().Changed("output") {
				format = opts.format
			}
			useColor := a.cfg.Output.Color
			if cmd.Flags().Changed("color") {
				useColor = opts.color
			}
			failUnknown := a.cfg.Detect.FailUnknown || opts.failUnknown

			formatter, err := output.NewFormatter(format)
			if err != nil {
				return err
			}

			ctx := platform.DetectCIContextFrom(a.env)
			a.logger.Debug("detection finished",
				observability.String("system", ctx.CISystem.String()),
				observability.Bool("pull_request", ctx.IsPullRequest))

			if err := formatter.WithColor(useColor).Write(cmd.OutOrStdout(), ctx); err != nil {
				return err
			}

			if failUnknown && !ctx.IsCI() {
				return errors.DetectionError("no CI system detected")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.format, "output", "o", "text", "Output format: text, json, yaml")
	cmd.Flags().BoolVar(&opts.color, "color", false, "Colorize text output")
	cmd.Flags().BoolVar(&opts.failUnknown, "fail-unknown", false, "Exit with an error when no CI system is detected")

	return cmd
}
