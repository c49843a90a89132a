package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cuinixam/hello-ci/pkg/platform"
)

func newSystemsCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "systems",
		Short:             "List supported CI systems in detection order",
		Args:              cobra.NoArgs,
		PersistentPreRunE: skipSetup,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for i, s := range platform.GetSupportedSystems() {
				if _, err := fmt.Fprintf(out, "%d. %s\n", i+1, s); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
