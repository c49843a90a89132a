package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cuinixam/hello-ci/pkg/filecontent"
	"github.com/cuinixam/hello-ci/pkg/observability"
)

func newReadCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "read [file]",
		Short: "Print a file's contents verbatim",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r := filecontent.New(args[0])
			content, err := r.Read()
			if err != nil {
				return err
			}
			a.logger.Debug("file read", observability.String("path", r.Path()), observability.Int("bytes", len(content)))
			_, err = fmt.Fprint(cmd.OutOrStdout(), content)
			return err
		},
	}
}
