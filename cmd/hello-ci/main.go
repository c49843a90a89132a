// Package main is the entry point for the hello-ci CLI.
package main

import (
	"os"

	"github.com/cuinixam/hello-ci/pkg/env"
)

func main() {
	if err := newRootCmd(env.OS{}).Execute(); err != nil {
		os.Exit(1)
	}
}
