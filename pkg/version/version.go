// Package version provides version information for hello-ci.
// These variables are set via ldflags during the build process.
package version

import "runtime"

// Version is the current version of the binary.
// Set via -ldflags "-X github.com/cuinixam/hello-ci/pkg/version.Version=..."
var Version = "dev"

// BuildDate is the date when the binary was built.
// Set via -ldflags "-X github.com/cuinixam/hello-ci/pkg/version.BuildDate=..."
var BuildDate = "unknown"

// GitCommit is the git commit hash used to build the binary.
// Set via -ldflags "-X github.com/cuinixam/hello-ci/pkg/version.GitCommit=..."
var GitCommit = "unknown"

// FullString returns a detailed version string including build info.
func FullString() string {
	if Version == "dev" {
		return "hello-ci development version"
	}
	return "hello-ci " + Version
}

// Info returns all version information as a map.
func Info() map[string]string {
	return map[string]string{
		"version":   Version,
		"buildDate": BuildDate,
		"gitCommit": GitCommit,
		"goVersion": runtime.Version(),
	}
}
