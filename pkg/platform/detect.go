// Package platform detects the CI system a build runs in
package platform

import "github.com/cuinixam/hello-ci/pkg/env"

// DetectCIContext detects the CI context from the process environment
// using the default registry. It never fails: when no CI system is
// detected it returns UnknownContext.
func DetectCIContext() CIContext {
	return DetectCIContextFrom(env.OS{})
}

// DetectCIContextFrom detects the CI context from e using the default registry.
func DetectCIContextFrom(e env.Accessor) CIContext {
	return DefaultRegistry.Detect(e)
}

// IsRunningInCI returns true if running in any registered CI system
func IsRunningInCI() bool {
	return DetectCIContext().IsCI()
}

// GetSupportedSystems returns the registered CI systems in priority order
func GetSupportedSystems() []CISystem {
	return DefaultRegistry.Systems()
}
