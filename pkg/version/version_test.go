package version

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFullString(t *testing.T) {
	orig := Version
	t.Cleanup(func() { Version = orig })

	Version = "dev"
	assert.Equal(t, "hello-ci development version", FullString())

	Version = "1.2.3"
	assert.Equal(t, "hello-ci 1.2.3", FullString())
}

func TestInfo(t *testing.T) {
	info := Info()
	assert.Equal(t, Version, info["version"])
	assert.Equal(t, BuildDate, info["buildDate"])
	assert.Equal(t, GitCommit, info["gitCommit"])
	assert.Equal(t, runtime.Version(), info["goVersion"])
}
