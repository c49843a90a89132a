// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package output

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/cuinixam/hello-ci/pkg/errors"
	"github.com/cuinixam/hello-ci/pkg/platform"
)

func strPtr(s string) *string { return &s }

func TestParseFormat(t *testing.T) {
	for _, name := range []string{"text", "JSON", " yaml "} {
		_, err := ParseFormat(name)
		assert.NoError(t, err, name)
	}

	_, err := ParseFormat("xml")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrValidation))
}

func TestNewFormatterRejectsUnknownFormat(t *testing.T) {
	f, err := NewFormatter("toml")
	assert.Nil(t, f)
	assert.Error(t, err)
}

func TestFormatText(t *testing.T) {
	f, err := NewFormatter("text")
	require.NoError(t, err)

	out, err := f.Format(platform.NewPullRequestContext(platform.Jenkins, strPtr("main"), strPtr("feature-branch")))
	require.NoError(t, err)

	assert.Contains(t, out, "CI system")
	assert.Contains(t, out, "JENKINS")
	assert.Contains(t, out, "true")
	assert.Contains(t, out, "main")
	assert.Contains(t, out, "feature-branch")
	assert.NotContains(t, out, "\x1b[", "colors are off by default")
}

func TestFormatTextUnknown(t *testing.T) {
	f, err := NewFormatter("text")
	require.NoError(t, err)

	out, err := f.Format(platform.UnknownContext())
	require.NoError(t, err)

	assert.Contains(t, out, "UNKNOWN")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasSuffix(strings.TrimSpace(lines[2]), absent))
	assert.True(t, strings.HasSuffix(strings.TrimSpace(lines[3]), absent))
}

func TestFormatTextColor(t *testing.T) {
	f, err := NewFormatter("text")
	require.NoError(t, err)

	out, err := f.WithColor(true).Format(platform.NewBranchContext(platform.Jenkins, strPtr("main")))
	require.NoError(t, err)
	assert.Contains(t, out, "\x1b[")
}

func TestFormatJSON(t *testing.T) {
	f, err := NewFormatter("json")
	require.NoError(t, err)

	out, err := f.Format(platform.NewBranchContext(platform.Jenkins, strPtr("main")))
	require.NoError(t, err)
	assert.JSONEq(t, `{"ci_system":"JENKINS","is_pull_request":false,"target_branch":"main","current_branch":"main"}`, out)

	var decoded platform.CIContext
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, platform.Jenkins, decoded.CISystem)
}

func TestFormatYAML(t *testing.T) {
	f, err := NewFormatter("yaml")
	require.NoError(t, err)

	out, err := f.Format(platform.UnknownContext())
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "UNKNOWN", decoded["ci_system"])
	assert.Equal(t, false, decoded["is_pull_request"])
	assert.Nil(t, decoded["target_branch"])
	assert.Nil(t, decoded["current_branch"])
}
