// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package platform

import (
	"fmt"
	"strings"
)

// CISystem identifies a CI system.
type CISystem int

const (
	// Unknown means no registered CI system was detected.
	Unknown CISystem = iota
	// Jenkins is a Jenkins (multibranch pipeline) build.
	Jenkins
)

var ciSystemNames = map[CISystem]string{
	Unknown: "UNKNOWN",
	Jenkins: "JENKINS",
}

// String returns the upper-case system name.
func (s CISystem) String() string {
	if name, ok := ciSystemNames[s]; ok {
		return name
	}
	return fmt.Sprintf("CISystem(%d)", int(s))
}

// ParseCISystem converts a system name (case-insensitive) to a CISystem.
func ParseCISystem(name string) (CISystem, error) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	for s, n := range ciSystemNames {
		if n == upper {
			return s, nil
		}
	}
	return Unknown, fmt.Errorf("unknown CI system: %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (s CISystem) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *CISystem) UnmarshalText(text []byte) error {
	parsed, err := ParseCISystem(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// CIContext describes the CI build the process runs in.
// A nil branch means the value is not known.
type CIContext struct {
	CISystem      CISystem `json:"ci_system" yaml:"ci_system"`
	IsPullRequest bool     `json:"is_pull_request" yaml:"is_pull_request"`
	TargetBranch  *string  `json:"target_branch" yaml:"target_branch"`
	CurrentBranch *string  `json:"current_branch" yaml:"current_branch"`
}

// UnknownContext is the result when no CI system is detected.
func UnknownContext() CIContext {
	return CIContext{CISystem: Unknown}
}

// NewBranchContext returns the context of a plain branch build,
// where the target branch is the branch itself.
func NewBranchContext(system CISystem, branch *string) CIContext {
	return CIContext{
		CISystem:      system,
		IsPullRequest: false,
		TargetBranch:  clone(branch),
		CurrentBranch: clone(branch),
	}
}

// NewPullRequestContext returns the context of a pull request build.
func NewPullRequestContext(system CISystem, target, current *string) CIContext {
	return CIContext{
		CISystem:      system,
		IsPullRequest: true,
		TargetBranch:  clone(target),
		CurrentBranch: clone(current),
	}
}

// IsCI reports whether a CI system was detected.
func (c CIContext) IsCI() bool {
	return c.CISystem != Unknown
}

// Target returns the target branch and whether it is known.
func (c CIContext) Target() (string, bool) {
	return deref(c.TargetBranch)
}

// Current returns the current branch and whether it is known.
func (c CIContext) Current() (string, bool) {
	return deref(c.CurrentBranch)
}

// Equal reports value equality on all fields.
func (c CIContext) Equal(other CIContext) bool {
	return c.CISystem == other.CISystem &&
		c.IsPullRequest == other.IsPullRequest &&
		equalOptional(c.TargetBranch, other.TargetBranch) &&
		equalOptional(c.CurrentBranch, other.CurrentBranch)
}

// String returns a one-line summary.
func (c CIContext) String() string {
	target, _ := c.Target()
	current, _ := c.Current()
	return fmt.Sprintf("%s pr=%t target=%q current=%q", c.CISystem, c.IsPullRequest, target, current)
}

func clone(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func deref(s *string) (string, bool) {
	if s == nil {
		return "", false
	}
	return *s, true
}

func equalOptional(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
