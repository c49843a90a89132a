// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package platform

import "github.com/cuinixam/hello-ci/pkg/env"

// Jenkins environment variables.
const (
	EnvJenkinsHome  = "JENKINS_HOME"
	EnvChangeID     = "CHANGE_ID"
	EnvChangeTarget = "CHANGE_TARGET"
	EnvChangeBranch = "CHANGE_BRANCH"
	EnvBranchName   = "BRANCH_NAME"
)

// JenkinsDetector detects Jenkins builds.
//
// Only presence of a variable matters: JENKINS_HOME="" is still Jenkins and
// CHANGE_ID="" is still a pull request build.
type JenkinsDetector struct{}

// NewJenkinsDetector creates a Jenkins detector.
func NewJenkinsDetector() Detector {
	return JenkinsDetector{}
}

// Detect implements Detector.
func (JenkinsDetector) Detect(e env.Accessor) (*CIContext, bool) {
	if !env.Has(e, EnvJenkinsHome) {
		return nil, false
	}

	var ctx CIContext
	if env.Has(e, EnvChangeID) {
		ctx = NewPullRequestContext(Jenkins, env.Get(e, EnvChangeTarget), env.Get(e, EnvChangeBranch))
	} else {
		ctx = NewBranchContext(Jenkins, env.Get(e, EnvBranchName))
	}
	return &ctx, true
}
