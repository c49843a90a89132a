// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

// Package config provides configuration management for hello-ci.
//
// Configuration Loading Order (later overrides earlier):
// 1. Defaults (hardcoded)
// 2. Global Config: $HOME/.hello-ci/config.yaml
// 3. Project Config: ./.hello-ci.yaml, or the file passed with --config
// 4. Environment Variables: HELLO_CI_*
package config

// Config represents the complete application configuration.
type Config struct {
	LogLevel string       `mapstructure:"log_level" yaml:"log_level" validate:"required,oneof=debug info warn error"`
	Output   OutputConfig `mapstructure:"output" yaml:"output"`
	Detect   DetectConfig `mapstructure:"detect" yaml:"detect"`
}

// OutputConfig controls how results are printed.
type OutputConfig struct {
	Format string `mapstructure:"format" yaml:"format" validate:"required,oneof=text json yaml"`
	Color  bool   `mapstructure:"color" yaml:"color"`
}

// DetectConfig controls CI detection behavior of the CLI.
type DetectConfig struct {
	// FailUnknown makes `detect` exit non-zero outside a known CI system.
	FailUnknown bool `mapstructure:"fail_unknown" yaml:"fail_unknown"`
}
