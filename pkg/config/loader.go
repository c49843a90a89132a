// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/cuinixam/hello-ci/pkg/env"
	"github.com/cuinixam/hello-ci/pkg/errors"
)

const (
	// EnvPrefix is the prefix for all environment variables.
	EnvPrefix = "HELLO_CI"
	// EnvConfigPath overrides the config file path.
	EnvConfigPath = "HELLO_CI_CONFIG"
	// ProjectConfigFile is the project-level config file name.
	ProjectConfigFile = ".hello-ci.yaml"
	// GlobalConfigDir is the global config directory name.
	GlobalConfigDir = ".hello-ci"
	// GlobalConfigFile is the global config file name.
	GlobalConfigFile = "config.yaml"
)

// Loader loads configuration from files and environment.
type Loader struct {
	projectRoot string
	configFile  string
	skipGlobal  bool
	env         env.Accessor
}

// NewLoader creates a new config loader.
func NewLoader() *Loader {
	return &Loader{}
}

// WithProjectRoot sets the project root directory.
func (l *Loader) WithProjectRoot(root string) *Loader {
	l.projectRoot = root
	return l
}

// WithConfigFile uses path instead of the project config file.
// Unlike the project file, an explicit file must exist.
func (l *Loader) WithConfigFile(path string) *Loader {
	l.configFile = path
	return l
}

// WithEnv reads HELLO_CI_* overrides and HELLO_CI_CONFIG from e instead
// of the process environment.
func (l *Loader) WithEnv(e env.Accessor) *Loader {
	l.env = e
	return l
}

// SkipGlobal skips loading global config.
func (l *Loader) SkipGlobal() *Loader {
	l.skipGlobal = true
	return l
}

// Load loads configuration with full precedence order:
// 1. Defaults
// 2. Global Config ($HOME/.hello-ci/config.yaml)
// 3. Project Config (./.hello-ci.yaml), or the explicit config file
//    (WithConfigFile, then HELLO_CI_CONFIG)
// 4. Environment Variables (HELLO_CI_*)
func (l *Loader) Load() (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	setDefaults(v)

	if !l.skipGlobal {
		if err := mergeOptional(v, GetDefaultConfigPath()); err != nil {
			return nil, err
		}
	}

	if path := l.explicitConfigFile(); path != "" {
		if err := mergeFile(v, path); err != nil {
			return nil, err
		}
	} else if err := mergeOptional(v, GetProjectConfigPath(l.projectRoot)); err != nil {
		return nil, err
	}

	if l.env == nil {
		v.SetEnvPrefix(EnvPrefix)
		v.SetEnvKeyReplacer(envKeyReplacer)
		v.AutomaticEnv()
	} else {
		applyEnv(v, l.env)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.ConfigError("failed to decode config", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFromEnv loads config from the process environment, honoring
// HELLO_CI_CONFIG as the config file path.
func LoadFromEnv() (*Config, error) {
	return NewLoader().WithEnv(env.OS{}).Load()
}

var envKeyReplacer = strings.NewReplacer(".", "_")

// EnvName returns the environment variable that overrides key.
func EnvName(key string) string {
	return EnvPrefix + "_" + strings.ToUpper(envKeyReplacer.Replace(key))
}

// explicitConfigFile returns the file set with WithConfigFile, else HELLO_CI_CONFIG.
func (l *Loader) explicitConfigFile() string {
	if l.configFile != "" {
		return l.configFile
	}
	if l.env == nil {
		return os.Getenv(EnvConfigPath)
	}
	path, _ := l.env.Lookup(EnvConfigPath)
	return path
}

// applyEnv sets every registered key that has a non-empty override in e.
// Empty values are ignored, as with viper's AutomaticEnv.
func applyEnv(v *viper.Viper, e env.Accessor) {
	for _, key := range v.AllKeys() {
		if val, ok := e.Lookup(EnvName(key)); ok && val != "" {
			v.Set(key, val)
		}
	}
}

// mergeOptional merges path when it exists.
func mergeOptional(v *viper.Viper, path string) error {
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	return mergeFile(v, path)
}

func mergeFile(v *viper.Viper, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.ConfigError(fmt.Sprintf("failed to read config file: %s", path), err).
			WithContext("path", path)
	}
	defer f.Close()

	if err := v.MergeConfig(f); err != nil {
		return errors.ConfigError(fmt.Sprintf("failed to parse config file: %s", path), err).
			WithContext("path", path)
	}
	return nil
}

var validate = validator.New()

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errors.ConfigError("config validation failed", err)
	}
	return nil
}

// Dump renders the configuration as YAML.
func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, errors.ConfigError("failed to encode config", err)
	}
	return data, nil
}
