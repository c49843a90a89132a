// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

// Package env provides read-only access to environment variables.
package env

import "os"

// Accessor looks up environment variables.
// Lookup never fails: a missing variable is reported as ok == false.
type Accessor interface {
	Lookup(name string) (value string, ok bool)
}

// OS reads the process environment.
type OS struct{}

// Lookup returns the value of the process environment variable name.
func (OS) Lookup(name string) (string, bool) {
	return os.LookupEnv(name)
}

// Map is an Accessor over a fixed set of variables.
type Map map[string]string

// Lookup returns the value stored under name.
func (m Map) Lookup(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}

// Get returns a pointer to the value of name, or nil when it is not set.
func Get(a Accessor, name string) *string {
	v, ok := a.Lookup(name)
	if !ok {
		return nil
	}
	return &v
}

// Has reports whether name is set, regardless of its value.
func Has(a Accessor, name string) bool {
	_, ok := a.Lookup(name)
	return ok
}
