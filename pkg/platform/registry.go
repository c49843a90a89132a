// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package platform

import (
	"slices"
	"sync"

	"github.com/cuinixam/hello-ci/pkg/env"
	"github.com/cuinixam/hello-ci/pkg/observability"
)

// Detector probes the environment for one CI system.
type Detector interface {
	// Detect returns the context and true when its CI system is active.
	Detect(e env.Accessor) (*CIContext, bool)
}

// DetectorFactory builds a Detector. Factories must not have side effects.
type DetectorFactory func() Detector

// Entry pairs a CI system with the factory for its detector.
type Entry struct {
	System  CISystem
	Factory DetectorFactory
}

// Registry holds CI system detectors in priority order.
// The first entry whose detector matches wins.
type Registry struct {
	mu      sync.RWMutex
	entries []Entry
	logger  observability.Logger
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// WithLogger sets the logger used to trace probe results.
func (r *Registry) WithLogger(l observability.Logger) *Registry {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logger = l
	return r
}

// Register appends a system at the lowest priority.
func (r *Registry) Register(system CISystem, factory DetectorFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, Entry{System: system, Factory: factory})
}

// RegisterAt inserts a system at position index; later entries move down.
// An index past the end appends.
func (r *Registry) RegisterAt(index int, system CISystem, factory DetectorFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if index < 0 {
		index = 0
	}
	if index > len(r.entries) {
		index = len(r.entries)
	}
	r.entries = slices.Insert(r.entries, index, Entry{System: system, Factory: factory})
}

// Systems returns the registered systems in priority order.
func (r *Registry) Systems() []CISystem {
	r.mu.RLock()
	defer r.mu.RUnlock()
	systems := make([]CISystem, 0, len(r.entries))
	for _, e := range r.entries {
		systems = append(systems, e.System)
	}
	return systems
}

// Detect returns the context of the first matching system, or
// UnknownContext when none matches. It never fails.
func (r *Registry) Detect(e env.Accessor) CIContext {
	r.mu.RLock()
	entries := make([]Entry, len(r.entries))
	copy(entries, r.entries)
	log := r.logger
	r.mu.RUnlock()

	if log == nil {
		log = observability.Default()
	}

	for _, entry := range entries {
		if entry.Factory == nil {
			continue
		}
		detector := entry.Factory()
		if detector == nil {
			continue
		}
		ctx, ok := detector.Detect(e)
		if ok && ctx != nil {
			log.Debug("CI system detected", observability.String("system", entry.System.String()))
			return *ctx
		}
		log.Debug("CI system not detected", observability.String("system", entry.System.String()))
	}
	return UnknownContext()
}

// DefaultRegistry lists the built-in CI systems.
var DefaultRegistry = newDefaultRegistry()

func newDefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(Jenkins, NewJenkinsDetector)
	return r
}
