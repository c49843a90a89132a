// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

// Package observability provides logging.
package observability

import (
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/log"
)

// Logger is the structured logger interface.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	With(fields ...Field) Logger
}

// Field represents a log field.
type Field struct {
	Key   string
	Value any
}

// logger is the default implementation, backed by charmbracelet/log.
type logger struct {
	l *log.Logger
}

// NewLogger creates a logger writing to stderr at the given level.
// Unknown levels fall back to info.
func NewLogger(level string) Logger {
	return NewLoggerWithWriter(os.Stderr, level)
}

// NewLoggerWithWriter creates a logger writing to w.
func NewLoggerWithWriter(w io.Writer, level string) Logger {
	l := log.NewWithOptions(w, log.Options{
		Prefix:          "hello-ci",
		ReportTimestamp: false,
	})
	l.SetLevel(ParseLevel(level))
	return &logger{l: l}
}

// Nop returns a logger that discards everything.
func Nop() Logger {
	return &logger{l: log.New(io.Discard)}
}

// ParseLevel converts a level name to a log.Level, defaulting to info.
func ParseLevel(level string) log.Level {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

func (l *logger) Debug(msg string, fields ...Field) {
	l.l.Debug(msg, keyvals(fields)...)
}

func (l *logger) Info(msg string, fields ...Field) {
	l.l.Info(msg, keyvals(fields)...)
}

func (l *logger) Warn(msg string, fields ...Field) {
	l.l.Warn(msg, keyvals(fields)...)
}

func (l *logger) Error(msg string, fields ...Field) {
	l.l.Error(msg, keyvals(fields)...)
}

func (l *logger) With(fields ...Field) Logger {
	return &logger{l: l.l.With(keyvals(fields)...)}
}

func keyvals(fields []Field) []any {
	kv := make([]any, 0, len(fields)*2)
	for _, f := range fields {
		kv = append(kv, f.Key, f.Value)
	}
	return kv
}

// String creates a string field.
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

// Bool creates a bool field.
func Bool(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

// Int creates an int field.
func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

// Err creates an error field.
func Err(err error) Field {
	return Field{Key: "error", Value: err}
}

var (
	defaultMu     sync.RWMutex
	defaultLogger = NewLogger("info")
)

// Default returns the process-wide logger.
func Default() Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault replaces the process-wide logger.
func SetDefault(l Logger) {
	if l == nil {
		l = Nop()
	}
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}
