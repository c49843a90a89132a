// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

// Package output renders detection results for humans and build scripts.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"

	"github.com/cuinixam/hello-ci/pkg/errors"
	"github.com/cuinixam/hello-ci/pkg/platform"
)

// Format is an output format name.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// absent is printed for branches that are not known.
const absent = "-"

// SupportedFormats returns the accepted format names.
func SupportedFormats() []Format {
	return []Format{FormatText, FormatJSON, FormatYAML}
}

// ParseFormat validates a format name.
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	for _, supported := range SupportedFormats() {
		if f == supported {
			return f, nil
		}
	}
	return "", errors.ValidationError(fmt.Sprintf("unsupported output format: %q", name), nil).
		WithContext("supported", SupportedFormats())
}

// Formatter formats CI contexts.
type Formatter struct {
	format Format
	color  bool
}

// NewFormatter creates a formatter for the given format.
func NewFormatter(format string) (*Formatter, error) {
	f, err := ParseFormat(format)
	if err != nil {
		return nil, err
	}
	return &Formatter{format: f}, nil
}

// WithColor enables ANSI colors in text output.
func (f *Formatter) WithColor(enabled bool) *Formatter {
	f.color = enabled
	return f
}

// Format renders ctx as a string.
func (f *Formatter) Format(ctx platform.CIContext) (string, error) {
	var buf bytes.Buffer
	if err := f.Write(&buf, ctx); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Write renders ctx to w.
func (f *Formatter) Write(w io.Writer, ctx platform.CIContext) error {
	switch f.format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(ctx)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(ctx); err != nil {
			return err
		}
		return enc.Close()
	default:
		f.writeText(w, ctx)
		return nil
	}
}

func (f *Formatter) writeText(w io.Writer, ctx platform.CIContext) {
	key := f.paint(color.Faint)
	system := f.paint(color.FgGreen)
	if !ctx.IsCI() {
		system = f.paint(color.FgYellow)
	}
	value := f.paint(color.FgCyan)

	table := tablewriter.NewWriter(w)
	table.SetBorder(false)
	table.SetColumnSeparator("")
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoWrapText(false)

	table.Append([]string{key("CI system"), system(ctx.CISystem.String())})
	table.Append([]string{key("Pull request"), value(strconv.FormatBool(ctx.IsPullRequest))})
	table.Append([]string{key("Target branch"), value(orAbsent(ctx.Target()))})
	table.Append([]string{key("Current branch"), value(orAbsent(ctx.Current()))})
	table.Render()
}

func (f *Formatter) paint(attr color.Attribute) func(a ...interface{}) string {
	c := color.New(attr)
	if f.color {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.SprintFunc()
}

func orAbsent(v string, ok bool) string {
	if !ok {
		return absent
	}
	return v
}
