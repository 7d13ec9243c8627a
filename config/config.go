// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config holds the presentation settings for a calculator session:
// the prompt, the format used to print results, and the output streams.
// A zero Config is ready to use; the getters supply the defaults.
package config

import (
	"io"
	"os"
)

type Config struct {
	prompt    string
	format    string
	output    io.Writer
	errOutput io.Writer
}

// Format returns the format verb applied to result values.
func (c *Config) Format() string {
	if c.format == "" {
		return "%v"
	}
	return c.format
}

func (c *Config) SetFormat(s string) {
	c.format = s
}

// Prompt returns the string printed before each read.
func (c *Config) Prompt() string {
	return c.prompt
}

func (c *Config) SetPrompt(prompt string) {
	c.prompt = prompt
}

// Output returns the writer for prompts and results.
// It defaults to os.Stdout.
func (c *Config) Output() io.Writer {
	if c.output == nil {
		return os.Stdout
	}
	return c.output
}

func (c *Config) SetOutput(w io.Writer) {
	c.output = w
}

// ErrOutput returns the writer for error reports.
// It defaults to os.Stderr.
func (c *Config) ErrOutput() io.Writer {
	if c.errOutput == nil {
		return os.Stderr
	}
	return c.errOutput
}

func (c *Config) SetErrOutput(w io.Writer) {
	c.errOutput = w
}
