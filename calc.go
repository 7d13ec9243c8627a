// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/OlegPrivet/calc/config"
	"github.com/OlegPrivet/calc/parse"
	"github.com/OlegPrivet/calc/run"
	"github.com/OlegPrivet/calc/scan"
)

var (
	format = flag.String("format", "%v", "format string for printing results")
	prompt = flag.String("prompt", "Enter expression (format: a operator b): ", "input prompt")
)

var conf config.Config

func main() {
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() > 0 {
		flag.Usage()
	}

	conf.SetFormat(*format)
	conf.SetPrompt(*prompt)
	// Error reports interleave with prompts and results on the same stream.
	conf.SetErrOutput(os.Stdout)

	scanner := scan.New(os.Stdin)
	parser := parse.NewParser(scanner)
	run.Run(parser, &conf)
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: calc [options]\n")
	fmt.Fprintf(os.Stderr, "Flags:\n")
	flag.PrintDefaults()
	os.Exit(2)
}
