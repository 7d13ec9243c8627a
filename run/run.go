// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package run provides the execution control for the calculator.
// It is factored out of main so it can be used for tests.
package run

import (
	"fmt"

	"github.com/OlegPrivet/calc/config"
	"github.com/OlegPrivet/calc/parse"
	"github.com/OlegPrivet/calc/value"
)

const banner = "Simple Console Calculator. Type 'exit' or 'quit' to leave."

// Run drives one whole session: banner, the prompt/read/evaluate loop,
// and the farewell. It returns only when the input is exhausted or the
// user asks to leave; no input, however malformed, ends the session.
func Run(p *parse.Parser, conf *config.Config) {
	writer := conf.Output()
	fmt.Fprintln(writer, banner)
	for !runLoop(p, conf) {
	}
	fmt.Fprintln(writer, "Goodbye!")
}

// runLoop reads and evaluates lines until the session is over or a
// failure unwinds to its recover. The return value says whether the
// session is over; after an unexpected failure Run re-enters the loop.
func runLoop(p *parse.Parser, conf *config.Config) (done bool) {
	writer := conf.Output()
	defer func() {
		err := recover()
		if err == nil {
			return
		}
		fmt.Fprintf(conf.ErrOutput(), "Unexpected error: %v\n", err)
		done = false
	}()
	for {
		fmt.Fprint(writer, conf.Prompt())
		expr, ok, err := p.Line()
		if !ok {
			return true
		}
		if err == nil {
			var v value.Value
			v, err = expr.Eval()
			if err == nil {
				fmt.Fprintf(writer, "Result: %s\n", v.Sprint(conf))
				continue
			}
		}
		report(conf, err)
	}
}

// report prints one classified error the way the session presents it;
// the loop then continues.
func report(conf *config.Config, err error) {
	writer := conf.ErrOutput()
	switch err.(type) {
	case *parse.FormatError:
		fmt.Fprintln(writer, err)
	case *value.ParseError, *value.OpError:
		fmt.Fprintf(writer, "Input error: %s\n", err)
	case *value.DivZeroError:
		fmt.Fprintf(writer, "Calculation error: %s\n", err)
	default:
		fmt.Fprintf(writer, "Unexpected error: %s\n", err)
	}
}
