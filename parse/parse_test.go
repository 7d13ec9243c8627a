// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parse

import (
	"strings"
	"testing"

	"github.com/OlegPrivet/calc/scan"
	"github.com/OlegPrivet/calc/value"
)

func parseLine(input string) (*value.Expr, bool, error) {
	p := NewParser(scan.New(strings.NewReader(input)))
	return p.Line()
}

func TestLine(t *testing.T) {
	expr, ok, err := parseLine("5 + 3\n")
	if !ok || err != nil {
		t.Fatalf("ok=%v err=%v", ok, err)
	}
	want := value.Expr{Left: 5, Op: "+", Right: 3}
	if *expr != want {
		t.Errorf("got %v, want %v", expr, &want)
	}
}

// Unknown operator symbols parse fine; rejecting them is the
// evaluator's job, so the error can name the symbol.
func TestLineOperatorVerbatim(t *testing.T) {
	expr, ok, err := parseLine("5 % 3\n")
	if !ok || err != nil {
		t.Fatalf("ok=%v err=%v", ok, err)
	}
	if expr.Op != "%" {
		t.Errorf("operator %q, want %q", expr.Op, "%")
	}
}

func TestLineExit(t *testing.T) {
	for _, input := range []string{"exit\n", "quit\n", "EXIT\n", "Quit\n", "  exit  \n", "\tQUIT\n", ""} {
		expr, ok, err := parseLine(input)
		if ok || expr != nil || err != nil {
			t.Errorf("%q: expr=%v ok=%v err=%v, want session end", input, expr, ok, err)
		}
	}
}

func TestLineFormatError(t *testing.T) {
	for _, input := range []string{"5 3\n", "5 + 3 4\n", "exit now\n", "5\n", "\n", "   \n"} {
		expr, ok, err := parseLine(input)
		if expr != nil || !ok {
			t.Fatalf("%q: expr=%v ok=%v", input, expr, ok)
		}
		if _, isFormat := err.(*FormatError); !isFormat {
			t.Errorf("%q: got %v, want FormatError", input, err)
		}
	}
}

func TestLineNumberError(t *testing.T) {
	tests := []struct {
		input string
		text  string // the malformed token the error must carry
	}{
		{"abc + 3\n", "abc"},
		{"5 + xyz\n", "xyz"},
		{"one + two\n", "one"}, // left operand reported first
	}
	for _, test := range tests {
		expr, ok, err := parseLine(test.input)
		if expr != nil || !ok {
			t.Fatalf("%q: expr=%v ok=%v", test.input, expr, ok)
		}
		parseErr, isParse := err.(*value.ParseError)
		if !isParse {
			t.Fatalf("%q: got %v, want ParseError", test.input, err)
		}
		if parseErr.Text != test.text {
			t.Errorf("%q: error carries %q, want %q", test.input, parseErr.Text, test.text)
		}
	}
}

// A bad line does not end the session; the next line still parses.
func TestLineContinues(t *testing.T) {
	p := NewParser(scan.New(strings.NewReader("5 3\n10 / 2\nexit\n")))
	_, ok, err := p.Line()
	if !ok || err == nil {
		t.Fatalf("first line: ok=%v err=%v", ok, err)
	}
	expr, ok, err := p.Line()
	if !ok || err != nil || expr == nil {
		t.Fatalf("second line: expr=%v ok=%v err=%v", expr, ok, err)
	}
	if _, ok, _ := p.Line(); ok {
		t.Error("third line: session did not end on exit")
	}
}

func TestLineAfterEOF(t *testing.T) {
	p := NewParser(scan.New(strings.NewReader("")))
	for i := 0; i < 2; i++ {
		if _, ok, err := p.Line(); ok || err != nil {
			t.Fatalf("call %d: ok=%v err=%v", i, ok, err)
		}
	}
}
