// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package parse turns one line of calculator input into an expression.
// The grammar is a single line of exactly three tokens:
//
//	operand operator operand
//
// A line consisting of just "exit" or "quit", in any case, ends the
// session, as does end of input.
package parse

import (
	"strings"

	"github.com/OlegPrivet/calc/scan"
	"github.com/OlegPrivet/calc/value"
)

// A FormatError reports a line that does not have the operand operator
// operand shape. Its message is the full hint shown to the user.
type FormatError struct{}

func (*FormatError) Error() string {
	return "Invalid format. Use: a operator b (e.g. 5 + 3)"
}

// Parser reads lines of tokens from a scanner.
type Parser struct {
	scanner *scan.Scanner
}

func NewParser(scanner *scan.Scanner) *Parser {
	return &Parser{scanner: scanner}
}

// Line parses the next line of input. ok is false when the session is
// over: the input is exhausted or the user typed an exit keyword. A
// malformed line is returned as a classified error with ok still true;
// the caller reports it and keeps reading.
func (p *Parser) Line() (expr *value.Expr, ok bool, err error) {
	var words []string
	for {
		tok := p.scanner.Next()
		if tok.Type == scan.Word {
			words = append(words, tok.Text)
			continue
		}
		if tok.Type == scan.EOF && len(words) == 0 {
			return nil, false, nil
		}
		break
	}
	if len(words) == 1 && isExit(words[0]) {
		return nil, false, nil
	}
	if len(words) != 3 {
		return nil, true, &FormatError{}
	}
	left, err := value.Parse(words[0])
	if err != nil {
		return nil, true, err
	}
	right, err := value.Parse(words[2])
	if err != nil {
		return nil, true, err
	}
	// The operator is taken verbatim; unsupported symbols are the
	// evaluator's verdict, not a parse error.
	return &value.Expr{Left: left, Op: words[1], Right: right}, true, nil
}

// isExit reports whether the word, alone on its line, ends the session.
func isExit(s string) bool {
	return strings.EqualFold(s, "exit") || strings.EqualFold(s, "quit")
}
