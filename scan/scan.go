// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scan tokenizes calculator input one line at a time.
// A line is split on Unicode whitespace; each field becomes a Word token
// and the end of the line becomes a Newline token.
package scan

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Token represents a token or text string returned from the scanner.
type Token struct {
	Type Type   // The type of this item.
	Line int    // The line number on which this token appears.
	Text string // The text of this item.
}

// Type identifies the type of lex items.
type Type int

const (
	EOF     Type = iota // zero value; returned forever once input is exhausted
	Newline             // end of a line of input
	Word                // a whitespace-delimited field
)

func (i Token) String() string {
	switch i.Type {
	case EOF:
		return "EOF"
	case Newline:
		return "newline"
	}
	return fmt.Sprintf("%q", i.Text)
}

// Scanner holds the state of the scanner.
type Scanner struct {
	r       *bufio.Scanner
	line    int     // line number in input.
	pending []Token // tokens of the current line not yet delivered.
	done    bool
}

// New returns a Scanner reading from r.
func New(r io.Reader) *Scanner {
	return &Scanner{r: bufio.NewScanner(r)}
}

// Next returns the next token. After the input is exhausted it returns
// EOF tokens forever. Read errors are treated as end of input.
func (s *Scanner) Next() Token {
	for len(s.pending) == 0 {
		if s.done || !s.r.Scan() {
			s.done = true
			return Token{Type: EOF, Line: s.line}
		}
		s.loadLine(s.r.Text())
	}
	tok := s.pending[0]
	s.pending = s.pending[1:]
	return tok
}

// loadLine splits one line of input into pending tokens.
// It strips carriage returns to make subsequent processing simpler.
func (s *Scanner) loadLine(text string) {
	s.line++
	text = strings.TrimSuffix(text, "\r")
	for _, field := range strings.Fields(text) {
		s.pending = append(s.pending, Token{Type: Word, Line: s.line, Text: field})
	}
	s.pending = append(s.pending, Token{Type: Newline, Line: s.line})
}
