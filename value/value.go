// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package value implements the calculator's arithmetic: operand values,
// the four binary operations, and the errors they can produce.
package value

import (
	"fmt"
	"strconv"

	"github.com/OlegPrivet/calc/config"
)

// Value is a calculator operand or result.
type Value float64

// Sprint returns the value rendered under the configuration's format.
func (v Value) Sprint(conf *config.Config) string {
	return fmt.Sprintf(conf.Format(), float64(v))
}

func (v Value) String() string {
	return strconv.FormatFloat(float64(v), 'g', -1, 64)
}

// Parse converts a token to a Value. Failure is a *ParseError carrying
// the malformed text.
func Parse(s string) (Value, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &ParseError{Text: s}
	}
	return Value(f), nil
}

// Error is the catch-all failure type for conditions with no finer
// classification.
type Error string

func (err Error) Error() string {
	return string(err)
}

func Errorf(format string, args ...interface{}) Error {
	return Error(fmt.Sprintf(format, args...))
}

// A ParseError reports an operand token that is not a valid number.
type ParseError struct {
	Text string // the malformed token
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid number %q", e.Text)
}
