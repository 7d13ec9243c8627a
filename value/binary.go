// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import "fmt"

// A DivZeroError reports a division whose right operand is zero.
type DivZeroError struct{}

func (*DivZeroError) Error() string {
	return "Division by zero is not allowed."
}

// An OpError reports an operator symbol outside the supported set.
type OpError struct {
	Op string // the offending symbol
}

func (e *OpError) Error() string {
	return fmt.Sprintf("Unsupported operator: %s", e.Op)
}

// Binary applies the operator to the operands. Dispatch is an exact match
// on the symbol; anything outside + - * / is an *OpError. Division by zero
// is a *DivZeroError. Binary has no side effects: equal inputs always
// produce equal results.
func Binary(left Value, op string, right Value) (Value, error) {
	switch op {
	case "+":
		return left + right, nil
	case "-":
		return left - right, nil
	case "*":
		return left * right, nil
	case "/":
		if right == 0 {
			return 0, &DivZeroError{}
		}
		return left / right, nil
	}
	return 0, &OpError{Op: op}
}
