// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import "fmt"

// Expr is one parsed input line: a binary expression over two operands.
// It lives for a single loop iteration.
type Expr struct {
	Left  Value
	Op    string
	Right Value
}

// Eval computes the expression's value.
func (e *Expr) Eval() (Value, error) {
	return Binary(e.Left, e.Op, e.Right)
}

func (e *Expr) String() string {
	return fmt.Sprintf("%v %s %v", e.Left, e.Op, e.Right)
}
