// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Calc is an interactive console calculator. It reads one expression per
line from standard input, in the form

	operand operator operand

where the operands are floating-point numbers and the operator is one of
+ - * /, and prints the result. Malformed input is reported and the
session continues; division by zero and unknown operators are reported
the same way. A line consisting of "exit" or "quit" in any case, or end
of input, ends the session.

	% calc
	Simple Console Calculator. Type 'exit' or 'quit' to leave.
	Enter expression (format: a operator b): 5 + 3
	Result: 8
	Enter expression (format: a operator b): 10 / 0
	Calculation error: Division by zero is not allowed.
	Enter expression (format: a operator b): exit
	Goodbye!

The -prompt and -format flags change the prompt text and the verb used
to print results.
*/
package main
