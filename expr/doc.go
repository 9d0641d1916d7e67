// SPDX-License-Identifier: MIT

// Package expr evaluates integer postfix expressions, builds expression
// trees from them, and evaluates polynomials.
//
// Tokenization: an expression containing whitespace is split on it, so
// operands may have several digits or a sign ("12 -3 *"). An expression
// without whitespace is read one character per token ("23+4*"), the compact
// single-digit form.
//
// Operators are + - * / with Go integer semantics (division truncates
// toward zero). Errors:
//
//	ErrMalformed        operand missing, operands left over, or bad token
//	ErrDivisionByZero   right operand of / is zero
//	ErrUnknownOperator  a non-numeric token that is not an operator
package expr
