// SPDX-License-Identifier: MIT

package expr

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/katalvlaran/dsalab/stack"
)

var (
	ErrMalformed       = errors.New("expr: malformed expression")
	ErrDivisionByZero  = errors.New("expr: division by zero")
	ErrUnknownOperator = errors.New("expr: unknown operator")
)

// tokens splits s per the package tokenization rule.
func tokens(s string) []string {
	if strings.IndexFunc(s, unicode.IsSpace) >= 0 {
		return strings.Fields(s)
	}
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}

	return out
}

func isOperator(tok string) bool {
	switch tok {
	case "+", "-", "*", "/":
		return true
	}
	return false
}

// operand parses tok as an integer literal. ok is false for anything else.
func operand(tok string) (int64, bool) {
	v, err := strconv.ParseInt(tok, 10, 64)
	return v, err == nil
}

func apply(op string, a, b int64) (int64, error) {
	switch op {
	case "+":
		return a + b, nil
	case "-":
		return a - b, nil
	case "*":
		return a * b, nil
	case "/":
		if b == 0 {
			return 0, fmt.Errorf("%w: %d / 0", ErrDivisionByZero, a)
		}
		return a / b, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownOperator, op)
}

// classify rejects a token that is neither an operand nor an operator.
func classify(tok string) error {
	if _, ok := operand(tok); ok || isOperator(tok) {
		return nil
	}
	if len(tok) > 0 && (unicode.IsDigit(rune(tok[0])) || tok[0] == '-' || tok[0] == '+') {
		return fmt.Errorf("%w: bad operand %q", ErrMalformed, tok)
	}

	return fmt.Errorf("%w: %q", ErrUnknownOperator, tok)
}

// EvalPostfix evaluates a postfix expression with an operand stack.
func EvalPostfix(s string) (int64, error) {
	var st stack.Stack[int64]

	for i, tok := range tokens(s) {
		if err := classify(tok); err != nil {
			return 0, err
		}
		if v, ok := operand(tok); ok {
			st.Push(v)
			continue
		}
		b, okB := st.Pop()
		a, okA := st.Pop()
		if !okA || !okB {
			return 0, fmt.Errorf("%w: operator %q at token %d lacks operands", ErrMalformed, tok, i+1)
		}
		v, err := apply(tok, a, b)
		if err != nil {
			return 0, err
		}
		st.Push(v)
	}

	if st.Len() != 1 {
		return 0, fmt.Errorf("%w: %d values left on the stack", ErrMalformed, st.Len())
	}
	v, _ := st.Pop()

	return v, nil
}
