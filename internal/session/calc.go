// SPDX-License-Identifier: MIT

package session

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/dsalab/expr"
)

func (s *Session) cmdPostfix(args []string) (string, error) {
	if len(args) == 0 {
		return "", usagef("postfix EXPR")
	}
	v, err := expr.EvalPostfix(strings.Join(args, " "))
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%d\n", v), nil
}

func (s *Session) cmdTree(args []string) (string, error) {
	if len(args) == 0 {
		return "", usagef("tree EXPR")
	}
	root, err := expr.BuildTree(strings.Join(args, " "))
	if err != nil {
		return "", err
	}
	v, err := root.Eval()
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s = %d\n", root, v), nil
}

func (s *Session) cmdPoly(args []string) (string, error) {
	verb, rest := sub(args)
	if len(rest) < 2 {
		return "", usagef("poly eval|cmp X ...")
	}
	x, err := atoi64("X", rest[0])
	if err != nil {
		return "", err
	}

	switch verb {
	case "eval":
		p, err := expr.ParsePolynomial(rest[1:]...)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s at %d = %d\n", p, x, p.Eval(x)), nil
	case "cmp":
		if len(rest) != 3 {
			return "", usagef("poly cmp X C:E,C:E... C:E,C:E...")
		}
		p, err := expr.ParsePolynomial(strings.Split(rest[1], ",")...)
		if err != nil {
			return "", err
		}
		q, err := expr.ParsePolynomial(strings.Split(rest[2], ",")...)
		if err != nil {
			return "", err
		}
		verdict := "differ"
		if p.EqualAt(q, x) {
			verdict = "equal"
		}
		return fmt.Sprintf("%d %d %s\n", p.Eval(x), q.Eval(x), verdict), nil
	}

	return "", usagef("unknown subcommand %q", verb)
}
