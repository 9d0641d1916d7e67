// SPDX-License-Identifier: MIT

package expr

import (
	"fmt"
	"strconv"
	"strings"
)

// Term is Coeff·x^Exp with Exp ≥ 0.
type Term struct {
	Coeff int64
	Exp   int
}

// Polynomial is a sum of terms kept in the order they were given.
// Repeated exponents are allowed and simply add up.
type Polynomial struct {
	Terms []Term
}

// ParseTerm parses "C:E" (coefficient, exponent).
func ParseTerm(s string) (Term, error) {
	cs, es, ok := strings.Cut(s, ":")
	if !ok {
		return Term{}, fmt.Errorf("%w: term %q is not C:E", ErrMalformed, s)
	}
	c, err := strconv.ParseInt(cs, 10, 64)
	if err != nil {
		return Term{}, fmt.Errorf("%w: coefficient %q", ErrMalformed, cs)
	}
	e, err := strconv.Atoi(es)
	if err != nil || e < 0 {
		return Term{}, fmt.Errorf("%w: exponent %q", ErrMalformed, es)
	}

	return Term{Coeff: c, Exp: e}, nil
}

// ParsePolynomial parses each argument with ParseTerm.
func ParsePolynomial(terms ...string) (Polynomial, error) {
	p := Polynomial{Terms: make([]Term, 0, len(terms))}
	for _, s := range terms {
		t, err := ParseTerm(s)
		if err != nil {
			return Polynomial{}, err
		}
		p.Terms = append(p.Terms, t)
	}

	return p, nil
}

// Add appends a term.
func (p *Polynomial) Add(coeff int64, exp int) {
	p.Terms = append(p.Terms, Term{Coeff: coeff, Exp: exp})
}

// Eval returns p(x). Overflow wraps.
func (p Polynomial) Eval(x int64) int64 {
	var sum int64
	for _, t := range p.Terms {
		pow := int64(1)
		for i := 0; i < t.Exp; i++ {
			pow *= x
		}
		sum += t.Coeff * pow
	}

	return sum
}

// EqualAt reports whether p and q take the same value at x.
func (p Polynomial) EqualAt(q Polynomial, x int64) bool {
	return p.Eval(x) == q.Eval(x)
}

// String renders p as "3x^2 + -1x^0"; the empty polynomial renders "0".
func (p Polynomial) String() string {
	if len(p.Terms) == 0 {
		return "0"
	}
	parts := make([]string, len(p.Terms))
	for i, t := range p.Terms {
		parts[i] = fmt.Sprintf("%dx^%d", t.Coeff, t.Exp)
	}

	return strings.Join(parts, " + ")
}
