// SPDX-License-Identifier: MIT

package expr

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/dsalab/stack"
)

// Node is an expression tree node: a leaf holds Value, an inner node holds
// Op and both children.
type Node struct {
	Op          string
	Value       int64
	Left, Right *Node
}

// IsLeaf reports whether n is an operand.
func (n *Node) IsLeaf() bool { return n.Left == nil && n.Right == nil }

// BuildTree builds the expression tree of a postfix expression.
func BuildTree(s string) (*Node, error) {
	var st stack.Stack[*Node]

	for i, tok := range tokens(s) {
		if err := classify(tok); err != nil {
			return nil, err
		}
		if v, ok := operand(tok); ok {
			st.Push(&Node{Value: v})
			continue
		}
		r, okR := st.Pop()
		l, okL := st.Pop()
		if !okL || !okR {
			return nil, fmt.Errorf("%w: operator %q at token %d lacks operands", ErrMalformed, tok, i+1)
		}
		st.Push(&Node{Op: tok, Left: l, Right: r})
	}

	if st.Len() != 1 {
		return nil, fmt.Errorf("%w: %d subtrees left", ErrMalformed, st.Len())
	}
	root, _ := st.Pop()

	return root, nil
}

// Eval evaluates the tree bottom-up.
func (n *Node) Eval() (int64, error) {
	if n == nil {
		return 0, fmt.Errorf("%w: nil tree", ErrMalformed)
	}
	if n.IsLeaf() {
		return n.Value, nil
	}
	l, err := n.Left.Eval()
	if err != nil {
		return 0, err
	}
	r, err := n.Right.Eval()
	if err != nil {
		return 0, err
	}

	return apply(n.Op, l, r)
}

// String renders the tree as a fully parenthesised infix expression.
func (n *Node) String() string {
	if n == nil {
		return ""
	}
	if n.IsLeaf() {
		return strconv.FormatInt(n.Value, 10)
	}

	return "(" + n.Left.String() + " " + n.Op + " " + n.Right.String() + ")"
}
