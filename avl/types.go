// SPDX-License-Identifier: MIT

package avl

import (
	"cmp"
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors.
var (
	ErrDuplicateKey      = errors.New("avl: duplicate key")
	ErrKeyNotFound       = errors.New("avl: key not found")
	ErrUnknownOrder      = errors.New("avl: unknown traversal order")
	ErrInvariantViolated = errors.New("avl: invariant violated")
)

// Order selects a depth-first traversal order.
type Order int

const (
	InOrder Order = iota
	PreOrder
	PostOrder
)

var orderNames = [...]string{"inorder", "preorder", "postorder"}

// String implements fmt.Stringer.
func (o Order) String() string {
	if o < 0 || int(o) >= len(orderNames) {
		return fmt.Sprintf("Order(%d)", int(o))
	}

	return orderNames[o]
}

// ParseOrder maps "inorder", "preorder" or "postorder" (case-insensitive,
// dashes allowed: "in-order") to an Order.
func ParseOrder(s string) (Order, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "")
	for i, name := range orderNames {
		if key == name {
			return Order(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownOrder, s)
}

type node[K, V any] struct {
	key         K
	value       V
	left, right *node[K, V]
	height      int
}

// Map is an AVL-balanced ordered map.
type Map[K, V any] struct {
	root *node[K, V]
	cmp  func(a, b K) int
	size int
}

// New returns an empty Map ordered by cmp.Compare.
func New[K cmp.Ordered, V any]() *Map[K, V] {
	return &Map[K, V]{cmp: cmp.Compare[K]}
}

// NewFunc returns an empty Map ordered by compare, which must return a
// negative number, zero or a positive number like cmp.Compare.
func NewFunc[K, V any](compare func(a, b K) int) *Map[K, V] {
	return &Map[K, V]{cmp: compare}
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int { return m.size }

// Height returns the tree height (0 when empty).
func (m *Map[K, V]) Height() int { return height(m.root) }
