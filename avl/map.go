// SPDX-License-Identifier: MIT

package avl

import "fmt"

// Insert stores value under key.
//
// Implementation:
//   - Stage 1: Descend recursively as in a plain BST.
//   - Stage 2: Attach a new leaf of height 1.
//   - Stage 3: On unwind recompute heights and apply at most one single or
//     double rotation per level.
//
// Errors: ErrDuplicateKey if key exists; the stored value is left untouched.
func (m *Map[K, V]) Insert(key K, value V) error {
	root, err := m.insert(m.root, key, value)
	if err != nil {
		return err
	}
	m.root = root
	m.size++

	return nil
}

func (m *Map[K, V]) insert(n *node[K, V], key K, value V) (*node[K, V], error) {
	if n == nil {
		return &node[K, V]{key: key, value: value, height: 1}, nil
	}

	var err error
	switch c := m.cmp(key, n.key); {
	case c < 0:
		n.left, err = m.insert(n.left, key, value)
	case c > 0:
		n.right, err = m.insert(n.right, key, value)
	default:
		return n, fmt.Errorf("%w: %v", ErrDuplicateKey, key)
	}
	if err != nil {
		return n, err
	}

	return rebalance(n), nil
}

// Search returns the value stored under key.
func (m *Map[K, V]) Search(key K) (V, bool) {
	if n := m.lookup(key); n != nil {
		return n.value, true
	}
	var zero V

	return zero, false
}

// Contains reports whether key is present.
func (m *Map[K, V]) Contains(key K) bool { return m.lookup(key) != nil }

func (m *Map[K, V]) lookup(key K) *node[K, V] {
	n := m.root
	for n != nil {
		switch c := m.cmp(key, n.key); {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return n
		}
	}

	return nil
}

// Delete removes key. A node with two children is replaced by its in-order
// successor before the successor is removed from the right subtree.
//
// Errors: ErrKeyNotFound if key is absent.
func (m *Map[K, V]) Delete(key K) error {
	root, err := m.delete(m.root, key)
	if err != nil {
		return err
	}
	m.root = root
	m.size--

	return nil
}

func (m *Map[K, V]) delete(n *node[K, V], key K) (*node[K, V], error) {
	if n == nil {
		return nil, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}

	var err error
	switch c := m.cmp(key, n.key); {
	case c < 0:
		n.left, err = m.delete(n.left, key)
	case c > 0:
		n.right, err = m.delete(n.right, key)
	default:
		if n.left == nil {
			return n.right, nil
		}
		if n.right == nil {
			return n.left, nil
		}
		succ := n.right
		for succ.left != nil {
			succ = succ.left
		}
		n.key, n.value = succ.key, succ.value
		n.right, err = m.delete(n.right, succ.key)
	}
	if err != nil {
		return n, err
	}

	return rebalance(n), nil
}

// Min returns the smallest key and its value.
func (m *Map[K, V]) Min() (K, V, bool) {
	n := m.root
	if n == nil {
		var (
			k K
			v V
		)
		return k, v, false
	}
	for n.left != nil {
		n = n.left
	}

	return n.key, n.value, true
}

// Max returns the largest key and its value.
func (m *Map[K, V]) Max() (K, V, bool) {
	n := m.root
	if n == nil {
		var (
			k K
			v V
		)
		return k, v, false
	}
	for n.right != nil {
		n = n.right
	}

	return n.key, n.value, true
}

// Validate checks ordering, cached heights and balance factors of every node.
// It returns ErrInvariantViolated wrapped with the offending key.
func (m *Map[K, V]) Validate() error {
	_, count, err := m.validate(m.root, nil, nil)
	if err != nil {
		return err
	}
	if count != m.size {
		return fmt.Errorf("%w: size %d, counted %d", ErrInvariantViolated, m.size, count)
	}

	return nil
}

// validate returns the true height and node count of n, checking that
// every key lies strictly between lo and hi (nil = unbounded).
func (m *Map[K, V]) validate(n *node[K, V], lo, hi *K) (int, int, error) {
	if n == nil {
		return 0, 0, nil
	}
	if lo != nil && m.cmp(n.key, *lo) <= 0 || hi != nil && m.cmp(n.key, *hi) >= 0 {
		return 0, 0, fmt.Errorf("%w: key %v out of order", ErrInvariantViolated, n.key)
	}
	lh, lc, err := m.validate(n.left, lo, &n.key)
	if err != nil {
		return 0, 0, err
	}
	rh, rc, err := m.validate(n.right, &n.key, hi)
	if err != nil {
		return 0, 0, err
	}
	h := 1 + max(lh, rh)
	if n.height != h {
		return 0, 0, fmt.Errorf("%w: key %v caches height %d, actual %d", ErrInvariantViolated, n.key, n.height, h)
	}
	if bf := lh - rh; bf < -1 || bf > 1 {
		return 0, 0, fmt.Errorf("%w: key %v has balance %d", ErrInvariantViolated, n.key, bf)
	}

	return h, lc + rc + 1, nil
}
