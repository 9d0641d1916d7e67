// SPDX-License-Identifier: MIT

package avl

func height[K, V any](n *node[K, V]) int {
	if n == nil {
		return 0
	}

	return n.height
}

func (n *node[K, V]) fix() {
	n.height = 1 + max(height(n.left), height(n.right))
}

func (n *node[K, V]) balance() int {
	return height(n.left) - height(n.right)
}

//	    y            x
//	   / \          / \
//	  x   c  →     a   y
//	 / \              / \
//	a   b            b   c
func rotateRight[K, V any](y *node[K, V]) *node[K, V] {
	x := y.left
	y.left = x.right
	x.right = y
	y.fix()
	x.fix()

	return x
}

func rotateLeft[K, V any](x *node[K, V]) *node[K, V] {
	y := x.right
	x.right = y.left
	y.left = x
	x.fix()
	y.fix()

	return y
}

// rebalance restores the AVL property at n after one of its subtrees
// changed height by at most one, and returns the new subtree root.
func rebalance[K, V any](n *node[K, V]) *node[K, V] {
	n.fix()
	bf := n.balance()

	switch {
	case bf > 1:
		if n.left.balance() < 0 { // LR
			n.left = rotateLeft(n.left)
		}
		return rotateRight(n) // LL
	case bf < -1:
		if n.right.balance() > 0 { // RL
			n.right = rotateRight(n.right)
		}
		return rotateLeft(n) // RR
	}

	return n
}
