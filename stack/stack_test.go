// SPDX-License-Identifier: MIT

package stack_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/dsalab/stack"
)

func TestStack_LIFO(t *testing.T) {
	var s stack.Stack[string]
	_, ok := s.Pop()
	assert.False(t, ok)
	_, ok = s.Peek()
	assert.False(t, ok)

	s.Push("a")
	s.Push("b")
	s.Push("c")
	assert.Equal(t, 3, s.Len())

	top, ok := s.Peek()
	assert.True(t, ok)
	assert.Equal(t, "c", top)

	for _, want := range []string{"c", "b", "a"} {
		got, ok := s.Pop()
		assert.True(t, ok)
		assert.Equal(t, want, got)
	}
	assert.Equal(t, 0, s.Len())
}
