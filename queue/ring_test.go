// SPDX-License-Identifier: MIT

package queue_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dsalab/queue"
)

func TestNewRing_BadCapacity(t *testing.T) {
	_, err := queue.NewRing[int](0)
	require.ErrorIs(t, err, queue.ErrBadCapacity)
}

func TestRing_FullAndEmpty(t *testing.T) {
	r, err := queue.NewRing[int](3)
	require.NoError(t, err)

	_, err = r.Dequeue()
	require.ErrorIs(t, err, queue.ErrEmpty)
	_, err = r.Rotate()
	require.ErrorIs(t, err, queue.ErrEmpty)

	for i := 1; i <= 3; i++ {
		require.NoError(t, r.Enqueue(i))
	}
	require.ErrorIs(t, r.Enqueue(4), queue.ErrFull)
	assert.Equal(t, 3, r.Len())
	assert.Equal(t, 3, r.Cap())
}

func TestRing_WrapAround(t *testing.T) {
	r, err := queue.NewRing[int](3)
	require.NoError(t, err)

	var got []int
	next := 1
	for round := 0; round < 5; round++ {
		for r.Len() < r.Cap() {
			require.NoError(t, r.Enqueue(next))
			next++
		}
		v, err := r.Dequeue()
		require.NoError(t, err)
		got = append(got, v)
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5}, got)
	assert.Equal(t, []int{6, 7}, slices.Collect(r.All())[:2])
}

func TestRing_Rotate(t *testing.T) {
	r, err := queue.NewRing[string](4)
	require.NoError(t, err)
	for _, s := range []string{"a", "b", "c"} {
		require.NoError(t, r.Enqueue(s))
	}

	v, err := r.Rotate()
	require.NoError(t, err)
	assert.Equal(t, "a", v)
	assert.Equal(t, []string{"b", "c", "a"}, slices.Collect(r.All()))

	front, ok := r.Peek()
	assert.True(t, ok)
	assert.Equal(t, "b", front)
}

func TestRing_RotateWhenFull(t *testing.T) {
	r, err := queue.NewRing[int](2)
	require.NoError(t, err)
	require.NoError(t, r.Enqueue(1))
	require.NoError(t, r.Enqueue(2))

	_, err = r.Rotate()
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1}, slices.Collect(r.All()))
}
