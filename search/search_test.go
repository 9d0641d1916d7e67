// SPDX-License-Identifier: MIT

package search_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/dsalab/record"
	"github.com/katalvlaran/dsalab/search"
)

func TestLinear(t *testing.T) {
	recs := []record.Record{{ID: 7, Name: "x"}, {ID: 3, Name: "y"}, {ID: 7, Name: "z"}}

	i, ok := search.Linear(recs, 7, record.ByID)
	assert.True(t, ok)
	assert.Equal(t, 0, i)

	_, ok = search.Linear(recs, 4, record.ByID)
	assert.False(t, ok)

	_, ok = search.Linear([]record.Record(nil), 1, record.ByID)
	assert.False(t, ok)
}

func TestBinary_Leftmost(t *testing.T) {
	s := []int{1, 2, 2, 2, 5, 9}
	id := func(x int) int { return x }

	i, ok := search.Binary(s, 2, id)
	assert.True(t, ok)
	assert.Equal(t, 1, i)

	for _, miss := range []int{0, 3, 10} {
		_, ok = search.Binary(s, miss, id)
		assert.False(t, ok, "target %d", miss)
	}
}

func TestBinary_AgreesWithLinear(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	id := func(x int) int { return x }
	for trial := 0; trial < 50; trial++ {
		s := make([]int, r.Intn(40))
		for i := range s {
			s[i] = r.Intn(30)
		}
		slices.Sort(s)
		for target := -1; target <= 30; target++ {
			li, lok := search.Linear(s, target, id)
			bi, bok := search.Binary(s, target, id)
			assert.Equal(t, lok, bok)
			if lok {
				assert.Equal(t, li, bi)
			}
		}
	}
}
