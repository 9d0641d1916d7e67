// SPDX-License-Identifier: MIT
package disjointset_test

import (
	"fmt"

	"github.com/katalvlaran/dsalab/disjointset"
)

func ExampleSet_Union() {
	s := disjointset.New("a", "b", "c")
	_, _ = s.Union("a", "b")
	ab, _ := s.Connected("a", "b")
	ac, _ := s.Connected("a", "c")
	fmt.Println(ab, ac, s.Count())

	// Output:
	// true false 2
}
