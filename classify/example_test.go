// File: classify/example_test.go
package classify_test

import (
	"fmt"
	"sort"

	"github.com/surdlab/quadring/classify"
	"github.com/surdlab/quadring/ring"
)

// ExampleGrouping partitions the primes up to 13 in the Gaussian
// integers.
func ExampleGrouping() {
	zi, _ := ring.New(-1, true)
	g, _ := classify.NewGrouping(zi, 13)

	fmt.Println("inert:", g.Inerts())

	splits := g.Splits()
	keys := make([]int64, 0, len(splits))
	for p := range splits {
		keys = append(keys, p)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	for _, p := range keys {
		fmt.Println(p, "=", splits[p], "× conjugate")
	}

	// Output:
	// inert: [3 7 11]
	// 5 = 2+√-1 × conjugate
	// 13 = 3+2√-1 × conjugate
}
