package quadint_test

import (
	"testing"

	"github.com/surdlab/quadring/quadint"
	"github.com/surdlab/quadring/ring"
)

// BenchmarkTimes measures the same-ring product hot path.
func BenchmarkTimes(b *testing.B) {
	r, _ := ring.New(-5, true)
	x, _ := quadint.New(12345, -678, r, 1)
	y, _ := quadint.New(-901, 2345, r, 1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := x.Times(y); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkDiv measures conjugate rationalization with an exact quotient.
func BenchmarkDiv(b *testing.B) {
	r, _ := ring.New(-1, true)
	x, _ := quadint.New(3, 2, r, 1)
	y, _ := quadint.New(1, 1, r, 1)
	p, _ := x.Times(y)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := p.Div(y); err != nil {
			b.Fatal(err)
		}
	}
}
