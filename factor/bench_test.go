// File: factor/bench_test.go
package factor_test

import (
	"testing"

	"github.com/surdlab/quadring/factor"
	"github.com/surdlab/quadring/quadint"
	"github.com/surdlab/quadring/ring"
)

// BenchmarkPrimeFactors measures a full Gaussian factorization.
func BenchmarkPrimeFactors(b *testing.B) {
	zi, _ := ring.New(-1, true)
	n, _ := quadint.New(360, 0, zi, 1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := factor.PrimeFactors(n); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkIsPrime measures the primality predicate on a split prime.
func BenchmarkIsPrime(b *testing.B) {
	zi, _ := ring.New(-1, true)
	n, _ := quadint.New(2, 5, zi, 1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := factor.IsPrime(n); err != nil {
			b.Fatal(err)
		}
	}
}
