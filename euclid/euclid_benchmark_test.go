package euclid_test

import (
	"testing"

	"github.com/sghaida/euclid/euclid"
)

/*
   Benchmarks
*/

func BenchmarkCompute_Small(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = euclid.Compute(48, 18)
	}
}

func BenchmarkCompute_DeepChain(b *testing.B) {
	// Fibonacci neighbors maximize the step count.
	for i := 0; i < b.N; i++ {
		_ = euclid.Compute(1346269, 832040)
	}
}

func BenchmarkResponse(b *testing.B) {
	res := euclid.Compute(123456, 789012)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = res.Response(4)
	}
}
