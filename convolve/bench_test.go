package convolve_test

import (
	"testing"

	"github.com/katalvlaran/lvraster/convolve"
	"github.com/katalvlaran/lvraster/kernel"
	"github.com/katalvlaran/lvraster/pixel"
)

// BenchmarkApply_Gaussian measures a 3×3 kernel on a 256×256 color buffer.
// Complexity: O(H·W·D·9)
func BenchmarkApply_Gaussian(b *testing.B) {
	in := randomBuffer(b, 42, 256, 256, pixel.Color)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := convolve.Apply(in, kernel.Gaussian); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkApply_MotionParallel measures the 9×9 kernel with 4 row workers.
// Complexity: O(H·W·D·81)
func BenchmarkApply_MotionParallel(b *testing.B) {
	in := randomBuffer(b, 42, 256, 256, pixel.Color)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := convolve.Apply(in, kernel.Motion, convolve.WithWorkers(4)); err != nil {
			b.Fatal(err)
		}
	}
}
