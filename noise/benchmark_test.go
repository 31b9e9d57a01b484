package noise

import (
	"testing"

	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

// Sink for benchmark results so the sampling calls cannot be elided.
var benchSink float64

// BenchmarkNoise2D measures a full 6-octave terrain configuration.
func BenchmarkNoise2D(b *testing.B) {
	gen := New(6, 10.0, 0.5, 1.0, 2.0, 100.0, 100.0, 0.0, 101)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		benchSink = gen.Noise2D(float64(i)*0.37, float64(i)*0.91)
	}
}

// BenchmarkNoise2DSingleOctave isolates the cost of one sampler pass.
func BenchmarkNoise2DSingleOctave(b *testing.B) {
	gen := New(1, 1.0, 1.0, 0.5, 2.0, 1.0, 1.0, 0.0, 101)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		benchSink = gen.Noise2D(float64(i)*0.37, float64(i)*0.91)
	}
}

func BenchmarkLatticeNoise(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchSink = latticeNoise(int32(i), int32(i)*57)
	}
}

// Cross-library baselines: gradient Perlin and OpenSimplex at
// comparable octave counts. Different algorithms, so the numbers bound
// expectations rather than compare like for like.

func BenchmarkGoPerlinNoise2D(b *testing.B) {
	p := perlin.NewPerlin(2.0, 2.0, 6, 101)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		benchSink = p.Noise2D(float64(i)*0.0037, float64(i)*0.0091)
	}
}

func BenchmarkOpenSimplexEval2(b *testing.B) {
	n := opensimplex.New(101)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		benchSink = n.Eval2(float64(i)*0.0037, float64(i)*0.0091)
	}
}
