package maxtri_test

import (
	"testing"

	"github.com/katalvlaran/polytri/maxtri"
)

// benchmarkCountAll runs CountAll on an n-gon and fails on unexpected errors.
func benchmarkCountAll(b *testing.B, n int, opts ...maxtri.Option) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := maxtri.CountAll(n, opts...); err != nil {
			b.Fatalf("CountAll(%d) failed: %v", n, err)
		}
	}
}

func BenchmarkCountAll_Cache9(b *testing.B)   { benchmarkCountAll(b, 9) }
func BenchmarkCountAll_NoCache9(b *testing.B) { benchmarkCountAll(b, 9, maxtri.WithCache(false)) }

// N=11 is the size the cache comparison has traditionally been run at.
func BenchmarkCountAll_Cache11(b *testing.B)   { benchmarkCountAll(b, 11) }
func BenchmarkCountAll_NoCache11(b *testing.B) { benchmarkCountAll(b, 11, maxtri.WithCache(false)) }

func BenchmarkCountForTriangle_Cache14(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := maxtri.CountForTriangle(14, 0, 4, 9); err != nil {
			b.Fatal(err)
		}
	}
}
