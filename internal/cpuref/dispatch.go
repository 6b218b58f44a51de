package cpuref

import (
	"github.com/LxyIsMyself/Copy-rocFFT/internal/fftypes"
	m "github.com/LxyIsMyself/Copy-rocFFT/internal/math"
)

// AlgorithmFor reports which decomposition transform would use for a
// length-n input, without actually running it. internal/oracle attaches
// this to its comparison results so a failing case can be traced back to
// radix-2, mixed-radix, or the O(n^2) direct fallback.
func AlgorithmFor(n int) fftypes.AlgorithmKind {
	switch {
	case n <= 1:
		return fftypes.AlgorithmRadix2
	case m.IsPowerOf2(n):
		return fftypes.AlgorithmRadix2
	case smallestFactor(n) != 0:
		return fftypes.AlgorithmMixedRadix
	default:
		return fftypes.AlgorithmDirect
	}
}

// SIMDLevel classifies the detected Features into a coarse tier. The
// reference FFT's own arithmetic is identical at every tier (pure Go
// complex multiply/add); this only describes what the host could have
// accelerated. internal/oracle does not record it in its results.
func SIMDLevel(f Features) fftypes.SIMDLevel {
	switch {
	case f.HasAVX512:
		return fftypes.SIMDAVX512
	case f.HasAVX2:
		return fftypes.SIMDAVX2
	case f.HasNEON:
		return fftypes.SIMDNEON
	case f.HasSSE2:
		return fftypes.SIMDSSE2
	default:
		return fftypes.SIMDNone
	}
}
