package fftypes

// AlgorithmKind selects the decomposition strategy used by the reference
// CPU FFT (internal/cpuref). The GPU planner (internal/plantree) has its
// own, richer Scheme enum; this one only needs to cover what the
// reference implementation actually executes.
type AlgorithmKind uint8

const (
	// AlgorithmRadix2 is used when the length is an exact power of two.
	AlgorithmRadix2 AlgorithmKind = iota
	// AlgorithmMixedRadix is used for lengths that are not powers of two
	// but have at least one factor in the descending radix set; a
	// residual factor the set cannot split is handled by the direct DFT
	// inside the recursion.
	AlgorithmMixedRadix
	// AlgorithmDirect is a plain O(n^2) DFT used as a correctness
	// fallback for lengths with no factor in the small radix set (every
	// prime factor larger than 13). The reference FFT favors correctness
	// over speed, so no Bluestein convolution path is implemented.
	AlgorithmDirect
)

// String returns a human-readable name for the algorithm kind.
func (a AlgorithmKind) String() string {
	switch a {
	case AlgorithmRadix2:
		return "radix2"
	case AlgorithmMixedRadix:
		return "mixed-radix"
	case AlgorithmDirect:
		return "direct"
	default:
		return "unknown"
	}
}

// SIMDLevel describes the host CPU feature tier reported by
// cpuref.SIMDLevel. Neither the GPU planner, the reference FFT's
// transform path nor internal/oracle reads it.
type SIMDLevel uint8

const (
	SIMDNone SIMDLevel = iota
	SIMDSSE2
	SIMDAVX2
	SIMDAVX512
	SIMDNEON
)

// String returns a human-readable name for the SIMD level.
func (s SIMDLevel) String() string {
	switch s {
	case SIMDNone:
		return "generic"
	case SIMDSSE2:
		return "sse2"
	case SIMDAVX2:
		return "avx2"
	case SIMDAVX512:
		return "avx512"
	case SIMDNEON:
		return "neon"
	default:
		return "unknown"
	}
}
