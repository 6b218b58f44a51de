package oracle

import "github.com/LxyIsMyself/Copy-rocFFT/internal/fftypes"

// GenerateInput fills dst with pseudorandom complex samples, each
// derived solely from its linearized index (spec.md §4.8: "seeded
// generator (seed = linearized index)"). This makes generation
// deterministic per-position and trivially parallelizable: regenerating
// any single index never depends on the indices around it.
func GenerateInput[T fftypes.Complex](dst []T) {
	for i := range dst {
		re, im := sampleAt(i)
		dst[i] = complexFromFloat64[T](re, im)
	}
}

// sampleAt derives two values in [-1, 1) from index i using a
// splitmix64-style mix, avoiding a shared mutable PRNG state.
func sampleAt(i int) (float64, float64) {
	a := splitmix64(uint64(2*i + 1))
	b := splitmix64(uint64(2*i + 2))

	return unitInterval(a), unitInterval(b)
}

func splitmix64(x uint64) uint64 {
	x += 0x9E3779B97F4A7C15
	x = (x ^ (x >> 30)) * 0xBF58476D1CE4E5B9
	x = (x ^ (x >> 27)) * 0x94D049BB133111EB

	return x ^ (x >> 31)
}

// unitInterval maps a uint64 to [-1, 1).
func unitInterval(x uint64) float64 {
	const mask = 1<<53 - 1

	frac := float64(x&mask) / float64(1<<53)

	return 2*frac - 1
}

func complexFromFloat64[T fftypes.Complex](re, im float64) T {
	var zero T

	switch any(zero).(type) {
	case complex64:
		result, _ := any(complex(float32(re), float32(im))).(T)
		return result
	case complex128:
		result, _ := any(complex(re, im)).(T)
		return result
	default:
		panic("oracle: unsupported complex type")
	}
}
