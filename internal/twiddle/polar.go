package twiddle

import (
	"math"

	"github.com/LxyIsMyself/Copy-rocFFT/internal/fftypes"
)

// piOverN returns pi*numerator/denominator, computed in double
// precision regardless of the target type per spec.md §4.5 ("built on
// host, exact double then rounded to target precision").
func piOverN(numerator, denominator int) float64 {
	return math.Pi * float64(numerator) / float64(denominator)
}

// fromPolar builds a unit-magnitude complex value of type T from an
// angle in radians, narrowing to float32 for complex64.
func fromPolar[T fftypes.Complex](angle float64) T {
	re, im := math.Cos(angle), math.Sin(angle)

	var zero T

	switch any(zero).(type) {
	case complex64:
		result, _ := any(complex(float32(re), float32(im))).(T)
		return result
	case complex128:
		result, _ := any(complex(re, im)).(T)
		return result
	default:
		panic("twiddle: unsupported complex type")
	}
}
