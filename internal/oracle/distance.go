package oracle

import (
	"math"

	"github.com/LxyIsMyself/Copy-rocFFT/internal/fftypes"
)

// L2 returns the L2 norm (sqrt of sum of squared magnitudes) of x,
// mirroring the original's norm_complex.
func L2[T fftypes.Complex](x []T) float64 {
	var sum float64

	for _, v := range x {
		re, im := components(v)
		sum += re*re + im*im
	}

	return math.Sqrt(sum)
}

// LInf returns the L∞ norm (maximum magnitude) of x.
func LInf[T fftypes.Complex](x []T) float64 {
	var max float64

	for _, v := range x {
		re, im := components(v)
		if m := math.Hypot(re, im); m > max {
			max = m
		}
	}

	return max
}

// DistanceL2 computes the L2 distance between two equal-length
// interleaved buffers, mirroring the original's distance_1to1_complex.
func DistanceL2[T fftypes.Complex](a, b []T) float64 {
	var sum float64

	for i := range a {
		re, im := diffComponents(a[i], b[i])
		sum += re*re + im*im
	}

	return math.Sqrt(sum)
}

// DistanceLInf computes the L∞ distance between two equal-length
// interleaved buffers.
func DistanceLInf[T fftypes.Complex](a, b []T) float64 {
	var max float64

	for i := range a {
		re, im := diffComponents(a[i], b[i])
		if m := math.Hypot(re, im); m > max {
			max = m
		}
	}

	return max
}

// DistancePlanarL2 computes the L2 distance between two buffer pairs
// stored as separate real/imaginary slices (complex_planar layout).
func DistancePlanarL2(aReal, aImag, bReal, bImag []float64) float64 {
	var sum float64

	for i := range aReal {
		dre := aReal[i] - bReal[i]
		dim := aImag[i] - bImag[i]
		sum += dre*dre + dim*dim
	}

	return math.Sqrt(sum)
}

// DistanceInterleavedToPlanarL2 computes the L2 distance between an
// interleaved buffer and a planar buffer pair, mirroring the original's
// distance_1to2 for mixed output-layout comparisons (e.g. an
// interleaved device result checked against a planar reference, or
// vice versa).
func DistanceInterleavedToPlanarL2[T fftypes.Complex](interleaved []T, planarReal, planarImag []float64) float64 {
	var sum float64

	for i, v := range interleaved {
		re, im := components(v)
		dre := re - planarReal[i]
		dim := im - planarImag[i]
		sum += dre*dre + dim*dim
	}

	return math.Sqrt(sum)
}

func components[T fftypes.Complex](v T) (float64, float64) {
	switch x := any(v).(type) {
	case complex64:
		return float64(real(x)), float64(imag(x))
	case complex128:
		return real(x), imag(x)
	default:
		panic("oracle: unsupported complex type")
	}
}

func diffComponents[T fftypes.Complex](a, b T) (float64, float64) {
	ra, ia := components(a)
	rb, ib := components(b)

	return ra - rb, ia - ib
}
