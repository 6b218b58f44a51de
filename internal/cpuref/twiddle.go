package cpuref

import "math"

// ComputeTwiddleFactors returns the precomputed twiddle factors (roots of
// unity) for a size-n FFT: W_n^k = exp(-2*pi*i*k/n) for k = 0..n-1.
func ComputeTwiddleFactors[T Complex](n int) []T {
	if n <= 0 {
		return nil
	}

	twiddle := make([]T, n)
	for k := range n {
		angle := -2.0 * math.Pi * float64(k) / float64(n)
		twiddle[k] = complexFromFloat64[T](math.Cos(angle), math.Sin(angle))
	}

	return twiddle
}

// complexFromFloat64 builds a complex value of type T from float64
// components, narrowing to float32 for complex64.
func complexFromFloat64[T Complex](re, im float64) T {
	var zero T

	switch any(zero).(type) {
	case complex64:
		result, _ := any(complex(float32(re), float32(im))).(T)
		return result
	case complex128:
		result, _ := any(complex(re, im)).(T)
		return result
	default:
		panic("cpuref: unsupported complex type")
	}
}

// conj returns the complex conjugate of val.
func conj[T Complex](val T) T {
	switch v := any(val).(type) {
	case complex64:
		result, _ := any(complex(real(v), -imag(v))).(T)
		return result
	case complex128:
		result, _ := any(complex(real(v), -imag(v))).(T)
		return result
	default:
		panic("cpuref: unsupported complex type")
	}
}

// scale multiplies every element of data by a real scalar.
func scale[T Complex](data []T, factor float64) {
	for i, v := range data {
		switch x := any(v).(type) {
		case complex64:
			result, _ := any(complex(real(x)*float32(factor), imag(x)*float32(factor))).(T)
			data[i] = result
		case complex128:
			result, _ := any(complex(real(x)*factor, imag(x)*factor)).(T)
			data[i] = result
		}
	}
}
