package oracle

import "github.com/LxyIsMyself/Copy-rocFFT/internal/fftypes"

// ImposeHermitianSymmetry1D rewrites x (length n, interleaved complex)
// in place so it is the conjugate-symmetric spectrum of some real
// signal: x[n-k] = conj(x[k]) for 1<=k<n/2, and the DC and (for even n)
// Nyquist bins are forced to have zero imaginary part, per spec.md
// §4.8 and the original's impose_hermitian_symmetry.
func ImposeHermitianSymmetry1D[T fftypes.Complex](x []T) {
	n := len(x)
	if n == 0 {
		return
	}

	x[0] = realPart(x[0])

	for k := 1; k < n-k; k++ {
		x[n-k] = conjugate(x[k])
	}

	if n%2 == 0 {
		x[n/2] = realPart(x[n/2])
	}
}

// ImposeHermitianSymmetry2D applies the 2-D conjugate-symmetric
// condition x[(-i0) mod len0, (-i1) mod len1] = conj(x[i0, i1]) to an
// interleaved row-major buffer, generalizing ImposeHermitianSymmetry1D
// to rank 2 per the original's handling for up to 3 dimensions.
func ImposeHermitianSymmetry2D[T fftypes.Complex](x []T, len0, len1 int) {
	at := func(i0, i1 int) int { return i0*len1 + i1 }

	for i0 := range len0 {
		for i1 := range len1 {
			j0, j1 := (len0-i0)%len0, (len1-i1)%len1
			if j0 == i0 && j1 == i1 {
				x[at(i0, i1)] = realPart(x[at(i0, i1)])

				continue
			}

			if before2D(i0, i1, j0, j1) {
				x[at(j0, j1)] = conjugate(x[at(i0, i1)])
			}
		}
	}
}

// before2D imposes a canonical visiting order so each conjugate pair is
// written exactly once, from the lexicographically first index.
func before2D(i0, i1, j0, j1 int) bool {
	if i0 != j0 {
		return i0 < j0
	}

	return i1 < j1
}

// ImposeHermitianSymmetry3D generalizes to rank 3 for interleaved
// layouts. Planar layouts are left unimplemented per spec.md §9 Open
// Question (a): the original source does not implement 3-D hermitian
// symmetry imposition for planar buffers, so this returns
// ErrUnsupportedHermitian rather than guessing a convention.
func ImposeHermitianSymmetry3D[T fftypes.Complex](x []T, lengths [3]int, planar bool) error {
	if planar {
		return ErrUnsupportedHermitian
	}

	l0, l1, l2 := lengths[0], lengths[1], lengths[2]
	at := func(i0, i1, i2 int) int { return (i0*l1+i1)*l2 + i2 }

	for i0 := range l0 {
		for i1 := range l1 {
			for i2 := range l2 {
				j0, j1, j2 := (l0-i0)%l0, (l1-i1)%l1, (l2-i2)%l2
				if j0 == i0 && j1 == i1 && j2 == i2 {
					x[at(i0, i1, i2)] = realPart(x[at(i0, i1, i2)])

					continue
				}

				if before3D(i0, i1, i2, j0, j1, j2) {
					x[at(j0, j1, j2)] = conjugate(x[at(i0, i1, i2)])
				}
			}
		}
	}

	return nil
}

func before3D(i0, i1, i2, j0, j1, j2 int) bool {
	if i0 != j0 {
		return i0 < j0
	}

	if i1 != j1 {
		return i1 < j1
	}

	return i2 < j2
}

func realPart[T fftypes.Complex](v T) T {
	switch x := any(v).(type) {
	case complex64:
		result, _ := any(complex(real(x), float32(0))).(T)
		return result
	case complex128:
		result, _ := any(complex(real(x), 0.0)).(T)
		return result
	default:
		panic("oracle: unsupported complex type")
	}
}

func conjugate[T fftypes.Complex](v T) T {
	switch x := any(v).(type) {
	case complex64:
		result, _ := any(complex(real(x), -imag(x))).(T)
		return result
	case complex128:
		result, _ := any(complex(real(x), -imag(x))).(T)
		return result
	default:
		panic("oracle: unsupported complex type")
	}
}
