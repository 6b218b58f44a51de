// Package twiddle builds the precomputed roots-of-unity tables a
// Stockham pass sequence multiplies into registers between passes, and
// the "large" table block-compute column kernels use to fold two 1-D
// transforms into one pipeline. Everything is computed on the host in
// double precision and rounded to the target type when the table is
// materialized, per spec.md §4.5.
package twiddle

import "github.com/LxyIsMyself/Copy-rocFFT/internal/fftypes"

// Table holds one plan node's twiddle factors. PassOffset[p] is the
// index into Values where pass p's roots begin; a pass p with width
// W_p and cumulative height H_p contributes (W_p-1)*H_p entries, one
// column of W_p-1 roots per k in [0, H_p).
type Table[T fftypes.Complex] struct {
	Values     []T
	PassOffset []int
	Factors    []int
	Length     int
}

// PassRoot returns the twiddle root for pass p, row k, column j (0 ≤ j <
// W_p-1), where W_p = Factors[p].
func (t *Table[T]) PassRoot(p, k, j int) T {
	width := t.Factors[p]

	return t.Values[t.PassOffset[p]+k*(width-1)+j]
}

// BuildPassTable computes the per-pass twiddle table for a factor
// sequence of total length = product(factors), per spec.md §4.5:
// w_{k,j} = exp(-2*pi*i*k*(j+1)/(W_p*H_p)) for 0<=j<W_p-1, 0<=k<H_p.
// inverse tables hold the conjugate.
func BuildPassTable[T fftypes.Complex](factors []int, inverse bool) *Table[T] {
	length := 1
	for _, f := range factors {
		length *= f
	}

	table := &Table[T]{Factors: factors, Length: length, PassOffset: make([]int, len(factors))}

	height := 1

	for p, width := range factors {
		table.PassOffset[p] = len(table.Values)

		for k := 0; k < height; k++ {
			for j := 0; j < width-1; j++ {
				angle := -2 * piOverN(k*(j+1), width*height)
				if inverse {
					angle = -angle
				}

				table.Values = append(table.Values, fromPolar[T](angle))
			}
		}

		height *= width
	}

	return table
}

// BuildLargeTable computes the block-compute column kernel's outer
// table: L1*L2 entries holding exp(-2*pi*i*m*n/(L1*L2)) (conjugated for
// inverse transforms), per spec.md §4.5.
func BuildLargeTable[T fftypes.Complex](l1, l2 int, inverse bool) *Table[T] {
	table := &Table[T]{Length: l1 * l2}

	for m := 0; m < l1; m++ {
		for n := 0; n < l2; n++ {
			angle := -2 * piOverN(m*n, l1*l2)
			if inverse {
				angle = -angle
			}

			table.Values = append(table.Values, fromPolar[T](angle))
		}
	}

	return table
}
