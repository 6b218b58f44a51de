package math

import "sync"

// TransposePair is one swap position in an in-place square transpose:
// element (Row, Col) trades places with element (Col, Row).
type TransposePair struct {
	Row, Col int
}

var transposePairCache sync.Map // int -> []TransposePair

// ComputeSquareTransposePairs returns the off-diagonal (row, col) swap
// pairs for an n×n row-major in-place transpose. The result is cached per
// n, so repeated calls for the same n share one pair list.
func ComputeSquareTransposePairs(n int) []TransposePair {
	if n <= 1 {
		if n < 0 {
			return nil
		}

		if n == 0 {
			return nil
		}

		return []TransposePair{}
	}

	if cached, ok := transposePairCache.Load(n); ok {
		return cached.([]TransposePair)
	}

	pairs := make([]TransposePair, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pairs = append(pairs, TransposePair{Row: i, Col: j})
		}
	}

	transposePairCache.Store(n, pairs)

	return pairs
}

// ApplyTransposePairs performs an in-place n×n row-major transpose of data
// using precomputed pairs from ComputeSquareTransposePairs. len(data) must
// equal n*n for the n implied by pairs; callers that already know n should
// slice data accordingly before calling.
func ApplyTransposePairs[T any](data []T, pairs []TransposePair) {
	n := squareSide(len(data))
	if n == 0 {
		return
	}

	for _, p := range pairs {
		a := p.Row*n + p.Col
		b := p.Col*n + p.Row
		data[a], data[b] = data[b], data[a]
	}
}

func squareSide(count int) int {
	n := 0
	for n*n < count {
		n++
	}

	if n*n != count {
		return 0
	}

	return n
}
