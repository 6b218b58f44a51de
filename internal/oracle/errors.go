// Package oracle is the numerical test harness (C8): seeded input
// generation, hermitian symmetry imposition, and L2/L∞ distance against
// the reference CPU FFT (internal/cpuref). It is test-only plumbing,
// not part of the planner/compiler product.
package oracle

import "errors"

// ErrUnsupportedHermitian is returned for 3-D planar hermitian symmetry
// imposition, which spec.md §9 Open Question (a) leaves unimplemented
// in the source this module is grounded on — callers should treat it
// as Unsupported rather than the oracle guessing a convention.
var ErrUnsupportedHermitian = errors.New("oracle: 3-D planar hermitian symmetry imposition is unsupported")
