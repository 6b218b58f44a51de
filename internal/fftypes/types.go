// Package fftypes holds the type constraints and small enums shared across
// the planner, kernel generator, and the reference CPU FFT. Keeping them in
// one leaf package avoids import cycles between internal/cpuref,
// internal/plantree, internal/kernelspec, and internal/twiddle.
package fftypes

// Complex is the type constraint for complex sample types this module
// supports: complex64 for single precision, complex128 for double.
type Complex interface {
	~complex64 | ~complex128
}

// Float is the type constraint for the real/imaginary component type
// backing a Complex type.
type Float interface {
	~float32 | ~float64
}
