package oracle

import (
	"fmt"

	"github.com/LxyIsMyself/Copy-rocFFT/internal/cpuref"
	"github.com/LxyIsMyself/Copy-rocFFT/internal/fftypes"
)

// Result holds one comparison's norms and whether it passed tolerance.
type Result struct {
	L2, LInf  float64
	Pass      bool
	Algorithm fftypes.AlgorithmKind
}

// CompareForward generates a deterministic input of length n, runs it
// through both deviceForward (the plan under test) and the reference
// CPU FFT, and reports the L2/L∞ distance between the two results
// against the tolerance of spec.md §8.
func CompareForward[T fftypes.Complex](n int, c float64, epsilon float64, deviceForward func(dst, src []T) error) (Result, error) {
	src := make([]T, n)
	GenerateInput(src)

	device := make([]T, n)
	if err := deviceForward(device, src); err != nil {
		return Result{}, fmt.Errorf("oracle: device forward: %w", err)
	}

	reference := make([]T, n)
	if err := cpuref.Forward(reference, src); err != nil {
		return Result{}, fmt.Errorf("oracle: reference forward: %w", err)
	}

	tol := Tolerance(c, n, epsilon)

	return Result{
		L2:        DistanceL2(device, reference),
		LInf:      DistanceLInf(device, reference),
		Pass:      DistanceL2(device, reference) <= tol,
		Algorithm: cpuref.AlgorithmFor(n),
	}, nil
}

// CompareInverseOfForward checks the inverse-of-forward universal
// property against a device plan pair whose inverse is 1/N-normalized
// (matching internal/cpuref's convention, spec.md §8): inverse(forward(x)) ≈ x.
func CompareInverseOfForward[T fftypes.Complex](n int, c float64, epsilon float64,
	forward, inverse func(dst, src []T) error,
) (Result, error) {
	src := make([]T, n)
	GenerateInput(src)

	freq := make([]T, n)
	if err := forward(freq, src); err != nil {
		return Result{}, fmt.Errorf("oracle: forward: %w", err)
	}

	back := make([]T, n)
	if err := inverse(back, freq); err != nil {
		return Result{}, fmt.Errorf("oracle: inverse: %w", err)
	}

	tol := Tolerance(c, n, epsilon)
	l2 := DistanceL2(back, src)

	return Result{L2: l2, LInf: DistanceLInf(back, src), Pass: l2 <= tol}, nil
}
