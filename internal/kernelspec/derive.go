package kernelspec

import (
	"errors"

	"github.com/LxyIsMyself/Copy-rocFFT/internal/math"
)

// ErrUnsupportedLength means length has no factor sequence over the
// tabulated small-radix set, or one transform of it exceeds the LDS
// byte budget.
var ErrUnsupportedLength = errors.New("kernelspec: unsupported length")

// Options configures Derive; PairedLength is nonzero only for
// Tiling2DSingle kernels, where the LDS budget is shared with the
// other axis.
type Options struct {
	Length       int
	ElementBytes int
	Tiling       Tiling
	BlockCompute bool
	LargeTwiddle bool
	PairedLength int
	DirectionSign int
	Scale         float64
}

// Derive computes a Spec for a plan tree leaf, per spec.md §4.3.
func Derive(opt Options) (Spec, error) {
	factors, ok := math.Factorize(opt.Length)
	if !ok {
		return Spec{}, ErrUnsupportedLength
	}

	cnPerWI := chooseCnPerWI(opt.Length, factors)
	threadsPerTransform := opt.Length / cnPerWI

	bytesPerElement := opt.ElementBytes * 2
	if opt.Length*bytesPerElement > LDSByteLimit {
		return Spec{}, ErrUnsupportedLength
	}

	transformsPerBlock := transformsPerBlockFor(threadsPerTransform, opt.Length, bytesPerElement, opt.PairedLength)

	return Spec{
		Length:              opt.Length,
		ElementBytes:        opt.ElementBytes,
		FactorSequence:      factors,
		CnPerWI:             cnPerWI,
		ThreadsPerTransform: threadsPerTransform,
		TransformsPerBlock:  transformsPerBlock,
		HalfLDS:             !opt.BlockCompute,
		Tiling:              opt.Tiling,
		LargeTwiddle:        opt.LargeTwiddle,
		DirectionSign:       opt.DirectionSign,
		Scale:               opt.Scale,
	}, nil
}

// chooseCnPerWI picks the smallest power of two such that
// length/cnPerWI is a feasible thread count and every tabulated factor
// divides that thread count, per spec.md §4.3.
func chooseCnPerWI(length int, factors []int) int {
	for cnPerWI := 1; cnPerWI <= length; cnPerWI *= 2 {
		if length%cnPerWI != 0 {
			continue
		}

		threads := length / cnPerWI
		if allDivide(factors, threads) {
			return cnPerWI
		}
	}

	return 1
}

func allDivide(factors []int, threads int) bool {
	for _, f := range factors {
		if threads%f != 0 {
			return false
		}
	}

	return true
}

// transformsPerBlockFor implements spec.md §4.3's transforms_per_block
// derivation: the largest count fitting both the block thread budget
// and the LDS byte budget, additionally bounded by a paired dimension
// for 2D_SINGLE kernels sharing one LDS tile across both axes.
func transformsPerBlockFor(threadsPerTransform, length, bytesPerElement, pairedLength int) int {
	byThreads := ThreadsPerBlockMax / threadsPerTransform
	if byThreads < 1 {
		byThreads = 1
	}

	byLDS := LDSByteLimit / (length * bytesPerElement)
	if byLDS < 1 {
		byLDS = 1
	}

	best := min(byThreads, byLDS)

	if pairedLength > 0 {
		byPaired := LDSByteLimit / (pairedLength * bytesPerElement)
		if byPaired < 1 {
			byPaired = 1
		}

		best = min(best, byPaired)
	}

	return best
}
