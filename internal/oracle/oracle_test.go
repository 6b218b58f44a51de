package oracle

import (
	"math"
	"testing"

	"github.com/LxyIsMyself/Copy-rocFFT/internal/cpuref"
	"github.com/LxyIsMyself/Copy-rocFFT/internal/fftypes"
)

func TestGenerateInputIsDeterministic(t *testing.T) {
	t.Parallel()

	a := make([]complex128, 16)
	b := make([]complex128, 16)

	GenerateInput(a)
	GenerateInput(b)

	for i := range a {
		if a[i] != b[i] {
			t.Errorf("index %d: %v != %v, want deterministic regeneration", i, a[i], b[i])
		}
	}
}

func TestGenerateInputIsBounded(t *testing.T) {
	t.Parallel()

	x := make([]complex128, 32)
	GenerateInput(x)

	for i, v := range x {
		if math.Abs(real(v)) > 1 || math.Abs(imag(v)) > 1 {
			t.Errorf("index %d: %v out of [-1,1] bounds", i, v)
		}
	}
}

func TestImposeHermitianSymmetry1D(t *testing.T) {
	t.Parallel()

	x := make([]complex128, 8)
	GenerateInput(x)
	ImposeHermitianSymmetry1D(x)

	if imag(x[0]) != 0 {
		t.Errorf("DC imaginary = %v, want 0", imag(x[0]))
	}

	if imag(x[4]) != 0 {
		t.Errorf("Nyquist imaginary = %v, want 0", imag(x[4]))
	}

	for k := 1; k < 4; k++ {
		want := complex(real(x[k]), -imag(x[k]))
		if x[8-k] != want {
			t.Errorf("x[%d] = %v, want conj(x[%d]) = %v", 8-k, x[8-k], k, want)
		}
	}
}

func TestImposeHermitianSymmetry2D(t *testing.T) {
	t.Parallel()

	len0, len1 := 4, 6
	x := make([]complex128, len0*len1)
	GenerateInput(x)
	ImposeHermitianSymmetry2D(x, len0, len1)

	at := func(i0, i1 int) int { return i0*len1 + i1 }

	for i0 := 0; i0 < len0; i0++ {
		for i1 := 0; i1 < len1; i1++ {
			j0, j1 := (len0-i0)%len0, (len1-i1)%len1
			want := complex(real(x[at(i0, i1)]), -imag(x[at(i0, i1)]))

			if j0 == i0 && j1 == i1 {
				continue
			}

			if x[at(j0, j1)] != want {
				t.Fatalf("x[%d,%d]=%v, want conj(x[%d,%d])=%v", j0, j1, x[at(j0, j1)], i0, i1, want)
			}
		}
	}
}

func TestImposeHermitianSymmetry3DPlanarUnsupported(t *testing.T) {
	t.Parallel()

	x := make([]complex128, 2*2*2)
	err := ImposeHermitianSymmetry3D(x, [3]int{2, 2, 2}, true)
	if err != ErrUnsupportedHermitian {
		t.Fatalf("err = %v, want ErrUnsupportedHermitian", err)
	}
}

func TestL2AndLInf(t *testing.T) {
	t.Parallel()

	x := []complex128{3, complex(0, 4)}
	if got := L2(x); math.Abs(got-5) > 1e-12 {
		t.Errorf("L2 = %v, want 5", got)
	}

	if got := LInf(x); math.Abs(got-4) > 1e-12 {
		t.Errorf("LInf = %v, want 4", got)
	}
}

func TestCompareForwardAgainstCpurefPasses(t *testing.T) {
	t.Parallel()

	n := 64

	result, err := CompareForward(n, 10, EpsilonDouble, func(dst, src []complex128) error {
		return cpuref.Forward(dst, src)
	})
	if err != nil {
		t.Fatalf("CompareForward: %v", err)
	}

	if !result.Pass {
		t.Errorf("result = %+v, want Pass (comparing cpuref against itself)", result)
	}

	if result.Algorithm != fftypes.AlgorithmRadix2 {
		t.Errorf("Algorithm = %v, want AlgorithmRadix2 for a power-of-two length", result.Algorithm)
	}
}

func TestCompareInverseOfForwardPasses(t *testing.T) {
	t.Parallel()

	n := 40

	result, err := CompareInverseOfForward(n, 10, EpsilonDouble, cpuref.Forward[complex128], cpuref.Inverse[complex128])
	if err != nil {
		t.Fatalf("CompareInverseOfForward: %v", err)
	}

	if !result.Pass {
		t.Errorf("result = %+v, want Pass", result)
	}
}

func TestToleranceScalesWithSqrtN(t *testing.T) {
	t.Parallel()

	small := Tolerance(1, 4, EpsilonDouble)
	large := Tolerance(1, 16, EpsilonDouble)

	if math.Abs(large/small-2) > 1e-9 {
		t.Errorf("tolerance ratio = %v, want 2 (sqrt(16)/sqrt(4))", large/small)
	}
}
