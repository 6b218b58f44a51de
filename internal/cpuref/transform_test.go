package cpuref

import (
	"math"
	"testing"
)

func absComplex128(v complex128) float64 {
	return math.Hypot(real(v), imag(v))
}

func TestForwardImpulse(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 2, 4, 5, 7, 8, 16, 35, 64} {
		src := make([]complex128, n)
		src[0] = 1

		dst := make([]complex128, n)
		if err := Forward(dst, src); err != nil {
			t.Fatalf("n=%d: Forward: %v", n, err)
		}

		for i, v := range dst {
			if absComplex128(v-1) > 1e-9 {
				t.Errorf("n=%d: dst[%d] = %v, want 1", n, i, v)
			}
		}
	}
}

func TestInverseOfForwardRoundTrip(t *testing.T) {
	t.Parallel()

	for _, n := range []int{2, 3, 4, 5, 6, 7, 8, 12, 35, 40, 64, 100} {
		src := make([]complex128, n)
		for i := range src {
			src[i] = complex(float64(i%7)-3, float64(i%5)-2)
		}

		freq := make([]complex128, n)
		if err := Forward(freq, src); err != nil {
			t.Fatalf("n=%d: Forward: %v", n, err)
		}

		back := make([]complex128, n)
		if err := Inverse(back, freq); err != nil {
			t.Fatalf("n=%d: Inverse: %v", n, err)
		}

		tol := 1e-9 * math.Sqrt(float64(n)) * 10
		for i := range src {
			if absComplex128(back[i]-src[i]) > tol {
				t.Errorf("n=%d: back[%d] = %v, want %v", n, i, back[i], src[i])
			}
		}
	}
}

func TestLinearity(t *testing.T) {
	t.Parallel()

	n := 40
	alpha, beta := complex(1.5, -0.5), complex(-0.25, 2.0)

	x := make([]complex128, n)
	y := make([]complex128, n)

	for i := range n {
		x[i] = complex(float64(i), -float64(i))
		y[i] = complex(float64(n-i), float64(i)*0.5)
	}

	combined := make([]complex128, n)
	for i := range n {
		combined[i] = alpha*x[i] + beta*y[i]
	}

	fx := make([]complex128, n)
	fy := make([]complex128, n)
	fcombined := make([]complex128, n)

	if err := Forward(fx, x); err != nil {
		t.Fatal(err)
	}

	if err := Forward(fy, y); err != nil {
		t.Fatal(err)
	}

	if err := Forward(fcombined, combined); err != nil {
		t.Fatal(err)
	}

	tol := 1e-8 * math.Sqrt(float64(n)) * 10

	for i := range n {
		want := alpha*fx[i] + beta*fy[i]
		if absComplex128(fcombined[i]-want) > tol {
			t.Errorf("i=%d: F(ax+by) = %v, want %v", i, fcombined[i], want)
		}
	}
}

func TestParseval(t *testing.T) {
	t.Parallel()

	n := 64

	x := make([]complex128, n)
	for i := range n {
		x[i] = complex(float64(i%11)-5, float64(i%3)-1)
	}

	fx := make([]complex128, n)
	if err := Forward(fx, x); err != nil {
		t.Fatal(err)
	}

	var timeEnergy, freqEnergy float64
	for i := range n {
		timeEnergy += real(x[i])*real(x[i]) + imag(x[i])*imag(x[i])
		freqEnergy += real(fx[i])*real(fx[i]) + imag(fx[i])*imag(fx[i])
	}

	want := timeEnergy * float64(n)
	if math.Abs(freqEnergy-want) > 1e-6*want {
		t.Errorf("Parseval: freqEnergy=%v, want %v", freqEnergy, want)
	}
}

func TestRealRoundTrip(t *testing.T) {
	t.Parallel()

	n := 8

	x := make([]complex128, n)
	for i := range n {
		x[i] = complex(float64(i+1), 0)
	}

	spectrum, err := RealForward(x)
	if err != nil {
		t.Fatal(err)
	}

	if len(spectrum) != n/2+1 {
		t.Fatalf("spectrum length = %d, want %d", len(spectrum), n/2+1)
	}

	back, err := RealInverse(spectrum, n)
	if err != nil {
		t.Fatal(err)
	}

	for i := range n {
		if math.Abs(real(back[i])-real(x[i])) > 1e-9 {
			t.Errorf("back[%d] = %v, want %v", i, back[i], x[i])
		}
	}
}
