package twiddle

import (
	"math"
	"testing"
)

func TestBuildPassTableSize(t *testing.T) {
	t.Parallel()

	factors := []int{8, 8} // length 64
	table := BuildPassTable[complex128](factors, false)

	want := (8 - 1) * 1 // pass 0: H=1
	want += (8 - 1) * 8 // pass 1: H=8

	if len(table.Values) != want {
		t.Fatalf("len(Values) = %d, want %d", len(table.Values), want)
	}

	if table.Length != 64 {
		t.Errorf("Length = %d, want 64", table.Length)
	}
}

func TestBuildPassTableFirstEntry(t *testing.T) {
	t.Parallel()

	table := BuildPassTable[complex128]([]int{4}, false)

	// Pass 0: H=1, W=4. w_{0,0} = exp(-2*pi*i*0*1/4) = 1.
	got := table.PassRoot(0, 0, 0)
	if math.Abs(real(got)-1) > 1e-12 || math.Abs(imag(got)) > 1e-12 {
		t.Errorf("w_{0,0} = %v, want 1", got)
	}

	// w_{0,1} = exp(-2*pi*i*0*2/4) = 1 as well (k=0 always gives 1).
	got = table.PassRoot(0, 0, 1)
	if math.Abs(real(got)-1) > 1e-12 {
		t.Errorf("w_{0,1} = %v, want 1", got)
	}
}

func TestBuildPassTableInverseIsConjugate(t *testing.T) {
	t.Parallel()

	fwd := BuildPassTable[complex128]([]int{5, 5}, false)
	inv := BuildPassTable[complex128]([]int{5, 5}, true)

	for i := range fwd.Values {
		want := complex(real(fwd.Values[i]), -imag(fwd.Values[i]))
		if math.Abs(real(inv.Values[i])-real(want)) > 1e-12 || math.Abs(imag(inv.Values[i])-imag(want)) > 1e-12 {
			t.Errorf("entry %d: inverse = %v, want conjugate %v", i, inv.Values[i], want)
		}
	}
}

func TestBuildLargeTableUnitMagnitude(t *testing.T) {
	t.Parallel()

	table := BuildLargeTable[complex128](8, 8, false)
	if len(table.Values) != 64 {
		t.Fatalf("len(Values) = %d, want 64", len(table.Values))
	}

	for i, v := range table.Values {
		mag := math.Hypot(real(v), imag(v))
		if math.Abs(mag-1) > 1e-9 {
			t.Errorf("entry %d: magnitude = %v, want 1", i, mag)
		}
	}
}
