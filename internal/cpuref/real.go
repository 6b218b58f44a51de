package cpuref

// RealForward computes the forward real-to-hermitian DFT of a real input
// of length n, returning the n/2+1 complex spectrum values. It is used by
// internal/oracle to validate real-forward plans; it is not an optimized
// real-FFT, just an embedding into the complex path for correctness.
func RealForward[T Complex](src []T) ([]T, error) {
	n := len(src)

	full := make([]T, n)
	copy(full, src)

	spectrum := make([]T, n)
	if err := Forward(spectrum, full); err != nil {
		return nil, err
	}

	return spectrum[:n/2+1], nil
}

// RealInverse reconstructs a length-n real signal from its n/2+1
// hermitian spectrum by rebuilding the conjugate-symmetric full spectrum
// and running the ordinary inverse transform.
func RealInverse[T Complex](hermitian []T, n int) ([]T, error) {
	full := make([]T, n)
	copy(full, hermitian)

	for k := len(hermitian); k < n; k++ {
		full[k] = conj(hermitian[n-k])
	}

	out := make([]T, n)
	if err := Inverse(out, full); err != nil {
		return nil, err
	}

	return out, nil
}
