package math

// SmallRadices is the descending radix set the plan tree builder and the
// reference CPU FFT both factor against, per spec.md's §4.2 fallback
// sequence: {13,11,10,8,7,6,5,4,3,2}.
var SmallRadices = [...]int{13, 11, 10, 8, 7, 6, 5, 4, 3, 2}

// Factorize decomposes n into a descending sequence of factors drawn from
// SmallRadices, taking at each step the largest radix that still divides
// the remaining length. It returns (nil, false) when a residual prime
// factor larger than 13 remains, meaning n cannot be expressed purely in
// terms of the small radix set.
func Factorize(n int) ([]int, bool) {
	if n <= 0 {
		return nil, false
	}

	var factors []int

	remaining := n

	for remaining > 1 {
		progressed := false

		for _, radix := range SmallRadices {
			if remaining%radix == 0 {
				factors = append(factors, radix)
				remaining /= radix
				progressed = true

				break
			}
		}

		if !progressed {
			return nil, false
		}
	}

	if len(factors) == 0 {
		factors = []int{1}
	}

	return factors, true
}

// IsHighlyComposite reports whether n factors completely into the small
// radix set (equivalently, whether Factorize succeeds).
func IsHighlyComposite(n int) bool {
	_, ok := Factorize(n)
	return ok
}

// IsPowerOf2 reports whether n is a positive power of two.
func IsPowerOf2(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// LargestPow2Divisor returns the largest power of two dividing n, or 1 if
// n is odd or non-positive.
func LargestPow2Divisor(n int) int {
	if n <= 0 {
		return 1
	}

	d := 1
	for n%2 == 0 {
		d *= 2
		n /= 2
	}

	return d
}
