package plantree

// Request is the input to BuildTree: the parts of a canonical
// descriptor the tree builder actually needs. The root package
// constructs one from its Descriptor so that plantree has no import
// dependency back on the root package.
type Request struct {
	Rank   int
	Length [3]int

	// ElementBytes is the size in bytes of one real/imaginary component
	// (4 for single precision, 8 for double).
	ElementBytes int

	RealForward bool
	RealInverse bool
}

// maxLeafLength bounds the lengths handled by a single STOCKHAM_1D leaf.
// It is deliberately smaller than the raw LDS_BYTE_LIMIT quotient: the
// tabulated single-kernel radix sequences rocFFT ships top out well
// below the point where LDS capacity alone would allow a single-kernel
// plan, so lengths like 4096 route through a two-level L1D_CC/L1D_TRTRT
// split instead of a (theoretically LDS-feasible) single leaf.
const maxLeafLength = 2048

// ldsByteLimit is the per-block LDS budget from spec.md §4.3.
const ldsByteLimit = 32 * 1024
