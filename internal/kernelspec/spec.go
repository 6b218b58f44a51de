package kernelspec

// Spec is a leaf's fully-derived kernel specification. Two leaves with
// an identical Spec (per spec.md §3's identity tuple, restricted here
// to the fields kernelspec itself derives — placement/layout/direction
// live on the caller's Descriptor and are folded in by whatever keys
// the RTC cache on the caller's side) share one generated source string
// and one compiled code object.
type Spec struct {
	Length       int
	ElementBytes int

	FactorSequence      []int
	CnPerWI             int
	ThreadsPerTransform int
	TransformsPerBlock  int
	HalfLDS             bool
	Tiling              Tiling
	LargeTwiddle        bool

	DirectionSign int
	Scale         float64
}

// ThreadsPerBlockMax bounds a single block's thread count.
const ThreadsPerBlockMax = 256

// LDSByteLimit is the per-block LDS budget from spec.md §4.3.
const LDSByteLimit = 32 * 1024
