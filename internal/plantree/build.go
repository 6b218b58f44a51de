package plantree

import (
	gomath "math"

	"github.com/LxyIsMyself/Copy-rocFFT/internal/math"
)

// BuildTree decomposes req into a plan tree, per spec.md §4.2.
func BuildTree(req Request) (*Tree, error) {
	if req.Rank < 1 || req.Rank > 3 {
		return nil, ErrInvalidConfig
	}

	for i := range req.Rank {
		if req.Length[i] < 1 {
			return nil, ErrInvalidConfig
		}
	}

	t := &Tree{}

	var root int

	var err error

	switch req.Rank {
	case 1:
		root, err = build1D(t, req.Length[0], req.ElementBytes)
	case 2:
		root, err = build2D(t, req.Length[0], req.Length[1], req.ElementBytes)
	case 3:
		root, err = build3D(t, req.Length, req.ElementBytes)
	}

	if err != nil {
		return nil, err
	}

	if req.RealForward {
		inner := root
		root = t.newNode(Node{Scheme: SchemeRealPre, Length: req.Length[0], Children: []int{inner}})
	} else if req.RealInverse {
		inner := root
		root = t.newNode(Node{Scheme: SchemeRealPost, Length: req.Length[0], Children: []int{inner}})
	}

	t.Root = root
	computeScratch(t, root, req.ElementBytes)
	t.ScratchBytes = t.Nodes[root].ScratchBytes

	return t, nil
}

// build1D implements spec.md §4.2 step 2: a single leaf when the length
// fits the small-kernel budget, otherwise an L1*L2 split with a
// L1D_CC/L1D_TRTRT tie-break.
func build1D(t *Tree, length, elementBytes int) (int, error) {
	if fitsSmallKernel(length, elementBytes) {
		return newLeaf(t, length), nil
	}

	l1, l2, ok := splitLength(length)
	if !ok {
		return 0, ErrUnsupportedLength
	}

	if preferL1DCC(l1, l2) {
		return buildL1DCC(t, l1, l2, elementBytes)
	}

	return buildL1DTRTRT(t, l1, l2, elementBytes)
}

func newLeaf(t *Tree, length int) int {
	return t.newNode(Node{Scheme: SchemeStockham1D, Length: length})
}

// fitsSmallKernel reports whether length can be handled by a single
// STOCKHAM_1D leaf: it must factorize entirely over the tabulated small
// radix set and fit within both the LDS byte budget and maxLeafLength.
func fitsSmallKernel(length, elementBytes int) bool {
	if length > maxLeafLength {
		return false
	}

	bytesPerElement := elementBytes * 2 // complex: real + imag components
	if length*bytesPerElement > ldsByteLimit {
		return false
	}

	_, ok := math.Factorize(length)

	return ok
}

// splitLength finds a divisor pair (l1, l2) of length, both factorizable
// over the small radix set, closest to balanced (minimizing |l1-l2|).
func splitLength(length int) (int, int, bool) {
	bestL1, bestL2 := 0, 0
	bestDiff := gomath.MaxInt

	limit := int(gomath.Sqrt(float64(length))) + 1
	for l1 := limit; l1 >= 1; l1-- {
		if length%l1 != 0 {
			continue
		}

		l2 := length / l1
		if !factorizable(l1) || !factorizable(l2) {
			continue
		}

		diff := l2 - l1
		if diff < 0 {
			diff = -diff
		}

		if diff < bestDiff {
			bestDiff = diff
			bestL1, bestL2 = l1, l2
		}
	}

	if bestL1 == 0 {
		return 0, 0, false
	}

	return bestL1, bestL2, true
}

func factorizable(n int) bool {
	_, ok := math.Factorize(n)

	return ok
}

// minColumnLengthForCC is the smallest L2 considered "large enough" to
// amortize block-compute tiling, below which the single extra buffer
// pass of L1D_TRTRT is cheaper than standing up a column kernel.
const minColumnLengthForCC = 8

// preferL1DCC implements the tie-break of spec.md §4.2: L1D_CC uses two
// kernels (a block-compute row pass plus a column pass) against
// L1D_TRTRT's two transform kernels plus three transposes — fewer
// kernels and less scratch traffic whenever the column pass is large
// enough to be worth tiling, so CC is preferred except when L2 is too
// small to amortize that tiling; ties (L2 at the threshold) prefer
// L1D_CC per spec.md. This mirrors the original's
// partition_rowmajor/partition_colmajor cost comparison without a
// literal port (see DESIGN.md).
func preferL1DCC(_, l2 int) bool {
	return l2 >= minColumnLengthForCC
}

func buildL1DCC(t *Tree, l1, l2, elementBytes int) (int, error) {
	row, err := build1D(t, l1, elementBytes)
	if err != nil {
		return 0, err
	}

	t.Nodes[row].Scheme = SchemeBlockComputeC2C

	col, err := build1D(t, l2, elementBytes)
	if err != nil {
		return 0, err
	}

	root := t.newNode(Node{Scheme: SchemeL1DCC, Length: l1 * l2, Children: []int{row, col}})

	return root, nil
}

func buildL1DTRTRT(t *Tree, l1, l2, elementBytes int) (int, error) {
	tr1 := t.newNode(Node{Scheme: SchemeTranspose, Length: l1})

	s1, err := build1D(t, l1, elementBytes)
	if err != nil {
		return 0, err
	}

	tr2 := t.newNode(Node{Scheme: SchemeTranspose, Length: l2})

	s2, err := build1D(t, l2, elementBytes)
	if err != nil {
		return 0, err
	}

	tr3 := t.newNode(Node{Scheme: SchemeTranspose, Length: l2})

	root := t.newNode(Node{
		Scheme: SchemeL1DTRTRT, Length: l1 * l2,
		Children: []int{tr1, s1, tr2, s2, tr3},
	})

	return root, nil
}

// build2D implements spec.md §4.2 step 1's rank=2 dispatch: a single
// fused kernel when both axes fit one LDS tile, otherwise a
// Row-Transpose-Row-Transpose composition.
func build2D(t *Tree, len0, len1, elementBytes int) (int, error) {
	bytesPerElement := elementBytes * 2
	if len0*len1*bytesPerElement <= ldsByteLimit && factorizable(len0) && factorizable(len1) {
		return t.newNode(Node{Scheme: Scheme2DSingle, Length: len0 * len1}), nil
	}

	row0, err := build1D(t, len0, elementBytes)
	if err != nil {
		return 0, err
	}

	tr1 := t.newNode(Node{Scheme: SchemeTranspose, Length: len0})

	row1, err := build1D(t, len1, elementBytes)
	if err != nil {
		return 0, err
	}

	tr2 := t.newNode(Node{Scheme: SchemeTranspose, Length: len1})

	root := t.newNode(Node{
		Scheme: Scheme2DRTRT, Length: len0 * len1,
		Children: []int{row0, tr1, row1, tr2},
	})

	return root, nil
}

// build3D implements the rank=3 dispatch: three 1-D transforms
// interleaved with three transposes (3D_TRTRTR), per spec.md's §8
// scenario 3.
func build3D(t *Tree, length [3]int, elementBytes int) (int, error) {
	children := make([]int, 0, 6)

	total := 1
	for _, l := range length {
		total *= l
	}

	for i := range 3 {
		axis, err := build1D(t, length[i], elementBytes)
		if err != nil {
			return 0, err
		}

		children = append(children, axis)
		children = append(children, t.newNode(Node{Scheme: SchemeTranspose, Length: length[i]}))
	}

	return t.newNode(Node{Scheme: Scheme3DTRTRTR, Length: total, Children: children}), nil
}

// computeScratch fills ScratchBytes bottom-up per spec.md §4.2 step 4:
// a node's demand is the max of its children's demand and its own
// temporary buffer.
func computeScratch(t *Tree, idx, elementBytes int) int64 {
	n := &t.Nodes[idx]

	var childMax int64

	for _, c := range n.Children {
		if s := computeScratch(t, c, elementBytes); s > childMax {
			childMax = s
		}
	}

	own := ownScratch(*n, elementBytes)
	if own > childMax {
		n.ScratchBytes = own
	} else {
		n.ScratchBytes = childMax
	}

	return n.ScratchBytes
}

// ownScratch estimates the temporary buffer a node itself needs,
// independent of its children: ping-pong schemes (transpose,
// block-compute, multi-level splits) need a full second buffer of the
// node's length; a plain leaf needs one buffer's worth.
func ownScratch(n Node, elementBytes int) int64 {
	bytesPerElement := int64(elementBytes) * 2

	switch n.Scheme {
	case SchemeTranspose, SchemeBlockComputeC2C, SchemeBlockComputeR2C, SchemeBlockComputeC2R,
		SchemeL1DCC, SchemeL1DTRTRT, Scheme2DRTRT, Scheme3DTRTRTR:
		return int64(n.Length) * bytesPerElement * 2
	default:
		return int64(n.Length) * bytesPerElement
	}
}
