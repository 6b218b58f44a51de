package rocfft

import "github.com/LxyIsMyself/Copy-rocFFT/internal/plantree"

// LaunchRecord is one ordered entry of the execution schedule C7
// emits, per spec.md §4.7.
type LaunchRecord struct {
	KernelID        string
	GridDim         [3]int
	BlockDim        [3]int
	SharedMemBytes  int64
	InputPtrs       []int // scratch-arena slot indices, resolved by the caller
	OutputPtrs      []int
	TwiddlesPtr     int
	LargeTwiddlePtr int // -1 when the node has no large twiddle table
	RuntimeLengths  []int
	BatchCount      int
}

// BuildSchedule performs an in-order traversal of tree, producing a
// linear launch-record list with ping-pong scratch allocation: no
// record reads and writes the same scratch buffer, per spec.md §4.7.
func BuildSchedule(tree *plantree.Tree, batch int) []LaunchRecord {
	b := &scheduleBuilder{tree: tree, batch: batch}
	b.visit(tree.Root)

	return b.records
}

type scheduleBuilder struct {
	tree    *plantree.Tree
	batch   int
	records []LaunchRecord
	// pingPong alternates 0/1 to select which of two scratch buffers a
	// leaf reads from and the other writes to.
	pingPong int
}

func (b *scheduleBuilder) visit(idx int) {
	node := b.tree.Node(idx)

	for _, child := range node.Children {
		b.visit(child)
	}

	if !node.IsLeaf() && !isCompositeLaunchable(node.Scheme) {
		return
	}

	inSlot := b.pingPong
	outSlot := 1 - b.pingPong
	b.pingPong = outSlot

	b.records = append(b.records, LaunchRecord{
		KernelID:        kernelIDFor(node),
		GridDim:         gridDimFor(node),
		BlockDim:        blockDimFor(node),
		SharedMemBytes:  node.ScratchBytes,
		InputPtrs:       []int{inSlot},
		OutputPtrs:      []int{outSlot},
		TwiddlesPtr:     node.TwiddleTableRef,
		LargeTwiddlePtr: largeTwiddlePtrFor(node),
		RuntimeLengths:  []int{node.Length},
		BatchCount:      b.batch,
	})
}

// isCompositeLaunchable reports whether a non-leaf scheme itself
// launches a kernel (a TRANSPOSE node) as opposed to being a pure
// grouping node whose launch records come entirely from its children.
func isCompositeLaunchable(s plantree.Scheme) bool {
	return s == plantree.SchemeTranspose
}

func kernelIDFor(n plantree.Node) string {
	return n.Scheme.String()
}

func gridDimFor(n plantree.Node) [3]int {
	const blockSize = 64

	grid := (n.Length + blockSize - 1) / blockSize

	return [3]int{grid, 1, 1}
}

func blockDimFor(n plantree.Node) [3]int {
	const maxBlock = 256

	block := n.Length
	if block > maxBlock {
		block = maxBlock
	}

	return [3]int{block, 1, 1}
}

func largeTwiddlePtrFor(n plantree.Node) int {
	if n.Scheme == plantree.SchemeBlockComputeC2C {
		return n.TwiddleTableRef
	}

	return -1
}
