package plantree

// Node is one entry in a plan Tree's arena. Children are indices into
// the owning Tree's Nodes slice; an empty Children slice marks a leaf.
// TwiddleTableRef and KernelSpecRef are opaque handles into arenas
// owned elsewhere (internal/twiddle, internal/kernelspec) — plantree
// only reserves the slot, it does not populate it.
type Node struct {
	Scheme          Scheme
	Length          int
	Children        []int
	TwiddleTableRef int
	KernelSpecRef   int
	ScratchBytes    int64
}

// IsLeaf reports whether the node has no children.
func (n Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// Tree is the arena-owned plan tree: the tree exclusively owns its
// node storage, addressed by index, with no cyclic references.
type Tree struct {
	Nodes        []Node
	Root         int
	ScratchBytes int64
}

// Node returns the node at idx.
func (t *Tree) Node(idx int) Node {
	return t.Nodes[idx]
}

// newNode appends a node to the arena and returns its index.
func (t *Tree) newNode(n Node) int {
	n.TwiddleTableRef = -1
	n.KernelSpecRef = -1
	t.Nodes = append(t.Nodes, n)

	return len(t.Nodes) - 1
}
