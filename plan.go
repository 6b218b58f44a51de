package rocfft

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/LxyIsMyself/Copy-rocFFT/internal/kernelgen"
	"github.com/LxyIsMyself/Copy-rocFFT/internal/kernelspec"
	"github.com/LxyIsMyself/Copy-rocFFT/internal/plantree"
	"github.com/LxyIsMyself/Copy-rocFFT/internal/rtccache"
	"github.com/LxyIsMyself/Copy-rocFFT/internal/twiddle"

	"github.com/LxyIsMyself/Copy-rocFFT/gpu"
)

// toolchainVersion is folded into every RTC cache key (spec.md §4.6's
// four-tuple identity); it changes only when kernelgen's emitted source
// shape changes in a way that should invalidate previously compiled
// code objects regardless of generator hash.
const toolchainVersion = 1

// KernelLauncher is implemented by the external accelerator driver this
// module never provides: something that owns device memory and knows
// how to compile and dispatch one generated kernel on a stream. This
// package stops at emitting the compiled schedule and kernel sources
// (spec.md §1); plan_execute drives a caller-supplied KernelLauncher
// through that schedule in order.
type KernelLauncher interface {
	Launch(stream gpu.Stream, record LaunchRecord, source string) error
}

// Plan is a compiled transform: a plan tree (C2), a kernel spec and
// generated source per leaf (C3/C4), twiddle tables (C5), and a linear
// execution schedule (C7), per spec.md §6's plan_create/plan_execute
// ABI.
type Plan struct {
	desc Descriptor
	tree *plantree.Tree

	kernels map[int]kernelgen.Kernel // node index -> generated kernel
	tables  map[int]any              // node index -> *twiddle.Table[complex64|complex128]

	schedule     []LaunchRecord
	scratchBytes int64

	cache *rtccache.Cache

	mu       sync.Mutex
	lastDiag string
}

// PlanCreate validates raw, builds the plan tree, derives and generates
// every leaf kernel, resolves each against the RTC cache, builds
// twiddle tables, and computes the execution schedule. It corresponds
// to spec.md §6's plan_create.
func PlanCreate(raw RawDescriptor, cache *rtccache.Cache) (*Plan, error) {
	desc, err := Normalize(raw)
	if err != nil {
		return nil, err
	}

	req := plantree.Request{
		Rank:         desc.Rank,
		Length:       desc.Length,
		ElementBytes: elementBytes(desc.Precision),
		RealForward:  desc.InputLayout == LayoutReal,
		RealInverse:  desc.OutputLayout == LayoutReal,
	}

	tree, err := plantree.BuildTree(req)
	if err != nil {
		return nil, wrapTreeError(err)
	}

	p := &Plan{
		desc:         desc,
		tree:         tree,
		kernels:      make(map[int]kernelgen.Kernel),
		tables:       make(map[int]any),
		scratchBytes: tree.ScratchBytes,
		cache:        cache,
	}

	if err := p.generateKernels(); err != nil {
		return nil, err
	}

	p.schedule = BuildSchedule(tree, desc.Batch)

	return p, nil
}

// wrapTreeError maps a plantree error to this package's ErrKind taxonomy.
func wrapTreeError(err error) error {
	if err == plantree.ErrUnsupportedLength {
		return newError(ErrKindUnsupportedLength, "length has no viable factorization", err)
	}

	return newError(ErrKindInvalidConfig, "plan tree construction failed", err)
}

// generateKernels walks the tree once, deriving a kernelspec.Spec and a
// kernelgen.Kernel for every codegen-eligible leaf (STOCKHAM_1D,
// BLOCK_COMPUTE_C2C, 2D_SINGLE), building that leaf's twiddle table(s),
// and resolving the generated source against the RTC cache. TRANSPOSE
// and the pure grouping schemes (L1D_CC, L1D_TRTRT, 2D_RTRT, 3D_TRTRTR,
// REAL_PRE, REAL_POST) need no generated source of their own.
func (p *Plan) generateKernels() error {
	inverse := p.desc.Direction == DirectionInverse

	var walk func(idx int, realPre, realPost bool) error
	walk = func(idx int, realPre, realPost bool) error {
		node := p.tree.Node(idx)

		switch node.Scheme {
		case plantree.SchemeRealPre:
			return walk(node.Children[0], true, realPost)
		case plantree.SchemeRealPost:
			return walk(node.Children[0], realPre, true)
		case plantree.SchemeL1DCC:
			// The row node was retagged BLOCK_COMPUTE_C2C and the column
			// node left STOCKHAM_1D by plantree.buildL1DCC; generate both,
			// then attach the large twiddle table (spec.md §4.5) to the
			// row node using both children's lengths, which only this
			// parent node has in scope.
			row, col := node.Children[0], node.Children[1]
			if err := walk(row, realPre, realPost); err != nil {
				return err
			}

			if err := walk(col, false, false); err != nil {
				return err
			}

			if p.tree.Node(row).IsLeaf() && p.tree.Node(col).IsLeaf() {
				p.tables[row] = p.buildLargeTable(p.tree.Node(row).Length, p.tree.Node(col).Length, inverse)
			}

			return nil
		case plantree.SchemeStockham1D, plantree.SchemeBlockComputeC2C:
			return p.generateLeaf(idx, node, inverse, realPre, realPost)
		case plantree.Scheme2DSingle:
			return p.generate2DSingle(idx, node, inverse)
		}

		for _, child := range node.Children {
			if err := walk(child, false, false); err != nil {
				return err
			}
		}

		return nil
	}

	return walk(p.tree.Root, false, false)
}

func (p *Plan) generateLeaf(idx int, node plantree.Node, inverse, realPre, realPost bool) error {
	blockCompute := node.Scheme == plantree.SchemeBlockComputeC2C

	tiling := kernelspec.TilingRow
	if blockCompute {
		tiling = kernelspec.TilingColumnSBCC
	}

	spec, err := kernelspec.Derive(kernelspec.Options{
		Length:        node.Length,
		ElementBytes:  elementBytes(p.desc.Precision),
		Tiling:        tiling,
		BlockCompute:  blockCompute,
		LargeTwiddle:  blockCompute,
		DirectionSign: directionSign(inverse),
		Scale:         1.0,
	})
	if err != nil {
		return newError(ErrKindUnsupportedLength, "kernel spec derivation failed", err)
	}

	opt := kernelgen.GlobalOptions{
		Spec:         spec,
		Inverse:      inverse,
		Rank:         p.desc.Rank,
		BlockCompute: blockCompute,
		RealPre:      realPre,
		RealPost:     realPost,
	}

	kernel := kernelgen.Generate(opt)
	if err := p.resolveCache(&kernel); err != nil {
		return err
	}

	p.kernels[idx] = kernel
	p.tables[idx] = p.buildPassTable(spec.FactorSequence, inverse)

	return nil
}

func (p *Plan) generate2DSingle(idx int, node plantree.Node, inverse bool) error {
	// Scheme2DSingle is only reachable when both axes individually
	// factorize over the small-radix set (build2D already checked
	// this); the plan tree does not carry the axis split on the node
	// itself, so it is re-derived from the descriptor's own lengths.
	len0, len1 := p.desc.Length[0], p.desc.Length[1]

	rowSpec, err := kernelspec.Derive(kernelspec.Options{
		Length: len0, ElementBytes: elementBytes(p.desc.Precision),
		Tiling: kernelspec.Tiling2DSingle, PairedLength: len1,
		DirectionSign: directionSign(inverse), Scale: 1.0,
	})
	if err != nil {
		return newError(ErrKindUnsupportedLength, "2D row spec derivation failed", err)
	}

	colSpec, err := kernelspec.Derive(kernelspec.Options{
		Length: len1, ElementBytes: elementBytes(p.desc.Precision),
		Tiling: kernelspec.Tiling2DSingle, PairedLength: len0,
		DirectionSign: directionSign(inverse), Scale: 1.0,
	})
	if err != nil {
		return newError(ErrKindUnsupportedLength, "2D column spec derivation failed", err)
	}

	kernel := kernelgen.Generate2DSingle(rowSpec, colSpec, inverse)
	if err := p.resolveCache(&kernel); err != nil {
		return err
	}

	p.kernels[idx] = kernel
	p.tables[idx] = p.buildPassTable(rowSpec.FactorSequence, inverse)

	return nil
}

func directionSign(inverse bool) int {
	if inverse {
		return 1
	}

	return -1
}

// buildPassTable constructs the per-pass twiddle table in this plan's
// precision, per spec.md §4.5.
func (p *Plan) buildPassTable(factors []int, inverse bool) any {
	if p.desc.Precision == PrecisionDouble {
		return twiddle.BuildPassTable[complex128](factors, inverse)
	}

	return twiddle.BuildPassTable[complex64](factors, inverse)
}

// buildLargeTable constructs the block-compute outer twiddle table in
// this plan's precision.
func (p *Plan) buildLargeTable(l1, l2 int, inverse bool) any {
	if p.desc.Precision == PrecisionDouble {
		return twiddle.BuildLargeTable[complex128](l1, l2, inverse)
	}

	return twiddle.BuildLargeTable[complex64](l1, l2, inverse)
}

// resolveCache looks the kernel up by its four-part identity
// (name, arch, toolchain_version, generator_hash) and, on a miss,
// populates the cache with the freshly generated source so the next
// plan with an identical identity hits (spec.md §4.6, §8 scenario 6).
func (p *Plan) resolveCache(kernel *kernelgen.Kernel) error {
	if p.cache == nil {
		return nil
	}

	key := rtccache.Key{
		Name:             kernel.Name,
		Arch:             runtime.GOARCH,
		ToolchainVersion: toolchainVersion,
		GeneratorHash:    fmt.Sprintf("%x", kernel.GeneratorHash),
	}

	if entry, ok := p.cache.Get(key); ok {
		kernel.Source = string(entry.Code)

		return nil
	}

	p.cache.Put(key, rtccache.Entry{Code: []byte(kernel.Source), Timestamp: time.Now().UnixNano()})

	if p.cache.Disabled() {
		p.recordDiagnostic("RTC cache disabled; compiling without persistence")
	}

	return nil
}

// ScratchBytes reports the scratch arena size this plan's schedule
// needs, per spec.md §6's plan_scratch_bytes.
func (p *Plan) ScratchBytes() int64 {
	return p.scratchBytes
}

// Schedule returns the compiled, in-order execution schedule (C7).
func (p *Plan) Schedule() []LaunchRecord {
	return p.schedule
}

// kernelSourceAt returns the generated kernel source for the node a
// given schedule index corresponds to, and whether one was generated
// (TRANSPOSE records have none).
func (p *Plan) kernelSourceAt(nodeIdx int) (string, bool) {
	k, ok := p.kernels[nodeIdx]
	if !ok {
		return "", false
	}

	return k.Source, true
}

// Execute drives launcher through this plan's compiled schedule in
// order on stream, per spec.md §6's plan_execute. This package never
// allocates device memory or owns a stream itself (spec.md §1); it
// only emits the ordered calls a real accelerator driver must issue.
func (p *Plan) Execute(launcher KernelLauncher, stream gpu.Stream) error {
	if launcher == nil {
		return newError(ErrKindInvalidConfig, "launcher must not be nil", nil)
	}

	nodeIdx := p.launchableNodeIndices()

	for i, record := range p.schedule {
		var source string
		if i < len(nodeIdx) {
			source, _ = p.kernelSourceAt(nodeIdx[i])
		}

		if err := launcher.Launch(stream, record, source); err != nil {
			e := newError(ErrKindDeviceFailure, fmt.Sprintf("launch %d (%s) failed", i, record.KernelID), err)
			p.recordDiagnostic(e.Error())

			return e
		}
	}

	return nil
}

// launchableNodeIndices re-walks the tree in the same order
// BuildSchedule uses, collecting the node index behind each launch
// record so kernel sources can be matched back to schedule entries
// without threading that mapping through LaunchRecord itself.
func (p *Plan) launchableNodeIndices() []int {
	var out []int

	var visit func(idx int)
	visit = func(idx int) {
		node := p.tree.Node(idx)

		for _, child := range node.Children {
			visit(child)
		}

		if !node.IsLeaf() && node.Scheme != plantree.SchemeTranspose {
			return
		}

		out = append(out, idx)
	}

	visit(p.tree.Root)

	return out
}

// Destroy releases this plan's resources. The plan tree is arena-owned
// so there is nothing to explicitly free beyond letting the garbage
// collector reclaim it; Destroy exists to mirror spec.md §6's
// plan_destroy and to give callers a single place to drop their last
// reference.
func (p *Plan) Destroy() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.tree = nil
	p.kernels = nil
	p.tables = nil
	p.schedule = nil
}

// LastDiagnostic returns the most recent diagnostic string recorded for
// this plan. spec.md §7 describes a thread-local diagnostic; this
// module instead records it per-Plan under a mutex; see DESIGN.md for
// why a real thread-local was not introduced.
func (p *Plan) LastDiagnostic() string {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.lastDiag
}

func (p *Plan) recordDiagnostic(s string) {
	p.mu.Lock()
	p.lastDiag = s
	p.mu.Unlock()
}
