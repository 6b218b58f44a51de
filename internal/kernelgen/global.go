package kernelgen

import (
	"fmt"

	"github.com/LxyIsMyself/Copy-rocFFT/internal/kernelspec"
)

// GlobalOptions configures GenerateGlobalKernel.
type GlobalOptions struct {
	Spec           kernelspec.Spec
	Inverse        bool
	Rank           int
	BlockCompute   bool
	RealPre        bool // real forward embedded pre-process
	RealPost       bool // real inverse embedded post-process
	Callbacks      bool
}

// GenerateGlobalKernel emits the entry-point kernel per spec.md
// §4.4(b): index computation, offset calculation, bounds check,
// global-to-LDS load (with optional real pre-process), device function
// invocation(s), LDS-to-global store (with optional real post-process),
// and optional user load/store callback wrapping.
func GenerateGlobalKernel(opt GlobalOptions) Function {
	spec := opt.Spec

	name := fmt.Sprintf("forward_length%d_%s", spec.Length, spec.Tiling)
	if opt.Inverse {
		name = fmt.Sprintf("inverse_length%d_%s", spec.Length, spec.Tiling)
	}

	var body []Stmt

	body = append(body,
		Comment{Text: "1. compute batch/transform/thread indices"},
		Decl{Type: "size_t", Name: "thread", Init: CallExpr{Func: "flat_thread_id", Args: nil}},
		Decl{Type: "size_t", Name: "transform", Init: BinExpr{Op: "/", Left: Ident{"thread"}, Right: Ident{"threads_per_transform"}}},
		Decl{Type: "size_t", Name: "batch", Init: CallExpr{Func: "block_batch_index", Args: nil}},
	)

	body = append(body, Comment{Text: "2. offset calculation (4.4.1)"})

	if opt.BlockCompute {
		body = append(body, BlockComputeTileOffset(spec.TransformsPerBlock)...)
	} else {
		body = append(body, FlatBatchOffset(opt.Rank)...)
	}

	body = append(body,
		Comment{Text: "3. bounds check"},
		If{
			Cond: BinExpr{Op: ">=", Left: Ident{"batch"}, Right: Ident{"nbatch"}},
			Then: []Stmt{Return{}},
		},
	)

	body = append(body, Comment{Text: "4. global -> LDS"})
	body = append(body, globalToLDS(opt)...)

	body = append(body, Comment{Text: "5. invoke device function"})
	body = append(body, ExprStmt{X: CallExpr{
		Func: deviceFunctionName(spec, opt.Inverse),
		Args: []Expr{Ident{"R"}, Ident{"lds_real"}, Ident{"lds_complex"}, Ident{"twiddles"}, Ident{"stride_lds"}, Ident{"offset_lds"}, Lit{"true"}},
	}})

	body = append(body, Comment{Text: "6. LDS -> global"})
	body = append(body, ldsToGlobal(opt)...)

	params := []Param{
		{Type: "const scalar_type*", Name: "twiddles"},
		{Type: "size_t", Name: "dim"},
		{Type: "const size_t*", Name: "lengths"},
		{Type: "const size_t*", Name: "stride"},
		{Type: "size_t", Name: "nbatch"},
		{Type: "size_t", Name: "lds_padding"},
	}

	if opt.Callbacks {
		params = append(params, Param{Type: "void*", Name: "load_cb_data"}, Param{Type: "void*", Name: "store_cb_data"})
	}

	params = append(params, Param{Type: "scalar_type*", Name: "buffer"})

	return Function{Name: name, Global: true, Params: params, Body: body}
}

func deviceFunctionName(spec kernelspec.Spec, inverse bool) string {
	if inverse {
		return fmt.Sprintf("inverse_length%d_%s_device", spec.Length, spec.Tiling)
	}

	return fmt.Sprintf("forward_length%d_%s_device", spec.Length, spec.Tiling)
}

func globalToLDS(opt GlobalOptions) []Stmt {
	load := LoadGlobal{Dst: IndexExpr{Ident{"lds_complex"}, Ident{"offset_lds"}}, Src: IndexExpr{Ident{"buffer"}, Ident{"offset"}}, Callback: opt.Callbacks}

	if opt.BlockCompute {
		return []Stmt{
			Comment{Text: "column-major tile load for block-compute"},
			ExprStmt{X: CallExpr{Func: "load_tile_column_major", Args: []Expr{Ident{"lds_complex"}, Ident{"buffer"}, Ident{"offset"}}}},
			SyncThreads{},
		}
	}

	if opt.RealPre {
		return []Stmt{
			load,
			ExprStmt{X: CallExpr{Func: "real_pre_process_kernel_inplace", Args: []Expr{
				Ident{"lds_complex"}, Ident{"k"}, BinExpr{Op: "-", Left: Ident{"halfN"}, Right: Ident{"k"}},
			}}},
			SyncThreads{},
		}
	}

	return []Stmt{load, SyncThreads{}}
}

func ldsToGlobal(opt GlobalOptions) []Stmt {
	store := StoreGlobal{Dst: IndexExpr{Ident{"buffer"}, Ident{"offset"}}, Value: IndexExpr{Ident{"lds_complex"}, Ident{"offset_lds"}}, Callback: opt.Callbacks}

	if opt.RealPost {
		return []Stmt{
			ExprStmt{X: CallExpr{Func: "real_post_process_kernel_inplace", Args: []Expr{
				Ident{"lds_complex"}, Ident{"k"}, BinExpr{Op: "-", Left: Ident{"halfN"}, Right: Ident{"k"}},
			}}},
			store,
		}
	}

	return []Stmt{store}
}

// Generate2DSingleKernel emits the fused two-axis kernel of spec.md
// §4.4.2: a row transform through LDS at unit stride, an optional
// twiddle-pointer advance when the axes differ in length, a barrier,
// then a column transform reading unit-stride LDS and writing to the
// user's output strides with axes 0/1 swapped.
func Generate2DSingleKernel(rowSpec, colSpec kernelspec.Spec, inverse bool) Function {
	name := fmt.Sprintf("forward_length%dx%d_2d_single", rowSpec.Length, colSpec.Length)
	if inverse {
		name = fmt.Sprintf("inverse_length%dx%d_2d_single", rowSpec.Length, colSpec.Length)
	}

	body := []Stmt{
		Comment{Text: "1. row transform: user input strides -> unit-stride LDS"},
		ExprStmt{X: CallExpr{Func: deviceFunctionName(rowSpec, inverse), Args: []Expr{
			Ident{"R"}, Ident{"lds_real"}, Ident{"lds_complex"}, Ident{"twiddles"}, Lit{"1"}, Ident{"offset_lds"}, Lit{"true"},
		}}},
	}

	if rowSpec.Length != colSpec.Length {
		body = append(body, Comment{Text: "2. axes differ in length: advance twiddle pointer past the row table"})
		body = append(body, Assign{
			Target: Ident{"twiddles"}, Op: "+",
			Value: Lit{fmt.Sprintf("%d", passTableSize(rowSpec.FactorSequence))},
		})
	}

	body = append(body,
		Comment{Text: "3. synchronize"},
		SyncThreads{},
		Comment{Text: "4. column transform: unit-stride LDS -> user output strides, axes swapped"},
		ExprStmt{X: CallExpr{Func: deviceFunctionName(colSpec, inverse), Args: []Expr{
			Ident{"R"}, Ident{"lds_real"}, Ident{"lds_complex"}, Ident{"twiddles"}, Lit{"1"}, Ident{"offset_lds_swapped"}, Lit{"true"},
		}}},
	)

	return Function{
		Name:   name,
		Global: true,
		Params: []Param{
			{Type: "const scalar_type*", Name: "twiddles"},
			{Type: "const size_t*", Name: "stride"},
			{Type: "size_t", Name: "nbatch"},
			{Type: "scalar_type*", Name: "buffer"},
		},
		Body: body,
	}
}

// passTableSize returns the number of twiddle entries a pass-table for
// factors occupies, per spec.md §4.5's size formula.
func passTableSize(factors []int) int {
	total := 0

	height := 1
	for _, width := range factors {
		total += (width - 1) * height
		height *= width
	}

	return total
}
