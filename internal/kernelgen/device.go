package kernelgen

import (
	"fmt"

	"github.com/LxyIsMyself/Copy-rocFFT/internal/kernelspec"
)

// GenerateDeviceFunction emits the per-transform device function for
// spec's leaf, per spec.md §4.4(a): one pass per factor, each doing
// LDS load, twiddle multiply (skipped on pass 0), butterfly, optional
// large-twiddle multiply on the final pass, and LDS store.
func GenerateDeviceFunction(spec kernelspec.Spec, inverse bool) Function {
	name := fmt.Sprintf("forward_length%d_%s_device", spec.Length, spec.Tiling)
	if inverse {
		name = fmt.Sprintf("inverse_length%d_%s_device", spec.Length, spec.Tiling)
	}

	var body []Stmt

	height := 1

	for p, width := range spec.FactorSequence {
		body = append(body, Comment{Text: fmt.Sprintf("pass %d: width=%d height=%d", p, width, height)})
		body = append(body, loadFromLDS(spec, width, height, p, spec.HalfLDS)...)

		if p > 0 {
			body = append(body, applyTwiddle(width, height, p)...)
		}

		regs := make([]Expr, width)
		for w := range width {
			regs[w] = IndexExpr{Ident{"R"}, Lit{fmt.Sprintf("%d", w)}}
		}

		body = append(body, Butterfly{Width: width, Registers: regs, Inverse: inverse})

		isFinalPass := p == len(spec.FactorSequence)-1
		if isFinalPass && spec.LargeTwiddle {
			body = append(body, applyLargeTwiddle()...)
		}

		body = append(body, storeToLDS(width, height, p, spec.HalfLDS)...)

		height *= width
	}

	return Function{
		Name:   name,
		Global: false,
		Params: []Param{
			{Type: "scalar_type*", Name: "R"},
			{Type: "scalar_type*", Name: "lds_real"},
			{Type: "scalar_type*", Name: "lds_complex"},
			{Type: "const scalar_type*", Name: "twiddles"},
			{Type: "size_t", Name: "stride_lds"},
			{Type: "size_t", Name: "offset_lds"},
			{Type: "bool", Name: "write"},
		},
		Body: body,
	}
}

func ldsIndex(width, height, pass int) Expr {
	// thread_within_transform + h*threads_per_transform + w*(length/W_p)
	return BinExpr{
		Op:   "+",
		Left: Ident{"thread_within_transform"},
		Right: BinExpr{
			Op:   "+",
			Left: BinExpr{Op: "*", Left: Ident{"h"}, Right: Ident{"threads_per_transform"}},
			Right: BinExpr{Op: "*", Left: Ident{"w"}, Right: Lit{fmt.Sprintf("(length / %d)", width)}},
		},
	}
}

func loadFromLDS(spec kernelspec.Spec, width, height, pass int, halfLDS bool) []Stmt {
	load := ExprStmt{X: CallExpr{Func: "load_lds_registers", Args: []Expr{
		Ident{"R"}, Ident{"lds_complex"}, ldsIndex(width, height, pass),
	}}}

	if !halfLDS {
		return []Stmt{load}
	}

	return []Stmt{
		ExprStmt{X: CallExpr{Func: "load_lds_registers_x", Args: []Expr{Ident{"R"}, Ident{"lds_real"}, ldsIndex(width, height, pass)}}},
		SyncThreads{},
		ExprStmt{X: CallExpr{Func: "load_lds_registers_y", Args: []Expr{Ident{"R"}, Ident{"lds_real"}, ldsIndex(width, height, pass)}}},
		SyncThreads{},
	}
}

func applyTwiddle(width, height, pass int) []Stmt {
	// R[h*W+w] *= twiddles[H-1 + (w-1) + (W-1)*(t mod H)]
	idx := BinExpr{
		Op:   "+",
		Left: Lit{fmt.Sprintf("%d", height-1)},
		Right: BinExpr{
			Op:   "+",
			Left: BinExpr{Op: "-", Left: Ident{"w"}, Right: Lit{"1"}},
			Right: BinExpr{
				Op:   "*",
				Left: Lit{fmt.Sprintf("%d", width-1)},
				Right: BinExpr{Op: "%", Left: Ident{"t"}, Right: Lit{fmt.Sprintf("%d", height)}},
			},
		},
	}

	return []Stmt{
		Comment{Text: "twiddle multiply"},
		ExprStmt{X: CallExpr{Func: "twiddle_multiply_inplace", Args: []Expr{
			IndexExpr{Ident{"R"}, Ident{"w"}}, IndexExpr{Ident{"twiddles"}, idx},
		}}},
	}
}

func applyLargeTwiddle() []Stmt {
	return []Stmt{
		Comment{Text: "large twiddle multiply (final pass)"},
		ExprStmt{X: CallExpr{Func: "large_twiddle_multiply_inplace", Args: []Expr{
			Ident{"R"}, IndexExpr{Ident{"large_twiddles"}, Ident{"outer_coord"}},
		}}},
	}
}

func storeToLDS(width, height, pass int, halfLDS bool) []Stmt {
	// (t / H)*(W*H) + (t mod H) + w*H
	storeIdx := BinExpr{
		Op: "+",
		Left: BinExpr{
			Op:   "*",
			Left: BinExpr{Op: "/", Left: Ident{"t"}, Right: Lit{fmt.Sprintf("%d", height)}},
			Right: Lit{fmt.Sprintf("%d", width*height)},
		},
		Right: BinExpr{
			Op:   "+",
			Left: BinExpr{Op: "%", Left: Ident{"t"}, Right: Lit{fmt.Sprintf("%d", height)}},
			Right: BinExpr{Op: "*", Left: Ident{"w"}, Right: Lit{fmt.Sprintf("%d", height)}},
		},
	}

	store := ExprStmt{X: CallExpr{Func: "store_lds_registers", Args: []Expr{Ident{"lds_complex"}, storeIdx, Ident{"R"}}}}

	if !halfLDS {
		return []Stmt{store}
	}

	return []Stmt{
		ExprStmt{X: CallExpr{Func: "store_lds_registers_x", Args: []Expr{Ident{"lds_real"}, storeIdx, Ident{"R"}}}},
		SyncThreads{},
		ExprStmt{X: CallExpr{Func: "store_lds_registers_y", Args: []Expr{Ident{"lds_real"}, storeIdx, Ident{"R"}}}},
		SyncThreads{},
	}
}
