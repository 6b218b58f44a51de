package kernelgen

import "fmt"

// FlatBatchOffset builds the offset computation for spec.md §4.4.1's
// flat-batch mode: peel dimensions from rank down to 2 against a
// precomputed `denom[i]` (product of lengths below axis i, supplied by
// the host as a kernel argument), then fold the remaining counter into
// stride[0].
func FlatBatchOffset(rank int) []Stmt {
	stmts := []Stmt{
		Comment{Text: "flat batch offset (spec.md 4.4.1)"},
		Decl{Type: "size_t", Name: "counter_mod", Init: BinExpr{
			Op:   "+",
			Left: BinExpr{Op: "*", Left: Ident{"batch"}, Right: Ident{"transforms_per_block"}},
			Right: BinExpr{Op: "/", Left: Ident{"thread"}, Right: Ident{"threads_per_transform"}},
		}},
		Decl{Type: "size_t", Name: "offset", Init: Lit{"0"}},
	}

	if rank >= 2 {
		loopVar := Ident{"i"}
		stmts = append(stmts, For{
			Init: Decl{Type: "int", Name: "i", Init: Lit{fmt.Sprintf("%d", rank-1)}},
			Cond: BinExpr{Op: ">=", Left: loopVar, Right: Lit{"1"}},
			Post: Assign{Target: loopVar, Op: "-", Value: Lit{"1"}},
			Body: []Stmt{
				Assign{
					Target: Ident{"offset"}, Op: "+",
					Value: BinExpr{
						Op:   "*",
						Left: BinExpr{Op: "/", Left: Ident{"counter_mod"}, Right: IndexExpr{Ident{"denom"}, loopVar}},
						Right: IndexExpr{Ident{"stride"}, loopVar},
					},
				},
				Assign{Target: Ident{"counter_mod"}, Op: "%", Value: IndexExpr{Ident{"denom"}, loopVar}},
			},
		})
	}

	stmts = append(stmts, Assign{
		Target: Ident{"offset"}, Op: "+",
		Value: BinExpr{Op: "*", Left: Ident{"counter_mod"}, Right: IndexExpr{Ident{"stride"}, Lit{"0"}}},
	})

	return stmts
}

// BlockComputeTileOffset builds the offset computation for spec.md
// §4.4.1's block-compute tile mode: blocks are arranged as
// batch_block_size tiles per batch, and the offset is a simple
// (tile_y, tile_x) product against stride[2] and the tile width.
func BlockComputeTileOffset(blockWidth int) []Stmt {
	return []Stmt{
		Comment{Text: "block-compute tile offset (spec.md 4.4.1)"},
		Decl{Type: "size_t", Name: "batch_block_size", Init: BinExpr{Op: "/", Left: Ident{"grid_dim_x"}, Right: Ident{"true_batch_count"}}},
		Decl{Type: "size_t", Name: "counter_mod", Init: BinExpr{Op: "%", Left: Ident{"batch"}, Right: Ident{"batch_block_size"}}},
		Decl{Type: "size_t", Name: "tile_y", Init: BinExpr{Op: "/", Left: Ident{"counter_mod"}, Right: Lit{"block_width"}}},
		Decl{Type: "size_t", Name: "tile_x", Init: BinExpr{Op: "%", Left: Ident{"counter_mod"}, Right: Lit{"block_width"}}},
		Decl{Type: "size_t", Name: "offset", Init: BinExpr{
			Op:   "+",
			Left: BinExpr{Op: "*", Left: Ident{"tile_y"}, Right: IndexExpr{Ident{"stride"}, Lit{"2"}}},
			Right: BinExpr{
				Op:   "*", Left: Ident{"tile_x"},
				Right: BinExpr{Op: "*", Left: Lit{fmt.Sprintf("%d", blockWidth)}, Right: Ident{"stride_inner"}},
			},
		}},
	}
}
