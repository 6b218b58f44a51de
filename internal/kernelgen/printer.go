package kernelgen

import (
	"fmt"
	"strings"
)

// Printer formats a Function AST as HIP/CUDA-flavored C++ source text.
// It is the single place that knows how any node renders, so
// correctness arguments about generated source stay local to this
// file (spec.md §9).
type Printer struct {
	buf    strings.Builder
	indent int
}

// Print renders fn as a complete function definition.
func Print(fn Function) string {
	p := &Printer{}
	p.printFunction(fn)

	return p.buf.String()
}

func (p *Printer) line(format string, args ...any) {
	p.buf.WriteString(strings.Repeat("    ", p.indent))
	fmt.Fprintf(&p.buf, format, args...)
	p.buf.WriteByte('\n')
}

func (p *Printer) printFunction(fn Function) {
	qualifier := "__device__ void"
	if fn.Global {
		qualifier = "__global__ void"
	}

	params := make([]string, len(fn.Params))
	for i, param := range fn.Params {
		params[i] = param.Type + " " + param.Name
	}

	p.line("%s %s(%s)", qualifier, fn.Name, strings.Join(params, ", "))
	p.line("{")
	p.indent++
	p.printStmts(fn.Body)
	p.indent--
	p.line("}")
}

func (p *Printer) printStmts(stmts []Stmt) {
	for _, s := range stmts {
		p.printStmt(s)
	}
}

func (p *Printer) printStmt(s Stmt) {
	switch v := s.(type) {
	case Decl:
		if v.Init != nil {
			p.line("%s %s = %s;", v.Type, v.Name, p.expr(v.Init))
		} else {
			p.line("%s %s;", v.Type, v.Name)
		}
	case Assign:
		op := "="
		if v.Op != "" {
			op = v.Op + "="
		}

		p.line("%s %s %s;", p.expr(v.Target), op, p.expr(v.Value))
	case If:
		p.line("if (%s)", p.expr(v.Cond))
		p.line("{")
		p.indent++
		p.printStmts(v.Then)
		p.indent--

		if len(v.Else) > 0 {
			p.line("}")
			p.line("else")
			p.line("{")
			p.indent++
			p.printStmts(v.Else)
			p.indent--
		}

		p.line("}")
	case For:
		p.line("for (%s; %s; %s)", p.forInit(v.Init), p.expr(v.Cond), p.forPost(v.Post))
		p.line("{")
		p.indent++
		p.printStmts(v.Body)
		p.indent--
		p.line("}")
	case ExprStmt:
		p.line("%s;", p.expr(v.X))
	case SyncThreads:
		p.line("__syncthreads();")
	case LoadGlobal:
		fn := "LOAD_GLOBAL"
		if v.Callback {
			fn = "load_cb"
		}

		p.line("%s = %s(%s);", p.expr(v.Dst), fn, p.expr(v.Src))
	case StoreGlobal:
		fn := "STORE_GLOBAL"
		if v.Callback {
			fn = "store_cb"
		}

		p.line("%s(%s, %s);", fn, p.expr(v.Dst), p.expr(v.Value))
	case Butterfly:
		p.printButterfly(v)
	case Comment:
		p.line("// %s", v.Text)
	case Return:
		if v.Value != nil {
			p.line("return %s;", p.expr(v.Value))
		} else {
			p.line("return;")
		}
	default:
		p.line("/* unknown statement */")
	}
}

func (p *Printer) forInit(s Stmt) string {
	d, ok := s.(Decl)
	if !ok {
		return ""
	}

	if d.Init != nil {
		return fmt.Sprintf("%s %s = %s", d.Type, d.Name, p.expr(d.Init))
	}

	return fmt.Sprintf("%s %s", d.Type, d.Name)
}

func (p *Printer) forPost(s Stmt) string {
	a, ok := s.(Assign)
	if !ok {
		return ""
	}

	op := "="
	if a.Op != "" {
		op = a.Op + "="
	}

	return fmt.Sprintf("%s %s %s", p.expr(a.Target), op, p.expr(a.Value))
}

// printButterfly emits a fixed-radix butterfly on Width consecutive
// registers as a radix comment line followed by a call to a
// butterfly_radix<Width> device function. The body of that function is
// not generated by this package; only the offset/pass structure around
// the call is.
func (p *Printer) printButterfly(b Butterfly) {
	sign := "-"
	if b.Inverse {
		sign = "+"
	}

	p.line("// radix-%d butterfly (%s twiddle sign)", b.Width, sign)
	p.line("butterfly_radix%d(%s);", b.Width, joinExprs(p, b.Registers))
}

func (p *Printer) expr(e Expr) string {
	switch v := e.(type) {
	case Ident:
		return v.Name
	case Lit:
		return v.Text
	case BinExpr:
		return fmt.Sprintf("(%s %s %s)", p.expr(v.Left), v.Op, p.expr(v.Right))
	case IndexExpr:
		return fmt.Sprintf("%s[%s]", p.expr(v.Base), p.expr(v.Index))
	case CallExpr:
		return fmt.Sprintf("%s(%s)", v.Func, joinExprs(p, v.Args))
	default:
		return "/* unknown expr */"
	}
}

func joinExprs(p *Printer, exprs []Expr) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = p.expr(e)
	}

	return strings.Join(parts, ", ")
}
