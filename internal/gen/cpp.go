package gen

import (
	"strings"

	"github.com/codeshift/codeshift/internal/ast"
)

// CPP renders the IR as C-style source. Print statements re-expand
// addition chains into chained stream output, mirroring how the C-style
// front end folds them on the way in.
type CPP struct{}

func (g CPP) Render(p *ast.Program) string {
	ctx := RenderContext{Indent: "    "}
	lines := make([]string, 0, len(p.Statements))
	for _, s := range p.Statements {
		lines = append(lines, g.stmt(s, ctx))
	}
	return strings.Join(lines, "\n")
}

func (g CPP) stmt(s ast.Stmt, ctx RenderContext) string {
	switch n := s.(type) {
	case *ast.Assignment:
		return ctx.Prefix() + "int " + n.Target.Name + " = " + g.expr(n.Value) + ";"
	case *ast.Print:
		parts := flattenAdd(n.Expr)
		segs := make([]string, len(parts))
		for i, part := range parts {
			segs[i] = g.expr(part)
		}
		return ctx.Prefix() + "cout << " + strings.Join(segs, " << ") + " << endl;"
	case *ast.Call:
		return ctx.Prefix() + g.call(n) + ";"
	case *ast.Function:
		params := make([]string, len(n.Params))
		for i, p := range n.Params {
			params[i] = "int " + p
		}
		header := ctx.Prefix() + "void " + n.Name + "(" + strings.Join(params, ", ") + ") {"
		return g.block(header, n.Body, ctx)
	case *ast.ForLoop:
		return g.block(ctx.Prefix()+g.forHeader(n), n.Body, ctx)
	case *ast.WhileLoop:
		header := ctx.Prefix() + "while (" + g.expr(n.Cond) + ") {"
		return g.block(header, n.Body, ctx)
	default:
		return ctx.Prefix() + renderGeneric(s)
	}
}

func (g CPP) forHeader(n *ast.ForLoop) string {
	if n.Range == nil {
		return "for (auto " + n.Iterator + " : " + g.expr(n.Iterable) + ") {"
	}
	cond, step := loopClauses(n.Iterator, n.Range)
	return "for (int " + n.Iterator + " = " + n.Range.Start + "; " + cond + "; " + step + ") {"
}

func (g CPP) block(header string, body []ast.Stmt, ctx RenderContext) string {
	if len(body) == 0 {
		return header + "\n" + ctx.Prefix() + "}"
	}
	inner := ctx.Push()
	lines := make([]string, 0, len(body))
	for _, s := range body {
		lines = append(lines, g.stmt(s, inner))
	}
	return header + "\n" + strings.Join(lines, "\n") + "\n" + ctx.Prefix() + "}"
}

func (g CPP) expr(e ast.Expr) string {
	switch n := e.(type) {
	case *ast.MathOp:
		return g.expr(n.Left) + " " + n.Op + " " + g.expr(n.Right)
	case *ast.Comparison:
		return g.expr(n.Left) + " " + n.Op + " " + g.expr(n.Right)
	case *ast.Power:
		return "pow(" + g.expr(n.Base) + ", " + g.expr(n.Exponent) + ")"
	case *ast.Variable:
		return n.Name
	case *ast.StringLiteral:
		return `"` + escapeString(n.Value) + `"`
	case *ast.NumberLiteral:
		return n.Text
	case *ast.Call:
		return g.call(n)
	default:
		return renderGeneric(e)
	}
}

func (g CPP) call(n *ast.Call) string {
	args := make([]string, len(n.Args))
	for i, a := range n.Args {
		args[i] = g.expr(a)
	}
	return n.Name + "(" + strings.Join(args, ", ") + ")"
}
