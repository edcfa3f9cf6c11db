package gen

import (
	"strings"

	"github.com/codeshift/codeshift/internal/ast"
)

// JavaScript renders the IR as brace-style script source. It is a
// target-only language: no parser reads JavaScript back into the IR.
type JavaScript struct{}

func (g JavaScript) Render(p *ast.Program) string {
	ctx := RenderContext{Indent: "    "}
	lines := make([]string, 0, len(p.Statements))
	for _, s := range p.Statements {
		lines = append(lines, g.stmt(s, ctx))
	}
	return strings.Join(lines, "\n")
}

func (g JavaScript) stmt(s ast.Stmt, ctx RenderContext) string {
	switch n := s.(type) {
	case *ast.Assignment:
		return ctx.Prefix() + "let " + n.Target.Name + " = " + g.expr(n.Value) + ";"
	case *ast.Print:
		return ctx.Prefix() + "console.log(" + g.expr(n.Expr) + ");"
	case *ast.Call:
		return ctx.Prefix() + g.call(n) + ";"
	case *ast.Function:
		header := ctx.Prefix() + "function " + n.Name + "(" + strings.Join(n.Params, ", ") + ") {"
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

func (g JavaScript) forHeader(n *ast.ForLoop) string {
	if n.Range == nil {
		return "for (const " + n.Iterator + " of " + g.expr(n.Iterable) + ") {"
	}
	cond, step := loopClauses(n.Iterator, n.Range)
	return "for (let " + n.Iterator + " = " + n.Range.Start + "; " + cond + "; " + step + ") {"
}

func (g JavaScript) block(header string, body []ast.Stmt, ctx RenderContext) string {
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

func (g JavaScript) expr(e ast.Expr) string {
	switch n := e.(type) {
	case *ast.MathOp:
		return g.expr(n.Left) + " " + n.Op + " " + g.expr(n.Right)
	case *ast.Comparison:
		return g.expr(n.Left) + " " + n.Op + " " + g.expr(n.Right)
	case *ast.Power:
		return "Math.pow(" + g.expr(n.Base) + ", " + g.expr(n.Exponent) + ")"
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

func (g JavaScript) call(n *ast.Call) string {
	args := make([]string, len(n.Args))
	for i, a := range n.Args {
		args[i] = g.expr(a)
	}
	return n.Name + "(" + strings.Join(args, ", ") + ")"
}
