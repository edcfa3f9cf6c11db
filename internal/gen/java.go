package gen

import (
	"strings"

	"github.com/codeshift/codeshift/internal/ast"
)

// Java renders the IR as a single compilable class. Unlike the other
// generators it restructures the whole program: function definitions
// become static methods emitted first in their original relative order,
// and every remaining top-level statement moves into a synthesized main
// method, also in original order. The interleaving between functions and
// loose statements is deliberately lost.
type Java struct{}

func (g Java) Render(p *ast.Program) string {
	classCtx := RenderContext{Indent: "    "}.Push()
	mainCtx := classCtx.Push()

	var methods []string
	var loose []string
	for _, s := range p.Statements {
		if fn, ok := s.(*ast.Function); ok {
			methods = append(methods, g.stmt(fn, classCtx))
		} else {
			loose = append(loose, g.stmt(s, mainCtx))
		}
	}

	var parts []string
	if len(methods) > 0 {
		parts = append(parts, strings.Join(methods, "\n\n"))
	}
	if len(loose) > 0 {
		main := classCtx.Prefix() + "public static void main(String[] args) {\n" +
			strings.Join(loose, "\n") + "\n" +
			classCtx.Prefix() + "}"
		parts = append(parts, main)
	}

	return "public class ConvertedCode {\n" + strings.Join(parts, "\n\n") + "\n}"
}

func (g Java) stmt(s ast.Stmt, ctx RenderContext) string {
	switch n := s.(type) {
	case *ast.Assignment:
		return ctx.Prefix() + "int " + n.Target.Name + " = " + g.expr(n.Value) + ";"
	case *ast.Print:
		return ctx.Prefix() + "System.out.println(" + g.expr(n.Expr) + ");"
	case *ast.Call:
		return ctx.Prefix() + g.call(n) + ";"
	case *ast.Function:
		params := make([]string, len(n.Params))
		for i, p := range n.Params {
			params[i] = "String " + p
		}
		header := ctx.Prefix() + "public static void " + n.Name + "(" + strings.Join(params, ", ") + ") {"
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

func (g Java) forHeader(n *ast.ForLoop) string {
	if n.Range == nil {
		return "for (String " + n.Iterator + " : " + g.expr(n.Iterable) + ") {"
	}
	cond, step := loopClauses(n.Iterator, n.Range)
	return "for (int " + n.Iterator + " = " + n.Range.Start + "; " + cond + "; " + step + ") {"
}

func (g Java) block(header string, body []ast.Stmt, ctx RenderContext) string {
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

func (g Java) expr(e ast.Expr) string {
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

func (g Java) call(n *ast.Call) string {
	args := make([]string, len(n.Args))
	for i, a := range n.Args {
		args[i] = g.expr(a)
	}
	return n.Name + "(" + strings.Join(args, ", ") + ")"
}
