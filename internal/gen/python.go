package gen

import (
	"strings"

	"github.com/codeshift/codeshift/internal/ast"
)

// Python renders the IR as indentation-based source. The zero value is
// ready to use.
type Python struct{}

func (g Python) Render(p *ast.Program) string {
	ctx := RenderContext{Indent: "    "}
	lines := make([]string, 0, len(p.Statements))
	for _, s := range p.Statements {
		lines = append(lines, g.stmt(s, ctx))
	}
	return strings.Join(lines, "\n")
}

func (g Python) stmt(s ast.Stmt, ctx RenderContext) string {
	switch n := s.(type) {
	case *ast.Assignment:
		return ctx.Prefix() + n.Target.Name + " = " + g.expr(n.Value)
	case *ast.Print:
		return ctx.Prefix() + "print(" + g.expr(n.Expr) + ")"
	case *ast.Call:
		return ctx.Prefix() + g.call(n)
	case *ast.Function:
		header := ctx.Prefix() + "def " + n.Name + "(" + strings.Join(n.Params, ", ") + "):"
		return header + "\n" + g.body(n.Body, ctx.Push())
	case *ast.ForLoop:
		header := ctx.Prefix() + "for " + n.Iterator + " in " + g.iterable(n) + ":"
		return header + "\n" + g.body(n.Body, ctx.Push())
	case *ast.WhileLoop:
		header := ctx.Prefix() + "while " + g.expr(n.Cond) + ":"
		return header + "\n" + g.body(n.Body, ctx.Push())
	default:
		return ctx.Prefix() + renderGeneric(s)
	}
}

// body renders a block's statements one level deeper. Empty blocks need a
// pass placeholder to stay syntactically valid.
func (g Python) body(body []ast.Stmt, ctx RenderContext) string {
	if len(body) == 0 {
		return ctx.Prefix() + "pass"
	}
	lines := make([]string, 0, len(body))
	for _, s := range body {
		lines = append(lines, g.stmt(s, ctx))
	}
	return strings.Join(lines, "\n")
}

// iterable re-expands a canonical triple into a range(...) call, with the
// step omitted when it is the default. Generic iterables render as-is.
func (g Python) iterable(n *ast.ForLoop) string {
	if n.Range == nil {
		return g.expr(n.Iterable)
	}
	r := n.Range
	if r.Step == "1" {
		return "range(" + r.Start + ", " + r.End + ")"
	}
	return "range(" + r.Start + ", " + r.End + ", " + r.Step + ")"
}

func (g Python) expr(e ast.Expr) string {
	switch n := e.(type) {
	case *ast.MathOp:
		return g.expr(n.Left) + " " + n.Op + " " + g.expr(n.Right)
	case *ast.Comparison:
		return g.expr(n.Left) + " " + n.Op + " " + g.expr(n.Right)
	case *ast.Power:
		return g.expr(n.Base) + " ** " + g.expr(n.Exponent)
	case *ast.Variable:
		return n.Name
	case *ast.StringLiteral:
		// Interior kept verbatim: this front end never unescaped it.
		return `"` + n.Value + `"`
	case *ast.NumberLiteral:
		return n.Text
	case *ast.Call:
		return g.call(n)
	default:
		return renderGeneric(e)
	}
}

func (g Python) call(n *ast.Call) string {
	args := make([]string, len(n.Args))
	for i, a := range n.Args {
		args[i] = g.expr(a)
	}
	return n.Name + "(" + strings.Join(args, ", ") + ")"
}
