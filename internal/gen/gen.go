package gen

import (
	"fmt"
	"strings"

	"github.com/codeshift/codeshift/internal/ast"
)

// Generator renders a whole program into target-language text.
type Generator interface {
	Render(p *ast.Program) string
}

// RenderContext carries the formatting state for one rendering call. It
// is an immutable value: Push returns a deeper copy instead of mutating,
// which keeps generators free of instance state.
type RenderContext struct {
	Depth  int
	Indent string
}

// Push returns a context one nesting level deeper.
func (c RenderContext) Push() RenderContext {
	c.Depth++
	return c
}

// Prefix returns the indentation for the current depth.
func (c RenderContext) Prefix() string {
	return strings.Repeat(c.Indent, c.Depth)
}

// renderGeneric is the fallback rendering for anything outside a
// generator's dispatch table: a structural dump of the node's fields.
// The pipeline always produces some output, never a panic.
func renderGeneric(n ast.Node) string {
	if n == nil {
		return ""
	}
	return fmt.Sprintf("%+v", n)
}

// escapeString re-escapes literal content for the brace-family targets.
// The backslash rule comes first; Replacer applies all rules in a single
// pass so already-escaped sequences do not collapse.
var stringEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`, "\t", `\t`)

func escapeString(s string) string {
	return stringEscaper.Replace(s)
}

// loopClauses re-expands a canonical half-open triple into the condition
// and step fragments of an init;cond;step loop header. A negative step
// flips the comparison so the expanded loop walks the same ordered
// iterator sequence the descriptor encodes.
func loopClauses(it string, r *ast.Range) (cond, step string) {
	if mag, neg := strings.CutPrefix(r.Step, "-"); neg {
		cond = it + " > " + r.End
		if mag == "1" {
			step = it + "--"
		} else {
			step = it + " -= " + mag
		}
		return cond, step
	}
	cond = it + " < " + r.End
	if r.Step == "1" {
		step = it + "++"
	} else {
		step = it + " += " + r.Step
	}
	return cond, step
}

// flattenAdd splits a left-nested addition chain into its ordered
// operands. Non-addition expressions yield a single element.
func flattenAdd(e ast.Expr) []ast.Expr {
	if m, ok := e.(*ast.MathOp); ok && m.Op == "+" {
		return append(flattenAdd(m.Left), flattenAdd(m.Right)...)
	}
	return []ast.Expr{e}
}
