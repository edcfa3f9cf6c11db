package gen

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/codeshift/codeshift/internal/ast"
)

// goldenProgram exercises every statement form and most expression forms
// in one tree, so the golden files pin down each generator's full surface.
func goldenProgram() *ast.Program {
	return &ast.Program{Statements: []ast.Stmt{
		&ast.Function{Name: "shout", Params: []string{"msg"}, Body: []ast.Stmt{
			&ast.Print{Expr: &ast.MathOp{
				Op:    "+",
				Left:  &ast.StringLiteral{Value: "!! "},
				Right: &ast.Variable{Name: "msg"},
			}},
		}},
		&ast.Assignment{Target: &ast.Variable{Name: "total"}, Value: &ast.NumberLiteral{Text: "0"}},
		&ast.ForLoop{Iterator: "i", Range: &ast.Range{Start: "0", End: "3", Step: "1"}, Body: []ast.Stmt{
			&ast.Assignment{
				Target: &ast.Variable{Name: "total"},
				Value:  &ast.MathOp{Op: "+", Left: &ast.Variable{Name: "total"}, Right: &ast.Variable{Name: "i"}},
			},
		}},
		&ast.WhileLoop{
			Cond: &ast.Comparison{Op: "<", Left: &ast.Variable{Name: "total"}, Right: &ast.NumberLiteral{Text: "10"}},
			Body: []ast.Stmt{
				&ast.Assignment{
					Target: &ast.Variable{Name: "total"},
					Value:  &ast.Power{Base: &ast.Variable{Name: "total"}, Exponent: &ast.NumberLiteral{Text: "2"}},
				},
			},
		},
		&ast.Print{Expr: &ast.Variable{Name: "total"}},
	}}
}

func TestRenderGolden(t *testing.T) {
	generators := map[string]Generator{
		"python":     Python{},
		"java":       Java{},
		"cpp":        CPP{},
		"javascript": JavaScript{},
	}

	prog := goldenProgram()
	for name, generator := range generators {
		t.Run(name, func(t *testing.T) {
			g := goldie.New(t,
				goldie.WithFixtureDir("testdata/golden"),
				goldie.WithNameSuffix(".golden"),
			)
			g.Assert(t, name, []byte(generator.Render(prog)))
		})
	}
}
