package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/codeshift/codeshift/internal/ast"
)

func TestJava_LooseStatementsMoveIntoMain(t *testing.T) {
	prog := &ast.Program{Statements: []ast.Stmt{
		&ast.Assignment{Target: &ast.Variable{Name: "x"}, Value: &ast.NumberLiteral{Text: "5"}},
		&ast.Print{Expr: &ast.Variable{Name: "x"}},
	}}

	want := "public class ConvertedCode {\n" +
		"    public static void main(String[] args) {\n" +
		"        int x = 5;\n" +
		"        System.out.println(x);\n" +
		"    }\n" +
		"}"
	assert.Equal(t, want, Java{}.Render(prog))
}

func TestJava_MethodsPrecedeMain(t *testing.T) {
	prog := &ast.Program{Statements: []ast.Stmt{
		&ast.Print{Expr: &ast.StringLiteral{Value: "start"}},
		&ast.Function{Name: "greet", Params: []string{"name"}, Body: []ast.Stmt{
			&ast.Print{Expr: &ast.Variable{Name: "name"}},
		}},
		&ast.Call{Name: "greet", Args: []ast.Expr{&ast.StringLiteral{Value: "Bob"}}},
	}}

	want := "public class ConvertedCode {\n" +
		"    public static void greet(String name) {\n" +
		"        System.out.println(name);\n" +
		"    }\n" +
		"\n" +
		"    public static void main(String[] args) {\n" +
		"        System.out.println(\"start\");\n" +
		"        greet(\"Bob\");\n" +
		"    }\n" +
		"}"
	assert.Equal(t, want, Java{}.Render(prog))
}

func TestJava_MethodsOnlyProgramHasNoMain(t *testing.T) {
	prog := &ast.Program{Statements: []ast.Stmt{
		&ast.Function{Name: "noop"},
	}}

	want := "public class ConvertedCode {\n" +
		"    public static void noop() {\n" +
		"    }\n" +
		"}"
	assert.Equal(t, want, Java{}.Render(prog))
}

func TestJava_EmptyProgram(t *testing.T) {
	assert.Equal(t, "public class ConvertedCode {\n\n}", Java{}.Render(&ast.Program{}))
}

func TestJava_ForHeaders(t *testing.T) {
	tests := []struct {
		name string
		loop *ast.ForLoop
		want string
	}{
		{
			"ascending range",
			&ast.ForLoop{Iterator: "i", Range: &ast.Range{Start: "0", End: "6", Step: "1"}},
			"for (int i = 0; i < 6; i++) {",
		},
		{
			"descending range flips the comparison",
			&ast.ForLoop{Iterator: "i", Range: &ast.Range{Start: "10", End: "0", Step: "-1"}},
			"for (int i = 10; i > 0; i--) {",
		},
		{
			"stepped range",
			&ast.ForLoop{Iterator: "i", Range: &ast.Range{Start: "0", End: "20", Step: "2"}},
			"for (int i = 0; i < 20; i += 2) {",
		},
		{
			"generic iterable",
			&ast.ForLoop{Iterator: "item", Iterable: &ast.Variable{Name: "items"}},
			"for (String item : items) {",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Java{}.forHeader(tc.loop))
		})
	}
}

func TestJava_ExprForms(t *testing.T) {
	g := Java{}

	power := &ast.Power{Base: &ast.NumberLiteral{Text: "2"}, Exponent: &ast.Variable{Name: "k"}}
	assert.Equal(t, "Math.pow(2, k)", g.expr(power))

	lit := &ast.StringLiteral{Value: "He said \"hi\"\n"}
	assert.Equal(t, `"He said \"hi\"\n"`, g.expr(lit))

	cmp := &ast.Comparison{Op: "<=", Left: &ast.Variable{Name: "a"}, Right: &ast.NumberLiteral{Text: "3"}}
	assert.Equal(t, "a <= 3", g.expr(cmp))
}
