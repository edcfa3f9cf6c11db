package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeshift/codeshift/internal/ast"
)

func parsePython(t *testing.T, src string) *ast.Program {
	t.Helper()
	prog, err := NewPython(Options{}).Parse(src)
	require.NoError(t, err)
	return prog
}

func TestPython_AssignmentAndPrint(t *testing.T) {
	prog := parsePython(t, "x = 5\nprint(x)")

	require.Len(t, prog.Statements, 2)

	assign, ok := prog.Statements[0].(*ast.Assignment)
	require.True(t, ok)
	assert.Equal(t, "x", assign.Target.Name)
	assert.Equal(t, &ast.NumberLiteral{Text: "5"}, assign.Value)

	pr, ok := prog.Statements[1].(*ast.Print)
	require.True(t, ok)
	assert.Equal(t, &ast.Variable{Name: "x"}, pr.Expr)
}

func TestPython_EmptyInput(t *testing.T) {
	for _, src := range []string{"", "   ", "\n\n\n", "  \n\t\n"} {
		prog := parsePython(t, src)
		assert.Empty(t, prog.Statements)
	}
}

func TestPython_CommentsSkipped(t *testing.T) {
	prog := parsePython(t, "# leading comment\nx = 1\n# trailing comment")
	require.Len(t, prog.Statements, 1)
}

func TestPython_StringConcat(t *testing.T) {
	prog := parsePython(t, `print("hi " + name)`)

	require.Len(t, prog.Statements, 1)
	pr := prog.Statements[0].(*ast.Print)
	math, ok := pr.Expr.(*ast.MathOp)
	require.True(t, ok)
	assert.Equal(t, "+", math.Op)
	assert.Equal(t, &ast.StringLiteral{Value: "hi "}, math.Left)
	assert.Equal(t, &ast.Variable{Name: "name"}, math.Right)
}

func TestPython_PlusInsideStringNotSplit(t *testing.T) {
	prog := parsePython(t, `print("a + b")`)

	pr := prog.Statements[0].(*ast.Print)
	assert.Equal(t, &ast.StringLiteral{Value: "a + b"}, pr.Expr)
}

func TestPython_SingleQuotedString(t *testing.T) {
	prog := parsePython(t, "msg = 'hello'")

	assign := prog.Statements[0].(*ast.Assignment)
	assert.Equal(t, &ast.StringLiteral{Value: "hello"}, assign.Value)
}

func TestPython_PowerCall(t *testing.T) {
	prog := parsePython(t, "y = pow(2, 10)")

	assign := prog.Statements[0].(*ast.Assignment)
	power, ok := assign.Value.(*ast.Power)
	require.True(t, ok)
	assert.Equal(t, &ast.NumberLiteral{Text: "2"}, power.Base)
	assert.Equal(t, &ast.NumberLiteral{Text: "10"}, power.Exponent)
}

func TestPython_ComparisonPriority(t *testing.T) {
	tests := []struct {
		name string
		src  string
		op   string
	}{
		{"equals", "print(a == b)", "=="},
		{"not equals", "print(a != b)", "!="},
		{"less or equal", "print(a <= b)", "<="},
		{"greater or equal", "print(a >= b)", ">="},
		{"less", "print(a < b)", "<"},
		{"greater", "print(a > b)", ">"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			prog := parsePython(t, tc.src)
			pr := prog.Statements[0].(*ast.Print)
			cmp, ok := pr.Expr.(*ast.Comparison)
			require.True(t, ok)
			assert.Equal(t, tc.op, cmp.Op)
		})
	}
}

func TestPython_FunctionBodyEndsAtDedent(t *testing.T) {
	prog := parsePython(t, `
def greet(name):
    print(name)
x = 1
`)

	require.Len(t, prog.Statements, 2)

	fn, ok := prog.Statements[0].(*ast.Function)
	require.True(t, ok)
	assert.Equal(t, "greet", fn.Name)
	assert.Equal(t, []string{"name"}, fn.Params)
	require.Len(t, fn.Body, 1)
	assert.IsType(t, &ast.Print{}, fn.Body[0])

	// The trailing statement must be top-level, not swallowed into the body.
	assert.IsType(t, &ast.Assignment{}, prog.Statements[1])
}

func TestPython_NestedBlocks(t *testing.T) {
	prog := parsePython(t, `
def countdown(n):
    while n > 0:
        print(n)
        n = n - 1
`)

	// "n = n - 1" has no '-' support: the value parses as a raw fallback.
	fn := prog.Statements[0].(*ast.Function)
	require.Len(t, fn.Body, 1)

	loop, ok := fn.Body[0].(*ast.WhileLoop)
	require.True(t, ok)
	require.Len(t, loop.Body, 2)
	assert.IsType(t, &ast.Print{}, loop.Body[0])

	assign := loop.Body[1].(*ast.Assignment)
	assert.Equal(t, &ast.Variable{Name: "n - 1"}, assign.Value)
}

func TestPython_ForRange(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want ast.Range
	}{
		{"one arg", "for i in range(4):\n    print(i)", ast.Range{Start: "0", End: "4", Step: "1"}},
		{"two args", "for i in range(1, 4):\n    print(i)", ast.Range{Start: "1", End: "4", Step: "1"}},
		{"three args", "for i in range(0, 10, 2):\n    print(i)", ast.Range{Start: "0", End: "10", Step: "2"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			prog := parsePython(t, tc.src)
			loop := prog.Statements[0].(*ast.ForLoop)
			assert.Equal(t, "i", loop.Iterator)
			require.NotNil(t, loop.Range)
			assert.Equal(t, tc.want, *loop.Range)
			assert.Nil(t, loop.Iterable)
		})
	}
}

func TestPython_ForGenericIterable(t *testing.T) {
	prog := parsePython(t, "for item in items:\n    print(item)")

	loop := prog.Statements[0].(*ast.ForLoop)
	assert.Nil(t, loop.Range)
	assert.Equal(t, &ast.Variable{Name: "items"}, loop.Iterable)
}

func TestPython_BareCallStatement(t *testing.T) {
	prog := parsePython(t, `greet("Bob", 3)`)

	call, ok := prog.Statements[0].(*ast.Call)
	require.True(t, ok)
	assert.Equal(t, "greet", call.Name)
	require.Len(t, call.Args, 2)
	assert.Equal(t, &ast.StringLiteral{Value: "Bob"}, call.Args[0])
	assert.Equal(t, &ast.NumberLiteral{Text: "3"}, call.Args[1])
}

func TestPython_PrintNotParsedAsCall(t *testing.T) {
	prog := parsePython(t, "print(x)")
	assert.IsType(t, &ast.Print{}, prog.Statements[0])
}

func TestPython_UnrecognizedLinesDropped(t *testing.T) {
	prog := parsePython(t, "x = 1\nimport os\ny = 2")

	require.Len(t, prog.Statements, 2)
	assert.IsType(t, &ast.Assignment{}, prog.Statements[0])
	assert.IsType(t, &ast.Assignment{}, prog.Statements[1])
}

func TestPython_StrictReportsDroppedLines(t *testing.T) {
	p := NewPython(Options{Strict: true})
	prog, err := p.Parse("x = 1\nimport os\ny = 2")

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "python", parseErr.Language)
	require.Len(t, parseErr.Diagnostics, 1)
	assert.Equal(t, 2, parseErr.Diagnostics[0].Line)
	assert.Equal(t, "import os", parseErr.Diagnostics[0].Text)

	// Strict mode never changes the produced tree.
	require.NotNil(t, prog)
	assert.Len(t, prog.Statements, 2)
}

func TestPython_FallbackExpressionBecomesVariable(t *testing.T) {
	prog := parsePython(t, "x = foo(1) * 3")

	assign := prog.Statements[0].(*ast.Assignment)
	assert.Equal(t, &ast.Variable{Name: "foo(1) * 3"}, assign.Value)
}
