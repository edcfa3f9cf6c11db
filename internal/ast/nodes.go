package ast

// Node is the common interface for every IR node.
//
// This is a sealed interface - only types in this package implement it.
// The marker method pattern prevents external implementations and enables
// exhaustive type switches in generators.
type Node interface {
	node() // Marker method - seals interface to this package
}

// Stmt is a statement-position node: something that can appear in a
// Program or block body.
type Stmt interface {
	Node
	stmt()
}

// Expr is an expression-position node: something that can appear as an
// operand, condition, argument, or assigned value.
type Expr interface {
	Node
	expr()
}

// Program is the tree root: an ordered sequence of top-level statements.
type Program struct {
	Statements []Stmt
}

func (*Program) node() {}

// Function is a function definition with named parameters and a body.
type Function struct {
	Name   string
	Params []string
	Body   []Stmt
}

func (*Function) node() {}
func (*Function) stmt() {}

// Print is an output statement wrapping a single expression.
type Print struct {
	Expr Expr
}

func (*Print) node() {}
func (*Print) stmt() {}

// Assignment binds the value expression to the target variable.
type Assignment struct {
	Target *Variable
	Value  Expr
}

func (*Assignment) node() {}
func (*Assignment) stmt() {}

// ForLoop is a counted or iterable loop.
//
// Exactly one of Range and Iterable is set. Range carries the canonical
// half-open iteration triple derived from a native counted-loop header;
// Iterable carries any other iterable expression. Generators re-expand
// Range into their own native counted-loop syntax and fall back to an
// each-element form for Iterable.
type ForLoop struct {
	Iterator string
	Range    *Range
	Iterable Expr
	Body     []Stmt
}

func (*ForLoop) node() {}
func (*ForLoop) stmt() {}

// Range is the canonical (start, end, step) descriptor for a counted
// loop. All three fields hold verbatim source text; End may be a derived
// expression such as "n + 1". The loop visits Start, Start+Step,
// Start+2*Step, ... while still before End (half-open).
type Range struct {
	Start string
	End   string
	Step  string
}

// WhileLoop repeats its body while the condition expression holds.
type WhileLoop struct {
	Cond Expr
	Body []Stmt
}

func (*WhileLoop) node() {}
func (*WhileLoop) stmt() {}

// Call is a function invocation. In statement position it is a bare call
// line; in expression position it supplies a value.
type Call struct {
	Name string
	Args []Expr
}

func (*Call) node() {}
func (*Call) stmt() {}
func (*Call) expr() {}

// MathOp is a single-level infix arithmetic operation. The only operator
// produced by the parsers is "+".
type MathOp struct {
	Op    string
	Left  Expr
	Right Expr
}

func (*MathOp) node() {}
func (*MathOp) expr() {}

// Comparison is an infix comparison. Op is one of ==, !=, <, <=, >, >=.
type Comparison struct {
	Op    string
	Left  Expr
	Right Expr
}

func (*Comparison) node() {}
func (*Comparison) expr() {}

// Power is an exponentiation call: Base raised to Exponent.
type Power struct {
	Base     Expr
	Exponent Expr
}

func (*Power) node() {}
func (*Power) expr() {}

// Variable is an identifier reference. Parsers also use it as the
// catch-all for expression fragments that match no other pattern, in
// which case Name holds the raw fragment verbatim.
type Variable struct {
	Name string
}

func (*Variable) node() {}
func (*Variable) expr() {}

// StringLiteral holds unescaped text content, without quotes.
type StringLiteral struct {
	Value string
}

func (*StringLiteral) node() {}
func (*StringLiteral) expr() {}

// NumberLiteral holds the literal text of an integer or decimal number,
// stored verbatim and never coerced.
type NumberLiteral struct {
	Text string
}

func (*NumberLiteral) node() {}
func (*NumberLiteral) expr() {}
