package parser

import (
	"regexp"
	"strings"

	"github.com/codeshift/codeshift/internal/ast"
)

// comparisonOps is the fixed priority order for comparison splitting. The
// two-character operators come first so "<= " is never split as "<".
var comparisonOps = []string{"==", "!=", "<=", ">=", "<", ">"}

var (
	numberRE = regexp.MustCompile(`^-?\d+(\.\d+)?$`)
	identRE  = regexp.MustCompile(`^[a-zA-Z_]\w*$`)
)

// cppUnescaper resolves the escape sequences the C-style front end
// recognizes inside string literals. A single-pass replacer keeps `\\n`
// from collapsing into a newline.
var cppUnescaper = strings.NewReplacer(`\"`, `"`, `\n`, "\n", `\t`, "\t", `\\`, `\`)

// exprDialect carries the per-language pieces of expression sub-parsing.
type exprDialect struct {
	powRE     *regexp.Regexp // anchored power-call spelling, two groups
	powPrefix string         // fast prefix guard against splitting a power call on '+'
	quotes    string         // accepted string literal quote characters
	unescape  bool           // resolve C-style escapes inside string literals
}

// parse classifies a text fragment into an expression node, recursing
// into sub-fragments. Classification order is fixed: comparison, power
// call, single-level addition, string literal, number literal, bare
// identifier. Anything else becomes a Variable wrapping the raw fragment,
// so every fragment parses to something.
func (d exprDialect) parse(s string) ast.Expr {
	s = strings.TrimSpace(s)

	for _, op := range comparisonOps {
		padded := " " + op + " "
		if idx := strings.Index(s, padded); idx >= 0 {
			return &ast.Comparison{
				Op:    op,
				Left:  d.parse(s[:idx]),
				Right: d.parse(s[idx+len(padded):]),
			}
		}
	}

	if m := d.powRE.FindStringSubmatch(s); m != nil {
		return &ast.Power{Base: d.parse(m[1]), Exponent: d.parse(m[2])}
	}

	if idx := strings.Index(s, " + "); idx >= 0 && !strings.HasPrefix(s, d.powPrefix) {
		left := s[:idx]
		if quotesBalanced(left, d.quotes) {
			return &ast.MathOp{Op: "+", Left: d.parse(left), Right: d.parse(s[idx+3:])}
		}
	}

	if lit, ok := d.stringLiteral(s); ok {
		return lit
	}

	if numberRE.MatchString(s) {
		return &ast.NumberLiteral{Text: s}
	}

	if identRE.MatchString(s) {
		return &ast.Variable{Name: s}
	}

	// Fallback: unrecognized fragments are labeled as variable references
	// holding the raw text. Best-effort over correctness signaling.
	return &ast.Variable{Name: s}
}

// parseArgs parses a comma-separated argument list. The split is naive:
// commas inside nested calls or literals are not protected.
func (d exprDialect) parseArgs(raw string) []ast.Expr {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	args := make([]ast.Expr, 0, len(parts))
	for _, part := range parts {
		args = append(args, d.parse(part))
	}
	return args
}

// stringLiteral recognizes a fully quoted fragment and strips the quotes.
// The C-style dialect additionally resolves escape sequences; the other
// dialects keep the interior verbatim.
func (d exprDialect) stringLiteral(s string) (*ast.StringLiteral, bool) {
	if len(s) < 2 {
		return nil, false
	}
	for _, q := range d.quotes {
		if rune(s[0]) == q && rune(s[len(s)-1]) == q {
			inner := s[1 : len(s)-1]
			if d.unescape {
				inner = cppUnescaper.Replace(inner)
			}
			return &ast.StringLiteral{Value: inner}, true
		}
	}
	return nil, false
}

// quotesBalanced reports whether every quote character in quotes occurs
// an even number of times in s. An odd count means the candidate split
// point sits inside a string literal.
func quotesBalanced(s, quotes string) bool {
	for _, q := range quotes {
		if strings.Count(s, string(q))%2 != 0 {
			return false
		}
	}
	return true
}
