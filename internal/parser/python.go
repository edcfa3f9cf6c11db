package parser

import (
	"regexp"
	"strings"

	"github.com/codeshift/codeshift/internal/ast"
)

// pythonDialect scans the indentation-based source language. Blocks are
// delimited purely by indentation; statements carry no terminator.
var pythonDialect = &dialect{
	name:    "python",
	comment: "#",

	assignRE: regexp.MustCompile(`^(\w+)\s*=\s*([^=].*)$`),
	funcRE:   regexp.MustCompile(`^def\s+(\w+)\s*\(([^)]*)\)\s*:(.*)$`),
	forRE:    regexp.MustCompile(`^for\s+(\w+)\s+in\s+(.+?)\s*:(.*)$`),
	whileRE:  regexp.MustCompile(`^while\s+(.+?)\s*:(.*)$`),
	printRE:  regexp.MustCompile(`^print\s*\((.*)\)$`),

	// Bare calls are statements in this dialect. print is claimed by the
	// print pattern, which would otherwise never be reached.
	callRE:      regexp.MustCompile(`^(\w+)\s*\((.*)\)$`),
	callExclude: map[string]bool{"print": true},

	paramName: strings.TrimSpace,
	parseFor:  parsePythonFor,

	expr: exprDialect{
		powRE:     regexp.MustCompile(`^pow\s*\(([^,]+?)\s*,\s*([^)]+)\)$`),
		powPrefix: "pow(",
		quotes:    `"'`,
	},
}

// parsePythonFor classifies the for-header iterable: a range(...) call
// becomes the canonical triple, anything else stays a generic iterable
// expression.
func parsePythonFor(d *dialect, m []string) (string, *ast.Range, ast.Expr) {
	if rng, ok := parseRangeCall(m[2]); ok {
		return m[1], rng, nil
	}
	return m[1], nil, d.expr.parse(m[2])
}
