package parser

import (
	"regexp"
	"strings"

	"github.com/codeshift/codeshift/internal/ast"
)

// cppDialect scans the C-style source language. It shares the counted
// loop grammar with the brace dialect, additionally skips preprocessor
// and namespace preamble, and resolves escape sequences inside string
// literals.
var cppDialect = &dialect{
	name:      "cpp",
	comment:   "//",
	stripSemi: true,
	skipLine:  isCPPPreamble,

	assignRE: regexp.MustCompile(`^(?:int\s+)?(\w+)\s*=\s*([^=].*)$`),
	funcRE:   regexp.MustCompile(`^(?:void|int|string)\s+(\w+)\s*\(([^)]*)\)\s*\{(.*)$`),
	forRE:    countedForRE,
	whileRE:  regexp.MustCompile(`^while\s*\((.*?)\)\s*\{(.*)$`),
	printRE:  regexp.MustCompile(`^(?:std::)?cout\s*<<\s*(.+)$`),

	paramName:  lastField,
	parseFor:   parseCountedFor,
	parsePrint: parseCoutChain,

	expr: exprDialect{
		powRE:     regexp.MustCompile(`^pow\s*\(([^,]+?)\s*,\s*([^)]+)\)$`),
		powPrefix: "pow(",
		quotes:    `"`,
		unescape:  true,
	},
}

// isCPPPreamble reports lines that carry no program statement: include
// directives, namespace usings, and structural brace closers.
func isCPPPreamble(line string) bool {
	return strings.HasPrefix(line, "#include") ||
		strings.HasPrefix(line, "using namespace") ||
		isBraceCloser(line)
}

// parseCoutChain turns the text after "cout <<" into the printed
// expression. A chained output ("a" << b << endl) drops its trailing endl
// and folds the remaining segments into a left-nested addition, which the
// generators re-expand into their own concatenation or chaining form.
func parseCoutChain(d *dialect, raw string) ast.Expr {
	parts := strings.Split(raw, "<<")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	for len(parts) > 1 && isEndl(parts[len(parts)-1]) {
		parts = parts[:len(parts)-1]
	}
	if len(parts) == 1 {
		return d.expr.parse(parts[0])
	}
	return d.expr.parse(strings.Join(parts, " + "))
}

func isEndl(s string) bool {
	return s == "endl" || s == "std::endl"
}
