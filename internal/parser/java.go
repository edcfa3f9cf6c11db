package parser

import (
	"regexp"
	"strings"

	"github.com/codeshift/codeshift/internal/ast"
)

// javaDialect scans the brace-and-semicolon source language. One trailing
// semicolon is stripped before the patterns are tried; block extraction
// still follows indentation, so input is assumed consistently indented.
var javaDialect = &dialect{
	name:      "java",
	comment:   "//",
	stripSemi: true,
	skipLine:  isBraceCloser,

	assignRE: regexp.MustCompile(`^(?:int\s+)?(\w+)\s*=\s*([^=].*)$`),
	funcRE:   regexp.MustCompile(`^(?:public\s+)?(?:static\s+)?(?:void|int|String)\s+(\w+)\s*\(([^)]*)\)\s*\{(.*)$`),
	forRE:    countedForRE,
	whileRE:  regexp.MustCompile(`^while\s*\((.*?)\)\s*\{(.*)$`),
	printRE:  regexp.MustCompile(`^System\.out\.println\s*\((.*)\)$`),

	paramName: lastField,
	parseFor:  parseCountedFor,

	expr: exprDialect{
		powRE:     regexp.MustCompile(`^Math\.pow\s*\(([^,]+?)\s*,\s*([^)]+)\)$`),
		powPrefix: "Math.pow(",
		quotes:    `"'`,
	},
}

// countedForRE matches the native counted-loop header shared by the two
// brace front ends:
//
//	for (int i = start; i <cmp> end; i <step-op> [K]) {
//
// Groups: iterator, start, comparison, end, step operator, step literal,
// and the text after the opening brace (an inline body, when present).
// The two-character comparisons come first in the alternation so "<=" is
// never captured as "<".
var countedForRE = regexp.MustCompile(
	`^for\s*\(\s*(?:int\s+)?(\w+)\s*=\s*([^;]+);\s*\w+\s*(<=|>=|<|>)\s*([^;]+);\s*\w+\s*(\+\+|--|\+=|-=)\s*([^)]*)\)\s*\{(.*)$`)

// parseCountedFor normalizes a counted-loop header into the canonical
// half-open triple.
func parseCountedFor(_ *dialect, m []string) (string, *ast.Range, ast.Expr) {
	return m[1], canonicalRange(m[2], m[3], m[4], m[5], m[6]), nil
}

// isBraceCloser reports a structural closing line that carries no
// statement of its own.
func isBraceCloser(line string) bool {
	return line == "}" || line == "};"
}

// lastField returns the final whitespace-separated field of a parameter
// declaration, dropping the leading type.
func lastField(raw string) string {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return raw
	}
	return fields[len(fields)-1]
}
