package parser

import (
	"regexp"
	"strings"

	"github.com/codeshift/codeshift/internal/ast"
)

// dialect carries the per-language surface patterns and hooks. The scan
// loop itself is shared: the three parsers are near-duplicates differing
// only in these patterns.
type dialect struct {
	name    string
	comment string // comment line prefix

	// skipLine reports preamble lines to ignore entirely (e.g. C++
	// #include directives). Nil when the dialect has none.
	skipLine func(line string) bool

	// stripSemi removes one trailing statement terminator before the
	// patterns are tried.
	stripSemi bool

	// The opener patterns (funcRE, forRE, whileRE) each capture the text
	// after the opener as their final group, so a body written on the
	// same physical line still parses.
	assignRE *regexp.Regexp // groups: target, value
	funcRE   *regexp.Regexp // groups: name, raw parameter list, rest
	forRE    *regexp.Regexp // groups: dialect-specific, rest last
	whileRE  *regexp.Regexp // groups: condition, rest
	printRE  *regexp.Regexp // group: expression text

	// callRE matches a bare call used in statement position. Nil when the
	// dialect has no such form. callExclude names identifiers that are
	// claimed by other statement patterns.
	callRE      *regexp.Regexp
	callExclude map[string]bool

	// paramName maps one raw parameter declaration to its name (Java and
	// C++ carry a leading type).
	paramName func(raw string) string

	// parseFor turns the for-header submatches into the loop iterator and
	// its iterable descriptor.
	parseFor func(d *dialect, m []string) (iter string, rng *ast.Range, iterable ast.Expr)

	// parsePrint turns the print pattern's captured text into the printed
	// expression. Nil means plain expression parsing.
	parsePrint func(d *dialect, raw string) ast.Expr

	expr exprDialect
}

// parse runs the shared line scanner over the whole input.
func (d *dialect) parse(src string) (*ast.Program, []Diagnostic) {
	src = strings.TrimSpace(src)
	if src == "" {
		return &ast.Program{}, nil
	}
	stmts, diags := d.parseLines(strings.Split(src, "\n"), 1)
	return &ast.Program{Statements: stmts}, diags
}

// parseLines scans lines top to bottom, trying statement patterns in a
// fixed priority order: assignment, call-as-statement, function
// definition, for-loop, while-loop, print. The first match consumes the
// line. offset is the 1-based physical line number of lines[0], used for
// diagnostics when re-parsing an extracted block.
func (d *dialect) parseLines(lines []string, offset int) ([]ast.Stmt, []Diagnostic) {
	var stmts []ast.Stmt
	var diags []Diagnostic

	i := 0
	for i < len(lines) {
		raw := lines[i]
		line := strings.TrimSpace(raw)

		if line == "" || strings.HasPrefix(line, d.comment) {
			i++
			continue
		}
		if d.skipLine != nil && d.skipLine(line) {
			i++
			continue
		}
		if d.stripSemi {
			line = strings.TrimSpace(strings.TrimSuffix(line, ";"))
		}

		if m := d.assignRE.FindStringSubmatch(line); m != nil {
			stmts = append(stmts, &ast.Assignment{
				Target: &ast.Variable{Name: m[1]},
				Value:  d.expr.parse(m[2]),
			})
			i++
			continue
		}

		if d.callRE != nil {
			if m := d.callRE.FindStringSubmatch(line); m != nil && !d.callExclude[m[1]] {
				stmts = append(stmts, &ast.Call{Name: m[1], Args: d.expr.parseArgs(m[2])})
				i++
				continue
			}
		}

		if m := d.funcRE.FindStringSubmatch(line); m != nil {
			body, next, bodyDiags := d.openerBody(lines, i, offset, m[len(m)-1])
			stmts = append(stmts, &ast.Function{
				Name:   m[1],
				Params: d.splitParams(m[2]),
				Body:   body,
			})
			diags = append(diags, bodyDiags...)
			i = next
			continue
		}

		if m := d.forRE.FindStringSubmatch(line); m != nil {
			iter, rng, iterable := d.parseFor(d, m)
			body, next, bodyDiags := d.openerBody(lines, i, offset, m[len(m)-1])
			stmts = append(stmts, &ast.ForLoop{
				Iterator: iter,
				Range:    rng,
				Iterable: iterable,
				Body:     body,
			})
			diags = append(diags, bodyDiags...)
			i = next
			continue
		}

		if m := d.whileRE.FindStringSubmatch(line); m != nil {
			body, next, bodyDiags := d.openerBody(lines, i, offset, m[len(m)-1])
			stmts = append(stmts, &ast.WhileLoop{
				Cond: d.expr.parse(m[1]),
				Body: body,
			})
			diags = append(diags, bodyDiags...)
			i = next
			continue
		}

		if m := d.printRE.FindStringSubmatch(line); m != nil {
			var expr ast.Expr
			if d.parsePrint != nil {
				expr = d.parsePrint(d, strings.TrimSpace(m[1]))
			} else {
				expr = d.expr.parse(m[1])
			}
			stmts = append(stmts, &ast.Print{Expr: expr})
			i++
			continue
		}

		// No pattern matched: the line is dropped from the tree.
		diags = append(diags, Diagnostic{Line: offset + i, Text: line})
		i++
	}

	return stmts, diags
}

// openerBody resolves the body of a block-opening construct at
// lines[open]. When the opener carries inline text after its delimiter
// (a body written on the same physical line), that text is split on
// statement terminators and re-parsed; otherwise the indented block that
// follows is extracted and re-parsed. Returns the parsed body, the index
// of the first line after the construct, and any diagnostics raised
// inside it.
func (d *dialect) openerBody(lines []string, open, offset int, rest string) ([]ast.Stmt, int, []Diagnostic) {
	rest = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(rest), "}"))
	if rest != "" {
		body, diags := d.parseLines(strings.Split(rest, ";"), offset+open)
		return body, open + 1, diags
	}

	base := indentOf(lines[open])
	block, next := indentedBlock(lines, open+1, base)
	body, diags := d.parseLines(block, offset+open+1)
	return body, next, diags
}

// indentedBlock collects the contiguous lines after start whose
// indentation exceeds base. The block ends at the first non-blank line
// indented at or below base. Blank lines never terminate a block and are
// carried along so that diagnostic line numbers stay aligned.
func indentedBlock(lines []string, start, base int) (block []string, next int) {
	i := start
	for i < len(lines) {
		if strings.TrimSpace(lines[i]) == "" {
			block = append(block, lines[i])
			i++
			continue
		}
		if indentOf(lines[i]) <= base {
			break
		}
		block = append(block, lines[i])
		i++
	}
	return block, i
}

// indentOf measures leading whitespace in columns, tabs counted as one.
func indentOf(line string) int {
	return len(line) - len(strings.TrimLeft(line, " \t"))
}

// splitParams splits a raw parameter list on commas and maps each entry
// through the dialect's name extractor. Empty entries are skipped.
func (d *dialect) splitParams(raw string) []string {
	var names []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		names = append(names, d.paramName(part))
	}
	return names
}
