package parser

import (
	"strconv"
	"strings"

	"github.com/codeshift/codeshift/internal/ast"
)

// canonicalRange converts a native counted-loop header of the form
//
//	it = start; it <cmp> end; it <stepOp> [stepVal]
//
// into the canonical half-open (start, end, step) triple. The triple
// visits start, start+step, start+2*step, ... while still strictly before
// end in the step's direction, so:
//
//	<   passes through unchanged
//	<=  widens the end by one
//	>   passes through unchanged (the negative step sets the direction)
//	>=  narrows the end by one
//
// Step operators: ++ is step 1, -- is step -1, +=K is K, -=K is -K.
// This keeps the re-expanded loop visiting exactly the ordered iterator
// sequence of the original header for every supported form.
func canonicalRange(start, cmp, end, stepOp, stepVal string) *ast.Range {
	start = strings.TrimSpace(start)
	end = strings.TrimSpace(end)
	stepVal = strings.TrimSpace(stepVal)

	var step string
	switch stepOp {
	case "++":
		step = "1"
	case "--":
		step = "-1"
	case "+=":
		step = stepVal
	case "-=":
		step = negate(stepVal)
	default:
		step = "1"
	}

	switch cmp {
	case "<=":
		end = offsetText(end, 1)
	case ">=":
		end = offsetText(end, -1)
	}

	return &ast.Range{Start: start, End: end, Step: step}
}

// negate flips the textual sign of a step literal.
func negate(s string) string {
	if rest, ok := strings.CutPrefix(s, "-"); ok {
		return rest
	}
	return "-" + s
}

// offsetText shifts an integer bound by delta. Non-integer bounds (e.g. a
// variable name) stay textual: "n" becomes "n + 1".
func offsetText(s string, delta int) string {
	if n, err := strconv.Atoi(s); err == nil {
		return strconv.Itoa(n + delta)
	}
	if delta < 0 {
		return s + " - " + strconv.Itoa(-delta)
	}
	return s + " + " + strconv.Itoa(delta)
}

// parseRangeCall recognizes a Python range(...) iterable and returns its
// canonical triple with the range() defaulting rules: one argument is the
// end, start defaults to 0, step defaults to 1.
func parseRangeCall(raw string) (*ast.Range, bool) {
	inner, ok := strings.CutPrefix(strings.TrimSpace(raw), "range(")
	if !ok {
		return nil, false
	}
	inner, ok = strings.CutSuffix(inner, ")")
	if !ok {
		return nil, false
	}

	parts := strings.Split(inner, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	switch len(parts) {
	case 1:
		if parts[0] == "" {
			return nil, false
		}
		return &ast.Range{Start: "0", End: parts[0], Step: "1"}, true
	case 2:
		return &ast.Range{Start: parts[0], End: parts[1], Step: "1"}, true
	case 3:
		return &ast.Range{Start: parts[0], End: parts[1], Step: parts[2]}, true
	default:
		return nil, false
	}
}
