package parser

import (
	"fmt"
	"strings"

	"github.com/codeshift/codeshift/internal/ast"
)

// Parser converts source text into an IR tree.
//
// Parse never fails in best-effort mode; in strict mode it returns a
// *ParseError listing every line that matched no statement pattern. The
// returned Program is valid in both modes and identical between them.
type Parser interface {
	Parse(src string) (*ast.Program, error)
}

// Options controls parsing policy.
type Options struct {
	// Strict reports dropped lines as diagnostics instead of silently
	// omitting them. The produced tree is the same either way.
	Strict bool
}

// Diagnostic records a source line that matched no statement pattern.
type Diagnostic struct {
	// Line is the 1-based physical line number in the original input.
	Line int
	// Text is the trimmed line content.
	Text string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("line %d: unrecognized statement: %q", d.Line, d.Text)
}

// ParseError reports strict-mode diagnostics. It is only returned when
// Options.Strict is set and at least one line was dropped.
type ParseError struct {
	Language    string
	Diagnostics []Diagnostic
}

func (e *ParseError) Error() string {
	if len(e.Diagnostics) == 1 {
		return fmt.Sprintf("%s: %s", e.Language, e.Diagnostics[0])
	}
	lines := make([]string, len(e.Diagnostics))
	for i, d := range e.Diagnostics {
		lines[i] = d.String()
	}
	return fmt.Sprintf("%s: %d unrecognized statements:\n  %s",
		e.Language, len(e.Diagnostics), strings.Join(lines, "\n  "))
}

// langParser binds a dialect to parsing options. All concrete parsers are
// this type; only the dialect differs.
type langParser struct {
	d    *dialect
	opts Options
}

func (p langParser) Parse(src string) (*ast.Program, error) {
	prog, diags := p.d.parse(src)
	if p.opts.Strict && len(diags) > 0 {
		return prog, &ParseError{Language: p.d.name, Diagnostics: diags}
	}
	return prog, nil
}

// NewPython returns a parser for the indentation-based source language.
func NewPython(opts Options) Parser { return langParser{d: pythonDialect, opts: opts} }

// NewJava returns a parser for the brace-and-semicolon source language.
func NewJava(opts Options) Parser { return langParser{d: javaDialect, opts: opts} }

// NewCPP returns a parser for the C-style source language.
func NewCPP(opts Options) Parser { return langParser{d: cppDialect, opts: opts} }
