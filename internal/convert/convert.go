// Package convert is the pipeline entry point: it resolves a
// (source-language, target-language) pair to a concrete parser and
// generator, runs parse then render, and returns the generated text.
//
// The pipeline is strictly linear and stateless: text enters a parser,
// leaves as a fresh IR tree, enters a generator, leaves as target text.
// Nothing persists between calls, so independent conversions may run
// concurrently.
package convert

import (
	"fmt"
	"sort"
	"strings"

	"github.com/codeshift/codeshift/internal/ast"
	"github.com/codeshift/codeshift/internal/gen"
	"github.com/codeshift/codeshift/internal/parser"
)

// Language keys accepted by Convert. JavaScript appears only among the
// targets: some languages can only ever be a conversion target.
type Language string

const (
	Python     Language = "python"
	Java       Language = "java"
	CPP        Language = "cpp"
	JavaScript Language = "javascript"
)

// Transform is an optional IR-to-IR pipeline stage applied between parse
// and render. It must return a tree satisfying the same invariants it
// received; the conversion contract is identical with or without one.
type Transform func(*ast.Program) (*ast.Program, error)

// Identity is the no-op transform. Every language's transformer stage is
// currently required to behave exactly like it.
func Identity(p *ast.Program) (*ast.Program, error) { return p, nil }

// Options adjusts a single conversion.
type Options struct {
	// Strict makes parsing report dropped lines instead of silently
	// omitting them.
	Strict bool
	// Transform is the optional IR-to-IR stage. Nil means none.
	Transform Transform
}

// UnsupportedLanguageError reports an unknown source or target key. It is
// returned before any parsing or rendering happens.
type UnsupportedLanguageError struct {
	Key       Language
	Role      string // "source" or "target"
	Supported []Language
}

func (e *UnsupportedLanguageError) Error() string {
	names := make([]string, len(e.Supported))
	for i, l := range e.Supported {
		names[i] = string(l)
	}
	return fmt.Sprintf("unsupported %s language %q (supported: %s)",
		e.Role, string(e.Key), strings.Join(names, ", "))
}

func newParser(lang Language, opts parser.Options) (parser.Parser, bool) {
	switch lang {
	case Python:
		return parser.NewPython(opts), true
	case Java:
		return parser.NewJava(opts), true
	case CPP:
		return parser.NewCPP(opts), true
	default:
		return nil, false
	}
}

func newGenerator(lang Language) (gen.Generator, bool) {
	switch lang {
	case Python:
		return gen.Python{}, true
	case Java:
		return gen.Java{}, true
	case CPP:
		return gen.CPP{}, true
	case JavaScript:
		return gen.JavaScript{}, true
	default:
		return nil, false
	}
}

// SourceLanguages lists the languages a conversion can read, sorted.
func SourceLanguages() []Language {
	return sortedLanguages(Python, Java, CPP)
}

// TargetLanguages lists the languages a conversion can emit, sorted.
func TargetLanguages() []Language {
	return sortedLanguages(Python, Java, CPP, JavaScript)
}

func sortedLanguages(ls ...Language) []Language {
	sort.Slice(ls, func(i, j int) bool { return ls[i] < ls[j] })
	return ls
}

// Convert translates src from one language into another with default
// options: best-effort parsing, no transform stage.
func Convert(src string, from, to Language) (string, error) {
	return ConvertWithOptions(src, from, to, Options{})
}

// ConvertWithOptions translates src from one language into another.
//
// Unknown keys in either position fail immediately, before any input is
// consumed. Empty or whitespace-only source parses to a zero-statement
// Program and renders as the target's empty-program output.
func ConvertWithOptions(src string, from, to Language, opts Options) (string, error) {
	p, ok := newParser(from, parser.Options{Strict: opts.Strict})
	if !ok {
		return "", &UnsupportedLanguageError{Key: from, Role: "source", Supported: SourceLanguages()}
	}
	g, ok := newGenerator(to)
	if !ok {
		return "", &UnsupportedLanguageError{Key: to, Role: "target", Supported: TargetLanguages()}
	}

	prog, err := p.Parse(src)
	if err != nil {
		return "", err
	}

	if opts.Transform != nil {
		prog, err = opts.Transform(prog)
		if err != nil {
			return "", fmt.Errorf("transform stage: %w", err)
		}
	}

	return g.Render(prog), nil
}
