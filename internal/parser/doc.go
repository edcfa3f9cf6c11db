// Package parser turns source text in one of the supported surface
// languages into the shared IR defined by internal/ast.
//
// One parser exists per source language (Python, Java, C++). All three
// share the same scanning shape: split the input into physical lines,
// try a fixed priority order of statement patterns on each line, and
// extract indentation-delimited blocks for constructs that open a nested
// scope. Extracted blocks are re-parsed from scratch by the same parser;
// the resulting statement sequence becomes the body of the opening
// construct.
//
// Parsing is best-effort by default: a line matching no statement pattern
// is silently dropped, and an expression fragment matching no sub-pattern
// becomes a Variable wrapping the raw text. Strict mode reports every
// dropped line as a Diagnostic without changing the produced tree.
//
// The scanner assumes well-formed, consistently indented input. Malformed
// nesting produces a structurally wrong but non-crashing tree; this is an
// accepted limitation, not a guarded error path.
package parser
