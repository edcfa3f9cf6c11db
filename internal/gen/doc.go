// Package gen renders IR trees into target-language source text.
//
// One generator exists per target language (Python, Java, C++,
// JavaScript). JavaScript is generator-only: no parser produces IR from
// it, and that asymmetry is deliberate.
//
// Generators are stateless values. Indentation depth travels through an
// immutable RenderContext threaded as a parameter into every rendering
// call, so a single generator instance is safe for concurrent use.
//
// Rendering never fails. Each generator dispatches exhaustively over the
// sealed node set from internal/ast; anything that still falls through
// (a nil field, a future variant) renders as a generic structural dump of
// the node rather than panicking.
package gen
