// Package ast defines the language-neutral intermediate representation
// shared by every parser and generator in codeshift.
//
// This package contains type definitions only. All other internal packages
// import ast; ast imports nothing internal. This keeps the IR the
// foundational layer with no circular dependencies.
//
// The node set is a closed sum type: Node, Stmt, and Expr are sealed
// interfaces using the marker method pattern, so backends can type-switch
// exhaustively over the variants defined here.
//
// Key design constraints:
//   - Nodes are immutable once constructed; parsers build fresh trees per
//     call and generators only read them.
//   - Number literals are stored as verbatim source text, never coerced to
//     a numeric type. No arithmetic is evaluated anywhere in the pipeline.
//   - Every node is owned by exactly one parent; trees are never shared
//     between conversions.
package ast
