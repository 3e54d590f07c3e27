/*
File    : polyscript/ast/compare.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package ast

import "github.com/google/go-cmp/cmp"

// Contains reports whether outer's byte range encloses inner's — the
// invariant every AST node must satisfy relative to its children.
func Contains(outer, inner Span) bool {
	return outer.Start.Index <= inner.Start.Index && inner.End.Index <= outer.End.Index
}

// IgnorePositions is a cmp.Option that treats all Span values as equal,
// regardless of the source positions they record. Parser round-trip tests
// (pretty-print, re-parse, compare) use this to check structural equality
// modulo positions without hand-writing field-by-field comparisons for
// every node type.
var IgnorePositions = cmp.Comparer(func(a, b Span) bool {
	return true
})
