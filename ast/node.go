/*
File    : polyscript/ast/node.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package ast defines the tagged tree the parser produces and the evaluator
walks. Every node embeds a Span recording the (start, end) source positions
of the text it was parsed from; a parent node's span always contains every
child's span (the "position containment" invariant — see Contains in
compare.go).
*/
package ast

import "github.com/akashmaji946/polyscript/lexer"

// Span is embedded in every node to carry its source position range.
type Span struct {
	Start lexer.Position
	End   lexer.Position
}

func (s Span) Pos() Span { return s }

// Node is the base interface every AST node satisfies: it can report its
// own span. The evaluator dispatches on the concrete type via a type switch
// rather than a visitor pattern.
type Node interface {
	Pos() Span
}

// Block is a sequence of statements: the whole program, a function body, or
// the body of an if/while/for/namespace/object. It is itself a Node so it
// can be evaluated uniformly wherever the grammar calls for "statements".
type Block struct {
	Span
	Statements []Node
}

// --- Literals ---

type IntLit struct {
	Span
	Value int64
}

type FloatLit struct {
	Span
	Value float64
}

type StringLit struct {
	Span
	Value string
}

type ListLit struct {
	Span
	Elements []Node
}

type NullLit struct {
	Span
}

// --- Names, assignment, attributes ---

// AssignKind distinguishes the three surface forms the grammar's
// `'var' IDENT '=' expr | 'const' IDENT '=' expr | IDENT '=' expr` collapses
// onto a single VarAssign node. Declare forms bind a fresh name in the
// current context with the given Writable flag; the plain-assignment form
// mutates whatever binding is already visible and ignores Writable (the
// context decides mutability from the existing entry, not from the
// assignment site).
type AssignKind int

const (
	Declare AssignKind = iota
	Assign
)

type VarAssign struct {
	Span
	Name     string
	Expr     Node
	Kind     AssignKind
	Writable bool // only meaningful when Kind == Declare
}

type VarAccess struct {
	Span
	Name string
}

type Attribute struct {
	Span
	Target Node
	Name   string
}

type AttributeAssign struct {
	Span
	Target Node
	Name   string
	Expr   Node
}

// IndexAccess is the `target.(index)` form used for list indexing: an
// "equivalent call form" standing in for bracket indexing, which the
// grammar never defines. See DESIGN.md.
type IndexAccess struct {
	Span
	Target Node
	Index  Node
}

// --- Operators ---

type BinOp struct {
	Span
	Left  Node
	Op    lexer.Token
	Right Node
}

type UnaryOp struct {
	Span
	Op      lexer.Token
	Operand Node
}

// --- Control flow ---

// IfCase is one `cond block` pair of an If node; it is not itself a Node
// since it never appears except nested inside an If.
type IfCase struct {
	Cond  Node
	Block *Block
}

type If struct {
	Span
	Cases []IfCase
	Else  *Block
}

type While struct {
	Span
	Cond Node
	Body *Block
}

type For struct {
	Span
	Name  string
	Start Node
	End   Node
	Step  Node // nil means default step of Integer(1)
	Body  *Block
}

// --- Functions ---

type FnDecl struct {
	Span
	Name      string // "" for anonymous functions
	Params    []string
	Body      *Block
	Anonymous bool
}

type Call struct {
	Span
	Callee Node
	Args   []Node
}

type Return struct {
	Span
	Expr Node // nil for a bare `return`
}

type Break struct {
	Span
}

type Continue struct {
	Span
}

// --- Enums, namespaces, objects ---

type EnumDecl struct {
	Span
	Name    string
	Members []string
}

type NamespaceDecl struct {
	Span
	Name string
	Body *Block
}

type ObjectDecl struct {
	Span
	Name string
	Body *Block
}

type New struct {
	Span
	Name string
	Args []Node
}
