/*
File    : polyscript/values/context.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Context and SymbolTable implement the lexical scope chain: a Context is
pushed on program start, function call, every if/elif/else/while/for body,
namespace declaration, and each `new` of an object; it is released (becomes
garbage) once
nothing still references it. Go's tracing garbage collector handles this
for free, including the closure-cycle case (a function capturing a context
that names the function itself) that reference counting alone cannot break
without extra weak-reference bookkeeping.
*/
package values

import "github.com/akashmaji946/polyscript/lexer"

// entry is one binding in a SymbolTable: a value plus whether it can be
// reassigned. const produces writable = false.
type entry struct {
	value    Value
	writable bool
}

// SymbolTable is a flat name -> entry map, local to one Context. It has no
// parent pointer of its own — the parent chain lives on Context alone,
// which is the single source of truth for scope nesting, removing a
// redundant second chain without changing observable behavior (see
// DESIGN.md).
type SymbolTable struct {
	entries map[string]*entry
}

func newSymbolTable() *SymbolTable {
	return &SymbolTable{entries: make(map[string]*entry)}
}

// Context is a scope frame: a display name (for tracebacks), a parent
// (nil for the global context), its own SymbolTable, and the position where
// it was entered (nil for the global context, which wasn't "entered" from
// any call site).
type Context struct {
	DisplayName string
	Parent      *Context
	Table       *SymbolTable
	Position    *lexer.Position
}

// NewGlobalContext creates the root context with no parent.
func NewGlobalContext() *Context {
	return &Context{DisplayName: "<program>", Table: newSymbolTable()}
}

// NewChild creates a context nested under c, recording where it was entered.
func (c *Context) NewChild(displayName string, pos lexer.Position) *Context {
	return &Context{DisplayName: displayName, Parent: c, Table: newSymbolTable(), Position: &pos}
}

// Lookup walks the context chain from c outward, returning the first
// binding found.
func (c *Context) Lookup(name string) (Value, bool) {
	for ctx := c; ctx != nil; ctx = ctx.Parent {
		if e, ok := ctx.Table.entries[name]; ok {
			return e.value, true
		}
	}
	return nil, false
}

// Define creates or replaces a binding in c's own table (not any parent):
// redeclaring a name with var/const in the same scope simply rebinds it.
func (c *Context) Define(name string, value Value, writable bool) {
	c.Table.entries[name] = &entry{value: value, writable: writable}
}

// AssignResult is the outcome of Assign, distinguishing "no such name" from
// "found it, but it's const" so the evaluator can raise the right
// RuntimeError message for each.
type AssignResult int

const (
	Assigned AssignResult = iota
	NotFound
	Immutable
)

// Assign walks the chain looking for an existing binding for name and
// updates it in place where found — the scope that originally defined the
// name, not c. This is what makes closures see outer-scope mutations.
func (c *Context) Assign(name string, value Value) AssignResult {
	for ctx := c; ctx != nil; ctx = ctx.Parent {
		if e, ok := ctx.Table.entries[name]; ok {
			if !e.writable {
				return Immutable
			}
			e.value = value
			return Assigned
		}
	}
	return NotFound
}

// Trail returns the chain of DisplayNames from the global context down to c,
// innermost (c itself) last — the shape a runtime error's call traceback
// is rendered in.
func (c *Context) Trail() []string {
	var names []string
	for ctx := c; ctx != nil; ctx = ctx.Parent {
		names = append([]string{ctx.DisplayName}, names...)
	}
	return names
}
