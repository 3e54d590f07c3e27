/*
File    : polyscript/values/function.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package values

import (
	"fmt"

	"github.com/akashmaji946/polyscript/ast"
)

// Function is a closure: a name (optional, for anonymous functions), its
// parameter names, its body, and the Context it was declared in. A Function
// always retains its *defining* context, never the context of whoever calls
// it — that's what makes it a closure rather than dynamic scoping.
type Function struct {
	Name    string // "" for anonymous functions
	Params  []string
	Body    *ast.Block
	Defined *Context
}

func (f *Function) Type() Type { return FunctionType }
func (f *Function) Display() string {
	if f.Name == "" {
		return "<anonymous function>"
	}
	return fmt.Sprintf("<function %s>", f.Name)
}
func (f *Function) Inspect() string { return f.Display() }
func (f *Function) Truthy() bool { return true }

// BuiltIn is a native function dispatched by name rather than by AST body.
// ParamNames exists purely for display/arity-checking symmetry with
// Function; the actual implementation lives in package stdlib, looked up by
// Name at call time.
type BuiltIn struct {
	Name       string
	ParamNames []string
}

func (b *BuiltIn) Type() Type { return BuiltInType }
func (b *BuiltIn) Display() string { return fmt.Sprintf("<builtin %s>", b.Name) }
func (b *BuiltIn) Inspect() string { return b.Display() }
func (b *BuiltIn) Truthy() bool { return true }
