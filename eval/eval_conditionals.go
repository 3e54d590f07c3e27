/*
File    : polyscript/eval/eval_conditionals.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/polyscript/ast"
	"github.com/akashmaji946/polyscript/values"
)

// evalIf evaluates each case's condition in order; the first truthy one
// runs its block in a fresh child context. If none match, Else runs if
// present; otherwise the result is Null.
func (e *Evaluator) evalIf(n *ast.If, ctx *values.Context) values.Value {
	for _, c := range n.Cases {
		cond := e.Eval(c.Cond, ctx)
		if values.IsError(cond) || values.IsSignal(cond) {
			return cond
		}
		if cond.Truthy() {
			child := ctx.NewChild("<if>", n.Span.Start)
			return e.evalBlock(c.Block, child)
		}
	}
	if n.Else != nil {
		child := ctx.NewChild("<else>", n.Span.Start)
		return e.evalBlock(n.Else, child)
	}
	return &values.Null{}
}
