/*
File    : polyscript/eval/eval_structs.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/polyscript/ast"
	"github.com/akashmaji946/polyscript/values"
)

func (e *Evaluator) evalEnumDecl(n *ast.EnumDecl, ctx *values.Context) values.Value {
	enum := &values.Enum{Name: n.Name, Members: append([]string(nil), n.Members...)}
	ctx.Define(n.Name, enum, true)
	return enum
}

// evalNamespaceDecl runs Body in a fresh child context (so declarations
// inside become its members) and binds the result under Name.
func (e *Evaluator) evalNamespaceDecl(n *ast.NamespaceDecl, ctx *values.Context) values.Value {
	inner := ctx.NewChild(n.Name, n.Span.Start)
	result := e.evalBlock(n.Body, inner)
	if values.IsError(result) || values.IsSignal(result) {
		return result
	}
	ns := &values.Namespace{Name: n.Name, Inner: inner}
	ctx.Define(n.Name, ns, true)
	return ns
}

// evalObjectDecl registers Name as a blueprint whose body is re-run fresh
// for every `new` expression. The declaration itself never executes the
// body; it only records where to find it.
func (e *Evaluator) evalObjectDecl(n *ast.ObjectDecl, ctx *values.Context) values.Value {
	holder := &blueprintHolder{Name: n.Name, Body: n.Body, Defined: ctx}
	ctx.Define(n.Name, holder, true)
	return holder
}

// blueprintHolder is the value bound by an ObjectDecl: not a runtime Value
// itself (object declarations are never used as values directly, only via
// `new`), but New needs somewhere to find the body and defining context.
// It implements values.Value minimally so it can live in a Context's table.
type blueprintHolder struct {
	Name    string
	Body    *ast.Block
	Defined *values.Context
}

func (b *blueprintHolder) Type() values.Type { return values.NamespaceType }
func (b *blueprintHolder) Display() string { return "<object blueprint " + b.Name + ">" }
func (b *blueprintHolder) Inspect() string { return b.Display() }
func (b *blueprintHolder) Truthy() bool { return true }

// evalNew resolves Name to a blueprintHolder, seeds a fresh instance context
// by running the blueprint's body, then calls its `init` constructor (if
// any) with Args. Methods declared in the body see `self` bound to the new
// Object in their own defining context (implicit self).
func (e *Evaluator) evalNew(n *ast.New, ctx *values.Context) values.Value {
	bound, ok := ctx.Lookup(n.Name)
	if !ok {
		return e.runtimeError(ctx, n.Span, "name %q is not defined", n.Name)
	}
	holder, ok := bound.(*blueprintHolder)
	if !ok {
		return e.runtimeError(ctx, n.Span, "%q is not an object type", n.Name)
	}

	inner := holder.Defined.NewChild(n.Name, n.Span.Start)
	obj := &values.Object{Name: n.Name, Inner: inner}
	inner.Define("self", obj, false)

	result := e.evalBlock(holder.Body, inner)
	if values.IsError(result) || values.IsSignal(result) {
		return result
	}

	args := make([]values.Value, len(n.Args))
	for i, argExpr := range n.Args {
		v := e.Eval(argExpr, ctx)
		if values.IsError(v) || values.IsSignal(v) {
			return v
		}
		args[i] = v
	}
	if initFn, ok := inner.Lookup("init"); ok {
		fn, ok := initFn.(*values.Function)
		if !ok {
			return e.runtimeError(ctx, n.Span, "%q's init is not a function", n.Name)
		}
		if r := e.callFunction(ctx, n.Span, fn, args); values.IsError(r) {
			return r
		}
	}
	return obj
}
