/*
File    : polyscript/eval/eval_functions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/polyscript/ast"
	"github.com/akashmaji946/polyscript/stdlib"
	"github.com/akashmaji946/polyscript/values"
)

// evalFnDecl builds a Function closing over ctx (the defining context). A
// named declaration also binds itself in ctx, writable, so it can be
// reassigned or recursively referenced.
func (e *Evaluator) evalFnDecl(n *ast.FnDecl, ctx *values.Context) values.Value {
	fn := &values.Function{
		Name:    n.Name,
		Params:  n.Params,
		Body:    n.Body,
		Defined: ctx,
	}
	if n.Name != "" {
		ctx.Define(n.Name, fn, true)
	}
	return fn
}

func (e *Evaluator) evalReturn(n *ast.Return, ctx *values.Context) values.Value {
	if n.Expr == nil {
		return &values.ReturnSignal{Value: &values.Null{}}
	}
	v := e.Eval(n.Expr, ctx)
	if values.IsError(v) {
		return v
	}
	return &values.ReturnSignal{Value: v}
}

func (e *Evaluator) evalCall(n *ast.Call, ctx *values.Context) values.Value {
	callee := e.Eval(n.Callee, ctx)
	if values.IsError(callee) || values.IsSignal(callee) {
		return callee
	}

	args := make([]values.Value, len(n.Args))
	for i, argExpr := range n.Args {
		v := e.Eval(argExpr, ctx)
		if values.IsError(v) || values.IsSignal(v) {
			return v
		}
		args[i] = v
	}

	switch fn := callee.(type) {
	case *values.Function:
		return e.callFunction(ctx, n.Span, fn, args)
	case *values.BuiltIn:
		return e.callBuiltin(ctx, n.Span, fn, args)
	default:
		return e.runtimeError(ctx, n.Span, "value of type %s is not callable", callee.Type())
	}
}

func (e *Evaluator) callFunction(ctx *values.Context, span ast.Span, fn *values.Function, args []values.Value) values.Value {
	if len(args) != len(fn.Params) {
		return e.runtimeError(ctx, span, "function %s expects %d argument(s), got %d", fnLabel(fn), len(fn.Params), len(args))
	}
	callCtx := fn.Defined.NewChild(fnLabel(fn), span.Start)
	for i, param := range fn.Params {
		callCtx.Define(param, args[i], true)
	}
	result := e.evalBlock(fn.Body, callCtx)
	if values.IsError(result) {
		return result
	}
	if ret, ok := result.(*values.ReturnSignal); ok {
		return ret.Value
	}
	switch result.(type) {
	case values.BreakSignal, values.ContinueSignal:
		return &values.Null{}
	}
	return result
}

func fnLabel(fn *values.Function) string {
	if fn.Name == "" {
		return "<anonymous function>"
	}
	return fn.Name
}

func (e *Evaluator) callBuiltin(ctx *values.Context, span ast.Span, fn *values.BuiltIn, args []values.Value) values.Value {
	b, ok := stdlib.Lookup(fn.Name)
	if !ok {
		return e.runtimeError(ctx, span, "builtin %q is not registered", fn.Name)
	}
	if len(args) != len(fn.ParamNames) {
		return e.runtimeError(ctx, span, "builtin %s expects %d argument(s), got %d", fn.Name, len(fn.ParamNames), len(args))
	}
	result := b.Callback(e.Writer, args...)
	if result == nil {
		return e.runtimeError(ctx, span, "invalid argument to %s: %s", fn.Name, argTypes(args))
	}
	return result
}

func argTypes(args []values.Value) string {
	if len(args) == 0 {
		return "()"
	}
	s := string(args[0].Type())
	for _, a := range args[1:] {
		s += ", " + string(a.Type())
	}
	return s
}
