/*
File    : polyscript/eval/eval_loops.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/polyscript/ast"
	"github.com/akashmaji946/polyscript/values"
)

// evalWhile repeatedly evaluates cond in a fresh child context; break exits
// the loop yielding Null, continue begins the next iteration.
func (e *Evaluator) evalWhile(n *ast.While, ctx *values.Context) values.Value {
	for {
		condCtx := ctx.NewChild("<while>", n.Span.Start)
		cond := e.Eval(n.Cond, condCtx)
		if values.IsError(cond) || values.IsSignal(cond) {
			return cond
		}
		if !cond.Truthy() {
			return &values.Null{}
		}
		bodyCtx := ctx.NewChild("<while body>", n.Span.Start)
		result := e.evalBlock(n.Body, bodyCtx)
		if values.IsError(result) {
			return result
		}
		switch result.(type) {
		case values.BreakSignal:
			return &values.Null{}
		case values.ContinueSignal:
			continue
		}
		if _, ok := result.(*values.ReturnSignal); ok {
			return result
		}
	}
}

// evalFor binds Name in a fresh child context, stepping it by Step (default
// Integer(1)) while Name < End (Step > 0) or Name > End (Step < 0). Step ==
// 0 is a RuntimeError.
func (e *Evaluator) evalFor(n *ast.For, ctx *values.Context) values.Value {
	start := e.Eval(n.Start, ctx)
	if values.IsError(start) || values.IsSignal(start) {
		return start
	}
	end := e.Eval(n.End, ctx)
	if values.IsError(end) || values.IsSignal(end) {
		return end
	}

	var step values.Value = &values.Integer{Value: 1}
	if n.Step != nil {
		step = e.Eval(n.Step, ctx)
		if values.IsError(step) || values.IsSignal(step) {
			return step
		}
	}

	startF, ok1 := asFloat(start)
	endF, ok2 := asFloat(end)
	stepF, ok3 := asFloat(step)
	if !ok1 || !ok2 || !ok3 {
		return e.runtimeError(ctx, n.Span, "for loop bounds and step must be numeric")
	}
	if stepF == 0 {
		return e.runtimeError(ctx, n.Span, "for loop step must not be zero")
	}

	loopCtx := ctx.NewChild("<for>", n.Span.Start)
	cur := start
	for {
		curF, _ := asFloat(cur)
		if stepF > 0 && !(curF < endF) {
			break
		}
		if stepF < 0 && !(curF > endF) {
			break
		}

		loopCtx.Define(n.Name, cur, true)
		bodyCtx := loopCtx.NewChild("<for body>", n.Span.Start)
		result := e.evalBlock(n.Body, bodyCtx)
		if values.IsError(result) {
			return result
		}
		switch result.(type) {
		case values.BreakSignal:
			return &values.Null{}
		case values.ContinueSignal:
			cur = addStep(cur, step)
			continue
		}
		if _, ok := result.(*values.ReturnSignal); ok {
			return result
		}
		cur = addStep(cur, step)
	}
	return &values.Null{}
}

// addStep advances the loop variable by step, preserving Integer arithmetic
// when both operands are Integer and promoting to Float otherwise.
func addStep(cur, step values.Value) values.Value {
	if ci, ok := cur.(*values.Integer); ok {
		if si, ok := step.(*values.Integer); ok {
			return &values.Integer{Value: ci.Value + si.Value}
		}
	}
	curF, _ := asFloat(cur)
	stepF, _ := asFloat(step)
	return &values.Float{Value: curF + stepF}
}
