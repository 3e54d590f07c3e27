/*
File    : polyscript/eval/eval_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/polyscript/ast"
	"github.com/akashmaji946/polyscript/lexer"
	"github.com/akashmaji946/polyscript/values"
)

func (e *Evaluator) evalListLit(n *ast.ListLit, ctx *values.Context) values.Value {
	elements := make([]values.Value, len(n.Elements))
	for i, el := range n.Elements {
		v := e.Eval(el, ctx)
		if values.IsError(v) || values.IsSignal(v) {
			return v
		}
		elements[i] = v
	}
	return &values.List{Elements: elements}
}

func (e *Evaluator) evalVarAssign(n *ast.VarAssign, ctx *values.Context) values.Value {
	v := e.Eval(n.Expr, ctx)
	if values.IsError(v) || values.IsSignal(v) {
		return v
	}
	if n.Kind == ast.Declare {
		ctx.Define(n.Name, v, n.Writable)
		return v
	}
	switch ctx.Assign(n.Name, v) {
	case values.Assigned:
		return v
	case values.Immutable:
		return e.runtimeError(ctx, n.Span, "cannot assign to const name %q", n.Name)
	default:
		return e.runtimeError(ctx, n.Span, "name %q is not defined", n.Name)
	}
}

func (e *Evaluator) evalVarAccess(n *ast.VarAccess, ctx *values.Context) values.Value {
	v, ok := ctx.Lookup(n.Name)
	if !ok {
		return e.runtimeError(ctx, n.Span, "name %q is not defined", n.Name)
	}
	return v
}

// innerContextOf returns the context that owns a target's member names:
// a Namespace's or Object's Inner context, or an Enum treated specially by
// the caller. Any other value type has no attributes.
func innerContextOf(v values.Value) (*values.Context, bool) {
	switch t := v.(type) {
	case *values.Namespace:
		return t.Inner, true
	case *values.Object:
		return t.Inner, true
	default:
		return nil, false
	}
}

func (e *Evaluator) evalAttribute(n *ast.Attribute, ctx *values.Context) values.Value {
	target := e.Eval(n.Target, ctx)
	if values.IsError(target) || values.IsSignal(target) {
		return target
	}
	if enum, ok := target.(*values.Enum); ok {
		idx := enum.IndexOf(n.Name)
		if idx < 0 {
			return e.runtimeError(ctx, n.Span, "enum %s has no member %q", enum.Name, n.Name)
		}
		return &values.EnumValue{EnumName: enum.Name, Member: n.Name, Index: idx}
	}
	inner, ok := innerContextOf(target)
	if !ok {
		return e.runtimeError(ctx, n.Span, "value of type %s has no attributes", target.Type())
	}
	v, ok := inner.Lookup(n.Name)
	if !ok {
		return e.runtimeError(ctx, n.Span, "no attribute %q on %s", n.Name, target.Display())
	}
	return v
}

func (e *Evaluator) evalAttributeAssign(n *ast.AttributeAssign, ctx *values.Context) values.Value {
	target := e.Eval(n.Target, ctx)
	if values.IsError(target) || values.IsSignal(target) {
		return target
	}
	inner, ok := innerContextOf(target)
	if !ok {
		return e.runtimeError(ctx, n.Span, "value of type %s has no attributes", target.Type())
	}
	v := e.Eval(n.Expr, ctx)
	if values.IsError(v) || values.IsSignal(v) {
		return v
	}
	switch inner.Assign(n.Name, v) {
	case values.Assigned:
		return v
	case values.Immutable:
		return e.runtimeError(ctx, n.Span, "cannot assign to const attribute %q", n.Name)
	default:
		return e.runtimeError(ctx, n.Span, "no attribute %q on %s", n.Name, target.Display())
	}
}

// evalIndexAccess implements list indexing's equivalent call form,
// `target.(index)`: index must be an Integer in range, else RuntimeError.
func (e *Evaluator) evalIndexAccess(n *ast.IndexAccess, ctx *values.Context) values.Value {
	target := e.Eval(n.Target, ctx)
	if values.IsError(target) || values.IsSignal(target) {
		return target
	}
	list, ok := target.(*values.List)
	if !ok {
		return e.runtimeError(ctx, n.Span, "cannot index into value of type %s", target.Type())
	}
	idxVal := e.Eval(n.Index, ctx)
	if values.IsError(idxVal) || values.IsSignal(idxVal) {
		return idxVal
	}
	idx, ok := idxVal.(*values.Integer)
	if !ok {
		return e.runtimeError(ctx, n.Span, "list index must be an integer, got %s", idxVal.Type())
	}
	if idx.Value < 0 || int(idx.Value) >= len(list.Elements) {
		return e.runtimeError(ctx, n.Span, "list index %d out of range (length %d)", idx.Value, len(list.Elements))
	}
	return list.Elements[idx.Value]
}

func (e *Evaluator) evalUnaryOp(n *ast.UnaryOp, ctx *values.Context) values.Value {
	operand := e.Eval(n.Operand, ctx)
	if values.IsError(operand) || values.IsSignal(operand) {
		return operand
	}
	switch {
	case n.Op.Is(lexer.KEYWORD, "not"):
		if operand.Truthy() {
			return values.False()
		}
		return values.True()
	case n.Op.Kind == lexer.MINUS:
		switch v := operand.(type) {
		case *values.Integer:
			return &values.Integer{Value: -v.Value}
		case *values.Float:
			return &values.Float{Value: -v.Value}
		default:
			return e.runtimeError(ctx, n.Span, "unary - not defined for %s", operand.Type())
		}
	case n.Op.Kind == lexer.PLUS:
		switch operand.(type) {
		case *values.Integer, *values.Float:
			return operand
		default:
			return e.runtimeError(ctx, n.Span, "unary + not defined for %s", operand.Type())
		}
	default:
		return e.runtimeError(ctx, n.Span, "unknown unary operator %s", n.Op.Lexeme)
	}
}
