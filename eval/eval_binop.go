/*
File    : polyscript/eval/eval_binop.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"math"

	"github.com/akashmaji946/polyscript/ast"
	"github.com/akashmaji946/polyscript/lexer"
	"github.com/akashmaji946/polyscript/values"
)

// evalBinOp evaluates n.Left and n.Right and dispatches on n.Op and their
// runtime types. `and`/`or` are handled before the right operand is
// evaluated so they short-circuit.
func (e *Evaluator) evalBinOp(n *ast.BinOp, ctx *values.Context) values.Value {
	if n.Op.Is(lexer.KEYWORD, "and") || n.Op.Is(lexer.KEYWORD, "or") {
		return e.evalLogical(n, ctx)
	}

	left := e.Eval(n.Left, ctx)
	if values.IsError(left) || values.IsSignal(left) {
		return left
	}
	right := e.Eval(n.Right, ctx)
	if values.IsError(right) || values.IsSignal(right) {
		return right
	}

	switch n.Op.Kind {
	case lexer.PLUS:
		return e.evalAdd(ctx, n.Span, left, right)
	case lexer.MINUS, lexer.MUL, lexer.DIV, lexer.MOD, lexer.POW:
		return e.evalArith(ctx, n.Span, n.Op.Kind, left, right)
	case lexer.EE:
		return boolValue(valuesEqual(left, right))
	case lexer.NE:
		return boolValue(!valuesEqual(left, right))
	case lexer.LT, lexer.GT, lexer.LTE, lexer.GTE:
		return e.evalCompare(ctx, n.Span, n.Op.Kind, left, right)
	default:
		return e.runtimeError(ctx, n.Span, "unknown binary operator %s", n.Op.Lexeme)
	}
}

func (e *Evaluator) evalLogical(n *ast.BinOp, ctx *values.Context) values.Value {
	left := e.Eval(n.Left, ctx)
	if values.IsError(left) || values.IsSignal(left) {
		return left
	}
	if n.Op.Lexeme == "and" && !left.Truthy() {
		return boolValue(false)
	}
	if n.Op.Lexeme == "or" && left.Truthy() {
		return boolValue(true)
	}
	right := e.Eval(n.Right, ctx)
	if values.IsError(right) || values.IsSignal(right) {
		return right
	}
	return boolValue(right.Truthy())
}

func boolValue(b bool) *values.Integer {
	if b {
		return values.True()
	}
	return values.False()
}

func asFloat(v values.Value) (float64, bool) {
	switch t := v.(type) {
	case *values.Integer:
		return float64(t.Value), true
	case *values.Float:
		return t.Value, true
	default:
		return 0, false
	}
}

func bothNumeric(a, b values.Value) bool {
	_, aok := a.(*values.Integer)
	_, bok := a.(*values.Float)
	_, cok := b.(*values.Integer)
	_, dok := b.(*values.Float)
	return (aok || bok) && (cok || dok)
}

// evalAdd implements the `+` row of the arithmetic dispatch table: numeric
// promotion, string concatenation, and List append/concat.
func (e *Evaluator) evalAdd(ctx *values.Context, span ast.Span, left, right values.Value) values.Value {
	switch l := left.(type) {
	case *values.Integer:
		if r, ok := right.(*values.Integer); ok {
			return &values.Integer{Value: l.Value + r.Value}
		}
		if rf, ok := asFloat(right); ok {
			return &values.Float{Value: float64(l.Value) + rf}
		}
	case *values.Float:
		if rf, ok := asFloat(right); ok {
			return &values.Float{Value: l.Value + rf}
		}
	case *values.String:
		if r, ok := right.(*values.String); ok {
			return &values.String{Value: l.Value + r.Value}
		}
	case *values.List:
		if r, ok := right.(*values.List); ok {
			elems := make([]values.Value, 0, len(l.Elements)+len(r.Elements))
			elems = append(elems, l.Elements...)
			elems = append(elems, r.Elements...)
			return &values.List{Elements: elems}
		}
		elems := make([]values.Value, 0, len(l.Elements)+1)
		elems = append(elems, l.Elements...)
		elems = append(elems, right)
		return &values.List{Elements: elems}
	}
	return e.runtimeError(ctx, span, "Invalid operation: %s + %s", left.Type(), right.Type())
}

// evalArith implements `-`, `*`, `/`, `%`, `^` across Integer/Float, and
// List×Int repetition for `*`.
func (e *Evaluator) evalArith(ctx *values.Context, span ast.Span, op lexer.Kind, left, right values.Value) values.Value {
	if op == lexer.MUL {
		if list, ok := left.(*values.List); ok {
			if n, ok := right.(*values.Integer); ok {
				return repeatList(list, n.Value)
			}
		}
		if list, ok := right.(*values.List); ok {
			if n, ok := left.(*values.Integer); ok {
				return repeatList(list, n.Value)
			}
		}
	}

	li, liok := left.(*values.Integer)
	ri, riok := right.(*values.Integer)
	if liok && riok {
		switch op {
		case lexer.MINUS:
			return &values.Integer{Value: li.Value - ri.Value}
		case lexer.MUL:
			return &values.Integer{Value: li.Value * ri.Value}
		case lexer.DIV:
			if ri.Value == 0 {
				return e.runtimeError(ctx, span, "Division by zero")
			}
			if li.Value%ri.Value == 0 {
				return &values.Integer{Value: li.Value / ri.Value}
			}
			return &values.Float{Value: float64(li.Value) / float64(ri.Value)}
		case lexer.MOD:
			if ri.Value == 0 {
				return e.runtimeError(ctx, span, "Division by zero")
			}
			return &values.Integer{Value: li.Value % ri.Value}
		case lexer.POW:
			return &values.Integer{Value: intPow(li.Value, ri.Value)}
		}
	}

	if bothNumeric(left, right) {
		lf, _ := asFloat(left)
		rf, _ := asFloat(right)
		switch op {
		case lexer.MINUS:
			return &values.Float{Value: lf - rf}
		case lexer.MUL:
			return &values.Float{Value: lf * rf}
		case lexer.DIV:
			if rf == 0 {
				return e.runtimeError(ctx, span, "Division by zero")
			}
			return &values.Float{Value: lf / rf}
		case lexer.MOD:
			if rf == 0 {
				return e.runtimeError(ctx, span, "Division by zero")
			}
			return &values.Float{Value: floatMod(lf, rf)}
		case lexer.POW:
			return &values.Float{Value: floatPow(lf, rf)}
		}
	}

	return e.runtimeError(ctx, span, "Invalid operation: %s %s %s", left.Type(), op, right.Type())
}

func floatMod(a, b float64) float64 {
	return math.Mod(a, b)
}

func floatPow(a, b float64) float64 {
	return math.Pow(a, b)
}

func repeatList(list *values.List, times int64) values.Value {
	if times < 0 {
		times = 0
	}
	elems := make([]values.Value, 0, int64(len(list.Elements))*times)
	for i := int64(0); i < times; i++ {
		elems = append(elems, list.Elements...)
	}
	return &values.List{Elements: elems}
}

func intPow(base, exp int64) int64 {
	if exp < 0 {
		return 0
	}
	result := int64(1)
	for i := int64(0); i < exp; i++ {
		result *= base
	}
	return result
}

func (e *Evaluator) evalCompare(ctx *values.Context, span ast.Span, op lexer.Kind, left, right values.Value) values.Value {
	if ls, ok := left.(*values.String); ok {
		if rs, ok := right.(*values.String); ok {
			return boolValue(compareStrings(op, ls.Value, rs.Value))
		}
	}
	if bothNumeric(left, right) {
		lf, _ := asFloat(left)
		rf, _ := asFloat(right)
		return boolValue(compareFloats(op, lf, rf))
	}
	return e.runtimeError(ctx, span, "Invalid operation: %s %s %s", left.Type(), op, right.Type())
}

func compareFloats(op lexer.Kind, a, b float64) bool {
	switch op {
	case lexer.LT:
		return a < b
	case lexer.GT:
		return a > b
	case lexer.LTE:
		return a <= b
	case lexer.GTE:
		return a >= b
	}
	return false
}

func compareStrings(op lexer.Kind, a, b string) bool {
	switch op {
	case lexer.LT:
		return a < b
	case lexer.GT:
		return a > b
	case lexer.LTE:
		return a <= b
	case lexer.GTE:
		return a >= b
	}
	return false
}

// valuesEqual implements `==`/`!=`: numeric coercion, deep element-wise List
// comparison, and false for any other cross-type comparison.
func valuesEqual(left, right values.Value) bool {
	if bothNumeric(left, right) {
		lf, _ := asFloat(left)
		rf, _ := asFloat(right)
		return lf == rf
	}
	switch l := left.(type) {
	case *values.String:
		r, ok := right.(*values.String)
		return ok && l.Value == r.Value
	case *values.Null:
		_, ok := right.(*values.Null)
		return ok
	case *values.List:
		r, ok := right.(*values.List)
		if !ok || len(l.Elements) != len(r.Elements) {
			return false
		}
		for i := range l.Elements {
			if !valuesEqual(l.Elements[i], r.Elements[i]) {
				return false
			}
		}
		return true
	case *values.EnumValue:
		r, ok := right.(*values.EnumValue)
		return ok && l.EnumName == r.EnumName && l.Member == r.Member
	default:
		return left == right
	}
}
