/*
File    : polyscript/eval/evaluator.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"fmt"
	"io"
	"os"

	"github.com/akashmaji946/polyscript/ast"
	"github.com/akashmaji946/polyscript/diag"
	"github.com/akashmaji946/polyscript/stdlib"
	"github.com/akashmaji946/polyscript/values"
)

// Evaluator walks an AST against a chain of Contexts, producing Values.
// It owns the Writer that print/clear write to and the source text/file
// name used to build diagnostics.
type Evaluator struct {
	Global   *values.Context
	Writer   io.Writer
	Source   string
	FileName string
}

// NewEvaluator creates a fresh evaluator with a bootstrapped global context:
// the builtin registry, and the fixed globals null/true/false/__name__.
func NewEvaluator(source, fileName string) *Evaluator {
	ev := &Evaluator{
		Global:   values.NewGlobalContext(),
		Writer:   os.Stdout,
		Source:   source,
		FileName: fileName,
	}
	ev.bootstrap()
	return ev
}

func (e *Evaluator) bootstrap() {
	for _, b := range stdlib.Registry {
		e.Global.Define(b.Name, &values.BuiltIn{Name: b.Name, ParamNames: b.ParamNames}, false)
	}
	e.Global.Define("null", &values.Null{}, false)
	e.Global.Define("true", values.True(), false)
	e.Global.Define("false", values.False(), false)
	e.Global.Define("__name__", &values.String{Value: "main"}, false)
}

// SetWriter redirects builtin output (print/clear), e.g. for test capture.
func (e *Evaluator) SetWriter(w io.Writer) {
	e.Writer = w
}

// runtimeError builds a *values.Error carrying a RuntimeError diagnostic at
// span, with ctx's trail attached as the call traceback.
func (e *Evaluator) runtimeError(ctx *values.Context, span ast.Span, format string, args ...any) *values.Error {
	d := diag.New(diag.RuntimeError, fmt.Sprintf(format, args...), span.Start, span.End)
	d.WithTraceback(ctx.Trail())
	return &values.Error{Diagnostic: d}
}

// EvalProgram runs every top-level statement of block in ctx, collecting
// each statement's result. It stops early if a statement produces an error
// or a control-flow signal, returning what was collected so far plus that
// terminal outcome (nil outcome means the block ran to completion).
func (e *Evaluator) EvalProgram(block *ast.Block, ctx *values.Context) (results []values.Value, outcome values.Value) {
	for _, stmt := range block.Statements {
		v := e.Eval(stmt, ctx)
		if values.IsError(v) || values.IsSignal(v) {
			return results, v
		}
		results = append(results, v)
	}
	return results, nil
}

// evalBlock runs block as a nested scope body (if/while/for/function/
// namespace/object bodies): it threads through errors and signals
// immediately rather than collecting every intermediate result, since only
// the top-level program cares about the full list.
func (e *Evaluator) evalBlock(block *ast.Block, ctx *values.Context) values.Value {
	var last values.Value = &values.Null{}
	for _, stmt := range block.Statements {
		last = e.Eval(stmt, ctx)
		if values.IsError(last) || values.IsSignal(last) {
			return last
		}
	}
	return last
}

// Eval dispatches on the concrete type of node and returns the resulting
// Value, or a control-flow signal / *values.Error that the caller must
// check for with values.IsSignal / values.IsError before using the result.
func (e *Evaluator) Eval(node ast.Node, ctx *values.Context) values.Value {
	switch n := node.(type) {
	case *ast.Block:
		return e.evalBlock(n, ctx)
	case *ast.IntLit:
		return &values.Integer{Value: n.Value}
	case *ast.FloatLit:
		return &values.Float{Value: n.Value}
	case *ast.StringLit:
		return &values.String{Value: n.Value}
	case *ast.NullLit:
		return &values.Null{}
	case *ast.ListLit:
		return e.evalListLit(n, ctx)
	case *ast.VarAssign:
		return e.evalVarAssign(n, ctx)
	case *ast.VarAccess:
		return e.evalVarAccess(n, ctx)
	case *ast.Attribute:
		return e.evalAttribute(n, ctx)
	case *ast.AttributeAssign:
		return e.evalAttributeAssign(n, ctx)
	case *ast.IndexAccess:
		return e.evalIndexAccess(n, ctx)
	case *ast.BinOp:
		return e.evalBinOp(n, ctx)
	case *ast.UnaryOp:
		return e.evalUnaryOp(n, ctx)
	case *ast.If:
		return e.evalIf(n, ctx)
	case *ast.While:
		return e.evalWhile(n, ctx)
	case *ast.For:
		return e.evalFor(n, ctx)
	case *ast.FnDecl:
		return e.evalFnDecl(n, ctx)
	case *ast.Call:
		return e.evalCall(n, ctx)
	case *ast.Return:
		return e.evalReturn(n, ctx)
	case *ast.Break:
		return values.BreakSignal{}
	case *ast.Continue:
		return values.ContinueSignal{}
	case *ast.EnumDecl:
		return e.evalEnumDecl(n, ctx)
	case *ast.NamespaceDecl:
		return e.evalNamespaceDecl(n, ctx)
	case *ast.ObjectDecl:
		return e.evalObjectDecl(n, ctx)
	case *ast.New:
		return e.evalNew(n, ctx)
	default:
		return e.runtimeError(ctx, node.Pos(), "unhandled node type %T", node)
	}
}
