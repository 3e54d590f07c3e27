/*
File    : polyscript/stdlib/builtins.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package stdlib holds the closed set of built-in functions Polyscript
defines: print, clear, the isXxx family, and length. There is no standard
library beyond these — no arrays/maps/sets/json/http/regex/crypto module —
so this package stays deliberately small: nothing here beyond what a
Polyscript program can actually call.
*/
package stdlib

import (
	"io"

	"github.com/akashmaji946/polyscript/values"
)

// CallbackFunc is the shape every built-in implements. writer is where
// print/clear send their output; args are already-evaluated argument values.
type CallbackFunc func(writer io.Writer, args ...values.Value) values.Value

// Builtin pairs a name with its implementation and declared parameter names
// (used for BuiltIn.ParamNames / arity display, mirroring how Function
// exposes Params).
type Builtin struct {
	Name       string
	ParamNames []string
	Callback   CallbackFunc
}

// Registry is every built-in function Polyscript defines, in bootstrap
// order: print, clear, then the isXxx family, then length.
var Registry = []*Builtin{
	{Name: "print", ParamNames: []string{"__input"}, Callback: biPrint},
	{Name: "clear", ParamNames: nil, Callback: biClear},
	{Name: "isInteger", ParamNames: []string{"__input"}, Callback: biIsType(values.IntegerType)},
	{Name: "isFloat", ParamNames: []string{"__input"}, Callback: biIsType(values.FloatType)},
	{Name: "isString", ParamNames: []string{"__input"}, Callback: biIsType(values.StringType)},
	{Name: "isList", ParamNames: []string{"__input"}, Callback: biIsType(values.ListType)},
	{Name: "isFunction", ParamNames: []string{"__input"}, Callback: biIsFunction},
	{Name: "isEnum", ParamNames: []string{"__input"}, Callback: biIsType(values.EnumType)},
	{Name: "isNull", ParamNames: []string{"__input"}, Callback: biIsType(values.NullType)},
	{Name: "length", ParamNames: []string{"__input"}, Callback: biLength},
}

// Lookup finds a registered builtin by name.
func Lookup(name string) (*Builtin, bool) {
	for _, b := range Registry {
		if b.Name == name {
			return b, true
		}
	}
	return nil, false
}

// biPrint writes __input's display form with no trailing newline and
// returns Null.
func biPrint(writer io.Writer, args ...values.Value) values.Value {
	if len(args) != 1 {
		return nil
	}
	io.WriteString(writer, args[0].Display())
	return &values.Null{}
}

// biClear writes the ANSI clear-screen sequence.
func biClear(writer io.Writer, args ...values.Value) values.Value {
	io.WriteString(writer, "\x1b[H\x1b[2J")
	return &values.Null{}
}

// biIsType returns a CallbackFunc testing args[0]'s Type() against want.
func biIsType(want values.Type) CallbackFunc {
	return func(writer io.Writer, args ...values.Value) values.Value {
		if len(args) != 1 {
			return nil
		}
		if args[0].Type() == want {
			return values.True()
		}
		return values.False()
	}
}

func biIsFunction(writer io.Writer, args ...values.Value) values.Value {
	if len(args) != 1 {
		return nil
	}
	switch args[0].Type() {
	case values.FunctionType, values.BuiltInType:
		return values.True()
	default:
		return values.False()
	}
}

// biLength returns the length of a String or List as an Integer; any other
// argument type is a RuntimeError raised by the caller (eval has the
// position/context needed to build one; stdlib returns nil to signal "not
// applicable here" so eval knows to raise it itself).
func biLength(writer io.Writer, args ...values.Value) values.Value {
	if len(args) != 1 {
		return nil
	}
	switch v := args[0].(type) {
	case *values.String:
		return &values.Integer{Value: int64(len(v.Value))}
	case *values.List:
		return &values.Integer{Value: int64(len(v.Elements))}
	default:
		return nil
	}
}
