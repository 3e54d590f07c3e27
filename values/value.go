/*
File    : polyscript/values/value.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package values implements the closed set of runtime values: Null, Integer,
Float, String, List, Function, BuiltIn, Enum, EnumValue, Namespace, Object —
plus the Context/SymbolTable scope chain that binds names to them (kept in
this package, not a separate one, because Object and Namespace values each
hold a *Context and Context holds Values; splitting them would just
reproduce an import cycle this module avoids by construction).

Lists and Objects are mutable and shared by reference: mutating a List or
an Object's attribute is observable through every live reference to it.
Every other value is effectively immutable; operators return fresh values
rather than mutating operands in place.
*/
package values

import (
	"strconv"
	"strings"
)

// Type names the runtime type of a Value, used for isXxx builtins and error
// messages.
type Type string

const (
	NullType      Type = "null"
	IntegerType   Type = "integer"
	FloatType     Type = "float"
	StringType    Type = "string"
	ListType      Type = "list"
	FunctionType  Type = "function"
	BuiltInType   Type = "builtin"
	EnumType      Type = "enum"
	EnumValueType Type = "enumvalue"
	NamespaceType Type = "namespace"
	ObjectType    Type = "object"
)

// Value is implemented by every runtime value in the language.
type Value interface {
	Type() Type
	// Display is the bare form print()/the REPL write: no surrounding quotes
	// on strings, no type tag.
	Display() string
	// Inspect is the nested form used when a value appears as a list
	// element: strings are quoted, otherwise identical to Display.
	Inspect() string
	// Truthy is the projection onto {true, false} used by conditionals and
	// short-circuiting and/or.
	Truthy() bool
}

// Null is the sole value of NullType.
type Null struct{}

func (Null) Type() Type { return NullType }
func (Null) Display() string { return "null" }
func (Null) Inspect() string { return "null" }
func (Null) Truthy() bool { return false }

// Integer wraps an int64. Booleans are Integers with value 0 or 1; True()
// and False() are the stable aliases for those two.
type Integer struct {
	Value int64
}

func True() *Integer { return &Integer{Value: 1} }
func False() *Integer { return &Integer{Value: 0} }

func (i *Integer) Type() Type { return IntegerType }
func (i *Integer) Display() string { return strconv.FormatInt(i.Value, 10) }
func (i *Integer) Inspect() string { return i.Display() }
func (i *Integer) Truthy() bool { return i.Value != 0 }

// Float wraps a float64, displayed in its shortest round-trip form: 'g'
// with -1 precision is strconv's shortest-round-trip mode, falling back to
// an appended ".0" when that form has no decimal point or exponent so a
// Float never prints indistinguishably from an Integer.
type Float struct {
	Value float64
}

func (f *Float) Type() Type { return FloatType }
func (f *Float) Display() string { return formatFloat(f.Value) }
func (f *Float) Inspect() string { return f.Display() }
func (f *Float) Truthy() bool { return f.Value != 0 }

func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// String wraps a Go string.
type String struct {
	Value string
}

func (s *String) Type() Type { return StringType }
func (s *String) Display() string { return s.Value }
func (s *String) Inspect() string { return strconv.Quote(s.Value) }
func (s *String) Truthy() bool { return s.Value != "" }

// List is a mutable, shared-by-reference sequence of Values.
type List struct {
	Elements []Value
}

func (l *List) Type() Type { return ListType }
func (l *List) Display() string {
	parts := make([]string, len(l.Elements))
	for i, e := range l.Elements {
		parts[i] = e.Inspect()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
func (l *List) Inspect() string { return l.Display() }
func (l *List) Truthy() bool { return len(l.Elements) > 0 }
