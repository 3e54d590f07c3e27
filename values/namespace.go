/*
File    : polyscript/values/namespace.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package values

import "fmt"

// Namespace groups declarations under a name, e.g. `namespace Math { ... }`.
// Its Inner context holds whatever was declared in its body; attribute
// access (Math.pi) looks a name up in Inner without walking further up the
// scope chain.
type Namespace struct {
	Name  string
	Inner *Context
}

func (n *Namespace) Type() Type { return NamespaceType }
func (n *Namespace) Display() string { return fmt.Sprintf("<namespace %s>", n.Name) }
func (n *Namespace) Inspect() string { return n.Display() }
func (n *Namespace) Truthy() bool { return true }

// Object is an instance produced by `new Name(args)`: Inner is the
// instance's own attribute bag, seeded by re-running the object
// declaration's body in a fresh context for every `new`. See eval's
// evalNew.
type Object struct {
	Name  string
	Inner *Context
}

func (o *Object) Type() Type { return ObjectType }
func (o *Object) Display() string { return fmt.Sprintf("<object %s>", o.Name) }
func (o *Object) Inspect() string { return o.Display() }
func (o *Object) Truthy() bool { return true }
