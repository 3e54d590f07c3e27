/*
File    : polyscript/values/enum.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package values

import "fmt"

// Enum is a named, closed list of member identifiers declared with
// `enum Name { a, b, c }`. Attribute access on an Enum (Name.Member) yields
// an EnumValue carrying the member's position in Members.
type Enum struct {
	Name    string
	Members []string
}

func (e *Enum) Type() Type { return EnumType }
func (e *Enum) Display() string { return fmt.Sprintf("<enum %s>", e.Name) }
func (e *Enum) Inspect() string { return e.Display() }
func (e *Enum) Truthy() bool { return true }

// IndexOf returns the position of member in Members, or -1 if absent.
func (e *Enum) IndexOf(member string) int {
	for i, m := range e.Members {
		if m == member {
			return i
		}
	}
	return -1
}

// EnumValue is one member of an Enum, carrying the owning enum's name so it
// displays as "Name.Member" without holding a pointer back to the Enum
// (EnumValues are meant to be cheap, comparable-by-value tokens).
type EnumValue struct {
	EnumName string
	Member   string
	Index    int
}

func (v *EnumValue) Type() Type { return EnumValueType }
func (v *EnumValue) Display() string { return fmt.Sprintf("%s.%s", v.EnumName, v.Member) }
func (v *EnumValue) Inspect() string { return v.Display() }
func (v *EnumValue) Truthy() bool { return true }
