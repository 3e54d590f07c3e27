/*
File    : polyscript/values/error.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package values

import "github.com/akashmaji946/polyscript/diag"

// ErrorValueType is the Value wrapper a RuntimeError takes while it
// propagates through Eval's return values, exactly like any other Value
// (see the note in signal.go — RuntimeError propagation reuses the
// same "just return it" mechanism as control-flow signals, but is never
// confused with one: IsSignal never reports true for this type).
const ErrorValueType Type = "error"

// Error carries a *diag.Diagnostic of Kind RuntimeError as it bubbles up
// through nested Eval calls. Only the top-level driver ever formats and
// prints it (diag.Diagnostic.Format); everywhere else in eval it's just
// checked for with IsError and returned immediately.
type Error struct {
	Diagnostic *diag.Diagnostic
}

func (e *Error) Type() Type { return ErrorValueType }
func (e *Error) Display() string { return e.Diagnostic.Error() }
func (e *Error) Inspect() string { return e.Display() }
func (e *Error) Truthy() bool { return false }

// IsError reports whether v is a runtime error value.
func IsError(v Value) bool {
	return v != nil && v.Type() == ErrorValueType
}
