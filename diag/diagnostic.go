/*
File    : polyscript/diag/diagnostic.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package diag formats the four error kinds the language defines
(IllegalCharError, ExpectedCharError, InvalidSyntaxError, RuntimeError) into
a diagnostic layout: a header line, a file/line/column line, the offending
source line, and a caret underline. RuntimeError additionally carries a
call traceback.

The lexer reports a *lexer.Error (converted by FromLexError), the parser
returns a *Diagnostic directly, and eval carries one inside a values.Error;
only the top-level driver (cmd/polyscript, repl) ever formats and prints one.
Control-flow signals (return/break/continue) are never diagnostics — they
are values of package values, handled by package eval, and never reach this
package.
*/
package diag

import (
	"fmt"
	"strings"

	"github.com/akashmaji946/polyscript/lexer"
)

// Kind is the closed set of error categories the language defines.
type Kind string

const (
	IllegalCharError   Kind = "IllegalCharError"
	ExpectedCharError  Kind = "ExpectedCharError"
	InvalidSyntaxError Kind = "InvalidSyntaxError"
	RuntimeError       Kind = "RuntimeError"
)

// Diagnostic is a fully formed, printable error: what kind it is, a
// human-readable message, the span it applies to, and (for RuntimeError) the
// chain of Context display names active when it was raised, innermost last.
type Diagnostic struct {
	Kind      Kind
	Message   string
	Start     lexer.Position
	End       lexer.Position
	Traceback []string
}

func New(kind Kind, message string, start, end lexer.Position) *Diagnostic {
	return &Diagnostic{Kind: kind, Message: message, Start: start, End: end}
}

// WithTraceback attaches a call traceback (innermost context last) and
// returns the same diagnostic for chaining.
func (d *Diagnostic) WithTraceback(names []string) *Diagnostic {
	d.Traceback = names
	return d
}

func (d *Diagnostic) Error() string {
	return fmt.Sprintf("%s: %s", d.Kind, d.Message)
}

// FromLexError adapts a *lexer.Error (a lexical failure, which carries only
// a single point, not a span) into a Diagnostic.
func FromLexError(err *lexer.Error) *Diagnostic {
	kind := InvalidSyntaxError
	switch err.Kind {
	case lexer.IllegalChar:
		kind = IllegalCharError
	case lexer.ExpectedChar:
		kind = ExpectedCharError
	}
	return New(kind, err.Message, err.Position, err.Position)
}

// Format renders the full multi-line diagnostic:
//
//	<ErrorKind>: <message>
//	File <file>, line <L>, column <C>
//	    <source line>
//	    <caret underline>
//
// source is the complete original text the position was computed against,
// used to recover and underline the offending line.
func (d *Diagnostic) Format(source string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s\n", d.Kind, d.Message)
	fmt.Fprintf(&b, "File %s, line %d, column %d\n", d.Start.FileName, d.Start.Line, d.Start.Column)

	lines := strings.Split(source, "\n")
	if d.Start.Line-1 >= 0 && d.Start.Line-1 < len(lines) {
		line := lines[d.Start.Line-1]
		fmt.Fprintf(&b, "    %s\n", line)

		width := d.End.Column - d.Start.Column
		if width < 1 {
			width = 1
		}
		caret := strings.Repeat(" ", max0(d.Start.Column-1)) + strings.Repeat("^", width)
		fmt.Fprintf(&b, "    %s", caret)
	}

	if len(d.Traceback) > 0 {
		b.WriteString("\nTraceback (innermost last):\n")
		for _, name := range d.Traceback {
			fmt.Fprintf(&b, "  in %s\n", name)
		}
	}

	return b.String()
}

func max0(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
