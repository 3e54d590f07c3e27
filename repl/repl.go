/*
File    : polyscript/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package repl implements the Read-Eval-Print Loop: one line in, one
evaluation against a persistent global context, one result or diagnostic
out. A line that fails to lex or parse never touches the evaluator, so a
bad line leaves every prior binding untouched.
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/akashmaji946/polyscript/diag"
	"github.com/akashmaji946/polyscript/eval"
	"github.com/akashmaji946/polyscript/lexer"
	"github.com/akashmaji946/polyscript/parser"
	"github.com/akashmaji946/polyscript/values"
)

const (
	version = "V0.4.0"
	prompt  = "> "
	exit    = "exit()"
)

var (
	versionColor = color.New(color.FgHiBlue)
	resultColor  = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
	nullColor    = color.New(color.Faint)
)

// Repl reads lines against a single persistent Evaluator, so bindings made
// on one line are visible to every line after it.
type Repl struct {
	Evaluator *eval.Evaluator
}

func NewRepl() *Repl {
	ev := eval.NewEvaluator("", "<repl>")
	return &Repl{Evaluator: ev}
}

// PrintBanner writes the startup banner, with the version token colored
// independently of the rest of the line.
func (r *Repl) PrintBanner(writer io.Writer) {
	io.WriteString(writer, "Polyscript ")
	versionColor.Fprint(writer, version)
	io.WriteString(writer, " | use exit() to exit.\n")
}

// Start runs the loop over reader/writer until exit() is entered or the
// reader is exhausted (EOF / Ctrl+D).
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.Evaluator.SetWriter(writer)
	r.PrintBanner(writer)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:      prompt,
		Stdin:       io.NopCloser(reader),
		Stdout:      writer,
		HistoryFile: "",
	})
	if err != nil {
		errorColor.Fprintf(writer, "could not start input: %v\n", err)
		return
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF or readline.ErrInterrupt
			return
		}
		line = strings.TrimSpace(line)

		if line == "" {
			nullColor.Fprintln(writer, "null")
			continue
		}
		if line == exit {
			return
		}

		r.evalLine(writer, line)
	}
}

// evalLine lexes, parses, and evaluates one line against the persistent
// global context, printing the last statement's value (or a FunctionReturn
// escaping to top level) in yellow, or a diagnostic in red.
func (r *Repl) evalLine(writer io.Writer, line string) {
	tokens, lexErr := lexer.NewLexer(line, "<repl>").ConsumeTokens()
	if lexErr != nil {
		if le, ok := lexErr.(*lexer.Error); ok {
			errorColor.Fprintln(writer, diag.FromLexError(le).Format(line))
			return
		}
		errorColor.Fprintln(writer, lexErr)
		return
	}

	block, parseErr := parser.NewParser(tokens).Parse()
	if parseErr != nil {
		errorColor.Fprintln(writer, parseErr.Format(line))
		return
	}

	results, outcome := r.Evaluator.EvalProgram(block, r.Evaluator.Global)
	if values.IsError(outcome) {
		errorColor.Fprintln(writer, outcome.(*values.Error).Diagnostic.Format(line))
		return
	}
	if ret, ok := outcome.(*values.ReturnSignal); ok {
		resultColor.Fprintln(writer, ret.Display())
		return
	}
	if outcome != nil {
		// A bare break/continue escaping to top level is swallowed silently.
		return
	}
	if len(results) == 0 {
		nullColor.Fprintln(writer, "null")
		return
	}
	resultColor.Fprintln(writer, results[len(results)-1].Display())
}
