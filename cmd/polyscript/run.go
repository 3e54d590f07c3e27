/*
File    : polyscript/cmd/polyscript/run.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/akashmaji946/polyscript/eval"
	"github.com/akashmaji946/polyscript/lexer"
	"github.com/akashmaji946/polyscript/parser"
	"github.com/akashmaji946/polyscript/values"
)

var errorColor = color.New(color.FgRed)

// runFile lexes, optionally dumps tokens, parses, and evaluates a source
// file. Unlike the REPL, file mode never prints the trailing statement
// value; a lex error is returned to the caller, and a parse or runtime error
// is printed to stderr before the process exits with status 1.
func runFile(path string) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not read file %q: %w", path, err)
	}

	tokens, lexErr := lexer.NewLexer(string(source), path).ConsumeTokens()
	if lexErr != nil {
		return lexErr
	}
	if showTokens {
		dumpTokens(os.Stdout, tokens)
	}

	block, parseErr := parser.NewParser(tokens).Parse()
	if parseErr != nil {
		errorColor.Fprintln(os.Stderr, parseErr.Format(string(source)))
		os.Exit(1)
	}

	ev := eval.NewEvaluator(string(source), path)
	ev.SetWriter(os.Stdout)
	_, outcome := ev.EvalProgram(block, ev.Global)
	if values.IsError(outcome) {
		errorColor.Fprintln(os.Stderr, outcome.(*values.Error).Diagnostic.Format(string(source)))
		os.Exit(1)
	}
	return nil
}
