/*
File    : polyscript/cmd/polyscript/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package main wires the cobra command tree for the polyscript binary: a bare
REPL, `run <file>` for file execution, and `serve <port>` for a TCP REPL
server. --showTokens is a persistent flag, accepted on every command; only
`run` dumps tokens, and the bare REPL ignores the flag.
*/
package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/akashmaji946/polyscript/repl"
)

var showTokens bool

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "polyscript",
		Short: "Polyscript is a tree-walking interpreter for the polyscript language",
		RunE: func(cmd *cobra.Command, args []string) error {
			r := repl.NewRepl()
			r.Start(os.Stdin, os.Stdout)
			return nil
		},
	}
	root.PersistentFlags().BoolVar(&showTokens, "showTokens", false, "print the token stream before parsing")
	root.AddCommand(newRunCmd(), newServeCmd())
	return root
}

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <file>",
		Short: "Execute a polyscript source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFile(args[0])
		},
	}
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve <port>",
		Short: "Serve a REPL session over TCP on the given port",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(args[0])
		},
	}
}
