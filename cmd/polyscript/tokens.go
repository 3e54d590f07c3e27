/*
File    : polyscript/cmd/polyscript/tokens.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package main

import (
	"fmt"
	"io"

	"github.com/akashmaji946/polyscript/lexer"
)

// dumpTokens writes the whole token stream as `TOKENS [ <tok> <tok> ... ]`,
// one space-separated Kind(lexeme)@line:col entry per token.
func dumpTokens(w io.Writer, tokens []lexer.Token) {
	fmt.Fprint(w, "TOKENS [ ")
	for _, tok := range tokens {
		fmt.Fprintf(w, "%s ", tok)
	}
	fmt.Fprintln(w, "]")
}
