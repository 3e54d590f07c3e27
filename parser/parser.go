/*
File    : polyscript/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package parser implements a recursive-descent parser over the token stream
package lexer produces, turning it into the ast package's tagged tree.
Binary operators are parsed with the usual precedence-climbing left-fold:
each precedence level is a function that calls the next-higher level for its
operands and loops while the current token is one of its own operators.

Unlike the collect-and-continue style some parsers use, this one aborts on
the first malformed token: it returns a single *diag.Diagnostic of kind
InvalidSyntaxError rather than accumulating an error list, matching the
language's "parsing aborts on first error" contract.
*/
package parser

import (
	"fmt"

	"github.com/akashmaji946/polyscript/ast"
	"github.com/akashmaji946/polyscript/diag"
	"github.com/akashmaji946/polyscript/lexer"
)

// Parser holds a token slice and a cursor into it. cur is always valid;
// reading past the final EOF token just returns EOF repeatedly.
type Parser struct {
	tokens []lexer.Token
	pos    int
}

// NewParser wraps an already-lexed token slice. Callers typically produce
// tokens via lexer.Lexer.ConsumeTokens.
func NewParser(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse consumes the whole token stream and returns the program's root
// Block, or the first InvalidSyntaxError encountered. On success every
// token up to EOF has been consumed.
func (p *Parser) Parse() (*ast.Block, *diag.Diagnostic) {
	return p.parseStatements(lexer.EOF)
}

func (p *Parser) cur() lexer.Token {
	if p.pos < len(p.tokens) {
		return p.tokens[p.pos]
	}
	return p.tokens[len(p.tokens)-1]
}

func (p *Parser) peek() lexer.Token {
	if p.pos+1 < len(p.tokens) {
		return p.tokens[p.pos+1]
	}
	return p.tokens[len(p.tokens)-1]
}

func (p *Parser) advance() lexer.Token {
	t := p.cur()
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return t
}

func (p *Parser) at(kind lexer.Kind) bool {
	return p.cur().Kind == kind
}

func (p *Parser) atKeyword(lexeme string) bool {
	return p.cur().Is(lexer.KEYWORD, lexeme)
}

// expect advances past the current token if it matches kind (and lexeme,
// when lexeme != ""), or returns an InvalidSyntaxError describing what was
// expected.
func (p *Parser) expect(kind lexer.Kind, lexeme string) (lexer.Token, *diag.Diagnostic) {
	tok := p.cur()
	if tok.Kind != kind || (lexeme != "" && tok.Lexeme != lexeme) {
		want := string(kind)
		if lexeme != "" {
			want = fmt.Sprintf("%q", lexeme)
		}
		return tok, p.errorf(tok, "expected %s, got %s", want, tok)
	}
	return p.advance(), nil
}

func (p *Parser) errorf(tok lexer.Token, format string, args ...any) *diag.Diagnostic {
	return diag.New(diag.InvalidSyntaxError, fmt.Sprintf(format, args...), tok.Start, tok.End)
}

// skipNewlines consumes zero or more NEWLINE tokens.
func (p *Parser) skipNewlines() {
	for p.at(lexer.NEWLINE) {
		p.advance()
	}
}
