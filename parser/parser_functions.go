/*
File    : polyscript/parser/parser_functions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/polyscript/ast"
	"github.com/akashmaji946/polyscript/diag"
	"github.com/akashmaji946/polyscript/lexer"
)

// parseFnDecl implements `'fn' IDENT? '(' params? ')' ('->' expr | block)`.
// A `-> expr` body desugars to a block containing a single Return(expr), so
// the evaluator never needs a separate "expression-bodied function" case.
func (p *Parser) parseFnDecl() (ast.Node, *diag.Diagnostic) {
	fnTok := p.advance()

	name := ""
	if p.at(lexer.IDENT) {
		name = p.advance().Lexeme
	}

	if _, err := p.expect(lexer.LPAREN, ""); err != nil {
		return nil, err
	}
	var params []string
	if !p.at(lexer.RPAREN) {
		for {
			paramTok, err := p.expect(lexer.IDENT, "")
			if err != nil {
				return nil, err
			}
			params = append(params, paramTok.Lexeme)
			if !p.at(lexer.COMMA) {
				break
			}
			p.advance()
		}
	}
	if _, err := p.expect(lexer.RPAREN, ""); err != nil {
		return nil, err
	}

	var body *ast.Block
	if p.at(lexer.ARROW) {
		p.advance()
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		ret := &ast.Return{Span: expr.Pos(), Expr: expr}
		body = &ast.Block{Span: expr.Pos(), Statements: []ast.Node{ret}}
	} else {
		var err *diag.Diagnostic
		body, err = p.parseBlock()
		if err != nil {
			return nil, err
		}
	}

	return &ast.FnDecl{
		Span:      ast.Span{Start: fnTok.Start, End: body.Span.End},
		Name:      name,
		Params:    params,
		Body:      body,
		Anonymous: name == "",
	}, nil
}
