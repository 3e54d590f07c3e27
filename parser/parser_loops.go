/*
File    : polyscript/parser/parser_loops.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/polyscript/ast"
	"github.com/akashmaji946/polyscript/diag"
	"github.com/akashmaji946/polyscript/lexer"
)

// parseWhile implements `'while' expr block`.
func (p *Parser) parseWhile() (ast.Node, *diag.Diagnostic) {
	whileTok := p.advance()
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.While{Span: ast.Span{Start: whileTok.Start, End: body.Span.End}, Cond: cond, Body: body}, nil
}

// parseFor implements `'for' IDENT '=' expr 'to' expr ('step' expr)? block`.
// "to" is not a reserved keyword; it is recognized positionally as the
// identifier-shaped token separating start from end.
func (p *Parser) parseFor() (ast.Node, *diag.Diagnostic) {
	forTok := p.advance()
	nameTok, err := p.expect(lexer.IDENT, "")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.EQ, "="); err != nil {
		return nil, err
	}
	start, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.IDENT, "to"); err != nil {
		return nil, err
	}
	end, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	var step ast.Node
	if p.atKeyword("step") {
		p.advance()
		step, err = p.parseExpr()
		if err != nil {
			return nil, err
		}
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.For{
		Span:  ast.Span{Start: forTok.Start, End: body.Span.End},
		Name:  nameTok.Lexeme,
		Start: start, End: end, Step: step,
		Body: body,
	}, nil
}
