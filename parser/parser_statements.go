/*
File    : polyscript/parser/parser_statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/polyscript/ast"
	"github.com/akashmaji946/polyscript/diag"
	"github.com/akashmaji946/polyscript/lexer"
)

// parseStatements implements `statements := NEWLINE* statement (NEWLINE+
// statement)* NEWLINE*`, stopping once stop is the current token's kind
// (EOF for a program, RBRACE for a braced block).
func (p *Parser) parseStatements(stop lexer.Kind) (*ast.Block, *diag.Diagnostic) {
	start := p.cur().Start
	p.skipNewlines()

	var statements []ast.Node
	for !p.at(stop) {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)

		if p.at(stop) {
			break
		}
		if !p.at(lexer.NEWLINE) {
			return nil, p.errorf(p.cur(), "expected newline between statements, got %s", p.cur())
		}
		p.skipNewlines()
	}

	end := p.cur().Start
	if len(statements) > 0 {
		end = statements[len(statements)-1].Pos().End
	}
	return &ast.Block{Span: ast.Span{Start: start, End: end}, Statements: statements}, nil
}

// parseBlock parses a brace-delimited block: `'{' statements '}'`.
func (p *Parser) parseBlock() (*ast.Block, *diag.Diagnostic) {
	if _, err := p.expect(lexer.LBRACE, ""); err != nil {
		return nil, err
	}
	block, err := p.parseStatements(lexer.RBRACE)
	if err != nil {
		return nil, err
	}
	closeTok, err := p.expect(lexer.RBRACE, "")
	if err != nil {
		return nil, err
	}
	block.Span.End = closeTok.End
	return block, nil
}

// parseStatement implements `statement := 'return' expr? | 'break' |
// 'continue' | expr`.
func (p *Parser) parseStatement() (ast.Node, *diag.Diagnostic) {
	switch {
	case p.atKeyword("return"):
		tok := p.advance()
		if p.at(lexer.NEWLINE) || p.at(lexer.RBRACE) || p.at(lexer.EOF) {
			return &ast.Return{Span: ast.Span{Start: tok.Start, End: tok.End}}, nil
		}
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return &ast.Return{Span: ast.Span{Start: tok.Start, End: expr.Pos().End}, Expr: expr}, nil

	case p.atKeyword("break"):
		tok := p.advance()
		return &ast.Break{Span: ast.Span{Start: tok.Start, End: tok.End}}, nil

	case p.atKeyword("continue"):
		tok := p.advance()
		return &ast.Continue{Span: ast.Span{Start: tok.Start, End: tok.End}}, nil

	default:
		return p.parseExpr()
	}
}
