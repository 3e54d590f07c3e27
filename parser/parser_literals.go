/*
File    : polyscript/parser/parser_literals.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"strconv"

	"github.com/akashmaji946/polyscript/ast"
	"github.com/akashmaji946/polyscript/diag"
	"github.com/akashmaji946/polyscript/lexer"
)

// parseAtom implements the `atom` production: literals, identifiers,
// parenthesized expressions, lists, and the keyword-led forms (if/while/
// for/fn/new/enum/namespace/object).
func (p *Parser) parseAtom() (ast.Node, *diag.Diagnostic) {
	tok := p.cur()
	switch {
	case tok.Kind == lexer.INT:
		p.advance()
		v, _ := strconv.ParseInt(tok.Lexeme, 10, 64)
		return &ast.IntLit{Span: ast.Span{Start: tok.Start, End: tok.End}, Value: v}, nil

	case tok.Kind == lexer.FLOAT:
		p.advance()
		v, _ := strconv.ParseFloat(tok.Lexeme, 64)
		return &ast.FloatLit{Span: ast.Span{Start: tok.Start, End: tok.End}, Value: v}, nil

	case tok.Kind == lexer.STRING:
		p.advance()
		return &ast.StringLit{Span: ast.Span{Start: tok.Start, End: tok.End}, Value: tok.Lexeme}, nil

	case tok.Kind == lexer.IDENT && tok.Lexeme == "null":
		p.advance()
		return &ast.NullLit{Span: ast.Span{Start: tok.Start, End: tok.End}}, nil

	case tok.Kind == lexer.IDENT:
		p.advance()
		return &ast.VarAccess{Span: ast.Span{Start: tok.Start, End: tok.End}, Name: tok.Lexeme}, nil

	case tok.Kind == lexer.LPAREN:
		p.advance()
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.RPAREN, ""); err != nil {
			return nil, err
		}
		return expr, nil

	case tok.Kind == lexer.LBRACKET:
		return p.parseListLit()

	case tok.Is(lexer.KEYWORD, "if"):
		return p.parseIf()
	case tok.Is(lexer.KEYWORD, "while"):
		return p.parseWhile()
	case tok.Is(lexer.KEYWORD, "for"):
		return p.parseFor()
	case tok.Is(lexer.KEYWORD, "fn"):
		return p.parseFnDecl()
	case tok.Is(lexer.KEYWORD, "new"):
		return p.parseNew()
	case tok.Is(lexer.KEYWORD, "enum"):
		return p.parseEnumDecl()
	case tok.Is(lexer.KEYWORD, "namespace"):
		return p.parseNamespaceDecl()
	case tok.Is(lexer.KEYWORD, "object"):
		return p.parseObjectDecl()

	default:
		return nil, p.errorf(tok, "unexpected token %s", tok)
	}
}

func (p *Parser) parseListLit() (ast.Node, *diag.Diagnostic) {
	openTok := p.advance() // '['
	var elements []ast.Node
	if !p.at(lexer.RBRACKET) {
		for {
			el, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			elements = append(elements, el)
			if !p.at(lexer.COMMA) {
				break
			}
			p.advance()
		}
	}
	closeTok, err := p.expect(lexer.RBRACKET, "")
	if err != nil {
		return nil, err
	}
	return &ast.ListLit{Span: ast.Span{Start: openTok.Start, End: closeTok.End}, Elements: elements}, nil
}
