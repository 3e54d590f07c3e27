/*
File    : polyscript/parser/parser_structs.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/polyscript/ast"
	"github.com/akashmaji946/polyscript/diag"
	"github.com/akashmaji946/polyscript/lexer"
)

// parseEnumDecl implements `'enum' IDENT '{' IDENT (',' IDENT)* ','? '}'`.
func (p *Parser) parseEnumDecl() (ast.Node, *diag.Diagnostic) {
	enumTok := p.advance()
	nameTok, err := p.expect(lexer.IDENT, "")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.LBRACE, ""); err != nil {
		return nil, err
	}
	p.skipNewlines()

	var members []string
	for !p.at(lexer.RBRACE) {
		memberTok, err := p.expect(lexer.IDENT, "")
		if err != nil {
			return nil, err
		}
		members = append(members, memberTok.Lexeme)
		p.skipNewlines()
		if p.at(lexer.COMMA) {
			p.advance()
			p.skipNewlines()
			continue
		}
		break
	}
	closeTok, err := p.expect(lexer.RBRACE, "")
	if err != nil {
		return nil, err
	}
	return &ast.EnumDecl{Span: ast.Span{Start: enumTok.Start, End: closeTok.End}, Name: nameTok.Lexeme, Members: members}, nil
}

// parseNamespaceDecl implements `'namespace' IDENT block`.
func (p *Parser) parseNamespaceDecl() (ast.Node, *diag.Diagnostic) {
	nsTok := p.advance()
	nameTok, err := p.expect(lexer.IDENT, "")
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.NamespaceDecl{Span: ast.Span{Start: nsTok.Start, End: body.Span.End}, Name: nameTok.Lexeme, Body: body}, nil
}

// parseObjectDecl implements `'object' IDENT block`.
func (p *Parser) parseObjectDecl() (ast.Node, *diag.Diagnostic) {
	objTok := p.advance()
	nameTok, err := p.expect(lexer.IDENT, "")
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.ObjectDecl{Span: ast.Span{Start: objTok.Start, End: body.Span.End}, Name: nameTok.Lexeme, Body: body}, nil
}

// parseNew implements `'new' IDENT '(' args? ')'`.
func (p *Parser) parseNew() (ast.Node, *diag.Diagnostic) {
	newTok := p.advance()
	nameTok, err := p.expect(lexer.IDENT, "")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.LPAREN, ""); err != nil {
		return nil, err
	}
	var args []ast.Node
	if !p.at(lexer.RPAREN) {
		for {
			arg, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !p.at(lexer.COMMA) {
				break
			}
			p.advance()
		}
	}
	closeTok, err := p.expect(lexer.RPAREN, "")
	if err != nil {
		return nil, err
	}
	return &ast.New{Span: ast.Span{Start: newTok.Start, End: closeTok.End}, Name: nameTok.Lexeme, Args: args}, nil
}
