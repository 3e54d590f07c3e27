/*
File    : polyscript/parser/parser_conditionals.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/polyscript/ast"
	"github.com/akashmaji946/polyscript/diag"
)

// parseIf implements `'if' expr block ('elif' expr block)* ('else' block)?`.
func (p *Parser) parseIf() (ast.Node, *diag.Diagnostic) {
	ifTok := p.advance() // 'if'

	var cases []ast.IfCase
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	block, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	cases = append(cases, ast.IfCase{Cond: cond, Block: block})
	end := block.Span.End

	for p.atKeyword("elif") {
		p.advance()
		cond, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		block, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		cases = append(cases, ast.IfCase{Cond: cond, Block: block})
		end = block.Span.End
	}

	var elseBlock *ast.Block
	if p.atKeyword("else") {
		p.advance()
		elseBlock, err = p.parseBlock()
		if err != nil {
			return nil, err
		}
		end = elseBlock.Span.End
	}

	return &ast.If{Span: ast.Span{Start: ifTok.Start, End: end}, Cases: cases, Else: elseBlock}, nil
}
