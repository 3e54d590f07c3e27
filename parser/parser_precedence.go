/*
File    : polyscript/parser/parser_precedence.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Implements the precedence ladder from low to high: or/and, not, comparisons,
+/-, * / %, unary +/-, ^, call/attribute, atom. Each level is a function
that parses its operands by calling the next-higher level and loops while
the current token is one of its own operators; `^` recurses back into
parseFactor for its right operand, making it right-associative.
*/
package parser

import (
	"github.com/akashmaji946/polyscript/ast"
	"github.com/akashmaji946/polyscript/diag"
	"github.com/akashmaji946/polyscript/lexer"
)

// parseExpr handles `var IDENT = expr | const IDENT = expr`, then delegates
// to the logic level; a bare `IDENT = expr` or `target.attr = expr` found
// there is turned into an assignment node here.
func (p *Parser) parseExpr() (ast.Node, *diag.Diagnostic) {
	if p.atKeyword("var") || p.atKeyword("const") {
		return p.parseVarDecl()
	}

	left, err := p.parseLogic()
	if err != nil {
		return nil, err
	}
	if !p.at(lexer.EQ) {
		return left, nil
	}
	eqTok := p.advance()
	rhs, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	switch target := left.(type) {
	case *ast.VarAccess:
		return &ast.VarAssign{
			Span: ast.Span{Start: left.Pos().Start, End: rhs.Pos().End},
			Name: target.Name, Expr: rhs, Kind: ast.Assign,
		}, nil
	case *ast.Attribute:
		return &ast.AttributeAssign{
			Span: ast.Span{Start: left.Pos().Start, End: rhs.Pos().End},
			Target: target.Target, Name: target.Name, Expr: rhs,
		}, nil
	default:
		return nil, p.errorf(eqTok, "invalid assignment target")
	}
}

func (p *Parser) parseVarDecl() (ast.Node, *diag.Diagnostic) {
	kwTok := p.advance()
	writable := kwTok.Lexeme == "var"

	nameTok, err := p.expect(lexer.IDENT, "")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.EQ, "="); err != nil {
		return nil, err
	}
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &ast.VarAssign{
		Span:     ast.Span{Start: kwTok.Start, End: expr.Pos().End},
		Name:     nameTok.Lexeme,
		Expr:     expr,
		Kind:     ast.Declare,
		Writable: writable,
	}, nil
}

// parseLogic implements `comp (('and'|'or') comp)*`.
func (p *Parser) parseLogic() (ast.Node, *diag.Diagnostic) {
	left, err := p.parseComp()
	if err != nil {
		return nil, err
	}
	for p.atKeyword("and") || p.atKeyword("or") {
		opTok := p.advance()
		right, err := p.parseComp()
		if err != nil {
			return nil, err
		}
		left = &ast.BinOp{Span: ast.Span{Start: left.Pos().Start, End: right.Pos().End}, Left: left, Op: opTok, Right: right}
	}
	return left, nil
}

// parseComp implements `'not' comp | arith (('=='|'!='|'<'|'>'|'<='|'>=') arith)*`.
func (p *Parser) parseComp() (ast.Node, *diag.Diagnostic) {
	if p.atKeyword("not") {
		opTok := p.advance()
		operand, err := p.parseComp()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryOp{Span: ast.Span{Start: opTok.Start, End: operand.Pos().End}, Op: opTok, Operand: operand}, nil
	}
	left, err := p.parseArith()
	if err != nil {
		return nil, err
	}
	for isCompKind(p.cur().Kind) {
		opTok := p.advance()
		right, err := p.parseArith()
		if err != nil {
			return nil, err
		}
		left = &ast.BinOp{Span: ast.Span{Start: left.Pos().Start, End: right.Pos().End}, Left: left, Op: opTok, Right: right}
	}
	return left, nil
}

func isCompKind(k lexer.Kind) bool {
	switch k {
	case lexer.EE, lexer.NE, lexer.LT, lexer.GT, lexer.LTE, lexer.GTE:
		return true
	default:
		return false
	}
}

// parseArith implements `term (('+'|'-') term)*`.
func (p *Parser) parseArith() (ast.Node, *diag.Diagnostic) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.at(lexer.PLUS) || p.at(lexer.MINUS) {
		opTok := p.advance()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = &ast.BinOp{Span: ast.Span{Start: left.Pos().Start, End: right.Pos().End}, Left: left, Op: opTok, Right: right}
	}
	return left, nil
}

// parseTerm implements `factor (('*'|'/'|'%') factor)*`.
func (p *Parser) parseTerm() (ast.Node, *diag.Diagnostic) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for p.at(lexer.MUL) || p.at(lexer.DIV) || p.at(lexer.MOD) {
		opTok := p.advance()
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		left = &ast.BinOp{Span: ast.Span{Start: left.Pos().Start, End: right.Pos().End}, Left: left, Op: opTok, Right: right}
	}
	return left, nil
}

// parseFactor implements `('+'|'-') factor | power`.
func (p *Parser) parseFactor() (ast.Node, *diag.Diagnostic) {
	if p.at(lexer.PLUS) || p.at(lexer.MINUS) {
		opTok := p.advance()
		operand, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryOp{Span: ast.Span{Start: opTok.Start, End: operand.Pos().End}, Op: opTok, Operand: operand}, nil
	}
	return p.parsePower()
}

// parsePower implements `call ('^' factor)?`, recursing into parseFactor so
// that `2 ^ 3 ^ 2` is right-associative.
func (p *Parser) parsePower() (ast.Node, *diag.Diagnostic) {
	left, err := p.parseCall()
	if err != nil {
		return nil, err
	}
	if !p.at(lexer.POW) {
		return left, nil
	}
	opTok := p.advance()
	right, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	return &ast.BinOp{Span: ast.Span{Start: left.Pos().Start, End: right.Pos().End}, Left: left, Op: opTok, Right: right}, nil
}

// parseCall implements `atom ('(' (expr (',' expr)*)? ')' | '.' IDENT)*`,
// additionally recognizing `target.(index)` as IndexAccess in place of the
// attribute form when '.' is immediately followed by '('.
func (p *Parser) parseCall() (ast.Node, *diag.Diagnostic) {
	node, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.at(lexer.LPAREN):
			node, err = p.parseCallArgs(node)
		case p.at(lexer.DOT) && p.peek().Kind == lexer.LPAREN:
			node, err = p.parseIndexAccess(node)
		case p.at(lexer.DOT):
			node, err = p.parseAttribute(node)
		default:
			return node, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

func (p *Parser) parseAttribute(target ast.Node) (ast.Node, *diag.Diagnostic) {
	p.advance() // '.'
	nameTok, err := p.expect(lexer.IDENT, "")
	if err != nil {
		return nil, err
	}
	return &ast.Attribute{Span: ast.Span{Start: target.Pos().Start, End: nameTok.End}, Target: target, Name: nameTok.Lexeme}, nil
}

func (p *Parser) parseIndexAccess(target ast.Node) (ast.Node, *diag.Diagnostic) {
	p.advance() // '.'
	p.advance() // '('
	idx, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	closeTok, err := p.expect(lexer.RPAREN, "")
	if err != nil {
		return nil, err
	}
	return &ast.IndexAccess{Span: ast.Span{Start: target.Pos().Start, End: closeTok.End}, Target: target, Index: idx}, nil
}

func (p *Parser) parseCallArgs(callee ast.Node) (ast.Node, *diag.Diagnostic) {
	p.advance() // '('
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
	return &ast.Call{Span: ast.Span{Start: callee.Pos().Start, End: closeTok.End}, Callee: callee, Args: args}, nil
}
