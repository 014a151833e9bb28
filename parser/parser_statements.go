/*
File    : minicc/parser/parser_statements.go

Statement parsing: blocks, if/else, while, for, return, break, continue,
and expression statements.
*/
package parser

import (
	"minicc/ast"
	"minicc/lexer"
)

// parseStatement dispatches on CurrToken to the right statement parser. A
// bare declaration is also legal inside a block (C allows intermixed
// declarations and statements), so startsDeclaration is checked here too.
func (par *Parser) parseStatement() ast.Node {
	switch {
	case par.isPunct("{"):
		return par.parseBlockStatement()
	case par.isKeyword("if"):
		return par.parseIfStatement()
	case par.isKeyword("while"):
		return par.parseWhileStatement()
	case par.isKeyword("for"):
		return par.parseForStatement()
	case par.isKeyword("return"):
		return par.parseReturnStatement()
	case par.isKeyword("break"):
		return par.parseBreakStatement()
	case par.isKeyword("continue"):
		return par.parseContinueStatement()
	case par.isKeyword("typedef"):
		return par.parseTypedef()
	case par.startsDeclaration():
		return par.parseDeclarationOrFunction()
	case par.isPunct(";"):
		loc := par.loc()
		par.advance()
		return &ast.ExpressionStatement{Location: loc}
	default:
		return par.parseExpressionStatement()
	}
}

func (par *Parser) parseBlockStatement() *ast.BlockStatement {
	loc := par.loc()
	par.expect(lexer.Punctuation, "{")

	block := &ast.BlockStatement{Location: loc}
	for !par.isPunct("}") && !par.atEOF() {
		before := par.pos
		stmt := par.parseStatement()
		if stmt != nil {
			block.Body = append(block.Body, stmt)
		}
		if par.pos == before && !par.atEOF() {
			par.advance()
		}
	}
	par.expect(lexer.Punctuation, "}")
	return block
}

func (par *Parser) parseIfStatement() ast.Node {
	loc := par.loc()
	par.advance() // 'if'
	par.expect(lexer.Punctuation, "(")
	test := par.parseExpression(lowestPrecedence)
	par.expect(lexer.Punctuation, ")")
	consequent := par.parseStatement()

	stmt := &ast.IfStatement{Test: test, Consequent: consequent, Location: loc}
	if par.isKeyword("else") {
		par.advance()
		stmt.Alternate = par.parseStatement()
	}
	return stmt
}

func (par *Parser) parseWhileStatement() ast.Node {
	loc := par.loc()
	par.advance() // 'while'
	par.expect(lexer.Punctuation, "(")
	test := par.parseExpression(lowestPrecedence)
	par.expect(lexer.Punctuation, ")")
	body := par.parseStatement()
	return &ast.WhileStatement{Test: test, Body: body, Location: loc}
}

func (par *Parser) parseForStatement() ast.Node {
	loc := par.loc()
	par.advance() // 'for'
	par.expect(lexer.Punctuation, "(")

	stmt := &ast.ForStatement{Location: loc}

	if !par.isPunct(";") {
		if par.startsDeclaration() {
			stmt.Init = par.parseDeclarationOrFunction()
		} else {
			exprLoc := par.loc()
			expr := par.parseExpression(lowestPrecedence)
			par.expect(lexer.Punctuation, ";")
			stmt.Init = &ast.ExpressionStatement{Expression: expr, Location: exprLoc}
		}
	} else {
		par.advance() // bare ';'
	}

	if !par.isPunct(";") {
		stmt.Test = par.parseExpression(lowestPrecedence)
	}
	par.expect(lexer.Punctuation, ";")

	if !par.isPunct(")") {
		stmt.Update = par.parseExpression(lowestPrecedence)
	}
	par.expect(lexer.Punctuation, ")")

	stmt.Body = par.parseStatement()
	return stmt
}

func (par *Parser) parseReturnStatement() ast.Node {
	loc := par.loc()
	par.advance() // 'return'
	stmt := &ast.ReturnStatement{Location: loc}
	if !par.isPunct(";") {
		stmt.Argument = par.parseExpression(lowestPrecedence)
	}
	par.expect(lexer.Punctuation, ";")
	return stmt
}

func (par *Parser) parseBreakStatement() ast.Node {
	loc := par.loc()
	par.advance()
	par.expect(lexer.Punctuation, ";")
	return &ast.BreakStatement{Location: loc}
}

func (par *Parser) parseContinueStatement() ast.Node {
	loc := par.loc()
	par.advance()
	par.expect(lexer.Punctuation, ";")
	return &ast.ContinueStatement{Location: loc}
}

func (par *Parser) parseExpressionStatement() ast.Node {
	loc := par.loc()
	expr := par.parseExpression(lowestPrecedence)
	par.expect(lexer.Punctuation, ";")
	return &ast.ExpressionStatement{Expression: expr, Location: loc}
}
