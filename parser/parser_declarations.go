/*
File    : minicc/parser/parser_declarations.go

Top-level and declaration-specifier parsing: preprocessor directives,
typedefs, function declarations/definitions, and variable declarations
with multiple comma-separated declarators.
*/
package parser

import (
	"strings"

	"minicc/ast"
	"minicc/diag"
	"minicc/lexer"
)

var declKeywords = map[string]bool{"const": true, "volatile": true, "static": true, "extern": true}

// parseTopLevel classifies and parses one top-level construct.
func (par *Parser) parseTopLevel() ast.Node {
	switch {
	case par.CurrToken.Kind == lexer.Preprocessor:
		return par.parsePreprocessor()
	case par.isKeyword("typedef"):
		return par.parseTypedef()
	case par.startsDeclaration():
		return par.parseDeclarationOrFunction()
	default:
		par.errorf(par.CurrToken, "unexpected token %q at top level", par.CurrToken.Value)
		par.advance()
		return nil
	}
}

// startsDeclaration reports whether CurrToken can begin a declaration
// specifier list (a type name, a qualifier, or struct/union/enum).
func (par *Parser) startsDeclaration() bool {
	if par.CurrToken.Kind == lexer.Type || par.CurrToken.Kind == lexer.Qualifier {
		return true
	}
	return par.isKeyword("struct") || par.isKeyword("union") || par.isKeyword("enum")
}

// parsePreprocessor wraps a raw preprocessor line into an Include node when
// it's an #include, or a generic PreprocessorDirective otherwise. The
// lexer already classified the directive structurally (see lexer.Directive);
// here we only need the raw text to decide which AST shape to produce.
func (par *Parser) parsePreprocessor() ast.Node {
	tok := par.CurrToken
	loc := par.loc()
	par.advance()

	text := strings.TrimSpace(strings.TrimPrefix(tok.Value, "#"))
	if strings.HasPrefix(text, "include") {
		rest := strings.TrimSpace(strings.TrimPrefix(text, "include"))
		system := strings.HasPrefix(rest, "<")
		header := strings.Trim(rest, "<>\"")
		return &ast.Include{Header: header, System: system, Location: loc}
	}
	return &ast.PreprocessorDirective{Directive: text, Location: loc}
}

// parseTypedef parses `typedef <specifiers> <id> ;`.
func (par *Parser) parseTypedef() ast.Node {
	loc := par.loc()
	par.advance() // 'typedef'
	specs := par.parseDeclarationSpecifiers()

	if par.CurrToken.Kind != lexer.Identifier {
		par.errorf(par.CurrToken, "expected identifier in typedef, got %q", par.CurrToken.Value)
	}
	id := par.CurrToken.Value
	par.advance()
	par.expect(lexer.Punctuation, ";")

	return &ast.Typedef{TypeSpecifiers: specs, Id: id, Location: loc}
}

// parseDeclarationSpecifiers consumes one or more type/qualifier keywords
// and an optional struct/union/enum tag.
func (par *Parser) parseDeclarationSpecifiers() []ast.Specifier {
	var specs []ast.Specifier
	for {
		switch {
		case par.CurrToken.Kind == lexer.Type:
			specs = append(specs, ast.Specifier{Kind: ast.TypeSpecifier, Name: par.CurrToken.Value})
			par.advance()
		case par.CurrToken.Kind == lexer.Qualifier:
			specs = append(specs, ast.Specifier{Kind: ast.TypeQualifier, Name: par.CurrToken.Value})
			par.advance()
		case par.isKeyword("struct") || par.isKeyword("union") || par.isKeyword("enum"):
			tag := par.CurrToken.Value
			par.advance()
			name := ""
			if par.CurrToken.Kind == lexer.Identifier {
				name = par.CurrToken.Value
				par.advance()
			}
			specs = append(specs, ast.Specifier{Kind: ast.ComplexTypeTag, Name: name, Tag: tag})
		default:
			return specs
		}
	}
}

// parseDeclarationOrFunction parses declaration specifiers, then an
// identifier, then decides from the next token without backtracking: if '('
// follows the identifier it is a function declaration/definition, otherwise
// it's a variable declaration
// (possibly with more comma-separated declarators).
func (par *Parser) parseDeclarationOrFunction() ast.Node {
	loc := par.loc()
	specs := par.parseDeclarationSpecifiers()

	isPointer := false
	for par.isOp("*") {
		isPointer = true
		par.advance()
	}

	if par.CurrToken.Kind != lexer.Identifier {
		par.errorf(par.CurrToken, "expected identifier, got %q", par.CurrToken.Value)
		par.advance()
		return nil
	}
	name := par.CurrToken.Value
	par.advance()

	if par.isPunct("(") {
		return par.parseFunctionTail(loc, specs, isPointer, name)
	}
	return par.parseVariableDeclarationTail(loc, specs, isPointer, name)
}

// parseVariableDeclarationTail parses the remainder of a variable
// declaration once its first declarator's specifiers/pointer/name are known:
// optional array suffix and initializer, then any further comma-separated
// declarators, terminated by ';'.
func (par *Parser) parseVariableDeclarationTail(loc diag.Location, specs []ast.Specifier, isPointer bool, name string) ast.Node {
	decl := &ast.VariableDeclaration{TypeSpecifiers: specs, Location: loc}
	decl.Declarations = append(decl.Declarations, par.parseDeclaratorTail(isPointer, name))

	for par.isPunct(",") {
		par.advance()
		isPointer := false
		for par.isOp("*") {
			isPointer = true
			par.advance()
		}
		if par.CurrToken.Kind != lexer.Identifier {
			par.errorf(par.CurrToken, "expected identifier in declarator list, got %q", par.CurrToken.Value)
			break
		}
		declName := par.CurrToken.Value
		par.advance()
		decl.Declarations = append(decl.Declarations, par.parseDeclaratorTail(isPointer, declName))
	}

	par.expect(lexer.Punctuation, ";")
	return decl
}

// parseDeclaratorTail parses the array suffix and initializer of a single
// declarator whose pointer-ness and name have already been consumed.
func (par *Parser) parseDeclaratorTail(isPointer bool, name string) *ast.VariableDeclarator {
	loc := par.loc()
	d := &ast.VariableDeclarator{Id: name, IsPointer: isPointer, Location: loc}

	if par.isPunct("[") {
		d.IsArray = true
		par.advance()
		if !par.isPunct("]") {
			d.ArraySize = par.parseExpression(lowestPrecedence)
		}
		par.expect(lexer.Punctuation, "]")
	}

	if par.isOp("=") {
		par.advance()
		d.Initializer = par.parseExpression(lowestPrecedence)
	}

	return d
}

// parseFunctionTail parses a function's parameter list and, if present, its
// body; a bare `;` after the parameter list marks a prototype with no body.
func (par *Parser) parseFunctionTail(loc diag.Location, specs []ast.Specifier, isPointer bool, name string) ast.Node {
	par.expect(lexer.Punctuation, "(")

	var params []*ast.Parameter
	for !par.isPunct(")") && !par.atEOF() {
		params = append(params, par.parseParameter())
		if par.isPunct(",") {
			par.advance()
		} else {
			break
		}
	}
	par.expect(lexer.Punctuation, ")")

	fn := &ast.FunctionDeclaration{
		Id:              name,
		ReturnType:      specs,
		IsPointerReturn:  isPointer,
		Params:          params,
		Location:        loc,
	}

	if par.isPunct(";") {
		par.advance()
		return fn
	}

	fn.Body = par.parseBlockStatement()
	return fn
}

func (par *Parser) parseParameter() *ast.Parameter {
	loc := par.loc()
	specs := par.parseDeclarationSpecifiers()

	isPointer := false
	for par.isOp("*") {
		isPointer = true
		par.advance()
	}

	name := ""
	if par.CurrToken.Kind == lexer.Identifier {
		name = par.CurrToken.Value
		par.advance()
	}

	isArray := false
	if par.isPunct("[") {
		isArray = true
		par.advance()
		par.expect(lexer.Punctuation, "]")
	}

	return &ast.Parameter{Name: name, ParamType: specs, IsPointer: isPointer, IsArray: isArray, Location: loc}
}
