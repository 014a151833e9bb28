/*
File    : minicc/parser/parser_test.go
*/
package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minicc/ast"
	"minicc/lexer"
)

func mustParse(t *testing.T, src string) *ast.Program {
	t.Helper()
	toks := lexer.New(src).ConsumeTokens()
	program, diags := Parse(toks)
	require.NotNil(t, program)
	for _, d := range diags {
		t.Logf("diagnostic: %s", d.Message)
	}
	return program
}

func TestParse_FunctionWithReturn(t *testing.T) {
	program := mustParse(t, "int main() { return 0; }")
	require.Len(t, program.Body, 1)

	fn, ok := program.Body[0].(*ast.FunctionDeclaration)
	require.True(t, ok)
	assert.Equal(t, "main", fn.Id)
	require.NotNil(t, fn.Body)
	require.Len(t, fn.Body.Body, 1)

	ret, ok := fn.Body.Body[0].(*ast.ReturnStatement)
	require.True(t, ok)
	require.NotNil(t, ret.Argument)
	lit, ok := ret.Argument.(*ast.Literal)
	require.True(t, ok)
	assert.Equal(t, "0", lit.Value)
}

func TestParse_VariableDeclarationWithMultipleDeclarators(t *testing.T) {
	program := mustParse(t, "int x = 1, y, z = 2;")
	require.Len(t, program.Body, 1)

	decl, ok := program.Body[0].(*ast.VariableDeclaration)
	require.True(t, ok)
	require.Len(t, decl.Declarations, 3)
	assert.Equal(t, "x", decl.Declarations[0].Id)
	assert.NotNil(t, decl.Declarations[0].Initializer)
	assert.Equal(t, "y", decl.Declarations[1].Id)
	assert.Nil(t, decl.Declarations[1].Initializer)
	assert.Equal(t, "z", decl.Declarations[2].Id)
}

func TestParse_PointerAndArrayDeclarators(t *testing.T) {
	program := mustParse(t, "int *p; char buf[10];")
	require.Len(t, program.Body, 2)

	ptrDecl := program.Body[0].(*ast.VariableDeclaration)
	assert.True(t, ptrDecl.Declarations[0].IsPointer)

	arrDecl := program.Body[1].(*ast.VariableDeclaration)
	assert.True(t, arrDecl.Declarations[0].IsArray)
}

func TestParse_OperatorPrecedence(t *testing.T) {
	// a + b * c should parse as a + (b * c): the BinaryExpression's
	// Right operand is itself a BinaryExpression, not the other way round.
	program := mustParse(t, "int x = a + b * c;")
	decl := program.Body[0].(*ast.VariableDeclaration)
	add := decl.Declarations[0].Initializer.(*ast.BinaryExpression)
	assert.Equal(t, "+", add.Operator)
	mul, ok := add.Right.(*ast.BinaryExpression)
	require.True(t, ok)
	assert.Equal(t, "*", mul.Operator)
}

func TestParse_LeftAssociativity(t *testing.T) {
	// a - b - c should parse as (a - b) - c.
	program := mustParse(t, "int x = a - b - c;")
	decl := program.Body[0].(*ast.VariableDeclaration)
	outer := decl.Declarations[0].Initializer.(*ast.BinaryExpression)
	assert.Equal(t, "-", outer.Operator)
	inner, ok := outer.Left.(*ast.BinaryExpression)
	require.True(t, ok)
	assert.Equal(t, "-", inner.Operator)
	_, rightIsIdent := outer.Right.(*ast.Identifier)
	assert.True(t, rightIsIdent)
}

func TestParse_AssignmentIsRightAssociativeAndLowest(t *testing.T) {
	program := mustParse(t, "int x; int y; void f() { x = y = 1 + 2; }")
	fn := program.Body[2].(*ast.FunctionDeclaration)
	exprStmt := fn.Body.Body[0].(*ast.ExpressionStatement)
	outer, ok := exprStmt.Expression.(*ast.AssignmentExpression)
	require.True(t, ok)
	assert.Equal(t, "=", outer.Operator)
	inner, ok := outer.Right.(*ast.AssignmentExpression)
	require.True(t, ok)
	assert.Equal(t, "=", inner.Operator)
	_, rightIsBinary := inner.Right.(*ast.BinaryExpression)
	assert.True(t, rightIsBinary)
}

func TestParse_IfElseAndWhile(t *testing.T) {
	program := mustParse(t, `
		int main() {
			if (x < 1) { return 1; } else { return 2; }
			while (x) { x = x - 1; }
			return 0;
		}
	`)
	fn := program.Body[0].(*ast.FunctionDeclaration)
	require.Len(t, fn.Body.Body, 3)

	ifStmt, ok := fn.Body.Body[0].(*ast.IfStatement)
	require.True(t, ok)
	assert.NotNil(t, ifStmt.Alternate)

	_, ok = fn.Body.Body[1].(*ast.WhileStatement)
	assert.True(t, ok)
}

func TestParse_ForLoopWithAllClauses(t *testing.T) {
	program := mustParse(t, "void f() { for (int i = 0; i < 10; i = i + 1) { } }")
	fn := program.Body[0].(*ast.FunctionDeclaration)
	forStmt, ok := fn.Body.Body[0].(*ast.ForStatement)
	require.True(t, ok)
	assert.NotNil(t, forStmt.Init)
	assert.NotNil(t, forStmt.Test)
	assert.NotNil(t, forStmt.Update)
}

func TestParse_CallExpressionWithArguments(t *testing.T) {
	program := mustParse(t, `void f() { printf("hi %d", 1); }`)
	fn := program.Body[0].(*ast.FunctionDeclaration)
	exprStmt := fn.Body.Body[0].(*ast.ExpressionStatement)
	call, ok := exprStmt.Expression.(*ast.CallExpression)
	require.True(t, ok)
	assert.Len(t, call.Arguments, 2)
}

func TestParse_IncludeDirective(t *testing.T) {
	program := mustParse(t, "#include <stdio.h>\nint main() { return 0; }")
	require.Len(t, program.Body, 2)
	include, ok := program.Body[0].(*ast.Include)
	require.True(t, ok)
	assert.Equal(t, "stdio.h", include.Header)
	assert.True(t, include.System)
}

func TestParse_MalformedDeclarationRecovers(t *testing.T) {
	toks := lexer.New("int ; int main() { return 0; }").ConsumeTokens()
	program, diags := Parse(toks)
	require.NotNil(t, program)
	assert.NotEmpty(t, diags)
	// recovery must still find the following function declaration.
	var sawMain bool
	for _, node := range program.Body {
		if fn, ok := node.(*ast.FunctionDeclaration); ok && fn.Id == "main" {
			sawMain = true
		}
	}
	assert.True(t, sawMain)
}
