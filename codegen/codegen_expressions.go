/*
File    : minicc/codegen/codegen_expressions.go

Expression lowering. Each Visit method leaves its result operand in
g.lastOperand; callers (including other Visit methods) read it back right
after calling Accept. Binary/unary/call expressions always allocate a
fresh temp for their result so chained arithmetic never reuses a live
temp.
*/
package codegen

import (
	"strconv"
	"strings"

	"minicc/ast"
)

// quoteString re-wraps a lexer-unescaped string literal's content in
// double quotes for storage in Generator.stringLiterals, whose values are
// documented as including their surrounding quotes.
func quoteString(s string) string {
	return strconv.Quote(s)
}

var binaryOps = map[string]string{
	"+": "ADD", "-": "SUB", "*": "MUL", "/": "DIV", "%": "MOD",
	"==": "EQ", "!=": "NE", "<": "LT", ">": "GT", "<=": "LE", ">=": "GE",
	"&&": "AND", "||": "OR",
}

var compoundAssignOps = map[string]string{
	"+=": "ADD", "-=": "SUB", "*=": "MUL", "/=": "DIV", "%=": "MOD",
}

func (g *Generator) VisitIdentifier(n *ast.Identifier) {
	g.lastOperand = n.Name
}

func (g *Generator) VisitLiteral(n *ast.Literal) {
	switch n.ValueType {
	case ast.StringLiteral:
		g.lastOperand = g.newStringLabel(quoteString(n.Value))
	default:
		g.lastOperand = n.Value
	}
}

func (g *Generator) VisitBinaryExpression(n *ast.BinaryExpression) {
	n.Left.Accept(g)
	left := g.lastOperand
	n.Right.Accept(g)
	right := g.lastOperand

	op, ok := binaryOps[n.Operator]
	if !ok {
		g.errorf(n.Location, "unsupported binary operator %q", n.Operator)
		op = "ADD"
	}
	t := g.newTemp()
	g.emit(Instruction{Op: op, Arg1: left, Arg2: right, Result: t, Line: n.Location.Line})
	g.lastOperand = t
}

func (g *Generator) VisitUnaryExpression(n *ast.UnaryExpression) {
	if n.Operator == "++" || n.Operator == "--" {
		g.lowerIncrDecr(n)
		return
	}

	n.Argument.Accept(g)
	arg := g.lastOperand

	switch n.Operator {
	case "-":
		t := g.newTemp()
		g.emit(Instruction{Op: "NEG", Arg1: arg, Result: t, Line: n.Location.Line})
		g.lastOperand = t
	case "!":
		t := g.newTemp()
		g.emit(Instruction{Op: "NOT", Arg1: arg, Result: t, Line: n.Location.Line})
		g.lastOperand = t
	case "~":
		// No dedicated bitwise-complement op in the TAC set; NOT is the
		// closest fit and the illustrative assembly layer treats it the same.
		t := g.newTemp()
		g.emit(Instruction{Op: "NOT", Arg1: arg, Result: t, Line: n.Location.Line})
		g.lastOperand = t
	case "&":
		t := g.newTemp()
		g.emit(Instruction{Op: "ADDR", Arg1: arg, Result: t, Line: n.Location.Line})
		g.lastOperand = t
	case "*":
		t := g.newTemp()
		g.emit(Instruction{Op: "DEREF", Arg1: arg, Result: t, Line: n.Location.Line})
		g.lastOperand = t
	case "+":
		g.lastOperand = arg
	default:
		g.errorf(n.Location, "unsupported unary operator %q", n.Operator)
		g.lastOperand = arg
	}
}

// lowerIncrDecr implements the pre/post-increment lowering rule: pre-increment on
// x emits ADD x 1 x and evaluates to x; post-increment saves the original
// value to a temp first and evaluates to that temp.
func (g *Generator) lowerIncrDecr(n *ast.UnaryExpression) {
	n.Argument.Accept(g)
	target := g.lastOperand

	op := "ADD"
	if n.Operator == "--" {
		op = "SUB"
	}

	if n.Prefix {
		g.emit(Instruction{Op: op, Arg1: target, Arg2: "1", Result: target, Line: n.Location.Line})
		g.lastOperand = target
		return
	}

	saved := g.newTemp()
	g.emit(Instruction{Op: "ASSIGN", Arg1: target, Result: saved, Line: n.Location.Line})
	g.emit(Instruction{Op: op, Arg1: target, Arg2: "1", Result: target, Line: n.Location.Line})
	g.lastOperand = saved
}

func (g *Generator) VisitAssignmentExpression(n *ast.AssignmentExpression) {
	n.Right.Accept(g)
	rhs := g.lastOperand

	target := g.lvalueOperand(n.Left)

	if n.Operator != "=" {
		arithOp, ok := compoundAssignOps[n.Operator]
		if !ok {
			g.errorf(n.Location, "unsupported assignment operator %q", n.Operator)
			arithOp = "ADD"
		}
		current := g.loadOperand(target, n.Location.Line)
		t := g.newTemp()
		g.emit(Instruction{Op: arithOp, Arg1: current, Arg2: rhs, Result: t, Line: n.Location.Line})
		rhs = t
	}

	g.emit(Instruction{Op: "ASSIGN", Arg1: rhs, Result: target, Line: n.Location.Line})
	g.lastOperand = rhs
}

// loadOperand returns an operand holding target's current value, for a
// compound assignment's read side. A plain name already is a readable
// operand. A "*ptr" store marker (see lvalueOperand) is not a value any
// op can consume directly, so it needs an explicit DEREF load into a
// fresh temp first.
func (g *Generator) loadOperand(target string, line int) string {
	ptr, ok := strings.CutPrefix(target, "*")
	if !ok {
		return target
	}
	t := g.newTemp()
	g.emit(Instruction{Op: "DEREF", Arg1: ptr, Result: t, Line: line})
	return t
}

// lvalueOperand resolves the storage an assignment writes to. A plain
// identifier resolves directly to its name. A pointer dereference (*p)
// resolves to its pointer operand prefixed with "*"; asmLine's ASSIGN
// case recognizes that prefix and emits an indirect store through the
// pointer instead of a move to a named location, so the dereferenced
// operand itself is never visited (VisitUnaryExpression's DEREF case,
// which loads through the pointer into a throwaway temp, is for read
// contexts only and must not run here). Any other expression is not a
// valid assignment target; that is a semantic error the analyzer should
// have already caught, so this only guards codegen against crashing on
// it.
func (g *Generator) lvalueOperand(expr ast.Expression) string {
	switch e := expr.(type) {
	case *ast.Identifier:
		return e.Name
	case *ast.UnaryExpression:
		if e.Operator == "*" {
			e.Argument.Accept(g)
			return "*" + g.lastOperand
		}
	}
	g.errorf(expr.Loc(), "invalid assignment target")
	expr.Accept(g)
	return g.lastOperand
}

func (g *Generator) VisitCallExpression(n *ast.CallExpression) {
	args := make([]string, len(n.Arguments))
	for i, arg := range n.Arguments {
		arg.Accept(g)
		args[i] = g.lastOperand
	}
	for _, operand := range args {
		g.emit(Instruction{Op: "PARAM", Arg1: operand})
	}

	name := ""
	if ident, ok := n.Callee.(*ast.Identifier); ok {
		name = ident.Name
	} else {
		n.Callee.Accept(g)
		name = g.lastOperand
	}

	t := g.newTemp()
	g.emit(Instruction{Op: "CALL", Arg1: name, Arg2: strconv.Itoa(len(n.Arguments)), Result: t, Line: n.Location.Line})
	g.lastOperand = t
}
