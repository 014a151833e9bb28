/*
File    : minicc/ast/print.go

Dump renders an AST as an indented tree, using an indent-accumulating
bytes.Buffer visitor.
*/
package ast

import (
	"bytes"
	"fmt"
)

const indentSize = 2

// printer implements Visitor by writing an indented line per node.
type printer struct {
	indent int
	buf    bytes.Buffer
}

// Dump returns a human-readable tree dump of node, used by the `minicc
// parse` subcommand.
func Dump(node Node) string {
	p := &printer{}
	node.Accept(p)
	return p.buf.String()
}

func (p *printer) line(format string, args ...any) {
	p.buf.WriteString(spaces(p.indent))
	fmt.Fprintf(&p.buf, format, args...)
	p.buf.WriteByte('\n')
}

func spaces(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}

func (p *printer) walk(n Node) {
	if n == nil {
		return
	}
	p.indent += indentSize
	n.Accept(p)
	p.indent -= indentSize
}

func (p *printer) VisitProgram(n *Program) {
	p.line("Program")
	for _, stmt := range n.Body {
		p.walk(stmt)
	}
}

func (p *printer) VisitInclude(n *Include) {
	p.line("Include(%s system=%t)", n.Header, n.System)
}

func (p *printer) VisitPreprocessorDirective(n *PreprocessorDirective) {
	p.line("PreprocessorDirective(%s)", n.Directive)
}

func (p *printer) VisitTypedef(n *Typedef) {
	p.line("Typedef(%s)", n.Id)
}

func (p *printer) VisitFunctionDeclaration(n *FunctionDeclaration) {
	p.line("FunctionDeclaration(%s)", n.Id)
	p.indent += indentSize
	for _, param := range n.Params {
		p.walk(param)
	}
	if n.Body != nil {
		p.walk(n.Body)
	}
	p.indent -= indentSize
}

func (p *printer) VisitVariableDeclaration(n *VariableDeclaration) {
	p.line("VariableDeclaration")
	for _, d := range n.Declarations {
		p.walk(d)
	}
}

func (p *printer) VisitVariableDeclarator(n *VariableDeclarator) {
	p.line("VariableDeclarator(%s ptr=%t array=%t)", n.Id, n.IsPointer, n.IsArray)
	if n.Initializer != nil {
		p.walk(n.Initializer)
	}
}

func (p *printer) VisitParameter(n *Parameter) {
	p.line("Parameter(%s ptr=%t array=%t)", n.Name, n.IsPointer, n.IsArray)
}

func (p *printer) VisitBlockStatement(n *BlockStatement) {
	p.line("BlockStatement")
	for _, stmt := range n.Body {
		p.walk(stmt)
	}
}

func (p *printer) VisitIfStatement(n *IfStatement) {
	p.line("IfStatement")
	p.walk(n.Test)
	p.walk(n.Consequent)
	if n.Alternate != nil {
		p.walk(n.Alternate)
	}
}

func (p *printer) VisitWhileStatement(n *WhileStatement) {
	p.line("WhileStatement")
	p.walk(n.Test)
	p.walk(n.Body)
}

func (p *printer) VisitForStatement(n *ForStatement) {
	p.line("ForStatement")
	if n.Init != nil {
		p.walk(n.Init)
	}
	if n.Test != nil {
		p.walk(n.Test)
	}
	if n.Update != nil {
		p.walk(n.Update)
	}
	p.walk(n.Body)
}

func (p *printer) VisitReturnStatement(n *ReturnStatement) {
	p.line("ReturnStatement")
	if n.Argument != nil {
		p.walk(n.Argument)
	}
}

func (p *printer) VisitExpressionStatement(n *ExpressionStatement) {
	p.line("ExpressionStatement")
	p.walk(n.Expression)
}

func (p *printer) VisitBreakStatement(*BreakStatement) { p.line("BreakStatement") }

func (p *printer) VisitContinueStatement(*ContinueStatement) { p.line("ContinueStatement") }

func (p *printer) VisitIdentifier(n *Identifier) { p.line("Identifier(%s)", n.Name) }

func (p *printer) VisitLiteral(n *Literal) { p.line("Literal(%s %s)", n.ValueType, n.Value) }

func (p *printer) VisitBinaryExpression(n *BinaryExpression) {
	p.line("BinaryExpression(%s)", n.Operator)
	p.walk(n.Left)
	p.walk(n.Right)
}

func (p *printer) VisitUnaryExpression(n *UnaryExpression) {
	p.line("UnaryExpression(%s prefix=%t)", n.Operator, n.Prefix)
	p.walk(n.Argument)
}

func (p *printer) VisitAssignmentExpression(n *AssignmentExpression) {
	p.line("AssignmentExpression(%s)", n.Operator)
	p.walk(n.Left)
	p.walk(n.Right)
}

func (p *printer) VisitCallExpression(n *CallExpression) {
	p.line("CallExpression")
	p.walk(n.Callee)
	for _, arg := range n.Arguments {
		p.walk(arg)
	}
}
