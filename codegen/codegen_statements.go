/*
File    : minicc/codegen/codegen_statements.go

Statement lowering, including the exact control-flow label discipline
the compiler requires: if/if-else, while, for, and break/continue
resolve against a loopStack of {start, continue, end} label triples so a
break or continue nested inside an if always targets its nearest enclosing
loop rather than the lexically nearest label.
*/
package codegen

import "minicc/ast"

func (g *Generator) VisitProgram(n *ast.Program) {
	for _, node := range n.Body {
		node.Accept(g)
	}
}

func (g *Generator) VisitInclude(n *ast.Include) {
	g.includedHeaders = append(g.includedHeaders, n.Header)
	g.emit(Instruction{Op: "INCLUDE", Arg1: n.Header, Line: n.Location.Line})
}

func (g *Generator) VisitPreprocessorDirective(n *ast.PreprocessorDirective) {
	// #define produces no TAC. The analyzer records the macro name as a
	// symbol, and macro uses are not expanded anywhere in the pipeline.
}

func (g *Generator) VisitTypedef(n *ast.Typedef) {
	// Erased at codegen: a typedef only renames a type, it never allocates
	// storage or produces code.
}

func (g *Generator) VisitFunctionDeclaration(n *ast.FunctionDeclaration) {
	if n.Body == nil {
		return // prototype only, nothing to lower
	}

	g.emitLabel(n.Id)
	g.emit(Instruction{Op: "FUNCTION_START", Arg1: n.Id, Line: n.Location.Line})
	for _, param := range n.Params {
		param.Accept(g)
	}
	for _, stmt := range n.Body.Body {
		stmt.Accept(g)
	}
	g.emit(Instruction{Op: "FUNCTION_END", Arg1: n.Id, Line: n.Location.Line})
}

func (g *Generator) VisitParameter(n *ast.Parameter) {
	g.emit(Instruction{Op: "PARAM_DECL", Arg1: n.Name, Line: n.Location.Line})
}

func (g *Generator) VisitVariableDeclaration(n *ast.VariableDeclaration) {
	for _, decl := range n.Declarations {
		decl.Accept(g)
	}
}

func (g *Generator) VisitVariableDeclarator(n *ast.VariableDeclarator) {
	g.emit(Instruction{Op: "DECLARE", Arg1: n.Id, Line: n.Location.Line})
	if n.Initializer == nil {
		return
	}
	n.Initializer.Accept(g)
	g.emit(Instruction{Op: "ASSIGN", Arg1: g.lastOperand, Result: n.Id, Line: n.Location.Line})
}

func (g *Generator) VisitBlockStatement(n *ast.BlockStatement) {
	for _, stmt := range n.Body {
		stmt.Accept(g)
	}
}

func (g *Generator) VisitIfStatement(n *ast.IfStatement) {
	n.Test.Accept(g)
	cond := g.lastOperand

	elseLabel := g.newLabel("IF_ELSE")
	g.emit(Instruction{Op: "IF_FALSE", Arg1: cond, Result: elseLabel, Line: n.Location.Line})

	n.Consequent.Accept(g)

	if n.Alternate == nil {
		g.emitLabel(elseLabel)
		return
	}

	endLabel := g.newLabel("IF_END")
	g.emit(Instruction{Op: "GOTO", Result: endLabel})
	g.emitLabel(elseLabel)
	n.Alternate.Accept(g)
	g.emitLabel(endLabel)
}

func (g *Generator) VisitWhileStatement(n *ast.WhileStatement) {
	startLabel := g.newLabel("WHILE_START")
	endLabel := g.newLabel("WHILE_END")

	g.emitLabel(startLabel)
	n.Test.Accept(g)
	g.emit(Instruction{Op: "IF_FALSE", Arg1: g.lastOperand, Result: endLabel, Line: n.Location.Line})

	g.loopStack = append(g.loopStack, loopFrame{startLabel: startLabel, continueLabel: startLabel, endLabel: endLabel})
	n.Body.Accept(g)
	g.loopStack = g.loopStack[:len(g.loopStack)-1]

	g.emit(Instruction{Op: "GOTO", Result: startLabel})
	g.emitLabel(endLabel)
}

func (g *Generator) VisitForStatement(n *ast.ForStatement) {
	if n.Init != nil {
		n.Init.Accept(g)
	}

	startLabel := g.newLabel("FOR_START")
	continueLabel := g.newLabel("FOR_CONTINUE")
	endLabel := g.newLabel("FOR_END")

	g.emitLabel(startLabel)
	if n.Test != nil {
		n.Test.Accept(g)
		g.emit(Instruction{Op: "IF_FALSE", Arg1: g.lastOperand, Result: endLabel, Line: n.Location.Line})
	}

	g.loopStack = append(g.loopStack, loopFrame{startLabel: startLabel, continueLabel: continueLabel, endLabel: endLabel})
	n.Body.Accept(g)
	g.loopStack = g.loopStack[:len(g.loopStack)-1]

	g.emitLabel(continueLabel)
	if n.Update != nil {
		n.Update.Accept(g)
	}
	g.emit(Instruction{Op: "GOTO", Result: startLabel})
	g.emitLabel(endLabel)
}

func (g *Generator) VisitReturnStatement(n *ast.ReturnStatement) {
	if n.Argument == nil {
		g.emit(Instruction{Op: "RETURN", Line: n.Location.Line})
		return
	}
	n.Argument.Accept(g)
	g.emit(Instruction{Op: "RETURN", Arg1: g.lastOperand, Line: n.Location.Line})
}

func (g *Generator) VisitExpressionStatement(n *ast.ExpressionStatement) {
	if n.Expression == nil {
		return
	}
	n.Expression.Accept(g)
}

func (g *Generator) VisitBreakStatement(n *ast.BreakStatement) {
	if len(g.loopStack) == 0 {
		g.errorf(n.Location, "break outside of loop")
		return
	}
	top := g.loopStack[len(g.loopStack)-1]
	g.emit(Instruction{Op: "GOTO", Result: top.endLabel, Line: n.Location.Line})
}

func (g *Generator) VisitContinueStatement(n *ast.ContinueStatement) {
	if len(g.loopStack) == 0 {
		g.errorf(n.Location, "continue outside of loop")
		return
	}
	top := g.loopStack[len(g.loopStack)-1]
	g.emit(Instruction{Op: "GOTO", Result: top.continueLabel, Line: n.Location.Line})
}
