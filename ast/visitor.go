/*
File    : minicc/ast/visitor.go

Visitor implements exhaustive dispatch over the closed AST node set (one
Visit method per concrete node type), the standard double-dispatch idiom
for tree-walking interpreters.
*/
package ast

// Visitor is implemented by anything that walks the whole AST through
// Accept dispatch: the printer in print.go, the code generator in
// package codegen. The semantic analyzer walks the tree with its own
// type switches instead, since its phases need scope-stack bookkeeping
// Accept's single-node-at-a-time shape doesn't carry.
type Visitor interface {
	VisitProgram(node *Program)
	VisitInclude(node *Include)
	VisitPreprocessorDirective(node *PreprocessorDirective)
	VisitTypedef(node *Typedef)
	VisitFunctionDeclaration(node *FunctionDeclaration)
	VisitVariableDeclaration(node *VariableDeclaration)

	VisitVariableDeclarator(node *VariableDeclarator)
	VisitParameter(node *Parameter)

	VisitBlockStatement(node *BlockStatement)
	VisitIfStatement(node *IfStatement)
	VisitWhileStatement(node *WhileStatement)
	VisitForStatement(node *ForStatement)
	VisitReturnStatement(node *ReturnStatement)
	VisitExpressionStatement(node *ExpressionStatement)
	VisitBreakStatement(node *BreakStatement)
	VisitContinueStatement(node *ContinueStatement)

	VisitIdentifier(node *Identifier)
	VisitLiteral(node *Literal)
	VisitBinaryExpression(node *BinaryExpression)
	VisitUnaryExpression(node *UnaryExpression)
	VisitAssignmentExpression(node *AssignmentExpression)
	VisitCallExpression(node *CallExpression)
}
