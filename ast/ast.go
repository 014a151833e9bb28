/*
File    : minicc/ast/ast.go

Package ast defines the Abstract Syntax Tree for minicc's C subset. The
node set is closed (the variants below are the only ones that exist); the
Visitor in visitor.go matches over them exhaustively rather than walking
an arbitrary duck-typed object graph.

The interface hierarchy (Node / Statement / Expression, Accept dispatch)
gives every concrete node type a Node/Statement/Expression shape
dispatched through the single Visitor interface.
*/
package ast

import "minicc/diag"

// Node is implemented by every AST node. Loc reports the node's source
// location. The parser fills it from the token the node starts at, so the
// span does not extend over the node's children.
type Node interface {
	Loc() diag.Location
	Accept(v Visitor)
}

// Statement is implemented by every node that can appear in a statement
// position (a block's body, a function body). Expressions are also
// Statements, with Expression embedding Statement.
type Statement interface {
	Node
	statementNode()
}

// Expression is implemented by every node that produces a value.
type Expression interface {
	Statement
	expressionNode()
}

// SpecifierKind classifies one element of a DeclarationSpecifiers list.
type SpecifierKind string

const (
	TypeSpecifier  SpecifierKind = "TypeSpecifier"
	TypeQualifier  SpecifierKind = "TypeQualifier"
	ComplexTypeTag SpecifierKind = "ComplexType"
)

// Specifier is one element of a declaration's type-specifier list, e.g.
// "int", "const", or "struct Point".
type Specifier struct {
	Kind SpecifierKind
	Name string
	// Tag is the struct/union/enum keyword when Kind == ComplexTypeTag.
	Tag string
}

// ---- Top-level ----

type Program struct {
	Body     []Node
	Location diag.Location
}

func (n *Program) Loc() diag.Location { return n.Location }
func (n *Program) Accept(v Visitor)    { v.VisitProgram(n) }

type Include struct {
	Header   string
	System   bool
	Location diag.Location
}

func (n *Include) Loc() diag.Location { return n.Location }
func (n *Include) Accept(v Visitor)   { v.VisitInclude(n) }
func (n *Include) statementNode()     {}

type PreprocessorDirective struct {
	Directive string
	Location  diag.Location
}

func (n *PreprocessorDirective) Loc() diag.Location { return n.Location }
func (n *PreprocessorDirective) Accept(v Visitor)    { v.VisitPreprocessorDirective(n) }
func (n *PreprocessorDirective) statementNode()      {}

type Typedef struct {
	TypeSpecifiers []Specifier
	Id             string
	Location       diag.Location
}

func (n *Typedef) Loc() diag.Location { return n.Location }
func (n *Typedef) Accept(v Visitor)   { v.VisitTypedef(n) }
func (n *Typedef) statementNode()     {}

type FunctionDeclaration struct {
	Id              string
	ReturnType      []Specifier
	IsPointerReturn bool
	Params          []*Parameter
	Body            *BlockStatement // nil for a prototype with no body
	Location        diag.Location
}

func (n *FunctionDeclaration) Loc() diag.Location { return n.Location }
func (n *FunctionDeclaration) Accept(v Visitor)   { v.VisitFunctionDeclaration(n) }
func (n *FunctionDeclaration) statementNode()     {}

type VariableDeclaration struct {
	TypeSpecifiers []Specifier
	Declarations   []*VariableDeclarator
	Location       diag.Location
}

func (n *VariableDeclaration) Loc() diag.Location { return n.Location }
func (n *VariableDeclaration) Accept(v Visitor)   { v.VisitVariableDeclaration(n) }
func (n *VariableDeclaration) statementNode()     {}

// ---- Declarators ----

type VariableDeclarator struct {
	Id          string
	IsPointer   bool
	IsArray     bool
	ArraySize   Expression // optional, nil if size omitted or not an array
	Initializer Expression // optional
	Location    diag.Location
}

func (n *VariableDeclarator) Loc() diag.Location { return n.Location }
func (n *VariableDeclarator) Accept(v Visitor)   { v.VisitVariableDeclarator(n) }

type Parameter struct {
	Name      string
	ParamType []Specifier
	IsPointer bool
	IsArray   bool
	Location  diag.Location
}

func (n *Parameter) Loc() diag.Location { return n.Location }
func (n *Parameter) Accept(v Visitor)   { v.VisitParameter(n) }

// ---- Statements ----

type BlockStatement struct {
	Body     []Node
	Location diag.Location
}

func (n *BlockStatement) Loc() diag.Location { return n.Location }
func (n *BlockStatement) Accept(v Visitor)   { v.VisitBlockStatement(n) }
func (n *BlockStatement) statementNode()     {}

type IfStatement struct {
	Test       Expression
	Consequent Node
	Alternate  Node // optional
	Location   diag.Location
}

func (n *IfStatement) Loc() diag.Location { return n.Location }
func (n *IfStatement) Accept(v Visitor)   { v.VisitIfStatement(n) }
func (n *IfStatement) statementNode()     {}

type WhileStatement struct {
	Test     Expression
	Body     Node
	Location diag.Location
}

func (n *WhileStatement) Loc() diag.Location { return n.Location }
func (n *WhileStatement) Accept(v Visitor)   { v.VisitWhileStatement(n) }
func (n *WhileStatement) statementNode()     {}

type ForStatement struct {
	Init     Node // *VariableDeclaration or an ExpressionStatement, optional
	Test     Expression // optional
	Update   Expression // optional
	Body     Node
	Location diag.Location
}

func (n *ForStatement) Loc() diag.Location { return n.Location }
func (n *ForStatement) Accept(v Visitor)   { v.VisitForStatement(n) }
func (n *ForStatement) statementNode()     {}

type ReturnStatement struct {
	Argument Expression // optional
	Location diag.Location
}

func (n *ReturnStatement) Loc() diag.Location { return n.Location }
func (n *ReturnStatement) Accept(v Visitor)   { v.VisitReturnStatement(n) }
func (n *ReturnStatement) statementNode()     {}

type ExpressionStatement struct {
	Expression Expression
	Location   diag.Location
}

func (n *ExpressionStatement) Loc() diag.Location { return n.Location }
func (n *ExpressionStatement) Accept(v Visitor)   { v.VisitExpressionStatement(n) }
func (n *ExpressionStatement) statementNode()     {}

type BreakStatement struct {
	Location diag.Location
}

func (n *BreakStatement) Loc() diag.Location { return n.Location }
func (n *BreakStatement) Accept(v Visitor)   { v.VisitBreakStatement(n) }
func (n *BreakStatement) statementNode()     {}

type ContinueStatement struct {
	Location diag.Location
}

func (n *ContinueStatement) Loc() diag.Location { return n.Location }
func (n *ContinueStatement) Accept(v Visitor)   { v.VisitContinueStatement(n) }
func (n *ContinueStatement) statementNode()     {}

// ---- Expressions ----

type Identifier struct {
	Name     string
	Location diag.Location
}

func (n *Identifier) Loc() diag.Location { return n.Location }
func (n *Identifier) Accept(v Visitor)   { v.VisitIdentifier(n) }
func (n *Identifier) statementNode()     {}
func (n *Identifier) expressionNode()    {}

// LiteralKind names the surface form a Literal was written in; the
// semantic analyzer maps these to C types during type inference.
type LiteralKind string

const (
	StringLiteral LiteralKind = "string"
	NumberLiteral LiteralKind = "number"
	CharLiteral   LiteralKind = "char"
)

type Literal struct {
	Value     string
	ValueType LiteralKind
	Location  diag.Location
}

func (n *Literal) Loc() diag.Location { return n.Location }
func (n *Literal) Accept(v Visitor)   { v.VisitLiteral(n) }
func (n *Literal) statementNode()     {}
func (n *Literal) expressionNode()    {}

type BinaryExpression struct {
	Operator string
	Left     Expression
	Right    Expression
	Location diag.Location
}

func (n *BinaryExpression) Loc() diag.Location { return n.Location }
func (n *BinaryExpression) Accept(v Visitor)   { v.VisitBinaryExpression(n) }
func (n *BinaryExpression) statementNode()     {}
func (n *BinaryExpression) expressionNode()    {}

type UnaryExpression struct {
	Operator string
	Argument Expression
	Prefix   bool
	Location diag.Location
}

func (n *UnaryExpression) Loc() diag.Location { return n.Location }
func (n *UnaryExpression) Accept(v Visitor)   { v.VisitUnaryExpression(n) }
func (n *UnaryExpression) statementNode()     {}
func (n *UnaryExpression) expressionNode()    {}

type AssignmentExpression struct {
	Operator string
	Left     Expression
	Right    Expression
	Location diag.Location
}

func (n *AssignmentExpression) Loc() diag.Location { return n.Location }
func (n *AssignmentExpression) Accept(v Visitor)   { v.VisitAssignmentExpression(n) }
func (n *AssignmentExpression) statementNode()     {}
func (n *AssignmentExpression) expressionNode()    {}

type CallExpression struct {
	Callee    Expression
	Arguments []Expression
	Location  diag.Location
}

func (n *CallExpression) Loc() diag.Location { return n.Location }
func (n *CallExpression) Accept(v Visitor)   { v.VisitCallExpression(n) }
func (n *CallExpression) statementNode()     {}
func (n *CallExpression) expressionNode()    {}
