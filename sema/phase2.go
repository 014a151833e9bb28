/*
File    : minicc/sema/phase2.go

Phase 2: re-walks the AST using the scopes Phase 1 already built (via
a.nodeScopes, so block numbering stays exactly as Phase 1 assigned it) and
computes every expression's type bottom-up, emitting a diagnostic wherever
compat() rejects an assignment or call argument.
*/
package sema

import (
	"strconv"
	"strings"

	"minicc/ast"
	"minicc/types"
)

func (a *analyzer) phase2Program(program *ast.Program, global *Scope) {
	for _, node := range program.Body {
		a.phase2TopLevel(node, global)
	}
}

func (a *analyzer) phase2TopLevel(node ast.Node, global *Scope) {
	fn, ok := node.(*ast.FunctionDeclaration)
	if !ok || fn.Body == nil {
		return
	}
	fnScope := a.nodeScopes[fn]
	ret := a.funcReturns[fn]
	for _, stmt := range fn.Body.Body {
		a.phase2Stmt(stmt, fnScope, ret)
	}
}

func (a *analyzer) phase2Stmt(node ast.Node, scope *Scope, ret types.Type) {
	switch n := node.(type) {
	case *ast.VariableDeclaration:
		a.phase2VarDecl(n, scope)
	case *ast.BlockStatement:
		child := a.nodeScopes[n]
		for _, stmt := range n.Body {
			a.phase2Stmt(stmt, child, ret)
		}
	case *ast.IfStatement:
		a.inferType(n.Test, scope)
		a.phase2Stmt(n.Consequent, a.nodeScopes[n], ret)
		if n.Alternate != nil {
			a.phase2Stmt(n.Alternate, a.nodeScopes[n.Alternate], ret)
		}
	case *ast.WhileStatement:
		a.inferType(n.Test, scope)
		a.phase2Stmt(n.Body, a.nodeScopes[n], ret)
	case *ast.ForStatement:
		forScope := a.nodeScopes[n]
		if n.Init != nil {
			a.phase2Stmt(n.Init, forScope, ret)
		}
		if n.Test != nil {
			a.inferType(n.Test, forScope)
		}
		if n.Update != nil {
			a.inferType(n.Update, forScope)
		}
		a.phase2Stmt(n.Body, forScope, ret)
	case *ast.ReturnStatement:
		if n.Argument == nil {
			if ret.Base != types.Void || ret.IsPointer() {
				a.warnAt(n.Location, "non-void function returns no value")
			}
			return
		}
		argType := a.inferType(n.Argument, scope)
		if ret.Base == types.Void && !ret.IsPointer() {
			a.warnAt(n.Location, "void function returns a value")
		} else if !types.Compat(ret, argType) {
			a.errorAt(n.Location, "cannot return %s from function declared to return %s", argType, ret)
		}
	case *ast.ExpressionStatement:
		if n.Expression != nil {
			a.inferType(n.Expression, scope)
		}
	}
}

func (a *analyzer) phase2VarDecl(decl *ast.VariableDeclaration, scope *Scope) {
	base := types.FromSpecifiers(decl.TypeSpecifiers)
	for _, d := range decl.Declarations {
		if d.Initializer == nil {
			continue
		}
		declType := base
		if d.IsPointer {
			declType = types.Pointer(declType)
		}
		initType := a.inferType(d.Initializer, scope)
		if !types.Compat(declType, initType) {
			a.errorAt(d.Location, "cannot initialize %q of type %s with value of type %s", d.Id, declType, initType)
		}
	}
}

// inferType computes expr's type bottom-up, resolving
// identifiers/calls against scope as it goes.
func (a *analyzer) inferType(expr ast.Expression, scope *Scope) types.Type {
	switch e := expr.(type) {
	case *ast.Literal:
		return literalType(e)
	case *ast.Identifier:
		sym, ok := scope.Lookup(e.Name)
		if !ok {
			a.errorAt(e.Location, "undefined identifier %q", e.Name)
			return types.Basic(types.Int)
		}
		return sym.Type
	case *ast.BinaryExpression:
		left := a.inferType(e.Left, scope)
		right := a.inferType(e.Right, scope)
		switch e.Operator {
		case "==", "!=", "<", ">", "<=", ">=", "&&", "||":
			return types.Basic(types.Int)
		default:
			return types.Promote(left, right)
		}
	case *ast.UnaryExpression:
		arg := a.inferType(e.Argument, scope)
		switch e.Operator {
		case "&":
			return types.Pointer(arg)
		case "*":
			if arg.PointerDepth > 0 {
				return types.Type{Base: arg.Base, PointerDepth: arg.PointerDepth - 1}
			}
			a.errorAt(e.Location, "cannot dereference non-pointer type %s", arg)
			return arg
		case "!":
			return types.Basic(types.Int)
		default:
			return arg
		}
	case *ast.AssignmentExpression:
		leftType := a.inferType(e.Left, scope)
		rightType := a.inferType(e.Right, scope)
		if !types.Compat(leftType, rightType) {
			a.errorAt(e.Location, "cannot assign %s to %s", rightType, leftType)
		}
		return leftType
	case *ast.CallExpression:
		return a.inferCall(e, scope)
	default:
		return types.Basic(types.Int)
	}
}

func (a *analyzer) inferCall(call *ast.CallExpression, scope *Scope) types.Type {
	callee, ok := call.Callee.(*ast.Identifier)
	if !ok {
		return types.Basic(types.Int)
	}
	sym, found := scope.Lookup(callee.Name)
	if !found || sym.Kind != FunctionSymbol {
		a.errorAt(callee.Location, "Call to undefined function '%s'", callee.Name)
		for _, arg := range call.Arguments {
			a.inferType(arg, scope)
		}
		return types.Basic(types.Int)
	}
	a.uses[sym] = true

	argTypes := make([]types.Type, len(call.Arguments))
	for i, arg := range call.Arguments {
		argTypes[i] = a.inferType(arg, scope)
	}

	if len(argTypes) < len(sym.ParamTypes) || (!sym.IsVarArgs && len(argTypes) != len(sym.ParamTypes)) {
		a.errorAt(call.Location, "Function '%s' called with %d arguments, but expected %d", callee.Name, len(argTypes), len(sym.ParamTypes))
	} else {
		for i, want := range sym.ParamTypes {
			if !types.Compat(want, argTypes[i]) {
				a.errorAt(call.Arguments[i].Loc(), "argument %d to %q: cannot use %s as %s", i+1, callee.Name, argTypes[i], want)
			}
		}
	}
	return sym.Type
}

func literalType(lit *ast.Literal) types.Type {
	switch lit.ValueType {
	case ast.StringLiteral:
		return types.Pointer(types.Basic(types.Char))
	case ast.CharLiteral:
		return types.Basic(types.Int)
	case ast.NumberLiteral:
		if strings.Contains(lit.Value, ".") {
			return types.Basic(types.Float)
		}
		if _, err := strconv.ParseInt(lit.Value, 10, 64); err != nil {
			return types.Basic(types.Float)
		}
		return types.Basic(types.Int)
	default:
		return types.Basic(types.Int)
	}
}
