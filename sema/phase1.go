/*
File    : minicc/sema/phase1.go

Phase 1: builds the scope tree and the symbol table, recording the
resulting scope for every block/if/while/for/function node in
a.nodeScopes so Phase 2 can re-walk the AST against the exact same
scopes instead of rebuilding (and re-numbering) them. Identifier reads
are marked in a.uses here too, since this is the only pass with the
traversal order needed to tell a read from a write-only assignment
target; the "used before initialization" check consequently fires
during this phase rather than later, see
DESIGN.md's Open Question notes.
*/
package sema

import (
	"minicc/ast"
	"minicc/types"
)

func (a *analyzer) phase1Program(program *ast.Program, global *Scope) {
	for _, node := range program.Body {
		a.phase1TopLevel(node, global)
	}
}

func (a *analyzer) phase1TopLevel(node ast.Node, global *Scope) {
	switch n := node.(type) {
	case *ast.FunctionDeclaration:
		a.phase1Function(n, global)
	case *ast.VariableDeclaration:
		a.phase1VarDecl(n, global)
	case *ast.Typedef, *ast.Include, *ast.PreprocessorDirective:
		// no symbol of their own beyond what phaseP already seeded
	}
}

func (a *analyzer) phase1Function(fn *ast.FunctionDeclaration, global *Scope) {
	ret := specifierType(fn.ReturnType, fn.IsPointerReturn, false)
	a.funcReturns[fn] = ret

	var paramTypes []types.Type
	for _, p := range fn.Params {
		paramTypes = append(paramTypes, specifierType(p.ParamType, p.IsPointer, p.IsArray))
	}

	fnSym := &Symbol{
		Name:        fn.Id,
		Kind:        FunctionSymbol,
		Type:        ret,
		ParamTypes:  paramTypes,
		Location:    fn.Location,
		Initialized: true,
	}
	if exists := global.Declare(fnSym); exists {
		a.errorAt(fn.Location, "redeclaration of function %q", fn.Id)
	}
	a.table.allSymbols = append(a.table.allSymbols, fnSym)

	if fn.Id == "main" {
		a.sawMain = true
	}

	if fn.Body == nil {
		return // prototype, no body to analyze
	}

	fnScope := a.enterScope(global, "func_"+fn.Id)
	a.nodeScopes[fn] = fnScope

	for i, p := range fn.Params {
		paramSym := &Symbol{
			Name:        p.Name,
			Kind:        VariableSymbol,
			Type:        paramTypes[i],
			Location:    p.Location,
			IsParameter: true,
			Initialized: true,
		}
		fnScope.Declare(paramSym)
		a.table.allSymbols = append(a.table.allSymbols, paramSym)
	}

	for _, stmt := range fn.Body.Body {
		a.phase1Stmt(stmt, fnScope)
	}
}

func (a *analyzer) phase1VarDecl(decl *ast.VariableDeclaration, scope *Scope) {
	base := types.FromSpecifiers(decl.TypeSpecifiers)
	for _, d := range decl.Declarations {
		t := base
		if d.IsPointer {
			t = types.Pointer(t)
		}
		t.ArrayOf = d.IsArray

		sym := &Symbol{
			Name:        d.Id,
			Kind:        VariableSymbol,
			Type:        t,
			Location:    d.Location,
			Initialized: d.Initializer != nil,
		}
		if _, exists := scope.LookupLocal(d.Id); exists {
			a.errorAt(d.Location, "redeclaration of %q in the same scope", d.Id)
		}
		scope.Declare(sym)
		a.table.allVariables = append(a.table.allVariables, sym)
		a.table.allSymbols = append(a.table.allSymbols, sym)

		if d.Initializer != nil {
			a.phase1Expr(d.Initializer, scope)
		}
		if d.ArraySize != nil {
			a.phase1Expr(d.ArraySize, scope)
		}
	}
}

func (a *analyzer) phase1Stmt(node ast.Node, scope *Scope) {
	switch n := node.(type) {
	case *ast.VariableDeclaration:
		a.phase1VarDecl(n, scope)
	case *ast.BlockStatement:
		child := a.enterScope(scope, "block")
		a.nodeScopes[n] = child
		for _, stmt := range n.Body {
			a.phase1Stmt(stmt, child)
		}
	case *ast.IfStatement:
		a.phase1Expr(n.Test, scope)
		consScope := a.enterScope(scope, "if")
		a.nodeScopes[n] = consScope
		a.phase1Stmt(n.Consequent, consScope)
		if n.Alternate != nil {
			altScope := a.enterScope(scope, "else")
			a.nodeScopes[n.Alternate] = altScope
			a.phase1Stmt(n.Alternate, altScope)
		}
	case *ast.WhileStatement:
		a.phase1Expr(n.Test, scope)
		loopScope := a.enterScope(scope, "while")
		a.nodeScopes[n] = loopScope
		a.phase1Stmt(n.Body, loopScope)
	case *ast.ForStatement:
		forScope := a.enterScope(scope, "for")
		a.nodeScopes[n] = forScope
		if n.Init != nil {
			a.phase1Stmt(n.Init, forScope)
		}
		if n.Test != nil {
			a.phase1Expr(n.Test, forScope)
		}
		if n.Update != nil {
			a.phase1Expr(n.Update, forScope)
		}
		a.phase1Stmt(n.Body, forScope)
	case *ast.ReturnStatement:
		if n.Argument != nil {
			a.phase1Expr(n.Argument, scope)
		}
	case *ast.ExpressionStatement:
		if n.Expression != nil {
			a.phase1Expr(n.Expression, scope)
		}
	case *ast.BreakStatement, *ast.ContinueStatement:
		// nothing to resolve; loop-membership is codegen's concern (loopStack)
	}
}

func (a *analyzer) phase1Expr(expr ast.Expression, scope *Scope) {
	switch e := expr.(type) {
	case *ast.Identifier:
		a.recordRead(e, scope)
	case *ast.Literal:
		// nothing to resolve
	case *ast.BinaryExpression:
		a.phase1Expr(e.Left, scope)
		a.phase1Expr(e.Right, scope)
	case *ast.UnaryExpression:
		if ident, ok := e.Argument.(*ast.Identifier); ok && (e.Operator == "++" || e.Operator == "--") {
			a.recordRead(ident, scope)
			if sym, found := scope.Lookup(ident.Name); found {
				sym.Initialized = true
			}
		} else {
			a.phase1Expr(e.Argument, scope)
		}
	case *ast.AssignmentExpression:
		a.phase1Expr(e.Right, scope)
		if ident, ok := e.Left.(*ast.Identifier); ok {
			if sym, found := scope.Lookup(ident.Name); found {
				sym.Initialized = true
			} else {
				a.errorAt(ident.Location, "assignment to undeclared identifier %q", ident.Name)
			}
		} else {
			a.phase1Expr(e.Left, scope)
		}
	case *ast.CallExpression:
		a.phase1Expr(e.Callee, scope)
		for _, arg := range e.Arguments {
			a.phase1Expr(arg, scope)
		}
	}
}

// recordRead resolves ident, marks it used, and, since this is the only
// pass walking statements in source order, diagnoses a read of a
// not-yet-initialized local variable right here instead of waiting for a
// later pass to see it out of context.
func (a *analyzer) recordRead(ident *ast.Identifier, scope *Scope) {
	sym, ok := scope.Lookup(ident.Name)
	if !ok {
		return // Phase 2 reports undefined identifiers where the context makes the distinction (call vs. value) clear
	}
	a.uses[sym] = true
	if sym.Kind == VariableSymbol && !sym.IsParameter && !sym.Initialized {
		a.errorAt(ident.Location, "Variable '%s' used before initialization", ident.Name)
	}
}
