/*
File    : minicc/sema/phase3.go

Phase 3: final checks that need the whole program's symbol table rather
than a single node's context: a missing main and unused variables. The
third final check, used-before-initialization, fires during
Phase 1 instead (see phase1.go's doc comment) since that is the only pass
with correct sequential traversal order.
*/
package sema

import "minicc/ast"

func (a *analyzer) phase3(program *ast.Program) {
	hasDeclarations := false
	for _, node := range program.Body {
		switch node.(type) {
		case *ast.FunctionDeclaration, *ast.VariableDeclaration:
			hasDeclarations = true
		}
	}
	if hasDeclarations && !a.sawMain {
		a.errorAt(program.Location, "program has declarations but no main function")
	}

	for _, sym := range a.table.allVariables {
		if sym.IsParameter || sym.IsBuiltin || sym.Kind != VariableSymbol {
			continue
		}
		if !a.uses[sym] {
			a.warnAt(sym.Location, "unused variable %q", sym.Name)
		}
	}
}
