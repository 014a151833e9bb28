/*
File    : minicc/sema/symbol.go

Symbol table entries: variables and function signatures. A function's
Symbol keeps no body and no closure-capturing scope field: nothing in
this pipeline executes, so a function signature only
needs its name, parameter types, and return type for arity/type
checking.
*/
package sema

import (
	"minicc/diag"
	"minicc/types"
)

// SymbolKind classifies what a Symbol names.
type SymbolKind string

const (
	VariableSymbol SymbolKind = "variable"
	FunctionSymbol SymbolKind = "function"
	MacroSymbol    SymbolKind = "macro"
)

// Symbol is one entry in a Scope: a variable, function, or preprocessor
// macro name together with the metadata Phase 1/2/3 need.
type Symbol struct {
	Name      string
	Kind      SymbolKind
	Type      types.Type
	Location  diag.Location
	ScopeName string // set by Scope.Declare to the declaring scope's name

	// Variable-specific.
	IsParameter bool
	Initialized bool

	// Function-specific.
	ParamTypes []types.Type
	IsVarArgs  bool
	IsBuiltin  bool
}

// Signature returns the symbol's callable signature; ok is false for
// non-function symbols.
func (s *Symbol) Signature() (ret types.Type, params []types.Type, varArgs bool, ok bool) {
	if s.Kind != FunctionSymbol {
		return types.Type{}, nil, false, false
	}
	return s.Type, s.ParamTypes, s.IsVarArgs, true
}
