/*
File    : minicc/sema/analyze.go

Package sema implements minicc's three-phase semantic analyzer:
symbol table construction, bottom-up type checking, and a final
validation pass. Analyze is one of the pipeline's four pure entry points:
it never mutates the AST and returns its findings as accumulated
diagnostics rather than stopping at the first error, the same
fail-soft discipline the lexer and parser use.
*/
package sema

import (
	"fmt"
	"strconv"
	"strings"

	"minicc/ast"
	"minicc/diag"
	"minicc/types"
)

// SymbolTable is Analyze's result: the builtin and global scopes, reachable
// from each other via Scope.Parent, plus every variable symbol declared
// anywhere (used by the unused-variable check).
type SymbolTable struct {
	Builtin *Scope
	Global  *Scope

	allVariables []*Symbol
	allSymbols   []*Symbol // every declared symbol (functions, params, locals), for Flatten
}

// analyzer carries the mutable state threaded through all phases.
type analyzer struct {
	table        *SymbolTable
	diagnostics  []diag.Diagnostic
	blockCounter int
	uses         map[*Symbol]bool
	nodeScopes   map[ast.Node]*Scope
	funcReturns  map[*ast.FunctionDeclaration]types.Type
	sawMain      bool
}

// Analyze runs all three phases over program and returns the resulting
// symbol table plus every diagnostic accumulated along the way.
// The source parameter is accepted (rather than inferred from the AST) so
// future diagnostic rendering can quote the exact source snippet a
// Location spans; Analyze itself never reads it.
func Analyze(program *ast.Program, source string) (*SymbolTable, []diag.Diagnostic) {
	builtin := NewScope("builtin", nil)
	seedBuiltins(builtin)
	preprocessor := NewScope("preprocessor", builtin)
	global := NewScope("global", preprocessor)

	a := &analyzer{
		table:       &SymbolTable{Builtin: builtin, Global: global},
		uses:        make(map[*Symbol]bool),
		nodeScopes:  make(map[ast.Node]*Scope),
		funcReturns: make(map[*ast.FunctionDeclaration]types.Type),
	}

	a.phaseP(program, preprocessor)
	a.phase1Program(program, global)
	a.phase2Program(program, global)
	a.phase3(program)

	return a.table, a.diagnostics
}

func (a *analyzer) errorAt(loc diag.Location, format string, args ...any) {
	a.diagnostics = append(a.diagnostics, diag.Diagnostic{
		Message:  fmt.Sprintf(format, args...),
		Line:     loc.Line,
		Severity: diag.Error,
		Location: loc,
	})
}

func (a *analyzer) warnAt(loc diag.Location, format string, args ...any) {
	a.diagnostics = append(a.diagnostics, diag.Diagnostic{
		Message:  fmt.Sprintf(format, args...),
		Line:     loc.Line,
		Severity: diag.Warning,
		Location: loc,
	})
}

// phaseP seeds the preprocessor scope from every #define the parser
// recorded as a PreprocessorDirective ("define NAME VALUE..."); #include
// nodes carry no symbol of their own.
func (a *analyzer) phaseP(program *ast.Program, scope *Scope) {
	for _, node := range program.Body {
		directive, ok := node.(*ast.PreprocessorDirective)
		if !ok {
			continue
		}
		fields := strings.Fields(directive.Directive)
		if len(fields) < 2 || fields[0] != "define" {
			continue
		}
		scope.Declare(&Symbol{
			Name:        fields[1],
			Kind:        MacroSymbol,
			Type:        macroType(fields),
			Location:    directive.Location,
			Initialized: true,
		})
	}
}

// macroType guesses a #define's value type from its literal text, purely
// so a macro used in an arithmetic context has some numeric type to
// promote with rather than Void.
func macroType(fields []string) types.Type {
	if len(fields) < 3 {
		return types.Basic(types.Int)
	}
	if _, err := strconv.ParseInt(fields[2], 10, 64); err == nil {
		return types.Basic(types.Int)
	}
	if _, err := strconv.ParseFloat(fields[2], 64); err == nil {
		return types.Basic(types.Float)
	}
	return types.Pointer(types.Basic(types.Char))
}

func (a *analyzer) enterScope(parent *Scope, kind string) *Scope {
	a.blockCounter++
	return NewScope(fmt.Sprintf("%s%d", kind, a.blockCounter), parent)
}

func specifierType(specs []ast.Specifier, pointer bool, array bool) types.Type {
	t := types.FromSpecifiers(specs)
	if pointer {
		t = types.Pointer(t)
	}
	t.ArrayOf = array
	return t
}
