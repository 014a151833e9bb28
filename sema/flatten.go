/*
File    : minicc/sema/flatten.go

Flatten renders a SymbolTable as a display-friendly mapping
describes: "<scope>.<name>" (bare "<name>" for globals) to a summary of
each symbol's type, scope, declaration line, and initialization state.
Builtin and preprocessor entries are omitted, since they were never written
by the program under analysis.
*/
package sema

// SymbolInfo is one Flatten entry: everything a REPL or CLI "analyze"
// subcommand needs to print about a single declared name.
type SymbolInfo struct {
	Type        string
	Scope       string
	Line        int
	Initialized bool
	IsParameter bool
	ParamTypes  []string
	IsVarArgs   bool
}

// Flatten builds the "<scope>.<name>" -> SymbolInfo map described above.
func (t *SymbolTable) Flatten() map[string]SymbolInfo {
	out := make(map[string]SymbolInfo, len(t.allSymbols))
	for _, sym := range t.allSymbols {
		key := sym.Name
		if sym.ScopeName != "global" && sym.ScopeName != "" {
			key = sym.ScopeName + "." + sym.Name
		}

		var paramTypes []string
		for _, pt := range sym.ParamTypes {
			paramTypes = append(paramTypes, pt.String())
		}

		out[key] = SymbolInfo{
			Type:        sym.Type.String(),
			Scope:       sym.ScopeName,
			Line:        sym.Location.Line,
			Initialized: sym.Initialized,
			IsParameter: sym.IsParameter,
			ParamTypes:  paramTypes,
			IsVarArgs:   sym.IsVarArgs,
		}
	}
	return out
}
