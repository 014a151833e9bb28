/*
File    : minicc/sema/builtins.go

Phase P's fixed builtin-scope seed: the subset of the C standard library
the standard library functions a small C program commonly calls (printf/scanf variadic, malloc family,
string/io helpers). Each gets a declared return type and parameter types so
Phase 2's arity and compat() checks apply to calls against them exactly as
they would to a user-declared prototype.
*/
package sema

import "minicc/types"

// builtinSignature is the declarative shape seedBuiltins reads from; kept
// separate from Symbol so the table below stays readable as plain data.
type builtinSignature struct {
	name      string
	ret       types.Kind
	retPtr    int
	params    []types.Type
	isVarArgs bool
}

var builtinSignatures = []builtinSignature{
	{name: "printf", ret: types.Int, params: []types.Type{types.Pointer(types.Basic(types.Char))}, isVarArgs: true},
	{name: "scanf", ret: types.Int, params: []types.Type{types.Pointer(types.Basic(types.Char))}, isVarArgs: true},
	{name: "malloc", ret: types.Void, retPtr: 1, params: []types.Type{types.Basic(types.Int)}},
	{name: "free", ret: types.Void, params: []types.Type{types.Pointer(types.Basic(types.Void))}},
	{name: "strcpy", ret: types.Char, retPtr: 1, params: []types.Type{
		types.Pointer(types.Basic(types.Char)), types.Pointer(types.Basic(types.Char)),
	}},
	{name: "strlen", ret: types.Int, params: []types.Type{types.Pointer(types.Basic(types.Char))}},
	{name: "puts", ret: types.Int, params: []types.Type{types.Pointer(types.Basic(types.Char))}},
	{name: "putchar", ret: types.Int, params: []types.Type{types.Basic(types.Int)}},
	{name: "getchar", ret: types.Int},
	{name: "fopen", ret: types.Void, retPtr: 1, params: []types.Type{
		types.Pointer(types.Basic(types.Char)), types.Pointer(types.Basic(types.Char)),
	}},
	{name: "fclose", ret: types.Int, params: []types.Type{types.Pointer(types.Basic(types.Void))}},
	{name: "exit", ret: types.Void, params: []types.Type{types.Basic(types.Int)}},
	{name: "memcpy", ret: types.Void, retPtr: 1, params: []types.Type{
		types.Pointer(types.Basic(types.Void)), types.Pointer(types.Basic(types.Void)), types.Basic(types.Int),
	}},
	{name: "memset", ret: types.Void, retPtr: 1, params: []types.Type{
		types.Pointer(types.Basic(types.Void)), types.Basic(types.Int), types.Basic(types.Int),
	}},
}

// seedBuiltins populates scope with one FunctionSymbol per builtinSignature.
func seedBuiltins(scope *Scope) {
	for _, sig := range builtinSignatures {
		ret := types.Type{Base: sig.ret, PointerDepth: sig.retPtr}
		scope.Declare(&Symbol{
			Name:       sig.name,
			Kind:       FunctionSymbol,
			Type:       ret,
			ParamTypes: sig.params,
			IsVarArgs:  sig.isVarArgs,
			IsBuiltin:  true,
			Initialized: true,
		})
	}
}
