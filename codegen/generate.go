/*
File    : minicc/codegen/generate.go

Generate is codegen's one public entry point: it lowers the AST to TAC,
optimizes a copy of it, and emits assembly and an illustrative machine-code
byte stream for both the raw and optimized instruction streams, returning
everything the pipeline package needs for the "codegen" CLI subcommand
and the REPL's code output.
*/
package codegen

import (
	"minicc/ast"
	"minicc/diag"
)

// Statistics summarizes one Generate call, the numbers the "codegen"
// subcommand prints in its statistics section.
type Statistics struct {
	InstructionCount          int
	OptimizedInstructionCount int
	TempVariables             int
	Labels                    int
	OptimizationPasses        int
	IncludedHeaders           []string
}

// Result is everything Generate produces for one program.
type Result struct {
	RawTAC       []Instruction
	OptimizedTAC []Instruction

	RawAssembly       string
	OptimizedAssembly string

	RawMachineCode       []byte
	OptimizedMachineCode []byte

	// StringLiterals maps each generated string label (LC0, LC1, ...) to
	// the literal text it stands for, quotes included.
	StringLiterals map[string]string

	Statistics Statistics
}

// Generate lowers program to TAC, optimizes it, and emits assembly and
// illustrative machine code for both versions. It never consults a symbol
// table: by the time codegen runs, Analyze has already rejected any
// program with unresolved identifiers or type errors, so lowering assumes
// a well-formed AST and focuses purely on structural translation.
func Generate(program *ast.Program) (Result, []diag.Diagnostic) {
	g := NewGenerator()
	program.Accept(g)

	optimized, passes := Optimize(g.instructions)

	rawAsm := EmitAssembly(g.instructions, g.stringLiterals)
	optimizedAsm := EmitAssembly(optimized, g.stringLiterals)

	result := Result{
		RawTAC:               g.instructions,
		OptimizedTAC:         optimized,
		RawAssembly:          rawAsm,
		OptimizedAssembly:    optimizedAsm,
		RawMachineCode:       EncodeIllustrative(rawAsm),
		OptimizedMachineCode: EncodeIllustrative(optimizedAsm),
		StringLiterals:       g.stringLiterals,
		Statistics: Statistics{
			InstructionCount:          len(g.instructions),
			OptimizedInstructionCount: len(optimized),
			TempVariables:             g.tempCounter,
			Labels:                    g.labelCount(),
			OptimizationPasses:        passes,
			IncludedHeaders:           g.includedHeaders,
		},
	}

	return result, g.diagnostics
}
