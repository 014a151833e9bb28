/*
File    : minicc/cmd/minicc/codegen.go
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/google/subcommands"

	"minicc/codegen"
	"minicc/diag"
	"minicc/pipeline"
)

type codegenCmd struct {
	optimized bool
	asm       bool
	stats     bool
}

func (*codegenCmd) Name() string     { return "codegen" }
func (*codegenCmd) Synopsis() string { return "Generate three-address code and assembly" }
func (*codegenCmd) Usage() string {
	return `codegen <file>:
  Run the full pipeline over <file> and print raw TAC, optimized TAC,
  assembly, and generation statistics. -optimized, -asm, and -stats each
  narrow the output to just that section.
`
}

func (c *codegenCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.optimized, "optimized", false, "print only the optimized TAC/assembly, not raw")
	f.BoolVar(&c.asm, "asm", false, "print only assembly, not TAC")
	f.BoolVar(&c.stats, "stats", false, "print only generation statistics")
}

func printTAC(heading string, instructions []codegen.Instruction) {
	fmt.Println(heading)
	for _, ins := range instructions {
		fmt.Println(ins.String())
	}
}

func (c *codegenCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, source, err := readSource(f)
	if err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "%v\n", err)
		return subcommands.ExitUsageError
	}

	result := pipeline.Generate(source)
	red := color.New(color.FgRed)
	for _, d := range result.Diagnostics {
		red.Fprintf(os.Stderr, "%s\n", d.String())
	}
	if diag.HasErrors(result.Diagnostics) {
		return subcommands.ExitFailure
	}

	if c.stats {
		stats := result.Code.Statistics
		fmt.Printf("instructions:           %d\n", stats.InstructionCount)
		fmt.Printf("optimized instructions: %d\n", stats.OptimizedInstructionCount)
		fmt.Printf("temporaries:            %d\n", stats.TempVariables)
		fmt.Printf("labels:                 %d\n", stats.Labels)
		fmt.Printf("optimization passes:    %d\n", stats.OptimizationPasses)
		fmt.Printf("included headers:       %v\n", stats.IncludedHeaders)
		return subcommands.ExitSuccess
	}

	if c.asm {
		if c.optimized {
			fmt.Print(result.Code.OptimizedAssembly)
		} else {
			fmt.Print(result.Code.RawAssembly)
		}
		return subcommands.ExitSuccess
	}

	if c.optimized {
		printTAC("-- optimized tac --", result.Code.OptimizedTAC)
		return subcommands.ExitSuccess
	}

	// No narrowing flag: print everything codegen produced.
	printTAC("-- tac --", result.Code.RawTAC)
	printTAC("-- optimized tac --", result.Code.OptimizedTAC)
	fmt.Println("-- assembly --")
	fmt.Print(result.Code.RawAssembly)
	fmt.Println("-- optimized assembly --")
	fmt.Print(result.Code.OptimizedAssembly)
	fmt.Println("-- statistics --")
	stats := result.Code.Statistics
	fmt.Printf("instructions:           %d\n", stats.InstructionCount)
	fmt.Printf("optimized instructions: %d\n", stats.OptimizedInstructionCount)
	fmt.Printf("temporaries:            %d\n", stats.TempVariables)
	fmt.Printf("labels:                 %d\n", stats.Labels)
	fmt.Printf("optimization passes:    %d\n", stats.OptimizationPasses)
	fmt.Printf("included headers:       %v\n", stats.IncludedHeaders)

	return subcommands.ExitSuccess
}
