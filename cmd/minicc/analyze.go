/*
File    : minicc/cmd/minicc/analyze.go
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/fatih/color"
	"github.com/google/subcommands"

	"minicc/diag"
	"minicc/pipeline"
)

type analyzeCmd struct {
	symbols bool
}

func (*analyzeCmd) Name() string     { return "analyze" }
func (*analyzeCmd) Synopsis() string { return "Run semantic analysis and print diagnostics" }
func (*analyzeCmd) Usage() string {
	return `analyze <file>:
  Run the lexer, parser, and semantic analyzer over <file> and print every
  diagnostic (errors and warnings) found along the way.
`
}

func (c *analyzeCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.symbols, "symbols", false, "print the resolved symbol table instead of diagnostics summary")
}

func (c *analyzeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, source, err := readSource(f)
	if err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "%v\n", err)
		return subcommands.ExitUsageError
	}

	result := pipeline.Analyze(source)
	red := color.New(color.FgRed)
	yellow := color.New(color.FgYellow)
	for _, d := range result.Diagnostics {
		if d.Severity == diag.Error {
			red.Fprintf(os.Stderr, "%s\n", d.String())
		} else {
			yellow.Fprintf(os.Stderr, "%s\n", d.String())
		}
	}

	if c.symbols && result.Symbols != nil {
		flat := result.Symbols.Flatten()
		names := make([]string, 0, len(flat))
		for name := range flat {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			info := flat[name]
			fmt.Printf("%-20s %-10s scope=%-10s line=%-4d initialized=%v\n", name, info.Type, info.Scope, info.Line, info.Initialized)
		}
	} else if !diag.HasErrors(result.Diagnostics) {
		fmt.Println("no errors")
	}

	if diag.HasErrors(result.Diagnostics) {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
