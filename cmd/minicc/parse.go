/*
File    : minicc/cmd/minicc/parse.go
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/google/subcommands"

	"minicc/ast"
	"minicc/pipeline"
)

type parseCmd struct{}

func (*parseCmd) Name() string     { return "parse" }
func (*parseCmd) Synopsis() string { return "Parse a source file and print its AST" }
func (*parseCmd) Usage() string {
	return `parse <file>:
  Run the lexer and parser over <file> and print the resulting AST.
`
}
func (*parseCmd) SetFlags(f *flag.FlagSet) {}

func (c *parseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, source, err := readSource(f)
	if err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "%v\n", err)
		return subcommands.ExitUsageError
	}

	result := pipeline.Parse(source)
	red := color.New(color.FgRed)
	for _, d := range result.Diagnostics {
		red.Fprintf(os.Stderr, "%s\n", d.String())
	}
	if result.Program != nil {
		fmt.Print(ast.Dump(result.Program))
	}
	if len(result.Diagnostics) > 0 {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
