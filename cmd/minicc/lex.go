/*
File    : minicc/cmd/minicc/lex.go
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/google/subcommands"

	"minicc/pipeline"
)

type lexCmd struct{}

func (*lexCmd) Name() string     { return "lex" }
func (*lexCmd) Synopsis() string { return "Tokenize a source file and print its tokens" }
func (*lexCmd) Usage() string {
	return `lex <file>:
  Run the lexer over <file> and print one line per token.
`
}
func (*lexCmd) SetFlags(f *flag.FlagSet) {}

func (c *lexCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, source, err := readSource(f)
	if err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "%v\n", err)
		return subcommands.ExitUsageError
	}

	result := pipeline.Lex(source)
	for _, tok := range result.Tokens {
		fmt.Printf("%-12s %q\t(line %d, col %d)\n", tok.Kind, tok.Value, tok.Line, tok.Column)
	}
	if len(result.Diagnostics) > 0 {
		red := color.New(color.FgRed)
		for _, d := range result.Diagnostics {
			red.Fprintf(os.Stderr, "%s\n", d.String())
		}
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
