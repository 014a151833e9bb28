/*
File    : minicc/cmd/minicc/check.go
*/
package main

import (
	"context"
	"flag"
	"os"

	"github.com/fatih/color"
	"github.com/google/subcommands"

	"minicc/diag"
	"minicc/pipeline"
)

// checkCmd is analyze, but exit-code only: the shape a CI step or editor
// integration wants, reporting pass/fail and a diagnostic count without
// dumping tokens, an AST, generated code, or each diagnostic's text.
type checkCmd struct{}

func (*checkCmd) Name() string     { return "check" }
func (*checkCmd) Synopsis() string { return "Run the pipeline and report pass/fail for scripting" }
func (*checkCmd) Usage() string {
	return `check <file>:
  Run the lexer, parser, and semantic analyzer over <file> and print one
  pass/fail line plus a diagnostic count, exiting non-zero on error.
`
}
func (*checkCmd) SetFlags(f *flag.FlagSet) {}

func (c *checkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	path, source, err := readSource(f)
	if err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "%v\n", err)
		return subcommands.ExitUsageError
	}

	result := pipeline.Analyze(source)
	red := color.New(color.FgRed)
	green := color.New(color.FgGreen)

	if diag.HasErrors(result.Diagnostics) {
		red.Fprintf(os.Stderr, "%s: FAIL (%d diagnostics)\n", path, len(result.Diagnostics))
		return subcommands.ExitFailure
	}
	green.Fprintf(os.Stdout, "%s: OK (%d diagnostics)\n", path, len(result.Diagnostics))
	return subcommands.ExitSuccess
}
