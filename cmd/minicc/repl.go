/*
File    : minicc/cmd/minicc/repl.go
*/
package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"

	"minicc/repl"
)

const (
	replVersion = "v0.1.0"
	replAuthor  = "minicc"
	replLicense = "MIT"
	replPrompt  = "minicc> "
	replLine    = "----------------------------------------------------------------"
	replBanner  = `
  _ __ ___ (_)_ __ (_) ___ ___
 | '_ ' _ \| | '_ \| |/ __/ __|
 | | | | | | | | | | | (_| (__
 |_| |_| |_|_|_| |_|_|\___\___|
`
)

type replCmd struct{}

func (*replCmd) Name() string     { return "repl" }
func (*replCmd) Synopsis() string { return "Start an interactive compiler-pipeline session" }
func (*replCmd) Usage() string {
	return `repl:
  Start an interactive session that runs each line through the lexer,
  parser, semantic analyzer, and code generator.
`
}
func (*replCmd) SetFlags(f *flag.FlagSet) {}

func (c *replCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r := repl.NewRepl(replBanner, replVersion, replAuthor, replLine, replLicense, replPrompt)
	r.Start(os.Stdin, os.Stdout)
	return subcommands.ExitSuccess
}
