/*
File    : minicc/cmd/minicc/main.go

Command minicc is the CLI front end for the minicc compiler pipeline. Each
pipeline stage is its own subcommand (lex, parse, analyze, codegen, check),
plus an interactive repl subcommand, registered with google/subcommands.
*/
package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"
)

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")

	subcommands.Register(&lexCmd{}, "")
	subcommands.Register(&parseCmd{}, "")
	subcommands.Register(&analyzeCmd{}, "")
	subcommands.Register(&codegenCmd{}, "")
	subcommands.Register(&checkCmd{}, "")
	subcommands.Register(&replCmd{}, "")

	flag.Parse()
	ctx := context.Background()
	os.Exit(int(subcommands.Execute(ctx)))
}

// readSource reads the single positional file argument every non-repl
// subcommand takes; f.Args()[0] is the source path.
func readSource(f *flag.FlagSet) (string, string, error) {
	args := f.Args()
	if len(args) < 1 {
		return "", "", errNoFile
	}
	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return path, "", err
	}
	return path, string(data), nil
}

var errNoFile = flagError("no source file provided")

type flagError string

func (e flagError) Error() string { return string(e) }
