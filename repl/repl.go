/*
File    : minicc/repl/repl.go

Package repl implements the interactive Read-Eval-Print Loop for minicc.
The REPL reads one statement or block at a time and runs it through all
four pipeline stages, printing stage output in yellow and diagnostics in
red so a student can watch a line of C turn into tokens, an AST, a symbol table,
and finally three-address code and assembly.

The REPL uses the readline library for line editing and history and
integrates with the pipeline package instead of an evaluator, since
minicc is a compiler pipeline rather than an interpreter.
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"minicc/ast"
	"minicc/diag"
	"minicc/pipeline"
)

// Color definitions for REPL output.
// - blueColor: decorative lines and separators
// - yellowColor: stage results (tokens, AST dump, TAC, assembly)
// - redColor: diagnostics and runtime errors
// - greenColor: banner and success messages
// - cyanColor: informational messages and instructions
var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl represents the Read-Eval-Print Loop instance. It encapsulates all
// the configuration needed to run an interactive session.
type Repl struct {
	Banner  string // ASCII art banner displayed at startup
	Version string // Version string of the compiler
	Author  string // Author contact information
	Line    string // Separator line for visual formatting
	License string // Software license information
	Prompt  string // Command prompt shown to the user (e.g., "minicc> ")

	// ShowTokens, ShowAST, ShowSymbols, and ShowCode gate which stages print
	// their output; all four default to true via NewRepl.
	ShowTokens  bool
	ShowAST     bool
	ShowSymbols bool
	ShowCode    bool
}

// NewRepl creates and initializes a new REPL instance with every stage's
// output enabled.
func NewRepl(banner string, version string, author string, line string, license string, prompt string) *Repl {
	return &Repl{
		Banner: banner, Version: version, Author: author,
		Line: line, License: license, Prompt: prompt,
		ShowTokens: true, ShowAST: true, ShowSymbols: true, ShowCode: true,
	}
}

// PrintBannerInfo displays the welcome banner and usage instructions.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to minicc!")
	cyanColor.Fprintf(writer, "%s\n", "Type a C statement or declaration and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start begins the REPL main loop: print the banner, read lines with
// readline until '.exit' or EOF, accumulating lines into one block while
// braces are unbalanced (a function or block spanning several lines)
// before running the block through executeWithRecovery.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	var pending strings.Builder
	depth := 0

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" && depth == 0 {
			continue
		}
		if line == ".exit" && depth == 0 {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		rl.SaveHistory(line)
		depth += braceDelta(line)
		pending.WriteString(line)
		pending.WriteString("\n")

		if depth > 0 {
			rl.SetPrompt(strings.Repeat(" ", len(r.Prompt)))
			continue
		}

		block := pending.String()
		pending.Reset()
		depth = 0
		rl.SetPrompt(r.Prompt)
		r.executeWithRecovery(writer, block)
	}
}

// braceDelta returns the net change in brace nesting depth a line
// contributes, so Start can tell a closed statement from one still
// spanning an open function or block body.
func braceDelta(line string) int {
	delta := 0
	for _, r := range line {
		switch r {
		case '{':
			delta++
		case '}':
			delta--
		}
	}
	return delta
}

// executeWithRecovery runs one line through the pipeline with panic
// recovery, so a bug in any stage prints as a runtime error and the REPL
// keeps running rather than crashing the session.
func (r *Repl) executeWithRecovery(writer io.Writer, line string) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[RUNTIME ERROR] %v\n", recovered)
		}
	}()

	result := pipeline.Generate(line)

	if r.ShowTokens {
		tokens := pipeline.Lex(line)
		yellowColor.Fprintf(writer, "-- tokens --\n")
		for _, tok := range tokens.Tokens {
			yellowColor.Fprintf(writer, "  %s %q\n", tok.Kind, tok.Value)
		}
	}

	if r.ShowAST && result.Program != nil {
		yellowColor.Fprintf(writer, "-- ast --\n")
		yellowColor.Fprintf(writer, "%s", ast.Dump(result.Program))
	}

	if diag.HasErrors(result.Diagnostics) || len(result.Diagnostics) > 0 {
		redColor.Fprintf(writer, "-- diagnostics --\n")
		for _, d := range result.Diagnostics {
			redColor.Fprintf(writer, "  %s\n", d.String())
		}
	}

	if diag.HasErrors(result.Diagnostics) {
		return
	}

	if r.ShowSymbols && result.Symbols != nil {
		yellowColor.Fprintf(writer, "-- symbols --\n")
		for name, info := range result.Symbols.Flatten() {
			yellowColor.Fprintf(writer, "  %s: %s (scope=%s, line=%d, initialized=%v)\n", name, info.Type, info.Scope, info.Line, info.Initialized)
		}
	}

	if r.ShowCode {
		yellowColor.Fprintf(writer, "-- tac --\n")
		for _, ins := range result.Code.RawTAC {
			yellowColor.Fprintf(writer, "  %s\n", ins.String())
		}
		yellowColor.Fprintf(writer, "-- assembly --\n")
		yellowColor.Fprintf(writer, "%s", result.Code.RawAssembly)
	}
}
