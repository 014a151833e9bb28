/*
File    : minicc/pipeline/pipeline.go

Package pipeline exposes minicc's four pure stage functions (Lex, Parse,
Analyze, Generate) as the single place the CLI and REPL call into. Each
wraps its stage with a recover() so a bug deep in a traversal surfaces as
an Internal diagnostic instead of crashing the process, rather than
taking down the CLI or REPL session that called it.
*/
package pipeline

import (
	"minicc/ast"
	"minicc/codegen"
	"minicc/diag"
	"minicc/lexer"
	"minicc/parser"
	"minicc/sema"
)

// LexResult is Lex's return value.
type LexResult struct {
	Tokens      []lexer.Token
	Diagnostics []diag.Diagnostic
}

// Lex tokenizes source and returns every diagnostic the lexer accumulated
// along the way (unterminated strings, unrecognized characters, and so on).
func Lex(source string) (result LexResult) {
	defer func() {
		if r := recover(); r != nil {
			result = LexResult{Diagnostics: []diag.Diagnostic{diag.Internal("lex", r)}}
		}
	}()

	lex := lexer.New(source)
	tokens := lex.ConsumeTokens()
	return LexResult{Tokens: tokens, Diagnostics: lex.Diagnostics}
}

// ParseResult is Parse's return value.
type ParseResult struct {
	Program     *ast.Program
	Diagnostics []diag.Diagnostic
}

// Parse runs Lex followed by the parser, returning a single combined
// diagnostic list (lexer diagnostics first, in source order, followed by
// parser diagnostics). Parse never calls Analyze: a caller that only wants
// a syntax tree pays no semantic-analysis cost.
func Parse(source string) (result ParseResult) {
	defer func() {
		if r := recover(); r != nil {
			result = ParseResult{Diagnostics: []diag.Diagnostic{diag.Internal("parse", r)}}
		}
	}()

	lexed := Lex(source)
	program, parseDiags := parser.Parse(lexed.Tokens)

	diags := make([]diag.Diagnostic, 0, len(lexed.Diagnostics)+len(parseDiags))
	diags = append(diags, lexed.Diagnostics...)
	diags = append(diags, parseDiags...)

	return ParseResult{Program: program, Diagnostics: diags}
}

// AnalyzeResult is Analyze's return value.
type AnalyzeResult struct {
	Program     *ast.Program
	Symbols     *sema.SymbolTable
	Diagnostics []diag.Diagnostic
}

// Analyze runs Parse followed by the semantic analyzer. It still runs the
// analyzer even when parsing produced errors: a partially-recovered
// program (parser error recovery inserts an "<error>" placeholder
// identifier rather than aborting) can still surface additional, genuinely
// independent semantic diagnostics worth reporting in the same pass.
func Analyze(source string) (result AnalyzeResult) {
	defer func() {
		if r := recover(); r != nil {
			result = AnalyzeResult{Diagnostics: []diag.Diagnostic{diag.Internal("analyze", r)}}
		}
	}()

	parsed := Parse(source)
	symbols, semaDiags := sema.Analyze(parsed.Program, source)

	diags := make([]diag.Diagnostic, 0, len(parsed.Diagnostics)+len(semaDiags))
	diags = append(diags, parsed.Diagnostics...)
	diags = append(diags, semaDiags...)

	return AnalyzeResult{Program: parsed.Program, Symbols: symbols, Diagnostics: diags}
}

// GenerateResult is Generate's return value.
type GenerateResult struct {
	Program     *ast.Program
	Symbols     *sema.SymbolTable
	Code        codegen.Result
	Diagnostics []diag.Diagnostic
}

// Generate runs the full pipeline through code generation. If Analyze
// reported any Error-severity diagnostic, Generate stops there and returns
// a zero codegen.Result rather than lowering a program the analyzer has
// already rejected; codegen assumes a well-formed AST and does not
// re-check what sema already checked.
func Generate(source string) (result GenerateResult) {
	defer func() {
		if r := recover(); r != nil {
			result = GenerateResult{Diagnostics: []diag.Diagnostic{diag.Internal("generate", r)}}
		}
	}()

	analyzed := Analyze(source)
	if diag.HasErrors(analyzed.Diagnostics) {
		return GenerateResult{
			Program:     analyzed.Program,
			Symbols:     analyzed.Symbols,
			Diagnostics: analyzed.Diagnostics,
		}
	}

	code, codeDiags := codegen.Generate(analyzed.Program)

	diags := make([]diag.Diagnostic, 0, len(analyzed.Diagnostics)+len(codeDiags))
	diags = append(diags, analyzed.Diagnostics...)
	diags = append(diags, codeDiags...)

	return GenerateResult{
		Program:     analyzed.Program,
		Symbols:     analyzed.Symbols,
		Code:        code,
		Diagnostics: diags,
	}
}
