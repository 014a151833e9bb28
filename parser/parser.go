/*
File    : minicc/parser/parser.go

Package parser implements a recursive-descent / Pratt parser for minicc's C
subset. It converts a lexer.Token stream into an *ast.Program.

The parser uses a two-token lookahead (CurrToken/NextToken, advance())
and an error-collection discipline (never panics, records a diagnostic
and keeps going) with no constant-folding environment threaded through
parsing: minicc separates parsing (pure AST construction) from constant
folding, which belongs to the codegen optimizer instead.
*/
package parser

import (
	"fmt"

	"minicc/ast"
	"minicc/diag"
	"minicc/lexer"
)

// Parser holds parsing state: the token stream (already fully lexed, since
// the lexer has no side effects to interleave) and two-token lookahead.
type Parser struct {
	tokens []lexer.Token
	pos    int

	CurrToken lexer.Token
	NextToken lexer.Token

	Diagnostics []diag.Diagnostic
}

// New creates a Parser over an already-tokenized source.
func New(tokens []lexer.Token) *Parser {
	// Comments never participate in the grammar; drop them here so every
	// parse* function can ignore Comment entirely, as if the lexer had
	// never emitted comment tokens in the first place.
	filtered := make([]lexer.Token, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Kind != lexer.Comment {
			filtered = append(filtered, tok)
		}
	}

	par := &Parser{tokens: filtered}
	par.advance()
	par.advance()
	return par
}

// Parse parses a full program. Declarations are recognized in priority of
// #include / preprocessor, typedef, function, variable.
func Parse(tokens []lexer.Token) (*ast.Program, []diag.Diagnostic) {
	par := New(tokens)
	program := par.parseProgram()
	return program, par.Diagnostics
}

func (par *Parser) eofToken() lexer.Token {
	return lexer.Token{Kind: lexer.EOF, Value: "EOF", Line: par.CurrToken.Line, Column: par.CurrToken.Column}
}

func (par *Parser) tokenAt(i int) lexer.Token {
	if i < 0 || i >= len(par.tokens) {
		return par.eofToken()
	}
	return par.tokens[i]
}

// advance moves CurrToken/NextToken forward by one slot, the parser's
// two-token lookahead scheme.
func (par *Parser) advance() {
	par.CurrToken = par.NextToken
	par.NextToken = par.tokenAt(par.pos)
	par.pos++
}

func (par *Parser) loc() diag.Location {
	return diag.Location{Start: par.CurrToken.Start, End: par.CurrToken.End, Line: par.CurrToken.Line, Column: par.CurrToken.Column}
}

func (par *Parser) errorf(tok lexer.Token, format string, args ...any) {
	par.Diagnostics = append(par.Diagnostics, diag.Diagnostic{
		Message:  fmt.Sprintf(format, args...),
		Line:     tok.Line,
		Severity: diag.Error,
		Location: diag.Location{Start: tok.Start, End: tok.End, Line: tok.Line, Column: tok.Column},
	})
}

// atEOF reports whether the current token is the end of the stream.
func (par *Parser) atEOF() bool {
	return par.CurrToken.Kind == lexer.EOF
}

// expect checks CurrToken against (kind, value) and advances past it,
// recording a diagnostic and advancing anyway (one-token error recovery)
// when it doesn't match.
func (par *Parser) expect(kind lexer.Kind, value string) bool {
	if par.CurrToken.Kind == kind && (value == "" || par.CurrToken.Value == value) {
		par.advance()
		return true
	}
	par.errorf(par.CurrToken, "expected %s %q, got %s %q", kind, value, par.CurrToken.Kind, par.CurrToken.Value)
	par.advance()
	return false
}

func (par *Parser) isPunct(value string) bool {
	return par.CurrToken.Kind == lexer.Punctuation && par.CurrToken.Value == value
}

func (par *Parser) isOp(value string) bool {
	return par.CurrToken.Kind == lexer.Operator && par.CurrToken.Value == value
}

func (par *Parser) isKeyword(value string) bool {
	return par.CurrToken.Kind == lexer.Keyword && par.CurrToken.Value == value
}

// parseProgram parses top-level declarations until EOF, recovering from a
// malformed declaration by advancing one token rather than aborting.
func (par *Parser) parseProgram() *ast.Program {
	start := par.loc()
	program := &ast.Program{}

	for !par.atEOF() {
		before := par.pos
		node := par.parseTopLevel()
		if node != nil {
			program.Body = append(program.Body, node)
		}
		if par.pos == before && !par.atEOF() {
			// Safety valve: parseTopLevel consumed nothing, force progress.
			par.advance()
		}
	}

	program.Location = diag.Location{Start: start.Start, End: par.CurrToken.End, Line: start.Line, Column: start.Column}
	return program
}
