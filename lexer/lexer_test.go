/*
File    : minicc/lexer/lexer_test.go
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type tokenCase struct {
	input    string
	expected []Token
}

func kinds(toks []Token) []Kind {
	out := make([]Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func values(toks []Token) []string {
	out := make([]string, len(toks))
	for i, t := range toks {
		out[i] = t.Value
	}
	return out
}

func TestConsumeTokens_KeywordsAndOperators(t *testing.T) {
	tests := []tokenCase{
		{
			input: "int x = 1 + 2;",
			expected: []Token{
				{Kind: Type, Value: "int"},
				{Kind: Identifier, Value: "x"},
				{Kind: Operator, Value: "="},
				{Kind: Number, Value: "1"},
				{Kind: Operator, Value: "+"},
				{Kind: Number, Value: "2"},
				{Kind: Punctuation, Value: ";"},
			},
		},
		{
			input: "if (a <= b && b != 0) { return a; }",
			expected: []Token{
				{Kind: Keyword, Value: "if"},
				{Kind: Punctuation, Value: "("},
				{Kind: Identifier, Value: "a"},
				{Kind: Operator, Value: "<="},
				{Kind: Identifier, Value: "b"},
				{Kind: Operator, Value: "&&"},
				{Kind: Identifier, Value: "b"},
				{Kind: Operator, Value: "!="},
				{Kind: Number, Value: "0"},
				{Kind: Punctuation, Value: ")"},
				{Kind: Punctuation, Value: "{"},
				{Kind: Keyword, Value: "return"},
				{Kind: Identifier, Value: "a"},
				{Kind: Punctuation, Value: ";"},
				{Kind: Punctuation, Value: "}"},
			},
		},
	}

	for _, tc := range tests {
		toks := New(tc.input).ConsumeTokens()
		assert.Equal(t, kinds(tc.expected), kinds(toks), "kinds for %q", tc.input)
		assert.Equal(t, values(tc.expected), values(toks), "values for %q", tc.input)
	}
}

func TestConsumeTokens_StringAndCharLiterals(t *testing.T) {
	toks := New(`"hi\n" 'a'`).ConsumeTokens()
	assert.Len(t, toks, 2)
	assert.Equal(t, String, toks[0].Kind)
	assert.Equal(t, "hi\n", toks[0].Value)
	assert.Equal(t, Char, toks[1].Kind)
	assert.Equal(t, "a", toks[1].Value)
}

func TestConsumeTokens_CommentsArePreserved(t *testing.T) {
	lex := New("// hi\nint x; /* block */")
	toks := lex.ConsumeTokens()
	assert.Equal(t, Comment, toks[0].Kind)
	assert.Equal(t, Type, toks[1].Kind)
	assert.Equal(t, Identifier, toks[2].Kind)
	assert.Equal(t, Punctuation, toks[3].Kind)
	assert.Equal(t, Comment, toks[4].Kind)
}

func TestConsumeTokens_PreprocessorDirectivesAreRecorded(t *testing.T) {
	lex := New("#include <stdio.h>\n#define MAX 100\nint main() {}")
	toks := lex.ConsumeTokens()
	assert.Equal(t, Preprocessor, toks[0].Kind)
	assert.Equal(t, Preprocessor, toks[1].Kind)

	if assert.Len(t, lex.Directives, 2) {
		assert.Equal(t, "include", lex.Directives[0].Kind)
		assert.Equal(t, "stdio.h", lex.Directives[0].Header)
		assert.True(t, lex.Directives[0].System)

		assert.Equal(t, "define", lex.Directives[1].Kind)
		assert.Equal(t, "MAX", lex.Directives[1].Name)
		assert.Equal(t, "100", lex.Directives[1].Value)
	}
}

func TestConsumeTokens_UnrecognizedCharacterFailsSoft(t *testing.T) {
	lex := New("int x = 1 @ 2;")
	toks := lex.ConsumeTokens()
	// the '@' becomes an Invalid token and scanning continues past it.
	var sawInvalid bool
	for _, tok := range toks {
		if tok.Kind == Invalid {
			sawInvalid = true
		}
	}
	assert.True(t, sawInvalid)
	assert.NotEmpty(t, lex.Diagnostics)
	// scanning recovered: the trailing ';' was still tokenized.
	assert.Equal(t, Punctuation, toks[len(toks)-1].Kind)
}

func TestLex_Determinism(t *testing.T) {
	src := "int main() { return 0; }"
	a := New(src).ConsumeTokens()
	b := New(src).ConsumeTokens()
	assert.Equal(t, a, b)
}

func TestLex_OffsetsReconstructSubstrings(t *testing.T) {
	src := "int x = 42;"
	toks := New(src).ConsumeTokens()
	for _, tok := range toks {
		if tok.Kind == EOF {
			continue
		}
		assert.Equal(t, tok.Value, src[tok.Start:tok.End], "token %+v", tok)
	}
}
