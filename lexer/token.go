/*
File    : minicc/lexer/token.go

Token and Kind definitions for the C-subset lexer, extended with byte
offsets (Start/End) so downstream diagnostics can quote exact source
spans.
*/
package lexer

// Kind classifies a Token. It is defined as a string for easy debugging and
// comparison rather than a numeric enum.
type Kind string

const (
	Keyword       Kind = "keyword"
	Type          Kind = "type"
	Qualifier     Kind = "qualifier"
	Identifier    Kind = "identifier"
	Number        Kind = "number"
	String        Kind = "string"
	Char          Kind = "char"
	Operator      Kind = "operator"
	Punctuation   Kind = "punctuation"
	Preprocessor  Kind = "preprocessor"
	Comment       Kind = "comment"
	EOF           Kind = "eof"
	Invalid       Kind = "invalid"
)

// keywords is the C keyword set. Identifiers found in this map are
// classified Keyword rather than Identifier.
var keywords = map[string]bool{
	"if": true, "else": true, "while": true, "for": true,
	"return": true, "break": true, "continue": true,
	"typedef": true, "struct": true, "union": true, "enum": true,
	"sizeof": true, "goto": true, "do": true, "switch": true,
	"case": true, "default": true,
}

// typeNames is the set of primitive C type-specifier keywords.
var typeNames = map[string]bool{
	"int": true, "char": true, "float": true, "double": true,
	"short": true, "long": true, "unsigned": true, "signed": true,
	"void": true,
}

// qualifiers is the set of C type-qualifier / storage-class keywords.
var qualifiers = map[string]bool{
	"const": true, "volatile": true, "static": true, "extern": true,
}

// lookupWord classifies an identifier-shaped lexeme as a keyword, a type
// name, a qualifier, or a plain identifier.
func lookupWord(word string) Kind {
	switch {
	case keywords[word]:
		return Keyword
	case typeNames[word]:
		return Type
	case qualifiers[word]:
		return Qualifier
	default:
		return Identifier
	}
}

// Token is a single lexical token: its classification, literal text, and
// its position in the source (both byte offsets and line/column, mirroring
// the token data model).
type Token struct {
	Kind   Kind
	Value  string
	Start  int
	End    int
	Line   int
	Column int
}

// NewToken builds a Token with full position metadata.
func NewToken(kind Kind, value string, start, end, line, column int) Token {
	return Token{Kind: kind, Value: value, Start: start, End: end, Line: line, Column: column}
}
