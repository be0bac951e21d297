package lexer

import (
	"fmt"

	"github.com/skein-lang/skein/internal/diag"
)

// Kind classifies a lexeme.
type Kind string

const (
	SIGNED   Kind = "SIGNED" // 64-bit signed integer literal
	FLOAT    Kind = "FLOAT"  // 64-bit float literal
	IDENT    Kind = "IDENT"  // identifier (keywords included; the parser filters)
	STRING   Kind = "STRING" // quoted string, text includes both quotes
	OPERATOR Kind = "OPERATOR"

	LPAREN    Kind = "("
	RPAREN    Kind = ")"
	LSQUARE   Kind = "["
	RSQUARE   Kind = "]"
	LCURLY    Kind = "{"
	RCURLY    Kind = "}"
	SEMICOLON Kind = ";"
	COMMA     Kind = ","
)

// Lexeme is the classified content of one token, independent of position.
// It is a plain value: two lexemes are structurally equal exactly when
// they compare equal with ==. Identifiers, operators, and strings compare
// by their text, never by where they appeared.
type Lexeme struct {
	Kind  Kind
	Text  string // IDENT and OPERATOR text; STRING text including quotes
	Int   int64  // SIGNED payload
	Float float64
}

// Ident builds an identifier lexeme.
func Ident(name string) Lexeme {
	return Lexeme{Kind: IDENT, Text: name}
}

// Op builds an operator lexeme.
func Op(text string) Lexeme {
	return Lexeme{Kind: OPERATOR, Text: text}
}

// Str builds a quoted-string lexeme; text must include both quotes.
func Str(text string) Lexeme {
	return Lexeme{Kind: STRING, Text: text}
}

// Signed builds an integer lexeme.
func Signed(v int64) Lexeme {
	return Lexeme{Kind: SIGNED, Int: v}
}

// Float builds a float lexeme.
func Float(v float64) Lexeme {
	return Lexeme{Kind: FLOAT, Float: v}
}

// Punct builds a fixed punctuation lexeme from its kind.
func Punct(k Kind) Lexeme {
	return Lexeme{Kind: k}
}

// String renders the lexeme for diagnostics.
func (lx Lexeme) String() string {
	switch lx.Kind {
	case SIGNED:
		return fmt.Sprintf("integer %d", lx.Int)
	case FLOAT:
		return fmt.Sprintf("float %v", lx.Float)
	case IDENT:
		return fmt.Sprintf("identifier %q", lx.Text)
	case OPERATOR:
		return fmt.Sprintf("operator %q", lx.Text)
	case STRING:
		return fmt.Sprintf("string %s", lx.Text)
	default:
		return fmt.Sprintf("%q", string(lx.Kind))
	}
}

// Token pairs a lexeme with the location of its first character.
type Token struct {
	Loc    diag.Location
	Lexeme Lexeme
}

// String renders the token's lexeme.
func (t Token) String() string {
	return t.Lexeme.String()
}
