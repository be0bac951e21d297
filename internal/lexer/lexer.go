package lexer

import (
	"strconv"
	"unicode"

	"github.com/skein-lang/skein/internal/diag"
)

// state tracks the one-token lookahead buffer.
type state int

const (
	stateStarted state = iota // no Advance has happened yet
	stateRead                 // tok holds the current token
	stateEOF                  // input exhausted
)

// operatorRunes is the fixed set of characters that form operator runs.
const operatorRunes = ".=><-+!@:$%^&*/?~"

// Lexer is a pull-based cursor over one compilation unit. It exposes the
// currently buffered token through Peek and consumes one token per
// Advance. Newlines are emitted as Semicolon tokens only while the
// bracket-nesting stack is empty; inside any bracket they are plain
// whitespace.
type Lexer struct {
	input []rune
	pos   int
	loc   diag.Location

	frames []frame
	top    int

	state state
	tok   Token
}

// New creates a lexer for the given source text. The filename labels
// locations for diagnostics only; no file is read.
func New(filename, input string) *Lexer {
	return &Lexer{
		input: []rune(input),
		loc:   diag.Location{Filename: filename, Line: 1, Col: 0},
		top:   -1,
	}
}

// Location returns the cursor location: the start of the buffered token
// when one is held, the scan position otherwise.
func (l *Lexer) Location() diag.Location {
	if l.state == stateRead {
		return l.tok.Loc
	}
	return l.loc
}

// Peek returns the buffered token without consuming it. ok is false
// before the first Advance and at end of input.
func (l *Lexer) Peek() (tok Token, ok bool) {
	if l.state != stateRead {
		return Token{}, false
	}
	return l.tok, true
}

// PeekMatches reports whether the buffered token structurally equals the
// given lexeme. It is false when no token is buffered.
func (l *Lexer) PeekMatches(lx Lexeme) bool {
	return l.state == stateRead && l.tok.Lexeme == lx
}

// Advance consumes the buffered token and scans the next one into the
// buffer. It returns the start location of the token just consumed, or
// the location reached at end of input. Advancing past EOF is a no-op,
// not an error.
func (l *Lexer) Advance() (diag.Location, *diag.ParseError) {
	if l.state == stateEOF {
		return l.loc, nil
	}

	ret := l.loc
	if l.state == stateRead {
		ret = l.tok.Loc
	}

	tok, ok, err := l.scan()
	if err != nil {
		return l.loc, err
	}
	if !ok {
		l.state = stateEOF
		l.tok = Token{}
		return ret, nil
	}

	l.state = stateRead
	l.tok = tok
	return ret, nil
}

// Chomp asserts that the buffered token equals want, then advances.
func (l *Lexer) Chomp(want Lexeme) *diag.ParseError {
	switch l.state {
	case stateStarted:
		return diag.Errorf(l.loc, "lexer was not started, expected %s", want)
	case stateEOF:
		return diag.Errorf(l.loc, "hit EOF but expected %s", want)
	}
	if l.tok.Lexeme != want {
		return diag.Errorf(l.tok.Loc, "unexpected token (%s) found, expected %s", l.tok, want)
	}
	_, err := l.Advance()
	return err
}

// SkipSemicolons advances past any buffered Semicolon tokens, explicit or
// the newline kind, until a different token is buffered.
func (l *Lexer) SkipSemicolons() *diag.ParseError {
	for l.state == stateRead && l.tok.Lexeme.Kind == SEMICOLON {
		if _, err := l.Advance(); err != nil {
			return err
		}
	}
	return nil
}

// at returns the rune at offset i from the cursor, or 0 past the end.
func (l *Lexer) at(i int) rune {
	if l.pos+i >= len(l.input) {
		return 0
	}
	return l.input[l.pos+i]
}

// consume eats one rune, keeping line/column in step. A line feed resets
// the column and bumps the line; every other rune is one column.
func (l *Lexer) consume() rune {
	ch := l.input[l.pos]
	l.pos++
	if ch == '\n' {
		l.loc.Line++
		l.loc.Col = 0
	} else {
		l.loc.Col++
	}
	return ch
}

// scan produces the next token from the cursor. ok is false at end of
// input. Start locations are captured before any of a lexeme's runes are
// consumed.
func (l *Lexer) scan() (Token, bool, *diag.ParseError) {
	for l.pos < len(l.input) {
		ch := l.at(0)
		if ch == '\n' {
			if l.nested() {
				// Bracket contents are newline-insensitive.
				l.consume()
				continue
			}
			start := l.loc
			l.consume()
			return Token{Loc: start, Lexeme: Punct(SEMICOLON)}, true, nil
		}
		if unicode.IsSpace(ch) {
			l.consume()
			continue
		}
		break
	}
	if l.pos >= len(l.input) {
		return Token{}, false, nil
	}

	start := l.loc
	ch := l.at(0)

	switch {
	case isDigit(ch):
		return l.scanNumber(start)

	case ch == '-' && isDigit(l.at(1)):
		return l.scanNumber(start)

	case ch == '_' || unicode.IsLetter(ch):
		return l.scanIdentifier(start)

	case ch == '"':
		return l.scanString(start)

	case isOperatorRune(ch):
		return l.scanOperator(start)
	}

	switch ch {
	case '(':
		l.consume()
		l.pushFrame(BracketParen, start)
		return Token{Loc: start, Lexeme: Punct(LPAREN)}, true, nil
	case '[':
		l.consume()
		l.pushFrame(BracketSquare, start)
		return Token{Loc: start, Lexeme: Punct(LSQUARE)}, true, nil
	case '{':
		l.consume()
		l.pushFrame(BracketCurly, start)
		return Token{Loc: start, Lexeme: Punct(LCURLY)}, true, nil
	case ')':
		l.consume()
		if err := l.popFrame(BracketParen, start); err != nil {
			return Token{}, false, err
		}
		return Token{Loc: start, Lexeme: Punct(RPAREN)}, true, nil
	case ']':
		l.consume()
		if err := l.popFrame(BracketSquare, start); err != nil {
			return Token{}, false, err
		}
		return Token{Loc: start, Lexeme: Punct(RSQUARE)}, true, nil
	case '}':
		l.consume()
		if err := l.popFrame(BracketCurly, start); err != nil {
			return Token{}, false, err
		}
		return Token{Loc: start, Lexeme: Punct(RCURLY)}, true, nil
	case ';':
		l.consume()
		return Token{Loc: start, Lexeme: Punct(SEMICOLON)}, true, nil
	case ',':
		l.consume()
		return Token{Loc: start, Lexeme: Punct(COMMA)}, true, nil
	}

	return Token{}, false, diag.Errorf(start, "unrecognized character %q", string(ch))
}

// scanNumber lexes a decimal integer or float run, with an optional
// leading minus. The caller has already checked that a digit follows any
// minus sign.
func (l *Lexer) scanNumber(start diag.Location) (Token, bool, *diag.ParseError) {
	first := l.pos
	if l.at(0) == '-' {
		l.consume()
	}
	for isDigit(l.at(0)) {
		l.consume()
	}

	if l.at(0) == '.' && isDigit(l.at(1)) {
		l.consume()
		for isDigit(l.at(0)) {
			l.consume()
		}
		text := string(l.input[first:l.pos])
		value, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return Token{}, false, diag.Errorf(start, "float literal %q out of range", text)
		}
		return Token{Loc: start, Lexeme: Float(value)}, true, nil
	}

	text := string(l.input[first:l.pos])
	value, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return Token{}, false, diag.Errorf(start, "integer literal %q out of range", text)
	}
	return Token{Loc: start, Lexeme: Signed(value)}, true, nil
}

// scanIdentifier lexes an identifier run. Keywords are not filtered here;
// keyword recognition is the parser's responsibility.
func (l *Lexer) scanIdentifier(start diag.Location) (Token, bool, *diag.ParseError) {
	first := l.pos
	for {
		ch := l.at(0)
		if ch != '_' && !unicode.IsLetter(ch) && !unicode.IsDigit(ch) {
			break
		}
		l.consume()
	}
	return Token{Loc: start, Lexeme: Ident(string(l.input[first:l.pos]))}, true, nil
}

// scanOperator greedily lexes a run of contiguous operator characters as
// one token, so "=>" is a single operator, never "=" then ">".
func (l *Lexer) scanOperator(start diag.Location) (Token, bool, *diag.ParseError) {
	first := l.pos
	for isOperatorRune(l.at(0)) {
		l.consume()
	}
	return Token{Loc: start, Lexeme: Op(string(l.input[first:l.pos]))}, true, nil
}

// scanString lexes a quoted string running to the next double quote, with
// no escape processing. The lexeme text keeps both quotes.
func (l *Lexer) scanString(start diag.Location) (Token, bool, *diag.ParseError) {
	first := l.pos
	l.consume() // opening quote
	for {
		if l.pos >= len(l.input) {
			return Token{}, false, diag.Errorf(start, "unterminated string literal")
		}
		if l.consume() == '"' {
			break
		}
	}
	return Token{Loc: start, Lexeme: Str(string(l.input[first:l.pos]))}, true, nil
}

func isDigit(ch rune) bool {
	// Numeric literals are restricted to ASCII digits.
	return ch >= '0' && ch <= '9'
}

func isOperatorRune(ch rune) bool {
	for _, op := range operatorRunes {
		if ch == op {
			return true
		}
	}
	return false
}
