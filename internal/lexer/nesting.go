package lexer

import "github.com/skein-lang/skein/internal/diag"

// Bracket names a nesting bracket family.
type Bracket string

const (
	BracketParen  Bracket = "paren"
	BracketSquare Bracket = "square"
	BracketCurly  Bracket = "curly"
)

func (b Bracket) opener() string {
	switch b {
	case BracketSquare:
		return "["
	case BracketCurly:
		return "{"
	default:
		return "("
	}
}

func (b Bracket) closer() string {
	switch b {
	case BracketSquare:
		return "]"
	case BracketCurly:
		return "}"
	default:
		return ")"
	}
}

// frame records one currently open bracket. Frames live in an arena on the
// lexer and link to the enclosing frame by index, so copying a lexer
// snapshot copies only the top handle, never the stack.
type frame struct {
	open    diag.Location
	bracket Bracket
	parent  int // index of the enclosing frame, -1 at the bottom
}

// pushFrame opens a bracket at loc and makes it the top of the stack.
func (l *Lexer) pushFrame(b Bracket, loc diag.Location) {
	l.frames = append(l.frames, frame{open: loc, bracket: b, parent: l.top})
	l.top = len(l.frames) - 1
}

// popFrame closes a bracket. The closer must match the top frame's family;
// a mismatch or an empty stack is a structural error naming both the
// offending closer and the unmatched opener.
func (l *Lexer) popFrame(b Bracket, loc diag.Location) *diag.ParseError {
	if l.top < 0 {
		return diag.Errorf(loc, "unmatched %q: no open bracket to close", b.closer())
	}
	open := l.frames[l.top]
	if open.bracket != b {
		return diag.Errorf(loc, "mismatched %q: %q opened at %s is still open",
			b.closer(), open.bracket.opener(), open.open)
	}
	l.top = open.parent
	return nil
}

// nested reports whether the cursor is inside any open bracket. Newlines
// are implicit statement separators only when this is false.
func (l *Lexer) nested() bool {
	return l.top >= 0
}
