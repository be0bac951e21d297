package diag

import "fmt"

// Severity captures how impactful the diagnostic is. Only errors are
// produced by the current lexer and parser rules; the other levels are
// reserved for future diagnostics.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Location is a point in source code. Col is zero-based: it counts the
// characters consumed on the current line before the located item.
type Location struct {
	Filename string
	Line     int // 1-based
	Col      int // 0-based
}

// String returns the canonical file:line:col rendering.
func (l Location) String() string {
	return fmt.Sprintf("%s:%d:%d", l.Filename, l.Line, l.Col)
}

// IsValid reports whether the location carries real position information.
func (l Location) IsValid() bool {
	return l.Line > 0
}

// ParseError is a structural lexing or parsing failure. The first error
// anywhere aborts the whole parse; there is no recovery or batching.
type ParseError struct {
	Loc     Location
	Level   Severity
	Message string
}

// Error renders the diagnostic as "file:line:col: level: message".
func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Loc, e.Level, e.Message)
}

// Errorf builds an error-severity ParseError at the given location.
func Errorf(loc Location, format string, args ...any) *ParseError {
	return &ParseError{
		Loc:     loc,
		Level:   SeverityError,
		Message: fmt.Sprintf(format, args...),
	}
}

// NotImplemented marks a syntactically recognized but unhandled construct.
func NotImplemented(loc Location) *ParseError {
	return Errorf(loc, "parsing this is not implemented")
}
