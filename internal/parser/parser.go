package parser

import (
	"github.com/skein-lang/skein/internal/ast"
	"github.com/skein-lang/skein/internal/diag"
	"github.com/skein-lang/skein/internal/lexer"
)

// Parser implements a recursive descent parser over the lexer's pull
// cursor. Rules follow a shared contract:
//
//   - A rule that cannot match at the current token returns (nil, nil)
//     without consuming the token that disambiguates the caller's next
//     choice.
//   - The first structural mismatch anywhere aborts the entire parse with
//     that one error. There is no recovery and no multi-error batching.
type Parser struct {
	lx *lexer.Lexer
}

// New returns a parser over the given source text. The filename labels
// diagnostics only; no file is read.
func New(filename, input string) *Parser {
	return &Parser{lx: lexer.New(filename, input)}
}

// Parse lexes and parses one compilation unit, returning its
// declarations in source order or the first error encountered.
func Parse(filename, input string) ([]*ast.Decl, *diag.ParseError) {
	return New(filename, input).ParseUnit()
}

// ParseUnit parses the whole input as a sequence of declarations.
func (p *Parser) ParseUnit() ([]*ast.Decl, *diag.ParseError) {
	// Prime the lookahead buffer.
	if _, err := p.lx.Advance(); err != nil {
		return nil, err
	}

	decls, err := parseMany(func() (*ast.Decl, bool, *diag.ParseError) {
		if err := p.lx.SkipSemicolons(); err != nil {
			return nil, false, err
		}
		decl, err := p.parseDecl()
		return decl, decl != nil, err
	})
	if err != nil {
		return nil, err
	}

	if tok, ok := p.lx.Peek(); ok {
		return nil, diag.Errorf(tok.Loc, "unexpected token (%s) found, expected a declaration", tok)
	}

	return decls, nil
}

// parseMany applies rule until it reports no match, collecting the
// results in order. The lexer is left positioned exactly where the
// terminal attempt gave up.
func parseMany[T any](rule func() (T, bool, *diag.ParseError)) ([]T, *diag.ParseError) {
	var items []T
	for {
		item, ok, err := rule()
		if err != nil {
			return nil, err
		}
		if !ok {
			return items, nil
		}
		items = append(items, item)
	}
}
