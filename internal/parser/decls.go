package parser

import (
	"github.com/skein-lang/skein/internal/ast"
	"github.com/skein-lang/skein/internal/diag"
	"github.com/skein-lang/skein/internal/lexer"
)

// keywords are reserved identifiers. The lexer emits them as plain
// identifier tokens; recognition happens here.
var keywords = map[string]bool{
	"if":    true,
	"then":  true,
	"else":  true,
	"do":    true,
	"let":   true,
	"in":    true,
	"match": true,
}

func isKeyword(name string) bool {
	return keywords[name]
}

// maybeIdent consumes the buffered token if it is a non-keyword
// identifier, answering no-match otherwise.
func (p *Parser) maybeIdent() (*ast.Identifier, *diag.ParseError) {
	tok, ok := p.lx.Peek()
	if !ok || tok.Lexeme.Kind != lexer.IDENT || isKeyword(tok.Lexeme.Text) {
		return nil, nil
	}
	if _, err := p.lx.Advance(); err != nil {
		return nil, err
	}
	return ast.NewIdentifier(tok.Lexeme.Text, tok.Loc), nil
}

// parseIdentifier requires a non-keyword identifier at the current token.
func (p *Parser) parseIdentifier() (*ast.Identifier, *diag.ParseError) {
	id, err := p.maybeIdent()
	if err != nil {
		return nil, err
	}
	if id == nil {
		return nil, diag.Errorf(p.lx.Location(), "expected an identifier here")
	}
	return id, nil
}

// parseDecl parses one top-level declaration:
//
//	decl := ident predicate* "=" callsite
//
// A missing leading identifier (or a keyword) is a no-match, letting the
// caller decide whether the unit is finished.
func (p *Parser) parseDecl() (*ast.Decl, *diag.ParseError) {
	id, err := p.maybeIdent()
	if err != nil || id == nil {
		return nil, err
	}

	predicates, err := p.parsePredicates()
	if err != nil {
		return nil, err
	}

	if err := p.lx.Chomp(lexer.Op("=")); err != nil {
		return nil, err
	}

	body, err := p.parseCallsite()
	if err != nil {
		return nil, err
	}

	return &ast.Decl{Id: id, Predicates: predicates, Body: body}, nil
}
