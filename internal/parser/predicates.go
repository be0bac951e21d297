package parser

import (
	"unicode"
	"unicode/utf8"

	"github.com/skein-lang/skein/internal/ast"
	"github.com/skein-lang/skein/internal/diag"
	"github.com/skein-lang/skein/internal/lexer"
)

// isCtorName reports whether an identifier names a constructor pattern.
// Constructors start with an uppercase letter; everything else binds
// irrefutably.
func isCtorName(name string) bool {
	first, _ := utf8.DecodeRuneInString(name)
	return unicode.IsUpper(first)
}

// parsePredicates collects the longest run of predicates at the cursor.
func (p *Parser) parsePredicates() ([]ast.Predicate, *diag.ParseError) {
	return parseMany(func() (ast.Predicate, bool, *diag.ParseError) {
		pred, err := p.parsePredicate()
		return pred, pred != nil, err
	})
}

// parsePredicate parses one pattern by lookahead on the current token:
// an integer or string literal, an identifier (capitalized identifiers
// become constructor patterns consuming nested predicates), or a
// parenthesized group. Anything else, keywords and end of input
// included, is a no-match.
func (p *Parser) parsePredicate() (ast.Predicate, *diag.ParseError) {
	tok, ok := p.lx.Peek()
	if !ok {
		return nil, nil
	}

	switch tok.Lexeme.Kind {
	case lexer.SIGNED:
		if _, err := p.lx.Advance(); err != nil {
			return nil, err
		}
		return &ast.IntegerPredicate{Loc: tok.Loc, Value: tok.Lexeme.Int}, nil

	case lexer.STRING:
		if _, err := p.lx.Advance(); err != nil {
			return nil, err
		}
		return &ast.StringPredicate{Loc: tok.Loc, Value: tok.Lexeme.Text}, nil

	case lexer.IDENT:
		name := tok.Lexeme.Text
		if isKeyword(name) {
			return nil, nil
		}
		if _, err := p.lx.Advance(); err != nil {
			return nil, err
		}
		id := ast.NewIdentifier(name, tok.Loc)
		if !isCtorName(name) {
			return &ast.IrrefutablePredicate{Id: id}, nil
		}
		dims, err := p.parsePredicates()
		if err != nil {
			return nil, err
		}
		return &ast.CtorPredicate{Ctor: id, Dims: dims}, nil

	case lexer.LPAREN:
		return p.parsePredicateGroup(tok.Loc)

	default:
		return nil, nil
	}
}

// parsePredicateGroup parses a parenthesized pattern group. Zero or one
// predicate with no comma degenerates to that predicate (or to nothing);
// a comma-separated group becomes a tuple with all members.
func (p *Parser) parsePredicateGroup(loc diag.Location) (ast.Predicate, *diag.ParseError) {
	if _, err := p.lx.Advance(); err != nil { // consume '('
		return nil, err
	}

	if p.lx.PeekMatches(lexer.Punct(lexer.RPAREN)) {
		_, err := p.lx.Advance()
		return nil, err
	}

	first, err := p.parsePredicate()
	if err != nil {
		return nil, err
	}
	if first == nil {
		tok, ok := p.lx.Peek()
		if !ok {
			return nil, diag.Errorf(p.lx.Location(), "hit EOF inside a predicate group")
		}
		return nil, diag.Errorf(tok.Loc, "unexpected token (%s) found, expected a predicate", tok)
	}

	dims := []ast.Predicate{first}
	sawComma := false
	for p.lx.PeekMatches(lexer.Punct(lexer.COMMA)) {
		sawComma = true
		if _, err := p.lx.Advance(); err != nil {
			return nil, err
		}
		next, err := p.parsePredicate()
		if err != nil {
			return nil, err
		}
		if next == nil {
			return nil, diag.Errorf(p.lx.Location(), "expected a predicate after ','")
		}
		dims = append(dims, next)
	}

	if err := p.lx.Chomp(lexer.Punct(lexer.RPAREN)); err != nil {
		return nil, err
	}

	if !sawComma {
		return first, nil
	}
	return &ast.TuplePredicate{Loc: loc, Dims: dims}, nil
}
