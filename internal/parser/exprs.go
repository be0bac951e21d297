package parser

import (
	"github.com/skein-lang/skein/internal/ast"
	"github.com/skein-lang/skein/internal/diag"
	"github.com/skein-lang/skein/internal/lexer"
)

// parseCallsite parses a function-application expression: a leading term
// followed by zero or more argument terms. Zero arguments collapses to
// the bare term; a zero-argument Callsite node is never built.
func (p *Parser) parseCallsite() (ast.Expr, *diag.ParseError) {
	if err := p.lx.SkipSemicolons(); err != nil {
		return nil, err
	}

	function, err := p.parseCallsiteTerm()
	if err != nil {
		return nil, err
	}
	if function == nil {
		return nil, diag.Errorf(p.lx.Location(), "missing function callsite expression")
	}

	arguments, err := parseMany(func() (ast.Expr, bool, *diag.ParseError) {
		term, err := p.parseCallsiteTerm()
		return term, term != nil, err
	})
	if err != nil {
		return nil, err
	}

	if len(arguments) == 0 {
		return function, nil
	}
	return &ast.CallsiteExpr{Function: function, Arguments: arguments}, nil
}

// parseCallsiteTerm parses one atomic unit of a callsite by one-token
// lookahead. Semicolons, commas, a bare "=" operator, and an unmatched
// ")" are the legal terminators of a term sequence and answer no-match
// without consuming.
func (p *Parser) parseCallsiteTerm() (ast.Expr, *diag.ParseError) {
	tok, ok := p.lx.Peek()
	if !ok {
		return nil, nil
	}

	switch tok.Lexeme.Kind {
	case lexer.IDENT:
		name := tok.Lexeme.Text
		switch {
		case name == "let":
			if _, err := p.lx.Advance(); err != nil {
				return nil, err
			}
			return p.parseLetExpr(tok.Loc)
		case name == "match":
			if _, err := p.lx.Advance(); err != nil {
				return nil, err
			}
			return p.parseMatchExpr(tok.Loc)
		case isKeyword(name):
			return nil, nil
		}
		if _, err := p.lx.Advance(); err != nil {
			return nil, err
		}
		return &ast.SymbolExpr{Id: ast.NewIdentifier(name, tok.Loc)}, nil

	case lexer.OPERATOR:
		// An operator reference amounts to a symbol reference, except
		// "=", which terminates the enclosing declaration head.
		if tok.Lexeme.Text == "=" {
			return nil, nil
		}
		if _, err := p.lx.Advance(); err != nil {
			return nil, err
		}
		return &ast.SymbolExpr{Id: ast.NewIdentifier(tok.Lexeme.Text, tok.Loc)}, nil

	case lexer.SIGNED:
		if _, err := p.lx.Advance(); err != nil {
			return nil, err
		}
		return &ast.IntegerLit{Loc: tok.Loc, Value: tok.Lexeme.Int}, nil

	case lexer.FLOAT:
		if _, err := p.lx.Advance(); err != nil {
			return nil, err
		}
		return &ast.FloatLit{Loc: tok.Loc, Value: tok.Lexeme.Float}, nil

	case lexer.STRING:
		if _, err := p.lx.Advance(); err != nil {
			return nil, err
		}
		return &ast.StringLit{Loc: tok.Loc, Value: tok.Lexeme.Text}, nil

	case lexer.LPAREN:
		return p.parseCallsiteGroup(tok.Loc)

	case lexer.SEMICOLON, lexer.RPAREN, lexer.COMMA:
		return nil, nil

	default:
		return nil, diag.NotImplemented(tok.Loc)
	}
}

// parseCallsiteGroup parses a parenthesized expression group. One
// callsite with no comma degenerates to that expression; a
// comma-separated group becomes a tuple constructor, mirroring the
// predicate group rule.
func (p *Parser) parseCallsiteGroup(loc diag.Location) (ast.Expr, *diag.ParseError) {
	if _, err := p.lx.Advance(); err != nil { // consume '('
		return nil, err
	}

	first, err := p.parseCallsite()
	if err != nil {
		return nil, err
	}

	dims := []ast.Expr{first}
	sawComma := false
	for p.lx.PeekMatches(lexer.Punct(lexer.COMMA)) {
		sawComma = true
		if _, err := p.lx.Advance(); err != nil {
			return nil, err
		}
		next, err := p.parseCallsite()
		if err != nil {
			return nil, err
		}
		dims = append(dims, next)
	}

	if err := p.lx.Chomp(lexer.Punct(lexer.RPAREN)); err != nil {
		return nil, err
	}

	if !sawComma {
		return first, nil
	}
	return &ast.TupleCtorExpr{Loc: loc, Dims: dims}, nil
}

// parseLetExpr parses the remainder of a let expression after the
// caller has consumed the let keyword:
//
//	let := "let" ident "=" callsite "in" callsite
func (p *Parser) parseLetExpr(loc diag.Location) (ast.Expr, *diag.ParseError) {
	binding, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	if err := p.lx.Chomp(lexer.Op("=")); err != nil {
		return nil, err
	}
	value, err := p.parseCallsite()
	if err != nil {
		return nil, err
	}
	if err := p.lx.Chomp(lexer.Ident("in")); err != nil {
		return nil, err
	}
	body, err := p.parseCallsite()
	if err != nil {
		return nil, err
	}
	return &ast.LetExpr{Loc: loc, Binding: binding, Value: value, Body: body}, nil
}

// parseMatchExpr parses the remainder of a match expression after the
// caller has consumed the match keyword:
//
//	match := "match" callsite (";"* predicate "=>" callsite)+
//
// Arms accumulate until no further predicate matches. Because the lexer
// holds a single token of lookahead, a predicate not followed by "=>"
// is a hard error rather than a rollback point.
func (p *Parser) parseMatchExpr(loc diag.Location) (ast.Expr, *diag.ParseError) {
	subject, err := p.parseCallsite()
	if err != nil {
		return nil, err
	}

	var arms []ast.PatternExpr
	for {
		if err := p.lx.SkipSemicolons(); err != nil {
			return nil, err
		}
		predicate, err := p.parsePredicate()
		if err != nil {
			return nil, err
		}
		if predicate == nil {
			break
		}
		if err := p.lx.Chomp(lexer.Op("=>")); err != nil {
			return nil, err
		}
		body, err := p.parseCallsite()
		if err != nil {
			return nil, err
		}
		arms = append(arms, ast.PatternExpr{Predicate: predicate, Expr: body})
	}

	if len(arms) == 0 {
		return nil, diag.Errorf(loc, "match expression has no arms")
	}

	return &ast.MatchExpr{Loc: loc, Subject: subject, Arms: arms}, nil
}
