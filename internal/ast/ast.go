package ast

import "github.com/skein-lang/skein/internal/diag"

// Node represents any AST node with an associated source location.
type Node interface {
	Location() diag.Location
}

// Predicate represents a pattern in a declaration head or match arm.
type Predicate interface {
	Node
	predicateNode()
}

// Expr represents an expression node.
type Expr interface {
	Node
	exprNode()
}

// Identifier is a leaf node naming a bound or referenced symbol.
type Identifier struct {
	Name string
	Loc  diag.Location
}

// Location returns the identifier location.
func (i *Identifier) Location() diag.Location { return i.Loc }

// NewIdentifier constructs an identifier node.
func NewIdentifier(name string, loc diag.Location) *Identifier {
	return &Identifier{Name: name, Loc: loc}
}

// IrrefutablePredicate binds a name unconditionally.
type IrrefutablePredicate struct {
	Id *Identifier
}

// Location returns the bound identifier's location.
func (p *IrrefutablePredicate) Location() diag.Location { return p.Id.Loc }

func (*IrrefutablePredicate) predicateNode() {}

// IntegerPredicate matches one integer value.
type IntegerPredicate struct {
	Loc   diag.Location
	Value int64
}

// Location returns the literal location.
func (p *IntegerPredicate) Location() diag.Location { return p.Loc }

func (*IntegerPredicate) predicateNode() {}

// StringPredicate matches one string value. Value keeps the surrounding
// quotes, exactly as lexed.
type StringPredicate struct {
	Loc   diag.Location
	Value string
}

// Location returns the literal location.
func (p *StringPredicate) Location() diag.Location { return p.Loc }

func (*StringPredicate) predicateNode() {}

// CtorPredicate is a capitalized identifier applied to sub-patterns.
type CtorPredicate struct {
	Ctor *Identifier
	Dims []Predicate
}

// Location returns the constructor identifier's location.
func (p *CtorPredicate) Location() diag.Location { return p.Ctor.Loc }

func (*CtorPredicate) predicateNode() {}

// TuplePredicate is a parenthesized comma-separated pattern group. A
// single parenthesized predicate with no comma degenerates to that
// predicate and never reaches this node.
type TuplePredicate struct {
	Loc  diag.Location
	Dims []Predicate
}

// Location returns the location of the opening parenthesis.
func (p *TuplePredicate) Location() diag.Location { return p.Loc }

func (*TuplePredicate) predicateNode() {}

// LambdaExpr is an anonymous function. No grammar rule currently
// produces it; the variant exists for later phases.
type LambdaExpr struct {
	Loc    diag.Location
	Params []*Identifier
	Body   Expr
}

// Location returns the lambda location.
func (e *LambdaExpr) Location() diag.Location { return e.Loc }

func (*LambdaExpr) exprNode() {}

// LetExpr binds a name to a value inside a body expression.
type LetExpr struct {
	Loc     diag.Location
	Binding *Identifier
	Value   Expr
	Body    Expr
}

// Location returns the location of the let keyword.
func (e *LetExpr) Location() diag.Location { return e.Loc }

func (*LetExpr) exprNode() {}

// IntegerLit is an integer literal expression.
type IntegerLit struct {
	Loc   diag.Location
	Value int64
}

// Location returns the literal location.
func (e *IntegerLit) Location() diag.Location { return e.Loc }

func (*IntegerLit) exprNode() {}

// FloatLit is a float literal expression.
type FloatLit struct {
	Loc   diag.Location
	Value float64
}

// Location returns the literal location.
func (e *FloatLit) Location() diag.Location { return e.Loc }

func (*FloatLit) exprNode() {}

// StringLit is a string literal expression. Value keeps the surrounding
// quotes, exactly as lexed.
type StringLit struct {
	Loc   diag.Location
	Value string
}

// Location returns the literal location.
func (e *StringLit) Location() diag.Location { return e.Loc }

func (*StringLit) exprNode() {}

// SymbolExpr references a name. Operators are first-class names, so an
// operator token in term position becomes a SymbolExpr too.
type SymbolExpr struct {
	Id *Identifier
}

// Location returns the referenced identifier's location.
func (e *SymbolExpr) Location() diag.Location { return e.Id.Loc }

func (*SymbolExpr) exprNode() {}

// PatternExpr is one match arm: a predicate and the expression evaluated
// when it matches.
type PatternExpr struct {
	Predicate Predicate
	Expr      Expr
}

// MatchExpr scrutinizes a subject against an ordered list of arms.
type MatchExpr struct {
	Loc     diag.Location
	Subject Expr
	Arms    []PatternExpr
}

// Location returns the location of the match keyword.
func (e *MatchExpr) Location() diag.Location { return e.Loc }

func (*MatchExpr) exprNode() {}

// CallsiteExpr applies a function expression to one or more arguments.
// The parser never builds a zero-argument callsite; a bare term stays a
// bare term.
type CallsiteExpr struct {
	Function  Expr
	Arguments []Expr
}

// Location returns the function sub-expression's location.
func (e *CallsiteExpr) Location() diag.Location { return e.Function.Location() }

func (*CallsiteExpr) exprNode() {}

// TupleCtorExpr is a parenthesized comma-separated expression group. A
// single parenthesized expression with no comma degenerates to that
// expression and never reaches this node.
type TupleCtorExpr struct {
	Loc  diag.Location
	Dims []Expr
}

// Location returns the location of the opening parenthesis.
func (e *TupleCtorExpr) Location() diag.Location { return e.Loc }

func (*TupleCtorExpr) exprNode() {}

// Decl is a top-level declaration: an identifier, its parameter
// patterns, and a body expression.
type Decl struct {
	Id         *Identifier
	Predicates []Predicate
	Body       Expr
}

// Location returns the declared identifier's location.
func (d *Decl) Location() diag.Location { return d.Id.Loc }
