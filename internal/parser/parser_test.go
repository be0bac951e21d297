package parser_test

import (
	"strings"
	"testing"

	"github.com/skein-lang/skein/internal/ast"
	"github.com/skein-lang/skein/internal/diag"
	"github.com/skein-lang/skein/internal/parser"
)

func parseUnit(t *testing.T, src string) []*ast.Decl {
	t.Helper()

	decls, err := parser.Parse("test.sk", src)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	return decls
}

func parseOne(t *testing.T, src string) *ast.Decl {
	t.Helper()

	decls := parseUnit(t, src)
	if len(decls) != 1 {
		t.Fatalf("expected 1 declaration, got %d", len(decls))
	}
	return decls[0]
}

func parseErr(t *testing.T, src string) *diag.ParseError {
	t.Helper()

	_, err := parser.Parse("test.sk", src)
	if err == nil {
		t.Fatalf("expected a parse error for %q", src)
	}
	return err
}

func TestParseSimpleDecl(t *testing.T) {
	decl := parseOne(t, "f x = x")

	if decl.Id.Name != "f" {
		t.Fatalf("expected id f, got %q", decl.Id.Name)
	}
	if len(decl.Predicates) != 1 {
		t.Fatalf("expected 1 predicate, got %d", len(decl.Predicates))
	}
	pred, ok := decl.Predicates[0].(*ast.IrrefutablePredicate)
	if !ok {
		t.Fatalf("expected irrefutable predicate, got %T", decl.Predicates[0])
	}
	if pred.Id.Name != "x" {
		t.Fatalf("expected binding x, got %q", pred.Id.Name)
	}
	sym, ok := decl.Body.(*ast.SymbolExpr)
	if !ok {
		t.Fatalf("expected symbol body, got %T", decl.Body)
	}
	if sym.Id.Name != "x" {
		t.Fatalf("expected body symbol x, got %q", sym.Id.Name)
	}
}

func TestParseCallsiteWithArguments(t *testing.T) {
	decl := parseOne(t, "main = f x y")

	call, ok := decl.Body.(*ast.CallsiteExpr)
	if !ok {
		t.Fatalf("expected callsite body, got %T", decl.Body)
	}
	fn, ok := call.Function.(*ast.SymbolExpr)
	if !ok || fn.Id.Name != "f" {
		t.Fatalf("expected function symbol f, got %#v", call.Function)
	}
	if len(call.Arguments) != 2 {
		t.Fatalf("expected 2 arguments, got %d", len(call.Arguments))
	}
	for i, name := range []string{"x", "y"} {
		arg, ok := call.Arguments[i].(*ast.SymbolExpr)
		if !ok || arg.Id.Name != name {
			t.Fatalf("argument %d: expected symbol %q, got %#v", i, name, call.Arguments[i])
		}
	}
}

func TestBareTermIsNotCallsite(t *testing.T) {
	decl := parseOne(t, "main = f")

	if _, ok := decl.Body.(*ast.CallsiteExpr); ok {
		t.Fatalf("zero-argument body must not be a callsite")
	}
	sym, ok := decl.Body.(*ast.SymbolExpr)
	if !ok || sym.Id.Name != "f" {
		t.Fatalf("expected bare symbol f, got %#v", decl.Body)
	}
}

func TestParseLetExpr(t *testing.T) {
	decl := parseOne(t, "g = let x = 1 in x")

	let, ok := decl.Body.(*ast.LetExpr)
	if !ok {
		t.Fatalf("expected let body, got %T", decl.Body)
	}
	if let.Binding.Name != "x" {
		t.Fatalf("expected binding x, got %q", let.Binding.Name)
	}
	value, ok := let.Value.(*ast.IntegerLit)
	if !ok || value.Value != 1 {
		t.Fatalf("expected value 1, got %#v", let.Value)
	}
	body, ok := let.Body.(*ast.SymbolExpr)
	if !ok || body.Id.Name != "x" {
		t.Fatalf("expected body symbol x, got %#v", let.Body)
	}
}

func TestParenthesizedPredicateDegenerates(t *testing.T) {
	plain := parseOne(t, "f x = x")
	wrapped := parseOne(t, "f (x) = x")

	if len(wrapped.Predicates) != 1 {
		t.Fatalf("expected 1 predicate, got %d", len(wrapped.Predicates))
	}
	got, ok := wrapped.Predicates[0].(*ast.IrrefutablePredicate)
	if !ok {
		t.Fatalf("expected the bare predicate, got %T", wrapped.Predicates[0])
	}
	want := plain.Predicates[0].(*ast.IrrefutablePredicate)
	if got.Id.Name != want.Id.Name {
		t.Fatalf("expected binding %q, got %q", want.Id.Name, got.Id.Name)
	}
}

func TestTuplePredicate(t *testing.T) {
	decl := parseOne(t, "f (a, b) = a")

	if len(decl.Predicates) != 1 {
		t.Fatalf("expected 1 predicate, got %d", len(decl.Predicates))
	}
	tuple, ok := decl.Predicates[0].(*ast.TuplePredicate)
	if !ok {
		t.Fatalf("expected tuple predicate, got %T", decl.Predicates[0])
	}
	if len(tuple.Dims) != 2 {
		t.Fatalf("expected 2 dims, got %d", len(tuple.Dims))
	}
}

func TestCtorPredicate(t *testing.T) {
	decl := parseOne(t, "len (Cons h t) = h")

	ctor, ok := decl.Predicates[0].(*ast.CtorPredicate)
	if !ok {
		t.Fatalf("expected ctor predicate, got %T", decl.Predicates[0])
	}
	if ctor.Ctor.Name != "Cons" {
		t.Fatalf("expected ctor Cons, got %q", ctor.Ctor.Name)
	}
	if len(ctor.Dims) != 2 {
		t.Fatalf("expected 2 nested predicates, got %d", len(ctor.Dims))
	}
}

func TestLiteralPredicates(t *testing.T) {
	decl := parseOne(t, `f 0 "zero" = 1`)

	if len(decl.Predicates) != 2 {
		t.Fatalf("expected 2 predicates, got %d", len(decl.Predicates))
	}
	num, ok := decl.Predicates[0].(*ast.IntegerPredicate)
	if !ok || num.Value != 0 {
		t.Fatalf("expected integer predicate 0, got %#v", decl.Predicates[0])
	}
	str, ok := decl.Predicates[1].(*ast.StringPredicate)
	if !ok || str.Value != `"zero"` {
		t.Fatalf("expected string predicate with quotes, got %#v", decl.Predicates[1])
	}
}

func TestParseMatchExpr(t *testing.T) {
	decl := parseOne(t, "f x = match x; 0 => 1; y => y")

	match, ok := decl.Body.(*ast.MatchExpr)
	if !ok {
		t.Fatalf("expected match body, got %T", decl.Body)
	}
	subject, ok := match.Subject.(*ast.SymbolExpr)
	if !ok || subject.Id.Name != "x" {
		t.Fatalf("expected subject symbol x, got %#v", match.Subject)
	}
	if len(match.Arms) != 2 {
		t.Fatalf("expected 2 arms, got %d", len(match.Arms))
	}

	first, ok := match.Arms[0].Predicate.(*ast.IntegerPredicate)
	if !ok || first.Value != 0 {
		t.Fatalf("expected arm 0 integer predicate, got %#v", match.Arms[0].Predicate)
	}
	if lit, ok := match.Arms[0].Expr.(*ast.IntegerLit); !ok || lit.Value != 1 {
		t.Fatalf("expected arm 0 body 1, got %#v", match.Arms[0].Expr)
	}

	second, ok := match.Arms[1].Predicate.(*ast.IrrefutablePredicate)
	if !ok || second.Id.Name != "y" {
		t.Fatalf("expected arm 1 irrefutable y, got %#v", match.Arms[1].Predicate)
	}
}

func TestParseMatchParenthesized(t *testing.T) {
	decl := parseOne(t, "f x = (match x; 0 => 1)")

	match, ok := decl.Body.(*ast.MatchExpr)
	if !ok {
		t.Fatalf("expected match body, got %T", decl.Body)
	}
	if len(match.Arms) != 1 {
		t.Fatalf("expected 1 arm, got %d", len(match.Arms))
	}
}

func TestMatchWithoutArms(t *testing.T) {
	err := parseErr(t, "f x = match x")
	if !strings.Contains(err.Message, "no arms") {
		t.Fatalf("expected no-arms error, got %q", err.Message)
	}
}

func TestTupleExpr(t *testing.T) {
	decl := parseOne(t, "p = (1, f x)")

	tuple, ok := decl.Body.(*ast.TupleCtorExpr)
	if !ok {
		t.Fatalf("expected tuple body, got %T", decl.Body)
	}
	if len(tuple.Dims) != 2 {
		t.Fatalf("expected 2 dims, got %d", len(tuple.Dims))
	}
	if _, ok := tuple.Dims[1].(*ast.CallsiteExpr); !ok {
		t.Fatalf("expected callsite dim, got %T", tuple.Dims[1])
	}
}

func TestParenthesizedExprDegenerates(t *testing.T) {
	decl := parseOne(t, "q = (1)")

	lit, ok := decl.Body.(*ast.IntegerLit)
	if !ok || lit.Value != 1 {
		t.Fatalf("expected bare literal, got %#v", decl.Body)
	}
}

func TestNewlineSeparatesDecls(t *testing.T) {
	decls := parseUnit(t, "f x = x\ng y = y\n")

	if len(decls) != 2 {
		t.Fatalf("expected 2 declarations, got %d", len(decls))
	}
	if decls[0].Id.Name != "f" || decls[1].Id.Name != "g" {
		t.Fatalf("expected f then g, got %q and %q", decls[0].Id.Name, decls[1].Id.Name)
	}
}

func TestNewlineInsideParensDoesNotSeparate(t *testing.T) {
	decl := parseOne(t, "f = (g\n h)")

	call, ok := decl.Body.(*ast.CallsiteExpr)
	if !ok {
		t.Fatalf("expected callsite body, got %T", decl.Body)
	}
	if len(call.Arguments) != 1 {
		t.Fatalf("expected 1 argument, got %d", len(call.Arguments))
	}
}

func TestOperatorAsSymbol(t *testing.T) {
	decl := parseOne(t, "inc = + 1")

	call, ok := decl.Body.(*ast.CallsiteExpr)
	if !ok {
		t.Fatalf("expected callsite body, got %T", decl.Body)
	}
	fn, ok := call.Function.(*ast.SymbolExpr)
	if !ok || fn.Id.Name != "+" {
		t.Fatalf("expected operator symbol +, got %#v", call.Function)
	}
}

func TestLiteralTerms(t *testing.T) {
	decl := parseOne(t, `lits = f 1 2.5 "s"`)

	call := decl.Body.(*ast.CallsiteExpr)
	if _, ok := call.Arguments[0].(*ast.IntegerLit); !ok {
		t.Fatalf("expected integer argument, got %T", call.Arguments[0])
	}
	flt, ok := call.Arguments[1].(*ast.FloatLit)
	if !ok || flt.Value != 2.5 {
		t.Fatalf("expected float argument 2.5, got %#v", call.Arguments[1])
	}
	str, ok := call.Arguments[2].(*ast.StringLit)
	if !ok || str.Value != `"s"` {
		t.Fatalf("expected string argument with quotes, got %#v", call.Arguments[2])
	}
}

func TestMissingEquals(t *testing.T) {
	err := parseErr(t, "f x")
	if !strings.Contains(err.Message, `expected operator "="`) {
		t.Fatalf("expected missing-equals error, got %q", err.Message)
	}
}

func TestMissingBody(t *testing.T) {
	err := parseErr(t, "f = do")
	if !strings.Contains(err.Message, "missing function callsite expression") {
		t.Fatalf("expected missing-callsite error, got %q", err.Message)
	}
}

func TestUnclosedParen(t *testing.T) {
	err := parseErr(t, "f = (x")
	if !strings.Contains(err.Message, "hit EOF but expected") {
		t.Fatalf("expected EOF error, got %q", err.Message)
	}
}

func TestTopLevelGarbage(t *testing.T) {
	err := parseErr(t, "= x")
	if !strings.Contains(err.Message, "expected a declaration") {
		t.Fatalf("expected declaration error, got %q", err.Message)
	}
}

func TestErrorLocationRendering(t *testing.T) {
	err := parseErr(t, "f x")
	if !strings.HasPrefix(err.Error(), "test.sk:1:") {
		t.Fatalf("expected location-prefixed rendering, got %q", err.Error())
	}
	if !strings.Contains(err.Error(), ": error: ") {
		t.Fatalf("expected error level in rendering, got %q", err.Error())
	}
}
