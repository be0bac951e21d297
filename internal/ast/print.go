package ast

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Fprint writes one declaration per line to w.
func Fprint(w io.Writer, decls []*Decl) {
	for _, d := range decls {
		fmt.Fprintln(w, DeclString(d))
	}
}

// DeclString renders a declaration on one line in a source-like shape.
func DeclString(d *Decl) string {
	var b strings.Builder
	b.WriteString(d.Id.Name)
	for _, pred := range d.Predicates {
		b.WriteByte(' ')
		b.WriteString(PredicateString(pred))
	}
	b.WriteString(" = ")
	b.WriteString(ExprString(d.Body))
	return b.String()
}

// PredicateString renders a predicate compactly.
func PredicateString(p Predicate) string {
	switch p := p.(type) {
	case *IrrefutablePredicate:
		return p.Id.Name
	case *IntegerPredicate:
		return strconv.FormatInt(p.Value, 10)
	case *StringPredicate:
		return p.Value
	case *CtorPredicate:
		if len(p.Dims) == 0 {
			return p.Ctor.Name
		}
		parts := make([]string, 0, len(p.Dims)+1)
		parts = append(parts, p.Ctor.Name)
		for _, dim := range p.Dims {
			parts = append(parts, PredicateString(dim))
		}
		return "(" + strings.Join(parts, " ") + ")"
	case *TuplePredicate:
		parts := make([]string, 0, len(p.Dims))
		for _, dim := range p.Dims {
			parts = append(parts, PredicateString(dim))
		}
		return "(" + strings.Join(parts, ", ") + ")"
	default:
		return fmt.Sprintf("<%T>", p)
	}
}

// ExprString renders an expression compactly, parenthesizing compound
// forms.
func ExprString(e Expr) string {
	switch e := e.(type) {
	case *SymbolExpr:
		return e.Id.Name
	case *IntegerLit:
		return strconv.FormatInt(e.Value, 10)
	case *FloatLit:
		return strconv.FormatFloat(e.Value, 'g', -1, 64)
	case *StringLit:
		return e.Value
	case *LetExpr:
		return "(let " + e.Binding.Name + " = " + ExprString(e.Value) + " in " + ExprString(e.Body) + ")"
	case *LambdaExpr:
		params := make([]string, 0, len(e.Params))
		for _, p := range e.Params {
			params = append(params, p.Name)
		}
		return "(lambda " + strings.Join(params, " ") + " . " + ExprString(e.Body) + ")"
	case *MatchExpr:
		var b strings.Builder
		b.WriteString("(match ")
		b.WriteString(ExprString(e.Subject))
		for _, arm := range e.Arms {
			b.WriteString("; ")
			b.WriteString(PredicateString(arm.Predicate))
			b.WriteString(" => ")
			b.WriteString(ExprString(arm.Expr))
		}
		b.WriteByte(')')
		return b.String()
	case *CallsiteExpr:
		parts := make([]string, 0, len(e.Arguments)+1)
		parts = append(parts, ExprString(e.Function))
		for _, arg := range e.Arguments {
			parts = append(parts, ExprString(arg))
		}
		return "(" + strings.Join(parts, " ") + ")"
	case *TupleCtorExpr:
		parts := make([]string, 0, len(e.Dims))
		for _, dim := range e.Dims {
			parts = append(parts, ExprString(dim))
		}
		return "(" + strings.Join(parts, ", ") + ")"
	default:
		return fmt.Sprintf("<%T>", e)
	}
}
