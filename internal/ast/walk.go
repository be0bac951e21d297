package ast

// Walk traverses the AST starting from node, calling fn for each node.
// If fn returns false, Walk stops traversing that branch.
func Walk(node Node, fn func(Node) bool) {
	if node == nil || !fn(node) {
		return
	}

	switch n := node.(type) {
	case *Decl:
		Walk(n.Id, fn)
		for _, pred := range n.Predicates {
			Walk(pred, fn)
		}
		Walk(n.Body, fn)

	case *IrrefutablePredicate:
		Walk(n.Id, fn)

	case *CtorPredicate:
		Walk(n.Ctor, fn)
		for _, dim := range n.Dims {
			Walk(dim, fn)
		}

	case *TuplePredicate:
		for _, dim := range n.Dims {
			Walk(dim, fn)
		}

	case *LambdaExpr:
		for _, param := range n.Params {
			Walk(param, fn)
		}
		Walk(n.Body, fn)

	case *LetExpr:
		Walk(n.Binding, fn)
		Walk(n.Value, fn)
		Walk(n.Body, fn)

	case *SymbolExpr:
		Walk(n.Id, fn)

	case *MatchExpr:
		Walk(n.Subject, fn)
		for _, arm := range n.Arms {
			Walk(arm.Predicate, fn)
			Walk(arm.Expr, fn)
		}

	case *CallsiteExpr:
		Walk(n.Function, fn)
		for _, arg := range n.Arguments {
			Walk(arg, fn)
		}

	case *TupleCtorExpr:
		for _, dim := range n.Dims {
			Walk(dim, fn)
		}
	}
}
