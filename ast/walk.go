package ast

// Inspect traverses the tree rooted at n in depth-first order, calling fn
// for every node. If fn returns false, the children of that node are
// skipped. Elif clauses are not nodes themselves; their condition and body
// are visited in declaration order between the if body and the else body.
func Inspect(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	switch x := n.(type) {
	case *Program:
		inspectStmts(x.Statements, fn)
	case *LoopStmt:
		inspectStmts(x.Body, fn)
	case *WhileStmt:
		Inspect(x.Condition, fn)
		inspectStmts(x.Body, fn)
	case *IfStmt:
		Inspect(x.Condition, fn)
		inspectStmts(x.Body, fn)
		for _, ec := range x.ElifClauses {
			Inspect(ec.Condition, fn)
			inspectStmts(ec.Body, fn)
		}
		inspectStmts(x.ElseBody, fn)
	case *ActionStmt:
		if x.Arg != nil {
			Inspect(x.Arg, fn)
		}
	case *CompareCond:
		Inspect(x.Left, fn)
		Inspect(x.Right, fn)
	case *AndCond:
		Inspect(x.Left, fn)
		Inspect(x.Right, fn)
	case *OrCond:
		Inspect(x.Left, fn)
		Inspect(x.Right, fn)
	case *NotCond:
		Inspect(x.Operand, fn)
	case *BinaryExpr:
		Inspect(x.Left, fn)
		Inspect(x.Right, fn)
	}
}

func inspectStmts(stmts []Statement, fn func(Node) bool) {
	for _, s := range stmts {
		Inspect(s, fn)
	}
}
