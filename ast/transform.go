package ast

// Transform rewrites an AST. Implementations must not mutate the input program.
type Transform interface {
	Name() string
	Transform(prog *Program) *Program
}

// TransformFunc adapts a named function to the Transform interface.
type TransformFunc struct {
	N string
	F func(*Program) *Program
}

func (t TransformFunc) Name() string                     { return t.N }
func (t TransformFunc) Transform(prog *Program) *Program { return t.F(prog) }

// Chain composes transforms left-to-right into a single Transform.
// Each transform receives the output of the previous one.
func Chain(transforms ...Transform) Transform {
	return TransformFunc{
		N: "chain",
		F: func(prog *Program) *Program {
			for _, t := range transforms {
				prog = t.Transform(prog)
			}
			return prog
		},
	}
}

// Simplify returns the rewrites applied by `robo fmt -s`. None of them
// changes which robot calls a program makes.
func Simplify() Transform {
	return Chain(FoldConstants(), DropDoubleNegation())
}

// FoldConstants replaces arithmetic on integer literals with its result.
// Division by a literal zero is kept so it still fails at run time.
func FoldConstants() Transform {
	return TransformFunc{
		N: "fold-constants",
		F: func(prog *Program) *Program {
			rw := &rewriter{expr: foldExpr}
			return rw.program(prog)
		},
	}
}

// DropDoubleNegation rewrites not(not(c)) to c.
func DropDoubleNegation() Transform {
	return TransformFunc{
		N: "drop-double-negation",
		F: func(prog *Program) *Program {
			rw := &rewriter{cond: dropDoubleNot}
			return rw.program(prog)
		},
	}
}

func foldExpr(e Expr) Expr {
	b, ok := e.(*BinaryExpr)
	if !ok {
		return e
	}
	l, lok := b.Left.(*IntLiteral)
	r, rok := b.Right.(*IntLiteral)
	if !lok || !rok {
		return e
	}
	var v int
	switch b.Op {
	case OpAdd:
		v = l.Value + r.Value
	case OpSub:
		v = l.Value - r.Value
	case OpMul:
		v = l.Value * r.Value
	case OpDiv:
		if r.Value == 0 {
			return e
		}
		v = l.Value / r.Value
	default:
		return e
	}
	return &IntLiteral{Value: v}
}

func dropDoubleNot(c Condition) Condition {
	if outer, ok := c.(*NotCond); ok {
		if inner, ok := outer.Operand.(*NotCond); ok {
			return inner.Operand
		}
	}
	return c
}

// rewriter applies expr and cond bottom-up, copying only the nodes on the
// path to a change.
type rewriter struct {
	expr func(Expr) Expr
	cond func(Condition) Condition
}

func (rw *rewriter) program(prog *Program) *Program {
	stmts, changed := mapSlice(prog.Statements, rw.stmt)
	if !changed {
		return prog
	}
	out := *prog
	out.Statements = stmts
	return &out
}

func (rw *rewriter) stmt(s Statement) Statement {
	switch s := s.(type) {
	case *LoopStmt:
		body, changed := mapSlice(s.Body, rw.stmt)
		if !changed {
			return s
		}
		out := *s
		out.Body = body
		return &out
	case *WhileStmt:
		c := rw.condition(s.Condition)
		body, changed := mapSlice(s.Body, rw.stmt)
		if !changed && c == s.Condition {
			return s
		}
		out := *s
		out.Condition, out.Body = c, body
		return &out
	case *IfStmt:
		c := rw.condition(s.Condition)
		body, bodyChanged := mapSlice(s.Body, rw.stmt)
		elifs, elifsChanged := rw.elifs(s.ElifClauses)
		elseBody, elseChanged := mapSlice(s.ElseBody, rw.stmt)
		if c == s.Condition && !bodyChanged && !elifsChanged && !elseChanged {
			return s
		}
		out := *s
		out.Condition, out.Body, out.ElifClauses, out.ElseBody = c, body, elifs, elseBody
		return &out
	case *ActionStmt:
		if s.Arg == nil {
			return s
		}
		arg := rw.expression(s.Arg)
		if arg == s.Arg {
			return s
		}
		out := *s
		out.Arg = arg
		return &out
	}
	return s
}

// elifs is mapSlice for clauses, which are values rather than nodes.
func (rw *rewriter) elifs(clauses []ElifClause) ([]ElifClause, bool) {
	var out []ElifClause
	modified := false
	for i, ec := range clauses {
		c := rw.condition(ec.Condition)
		body, changed := mapSlice(ec.Body, rw.stmt)
		if (changed || c != ec.Condition) && !modified {
			out = make([]ElifClause, len(clauses))
			copy(out[:i], clauses[:i])
			modified = true
		}
		if modified {
			out[i] = ElifClause{Condition: c, Body: body}
		}
	}
	if !modified {
		return clauses, false
	}
	return out, true
}

func (rw *rewriter) condition(c Condition) Condition {
	out := c
	switch c := c.(type) {
	case *CompareCond:
		l, r := rw.expression(c.Left), rw.expression(c.Right)
		if l != c.Left || r != c.Right {
			n := *c
			n.Left, n.Right = l, r
			out = &n
		}
	case *AndCond:
		l, r := rw.condition(c.Left), rw.condition(c.Right)
		if l != c.Left || r != c.Right {
			n := *c
			n.Left, n.Right = l, r
			out = &n
		}
	case *OrCond:
		l, r := rw.condition(c.Left), rw.condition(c.Right)
		if l != c.Left || r != c.Right {
			n := *c
			n.Left, n.Right = l, r
			out = &n
		}
	case *NotCond:
		if op := rw.condition(c.Operand); op != c.Operand {
			n := *c
			n.Operand = op
			out = &n
		}
	}
	if rw.cond != nil {
		out = rw.cond(out)
	}
	return out
}

func (rw *rewriter) expression(e Expr) Expr {
	out := e
	if b, ok := e.(*BinaryExpr); ok {
		l, r := rw.expression(b.Left), rw.expression(b.Right)
		if l != b.Left || r != b.Right {
			n := *b
			n.Left, n.Right = l, r
			out = &n
		}
	}
	if rw.expr != nil {
		out = rw.expr(out)
	}
	return out
}

// mapSlice applies fn to each element. Returns (newSlice, true) if any
// element changed, or (original, false) if all elements are identical.
func mapSlice[T comparable](items []T, fn func(T) T) ([]T, bool) {
	var out []T
	modified := false
	for i, item := range items {
		newItem := fn(item)
		if newItem != item && !modified {
			out = make([]T, len(items))
			copy(out[:i], items[:i])
			modified = true
		}
		if modified {
			out[i] = newItem
		}
	}
	if !modified {
		return items, false
	}
	return out, true
}
