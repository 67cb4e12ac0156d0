// Package interp executes robot programs by walking their AST against a
// Robot. Statements run in declared order; every actuator call and sensor
// read is a checkpoint where a dead robot or a done context unwinds the
// whole run with ErrCancelled.
package interp

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rubiojr/robo/ast"
	"github.com/rubiojr/robo/env"
)

// Option configures the interpreter.
type Option func(*Interpreter)

// WithTrace writes one line per capability call to w.
func WithTrace(w io.Writer) Option {
	return func(in *Interpreter) { in.trace = w }
}

// WithMaxSteps caps the number of steps of a run. Every capability call
// and every loop iteration is a step. Zero means unlimited.
func WithMaxSteps(n int) Option {
	return func(in *Interpreter) { in.maxSteps = n }
}

// Interpreter evaluates programs against one robot. The AST is never
// modified, so the same program may be run repeatedly.
type Interpreter struct {
	robot    Robot
	vars     *env.Environment
	trace    io.Writer
	maxSteps int
	steps    int
}

// New creates an Interpreter reading variables from vars, normally the
// environment the program was parsed with.
func New(r Robot, vars *env.Environment, opts ...Option) *Interpreter {
	if vars == nil {
		vars = env.New()
	}
	in := &Interpreter{robot: r, vars: vars, trace: io.Discard}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// Steps returns the number of steps taken so far.
func (in *Interpreter) Steps() int { return in.steps }

// Run executes the program's statements in order. A robot dying inside a
// loop body or at top level yields an error for which IsCancelled is
// true; a loop that observes the death between iterations ends normally.
func (in *Interpreter) Run(ctx context.Context, prog *ast.Program) error {
	for _, s := range prog.Statements {
		if err := in.Exec(ctx, s); err != nil {
			return err
		}
	}
	return nil
}

// Exec executes a single statement. Failures other than cancellation are
// returned as *RuntimeError carrying the innermost failing statement line.
func (in *Interpreter) Exec(ctx context.Context, s ast.Statement) error {
	err := in.exec(ctx, s)
	if err == nil || IsCancelled(err) {
		return err
	}
	var re *RuntimeError
	if errors.As(err, &re) {
		return err
	}
	return &RuntimeError{Line: s.StmtLine(), Err: err}
}

func (in *Interpreter) exec(ctx context.Context, s ast.Statement) error {
	switch s := s.(type) {
	case *ast.AssignStmt:
		// Bound while parsing.
		return nil
	case *ast.ActionStmt:
		return in.execAction(ctx, s)
	case *ast.LoopStmt:
		for !in.robot.IsDead() {
			if err := in.step(ctx); err != nil {
				return err
			}
			if err := in.execBlock(ctx, s.Body); err != nil {
				return err
			}
		}
		return nil
	case *ast.WhileStmt:
		for {
			ok, err := in.Test(ctx, s.Condition)
			if err != nil || !ok {
				return err
			}
			if err := in.step(ctx); err != nil {
				return err
			}
			if err := in.execBlock(ctx, s.Body); err != nil {
				return err
			}
		}
	case *ast.IfStmt:
		return in.execIf(ctx, s)
	}
	return fmt.Errorf("unsupported statement %T", s)
}

// execIf runs the first branch whose condition holds, falling back to the
// else body when none does.
func (in *Interpreter) execIf(ctx context.Context, s *ast.IfStmt) error {
	ok, err := in.Test(ctx, s.Condition)
	if err != nil {
		return err
	}
	if ok {
		return in.execBlock(ctx, s.Body)
	}
	for _, ec := range s.ElifClauses {
		ok, err := in.Test(ctx, ec.Condition)
		if err != nil {
			return err
		}
		if ok {
			return in.execBlock(ctx, ec.Body)
		}
	}
	if s.ElseBody != nil {
		return in.execBlock(ctx, s.ElseBody)
	}
	return nil
}

func (in *Interpreter) execBlock(ctx context.Context, b ast.Block) error {
	for _, s := range b {
		if err := in.Exec(ctx, s); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interpreter) execAction(ctx context.Context, s *ast.ActionStmt) error {
	r := in.robot
	switch s.Action {
	case ast.ActMove:
		dist, err := in.evalArg(ctx, s.Arg)
		if err != nil {
			return err
		}
		return in.call(ctx, fmt.Sprintf("move(%d)", dist), func(ctx context.Context) error {
			return r.Move(ctx, dist)
		})
	case ast.ActWait:
		n, err := in.evalArg(ctx, s.Arg)
		if err != nil {
			return err
		}
		for range n {
			if err := in.call(ctx, "wait", r.IdleWait); err != nil {
				return err
			}
		}
		return nil
	case ast.ActTurnL:
		return in.call(ctx, "turnL", r.TurnLeft)
	case ast.ActTurnR:
		return in.call(ctx, "turnR", r.TurnRight)
	case ast.ActTurnAround:
		return in.call(ctx, "turnAround", r.TurnAround)
	case ast.ActTakeFuel:
		return in.call(ctx, "takeFuel", r.TakeFuel)
	case ast.ActShieldOn:
		return in.call(ctx, "shieldOn", func(ctx context.Context) error { return r.SetShield(ctx, true) })
	case ast.ActShieldOff:
		return in.call(ctx, "shieldOff", func(ctx context.Context) error { return r.SetShield(ctx, false) })
	}
	return in.call(ctx, "wait", r.IdleWait)
}

// evalArg evaluates an optional action argument, defaulting to 1.
func (in *Interpreter) evalArg(ctx context.Context, e ast.Expr) (int, error) {
	if e == nil {
		return 1, nil
	}
	return in.Eval(ctx, e)
}

// Test evaluates a condition. and/or short-circuit left to right.
func (in *Interpreter) Test(ctx context.Context, c ast.Condition) (bool, error) {
	switch c := c.(type) {
	case *ast.CompareCond:
		l, err := in.Eval(ctx, c.Left)
		if err != nil {
			return false, err
		}
		r, err := in.Eval(ctx, c.Right)
		if err != nil {
			return false, err
		}
		switch c.Op {
		case ast.OpLt:
			return l < r, nil
		case ast.OpGt:
			return l > r, nil
		case ast.OpEq:
			return l == r, nil
		}
		return false, fmt.Errorf("unsupported relational operator %v", c.Op)
	case *ast.AndCond:
		ok, err := in.Test(ctx, c.Left)
		if err != nil || !ok {
			return false, err
		}
		return in.Test(ctx, c.Right)
	case *ast.OrCond:
		ok, err := in.Test(ctx, c.Left)
		if err != nil || ok {
			return ok, err
		}
		return in.Test(ctx, c.Right)
	case *ast.NotCond:
		ok, err := in.Test(ctx, c.Operand)
		return !ok, err
	}
	return false, fmt.Errorf("unsupported condition %T", c)
}

// Eval evaluates an integer expression.
func (in *Interpreter) Eval(ctx context.Context, e ast.Expr) (int, error) {
	switch e := e.(type) {
	case *ast.IntLiteral:
		return e.Value, nil
	case *ast.SensorExpr:
		return in.sense(ctx, e.Sensor)
	case *ast.VarExpr:
		return in.vars.Lookup(e.Name)
	case *ast.BinaryExpr:
		l, err := in.Eval(ctx, e.Left)
		if err != nil {
			return 0, err
		}
		r, err := in.Eval(ctx, e.Right)
		if err != nil {
			return 0, err
		}
		switch e.Op {
		case ast.OpAdd:
			return l + r, nil
		case ast.OpSub:
			return l - r, nil
		case ast.OpMul:
			return l * r, nil
		case ast.OpDiv:
			if r == 0 {
				return 0, fmt.Errorf("%s: %w", ast.FormatExpr(e), ErrDivisionByZero)
			}
			return l / r, nil
		}
		return 0, fmt.Errorf("unsupported operator %v", e.Op)
	}
	return 0, fmt.Errorf("unsupported expression %T", e)
}

func (in *Interpreter) sense(ctx context.Context, s ast.Sensor) (int, error) {
	r := in.robot
	var read func(context.Context) (int, error)
	switch s {
	case ast.SenFuelLeft:
		read = r.Fuel
	case ast.SenOppLR:
		read = r.OpponentLR
	case ast.SenOppFB:
		read = r.OpponentFB
	case ast.SenNumBarrels:
		read = r.NumBarrels
	case ast.SenBarrelLR:
		read = r.ClosestBarrelLR
	case ast.SenBarrelFB:
		read = r.ClosestBarrelFB
	case ast.SenWallDist:
		read = r.DistanceToWall
	default:
		return 0, fmt.Errorf("unsupported sensor %v", s)
	}
	if err := in.checkpoint(ctx); err != nil {
		return 0, err
	}
	v, err := read(ctx)
	if err != nil {
		if IsCancelled(err) {
			return 0, err
		}
		return 0, fmt.Errorf("%s: %w", s, err)
	}
	fmt.Fprintf(in.trace, "%6d  %s = %d\n", in.steps, s, v)
	return v, nil
}

// call performs one actuator capability call.
func (in *Interpreter) call(ctx context.Context, what string, fn func(context.Context) error) error {
	if err := in.checkpoint(ctx); err != nil {
		return err
	}
	fmt.Fprintf(in.trace, "%6d  %s\n", in.steps, what)
	if err := fn(ctx); err != nil {
		if IsCancelled(err) {
			return err
		}
		return fmt.Errorf("%s: %w", what, err)
	}
	return nil
}

// checkpoint guards every capability call.
func (in *Interpreter) checkpoint(ctx context.Context) error {
	if in.robot.IsDead() {
		return ErrCancelled
	}
	return in.step(ctx)
}

func (in *Interpreter) step(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrCancelled, err)
	}
	if in.maxSteps > 0 && in.steps >= in.maxSteps {
		return fmt.Errorf("%w (%d)", ErrStepLimit, in.maxSteps)
	}
	in.steps++
	return nil
}
