package ast

import "fmt"

// Check validates an AST without modifying it.
type Check interface {
	Name() string
	Check(prog *Program) error
}

// CheckChain runs checks in order, stopping at the first error.
type CheckChain []Check

// Run executes each check in sequence. Returns nil if all pass.
func (cc CheckChain) Run(prog *Program) error {
	for _, c := range cc {
		if err := c.Check(prog); err != nil {
			return err
		}
	}
	return nil
}

// CheckFunc adapts a named function to the Check interface.
type CheckFunc struct {
	N string
	F func(*Program) error
}

func (c CheckFunc) Name() string              { return c.N }
func (c CheckFunc) Check(prog *Program) error { return c.F(prog) }

// CheckError reports a problem found by a Check.
type CheckError struct {
	Check string
	Line  int
	Msg   string
}

func (e *CheckError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
	}
	return e.Msg
}

// DefaultChecks returns the checks run by `robo check`.
func DefaultChecks() CheckChain {
	return CheckChain{UndefinedVars()}
}

// UndefinedVars reports the first variable that is read somewhere in the
// program but never assigned anywhere. Assignments are bound while
// parsing, so their position relative to the read does not matter.
func UndefinedVars() Check {
	return CheckFunc{
		N: "undefined-vars",
		F: func(prog *Program) error {
			assigned := make(map[string]bool)
			Inspect(prog, func(n Node) bool {
				if a, ok := n.(*AssignStmt); ok {
					assigned[a.Name] = true
				}
				return true
			})

			var found *CheckError
			line := 0
			Inspect(prog, func(n Node) bool {
				if found != nil {
					return false
				}
				if s, ok := n.(Statement); ok {
					line = s.StmtLine()
				}
				if v, ok := n.(*VarExpr); ok && !assigned[v.Name] {
					found = &CheckError{
						Check: "undefined-vars",
						Line:  line,
						Msg:   fmt.Sprintf("variable %s is read but never assigned", v.Name),
					}
				}
				return true
			})
			if found != nil {
				return found
			}
			return nil
		},
	}
}
