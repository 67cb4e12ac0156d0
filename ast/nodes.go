package ast

// Node is the interface for all AST nodes.
type Node interface {
	node()
}

// Statement is the interface for statement nodes.
type Statement interface {
	Node
	stmt()
	StmtLine() int
}

// BaseStmt provides common fields for all statements.
type BaseStmt struct {
	SourceLine int // line of the statement's first token (0 if unknown)
}

func (b BaseStmt) StmtLine() int { return b.SourceLine }

// Condition is the interface for boolean condition nodes.
type Condition interface {
	Node
	cond()
}

// Expr is the interface for integer expression nodes.
type Expr interface {
	Node
	expr()
}

// Block is a non-empty list of statements. The parser rejects empty
// blocks, so a Block reached by the interpreter always has a statement.
type Block []Statement

// Program is the root node.
type Program struct {
	Statements []Statement
	SourceFile string // display path of the source file
}

func (p *Program) node() {}

// LoopStmt represents loop { ... }. It has no condition; it only ends when
// the robot's termination signal is raised.
type LoopStmt struct {
	BaseStmt
	Body Block
}

func (l *LoopStmt) node() {}
func (l *LoopStmt) stmt() {}

// WhileStmt represents while (cond) { ... }.
type WhileStmt struct {
	BaseStmt
	Condition Condition
	Body      Block
}

func (w *WhileStmt) node() {}
func (w *WhileStmt) stmt() {}

// IfStmt represents if/elif/else.
type IfStmt struct {
	BaseStmt
	Condition   Condition
	Body        Block
	ElifClauses []ElifClause
	ElseBody    Block // nil when there is no else
}

func (i *IfStmt) node() {}
func (i *IfStmt) stmt() {}

// ElifClause is one elif branch.
type ElifClause struct {
	Condition Condition
	Body      Block
}

// AssignStmt represents $name = INT;. The value is bound into the
// environment while parsing; executing the statement does nothing.
type AssignStmt struct {
	BaseStmt
	Name  string
	Value int
}

func (a *AssignStmt) node() {}
func (a *AssignStmt) stmt() {}

// ActionStmt represents an actuator call such as move(3); or turnL;.
type ActionStmt struct {
	BaseStmt
	Action Action
	Arg    Expr // nil when no argument was given
}

func (a *ActionStmt) node() {}
func (a *ActionStmt) stmt() {}

// CompareCond represents lt/gt/eq(left, right).
type CompareCond struct {
	Op    RelOp
	Left  Expr
	Right Expr
}

func (c *CompareCond) node() {}
func (c *CompareCond) cond() {}

// AndCond represents and(left, right).
type AndCond struct {
	Left  Condition
	Right Condition
}

func (a *AndCond) node() {}
func (a *AndCond) cond() {}

// OrCond represents or(left, right).
type OrCond struct {
	Left  Condition
	Right Condition
}

func (o *OrCond) node() {}
func (o *OrCond) cond() {}

// NotCond represents not(cond).
type NotCond struct {
	Operand Condition
}

func (n *NotCond) node() {}
func (n *NotCond) cond() {}

// IntLiteral is an integer literal.
type IntLiteral struct {
	Value int
}

func (i *IntLiteral) node() {}
func (i *IntLiteral) expr() {}

// SensorExpr reads one of the robot's sensors.
type SensorExpr struct {
	Sensor Sensor
}

func (s *SensorExpr) node() {}
func (s *SensorExpr) expr() {}

// VarExpr reads a variable ($name).
type VarExpr struct {
	Name string
}

func (v *VarExpr) node() {}
func (v *VarExpr) expr() {}

// BinaryExpr represents add/sub/mul/div(left, right).
type BinaryExpr struct {
	Op    ArithOp
	Left  Expr
	Right Expr
}

func (b *BinaryExpr) node() {}
func (b *BinaryExpr) expr() {}
