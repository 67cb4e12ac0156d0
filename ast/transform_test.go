package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChainEmpty(t *testing.T) {
	prog := &Program{SourceFile: "test.prog"}
	result := Chain().Transform(prog)
	assert.Same(t, prog, result, "empty chain returns same program")
}

func TestChainOrdering(t *testing.T) {
	var order []string
	step := func(name string) Transform {
		return TransformFunc{
			N: name,
			F: func(prog *Program) *Program {
				order = append(order, name)
				return &Program{SourceFile: prog.SourceFile + "+" + name}
			},
		}
	}
	inner := Chain(step("a"), step("b"))
	result := Chain(inner, step("c")).Transform(&Program{SourceFile: "start"})
	assert.Equal(t, []string{"a", "b", "c"}, order)
	assert.Equal(t, "start+a+b+c", result.SourceFile)
}

func TestTransformNames(t *testing.T) {
	assert.Equal(t, "chain", Chain().Name())
	assert.Equal(t, "fold-constants", FoldConstants().Name())
	assert.Equal(t, "drop-double-negation", DropDoubleNegation().Name())
}

func lit(v int) *IntLiteral { return &IntLiteral{Value: v} }

func bin(op ArithOp, l, r Expr) *BinaryExpr { return &BinaryExpr{Op: op, Left: l, Right: r} }

func TestFoldConstants(t *testing.T) {
	move := &ActionStmt{BaseStmt: BaseStmt{SourceLine: 1}, Action: ActMove,
		Arg: bin(OpMul, bin(OpAdd, lit(1), lit(2)), lit(4))}
	prog := &Program{Statements: []Statement{move}}

	out := FoldConstants().Transform(prog)
	assert.NotSame(t, prog, out)
	assert.Equal(t, "move(12);\n", Format(out))
	assert.Equal(t, "move(mul(add(1, 2), 4));\n", Format(prog), "input is left untouched")
	assert.Equal(t, 1, out.Statements[0].StmtLine())
}

func TestFoldKeepsSensorsAndZeroDivision(t *testing.T) {
	fuel := &SensorExpr{Sensor: SenFuelLeft}
	stmts := []Statement{
		&ActionStmt{Action: ActMove, Arg: bin(OpAdd, fuel, bin(OpSub, lit(5), lit(2)))},
		&ActionStmt{Action: ActWait, Arg: bin(OpDiv, lit(5), lit(0))},
		&ActionStmt{Action: ActWait, Arg: bin(OpDiv, lit(-7), lit(2))},
	}
	out := FoldConstants().Transform(&Program{Statements: stmts})
	assert.Equal(t, "move(add(fuelLeft, 3));\nwait(div(5, 0));\nwait(-3);\n", Format(out))
}

func TestFoldUnchangedIsSame(t *testing.T) {
	prog := &Program{Statements: []Statement{
		&LoopStmt{Body: Block{&ActionStmt{Action: ActTurnL}}},
		&WhileStmt{
			Condition: &CompareCond{Op: OpGt, Left: &SensorExpr{Sensor: SenWallDist}, Right: lit(0)},
			Body:      Block{&ActionStmt{Action: ActMove}},
		},
	}}
	assert.Same(t, prog, Simplify().Transform(prog))
}

func TestFoldInsideConditions(t *testing.T) {
	cond := &AndCond{
		Left:  &CompareCond{Op: OpLt, Left: &VarExpr{Name: "$x"}, Right: bin(OpSub, lit(10), lit(1))},
		Right: &CompareCond{Op: OpEq, Left: lit(0), Right: lit(0)},
	}
	untouched := &ActionStmt{Action: ActTurnR}
	prog := &Program{Statements: []Statement{
		&IfStmt{
			Condition: &NotCond{Operand: &NotCond{Operand: cond}},
			Body:      Block{untouched},
			ElifClauses: []ElifClause{
				{Condition: &CompareCond{Op: OpGt, Left: lit(1), Right: lit(2)}, Body: Block{&ActionStmt{Action: ActWait}}},
				{Condition: &CompareCond{Op: OpGt, Left: lit(1), Right: bin(OpMul, lit(2), lit(3))}, Body: Block{&ActionStmt{Action: ActWait}}},
			},
			ElseBody: Block{&ActionStmt{Action: ActMove, Arg: bin(OpDiv, lit(9), lit(3))}},
		},
	}}

	out := Simplify().Transform(prog)
	want := "if (and(lt($x, 9), eq(0, 0))) {\n" +
		"  turnR;\n" +
		"} elif (gt(1, 2)) {\n" +
		"  wait;\n" +
		"} elif (gt(1, 6)) {\n" +
		"  wait;\n" +
		"} else {\n" +
		"  move(3);\n" +
		"}\n"
	assert.Equal(t, want, Format(out))

	s := out.Statements[0].(*IfStmt)
	assert.Same(t, untouched, s.Body[0], "unchanged statements are shared")
	assert.Same(t, prog.Statements[0].(*IfStmt).ElifClauses[0].Condition, s.ElifClauses[0].Condition)
}

func TestDropDoubleNegationKeepsSingle(t *testing.T) {
	c := &NotCond{Operand: &NotCond{Operand: &NotCond{Operand: &CompareCond{Op: OpEq, Left: lit(1), Right: lit(1)}}}}
	prog := &Program{Statements: []Statement{&WhileStmt{Condition: c, Body: Block{&ActionStmt{Action: ActWait}}}}}
	out := DropDoubleNegation().Transform(prog)
	assert.Equal(t, "while (not(eq(1, 1))) {\n  wait;\n}\n", Format(out))
}
