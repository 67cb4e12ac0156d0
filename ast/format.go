package ast

import (
	"strconv"
	"strings"
)

const indent = "  "

// Format renders a program as canonical source text. Parsing the output
// yields a program structurally identical to prog (source lines aside).
func Format(prog *Program) string {
	var sb strings.Builder
	for _, s := range prog.Statements {
		formatStmt(&sb, s, 0)
	}
	return sb.String()
}

// FormatStmt renders a single statement, including any nested blocks.
func FormatStmt(s Statement) string {
	var sb strings.Builder
	formatStmt(&sb, s, 0)
	return strings.TrimRight(sb.String(), "\n")
}

// FormatCond renders a condition on one line.
func FormatCond(c Condition) string {
	switch c := c.(type) {
	case *CompareCond:
		return c.Op.String() + "(" + FormatExpr(c.Left) + ", " + FormatExpr(c.Right) + ")"
	case *AndCond:
		return "and(" + FormatCond(c.Left) + ", " + FormatCond(c.Right) + ")"
	case *OrCond:
		return "or(" + FormatCond(c.Left) + ", " + FormatCond(c.Right) + ")"
	case *NotCond:
		return "not(" + FormatCond(c.Operand) + ")"
	}
	return "?"
}

// FormatExpr renders an expression on one line.
func FormatExpr(e Expr) string {
	switch e := e.(type) {
	case *IntLiteral:
		return strconv.Itoa(e.Value)
	case *SensorExpr:
		return e.Sensor.String()
	case *VarExpr:
		return e.Name
	case *BinaryExpr:
		return e.Op.String() + "(" + FormatExpr(e.Left) + ", " + FormatExpr(e.Right) + ")"
	}
	return "?"
}

func formatStmt(sb *strings.Builder, s Statement, depth int) {
	pad := strings.Repeat(indent, depth)
	switch s := s.(type) {
	case *LoopStmt:
		sb.WriteString(pad + "loop ")
		formatBlock(sb, s.Body, depth)
		sb.WriteString("\n")
	case *WhileStmt:
		sb.WriteString(pad + "while (" + FormatCond(s.Condition) + ") ")
		formatBlock(sb, s.Body, depth)
		sb.WriteString("\n")
	case *IfStmt:
		sb.WriteString(pad + "if (" + FormatCond(s.Condition) + ") ")
		formatBlock(sb, s.Body, depth)
		for _, ec := range s.ElifClauses {
			sb.WriteString(" elif (" + FormatCond(ec.Condition) + ") ")
			formatBlock(sb, ec.Body, depth)
		}
		if s.ElseBody != nil {
			sb.WriteString(" else ")
			formatBlock(sb, s.ElseBody, depth)
		}
		sb.WriteString("\n")
	case *AssignStmt:
		sb.WriteString(pad + s.Name + " = " + strconv.Itoa(s.Value) + ";\n")
	case *ActionStmt:
		sb.WriteString(pad + s.Action.String())
		if s.Arg != nil {
			sb.WriteString("(" + FormatExpr(s.Arg) + ")")
		}
		sb.WriteString(";\n")
	}
}

func formatBlock(sb *strings.Builder, b Block, depth int) {
	sb.WriteString("{\n")
	for _, s := range b {
		formatStmt(sb, s, depth+1)
	}
	sb.WriteString(strings.Repeat(indent, depth) + "}")
}
