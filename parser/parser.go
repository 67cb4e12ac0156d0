// Package parser recognizes the robot language grammar and builds an AST.
//
//	Program    ::= Statement*
//	Statement  ::= Loop | While | If | Assignment | Action
//	Loop       ::= "loop" Block
//	While      ::= "while" "(" Condition ")" Block
//	If         ::= "if" "(" Condition ")" Block ("elif" "(" Condition ")" Block)* ("else" Block)?
//	Assignment ::= VAR "=" INT ";"
//	Action     ::= ActionName ["(" Argument ")"] ";"
//	Block      ::= "{" Statement+ "}"
//	Condition  ::= RelOp "(" Argument "," Argument ")"
//	             | ("and"|"or") "(" Condition "," Condition ")"
//	             | "not" "(" Condition ")"
//	Argument   ::= INT | VAR | SensorName | Op "(" Argument "," Argument ")"
//
// Assignments are resolved while parsing: their values are bound into the
// Environment handed to the parser, which the interpreter later reads.
package parser

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strconv"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/rubiojr/robo/ast"
	"github.com/rubiojr/robo/env"
	"github.com/rubiojr/robo/scanner"
)

// Parser consumes a token Stream and produces a Program.
type Parser struct {
	s    *Stream
	vars *env.Environment
}

// New creates a Parser reading toks and binding assignments into vars.
func New(toks []scanner.Token, vars *env.Environment) *Parser {
	return &Parser{s: NewStream(toks), vars: vars}
}

// ParseFile reads and parses a program file.
func ParseFile(path string, vars *env.Environment) (*ast.Program, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return ParseSource(path, string(src), vars)
}

// ParseSource parses program source. The name is used in error positions.
func ParseSource(name, src string, vars *env.Environment) (*ast.Program, error) {
	prog, err := New(scanner.Tokenize(name, src), vars).Parse()
	if err != nil {
		return nil, err
	}
	prog.SourceFile = name
	return prog, nil
}

// Parse parses the whole stream. On a syntax error it returns a
// *SyntaxError and no program.
func (p *Parser) Parse() (*ast.Program, error) {
	prog := &ast.Program{}
	for p.s.HasNext() {
		stmt, err := p.ParseStatement()
		if err != nil {
			return nil, err
		}
		prog.Statements = append(prog.Statements, stmt)
	}
	return prog, nil
}

// ParseStatement parses exactly one statement.
func (p *Parser) ParseStatement() (ast.Statement, error) {
	line := p.s.Pos().Line
	switch {
	case p.s.HasNextText("loop"):
		p.s.Next()
		body, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		return &ast.LoopStmt{BaseStmt: ast.BaseStmt{SourceLine: line}, Body: body}, nil
	case p.s.HasNextText("while"):
		p.s.Next()
		return p.parseWhile(line)
	case p.s.HasNextText("if"):
		p.s.Next()
		return p.parseIf(line)
	case p.s.HasNextMatch(VarPat):
		return p.parseAssign(line)
	default:
		return p.parseAction(line)
	}
}

// Fail builds a SyntaxError at the current position quoting the next
// ContextTokens tokens.
func (p *Parser) Fail(msg string) *SyntaxError {
	rest := p.s.Remaining(ContextTokens)
	ctx := make([]string, len(rest))
	for i, t := range rest {
		ctx[i] = t.Text
	}
	return &SyntaxError{Pos: p.s.Pos(), Msg: msg, Context: ctx}
}

// Require consumes and returns the next token if it matches re, or fails
// with msg.
func (p *Parser) Require(re *regexp.Regexp, msg string) (string, error) {
	if p.s.HasNextMatch(re) {
		tok, _ := p.s.Next()
		return tok.Text, nil
	}
	return "", p.Fail(msg)
}

// RequireInt is Require for a token that must also parse as an int.
func (p *Parser) RequireInt(re *regexp.Regexp, msg string) (int, error) {
	if p.s.HasNextMatch(re) {
		tok, _ := p.s.Peek()
		if n, err := strconv.Atoi(tok.Text); err == nil {
			p.s.Next()
			return n, nil
		}
	}
	return 0, p.Fail(msg)
}

// CheckFor consumes the next token and returns true if it matches re;
// otherwise it consumes nothing.
func (p *Parser) CheckFor(re *regexp.Regexp) bool {
	if p.s.HasNextMatch(re) {
		p.s.Next()
		return true
	}
	return false
}

func (p *Parser) expect(re *regexp.Regexp, msg string) error {
	_, err := p.Require(re, msg)
	return err
}

func (p *Parser) parseWhile(line int) (ast.Statement, error) {
	cond, err := p.parseParenCond()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.WhileStmt{BaseStmt: ast.BaseStmt{SourceLine: line}, Condition: cond, Body: body}, nil
}

func (p *Parser) parseIf(line int) (ast.Statement, error) {
	cond, err := p.parseParenCond()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	stmt := &ast.IfStmt{BaseStmt: ast.BaseStmt{SourceLine: line}, Condition: cond, Body: body}
	for p.CheckFor(ElifPat) {
		ec := ast.ElifClause{}
		if ec.Condition, err = p.parseParenCond(); err != nil {
			return nil, err
		}
		if ec.Body, err = p.parseBlock(); err != nil {
			return nil, err
		}
		stmt.ElifClauses = append(stmt.ElifClauses, ec)
	}
	if p.CheckFor(ElsePat) {
		if stmt.ElseBody, err = p.parseBlock(); err != nil {
			return nil, err
		}
	}
	return stmt, nil
}

func (p *Parser) parseParenCond() (ast.Condition, error) {
	if err := p.expect(OpenParenPat, "Invalid syntax: ( expected"); err != nil {
		return nil, err
	}
	cond, err := p.parseCond()
	if err != nil {
		return nil, err
	}
	if err := p.expect(CloseParenPat, "Invalid syntax: ) expected"); err != nil {
		return nil, err
	}
	return cond, nil
}

func (p *Parser) parseAssign(line int) (ast.Statement, error) {
	tok, _ := p.s.Next()
	if err := p.expect(EqualsPat, "Invalid syntax: = expected"); err != nil {
		return nil, err
	}
	value, err := p.RequireInt(NumPat, "Invalid syntax: integer expected")
	if err != nil {
		return nil, err
	}
	if err := p.expect(SemicolonPat, "Invalid syntax: ; expected"); err != nil {
		return nil, err
	}
	p.vars.Assign(tok.Text, value)
	return &ast.AssignStmt{BaseStmt: ast.BaseStmt{SourceLine: line}, Name: tok.Text, Value: value}, nil
}

func (p *Parser) parseAction(line int) (ast.Statement, error) {
	tok, ok := p.s.Peek()
	if !ok {
		return nil, p.Fail("Invalid syntax: statement expected")
	}
	action, ok := ast.LookupAction(tok.Text)
	if !ok {
		err := p.Fail("Invalid syntax: statement expected")
		err.Hint = suggest(tok.Text)
		return nil, err
	}
	p.s.Next()

	stmt := &ast.ActionStmt{BaseStmt: ast.BaseStmt{SourceLine: line}, Action: action}
	if p.s.HasNextMatch(OpenParenPat) {
		if !action.TakesArg() {
			return nil, p.Fail("Invalid syntax: only move and wait take arguments")
		}
		p.s.Next()
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expect(CloseParenPat, "Invalid syntax: ) expected"); err != nil {
			return nil, err
		}
		stmt.Arg = arg
	}
	if err := p.expect(SemicolonPat, "Invalid syntax: ; expected"); err != nil {
		return nil, err
	}
	return stmt, nil
}

func (p *Parser) parseBlock() (ast.Block, error) {
	if err := p.expect(OpenBracePat, "Invalid syntax: { expected"); err != nil {
		return nil, err
	}
	var body ast.Block
	for p.s.HasNext() && !p.s.HasNextMatch(CloseBracePat) {
		stmt, err := p.ParseStatement()
		if err != nil {
			return nil, err
		}
		body = append(body, stmt)
	}
	if len(body) == 0 {
		return nil, p.Fail("Invalid syntax: statement expected")
	}
	if err := p.expect(CloseBracePat, "Invalid syntax: } expected"); err != nil {
		return nil, err
	}
	return body, nil
}

func (p *Parser) parseCond() (ast.Condition, error) {
	tok, _ := p.s.Peek()
	switch {
	case p.s.HasNextMatch(RelOpPat):
		p.s.Next()
		op, _ := ast.LookupRelOp(tok.Text)
		left, right, err := p.parseExprPair()
		if err != nil {
			return nil, err
		}
		return &ast.CompareCond{Op: op, Left: left, Right: right}, nil
	case p.s.HasNextText("and"), p.s.HasNextText("or"):
		p.s.Next()
		if err := p.expect(OpenParenPat, "Invalid syntax: ( expected"); err != nil {
			return nil, err
		}
		left, err := p.parseCond()
		if err != nil {
			return nil, err
		}
		if err := p.expect(CommaPat, "Invalid syntax: , expected"); err != nil {
			return nil, err
		}
		right, err := p.parseCond()
		if err != nil {
			return nil, err
		}
		if err := p.expect(CloseParenPat, "Invalid syntax: ) expected"); err != nil {
			return nil, err
		}
		if tok.Text == "and" {
			return &ast.AndCond{Left: left, Right: right}, nil
		}
		return &ast.OrCond{Left: left, Right: right}, nil
	case p.s.HasNextText("not"):
		p.s.Next()
		operand, err := p.parseParenCond()
		if err != nil {
			return nil, err
		}
		return &ast.NotCond{Operand: operand}, nil
	}
	return nil, p.Fail("Invalid syntax: not a suitable condition")
}

func (p *Parser) parseExpr() (ast.Expr, error) {
	tok, _ := p.s.Peek()
	switch {
	case p.s.HasNextMatch(NumPat):
		n, err := p.RequireInt(NumPat, "Invalid syntax: integer out of range")
		if err != nil {
			return nil, err
		}
		return &ast.IntLiteral{Value: n}, nil
	case p.s.HasNextMatch(OpPat):
		p.s.Next()
		op, _ := ast.LookupArithOp(tok.Text)
		left, right, err := p.parseExprPair()
		if err != nil {
			return nil, err
		}
		return &ast.BinaryExpr{Op: op, Left: left, Right: right}, nil
	case p.s.HasNextMatch(VarPat):
		p.s.Next()
		return &ast.VarExpr{Name: tok.Text}, nil
	case p.s.HasNextMatch(SensorPat):
		p.s.Next()
		sensor, _ := ast.LookupSensor(tok.Text)
		return &ast.SensorExpr{Sensor: sensor}, nil
	}
	return nil, p.Fail("Invalid syntax: expression expected")
}

// parseExprPair parses "(" Argument "," Argument ")".
func (p *Parser) parseExprPair() (ast.Expr, ast.Expr, error) {
	if err := p.expect(OpenParenPat, "Invalid syntax: ( expected"); err != nil {
		return nil, nil, err
	}
	left, err := p.parseExpr()
	if err != nil {
		return nil, nil, err
	}
	if err := p.expect(CommaPat, "Invalid syntax: , expected"); err != nil {
		return nil, nil, err
	}
	right, err := p.parseExpr()
	if err != nil {
		return nil, nil, err
	}
	if err := p.expect(CloseParenPat, "Invalid syntax: ) expected"); err != nil {
		return nil, nil, err
	}
	return left, right, nil
}

// suggest returns a "did you mean" hint for an unknown statement word.
func suggest(word string) string {
	candidates := append(ast.ActionNames(), "loop", "while", "if")
	ranks := fuzzy.RankFindFold(word, candidates)
	if len(ranks) == 0 {
		return ""
	}
	sort.Sort(ranks)
	return fmt.Sprintf("did you mean %q?", ranks[0].Target)
}
