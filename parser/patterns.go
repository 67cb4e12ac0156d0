package parser

import (
	"regexp"
	"strings"

	"github.com/rubiojr/robo/ast"
)

// Token patterns. Each matches a whole token.
var (
	NumPat        = whole(`-?\d+`)
	VarPat        = whole(`\$[A-Za-z][A-Za-z0-9]*`)
	RelOpPat      = whole(strings.Join(ast.RelOpNames(), "|"))
	OpPat         = whole(strings.Join(ast.ArithOpNames(), "|"))
	SensorPat     = whole(strings.Join(ast.SensorNames(), "|"))
	ActionPat     = whole(strings.Join(ast.ActionNames(), "|"))
	OpenParenPat  = whole(`\(`)
	CloseParenPat = whole(`\)`)
	OpenBracePat  = whole(`\{`)
	CloseBracePat = whole(`\}`)
	CommaPat      = whole(`,`)
	SemicolonPat  = whole(`;`)
	EqualsPat     = whole(`=`)
	ElifPat       = whole(`elif`)
	ElsePat       = whole(`else`)
)

func whole(expr string) *regexp.Regexp {
	return regexp.MustCompile(`^(?:` + expr + `)$`)
}
