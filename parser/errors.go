package parser

import (
	"fmt"
	"strings"

	"modernc.org/token"
)

// ContextTokens is the number of upcoming tokens quoted in a SyntaxError.
const ContextTokens = 5

// SyntaxError reports a grammar violation. Parsing stops at the first one.
type SyntaxError struct {
	Pos     token.Position
	Msg     string
	Context []string // the next tokens at the failure point, at most ContextTokens
	Hint    string   // optional suggestion, e.g. a likely intended action name
}

func (e *SyntaxError) Error() string {
	var sb strings.Builder
	if e.Pos.Line > 0 {
		if e.Pos.Filename != "" {
			fmt.Fprintf(&sb, "%s:", e.Pos.Filename)
		}
		fmt.Fprintf(&sb, "%d:%d: ", e.Pos.Line, e.Pos.Column)
	}
	sb.WriteString(e.Msg)
	sb.WriteString("\n   @ ...")
	for _, t := range e.Context {
		sb.WriteString(" ")
		sb.WriteString(t)
	}
	sb.WriteString("...")
	if e.Hint != "" {
		sb.WriteString("\n   ")
		sb.WriteString(e.Hint)
	}
	return sb.String()
}
