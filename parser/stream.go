package parser

import (
	"regexp"

	"github.com/rubiojr/robo/scanner"
	"modernc.org/token"
)

// Stream is a token sequence with one token of lookahead.
type Stream struct {
	toks []scanner.Token
	pos  int
}

// NewStream wraps an already scanned token slice.
func NewStream(toks []scanner.Token) *Stream {
	return &Stream{toks: toks}
}

// HasNext reports whether any tokens remain.
func (s *Stream) HasNext() bool { return s.pos < len(s.toks) }

// Peek returns the next token without consuming it.
func (s *Stream) Peek() (scanner.Token, bool) {
	if !s.HasNext() {
		return scanner.Token{}, false
	}
	return s.toks[s.pos], true
}

// Next consumes and returns the next token.
func (s *Stream) Next() (scanner.Token, bool) {
	tok, ok := s.Peek()
	if ok {
		s.pos++
	}
	return tok, ok
}

// HasNextMatch reports whether the next token matches re in full.
func (s *Stream) HasNextMatch(re *regexp.Regexp) bool {
	tok, ok := s.Peek()
	return ok && re.MatchString(tok.Text)
}

// HasNextText reports whether the next token is exactly text.
func (s *Stream) HasNextText(text string) bool {
	tok, ok := s.Peek()
	return ok && tok.Text == text
}

// Remaining returns up to n of the tokens not yet consumed.
func (s *Stream) Remaining(n int) []scanner.Token {
	end := min(s.pos+n, len(s.toks))
	return s.toks[s.pos:end]
}

// Pos returns the position of the next token, or the position just past
// the last token once the stream is exhausted.
func (s *Stream) Pos() token.Position {
	if tok, ok := s.Peek(); ok {
		return tok.Pos
	}
	if len(s.toks) == 0 {
		return token.Position{Line: 1, Column: 1}
	}
	last := s.toks[len(s.toks)-1]
	pos := last.Pos
	pos.Offset += len(last.Text)
	pos.Column += len(last.Text)
	return pos
}
