// Package scanner splits robot program source into positioned tokens.
// Each of the punctuation bytes { } ( ) , ; = is always a token on its own;
// everything else is delimited by whitespace. Tokens are not classified
// here: the parser matches them against its patterns on demand.
package scanner

import "modernc.org/token"

// Token is a single lexical unit and the position of its first byte.
type Token struct {
	Text string
	Pos  token.Position
}

func (t Token) String() string { return t.Text }

// Scanner iterates over source text, tracking line and column so every
// token can be reported at its original location.
type Scanner struct {
	name string
	src  string
	pos  int
	line int
	col  int
}

// New creates a Scanner for src. The name is recorded as the Filename of
// every token position.
func New(name, src string) *Scanner {
	return &Scanner{name: name, src: src, line: 1, col: 1}
}

// Next returns the next token and true, or a zero Token and false at end
// of input. Lexing never fails.
func (s *Scanner) Next() (Token, bool) {
	s.skipSpace()
	if s.pos >= len(s.src) {
		return Token{}, false
	}
	start := s.position()
	if IsPunct(s.src[s.pos]) {
		s.advance()
		return Token{Text: s.src[start.Offset:s.pos], Pos: start}, true
	}
	for s.pos < len(s.src) && !isSpace(s.src[s.pos]) && !IsPunct(s.src[s.pos]) {
		s.advance()
	}
	return Token{Text: s.src[start.Offset:s.pos], Pos: start}, true
}

// Peek returns the next byte without advancing, or (0, false) at end.
func (s *Scanner) Peek() (byte, bool) {
	if s.pos >= len(s.src) {
		return 0, false
	}
	return s.src[s.pos], true
}

// Line returns the current 1-based line number.
func (s *Scanner) Line() int { return s.line }

// Src returns the full source text being scanned.
func (s *Scanner) Src() string { return s.src }

// Tokenize scans all of src and returns its tokens in order.
func Tokenize(name, src string) []Token {
	sc := New(name, src)
	var toks []Token
	for tok, ok := sc.Next(); ok; tok, ok = sc.Next() {
		toks = append(toks, tok)
	}
	return toks
}

// IsPunct reports whether ch always forms a token by itself.
func IsPunct(ch byte) bool {
	switch ch {
	case '{', '}', '(', ')', ',', ';', '=':
		return true
	}
	return false
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' || ch == '\f' || ch == '\v'
}

func (s *Scanner) skipSpace() {
	for s.pos < len(s.src) && isSpace(s.src[s.pos]) {
		s.advance()
	}
}

func (s *Scanner) advance() {
	if s.src[s.pos] == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
	s.pos++
}

func (s *Scanner) position() token.Position {
	return token.Position{Filename: s.name, Offset: s.pos, Line: s.line, Column: s.col}
}
