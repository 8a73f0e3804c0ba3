package scanner

import (
	"strconv"

	"github.com/mna/lox/lang/token"
)

// number scans a NUMBER literal: a run of digits, optionally followed by a
// '.' and another run of digits. The first digit has already been consumed.
// Lox has no integer type, so every literal is parsed as a float64.
func (s *Scanner) number(pos token.Pos, tokVal *token.Value) token.Token {
	for isDigit(s.peek()) {
		s.cur++
	}

	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.cur++ // consume the '.'
		for isDigit(s.peek()) {
			s.cur++
		}
	}

	raw := string(s.src[s.start:s.cur])
	num, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		s.errorf("invalid number literal %q", raw)
	}
	*tokVal = token.Value{Raw: raw, Pos: pos, Num: num}
	return token.NUMBER
}
