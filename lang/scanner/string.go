package scanner

import "github.com/mna/lox/lang/token"

// string scans a double-quoted string literal. The opening '"' has already
// been consumed. An unterminated literal (reaching EOF before the closing
// quote) is reported at the line the string started on.
func (s *Scanner) string(pos token.Pos, tokVal *token.Value) token.Token {
	for !s.atEnd() && s.peek() != '"' {
		if s.peek() == '\n' {
			s.line++
		}
		s.cur++
	}

	if s.atEnd() {
		s.err(pos, "unterminated string")
		*tokVal = token.Value{Raw: string(s.src[s.start:s.cur]), Pos: pos}
		return token.ILLEGAL
	}

	s.cur++ // consume the closing '"'
	raw := string(s.src[s.start:s.cur])
	val := string(s.src[s.start+1 : s.cur-1])
	*tokVal = token.Value{Raw: raw, Pos: pos, Str: val}
	return token.STRING
}
