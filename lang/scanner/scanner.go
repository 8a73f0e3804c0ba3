// Package scanner tokenizes Lox source text into a stream of tokens.
//
// The overall shape — a byte-oriented cursor with peek/advance helpers and an
// error callback invoked for every bad lexeme instead of aborting at the
// first one — follows the scanning style used throughout this module's
// parser and resolver packages.
package scanner

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/mna/lox/lang/token"
)

// ErrorHandler is called once per scan error, with the 1-based line the error
// occurred on and a message describing it.
type ErrorHandler func(line token.Pos, msg string)

// TokenAndValue combines a token kind with its materialized value.
type TokenAndValue struct {
	Token token.Token
	Value token.Value
}

// ScanFiles tokenizes each named source file in turn and returns the list of
// tokens for each, plus every read error and every scan error accumulated
// across all files. Scanning continues past errors within a
// file so that as many tokens as possible are reported to the caller.
func ScanFiles(_ context.Context, files ...string) ([][]TokenAndValue, []error) {
	tokensByFile := make([][]TokenAndValue, len(files))
	var errs []error
	for i, file := range files {
		src, err := os.ReadFile(file)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		var s Scanner
		var fileErrs []error
		s.Init(src, func(line token.Pos, msg string) {
			fileErrs = append(fileErrs, &ScanError{File: file, Line: line, Msg: msg})
		})

		var tokVal token.Value
		for {
			tok := s.Scan(&tokVal)
			tokensByFile[i] = append(tokensByFile[i], TokenAndValue{Token: tok, Value: tokVal})
			if tok == token.EOF {
				break
			}
		}
		errs = append(errs, fileErrs...)
	}
	return tokensByFile, errs
}

// ScanError reports a single scan error at a specific source line.
type ScanError struct {
	File string
	Line token.Pos
	Msg  string
}

func (e *ScanError) Error() string {
	if e.File == "" {
		return "[line " + strconv.Itoa(int(e.Line)) + "] Error: " + e.Msg
	}
	return e.File + ": [line " + strconv.Itoa(int(e.Line)) + "] Error: " + e.Msg
}

// Scanner tokenizes a single source buffer.
type Scanner struct {
	src  []byte
	err  ErrorHandler
	line token.Pos

	start int // byte offset of the token currently being scanned
	cur   int // byte offset of the next unread byte
}

// Init (re)initializes the scanner to tokenize src from the start.
func (s *Scanner) Init(src []byte, errHandler ErrorHandler) {
	s.src = src
	s.err = errHandler
	s.line = 1
	s.start = 0
	s.cur = 0
}

func (s *Scanner) atEnd() bool { return s.cur >= len(s.src) }

// advance consumes and returns the current byte.
func (s *Scanner) advance() byte {
	b := s.src[s.cur]
	s.cur++
	return b
}

// peek returns the current unread byte without consuming it, or 0 at EOF.
func (s *Scanner) peek() byte {
	if s.atEnd() {
		return 0
	}
	return s.src[s.cur]
}

// peekNext returns the byte after the current one, or 0 if out of range.
func (s *Scanner) peekNext() byte {
	if s.cur+1 >= len(s.src) {
		return 0
	}
	return s.src[s.cur+1]
}

// match consumes the current byte and returns true if it equals want,
// otherwise it leaves the cursor untouched and returns false.
func (s *Scanner) match(want byte) bool {
	if s.atEnd() || s.src[s.cur] != want {
		return false
	}
	s.cur++
	return true
}

func (s *Scanner) errorf(format string, args ...any) {
	if s.err != nil {
		s.err(s.line, fmt.Sprintf(format, args...))
	}
}

// Scan returns the next token, filling tokVal with its materialized value.
// At end of input it returns token.EOF forever.
func (s *Scanner) Scan(tokVal *token.Value) token.Token {
	s.skipWhitespaceAndComments()

	s.start = s.cur
	pos := s.line
	if s.atEnd() {
		*tokVal = token.Value{Raw: "", Pos: pos}
		return token.EOF
	}

	c := s.advance()
	switch {
	case isAlpha(c):
		return s.identifier(pos, tokVal)
	case isDigit(c):
		return s.number(pos, tokVal)
	}

	var tok token.Token
	switch c {
	case '(':
		tok = token.LPAREN
	case ')':
		tok = token.RPAREN
	case '{':
		tok = token.LBRACE
	case '}':
		tok = token.RBRACE
	case ',':
		tok = token.COMMA
	case '.':
		tok = token.DOT
	case '-':
		tok = token.MINUS
	case '+':
		tok = token.PLUS
	case ';':
		tok = token.SEMI
	case '*':
		tok = token.STAR
	case '/':
		tok = token.SLASH
	case '!':
		tok = token.BANG
		if s.match('=') {
			tok = token.BANG_EQ
		}
	case '=':
		tok = token.EQ
		if s.match('=') {
			tok = token.EQ_EQ
		}
	case '<':
		tok = token.LT
		if s.match('=') {
			tok = token.LT_EQ
		}
	case '>':
		tok = token.GT
		if s.match('=') {
			tok = token.GT_EQ
		}
	case '"':
		return s.string(pos, tokVal)
	default:
		s.errorf("unexpected character: %c", c)
		*tokVal = token.Value{Raw: string(c), Pos: pos}
		return token.ILLEGAL
	}

	*tokVal = token.Value{Raw: string(s.src[s.start:s.cur]), Pos: pos}
	return tok
}

func (s *Scanner) skipWhitespaceAndComments() {
	for !s.atEnd() {
		switch s.peek() {
		case ' ', '\t', '\r':
			s.cur++
		case '\n':
			s.cur++
			s.line++
		case '/':
			if s.peekNext() != '/' {
				return
			}
			for !s.atEnd() && s.peek() != '\n' {
				s.cur++
			}
		default:
			return
		}
	}
}

// identifier scans an identifier or keyword: the first alpha byte has
// already been consumed.
func (s *Scanner) identifier(pos token.Pos, tokVal *token.Value) token.Token {
	for isAlphaNumeric(s.peek()) {
		s.cur++
	}

	lit := string(s.src[s.start:s.cur])
	*tokVal = token.Value{Raw: lit, Pos: pos}
	return token.LookupKw(lit)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isAlpha(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_'
}

func isAlphaNumeric(c byte) bool { return isAlpha(c) || isDigit(c) }
