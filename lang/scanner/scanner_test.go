package scanner_test

import (
	"testing"

	"github.com/mna/lox/lang/scanner"
	"github.com/mna/lox/lang/token"
	"github.com/stretchr/testify/require"
)

func scanAll(t *testing.T, src string) ([]scanner.TokenAndValue, []string) {
	t.Helper()
	var s scanner.Scanner
	var errs []string
	s.Init([]byte(src), func(line token.Pos, msg string) {
		errs = append(errs, msg)
	})

	var toks []scanner.TokenAndValue
	var v token.Value
	for {
		tok := s.Scan(&v)
		toks = append(toks, scanner.TokenAndValue{Token: tok, Value: v})
		if tok == token.EOF {
			break
		}
	}
	return toks, errs
}

func TestScanPunctuationAndOperators(t *testing.T) {
	toks, errs := scanAll(t, "(){},.-+;*!!====<=>=<>/")
	require.Empty(t, errs)

	want := []token.Token{
		token.LPAREN, token.RPAREN, token.LBRACE, token.RBRACE, token.COMMA,
		token.DOT, token.MINUS, token.PLUS, token.SEMI, token.STAR, token.BANG,
		token.BANG_EQ, token.EQ_EQ, token.EQ, token.LT_EQ, token.GT_EQ, token.LT,
		token.GT, token.SLASH, token.EOF,
	}
	require.Len(t, toks, len(want))
	for i, w := range want {
		require.Equal(t, w, toks[i].Token, "token %d", i)
	}
}

func TestScanLineComment(t *testing.T) {
	toks, errs := scanAll(t, "1 // a comment\n2")
	require.Empty(t, errs)
	require.Len(t, toks, 3)
	require.Equal(t, token.NUMBER, toks[0].Token)
	require.Equal(t, token.Pos(1), toks[0].Value.Pos)
	require.Equal(t, token.NUMBER, toks[1].Token)
	require.Equal(t, token.Pos(2), toks[1].Value.Pos)
}

func TestScanString(t *testing.T) {
	toks, errs := scanAll(t, `"hello world"`)
	require.Empty(t, errs)
	require.Equal(t, token.STRING, toks[0].Token)
	require.Equal(t, "hello world", toks[0].Value.Str)
}

func TestScanUnterminatedString(t *testing.T) {
	_, errs := scanAll(t, `"hello`)
	require.NotEmpty(t, errs)
}

func TestScanNumber(t *testing.T) {
	toks, errs := scanAll(t, "123 45.67")
	require.Empty(t, errs)
	require.Equal(t, token.NUMBER, toks[0].Token)
	require.Equal(t, float64(123), toks[0].Value.Num)
	require.Equal(t, token.NUMBER, toks[1].Token)
	require.Equal(t, 45.67, toks[1].Value.Num)
}

func TestScanIdentifiersAndKeywords(t *testing.T) {
	toks, errs := scanAll(t, "foo bar_1 and class else false for fun if nil or print return super this true var while")
	require.Empty(t, errs)

	want := []token.Token{
		token.IDENT, token.IDENT, token.AND, token.CLASS, token.ELSE, token.FALSE,
		token.FOR, token.FUN, token.IF, token.NIL, token.OR, token.PRINT,
		token.RETURN, token.SUPER, token.THIS, token.TRUE, token.VAR, token.WHILE,
		token.EOF,
	}
	require.Len(t, toks, len(want))
	for i, w := range want {
		require.Equal(t, w, toks[i].Token, "token %d", i)
	}
}

func TestScanUnexpectedCharacter(t *testing.T) {
	toks, errs := scanAll(t, "@")
	require.NotEmpty(t, errs)
	require.Equal(t, token.ILLEGAL, toks[0].Token)
}

func TestScanMultilineTracksLineNumbers(t *testing.T) {
	toks, errs := scanAll(t, "1\n2\n\n3")
	require.Empty(t, errs)
	require.Equal(t, token.Pos(1), toks[0].Value.Pos)
	require.Equal(t, token.Pos(2), toks[1].Value.Pos)
	require.Equal(t, token.Pos(4), toks[2].Value.Pos)
}
