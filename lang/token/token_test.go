package token

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokenString(t *testing.T) {
	for tok := Token(0); tok < maxToken; tok++ {
		if tok.String() == "" {
			t.Errorf("missing string representation of token %d", tok)
		}
	}
}

func TestLookupKw(t *testing.T) {
	cases := []struct {
		lit  string
		want Token
	}{
		{"and", AND},
		{"class", CLASS},
		{"else", ELSE},
		{"false", FALSE},
		{"for", FOR},
		{"fun", FUN},
		{"if", IF},
		{"nil", NIL},
		{"or", OR},
		{"print", PRINT},
		{"return", RETURN},
		{"super", SUPER},
		{"this", THIS},
		{"true", TRUE},
		{"var", VAR},
		{"while", WHILE},
		{"orange", IDENT},
		{"classy", IDENT},
		{"", IDENT},
	}
	for _, c := range cases {
		t.Run(c.lit, func(t *testing.T) {
			require.Equal(t, c.want, LookupKw(c.lit))
		})
	}
}

func TestGoString(t *testing.T) {
	require.Equal(t, "'+'", PLUS.GoString())
	require.Equal(t, "'=='", EQ_EQ.GoString())
	require.Equal(t, "identifier", IDENT.GoString())
	require.Equal(t, "end of file", EOF.GoString())
}
