/*
File    : polyscript/lexer/lexer_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tokenCase struct {
	Input    string
	Expected []Token
}

func kindsAndLexemes(tokens []Token) []Token {
	out := make([]Token, len(tokens))
	for i, t := range tokens {
		out[i] = Token{Kind: t.Kind, Lexeme: t.Lexeme}
	}
	return out
}

func TestConsumeTokens(t *testing.T) {
	tests := []tokenCase{
		{
			Input: `1 + 2 * 3`,
			Expected: []Token{
				{Kind: INT, Lexeme: "1"},
				{Kind: PLUS, Lexeme: "+"},
				{Kind: INT, Lexeme: "2"},
				{Kind: MUL, Lexeme: "*"},
				{Kind: INT, Lexeme: "3"},
				{Kind: EOF, Lexeme: ""},
			},
		},
		{
			Input: `var x = 3.14`,
			Expected: []Token{
				{Kind: KEYWORD, Lexeme: "var"},
				{Kind: IDENT, Lexeme: "x"},
				{Kind: EQ, Lexeme: "="},
				{Kind: FLOAT, Lexeme: "3.14"},
				{Kind: EOF, Lexeme: ""},
			},
		},
		{
			Input: `a == b != c <= d >= e -> f`,
			Expected: []Token{
				{Kind: IDENT, Lexeme: "a"},
				{Kind: EE, Lexeme: "=="},
				{Kind: IDENT, Lexeme: "b"},
				{Kind: NE, Lexeme: "!="},
				{Kind: IDENT, Lexeme: "c"},
				{Kind: LTE, Lexeme: "<="},
				{Kind: IDENT, Lexeme: "d"},
				{Kind: GTE, Lexeme: ">="},
				{Kind: IDENT, Lexeme: "e"},
				{Kind: ARROW, Lexeme: "->"},
				{Kind: IDENT, Lexeme: "f"},
				{Kind: EOF, Lexeme: ""},
			},
		},
		{
			Input: "# a comment\nvar x = 1",
			Expected: []Token{
				{Kind: NEWLINE, Lexeme: "\n"},
				{Kind: KEYWORD, Lexeme: "var"},
				{Kind: IDENT, Lexeme: "x"},
				{Kind: EQ, Lexeme: "="},
				{Kind: INT, Lexeme: "1"},
				{Kind: EOF, Lexeme: ""},
			},
		},
		{
			Input: `"hi\nthere"`,
			Expected: []Token{
				{Kind: STRING, Lexeme: "hi\nthere"},
				{Kind: EOF, Lexeme: ""},
			},
		},
		{
			Input: `1.2.3`,
			Expected: []Token{
				{Kind: FLOAT, Lexeme: "1.2"},
				{Kind: DOT, Lexeme: "."},
				{Kind: INT, Lexeme: "3"},
				{Kind: EOF, Lexeme: ""},
			},
		},
	}

	for _, tc := range tests {
		lex := NewLexer(tc.Input, "<test>")
		tokens, err := lex.ConsumeTokens()
		require.NoError(t, err, tc.Input)
		assert.Equal(t, tc.Expected, kindsAndLexemes(tokens), tc.Input)
	}
}

func TestIllegalCharacter(t *testing.T) {
	lex := NewLexer("1 @ 2", "<test>")
	_, err := lex.ConsumeTokens()
	require.Error(t, err)
	lexErr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, IllegalChar, lexErr.Kind)
}

func TestExpectedCharacter(t *testing.T) {
	lex := NewLexer("x ! y", "<test>")
	_, err := lex.ConsumeTokens()
	require.Error(t, err)
	lexErr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, ExpectedChar, lexErr.Kind)
}

func TestUnterminatedString(t *testing.T) {
	lex := NewLexer(`"unterminated`, "<test>")
	_, err := lex.ConsumeTokens()
	require.Error(t, err)
	lexErr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, IllegalChar, lexErr.Kind)
}

func TestPositionTracking(t *testing.T) {
	lex := NewLexer("a\nbb", "<test>")
	tokens, err := lex.ConsumeTokens()
	require.NoError(t, err)
	require.Len(t, tokens, 4) // a, NEWLINE, bb, EOF
	assert.Equal(t, 1, tokens[0].Start.Line)
	assert.Equal(t, 2, tokens[2].Start.Line)
	assert.Equal(t, 1, tokens[2].Start.Column)
}
