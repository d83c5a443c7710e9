package lexer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLexBasicSpec(t *testing.T) {
	tokens, err := Lex("mpileaks@1.0:1.5+debug~shared%gcc@9.4.0=linux-x86_64")
	require.NoError(t, err)

	var kinds []Kind
	for _, tok := range tokens {
		kinds = append(kinds, tok.Kind)
	}
	require.Equal(t, []Kind{
		ID, AT, ID, COLON, ID, ON, ID, OFF, ID, PCT, ID, AT, ID,
		EQ, ID, EOF,
	}, kinds)
}

func TestLexDepToken(t *testing.T) {
	tokens, err := Lex("a ^b@1.0")
	require.NoError(t, err)
	require.Equal(t, DEP, tokens[1].Kind)
}

func TestLexTildeAndHyphenBothOff(t *testing.T) {
	tokensTilde, err := Lex("~shared")
	require.NoError(t, err)
	tokensHyphen, err := Lex("-shared")
	require.NoError(t, err)
	require.Equal(t, OFF, tokensTilde[0].Kind)
	require.Equal(t, OFF, tokensHyphen[0].Kind)
}

func TestLexUnexpectedCharacter(t *testing.T) {
	_, err := Lex("mpileaks#bad")
	require.Error(t, err)
}

func TestLexVersionStopsAtColon(t *testing.T) {
	tokens, err := Lex("1.0:2.0")
	require.NoError(t, err)
	require.Equal(t, "1.0", tokens[0].Text)
	require.Equal(t, COLON, tokens[1].Kind)
	require.Equal(t, "2.0", tokens[2].Text)
}
