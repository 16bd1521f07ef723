package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseLine(t *testing.T, input string) error {
	t.Helper()
	tokens, err := Tokenize(input)
	require.NoError(t, err, "line %q should tokenize", input)
	return Parse(tokens)
}

func assertSyntaxDefect(t *testing.T, input string, kind SyntaxErrorKind) *SyntaxError {
	t.Helper()
	err := parseLine(t, input)
	require.Error(t, err, "line %q should be rejected", input)
	var synErr *SyntaxError
	require.ErrorAs(t, err, &synErr)
	assert.Equal(t, kind, synErr.Kind, "line %q: got %v", input, err)
	return synErr
}

func TestParser_AcceptedStatements(t *testing.T) {
	accepted := []string{
		"if 2 + x > 0 print 5 else print 10",
		"if x print y",
		"if x > 0 y",
		"x",
		"42",
		"42.5",
		"x + y * 2",
		"a ^ b < c",
		"print",
		"print 5",
		"print x + 1",
		"x + if y print 1 else print 2", // conditional in operand position
		"if if a print b print c",       // conditional as the condition's operand
	}
	for _, line := range accepted {
		assert.NoError(t, parseLine(t, line), "line %q should be accepted", line)
	}
}

func TestParser_ElseWithoutIf(t *testing.T) {
	assertSyntaxDefect(t, "else print 5", ElseWithoutIf)
	assertSyntaxDefect(t, "else", ElseWithoutIf)
}

func TestParser_MissingOperand(t *testing.T) {
	assertSyntaxDefect(t, "x + ", MissingOperand) // trailing operator
	assertSyntaxDefect(t, "+ x", MissingOperand)  // leading operator
	assertSyntaxDefect(t, "x + + y", MissingOperand)
	assertSyntaxDefect(t, "if > 0 print 1", MissingOperand)
	assertSyntaxDefect(t, "x <", MissingOperand)
}

func TestParser_TrailingTokens(t *testing.T) {
	assertSyntaxDefect(t, "x y", TrailingTokens)
	assertSyntaxDefect(t, "print ; x", TrailingTokens)
	// A second else after a closed if-statement is left over.
	assertSyntaxDefect(t, "if a print b else print c else print d", TrailingTokens)
}

func TestParser_UnexpectedToken(t *testing.T) {
	assertSyntaxDefect(t, ";", UnexpectedToken)
	// Condition present but the required statement is missing.
	synErr := assertSyntaxDefect(t, "if x", UnexpectedToken)
	assert.Contains(t, synErr.Error(), "statement")
}

func TestParser_EmptyStatement(t *testing.T) {
	err := Parse(nil)
	var synErr *SyntaxError
	require.ErrorAs(t, err, &synErr)
	assert.Equal(t, EmptyStatement, synErr.Kind)
}

func TestParser_Idempotence(t *testing.T) {
	tokens, err := Tokenize("if x > 0 print 1 else print 2")
	require.NoError(t, err)
	before := make([]Token, len(tokens))
	copy(before, tokens)

	require.NoError(t, Parse(tokens))
	require.NoError(t, Parse(tokens), "re-parsing must not depend on hidden state")
	assert.Equal(t, before, tokens, "parsing must not mutate the token stream")
}

func TestParser_SpecTokenClassification(t *testing.T) {
	tokens, err := Tokenize("if 2 + x > 0 print 5 else print 10")
	require.NoError(t, err)
	require.NoError(t, Parse(tokens))

	want := []struct {
		typ  TokenType
		text string
	}{
		{KEYWORD, "if"}, {INTEGER, "2"}, {SYMBOL, "+"}, {IDENTIFIER, "x"},
		{SYMBOL, ">"}, {INTEGER, "0"}, {KEYWORD, "print"}, {INTEGER, "5"},
		{KEYWORD, "else"}, {KEYWORD, "print"}, {INTEGER, "10"},
	}
	require.Len(t, tokens, len(want))
	for i, w := range want {
		assert.Equal(t, w.typ, tokens[i].Type, "token %d", i)
		assert.Equal(t, w.text, tokens[i].Text, "token %d", i)
	}
}
