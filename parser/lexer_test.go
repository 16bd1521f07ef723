package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper struct for expected token properties
type expectedToken struct {
	typ  TokenType
	text string
	col  int // 1-based start column; 0 to skip the check
}

// Helper function to run lexer tests over a single line
func runLexerTest(t *testing.T, input string, expected []expectedToken) {
	t.Helper()
	tokens, err := Tokenize(input)
	require.NoError(t, err, "input %q", input)
	require.Len(t, tokens, len(expected), "input %q", input)
	for i, exp := range expected {
		assert.Equal(t, exp.typ, tokens[i].Type, "Test %d: token type mismatch for %q", i, tokens[i].Text)
		assert.Equal(t, exp.text, tokens[i].Text, "Test %d: token text mismatch", i)
		if exp.col > 0 {
			assert.Equal(t, exp.col, tokens[i].Col, "Test %d: token col mismatch for %q", i, exp.text)
		}
	}
}

func runLexerDefect(t *testing.T, input string, kind LexicalErrorKind) *LexicalError {
	t.Helper()
	tokens, err := Tokenize(input)
	require.Error(t, err, "input %q should not tokenize", input)
	assert.Nil(t, tokens, "no tokens should be observable after a defect")
	var lexErr *LexicalError
	require.ErrorAs(t, err, &lexErr)
	assert.Equal(t, kind, lexErr.Kind, "input %q", input)
	return lexErr
}

func TestLexer_KeywordsAndIdentifiers(t *testing.T) {
	input := "if else print ifx _if foo_bar123 _"
	expected := []expectedToken{
		{KEYWORD, "if", 1},
		{KEYWORD, "else", 4},
		{KEYWORD, "print", 9},
		{IDENTIFIER, "ifx", 15},
		{IDENTIFIER, "_if", 19},
		{IDENTIFIER, "foo_bar123", 23},
		{IDENTIFIER, "_", 34},
	}
	runLexerTest(t, input, expected)
}

func TestLexer_Numbers(t *testing.T) {
	input := "42 42.0 .5 42. 0 007"
	expected := []expectedToken{
		{INTEGER, "42", 1},
		{FLOAT, "42.0", 4},
		{FLOAT, ".5", 9},
		{FLOAT, "42.", 12},
		{INTEGER, "0", 16},
		{INTEGER, "007", 18},
	}
	runLexerTest(t, input, expected)
}

func TestLexer_Symbols(t *testing.T) {
	input := "+ - * / ^ < > = ;"
	expected := []expectedToken{
		{SYMBOL, "+", 1},
		{SYMBOL, "-", 3},
		{SYMBOL, "*", 5},
		{SYMBOL, "/", 7},
		{SYMBOL, "^", 9},
		{SYMBOL, "<", 11},
		{SYMBOL, ">", 13},
		{SYMBOL, "=", 15},
		{SYMBOL, ";", 17},
	}
	runLexerTest(t, input, expected)
}

func TestLexer_MaximalMunch(t *testing.T) {
	// Glued runs split only at shape boundaries; "5-3" keeps '-' as a symbol
	// because the character after it starts a number, not an identifier.
	input := "x1y2+5-3"
	expected := []expectedToken{
		{IDENTIFIER, "x1y2", 1},
		{SYMBOL, "+", 5},
		{INTEGER, "5", 6},
		{SYMBOL, "-", 7},
		{INTEGER, "3", 8},
	}
	runLexerTest(t, input, expected)
}

func TestLexer_SpecStatement(t *testing.T) {
	input := "if 2 + x > 0 print 5 else print 10"
	expected := []expectedToken{
		{KEYWORD, "if", 0},
		{INTEGER, "2", 0},
		{SYMBOL, "+", 0},
		{IDENTIFIER, "x", 0},
		{SYMBOL, ">", 0},
		{INTEGER, "0", 0},
		{KEYWORD, "print", 0},
		{INTEGER, "5", 0},
		{KEYWORD, "else", 0},
		{KEYWORD, "print", 0},
		{INTEGER, "10", 0},
	}
	runLexerTest(t, input, expected)
}

func TestLexer_MalformedNumbers(t *testing.T) {
	lexErr := runLexerDefect(t, "1.2.3", MalformedNumber)
	assert.Equal(t, "1.2.3", lexErr.Lexeme)
	assert.Equal(t, 1, lexErr.Col)

	runLexerDefect(t, "42..", MalformedNumber)
	runLexerDefect(t, "1e", MalformedNumber)
	runLexerDefect(t, "1.5e", MalformedNumber)
	runLexerDefect(t, "1e5", MalformedNumber)
	runLexerDefect(t, "x + 1.2.3", MalformedNumber)
}

func TestLexer_MalformedIdentifiers(t *testing.T) {
	lexErr := runLexerDefect(t, "2xi", MalformedIdentifier)
	assert.Equal(t, "2xi", lexErr.Lexeme)

	lexErr = runLexerDefect(t, "_-var", MalformedIdentifier)
	assert.Equal(t, "-var", lexErr.Lexeme)
	assert.Equal(t, 2, lexErr.Col)

	lexErr = runLexerDefect(t, "@name", MalformedIdentifier)
	assert.Equal(t, "@name", lexErr.Lexeme)
}

func TestLexer_UnrecognizedChar(t *testing.T) {
	lexErr := runLexerDefect(t, "x $ y", UnrecognizedChar)
	assert.Equal(t, "$", lexErr.Lexeme)
	assert.Equal(t, 3, lexErr.Col)

	runLexerDefect(t, "#", UnrecognizedChar)
}

func TestLexer_Reconstruction(t *testing.T) {
	// Concatenating lexemes (ignoring skipped whitespace) reconstructs the
	// line exactly.
	lines := []string{
		"if 2 + x > 0 print 5 else print 10",
		"x1y2+5-3",
		"  a ^ b  ",
		"42.0 .5 42.",
	}
	for _, line := range lines {
		tokens, err := Tokenize(line)
		require.NoError(t, err, "line %q", line)
		var sb strings.Builder
		for _, tok := range tokens {
			sb.WriteString(tok.Text)
		}
		stripped := strings.Join(strings.Fields(line), "")
		assert.Equal(t, stripped, sb.String(), "line %q", line)
	}
}

func TestLexer_EmptyLine(t *testing.T) {
	tokens, err := Tokenize("   \t ")
	require.NoError(t, err)
	assert.Empty(t, tokens)
}

func TestLexer_Idempotence(t *testing.T) {
	input := "if x > 1.5 print y"
	first, err1 := Tokenize(input)
	second, err2 := Tokenize(input)
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, first, second)
}

func TestLexer_ConfiguredKeywords(t *testing.T) {
	tokens, err := NewLexerWithKeywords("while x", []string{"while"}).Tokenize()
	require.NoError(t, err)
	require.Len(t, tokens, 2)
	assert.Equal(t, KEYWORD, tokens[0].Type)
	assert.Equal(t, "while", tokens[0].Text)
	assert.Equal(t, IDENTIFIER, tokens[1].Type)

	// Base keywords are always retained.
	tokens, err = NewLexerWithKeywords("if while", []string{"while"}).Tokenize()
	require.NoError(t, err)
	assert.Equal(t, KEYWORD, tokens[0].Type)
	assert.Equal(t, KEYWORD, tokens[1].Type)
}
